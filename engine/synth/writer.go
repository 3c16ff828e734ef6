package synth

import (
	"encoding/csv"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/npillmayer/glyphsynth/core"
	"github.com/npillmayer/glyphsynth/core/raster"
)

// DirWriter is a Sink writing samples as PNG files into a directory tree.
type DirWriter struct {
	dir    string
	mx     sync.Mutex // guards labels
	file   *os.File
	labels *csv.Writer
}

var _ Sink = (*DirWriter)(nil)

// Sub-folders of the output directory.
const (
	ImagesDir   = "images"
	CharMapsDir = "charmaps"
	WordMapsDir = "wordmaps"
	LabelsFile  = "labels.csv"
)

// NewDirWriter creates the output folders and the label file. An existing
// label file is replaced.
func NewDirWriter(dir string) (*DirWriter, error) {
	for _, sub := range []string{ImagesDir, CharMapsDir, WordMapsDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			return nil, core.WrapError(err, core.EIO, "cannot create output folder %s", sub)
		}
	}
	f, err := os.Create(filepath.Join(dir, LabelsFile))
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "cannot create label file in %s", dir)
	}
	w := &DirWriter{dir: dir, file: f, labels: csv.NewWriter(f)}
	if err := w.labels.Write([]string{"n", "text", "mode"}); err != nil {
		f.Close()
		return nil, core.WrapError(err, core.EIO, "cannot write label file")
	}
	return w, nil
}

// Put writes the three images of a sample and appends its label. The
// foreground mask is written with 255 for foreground.
func (w *DirWriter) Put(r Result) error {
	name := strconv.Itoa(r.N) + ".png"
	for _, out := range []struct {
		sub string
		img *image.Gray
	}{
		{ImagesDir, raster.Expand(r.Sample.Image)},
		{CharMapsDir, r.Sample.CharMap},
		{WordMapsDir, r.Sample.WordMap},
	} {
		if err := writePNG(filepath.Join(w.dir, out.sub, name), out.img); err != nil {
			return err
		}
	}
	w.mx.Lock()
	defer w.mx.Unlock()
	if err := w.labels.Write([]string{strconv.Itoa(r.N), r.Text, r.Mode.String()}); err != nil {
		return core.WrapError(err, core.EIO, "cannot write label of sample %d", r.N)
	}
	return nil
}

// Close flushes and closes the label file.
func (w *DirWriter) Close() error {
	w.mx.Lock()
	defer w.mx.Unlock()
	w.labels.Flush()
	err := w.labels.Error()
	if cerr := w.file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return core.WrapError(err, core.EIO, "cannot write label file")
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return core.WrapError(err, core.EIO, "cannot create %s", path)
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()
		return core.WrapError(err, core.EIO, "cannot encode %s", path)
	}
	if err = f.Close(); err != nil {
		return core.WrapError(err, core.EIO, "cannot write %s", path)
	}
	return nil
}
