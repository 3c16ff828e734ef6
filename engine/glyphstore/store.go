package glyphstore

import (
	"encoding/csv"
	"errors"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/derekparker/trie"
	"github.com/npillmayer/glyphsynth/core"
	"github.com/npillmayer/glyphsynth/core/locate/resources"
	"github.com/npillmayer/glyphsynth/core/raster"
	"github.com/npillmayer/glyphsynth/core/script"
)

// Record relates a glyph image to its label.
type Record struct {
	Filename string
	Label    string
	Path     string
}

// entry is the payload of a label in the trie.
type entry struct {
	paths []string
}

// Store is an index of glyph images by label.
type Store struct {
	index  *trie.Trie
	labels []string // sorted
	count  int
}

// New creates an empty store.
func New() *Store {
	return &Store{index: trie.New()}
}

// Add puts a record into the store. Labels are normalized to NFC.
func (s *Store) Add(rec Record) {
	label := script.Normalize(rec.Label)
	if label == "" || rec.Path == "" {
		tracer().Debugf("ignoring incomplete glyph record %v", rec)
		return
	}
	if node, ok := s.index.Find(label); ok {
		e := node.Meta().(*entry)
		e.paths = append(e.paths, rec.Path)
	} else {
		s.index.Add(label, &entry{paths: []string{rec.Path}})
		i := sort.SearchStrings(s.labels, label)
		s.labels = append(s.labels, "")
		copy(s.labels[i+1:], s.labels[i:])
		s.labels[i] = label
	}
	s.count++
}

// Lookup returns the image paths for a label, or nil if there are none.
// Clients must not modify the slice returned.
func (s *Store) Lookup(label string) []string {
	if node, ok := s.index.Find(script.Normalize(label)); ok {
		return node.Meta().(*entry).paths
	}
	return nil
}

// Labels returns all labels starting with prefix, sorted. An empty prefix
// returns all labels.
func (s *Store) Labels(prefix string) []string {
	if prefix == "" {
		return append([]string(nil), s.labels...)
	}
	labels := s.index.PrefixSearch(script.Normalize(prefix))
	sort.Strings(labels)
	return labels
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	return s.count
}

// LoadGlyph loads a glyph image as an 8-bit gray image.
func (s *Store) LoadGlyph(path string) (*image.Gray, error) {
	img, err := resources.ResolveImage(path).Image()
	if err != nil {
		return nil, err
	}
	return raster.ToGray(img), nil
}

// --- Loading ---------------------------------------------------------------

// LoadIndex reads a CSV index file. Relative image paths are resolved against
// the directory of the index file.
func LoadIndex(indexpath string) (*Store, error) {
	f, err := os.Open(indexpath)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open glyph index %s", indexpath)
	}
	defer f.Close()
	return ReadIndex(f, filepath.Dir(indexpath))
}

// ReadIndex reads records from CSV input. The first line must be a header
// containing the columns label and img_path; a column filename is optional.
func ReadIndex(r io.Reader, basedir string) (*Store, error) {
	rd := csv.NewReader(r)
	rd.TrimLeadingSpace = true
	header, err := rd.Read()
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "glyph index has no header")
	}
	cols := map[string]int{"filename": -1, "label": -1, "img_path": -1}
	for i, h := range header {
		if _, ok := cols[strings.TrimSpace(h)]; ok {
			cols[strings.TrimSpace(h)] = i
		}
	}
	if cols["label"] < 0 || cols["img_path"] < 0 {
		return nil, core.Error(core.EINVALID, "glyph index header must contain label and img_path, is %v", header)
	}
	s := New()
	for {
		row, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "malformed glyph index")
		}
		rec := Record{Label: row[cols["label"]], Path: row[cols["img_path"]]}
		if i := cols["filename"]; i >= 0 {
			rec.Filename = row[i]
		}
		if rec.Path != "" && !filepath.IsAbs(rec.Path) && basedir != "" {
			rec.Path = filepath.Join(basedir, rec.Path)
		}
		s.Add(rec)
	}
	tracer().Infof("glyph index contains %d images for %d labels", s.Len(), len(s.labels))
	return s, nil
}

var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".bmp": true,
	".tif": true, ".tiff": true, ".webp": true, ".gif": true,
}

// ScanDir builds a store from a directory with one sub-folder per label.
// Files which are not images are ignored.
func ScanDir(dir string) (*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read glyph directory %s", dir)
	}
	s := New()
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		labeldir := filepath.Join(dir, e.Name())
		files, err := os.ReadDir(labeldir)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "cannot read glyph directory %s", labeldir)
		}
		for _, f := range files {
			if f.IsDir() || !imageExtensions[strings.ToLower(filepath.Ext(f.Name()))] {
				continue
			}
			s.Add(Record{
				Filename: f.Name(),
				Label:    e.Name(),
				Path:     filepath.Join(labeldir, f.Name()),
			})
		}
	}
	tracer().Infof("glyph directory %s contains %d images for %d labels", dir, s.Len(), len(s.labels))
	return s, nil
}
