package compose

import (
	"strings"

	"github.com/npillmayer/glyphsynth/core/heatmap"
	"github.com/npillmayer/glyphsynth/core/raster"
	"github.com/npillmayer/glyphsynth/core/script"
)

// PrintedLine composes samples of printed text.
type PrintedLine struct {
	kernel   *heatmap.Kernel
	splitter script.Splitter
}

// NewPrinted creates a composer for printed lines. If splitter is nil,
// a Bengali segmenter is used.
func NewPrinted(kernel *heatmap.Kernel, splitter script.Splitter) *PrintedLine {
	if splitter == nil {
		splitter = script.NewSegmenter(nil)
	}
	return &PrintedLine{kernel: kernel, splitter: splitter}
}

// wordBox is the horizontal placement of a word within a line.
type wordBox struct {
	word     string
	offset   int
	width    int
	clusters int
}

// Compose renders text with font and builds the heatmaps for it.
//
// Words are separated by white space. Runs of white space are rendered as a
// single space, as are leading and trailing blanks dropped. The offset of each word is derived
// from the measured widths of the words, each but the first measured together
// with a trailing space. The heatmaps are built for the line height of the
// rendered text and finally scaled to the size of the rendered image.
func (pl *PrintedLine) Compose(text string, font FontProvider) (Sample, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return Sample{}, dimensionMismatch("no words in %q", text)
	}
	text = strings.Join(words, " ")
	rendered, err := font.Render(text)
	if err != nil {
		return Sample{}, err
	}
	img := raster.Threshold(rendered, 128)
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	//
	// first pass: placement of words
	boxes := make([]wordBox, len(words))
	cur, lineW := 0, 0
	for i, word := range words {
		w, _, err := font.Measure(word)
		if err != nil {
			return Sample{}, err
		}
		if i == 0 {
			cur += w
		} else {
			ws, _, err := font.Measure(word + " ")
			if err != nil {
				return Sample{}, err
			}
			cur += ws
		}
		boxes[i] = wordBox{
			word:     word,
			offset:   cur - w,
			width:    w,
			clusters: len(pl.splitter.Segment(word)),
		}
		lineW = max(lineW, cur)
		tracer().Debugf("word %q at %d, width %d, %d clusters", word, cur-w, w, boxes[i].clusters)
	}
	//
	// second pass: stamp the heatmaps of the words
	charMap, err := raster.NewField(lineW, ih)
	if err != nil {
		return Sample{}, mismatch(err, "printed line")
	}
	wordMap, _ := raster.NewField(lineW, ih)
	for _, box := range boxes {
		cm, err := pl.kernel.Strip(box.clusters, box.width, ih)
		if err != nil {
			return Sample{}, mismatch(err, "char heatmap of "+box.word)
		}
		wm, err := boundaryLayer(pl.kernel, box.clusters, box.width, ih)
		if err != nil {
			return Sample{}, err
		}
		charMap.Add(cm, box.offset, 0)
		wordMap.Add(wm, box.offset, 0)
	}
	if charMap, err = charMap.Resize(iw, ih); err != nil {
		return Sample{}, mismatch(err, "printed line")
	}
	if wordMap, err = wordMap.Resize(iw, ih); err != nil {
		return Sample{}, mismatch(err, "printed line")
	}
	s := Sample{Image: img, CharMap: charMap.Gray(), WordMap: wordMap.Gray()}
	return s, s.check()
}
