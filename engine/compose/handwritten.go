package compose

import (
	"image"

	"github.com/npillmayer/glyphsynth/core/heatmap"
	"github.com/npillmayer/glyphsynth/core/raster"
	"github.com/npillmayer/glyphsynth/core/script"
)

// HandwrittenWord composes samples from scanned glyph images.
type HandwrittenWord struct {
	kernel   *heatmap.Kernel
	policy   AlignmentPolicy
	alphabet *script.Alphabet
}

// NewHandwritten creates a composer for handwritten words. The modifiers of
// alphabet cannot start a word; if alphabet is nil, Bengali is used.
func NewHandwritten(kernel *heatmap.Kernel, policy AlignmentPolicy, alphabet *script.Alphabet) *HandwrittenWord {
	if alphabet == nil {
		alphabet = script.Bengali()
	}
	return &HandwrittenWord{kernel: kernel, policy: policy, alphabet: alphabet}
}

// Policy returns the alignment policy of the composer.
func (hw *HandwrittenWord) Policy() AlignmentPolicy {
	return hw.policy
}

// placed is a component with its glyph and its position in the word.
type placed struct {
	label string
	glyph *image.Gray // binarized and resized
	lay   layout
	x     int
}

// Compose assembles a word from one glyph image per component and scales it
// to height targetHeight.
//
// Leading modifiers of the alphabet (for Bengali: nasalization marks and
// visarga) cannot start a handwritten word and are dropped. For every
// component a glyph image is chosen at random among all images of the store
// for this label. A component without any image makes Compose fail with an
// error wrapping ErrLookupFailure.
func (hw *HandwrittenWord) Compose(store GlyphStore, components []string, rnd Chooser,
	targetHeight int) (Sample, error) {
	//
	components = hw.alphabet.StripModifiers(components)
	if len(components) == 0 {
		return Sample{}, dimensionMismatch("no components to compose")
	}
	if targetHeight <= 0 {
		return Sample{}, dimensionMismatch("invalid target height %d", targetHeight)
	}
	classes := make([]AlignmentClass, len(components))
	var hasTop, hasBottom bool
	for i, c := range components {
		classes[i] = hw.policy.Classify(c)
		hasTop = hasTop || classes[i]&AlignTop != 0
		hasBottom = hasBottom || classes[i]&AlignBottom != 0
	}
	//
	// first pass: choose glyphs, compute the geometry
	comps := make([]placed, len(components))
	x, h := 0, 0
	for i, c := range components {
		lay := hw.policy.arrange(classes[i], hasTop, hasBottom)
		if i == 0 {
			h = lay.height()
		} else if lay.height() != h {
			return Sample{}, dimensionMismatch("component %q of class %s has height %d, expected %d",
				c, classes[i], lay.height(), h)
		}
		paths := store.Lookup(c)
		if len(paths) == 0 {
			return Sample{}, lookupFailure(c)
		}
		path := paths[rnd.Intn(len(paths))]
		scan, err := store.LoadGlyph(path)
		if err != nil {
			return Sample{}, err
		}
		resized, err := raster.Resize(scan, lay.dim.W, lay.dim.H)
		if err != nil {
			return Sample{}, mismatch(err, "glyph for "+c)
		}
		comps[i] = placed{label: c, glyph: raster.Binarize(resized), lay: lay, x: x}
		tracer().Debugf("component %q: class %s, glyph %s at x=%d", c, classes[i], path, x)
		x += lay.dim.W
	}
	//
	// second pass: stamp glyphs and heatmap tiles
	img, err := raster.NewGray(x, h, 0)
	if err != nil {
		return Sample{}, mismatch(err, "handwritten word")
	}
	charMap, _ := raster.NewField(x, h)
	for _, comp := range comps {
		raster.Paste(img, comp.glyph, comp.x, comp.lay.top)
		tile, err := hw.kernel.Resized(comp.lay.dim.W, comp.lay.dim.H)
		if err != nil {
			return Sample{}, mismatch(err, "char heatmap of "+comp.label)
		}
		charMap.Add(tile, comp.x, comp.lay.top)
	}
	//
	// scale to target height, keeping the aspect ratio
	width := targetHeight * x / h
	if img, err = raster.Resize(img, width, targetHeight); err != nil {
		return Sample{}, mismatch(err, "handwritten word")
	}
	if charMap, err = charMap.Resize(width, targetHeight); err != nil {
		return Sample{}, mismatch(err, "handwritten word")
	}
	wordMap, err := boundaryLayer(hw.kernel, len(comps), width, targetHeight)
	if err != nil {
		return Sample{}, err
	}
	s := Sample{Image: img, CharMap: charMap.Gray(), WordMap: wordMap.Gray()}
	return s, s.check()
}
