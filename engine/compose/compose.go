package compose

import (
	"errors"
	"fmt"
	"image"

	"github.com/npillmayer/glyphsynth/core"
)

// ErrLookupFailure is wrapped by errors reporting a grapheme cluster without
// any glyph image. Errors carry code core.EMISSING.
var ErrLookupFailure = errors.New("no glyph image for label")

// ErrDimensionMismatch is wrapped by errors reporting a raster of zero or
// negative size during composition, e.g. for a word with zero width.
// Errors carry code core.EINTERNAL.
var ErrDimensionMismatch = errors.New("dimension mismatch")

func lookupFailure(label string) error {
	return core.WrapError(ErrLookupFailure, core.EMISSING, "no glyph image for %q", label)
}

func dimensionMismatch(format string, v ...interface{}) error {
	return core.WrapError(ErrDimensionMismatch, core.EINTERNAL, format, v...)
}

// mismatch converts a raster error into a dimension mismatch.
func mismatch(err error, what string) error {
	if err == nil {
		return nil
	}
	return dimensionMismatch("%s: %v", what, err)
}

// Chooser is the source of randomness for glyph selection.
// *math/rand.Rand satisfies it.
type Chooser = core.Chooser

// FontProvider measures and renders text.
// *font.TypeCase is a FontProvider.
type FontProvider interface {
	// Measure returns the size of the box text occupies when rendered.
	Measure(text string) (w, h int, err error)
	// Render draws text onto a new image of the size reported by Measure.
	// Ink has high intensity; 128 and above count as foreground.
	Render(text string) (*image.Gray, error)
}

// GlyphStore provides glyph images for grapheme clusters.
// *glyphstore.Store is a GlyphStore.
type GlyphStore interface {
	// Lookup returns paths of all images for a label.
	Lookup(label string) []string
	// LoadGlyph loads an image as gray scale, dark ink on white.
	LoadGlyph(path string) (*image.Gray, error)
}

// Sample is the result of a composition. All three images have the same
// bounds.
type Sample struct {
	Image   *image.Gray // 0 = background, 1 = foreground
	CharMap *image.Gray // 0…255
	WordMap *image.Gray // 0…255
}

// Size returns the common size of the sample's images.
func (s Sample) Size() image.Point {
	return s.Image.Bounds().Size()
}

func (s Sample) String() string {
	return fmt.Sprintf("sample(%d×%d)", s.Image.Bounds().Dx(), s.Image.Bounds().Dy())
}

// check asserts that all rasters of a sample are co-registered.
func (s Sample) check() error {
	b := s.Image.Bounds()
	if b.Empty() || s.CharMap.Bounds() != b || s.WordMap.Bounds() != b {
		return dimensionMismatch("sample rasters differ: %v, %v, %v",
			b, s.CharMap.Bounds(), s.WordMap.Bounds())
	}
	return nil
}
