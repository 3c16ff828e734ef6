package compose

import (
	"image"

	"github.com/npillmayer/glyphsynth/core/raster"
)

// Extension renders a filler string (e.g. "-" or ".") as often as it fits
// into maxWidth. If it fits less than twice, Extension returns nil.
// The result is a 0/1 mask.
func Extension(ext string, font FontProvider, maxWidth int) (*image.Gray, error) {
	w, h, err := font.Measure(ext)
	if err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, dimensionMismatch("extension %q has extent %d×%d", ext, w, h)
	}
	n := maxWidth / w
	if n <= 1 {
		return nil, nil
	}
	rendered, err := font.Render(ext)
	if err != nil {
		return nil, err
	}
	one := raster.Threshold(rendered, 128)
	strip, err := raster.NewGray(n*w, one.Bounds().Dy(), 0)
	if err != nil {
		return nil, mismatch(err, "extension")
	}
	for i := 0; i < n; i++ {
		raster.Paste(strip, one, i*w, 0)
	}
	return strip, nil
}

// Extend appends an extension mask to the right of a sample. The extension is
// scaled to the height of the sample; the heatmaps are zero below it.
func (s Sample) Extend(ext *image.Gray) (Sample, error) {
	if ext == nil {
		return s, nil
	}
	sz := s.Size()
	scaled, err := raster.ResizeToHeight(ext, sz.Y)
	if err != nil || scaled.Bounds().Dx() == 0 {
		return s, dimensionMismatch("cannot scale extension to height %d", sz.Y)
	}
	w := sz.X + scaled.Bounds().Dx()
	out := Sample{}
	out.Image, _ = raster.NewGray(w, sz.Y, 0)
	out.CharMap, _ = raster.NewGray(w, sz.Y, 0)
	out.WordMap, _ = raster.NewGray(w, sz.Y, 0)
	raster.Paste(out.Image, s.Image, 0, 0)
	raster.Paste(out.Image, scaled, sz.X, 0)
	raster.Paste(out.CharMap, s.CharMap, 0, 0)
	raster.Paste(out.WordMap, s.WordMap, 0, 0)
	return out, out.check()
}
