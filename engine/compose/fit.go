package compose

import (
	"image"
	"math"
	"math/rand"

	"github.com/npillmayer/glyphsynth/core/raster"
)

// Pad surrounds all rasters of a sample with a blank border of n pixels.
func (s Sample) Pad(n int) (Sample, error) {
	if n <= 0 {
		return s, nil
	}
	var out Sample
	var err error
	if out.Image, err = raster.PadAllAround(s.Image, n); err != nil {
		return s, mismatch(err, "padding")
	}
	out.CharMap, _ = raster.PadAllAround(s.CharMap, n)
	out.WordMap, _ = raster.PadAllAround(s.WordMap, n)
	return out, out.check()
}

// Fit places a sample onto a canvas of w×h pixels, into the box inset by
// margin on every side, following opts. All three rasters are placed with the
// same geometry; with opts.Extend set the box grows by a random amount into
// the margin, drawn once from rnd.
func (s Sample) Fit(w, h, margin int, opts raster.PlaceOptions, rnd Chooser) (Sample, error) {
	if margin < 0 || 2*margin >= w || 2*margin >= h {
		return s, dimensionMismatch("cannot fit sample into %d×%d with margin %d", w, h, margin)
	}
	labels, err := raster.NewGray(w, h, 0)
	if err != nil {
		return s, mismatch(err, "fitting")
	}
	for y := margin; y < h-margin; y++ {
		for x := margin; x < w-margin; x++ {
			labels.Pix[y*labels.Stride+x] = 1
		}
	}
	var seed int64
	if rnd != nil {
		seed = int64(rnd.Intn(math.MaxInt32))
	}
	place := func(layer *image.Gray) (*image.Gray, error) {
		placed, err := raster.PlaceOnMask(layer, labels, 1, opts, rand.New(rand.NewSource(seed)))
		return placed, mismatch(err, "fitting")
	}
	var out Sample
	if out.Image, err = place(s.Image); err != nil {
		return s, err
	}
	if out.CharMap, err = place(s.CharMap); err != nil {
		return s, err
	}
	if out.WordMap, err = place(s.WordMap); err != nil {
		return s, err
	}
	tracer().Debugf("fitted %s into %d×%d (%s)", s, w, h, opts.Placement)
	return out, out.check()
}
