package heatmap

import (
	"fmt"
	"image"
	"math"

	"github.com/npillmayer/glyphsynth/core"
	"github.com/npillmayer/glyphsynth/core/raster"
)

// Kernel is a square Gaussian intensity tile with values 0…255.
// The maximum is located at the center, values fall off radially.
type Kernel struct {
	size   int
	spread float64
	pix    []uint8 // row-major, size×size
}

// Generate creates a kernel of size×size pixels. For each pixel the distance
// from the center is scaled by spread/(size/2) and mapped through
// exp(-d²/2)·255. Larger spread values make the peak narrower.
//
// The kernel depends on (size, spread) only; it is never modified after
// creation and may be shared freely.
func Generate(size int, spread float64) (*Kernel, error) {
	if size < 2 {
		return nil, core.WrapError(raster.ErrDimension, core.EINVALID,
			"heatmap kernel size must be at least 2, is %d", size)
	}
	if spread < 0 || math.IsNaN(spread) || math.IsInf(spread, 0) {
		return nil, core.Error(core.EINVALID, "heatmap spread ratio must be a non-negative number, is %v", spread)
	}
	k := &Kernel{
		size:   size,
		spread: spread,
		pix:    make([]uint8, size*size),
	}
	// sample points are size points evenly spaced in [-size/2, size/2];
	// |2i-(size-1)| keeps them exactly symmetric
	coord := make([]float64, size)
	step := float64(size) / float64(2*(size-1))
	for i := range coord {
		c := 2*i - (size - 1)
		if c < 0 {
			c = -c
		}
		coord[i] = float64(c) * step
	}
	scale := spread / (float64(size) / 2)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Sqrt(coord[x]*coord[x]+coord[y]*coord[y]) * scale
			v := math.Exp(-0.5*d*d) * 255
			k.pix[y*size+x] = uint8(math.Max(0, math.Min(255, v)))
		}
	}
	return k, nil
}

// MustGenerate is like Generate, but panics on invalid parameters.
// It is intended for package-level kernels.
func MustGenerate(size int, spread float64) *Kernel {
	k, err := Generate(size, spread)
	if err != nil {
		panic(err)
	}
	return k
}

func (k *Kernel) String() string {
	return fmt.Sprintf("heatmap(%d×%d, spread %.2f)", k.size, k.size, k.spread)
}

// Size returns the edge length of the kernel.
func (k *Kernel) Size() int {
	return k.size
}

// Spread returns the spread ratio the kernel has been generated with.
func (k *Kernel) Spread() float64 {
	return k.spread
}

// At returns the intensity at (x, y). Out-of-range coordinates yield 0.
func (k *Kernel) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= k.size || y >= k.size {
		return 0
	}
	return k.pix[y*k.size+x]
}

// Gray returns a copy of the kernel as a gray image.
func (k *Kernel) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, k.size, k.size))
	copy(img.Pix, k.pix)
	return img
}

// Resized returns a copy of the kernel, scaled to w×h with nearest-neighbour
// sampling.
func (k *Kernel) Resized(w, h int) (*raster.Field, error) {
	return k.Strip(1, w, h)
}

// Strip returns n copies of the kernel placed side by side and scaled as a
// whole to w×h. Sampling is done by coordinate, no intermediate strip of
// n·size pixels width is allocated.
func (k *Kernel) Strip(n, w, h int) (*raster.Field, error) {
	if n < 1 {
		return nil, core.WrapError(raster.ErrDimension, core.EINVALID,
			"heatmap strip needs at least one tile, has %d", n)
	}
	f, err := raster.NewField(w, h)
	if err != nil {
		return nil, err
	}
	xmap := make([]int, w) // column of the kernel for each target column
	for x := 0; x < w; x++ {
		xmap[x] = raster.Nearest(x, w, n*k.size) % k.size
	}
	for y := 0; y < h; y++ {
		ky := raster.Nearest(y, h, k.size)
		row := k.pix[ky*k.size : (ky+1)*k.size]
		for x := 0; x < w; x++ {
			f.Data[y*w+x] = float32(row[xmap[x]])
		}
	}
	return f, nil
}
