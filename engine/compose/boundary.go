package compose

import (
	"github.com/npillmayer/glyphsynth/core/heatmap"
	"github.com/npillmayer/glyphsynth/core/raster"
)

// boundaryLayer builds the boundary heatmap for a word of n clusters,
// spanning w×h pixels.
//
// The word is divided into n cells of equal width. A kernel copy of the width
// of a cell and half the height is centered vertically on each of the n−1
// seams between cells. For n < 2 the layer is all zero.
func boundaryLayer(k *heatmap.Kernel, n, w, h int) (*raster.Field, error) {
	if n < 2 {
		f, err := raster.NewField(w, h)
		return f, mismatch(err, "boundary layer")
	}
	cell := w / n
	if cell <= 0 || h/2 <= 0 {
		return nil, dimensionMismatch("word of %d×%d too small for %d clusters", w, h, n)
	}
	stamp, err := k.Resized(cell, h/2)
	if err != nil {
		return nil, mismatch(err, "boundary stamp")
	}
	// the unscaled layer: half a cell left and right, a quarter height above
	// and below the stamps
	lw, lh := (n-1)*cell+2*(cell/2), 2*(h/4)+h/2
	layer, err := raster.NewField(lw, lh)
	if err != nil {
		return nil, mismatch(err, "boundary layer")
	}
	for i := 0; i < n-1; i++ {
		layer.Add(stamp, cell/2+i*cell, h/4)
	}
	tracer().Debugf("boundary layer: %d stamps of %d×%d on %d×%d", n-1, cell, h/2, lw, lh)
	f, err := layer.Resize(w, h)
	return f, mismatch(err, "boundary layer")
}
