/*
Package raster provides the single-channel raster buffers used during
composition.

Images and masks are *image.Gray. Heatmaps are accumulated in a Field of
float32 values first and converted to *image.Gray (clipped to 0…255) when
composition is finished.

All resizing uses nearest-neighbour sampling, as intensity and mask values
must not be blended. Gray images are scaled with golang.org/x/image/draw;
Fields use the same pixel-center sampling rule (see Nearest).

Functions which create buffers return ErrDimension (wrapped) for zero or
negative sizes. Callers treat this as a broken invariant.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package raster

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glyphsynth.raster'.
func tracer() tracing.Trace {
	return tracing.Select("glyphsynth.raster")
}
