package raster

import (
	"errors"
	"image"

	"github.com/npillmayer/glyphsynth/core"
)

// ErrDimension is the error wrapped by all functions of this package when
// asked for a raster of zero or negative size.
var ErrDimension = errors.New("raster dimensions must be positive")

func dimensionError(w, h int) error {
	return core.WrapError(ErrDimension, core.EINTERNAL, "invalid raster size %d×%d", w, h)
}

// Field is a single-channel raster of float32 values, used to accumulate
// heatmap layers before they are clipped to 0…255.
type Field struct {
	W, H int
	Data []float32 // row-major
}

// NewField allocates a zero-valued field of w×h.
func NewField(w, h int) (*Field, error) {
	if w <= 0 || h <= 0 {
		return nil, dimensionError(w, h)
	}
	return &Field{W: w, H: h, Data: make([]float32, w*h)}, nil
}

// Bounds returns the rectangle (0,0)–(W,H).
func (f *Field) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.W, f.H)
}

// At returns the value at (x, y), or 0 for coordinates outside the field.
func (f *Field) At(x, y int) float32 {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return 0
	}
	return f.Data[y*f.W+x]
}

// Set sets the value at (x, y). Coordinates outside the field are ignored.
func (f *Field) Set(x, y int, v float32) {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return
	}
	f.Data[y*f.W+x] = v
}

// Add adds src element-wise into f, with the top-left corner of src placed at
// (x0, y0). Parts of src outside of f are dropped.
func (f *Field) Add(src *Field, x0, y0 int) {
	for sy := 0; sy < src.H; sy++ {
		y := y0 + sy
		if y < 0 || y >= f.H {
			continue
		}
		for sx := 0; sx < src.W; sx++ {
			x := x0 + sx
			if x < 0 || x >= f.W {
				continue
			}
			f.Data[y*f.W+x] += src.Data[sy*src.W+sx]
		}
	}
}

// Max returns the largest value of the field.
func (f *Field) Max() float32 {
	var m float32
	for i, v := range f.Data {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}

// IsZero is true if all values are 0.
func (f *Field) IsZero() bool {
	for _, v := range f.Data {
		if v != 0 {
			return false
		}
	}
	return true
}

// Resize returns a copy of f scaled to w×h by nearest-neighbour sampling.
func (f *Field) Resize(w, h int) (*Field, error) {
	r, err := NewField(w, h)
	if err != nil {
		return nil, err
	}
	if w == f.W && h == f.H {
		copy(r.Data, f.Data)
		return r, nil
	}
	xmap := make([]int, w)
	for x := range xmap {
		xmap[x] = Nearest(x, w, f.W)
	}
	for y := 0; y < h; y++ {
		srow := f.Data[Nearest(y, h, f.H)*f.W:]
		drow := r.Data[y*w : (y+1)*w]
		for x := range drow {
			drow[x] = srow[xmap[x]]
		}
	}
	return r, nil
}

// Gray converts the field to a gray image, clipping values to 0…255.
func (f *Field) Gray() *image.Gray {
	img := image.NewGray(f.Bounds())
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			v := f.Data[y*f.W+x]
			switch {
			case v <= 0:
				v = 0
			case v >= 255:
				v = 255
			}
			img.Pix[y*img.Stride+x] = uint8(v)
		}
	}
	return img
}

// Nearest maps coordinate dst of a target axis of length dstLen to the
// source axis of length srcLen, sampling at pixel centers. This is the rule
// golang.org/x/image/draw.NearestNeighbor uses.
func Nearest(dst, dstLen, srcLen int) int {
	s := (2*dst + 1) * srcLen / (2 * dstLen)
	if s >= srcLen {
		s = srcLen - 1
	}
	return s
}
