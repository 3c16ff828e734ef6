package raster

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// NewGray allocates a gray image of w×h with all pixels set to fill.
func NewGray(w, h int, fill uint8) (*image.Gray, error) {
	if w <= 0 || h <= 0 {
		return nil, dimensionError(w, h)
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	if fill != 0 {
		for i := range img.Pix {
			img.Pix[i] = fill
		}
	}
	return img, nil
}

// ToGray converts an image to an 8-bit gray image with origin (0,0).
func ToGray(src image.Image) *image.Gray {
	b := src.Bounds()
	if g, ok := src.(*image.Gray); ok && b.Min == (image.Point{}) {
		return g
	}
	img := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(img, img.Bounds(), src, b.Min, xdraw.Src)
	return img
}

// Resize scales an image to w×h, using nearest-neighbour sampling.
// The result always is a new image.
func Resize(src image.Image, w, h int) (*image.Gray, error) {
	dst, err := NewGray(w, h, 0)
	if err != nil {
		return nil, err
	}
	sb := src.Bounds()
	if sb.Empty() {
		return nil, dimensionError(sb.Dx(), sb.Dy())
	}
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst, nil
}

// ResizeToHeight scales an image to height h, preserving its aspect ratio.
// The new width is truncated towards zero.
func ResizeToHeight(src image.Image, h int) (*image.Gray, error) {
	b := src.Bounds()
	if b.Dy() <= 0 {
		return nil, dimensionError(b.Dx(), b.Dy())
	}
	w := h * b.Dx() / b.Dy()
	return Resize(src, w, h)
}

// Paste copies src into dst with the top-left corner of src at (x, y).
func Paste(dst *image.Gray, src *image.Gray, x, y int) {
	sb := src.Bounds()
	r := image.Rect(x, y, x+sb.Dx(), y+sb.Dy())
	xdraw.Draw(dst, r, src, sb.Min, xdraw.Src)
}

// Binarize turns a scanned glyph (dark ink on white paper) into a foreground
// mask: every pixel which is not pure white becomes 1, white becomes 0.
func Binarize(src *image.Gray) *image.Gray {
	b := src.Bounds()
	mask := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if src.GrayAt(b.Min.X+x, b.Min.Y+y).Y < 255 {
				mask.Pix[y*mask.Stride+x] = 1
			}
		}
	}
	return mask
}

// Threshold returns a mask with 1 for all pixels with intensity ≥ t.
func Threshold(src *image.Gray, t uint8) *image.Gray {
	b := src.Bounds()
	mask := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if src.GrayAt(b.Min.X+x, b.Min.Y+y).Y >= t {
				mask.Pix[y*mask.Stride+x] = 1
			}
		}
	}
	return mask
}

// Expand maps a 0/1 mask to 0/255, e.g. for writing it as a viewable image.
func Expand(mask *image.Gray) *image.Gray {
	out := ToGray(mask)
	if out == mask {
		out = image.NewGray(mask.Bounds())
		copy(out.Pix, mask.Pix)
	}
	for i, v := range out.Pix {
		if v > 0 {
			out.Pix[i] = 255
		}
	}
	return out
}

// PadAllAround adds a border of n pixels with value 0 on all four sides.
func PadAllAround(src *image.Gray, n int) (*image.Gray, error) {
	b := src.Bounds()
	out, err := NewGray(b.Dx()+2*n, b.Dy()+2*n, 0)
	if err != nil {
		return nil, err
	}
	Paste(out, src, n, n)
	return out, nil
}

// PadToFixed brings an image to exactly w×h. An image narrower than w is
// centered horizontally with zero padding; a wider one is scaled down to width
// w, keeping its aspect ratio. The same is done vertically. A final resize
// absorbs rounding differences.
func PadToFixed(src *image.Gray, w, h int) (*image.Gray, error) {
	if w <= 0 || h <= 0 {
		return nil, dimensionError(w, h)
	}
	img := ToGray(src)
	var err error
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw <= 0 || ih <= 0 {
		return nil, dimensionError(iw, ih)
	}
	if iw < w {
		padded, _ := NewGray(w, ih, 0)
		Paste(padded, img, (w-iw)/2, 0)
		img = padded
	} else if iw > w {
		if img, err = Resize(img, w, w*ih/iw); err != nil {
			return nil, err
		}
	}
	iw, ih = img.Bounds().Dx(), img.Bounds().Dy()
	if ih < h {
		padded, _ := NewGray(iw, h, 0)
		Paste(padded, img, 0, (h-ih)/2)
		img = padded
	} else if ih > h {
		if img, err = Resize(img, h*iw/ih, h); err != nil {
			return nil, err
		}
	}
	return Resize(img, w, h)
}
