package raster

import (
	"image"
	"strings"

	"github.com/npillmayer/glyphsynth/core"
	"github.com/npillmayer/glyphsynth/core/percent"
)

// Placement is a policy for fitting an image into a target region.
type Placement int

const (
	// StretchToFill scales the image to exactly the region's size.
	StretchToFill Placement = iota
	// PreserveAspectThenPad scales the image to the region's height, keeping its
	// aspect ratio, then pads or shrinks it to the region (see PadToFixed).
	PreserveAspectThenPad
)

func (p Placement) String() string {
	switch p {
	case StretchToFill:
		return "stretch-to-fill"
	case PreserveAspectThenPad:
		return "preserve-aspect-then-pad"
	}
	return "unknown-placement"
}

// ParsePlacement reads a placement policy by name. The empty string selects
// StretchToFill.
func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stretch", "stretch-to-fill":
		return StretchToFill, nil
	case "preserve", "preserve-aspect-then-pad":
		return PreserveAspectThenPad, nil
	}
	return StretchToFill, core.Error(core.EINVALID, "unknown placement %q", s)
}

// PlaceOptions controls PlaceOnMask.
type PlaceOptions struct {
	Placement Placement
	Extend    bool            // grow the region before placing
	ExtMin    percent.Percent // minimum extension, relative to the region's size
	ExtMax    percent.Percent // maximum extension, relative to the region's size
}

// PlaceOnMask places img into the bounding box of all pixels of labels having
// value region. It returns a new image of the size of labels, zero everywhere
// except for the placed image.
//
// With opts.Extend set, the bounding box is grown on each side by a random
// percentage in [ExtMin, ExtMax] of its height and width, as far as the
// labels image allows. rnd may be nil if Extend is not set or ExtMin equals
// ExtMax.
func PlaceOnMask(img *image.Gray, labels *image.Gray, region uint8, opts PlaceOptions,
	rnd core.Chooser) (*image.Gray, error) {
	//
	lb := labels.Bounds()
	ymin, xmin, ymax, xmax := lb.Max.Y, lb.Max.X, lb.Min.Y-1, lb.Min.X-1
	for y := lb.Min.Y; y < lb.Max.Y; y++ {
		for x := lb.Min.X; x < lb.Max.X; x++ {
			if labels.GrayAt(x, y).Y == region {
				ymin, ymax = min(ymin, y), max(ymax, y)
				xmin, xmax = min(xmin, x), max(xmax, x)
			}
		}
	}
	if ymax < ymin {
		return nil, core.Error(core.EMISSING, "no pixels with label %d", region)
	}
	if opts.Extend {
		hext, wext := opts.ExtMin, opts.ExtMin
		if opts.ExtMax > opts.ExtMin && rnd != nil {
			hext = percent.FromInt(core.RandomInRange(rnd, int(opts.ExtMin), int(opts.ExtMax)))
			wext = percent.FromInt(core.RandomInRange(rnd, int(opts.ExtMin), int(opts.ExtMax)))
		}
		dy, dx := hext.Of(ymax-ymin), wext.Of(xmax-xmin)
		if ymin-dy > lb.Min.Y {
			ymin -= dy
		}
		if ymax+dy <= lb.Max.Y {
			ymax += dy
		}
		if xmin-dx > lb.Min.X {
			xmin -= dx
		}
		if xmax+dx <= lb.Max.X {
			xmax += dx
		}
	}
	h, w := ymax-ymin, xmax-xmin
	tracer().Debugf("placing %v into region %d×%d at (%d,%d) with policy %s",
		img.Bounds().Size(), w, h, xmin, ymin, opts.Placement)
	var fitted *image.Gray
	var err error
	switch opts.Placement {
	case PreserveAspectThenPad:
		var scaled *image.Gray
		if scaled, err = ResizeToHeight(img, h); err == nil {
			fitted, err = PadToFixed(scaled, w, h)
		}
	default:
		fitted, err = Resize(img, w, h)
	}
	if err != nil {
		return nil, err
	}
	mask := image.NewGray(image.Rect(0, 0, lb.Dx(), lb.Dy()))
	Paste(mask, fitted, xmin-lb.Min.X, ymin-lb.Min.Y)
	return mask, nil
}
