package font

import (
	"image"
	"math"

	"github.com/npillmayer/glyphsynth/core"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

func (tc *TypeCase) ppem() fixed.Int26_6 {
	return fixed.Int26_6(tc.size * 64)
}

// Extent returns ascent and descent of the typecase in pixels, both rounded
// up to full pixels.
func (tc *TypeCase) Extent() (ascent, descent int) {
	return tc.ascent, tc.descent
}

// Measure returns the size of the box a text will occupy when rendered:
// the sum of the glyph advances and the line height (ascent + descent).
func (tc *TypeCase) Measure(text string) (w, h int, err error) {
	var adv float64
	for _, g := range tc.Shape(text) {
		adv += g.XAdvance
	}
	return int(math.Ceil(adv)), tc.ascent + tc.descent, nil
}

// Render draws a text onto a new gray image of the size reported by Measure.
// The image is a coverage map: background is 0, solid ink is 255, edges of
// glyphs carry intermediate values.
func (tc *TypeCase) Render(text string) (*image.Gray, error) {
	w, h, err := tc.Measure(text)
	if err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, core.Error(core.EINVALID, "cannot render %q: empty extent %d×%d", text, w, h)
	}
	ascent := tc.ascent
	z := vector.NewRasterizer(w, h)
	sf := tc.scalableFontParent.SFNT
	var buf sfnt.Buffer
	var penX float64
	for _, g := range tc.Shape(text) {
		segments, err := sf.LoadGlyph(&buf, g.GID, tc.ppem(), nil)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "cannot load outline of glyph %d", g.GID)
		}
		ox := float32(penX + g.XOffset)
		oy := float32(float64(ascent) - g.YOffset)
		pt := func(p fixed.Point26_6) (float32, float32) {
			return ox + float32(p.X)/64, oy + float32(p.Y)/64
		}
		open := false
		for _, seg := range segments {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					z.ClosePath()
				}
				z.MoveTo(pt(seg.Args[0]))
				open = true
			case sfnt.SegmentOpLineTo:
				z.LineTo(pt(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				bx, by := pt(seg.Args[0])
				cx, cy := pt(seg.Args[1])
				z.QuadTo(bx, by, cx, cy)
			case sfnt.SegmentOpCubeTo:
				bx, by := pt(seg.Args[0])
				cx, cy := pt(seg.Args[1])
				dx, dy := pt(seg.Args[2])
				z.CubeTo(bx, by, cx, cy, dx, dy)
			}
		}
		if open {
			z.ClosePath()
		}
		penX += g.XAdvance
	}
	coverage := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(coverage, coverage.Bounds(), image.Opaque, image.Point{})
	img := image.NewGray(coverage.Bounds())
	copy(img.Pix, coverage.Pix)
	tracer().Debugf("rendered %q at %.1fpx into %d×%d", text, tc.size, w, h)
	return img, nil
}
