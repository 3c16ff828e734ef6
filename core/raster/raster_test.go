package raster

import (
	"errors"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/npillmayer/glyphsynth/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearest(t *testing.T) {
	for x := 0; x < 10; x++ {
		assert.Equal(t, x, Nearest(x, 10, 10))
	}
	assert.Equal(t, 0, Nearest(0, 4, 2))
	assert.Equal(t, 0, Nearest(1, 4, 2))
	assert.Equal(t, 1, Nearest(2, 4, 2))
	assert.Equal(t, 1, Nearest(3, 4, 2))
	assert.Equal(t, 1, Nearest(0, 1, 3)) // center of source
}

func TestFieldResizeAndClip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.raster")
	defer teardown()
	//
	f, err := NewField(2, 1)
	require.NoError(t, err)
	f.Set(0, 0, -5)
	f.Set(1, 0, 300)
	r, err := f.Resize(4, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{-5, -5, 300, 300, -5, -5, 300, 300}, r.Data)
	g := r.Gray()
	assert.Equal(t, []uint8{0, 0, 255, 255, 0, 0, 255, 255}, g.Pix)
	_, err = f.Resize(0, 3)
	assert.True(t, errors.Is(err, ErrDimension))
	assert.Equal(t, core.EINTERNAL, core.Code(err))
}

func TestFieldAdd(t *testing.T) {
	dst, _ := NewField(4, 2)
	src, _ := NewField(3, 3)
	for i := range src.Data {
		src.Data[i] = 1
	}
	dst.Add(src, 2, 0)
	dst.Add(src, 3, 1)
	assert.Equal(t, []float32{0, 0, 1, 1, 0, 0, 1, 2}, dst.Data)
	assert.Equal(t, float32(2), dst.Max())
	assert.False(t, dst.IsZero())
}

func TestResizeGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	copy(src.Pix, []uint8{1, 2, 3, 4})
	dst, err := Resize(src, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), dst.GrayAt(1, 1).Y)
	assert.Equal(t, uint8(4), dst.GrayAt(3, 3).Y)
	assert.Equal(t, uint8(2), dst.GrayAt(2, 0).Y)
	r, err := ResizeToHeight(image.NewGray(image.Rect(0, 0, 30, 10)), 5)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(15, 5), r.Bounds().Size())
}

func TestBinarizeAndThreshold(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 1))
	copy(src.Pix, []uint8{255, 254, 0, 128})
	assert.Equal(t, []uint8{0, 1, 1, 1}, Binarize(src).Pix)
	assert.Equal(t, []uint8{1, 1, 0, 1}, Threshold(src, 128).Pix)
	assert.Equal(t, []uint8{0, 255, 255, 255}, Expand(Binarize(src)).Pix)
	assert.Equal(t, []uint8{255, 254, 0, 128}, src.Pix, "source must stay unchanged")
}

func TestPadding(t *testing.T) {
	src, _ := NewGray(2, 2, 1)
	padded, err := PadAllAround(src, 3)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(8, 8), padded.Bounds().Size())
	assert.Equal(t, uint8(1), padded.GrayAt(3, 3).Y)
	assert.Equal(t, uint8(0), padded.GrayAt(2, 3).Y)
	//
	fixed, err := PadToFixed(src, 6, 4)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(6, 4), fixed.Bounds().Size())
	assert.Equal(t, uint8(1), fixed.GrayAt(2, 1).Y)
	assert.Equal(t, uint8(0), fixed.GrayAt(0, 0).Y)
	wide, _ := NewGray(20, 2, 1)
	fixed, err = PadToFixed(wide, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(10, 10), fixed.Bounds().Size())
}

func TestPlaceOnMask(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.raster")
	defer teardown()
	//
	labels := image.NewGray(image.Rect(0, 0, 20, 20))
	for y := 5; y <= 15; y++ {
		for x := 2; x <= 12; x++ {
			labels.SetGray(x, y, grayOf(3))
		}
	}
	word, _ := NewGray(5, 5, 1)
	mask, err := PlaceOnMask(word, labels, 3, PlaceOptions{}, nil)
	require.NoError(t, err)
	assert.Equal(t, labels.Bounds(), mask.Bounds())
	assert.Equal(t, uint8(1), mask.GrayAt(2, 5).Y)
	assert.Equal(t, uint8(1), mask.GrayAt(11, 14).Y)
	assert.Equal(t, uint8(0), mask.GrayAt(12, 15).Y) // region box is half-open
	assert.Equal(t, uint8(0), mask.GrayAt(1, 5).Y)
	//
	mask, err = PlaceOnMask(word, labels, 3, PlaceOptions{
		Placement: PreserveAspectThenPad,
		Extend:    true,
		ExtMin:    10,
		ExtMax:    20,
	}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, labels.Bounds(), mask.Bounds())
	//
	_, err = PlaceOnMask(word, labels, 7, PlaceOptions{}, nil)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func grayOf(v uint8) color.Gray {
	return color.Gray{Y: v}
}

func TestParsePlacement(t *testing.T) {
	for in, want := range map[string]Placement{
		"":                          StretchToFill,
		"stretch":                   StretchToFill,
		"Stretch-To-Fill":           StretchToFill,
		"preserve":                  PreserveAspectThenPad,
		" preserve-aspect-then-pad": PreserveAspectThenPad,
	} {
		p, err := ParsePlacement(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, p, in)
	}
	_, err := ParsePlacement("crop")
	assert.Equal(t, core.EINVALID, core.Code(err))
}
