package heatmap

import (
	"errors"
	"testing"

	"github.com/npillmayer/glyphsynth/core/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKernelSymmetry(t *testing.T) {
	k, err := Generate(512, 1.5)
	require.NoError(t, err)
	n := k.Size()
	var max uint8
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v := k.At(x, y)
			if v != k.At(n-1-x, n-1-y) {
				t.Fatalf("kernel not symmetric under rotation at (%d,%d)", x, y)
			}
			if v > max {
				max = v
			}
		}
	}
	assert.Equal(t, max, k.At(n/2, n/2), "maximum expected at center")
	assert.Equal(t, max, k.At(n/2-1, n/2-1), "maximum expected at center")
	assert.Less(t, k.At(0, 0), max/4, "corners expected to be dark")
}

func TestKernelDeterministic(t *testing.T) {
	k1 := MustGenerate(64, 2)
	k2 := MustGenerate(64, 2)
	assert.Equal(t, k1.Gray().Pix, k2.Gray().Pix)
	assert.Equal(t, 2.0, k1.Spread())
}

func TestKernelZeroSpreadIsFlat(t *testing.T) {
	k := MustGenerate(8, 0)
	for _, v := range k.Gray().Pix {
		assert.Equal(t, uint8(255), v)
	}
}

func TestKernelInvalid(t *testing.T) {
	_, err := Generate(1, 1.5)
	assert.True(t, errors.Is(err, raster.ErrDimension))
	_, err = Generate(16, -1)
	assert.Error(t, err)
}

func TestKernelResizedIsCopy(t *testing.T) {
	k := MustGenerate(32, 1.5)
	before := k.Gray().Pix
	f, err := k.Resized(32, 32)
	require.NoError(t, err)
	f.Data[0] = 1000
	assert.Equal(t, before, k.Gray().Pix, "kernel must not be modified by stamping")
	_, err = k.Resized(0, 10)
	assert.True(t, errors.Is(err, raster.ErrDimension))
}

func TestKernelStrip(t *testing.T) {
	k := MustGenerate(64, 1.5)
	f, err := k.Strip(3, 90, 30)
	require.NoError(t, err)
	assert.Equal(t, 90, f.W)
	assert.Equal(t, 30, f.H)
	// three peaks along the middle row
	peaks, inside := 0, false
	for x := 0; x < f.W; x++ {
		hot := f.At(x, f.H/2) > 128
		if hot && !inside {
			peaks++
		}
		inside = hot
	}
	assert.Equal(t, 3, peaks)
}
