package compose

import (
	"errors"
	"fmt"
	"image"
	"math/rand"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/glyphsynth/core"
	"github.com/npillmayer/glyphsynth/core/font"
	"github.com/npillmayer/glyphsynth/core/heatmap"
	"github.com/npillmayer/glyphsynth/core/raster"
	"github.com/npillmayer/glyphsynth/core/script"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monoFont is a font provider with a fixed advance for every rune. Runes
// other than space are drawn as solid boxes.
type monoFont struct {
	adv, height int
}

func (f monoFont) Measure(text string) (int, int, error) {
	return f.adv * utf8.RuneCountInString(text), f.height, nil
}

func (f monoFont) Render(text string) (*image.Gray, error) {
	w, h, _ := f.Measure(text)
	img, err := raster.NewGray(w, h, 0)
	if err != nil {
		return nil, err
	}
	for i, r := range []rune(text) {
		if r == ' ' {
			continue
		}
		for y := h / 4; y < 3*h/4; y++ {
			for x := i*f.adv + 1; x < (i+1)*f.adv-1; x++ {
				img.Pix[y*img.Stride+x] = 255
			}
		}
	}
	return img, nil
}

// fakeStore serves generated glyph scans: dark boxes on white paper, with a
// box size depending on the image path.
type fakeStore map[string][]string

func (s fakeStore) Lookup(label string) []string {
	return s[label]
}

func (s fakeStore) LoadGlyph(path string) (*image.Gray, error) {
	var n int
	fmt.Sscanf(path, "g%d", &n)
	img, _ := raster.NewGray(30, 40, 255)
	for y := 5; y < 35; y++ {
		for x := 3 + n%5; x < 27-n%3; x++ {
			img.Pix[y*img.Stride+x] = uint8(n % 50)
		}
	}
	return img, nil
}

func testKernel() *heatmap.Kernel {
	return heatmap.MustGenerate(64, 1.5)
}

// peaks counts runs of values above 128 on the middle row of img.
func peaks(img *image.Gray) int {
	y := img.Bounds().Dy() / 2
	n, in := 0, false
	for x := 0; x < img.Bounds().Dx(); x++ {
		if v := img.GrayAt(x, y).Y; v > 128 && !in {
			n++
			in = true
		} else if v <= 128 {
			in = false
		}
	}
	return n
}

func assertCoRegistered(t *testing.T, s Sample) {
	t.Helper()
	assert.Equal(t, s.Image.Bounds(), s.CharMap.Bounds())
	assert.Equal(t, s.Image.Bounds(), s.WordMap.Bounds())
	for _, v := range s.Image.Pix {
		if v > 1 {
			t.Fatalf("image is expected to be a 0/1 mask, has value %d", v)
		}
	}
}

func TestBoundaryLayer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.compose")
	defer teardown()
	//
	k := testKernel()
	for n := 1; n <= 5; n++ {
		f, err := boundaryLayer(k, n, 100*n, 100)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 100*n, 100), f.Bounds())
		assert.Equal(t, n-1, peaks(f.Gray()), "expected %d boundary peaks", n-1)
		if n == 1 {
			assert.True(t, f.IsZero())
		}
	}
	_, err := boundaryLayer(k, 5, 4, 100)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	assert.Equal(t, core.EINTERNAL, core.Code(err))
}

func TestPrintedLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.compose")
	defer teardown()
	//
	pl := NewPrinted(testKernel(), nil)
	s, err := pl.Compose("কখগ ঘ", monoFont{adv: 40, height: 60})
	require.NoError(t, err)
	assertCoRegistered(t, s)
	assert.Equal(t, image.Pt(200, 60), s.Size())
	assert.Equal(t, uint8(1), s.Image.GrayAt(20, 30).Y)
	assert.Equal(t, uint8(0), s.Image.GrayAt(140, 30).Y) // the space
	assert.Equal(t, 4, peaks(s.CharMap))
	assert.Equal(t, 2, peaks(s.WordMap))
	// nothing of the boundary map may fall onto the single-cluster word
	for x := 160; x < 200; x++ {
		assert.Equal(t, uint8(0), s.WordMap.GrayAt(x, 30).Y)
	}
}

func TestPrintedSingleCluster(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.compose")
	defer teardown()
	//
	pl := NewPrinted(testKernel(), script.NewSegmenter(nil))
	s, err := pl.Compose("স্ত্রী", monoFont{adv: 10, height: 30})
	require.NoError(t, err)
	assertCoRegistered(t, s)
	for _, v := range s.WordMap.Pix {
		require.Equal(t, uint8(0), v)
	}
	assert.Equal(t, 1, peaks(s.CharMap))
	//
	_, err = pl.Compose("  ", monoFont{adv: 10, height: 30})
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
}

func TestPrintedCollapsesWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.compose")
	defer teardown()
	//
	pl := NewPrinted(testKernel(), nil)
	mono := monoFont{adv: 40, height: 60}
	loose, err := pl.Compose("  ক   খ\t", mono)
	require.NoError(t, err)
	tight, err := pl.Compose("ক খ", mono)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(120, 60), loose.Size())
	assert.Equal(t, tight.Image.Pix, loose.Image.Pix)
	assert.Equal(t, tight.CharMap.Pix, loose.CharMap.Pix)
	// heat stays on the glyphs, not on the blank between them
	for y := 0; y < 60; y++ {
		assert.Equal(t, uint8(0), loose.Image.GrayAt(60, y).Y)
	}
	assert.Greater(t, loose.CharMap.GrayAt(100, 30).Y, loose.CharMap.GrayAt(60, 30).Y)
}

func TestPrintedWithFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.compose")
	defer teardown()
	//
	tc, err := font.FallbackFont().PrepareCase(32)
	require.NoError(t, err)
	pl := NewPrinted(testKernel(), script.UAXSegmenter{})
	s, err := pl.Compose("hello world", tc)
	require.NoError(t, err)
	assertCoRegistered(t, s)
	w, h, _ := tc.Measure("hello world")
	assert.Equal(t, image.Pt(w, h), s.Size())
}

func wordStore() fakeStore {
	return fakeStore{
		"কি": {"g1", "g2", "g3"},
		"কু": {"g4", "g5"},
		"ক":  {"g6", "g7", "g8", "g9"},
	}
}

func TestHandwrittenWord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.compose")
	defer teardown()
	//
	hw := NewHandwritten(testKernel(), DefaultPolicy(), nil)
	comps := []string{"ং", "কি", "কু", "ক"}
	s, err := hw.Compose(wordStore(), comps, rand.New(rand.NewSource(7)), 52)
	require.NoError(t, err)
	assertCoRegistered(t, s)
	assert.Equal(t, image.Pt(96, 52), s.Size()) // 3 glyphs of 64 at height 104
	assert.Equal(t, 3, peaks(s.CharMap))
	assert.Equal(t, 2, peaks(s.WordMap))
	var ink int
	for _, v := range s.Image.Pix {
		ink += int(v)
	}
	assert.Greater(t, ink, 0)
}

func TestHandwrittenPadStrips(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.compose")
	defer teardown()
	//
	hw := NewHandwritten(testKernel(), DefaultPolicy(), nil)
	// "কি" extends to the top, so "ক" gets a blank strip of height Pad above it
	s, err := hw.Compose(wordStore(), []string{"ক", "কি"}, rand.New(rand.NewSource(3)), 84)
	require.NoError(t, err)
	assertCoRegistered(t, s)
	require.Equal(t, image.Pt(128, 84), s.Size())
	pad := DefaultPolicy().Pad
	for y := 0; y < pad; y++ {
		for x := 0; x < 64; x++ {
			require.Equal(t, uint8(0), s.Image.GrayAt(x, y).Y, "image at (%d,%d)", x, y)
			require.Equal(t, uint8(0), s.CharMap.GrayAt(x, y).Y, "char heat at (%d,%d)", x, y)
		}
	}
	inkAbove := 0
	for y := 0; y < pad; y++ {
		for x := 64; x < 128; x++ {
			inkAbove += int(s.Image.GrayAt(x, y).Y)
		}
	}
	assert.Greater(t, inkAbove, 0, "top-extending glyph starts at row 0")
	// the heat of "ক" is centered on its glyph, below the strip
	peak, px, py := uint8(0), 0, 0
	for y := 0; y < 84; y++ {
		for x := 0; x < 64; x++ {
			if v := s.CharMap.GrayAt(x, y).Y; v > peak {
				peak, px, py = v, x, y
			}
		}
	}
	assert.InDelta(t, 32, px, 1)
	assert.InDelta(t, pad+32, py, 1)
}

func TestHandwrittenDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.compose")
	defer teardown()
	//
	hw := NewHandwritten(testKernel(), DefaultPolicy(), nil)
	comps := []string{"কি", "ক", "কু", "ক", "কি"}
	s1, err := hw.Compose(wordStore(), comps, rand.New(rand.NewSource(42)), 64)
	require.NoError(t, err)
	s2, err := hw.Compose(wordStore(), comps, rand.New(rand.NewSource(42)), 64)
	require.NoError(t, err)
	assert.Equal(t, s1.Image.Pix, s2.Image.Pix)
	assert.Equal(t, s1.CharMap.Pix, s2.CharMap.Pix)
	assert.Equal(t, s1.WordMap.Pix, s2.WordMap.Pix)
}

func TestHandwrittenSingleComponent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.compose")
	defer teardown()
	//
	hw := NewHandwritten(testKernel(), DefaultPolicy(), nil)
	s, err := hw.Compose(wordStore(), []string{"ক"}, rand.New(rand.NewSource(1)), 32)
	require.NoError(t, err)
	assertCoRegistered(t, s)
	assert.Equal(t, image.Pt(32, 32), s.Size())
	for _, v := range s.WordMap.Pix {
		require.Equal(t, uint8(0), v)
	}
}

func TestHandwrittenFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.compose")
	defer teardown()
	//
	hw := NewHandwritten(testKernel(), DefaultPolicy(), nil)
	rnd := rand.New(rand.NewSource(1))
	_, err := hw.Compose(wordStore(), []string{"ক", "খ"}, rnd, 64)
	assert.True(t, errors.Is(err, ErrLookupFailure))
	assert.Equal(t, core.EMISSING, core.Code(err))
	//
	_, err = hw.Compose(wordStore(), []string{"ং", "ঃ"}, rnd, 64)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	_, err = hw.Compose(wordStore(), []string{"ক"}, rnd, 0)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	//
	policy := DefaultPolicy()
	policy.SinglePad = Dim{64, 90}
	hw = NewHandwritten(testKernel(), policy, nil)
	_, err = hw.Compose(wordStore(), []string{"কি", "ক"}, rnd, 64)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	assert.Equal(t, core.EINTERNAL, core.Code(err))
}

func TestClassify(t *testing.T) {
	p := DefaultPolicy()
	for comp, class := range map[string]AlignmentClass{
		"ক":   AlignNone,
		"কি":  AlignTop,
		"র্ক": AlignTop,
		"কৌ":  AlignTop,
		"ক্র": AlignBottom,
		"কূ":  AlignBottom,
		"র্কু": AlignBoth,
	} {
		assert.Equal(t, class, p.Classify(comp), "class of %q", comp)
	}
	assert.Equal(t, "tb", AlignBoth.String())
	p.Top = append(p.Top, " ")
	assert.Equal(t, AlignNone, p.Classify("ক"), "blank markers must not match")
}

func TestExtension(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.compose")
	defer teardown()
	//
	f := monoFont{adv: 10, height: 20}
	ext, err := Extension("-", f, 35)
	require.NoError(t, err)
	require.NotNil(t, ext)
	assert.Equal(t, image.Pt(30, 20), ext.Bounds().Size())
	ext2, err := Extension("-", f, 15)
	require.NoError(t, err)
	assert.Nil(t, ext2)
	//
	s, err := NewPrinted(testKernel(), nil).Compose("কখ", f)
	require.NoError(t, err)
	x, err := s.Extend(ext)
	require.NoError(t, err)
	assertCoRegistered(t, x)
	assert.Equal(t, image.Pt(50, 20), x.Size())
	assert.Equal(t, uint8(1), x.Image.GrayAt(25, 10).Y)
	assert.Equal(t, uint8(0), x.CharMap.GrayAt(45, 10).Y)
}

// uniformSample is a sample of w×h with every raster filled with a value of
// its own.
func uniformSample(w, h int) Sample {
	img, _ := raster.NewGray(w, h, 1)
	cm, _ := raster.NewGray(w, h, 200)
	wm, _ := raster.NewGray(w, h, 100)
	return Sample{Image: img, CharMap: cm, WordMap: wm}
}

func assertSameGeometry(t *testing.T, s Sample) {
	t.Helper()
	for i := range s.Image.Pix {
		on := s.Image.Pix[i] == 1
		require.Equal(t, on, s.CharMap.Pix[i] == 200, "char heat at offset %d", i)
		require.Equal(t, on, s.WordMap.Pix[i] == 100, "word heat at offset %d", i)
	}
}

func TestSamplePad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.compose")
	defer teardown()
	//
	hw := NewHandwritten(testKernel(), DefaultPolicy(), nil)
	s, err := hw.Compose(wordStore(), []string{"ক"}, rand.New(rand.NewSource(1)), 32)
	require.NoError(t, err)
	p, err := s.Pad(4)
	require.NoError(t, err)
	assertCoRegistered(t, p)
	assert.Equal(t, image.Pt(40, 40), p.Size())
	assert.Equal(t, s.CharMap.GrayAt(16, 16), p.CharMap.GrayAt(20, 20))
	for x := 0; x < 40; x++ {
		assert.Equal(t, uint8(0), p.CharMap.GrayAt(x, 0).Y)
		assert.Equal(t, uint8(0), p.Image.GrayAt(x, 39).Y)
	}
	same, err := s.Pad(0)
	require.NoError(t, err)
	assert.Equal(t, s.Size(), same.Size())
}

func TestSampleFit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.compose")
	defer teardown()
	//
	s := uniformSample(10, 10)
	f, err := s.Fit(100, 60, 10, raster.PlaceOptions{}, nil)
	require.NoError(t, err)
	assertCoRegistered(t, f)
	assertSameGeometry(t, f)
	assert.Equal(t, image.Pt(100, 60), f.Size())
	assert.Equal(t, uint8(1), f.Image.GrayAt(10, 10).Y)
	assert.Equal(t, uint8(1), f.Image.GrayAt(88, 48).Y)
	assert.Equal(t, uint8(0), f.Image.GrayAt(9, 30).Y)
	assert.Equal(t, uint8(0), f.Image.GrayAt(50, 9).Y)
	//
	// aspect preserved: a square of height 39, centered in the box
	f, err = s.Fit(100, 60, 10, raster.PlaceOptions{Placement: raster.PreserveAspectThenPad}, nil)
	require.NoError(t, err)
	assertSameGeometry(t, f)
	assert.Equal(t, uint8(0), f.Image.GrayAt(15, 30).Y)
	assert.Equal(t, uint8(1), f.Image.GrayAt(50, 30).Y)
	//
	// jitter grows the box into the margin, equally for all rasters
	opts := raster.PlaceOptions{Extend: true, ExtMin: 10, ExtMax: 20}
	f, err = s.Fit(100, 60, 10, opts, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	assertSameGeometry(t, f)
	assert.Equal(t, uint8(1), f.Image.GrayAt(50, 8).Y)
	assert.Equal(t, uint8(0), f.Image.GrayAt(50, 1).Y)
	//
	_, err = s.Fit(20, 40, 10, raster.PlaceOptions{}, nil)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
}
