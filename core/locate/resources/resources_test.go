package resources

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/glyphsynth/core"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func TestDecodeImage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.resources")
	defer teardown()
	//
	dir := t.TempDir()
	src := image.NewGray(image.Rect(0, 0, 3, 2))
	src.SetGray(1, 1, color.Gray{Y: 200})
	imgpath := filepath.Join(dir, "glyph.png")
	f, err := os.Create(imgpath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())
	//
	img, err := ResolveImage(imgpath).Image()
	require.NoError(t, err)
	assert.Equal(t, image.Pt(3, 2), img.Bounds().Size())
	r, _, _, _ := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(200), r>>8)
	//
	_, err = DecodeImage(filepath.Join(dir, "missing.png"))
	assert.Equal(t, core.EMISSING, core.Code(err))
	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("no image"), 0644))
	_, err = DecodeImage(garbage)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestResolveFontFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.resources")
	defer teardown()
	//
	fontpath := filepath.Join(t.TempDir(), "GoTestSans-Regular.ttf")
	require.NoError(t, os.WriteFile(fontpath, goregular.TTF, 0644))
	conf := testconfig.Conf{}
	typecase, err := ResolveTypeCase(conf, fontpath, xfont.StyleNormal, xfont.WeightNormal, 24).TypeCase()
	require.NoError(t, err)
	require.NotNil(t, typecase)
	assert.Equal(t, 24.0, typecase.Size())
	assert.Equal(t, fontpath, typecase.ScalableFontParent().Filepath)
}

func TestResolveMissingFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.resources")
	defer teardown()
	//
	conf := testconfig.Conf{}
	typecase, err := ResolveTypeCase(conf, "no-such-font-glyphsynth", xfont.StyleNormal,
		xfont.WeightNormal, 24).TypeCase()
	assert.Equal(t, core.EMISSING, core.Code(err))
	require.NotNil(t, typecase, "expected fallback typecase")
	assert.Equal(t, "Go Sans", typecase.ScalableFontParent().Fontname)
}

func TestParseFontConfigList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.resources")
	defer teardown()
	//
	fclist := `/usr/share/fonts/noto/NotoSansBengali-Bold.ttf: Noto Sans Bengali:style=Bold
/usr/share/fonts/noto/NotoSansBengali-Regular.ttf: Noto Sans Bengali,Noto Sans Bengali Regular:style=Regular
/usr/share/fonts/Helvetica.ttc: Helvetica:style=Regular
broken line
`
	descs, err := parseFontConfigList(strings.NewReader(fclist))
	require.NoError(t, err)
	require.Len(t, descs, 2)
	assert.Equal(t, "Noto Sans Bengali", descs[1].Family)
	assert.Equal(t, []string{"regular"}, descs[1].Variants)
	assert.Equal(t, []string{"bold"}, descs[0].Variants)
}

func TestCacheDirNeedsAppKey(t *testing.T) {
	_, err := CacheDirPath(testconfig.Conf{})
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.False(t, errors.Is(err, os.ErrNotExist))
}
