package font

import (
	"bytes"
	"os"
	"sync"

	hbtt "github.com/benoitkugler/textlayout/fonts/truetype"
	hb "github.com/benoitkugler/textlayout/harfbuzz"
	"github.com/npillmayer/glyphsynth/core"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a font loaded from an OpenType or TrueType file.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container, safe for concurrent use
}

// Descriptor describes a font file found on the system, e.g. by fontconfig.
type Descriptor struct {
	Family   string
	Path     string
	Variants []string
}

// LoadOpenTypeFont loads and parses a font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses the binary data of an OpenType font.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font")
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// TypeCase is a scalable font at a given pixel size.
//
// A TypeCase may be shared between goroutines.
type TypeCase struct {
	scalableFontParent *ScalableFont
	size               float64 // in pixels per em
	upem               float64
	ascent, descent    int        // in pixels, rounded up
	mx                 sync.Mutex // guards the shaper
	shaper             *hb.Font
}

// Font sizes outside this range are replaced by DefaultSize.
const (
	MinSize     = 5.0
	MaxSize     = 500.0
	DefaultSize = 32.0
)

// PrepareCase creates a typecase for a font at a given size in pixels.
func (sf *ScalableFont) PrepareCase(fontsize float64) (*TypeCase, error) {
	if fontsize < MinSize || fontsize > MaxSize {
		tracer().Errorf("font size must be %gpx < size < %gpx, is %g (set to %gpx)",
			MinSize, MaxSize, fontsize, DefaultSize)
		fontsize = DefaultSize
	}
	face, err := hbtt.Parse(bytes.NewReader(sf.Binary), true)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot prepare font %s for shaping", sf.Fontname)
	}
	// a size in points at 72 DPI is a size in pixels
	oface, err := opentype.NewFace(sf.SFNT, &opentype.FaceOptions{Size: fontsize, DPI: 72})
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot scale font %s", sf.Fontname)
	}
	defer oface.Close()
	metrics := oface.Metrics()
	typecase := &TypeCase{
		scalableFontParent: sf,
		size:               fontsize,
		upem:               float64(sf.SFNT.UnitsPerEm()),
		ascent:             metrics.Ascent.Ceil(),
		descent:            metrics.Descent.Ceil(),
		shaper:             hb.NewFont(face),
	}
	tracer().Debugf("prepared typecase %s at %.1fpx", sf.Fontname, fontsize)
	return typecase, nil
}

// ScalableFontParent returns the font this typecase has been derived from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// Size returns the size of the typecase in pixels per em.
func (tc *TypeCase) Size() float64 {
	return tc.size
}

// scale converts font units to pixels.
func (tc *TypeCase) scale(units int32) float64 {
	return float64(units) * tc.size / tc.upem
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans, which does not cover Bengali.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else failes.
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	gofont, err := ParseOpenTypeFont(goregular.TTF)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	gofont.Fontname = "Go Sans"
	gofont.Filepath = "internal"
	return gofont
}
