package font

import (
	"encoding/binary"
	"unicode"

	hb "github.com/benoitkugler/textlayout/harfbuzz"
	hblang "github.com/benoitkugler/textlayout/language"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/language"
)

// --- Type conversion -------------------------------------------------------

// Lang4HB returns a language tag as a HarfBuzz language.
func Lang4HB(l language.Tag) hblang.Language {
	return hblang.NewLanguage(l.String())
}

// Script4HB returns a script as a HarfBuzz script.
func Script4HB(s language.Script) hblang.Script {
	b := []byte(s.String())
	b[0] = byte(unicode.ToLower(rune(b[0])))
	h := binary.BigEndian.Uint32(b)
	return hblang.Script(h)
}

var (
	scriptBengali = language.MustParseScript("Beng")
	scriptLatin   = language.MustParseScript("Latn")
)

// ScriptOf returns the script HarfBuzz should shape a text with: Bengali if
// the text contains any character of the Bengali block, Latin otherwise.
func ScriptOf(text string) (language.Script, language.Tag) {
	for _, r := range text {
		if unicode.Is(unicode.Bengali, r) {
			return scriptBengali, language.Bengali
		}
	}
	return scriptLatin, language.English
}

// --- Shape -----------------------------------------------------------------

// ShapedGlyph is a glyph positioned by the shaper. Advances and offsets are in
// pixels; offsets follow HarfBuzz and point upwards.
type ShapedGlyph struct {
	GID              sfnt.GlyphIndex
	Cluster          int
	XAdvance         float64
	XOffset, YOffset float64
}

// Shape converts a text into a sequence of positioned glyphs.
func (tc *TypeCase) Shape(text string) []ShapedGlyph {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	script, lang := ScriptOf(text)
	buf := hb.NewBuffer()
	buf.Props = hb.SegmentProperties{
		Language:  Lang4HB(lang),
		Script:    Script4HB(script),
		Direction: hb.LeftToRight,
	}
	buf.AddRunes(runes, 0, len(runes))
	tc.mx.Lock()
	buf.Shape(tc.shaper, nil)
	tc.mx.Unlock()
	glyphs := make([]ShapedGlyph, len(buf.Info))
	for i, ginfo := range buf.Info {
		gpos := buf.Pos[i]
		glyphs[i] = ShapedGlyph{
			GID:      sfnt.GlyphIndex(ginfo.Glyph),
			Cluster:  ginfo.Cluster,
			XAdvance: tc.scale(int32(gpos.XAdvance)),
			XOffset:  tc.scale(int32(gpos.XOffset)),
			YOffset:  tc.scale(int32(gpos.YOffset)),
		}
	}
	tracer().Debugf("shaped %q (%s) into %d glyphs", text, script, len(glyphs))
	return glyphs
}
