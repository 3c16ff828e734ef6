package synth

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/npillmayer/glyphsynth/core"
	"github.com/npillmayer/glyphsynth/core/dimen"
	"github.com/npillmayer/glyphsynth/core/percent"
	"github.com/npillmayer/glyphsynth/core/raster"
	"github.com/npillmayer/schuko"
)

// Mode selects the kind of samples to generate.
type Mode int

const (
	Printed Mode = iota
	Handwritten
	Mixed
)

func (m Mode) String() string {
	switch m {
	case Printed:
		return "printed"
	case Handwritten:
		return "handwritten"
	case Mixed:
		return "mixed"
	}
	return "unknown-mode"
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "printed", "print":
		return Printed, nil
	case "handwritten", "hw":
		return Handwritten, nil
	case "mixed", "":
		return Mixed, nil
	}
	return Mixed, core.Error(core.EINVALID, "unknown mode %q", s)
}

// Config holds the parameters of a dataset generation run.
type Config struct {
	Font           string  // font name or path of a font file
	FontSize       float64 // in pixels
	Glyphs         string  // directory with one sub-folder of glyph images per label
	GlyphIndex     string  // CSV index of glyph images, alternative to Glyphs
	Corpus         string  // text or HTML file with lines of text
	CorpusSelector string  // CSS selector for HTML corpora
	Out            string  // output directory
	Samples        int
	Workers        int
	Seed           int64
	Mode           Mode
	CompDim        int     // height of handwritten samples
	HeatmapSize    int     // size of the heatmap kernel
	HeatmapRatio   float64 // spread of the heatmap kernel
	MinWords       int     // words per printed line
	MaxWords       int
	MinWordLen     int // grapheme clusters per random word
	MaxWordLen     int
	Extension      string          // filler appended to some printed lines, e.g. "-"
	ExtensionRate  percent.Percent // share of printed lines getting an extension

	OutWidth  int              // canvas width, 0 keeps the composed size
	OutHeight int              // canvas height
	Margin    int              // blank border around the sample
	Placement raster.Placement // fitting of samples onto the canvas
	Jitter    percent.Percent  // maximum growth of the placement box into the margin
}

// DefaultConfig returns a configuration with default values for all
// parameters except the input files.
func DefaultConfig() Config {
	return Config{
		FontSize:      32,
		Out:           "out",
		Samples:       100,
		Workers:       runtime.NumCPU(),
		Seed:          1,
		Mode:          Mixed,
		CompDim:       64,
		HeatmapSize:   512,
		HeatmapRatio:  1.5,
		MinWords:      1,
		MaxWords:      10,
		MinWordLen:    1,
		MaxWordLen:    10,
		ExtensionRate: 25,
	}
}

// ConfigFromSchuko reads a configuration. Keys not set keep their default
// values.
func ConfigFromSchuko(conf schuko.Configuration) (Config, error) {
	c := DefaultConfig()
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(conf.GetString(key)); v != "" {
			*dst = v
		}
	}
	var err error
	num := func(key string, dst *int) {
		if v := strings.TrimSpace(conf.GetString(key)); v != "" && err == nil {
			var n int
			if n, err = strconv.Atoi(v); err != nil {
				err = core.WrapError(err, core.EINVALID, "configuration key %s must be an integer, is %q", key, v)
				return
			}
			*dst = n
		}
	}
	float := func(key string, dst *float64) {
		if v := strings.TrimSpace(conf.GetString(key)); v != "" && err == nil {
			var f float64
			if f, err = strconv.ParseFloat(v, 64); err != nil {
				err = core.WrapError(err, core.EINVALID, "configuration key %s must be a number, is %q", key, v)
				return
			}
			*dst = f
		}
	}
	str("font", &c.Font)
	str("glyphs", &c.Glyphs)
	str("glyph-index", &c.GlyphIndex)
	str("corpus", &c.Corpus)
	str("corpus-selector", &c.CorpusSelector)
	str("out", &c.Out)
	str("extension", &c.Extension)
	if v := strings.TrimSpace(conf.GetString("font-size")); v != "" {
		if c.FontSize, err = dimen.ParsePixels(v, dimen.DPI); err != nil {
			return c, err
		}
	}
	if v := strings.TrimSpace(conf.GetString("extension-rate")); v != "" {
		if c.ExtensionRate, err = percent.FromString(v); err != nil {
			return c, err
		}
	}
	if v := strings.TrimSpace(conf.GetString("jitter")); v != "" {
		if c.Jitter, err = percent.FromString(v); err != nil {
			return c, err
		}
	}
	if c.Placement, err = raster.ParsePlacement(conf.GetString("placement")); err != nil {
		return c, err
	}
	float("heatmap-ratio", &c.HeatmapRatio)
	num("samples", &c.Samples)
	num("workers", &c.Workers)
	num("comp-dim", &c.CompDim)
	num("heatmap-size", &c.HeatmapSize)
	num("min-words", &c.MinWords)
	num("max-words", &c.MaxWords)
	num("min-word-len", &c.MinWordLen)
	num("max-word-len", &c.MaxWordLen)
	num("out-width", &c.OutWidth)
	num("out-height", &c.OutHeight)
	num("margin", &c.Margin)
	seed := int(c.Seed)
	num("seed", &seed)
	c.Seed = int64(seed)
	if err != nil {
		return c, err
	}
	if c.Mode, err = ParseMode(conf.GetString("mode")); err != nil {
		return c, err
	}
	return c, c.Validate()
}

// Validate checks the parameters for consistency.
func (c Config) Validate() error {
	switch {
	case c.FontSize <= 0:
		return core.Error(core.EINVALID, "font size must be positive, is %g", c.FontSize)
	case c.Samples < 0:
		return core.Error(core.EINVALID, "number of samples must not be negative, is %d", c.Samples)
	case c.Workers < 1:
		return core.Error(core.EINVALID, "number of workers must be positive, is %d", c.Workers)
	case c.CompDim < 1:
		return core.Error(core.EINVALID, "component dimension must be positive, is %d", c.CompDim)
	case c.HeatmapSize < 2:
		return core.Error(core.EINVALID, "heatmap size must be at least 2, is %d", c.HeatmapSize)
	case c.MinWords < 1 || c.MaxWords < c.MinWords:
		return core.Error(core.EINVALID, "invalid range of words per line %d…%d", c.MinWords, c.MaxWords)
	case c.MinWordLen < 1 || c.MaxWordLen < c.MinWordLen:
		return core.Error(core.EINVALID, "invalid range of word lengths %d…%d", c.MinWordLen, c.MaxWordLen)
	case c.OutWidth < 0 || c.OutHeight < 0 || (c.OutWidth > 0) != (c.OutHeight > 0):
		return core.Error(core.EINVALID, "canvas needs both width and height, has %d×%d", c.OutWidth, c.OutHeight)
	case c.Margin < 0:
		return core.Error(core.EINVALID, "margin must not be negative, is %d", c.Margin)
	case c.OutWidth > 0 && (2*c.Margin >= c.OutWidth || 2*c.Margin >= c.OutHeight):
		return core.Error(core.EINVALID, "margin %d leaves no room on a canvas of %d×%d",
			c.Margin, c.OutWidth, c.OutHeight)
	}
	return nil
}
