/*
Package dimen implements typographic dimensions and units.

Sizes in glyphsynth are pixels, as fonts are rendered at 72 DPI. Users may
nevertheless give sizes in printer's units, e.g. a font size of "12pt" or
"4mm". This package converts between these.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dimen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/glyphsynth/core"
)

// Online dimension conversion for print:
// http://www.unitconversion.org/unit_converter/typography-ex.html

// Dimen is a dimension type.
// Values are in scaled big points (different from TeX).
type Dimen int32

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point = BP / 65536
	BP   Dimen = 65536   // big point (PDF) = 1/72 inch
	PX   Dimen = 65536   // "pixels" at 72 DPI
	PT   Dimen = 65291   // printers point 1/72.27 inch
	MM   Dimen = 185771  // millimeters
	CM   Dimen = 1857710 // centimeters
	IN   Dimen = 4718592 // inch
)

// DPI is the resolution fonts are rendered at.
const DPI = 72.0

// Stringer implementation.
func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in big (PDF) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(BP)
}

// Pixels returns a dimension in pixels for a given resolution.
func (d Dimen) Pixels(dpi float64) float64 {
	return float64(d) / float64(IN) * dpi
}

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+(?:\.[0-9]+)?)(%|[a-zA-Z]{2})?$`)

// ParseDimen parses a string to return a dimension. Syntax is CSS Unit.
// A number without unit is taken as scaled points.
// If a percentage value is given (`80%`), the second return value will be true.
func ParseDimen(s string) (Dimen, bool, error) {
	d := dimenPattern.FindStringSubmatch(strings.TrimSpace(s))
	if d == nil {
		return 0, false, core.Error(core.EINVALID, "format error parsing dimension %q", s)
	}
	scale := SP
	ispcnt := false
	switch strings.ToLower(d[2]) {
	case "pt":
		scale = PT
	case "mm":
		scale = MM
	case "bp", "px":
		scale = BP
	case "cm":
		scale = CM
	case "in":
		scale = IN
	case "sp", "":
		scale = SP
	case "%":
		scale, ispcnt = 1, true
	default:
		return 0, false, core.Error(core.EINVALID, "unknown unit in dimension %q", s)
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, false, core.WrapError(err, core.EINVALID, "format error parsing dimension %q", s)
	}
	v := math.Round(n * float64(scale))
	if math.Abs(v) > math.MaxInt32 {
		return 0, false, core.Error(core.EINVALID, "dimension %q out of range", s)
	}
	return Dimen(v), ispcnt, nil
}

// ParsePixels parses a size for a resolution of dpi. A number without unit is
// taken as pixels. Percentages are not allowed.
func ParsePixels(s string, dpi float64) (float64, error) {
	if px, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return px, nil
	}
	d, ispcnt, err := ParseDimen(s)
	if err != nil {
		return 0, err
	}
	if ispcnt {
		return 0, core.Error(core.EINVALID, "size %q must not be relative", s)
	}
	return d.Pixels(dpi), nil
}
