// Package percent implements a simple and straightforward type for percentage values.
package percent

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/glyphsynth/core"
)

// Percent is a simple and straightforward type for percentage values.
// Values are clipped to 0…100.
type Percent uint8

// FromInt clips n to a percentage.
func FromInt(n int) Percent {
	switch {
	case n <= 0:
		return Percent(0)
	case n >= 100:
		return Percent(100)
	}
	return Percent(n)
}

// FromFloat rounds and clips f to a percentage.
func FromFloat(f float64) Percent {
	switch {
	case f <= 0 || math.IsNaN(f) || math.IsInf(f, -1):
		return Percent(0)
	case f >= 100 || math.IsInf(f, 1):
		return Percent(100)
	}
	return Percent(math.Round(f))
}

// FromString parses values like "25%" or "25". Values out of range are an
// error.
func FromString(s string) (Percent, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "not a percentage: %q", s)
	}
	if n < 0 || n > 100 {
		return 0, core.Error(core.EINVALID, "percentage out of range: %d", n)
	}
	return Percent(n), nil
}

func (p Percent) String() string {
	return strconv.Itoa(int(p)) + "%"
}

// Of returns p percent of n, truncated towards zero.
func (p Percent) Of(n int) int {
	return n * int(p) / 100
}

// Chance draws from rnd and returns true with probability p.
func (p Percent) Chance(rnd core.Chooser) bool {
	switch p {
	case 0:
		return false
	case 100:
		return true
	}
	return rnd.Intn(100) < int(p)
}
