package compose

import (
	"strings"
)

// AlignmentClass tells whether a glyph extends above or below the main body
// of the script.
type AlignmentClass int

const (
	AlignNone   AlignmentClass = 0
	AlignTop    AlignmentClass = 1
	AlignBottom AlignmentClass = 2
	AlignBoth                  = AlignTop | AlignBottom
)

func (c AlignmentClass) String() string {
	switch c {
	case AlignNone:
		return "none"
	case AlignTop:
		return "t"
	case AlignBottom:
		return "b"
	case AlignBoth:
		return "tb"
	}
	return "?"
}

// Dim is a width and height in pixels.
type Dim struct {
	W, H int
}

// AlignmentPolicy configures the vertical placement of handwritten glyphs.
//
// A component containing any of the Top markers gets class AlignTop, one
// containing any of the Bottom markers gets AlignBottom (or both). Glyphs of
// class AlignNone are resized to NoPad, AlignTop and AlignBottom to
// SinglePad, AlignBoth to DoublePad. Blank strips of height Pad then fill up
// the glyphs to a common height for the whole word, so the heights must
// satisfy NoPad.H + 2·Pad = SinglePad.H + Pad = DoublePad.H.
type AlignmentPolicy struct {
	Top       []string
	Bottom    []string
	NoPad     Dim
	SinglePad Dim
	DoublePad Dim
	Pad       int
}

// DefaultPolicy returns the policy for Bengali handwriting: vowel signs
// i, ii, ai, au, candrabindu and reph extend to the top, vowel signs u, uu,
// vocalic r and ra-phala extend to the bottom.
func DefaultPolicy() AlignmentPolicy {
	return AlignmentPolicy{
		Top:       []string{"ি", "ী", "ৈ", "ৌ", "ঁ", "র্"},
		Bottom:    []string{"ু", "ূ", "ৃ", "্র"},
		NoPad:     Dim{64, 64},
		SinglePad: Dim{64, 84},
		DoublePad: Dim{64, 104},
		Pad:       20,
	}
}

// Classify determines the alignment class of a component.
func (p AlignmentPolicy) Classify(component string) AlignmentClass {
	var c AlignmentClass
	if containsAny(component, p.Top) {
		c |= AlignTop
	}
	if containsAny(component, p.Bottom) {
		c |= AlignBottom
	}
	return c
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if m = strings.TrimSpace(m); m != "" && strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// layout is the vertical arrangement of one component: a glyph of size dim,
// with blank strips of heights top and bottom above and below.
type layout struct {
	dim         Dim
	top, bottom int
}

func (l layout) height() int {
	return l.top + l.dim.H + l.bottom
}

// arrange computes the layout of a component of class c within a word.
// hasTop and hasBottom tell if any component of the word extends to the top
// or bottom, respectively.
func (p AlignmentPolicy) arrange(c AlignmentClass, hasTop, hasBottom bool) layout {
	var l layout
	switch c {
	case AlignNone:
		l.dim = p.NoPad
		if hasTop {
			l.top = p.Pad
		}
		if hasBottom {
			l.bottom = p.Pad
		}
	case AlignTop:
		l.dim = p.SinglePad
		if hasBottom {
			l.bottom = p.Pad
		}
	case AlignBottom:
		l.dim = p.SinglePad
		if hasTop {
			l.top = p.Pad
		}
	default:
		l.dim = p.DoublePad
	}
	return l
}
