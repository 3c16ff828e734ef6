package script

import (
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/hashset"
)

// AlphabetSpec is the plain configuration data for an alphabet.
// Entries of Roots may be multi-rune conjuncts; only single-rune roots take part
// in segmentation, the full list is available for word synthesis.
type AlphabetSpec struct {
	Name           string
	Roots          []string // base letters and conjunct roots
	VowelSigns     []string // post-base vowel marks
	ConsonantSigns []string // conjunct and modifier signs (reph, ra-phala, ya-phala, …)
	Passthrough    []string // symbols emitted as clusters of their own
	Modifiers      []string // marks which cannot start a handwritten word
	Joiners        []rune   // continuation marks: virama, zero-width joiner
	Nasal          rune     // nasalization mark, always terminates a cluster
	BelowBase      rune     // below-base diacritic (nukta)
}

// Alphabet holds the letter classification sets of a script.
// It is immutable after construction and safe for concurrent use.
type Alphabet struct {
	name           string
	roots          *hashset.Set // single-rune roots, as runes
	vowelSigns     *hashset.Set
	passthrough    *hashset.Set
	joiners        *hashset.Set
	nasal          rune
	belowBase      rune
	rootList       []string
	vowelList      []string
	consonantSigns []string
	modifiers      []string
}

// NewAlphabet creates an alphabet from a specification. Passthrough entries
// consisting of more than one rune can never match a single character and are
// ignored.
func NewAlphabet(spec AlphabetSpec) *Alphabet {
	a := &Alphabet{
		name:        spec.Name,
		roots:       hashset.New(),
		vowelSigns:  hashset.New(),
		passthrough: hashset.New(),
		joiners:     hashset.New(),
		nasal:       spec.Nasal,
		belowBase:   spec.BelowBase,
	}
	a.rootList = append([]string(nil), spec.Roots...)
	a.vowelList = append([]string(nil), spec.VowelSigns...)
	a.consonantSigns = append([]string(nil), spec.ConsonantSigns...)
	a.modifiers = append([]string(nil), spec.Modifiers...)
	addRunes(a.roots, spec.Roots)
	addRunes(a.vowelSigns, spec.VowelSigns)
	addRunes(a.passthrough, spec.Passthrough)
	for _, j := range spec.Joiners {
		a.joiners.Add(j)
	}
	tracer().Debugf("alphabet %q: %d roots, %d vowel signs, %d passthrough symbols",
		a.name, a.roots.Size(), a.vowelSigns.Size(), a.passthrough.Size())
	return a
}

func addRunes(set *hashset.Set, entries []string) {
	for _, e := range entries {
		if utf8.RuneCountInString(e) != 1 {
			continue
		}
		r, _ := utf8.DecodeRuneInString(e)
		set.Add(r)
	}
}

// Name returns the name of the alphabet.
func (a *Alphabet) Name() string {
	return a.name
}

// IsPassthrough is true for symbols which form a cluster of their own.
func (a *Alphabet) IsPassthrough(r rune) bool {
	return a.passthrough.Contains(r)
}

// IsRoot is true for single-rune base letters.
func (a *Alphabet) IsRoot(r rune) bool {
	return a.roots.Contains(r)
}

// IsVowelSign is true for post-base vowel marks.
func (a *Alphabet) IsVowelSign(r rune) bool {
	return a.vowelSigns.Contains(r)
}

// IsJoiner is true for virama and zero-width joiner.
func (a *Alphabet) IsJoiner(r rune) bool {
	return a.joiners.Contains(r)
}

// IsNasal is true for the nasalization mark.
func (a *Alphabet) IsNasal(r rune) bool {
	return r == a.nasal && r != 0
}

// IsBelowBase is true for the below-base diacritic.
func (a *Alphabet) IsBelowBase(r rune) bool {
	return r == a.belowBase && r != 0
}

// Roots returns a copy of all roots, including conjunct roots.
func (a *Alphabet) Roots() []string {
	return append([]string(nil), a.rootList...)
}

// VowelSigns returns a copy of the vowel signs.
func (a *Alphabet) VowelSigns() []string {
	return append([]string(nil), a.vowelList...)
}

// ConsonantSigns returns a copy of the consonant signs.
func (a *Alphabet) ConsonantSigns() []string {
	return append([]string(nil), a.consonantSigns...)
}

// Modifiers returns a copy of the marks which cannot start a handwritten
// word.
func (a *Alphabet) Modifiers() []string {
	return append([]string(nil), a.modifiers...)
}

// IsModifier is true if s is one of the modifiers of the alphabet.
func (a *Alphabet) IsModifier(s string) bool {
	for _, m := range a.modifiers {
		if s == m {
			return true
		}
	}
	return false
}

// StripModifiers removes leading modifiers from a sequence of components.
func (a *Alphabet) StripModifiers(components []string) []string {
	for len(components) > 0 && a.IsModifier(components[0]) {
		components = components[1:]
	}
	return components
}
