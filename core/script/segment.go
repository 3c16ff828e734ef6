package script

import (
	"golang.org/x/text/unicode/norm"
)

// Splitter splits a text into clusters. Concatenating the clusters in order
// yields the input text.
type Splitter interface {
	Segment(text string) []string
}

// Segmenter splits text into grapheme clusters following the letter classes
// of an alphabet. A Segmenter holds no mutable state and may be shared.
type Segmenter struct {
	alphabet *Alphabet
}

var _ Splitter = (*Segmenter)(nil)

// NewSegmenter creates a segmenter for an alphabet. If alphabet is nil,
// Bengali is used.
func NewSegmenter(alphabet *Alphabet) *Segmenter {
	if alphabet == nil {
		alphabet = Bengali()
	}
	return &Segmenter{alphabet: alphabet}
}

// Alphabet returns the alphabet of the segmenter.
func (s *Segmenter) Alphabet() *Alphabet {
	return s.alphabet
}

// Segment scans text left to right and returns its grapheme clusters.
//
// A cluster is closed
//
//   ▪ never after a joiner (virama, ZWJ),
//   ▪ always after the nasalization mark,
//   ▪ after a root or the below-base mark, unless a joiner, the nasal, the
//     below-base mark or a vowel sign follows,
//   ▪ after a vowel sign, unless the nasal or another vowel sign follows.
//
// Characters not known to the alphabet keep the cluster open until one of the
// rules above closes it. Ill-formed input (e.g., a leading vowel sign) is
// accepted as is. Passthrough symbols form clusters of their own; a pending
// open cluster is emitted before them, and a cluster still open at the end of
// the text is emitted as well. Thus every rune of text ends up in exactly one
// cluster, in order.
func (s *Segmenter) Segment(text string) []string {
	a := s.alphabet
	runes := []rune(text)
	clusters := make([]string, 0, len(runes))
	start := -1 // start of the open cluster, -1 if none
	flush := func(end int) {
		if start >= 0 {
			clusters = append(clusters, string(runes[start:end]))
			start = -1
		}
	}
	for i, r := range runes {
		if a.IsPassthrough(r) {
			flush(i)
			clusters = append(clusters, string(r))
			continue
		}
		if start < 0 {
			start = i
		}
		last := i+1 == len(runes)
		var next rune
		if !last {
			next = runes[i+1]
		}
		switch {
		case a.IsJoiner(r):
			// cluster continues
		case a.IsNasal(r):
			flush(i + 1)
		case a.IsRoot(r) || a.IsBelowBase(r):
			if last || !(a.IsJoiner(next) || a.IsNasal(next) || a.IsBelowBase(next) || a.IsVowelSign(next)) {
				flush(i + 1)
			}
		case a.IsVowelSign(r):
			if last || !(a.IsNasal(next) || a.IsVowelSign(next)) {
				flush(i + 1)
			}
		default:
			tracer().Debugf("unknown character %U in %q, cluster stays open", r, text)
		}
	}
	flush(len(runes))
	return clusters
}

// Normalize returns text in Unicode normalization form C. Segment does not
// normalize by itself, as clusters have to reproduce the input exactly.
func Normalize(text string) string {
	return norm.NFC.String(text)
}
