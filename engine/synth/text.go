package synth

import (
	"strings"

	"github.com/npillmayer/glyphsynth/core"
	"github.com/npillmayer/glyphsynth/core/script"
)

// RandomWord creates a word of minLen to maxLen grapheme clusters of an
// alphabet. Every cluster is a root, in one of three cases followed by a
// vowel sign. One in eight clusters carries a consonant sign: a joined sign
// (ra-phala, ya-phala) goes between root and vowel, the nasal after the
// vowel. Modifiers of the alphabet are avoided at the start.
func RandomWord(a *script.Alphabet, rnd core.Chooser, minLen, maxLen int) string {
	roots, vowels, signs := a.Roots(), a.VowelSigns(), a.ConsonantSigns()
	if len(roots) == 0 {
		return ""
	}
	n := core.RandomInRange(rnd, minLen, maxLen)
	var b strings.Builder
	for i := 0; i < n; i++ {
		root := roots[rnd.Intn(len(roots))]
		for i == 0 && a.IsModifier(root) && len(roots) > 1 {
			root = roots[rnd.Intn(len(roots))]
		}
		var joined, nasal string
		if len(signs) > 0 && !a.IsModifier(root) && rnd.Intn(8) == 0 {
			joined, nasal = placeSign(a, signs[rnd.Intn(len(signs))])
		}
		b.WriteString(root)
		b.WriteString(joined)
		if len(vowels) > 0 && rnd.Intn(3) == 0 {
			b.WriteString(vowels[rnd.Intn(len(vowels))])
		}
		b.WriteString(nasal)
	}
	return b.String()
}

// placeSign decides where a consonant sign goes within a cluster. Signs
// starting with a joiner attach to the root, a lone nasal closes the cluster.
// Signs which would open a cluster of their own (reph) are dropped.
func placeSign(a *script.Alphabet, sign string) (joined, nasal string) {
	r := []rune(sign)
	switch {
	case len(r) == 0:
	case a.IsJoiner(r[0]):
		return sign, ""
	case len(r) == 1 && a.IsNasal(r[0]):
		return "", sign
	}
	return "", ""
}

// RandomNumber creates a number of minLen to maxLen Bengali digits.
func RandomNumber(rnd core.Chooser, minLen, maxLen int) string {
	digits := script.Digits()
	n := core.RandomInRange(rnd, minLen, maxLen)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(digits[rnd.Intn(len(digits))])
	}
	return b.String()
}

// RandomLine creates a line of minWords to maxWords random words, one in ten
// of them a number.
func RandomLine(a *script.Alphabet, rnd core.Chooser, minWords, maxWords, minLen, maxLen int) string {
	n := core.RandomInRange(rnd, minWords, maxWords)
	words := make([]string, n)
	for i := range words {
		if rnd.Intn(10) == 0 {
			words[i] = RandomNumber(rnd, minLen, maxLen)
		} else {
			words[i] = RandomWord(a, rnd, minLen, maxLen)
		}
	}
	return strings.Join(words, " ")
}

// RandomComponents draws minLen to maxLen labels. The first label is never a
// modifier of a, as modifiers cannot start a handwritten word.
func RandomComponents(a *script.Alphabet, labels []string, rnd core.Chooser, minLen, maxLen int) []string {
	var starters []string
	for _, l := range labels {
		if !a.IsModifier(l) {
			starters = append(starters, l)
		}
	}
	if len(starters) == 0 {
		return nil
	}
	n := core.RandomInRange(rnd, minLen, maxLen)
	comps := make([]string, n)
	comps[0] = starters[rnd.Intn(len(starters))]
	for i := 1; i < n; i++ {
		comps[i] = labels[rnd.Intn(len(labels))]
	}
	return comps
}
