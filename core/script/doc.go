/*
Package script splits text of a complex script into grapheme clusters.

A grapheme cluster is the minimal unit a glyph renderer or a handwriting
sample set knows about: a base letter, optionally followed by conjunct
sequences (virama or zero-width joiner plus another letter), a vowel sign
and a trailing nasalization mark. Digits, Latin letters, punctuation and
space are passed through as single clusters.

The letter tables are not hard-wired into the segmenter. They are collected
in an Alphabet, which is immutable after construction and may be shared
between goroutines. Bengali returns the alphabet for the Bengali script; tests
and other scripts may construct their own from an AlphabetSpec.

Segmenter follows the rules of the script-aware parser. UAXSegmenter breaks
text at Unicode extended grapheme cluster boundaries (UAX#29) instead, which
is useful for scripts without an alphabet table and for comparison.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package script

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glyphsynth.script'.
func tracer() tracing.Trace {
	return tracing.Select("glyphsynth.script")
}
