/*
Package glyphstore holds the handwritten glyph images used for composing
words.

A store is a collection of records, each relating a label (the text of a
grapheme cluster, e.g. "ক্ষ") to an image file. Stores are built from a CSV
index with a header

   filename,label,img_path

or by scanning a directory which has one sub-folder per label. Labels are
kept in a trie, which allows exact lookup as well as listing of all labels
with a common prefix.

After loading, a store is read-only and may be shared between goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphstore

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glyphsynth.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("glyphsynth.glyphs")
}
