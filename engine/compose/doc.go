/*
Package compose lays out glyphs into samples for training text recognizers.

A sample is a triple of co-registered rasters of identical size:

   Image    the composed text, a 0/1 foreground mask
   CharMap  a character heatmap with one Gaussian blob per grapheme cluster
   WordMap  a boundary heatmap with one blob per seam between clusters

Two composers exist. PrintedLine renders a line of text with a font and marks
the clusters of every word. HandwrittenWord assembles a word from scanned
glyph images, one per grapheme cluster, padding glyphs vertically to account
for ascenders and descenders.

Composers are plain values holding read-only data (the heatmap kernel, a
segmenter, an alignment policy). They may be used from many goroutines, one
call per sample. Randomness is injected by the caller.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compose

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glyphsynth.compose'.
func tracer() tracing.Trace {
	return tracing.Select("glyphsynth.compose")
}
