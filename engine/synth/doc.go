/*
Package synth generates datasets of synthetic text samples.

A Generator produces numbered samples, each composed either from a printed
line of text or from handwritten glyph images. Sample n always uses its own
random source, seeded with Seed+n, so a dataset can be reproduced sample by
sample, independent of the number of workers.

Samples are produced by a pool of workers and handed to a Sink. DirWriter is
a sink which writes three PNG images per sample and a label file:

   <out>/images/<n>.png
   <out>/charmaps/<n>.png
   <out>/wordmaps/<n>.png
   <out>/labels.csv          (n,text,mode)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package synth

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glyphsynth.synth'.
func tracer() tracing.Trace {
	return tracing.Select("glyphsynth.synth")
}
