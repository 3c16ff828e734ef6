/*
Package font is for typeface and font handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "typeface" is a family of fonts. An example is "Noto Sans Bengali".

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Noto Sans Bengali regular".

* A "typecase" is a scaled font, i.e. a font in a certain size.
The name is reminiscend on the wooden boxes of typesetters in the aera of
metal type.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

For synthesizing text images a typecase is able to measure and render a
line of text. Text is shaped with HarfBuzz (the Go port of
github.com/benoitkugler/textlayout), as Bengali conjuncts and vowel signs
need complex shaping. Glyph outlines are then rasterized with
golang.org/x/image/vector. Sizes are always given in pixels.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'glyphsynth.fonts'
func tracer() tracing.Trace {
	return tracing.Select("glyphsynth.fonts")
}
