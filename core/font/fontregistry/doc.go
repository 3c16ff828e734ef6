/*
Package fontregistry manages a registry for loaded fonts.

Composing samples in parallel needs the same typecase over and over again.
The registry caches fonts by a normalized name and typecases by name and
size.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'glyphsynth.fonts'
func tracer() tracing.Trace {
	return tracing.Select("glyphsynth.fonts")
}
