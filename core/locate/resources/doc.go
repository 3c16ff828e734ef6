/*
Package resources resolves fonts and images for synthesizing samples.

As resource loading may be a time-consuming task, some functions in this
package will work in an async/await fashion by returning a promise.
Functions named

   Resolve…(…)

will return a resource-specific promise type, which the client will call later
to receive the loaded resource. The call to the promise-function will then block
until loading has completed or the context is done.

Fonts are searched in this order: the global font registry, the file system
(if the name is a path to a font file), the system font directories (via
go-findfont) and finally the output of fontconfig's fc-list, if configured.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'glyphsynth.resources'.
func tracer() tracing.Trace {
	return tracing.Select("glyphsynth.resources")
}
