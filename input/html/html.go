/*
Package html extracts text from HTML documents, for use as a text corpus.

Elements are selected by a CSS selector (see github.com/andybalholm/cascadia),
e.g. "p" or "article .content p". The text content of each selected element
becomes one entry, with runs of white space collapsed to a single space.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/glyphsynth/core"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'glyphsynth.input'.
func tracer() tracing.Trace {
	return tracing.Select("glyphsynth.input")
}

// DefaultSelector selects paragraphs.
const DefaultSelector = "p"

// ReadText parses an HTML document and returns the text of all elements
// matching selector, in document order. Empty texts are skipped.
func ReadText(r io.Reader, selector string) ([]string, error) {
	if strings.TrimSpace(selector) == "" {
		selector = DefaultSelector
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid CSS selector %q", selector)
	}
	doc, err := html.Parse(r)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "unable to parse HTML input")
	}
	var texts []string
	for _, n := range sel.MatchAll(doc) {
		if t := TextContent(n); t != "" {
			texts = append(texts, t)
		}
	}
	tracer().Debugf("selector %q matched %d elements with text", selector, len(texts))
	return texts, nil
}

// TextContent returns the concatenated text of all text nodes below n, with
// white space collapsed. Text of inline elements joins its neighbours
// without a separator; block-level elements and line breaks separate words.
// Scripts and style sheets are ignored.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
			if blockElements[n.Data] {
				b.WriteByte(' ')
				defer b.WriteByte(' ')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// blockElements separate words in the text content of a node.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"td": true, "th": true, "tr": true, "ul": true,
}
