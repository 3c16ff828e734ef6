package script

import (
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
)

// UAXSegmenter splits text at extended grapheme cluster boundaries as defined
// by Unicode Standard Annex #29. It does not need an alphabet.
type UAXSegmenter struct{}

var _ Splitter = UAXSegmenter{}

var graphemeClassesSetup sync.Once

// Segment returns the extended grapheme clusters of text.
func (UAXSegmenter) Segment(text string) []string {
	graphemeClassesSetup.Do(grapheme.SetupGraphemeClasses)
	// segmenters carry state, every call gets its own
	onGraphemes := grapheme.NewBreaker(1)
	splitter := segment.NewSegmenter(onGraphemes)
	splitter.Init(strings.NewReader(text))
	clusters := make([]string, 0, len(text))
	for splitter.Next() {
		clusters = append(clusters, string(splitter.Bytes()))
	}
	return clusters
}
