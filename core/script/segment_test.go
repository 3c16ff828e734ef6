package script

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSegmentConjunct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.script")
	defer teardown()
	//
	seg := NewSegmenter(Bengali())
	assert.Equal(t, []string{"ক্ক"}, seg.Segment("ক্ক"))
	assert.Equal(t, []string{"ক", "আ"}, seg.Segment("কআ"))
}

func TestSegmentPassthrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.script")
	defer teardown()
	//
	seg := NewSegmenter(nil)
	assert.Equal(t, []string{"h", "i", "5", "!"}, seg.Segment("hi5!"))
	assert.Equal(t, []string{"ক", " ", "খ", "।"}, seg.Segment("ক খ।"))
}

func TestSegmentWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.script")
	defer teardown()
	//
	seg := NewSegmenter(Bengali())
	for input, expected := range map[string][]string{
		"বাংলা":   {"বা", "ং", "লা"},
		"চাঁদ":    {"চাঁ", "দ"},
		"স্ত্রী":  {"স্ত্রী"},
		"কৌশল":    {"কৌ", "শ", "ল"},
		"ক্":      {"ক্"},     // open cluster at end of text is kept
		"িক":      {"ি", "ক"}, // leading vowel sign is accepted
		"ড়ি": {"ড়ি"},
	} {
		clusters := seg.Segment(input)
		t.Logf("%q -> %q", input, clusters)
		assert.Equal(t, expected, clusters, "clusters of %q", input)
	}
}

func TestSegmentReconstructs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.script")
	defer teardown()
	//
	seg := NewSegmenter(Bengali())
	for _, input := range []string{
		"আমার সোনার বাংলা, আমি তোমায় ভালোবাসি।",
		"রাষ্ট্রপতি ২০২২ সালে",
		"কম্পিউটার is 3 words",
		"ক্ষ্মা র্য  ্র",
		"",
	} {
		clusters := seg.Segment(input)
		if strings.Join(clusters, "") != input {
			t.Errorf("clusters %q do not reconstruct %q", clusters, input)
		}
		for _, c := range clusters {
			if c == "" {
				t.Errorf("empty cluster in segmentation of %q", input)
			}
		}
	}
}

func TestSegmentSyntheticAlphabet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.script")
	defer teardown()
	//
	abc := NewAlphabet(AlphabetSpec{
		Name:        "test",
		Roots:       []string{"a", "b"},
		VowelSigns:  []string{"i", "u"},
		Passthrough: []string{" ", "-", "::"},
		Joiners:     []rune{'+'},
		Nasal:       '~',
		BelowBase:   '.',
	})
	seg := NewSegmenter(abc)
	assert.Equal(t, []string{"a+bi~", " ", "b"}, seg.Segment("a+bi~ b"))
	assert.Equal(t, []string{"a.iu", "-", "b"}, seg.Segment("a.iu-b"))
	// unknown characters defer closing to the next closing character
	assert.Equal(t, []string{"a", "?b"}, seg.Segment("a?b"))
	assert.Equal(t, []string{"a", "?", " "}, seg.Segment("a? "))
	assert.False(t, abc.IsPassthrough(':'), "multi-rune passthrough entries are ignored")
}

func TestNormalizeDecomposesNukta(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.script")
	defer teardown()
	//
	n := Normalize("\u09DC") // U+09DC is excluded from composition
	assert.Equal(t, "\u09A1\u09BC", n)
	seg := NewSegmenter(Bengali())
	assert.Equal(t, []string{n}, seg.Segment(n))
	assert.Equal(t, []string{"\u09DC"}, seg.Segment("\u09DC"))
}

func TestUAXSegmenter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphsynth.script")
	defer teardown()
	//
	var uax UAXSegmenter
	assert.Equal(t, []string{"h", "e", "l", "l", "o"}, uax.Segment("hello"))
	assert.Equal(t, []string{"e\u0301", "x"}, uax.Segment("e\u0301x"))
	input := "আমার সোনার বাংলা"
	assert.Equal(t, input, strings.Join(uax.Segment(input), ""))
}

func TestModifiers(t *testing.T) {
	bengali := Bengali()
	assert.Len(t, bengali.Modifiers(), 3)
	assert.True(t, bengali.IsModifier("ং"))
	assert.False(t, bengali.IsModifier("ক"))
	assert.Equal(t, []string{"ক", "ং"}, bengali.StripModifiers([]string{"ঁ", "ঃ", "ক", "ং"}))
	assert.Empty(t, bengali.StripModifiers([]string{"ং"}))
	//
	synthetic := NewAlphabet(AlphabetSpec{Name: "synthetic", Roots: []string{"a", "b"}, Modifiers: []string{"~"}})
	assert.Equal(t, []string{"ং", "a"}, synthetic.StripModifiers([]string{"~", "ং", "a"}))
	assert.Empty(t, NewAlphabet(AlphabetSpec{Name: "plain"}).Modifiers())
}
