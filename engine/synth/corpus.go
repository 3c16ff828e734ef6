package synth

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/glyphsynth/core"
	"github.com/npillmayer/glyphsynth/core/script"
	"github.com/npillmayer/glyphsynth/input/html"
)

// Corpus is a read-only collection of lines of text.
type Corpus struct {
	lines []string
}

// NewCorpus creates a corpus from lines of text. Lines are normalized to
// NFC, white space is collapsed and empty lines are dropped.
func NewCorpus(lines []string) *Corpus {
	c := &Corpus{}
	for _, l := range lines {
		if l = strings.Join(strings.Fields(script.Normalize(l)), " "); l != "" {
			c.lines = append(c.lines, l)
		}
	}
	return c
}

// LoadCorpus reads a corpus file. Files with extension .html or .htm are
// parsed as HTML, with selector choosing the elements to extract text from.
// All other files are read as plain text, one entry per line.
func LoadCorpus(path, selector string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open corpus %s", path)
	}
	defer f.Close()
	var lines []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		lines, err = html.ReadText(f, selector)
	default:
		lines, err = readLines(f)
	}
	if err != nil {
		return nil, err
	}
	c := NewCorpus(lines)
	if c.Len() == 0 {
		return nil, core.Error(core.EINVALID, "corpus %s contains no text", path)
	}
	tracer().Infof("corpus %s has %d lines", path, c.Len())
	return c, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return lines, core.WrapError(err, core.EIO, "cannot read corpus")
	}
	return lines, nil
}

// Len returns the number of lines.
func (c *Corpus) Len() int {
	return len(c.lines)
}

// Line picks a random line and returns a random run of minWords to maxWords
// consecutive words of it. Lines with fewer words are returned as a whole.
func (c *Corpus) Line(rnd core.Chooser, minWords, maxWords int) string {
	if len(c.lines) == 0 {
		return ""
	}
	words := strings.Fields(c.lines[rnd.Intn(len(c.lines))])
	n := core.RandomInRange(rnd, minWords, maxWords)
	if n >= len(words) {
		return strings.Join(words, " ")
	}
	start := rnd.Intn(len(words) - n + 1)
	return strings.Join(words[start:start+n], " ")
}
