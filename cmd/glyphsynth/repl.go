package main

import (
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/glyphsynth/core"
	"github.com/npillmayer/glyphsynth/core/script"
	"github.com/npillmayer/glyphsynth/engine/synth"
	"github.com/pterm/pterm"
)

const helpText = `Type a line of text to compose a printed sample.
  :hand <components>   compose a handwritten sample from space separated components
  :seg <text>          show the grapheme clusters of text
  :help                show this help
  :quit                leave (or <ctrl>D)`

// session is an interactive composing session. Samples are written to the
// sub-folder 'preview' of the output folder.
type session struct {
	gen *synth.Generator
	dir string
	out *synth.DirWriter
	seg *script.Segmenter
	n   int
}

func newSession(gen *synth.Generator, c synth.Config) *session {
	return &session{
		gen: gen,
		dir: filepath.Join(c.Out, "preview"),
		seg: script.NewSegmenter(nil),
	}
}

// REPL starts interactive mode.
func (s *session) REPL() error {
	repl, err := readline.New("glyphsynth > ")
	if err != nil {
		return err
	}
	defer repl.Close()
	if s.out, err = synth.NewDirWriter(s.dir); err != nil {
		return err
	}
	defer s.out.Close()
	pterm.Info.Println("Quit with <ctrl>D, help with :help")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := s.execute(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}

func (s *session) execute(line string) (quit bool) {
	cmd, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i:])
	}
	var r synth.Result
	var err error
	switch cmd {
	case ":quit", ":q":
		return true
	case ":help", ":h":
		pterm.Info.Println(helpText)
		return false
	case ":seg":
		pterm.Info.Printfln("%q", s.seg.Segment(script.Normalize(arg)))
		return false
	case ":hand":
		r, err = s.gen.Handwritten(s.n, strings.Fields(script.Normalize(arg)))
	default:
		if strings.HasPrefix(cmd, ":") {
			pterm.Error.Printfln("unknown command %s", cmd)
			return false
		}
		r, err = s.gen.Printed(s.n, script.Normalize(line))
	}
	if err == nil {
		err = s.out.Put(r)
	}
	if err != nil {
		tracer().Errorf(err.Error())
		if core.HasCode(err, core.EMISSING) {
			pterm.Warning.Println(core.UserMessage(err))
		} else {
			pterm.Error.Println(err.Error())
		}
		return false
	}
	pterm.Info.Printfln("sample %d: %v, written to %s", r.N, r.Sample, s.dir)
	s.n++
	return false
}
