/*
Command glyphsynth generates synthetic training samples for Bengali text
detection.

Every sample consists of a text image, a character heatmap and a word
heatmap of equal size. Printed samples are rendered with an OpenType font,
handwritten samples are assembled from scanned glyph images.

	glyphsynth -font Kalpurush.ttf -glyphs ./glyphs -samples 1000 -out ./data

With flag -i, glyphsynth starts an interactive session instead, composing
samples from lines of text typed in.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/npillmayer/glyphsynth/core"
	"github.com/npillmayer/glyphsynth/core/locate/resources"
	"github.com/npillmayer/glyphsynth/engine/glyphstore"
	"github.com/npillmayer/glyphsynth/engine/synth"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	xfont "golang.org/x/image/font"
)

// tracer traces with key 'glyphsynth.synth'
func tracer() tracing.Trace {
	return tracing.Select("glyphsynth.synth")
}

var traceKeys = []string{"script", "raster", "fonts", "resources", "glyphs", "compose", "synth", "input"}

// flags which are passed on to the configuration as strings
var confFlags = []struct{ key, usage string }{
	{"font", "Font name or font file for printed samples"},
	{"font-size", "Font size, in pixels or with unit (e.g. 12pt)"},
	{"glyphs", "Folder of glyph images, one sub-folder per label"},
	{"glyph-index", "CSV index of glyph images (label,img_path)"},
	{"corpus", "Text or HTML file to draw printed lines from"},
	{"corpus-selector", "CSS selector for text elements of an HTML corpus"},
	{"out", "Output folder"},
	{"mode", "Kind of samples [printed|handwritten|mixed]"},
	{"samples", "Number of samples to generate"},
	{"workers", "Number of concurrent workers"},
	{"seed", "Seed for random choices"},
	{"comp-dim", "Height of handwritten samples"},
	{"heatmap-size", "Side length of the heatmap kernel"},
	{"heatmap-ratio", "Spread of the heatmap kernel"},
	{"min-words", "Minimum number of words per printed line"},
	{"max-words", "Maximum number of words per printed line"},
	{"min-word-len", "Minimum number of clusters per random word"},
	{"max-word-len", "Maximum number of clusters per random word"},
	{"extension", "Text to extend printed lines with, e.g. a dash"},
	{"extension-rate", "Share of printed lines to extend, e.g. 25%"},
	{"out-width", "Width of the canvas every sample is fitted onto"},
	{"out-height", "Height of the canvas every sample is fitted onto"},
	{"margin", "Blank border around every sample, in pixels"},
	{"placement", "Fitting onto the canvas [stretch|preserve]"},
	{"jitter", "Maximum growth of a sample into the margin, e.g. 10%"},
	{"fontconfig", "Absolute path of fontconfig's fc-list binary"},
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	interactive := flag.Bool("i", false, "Compose samples interactively")
	values := make(map[string]*string, len(confFlags))
	for _, f := range confFlags {
		values[f.key] = flag.String(f.key, "", f.usage)
	}
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"app-key":         "glyphsynth",
	}
	for _, key := range traceKeys {
		conf["trace.glyphsynth."+key] = *tlevel
	}
	for key, v := range values {
		if *v != "" {
			conf[key] = *v
		}
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to GlyphSynth")
	tracer().Infof("Trace level is %s", *tlevel)

	c, err := synth.ConfigFromSchuko(conf)
	if err != nil {
		exit(2, err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	opts, err := setup(ctx, conf, c)
	if err != nil {
		exit(3, err)
	}
	gen, err := synth.NewGenerator(c, opts...)
	if err != nil {
		exit(3, err)
	}
	if *interactive {
		if err := newSession(gen, c).REPL(); err != nil {
			exit(4, err)
		}
		return
	}
	if err := generate(ctx, gen, c); err != nil {
		exit(5, err)
	}
}

// setup loads the font, glyph images and corpus the configuration asks for.
func setup(ctx context.Context, conf testconfig.Conf, c synth.Config) ([]synth.Option, error) {
	var opts []synth.Option
	if c.Mode != synth.Handwritten {
		if c.Font == "" {
			return nil, core.Error(core.EMISSING, "%s samples need a font, use flag -font", c.Mode)
		}
		tc, err := resources.ResolveTypeCase(conf, c.Font, xfont.StyleNormal, xfont.WeightNormal,
			c.FontSize).Await(ctx)
		if err != nil {
			return nil, err
		}
		pterm.Info.Printfln("Using font %s at %.1f px", tc.ScalableFontParent().Fontname, tc.Size())
		opts = append(opts, synth.WithFont(tc))
	}
	if c.Mode != synth.Printed {
		var store *glyphstore.Store
		var err error
		switch {
		case c.GlyphIndex != "":
			store, err = glyphstore.LoadIndex(c.GlyphIndex)
		case c.Glyphs != "":
			store, err = glyphstore.ScanDir(c.Glyphs)
		default:
			err = core.Error(core.EMISSING, "%s samples need glyph images, use flag -glyphs or -glyph-index", c.Mode)
		}
		if err != nil {
			return nil, err
		}
		pterm.Info.Printfln("Loaded %d glyph images for %d labels", store.Len(), len(store.Labels("")))
		opts = append(opts, synth.WithGlyphs(store))
	}
	if c.Corpus != "" {
		corpus, err := synth.LoadCorpus(c.Corpus, c.CorpusSelector)
		if err != nil {
			return nil, err
		}
		opts = append(opts, synth.WithCorpus(corpus))
	}
	return opts, nil
}

// generate runs the generator in batch mode, showing progress.
func generate(ctx context.Context, gen *synth.Generator, c synth.Config) error {
	w, err := synth.NewDirWriter(c.Out)
	if err != nil {
		return err
	}
	bar, _ := pterm.DefaultProgressbar.WithTotal(c.Samples).WithTitle("Generating").Start()
	stats, err := gen.Run(ctx, &progress{Sink: w, bar: bar})
	if bar != nil {
		bar.Stop()
	}
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	pterm.Info.Printfln("Wrote %d samples to %s, skipped %d", stats.Written, c.Out, stats.Skipped)
	return err
}

// progress advances a progress bar for every sample written.
type progress struct {
	synth.Sink
	mx  sync.Mutex
	bar *pterm.ProgressbarPrinter
}

func (p *progress) Put(r synth.Result) error {
	if err := p.Sink.Put(r); err != nil {
		return err
	}
	p.mx.Lock()
	defer p.mx.Unlock()
	if p.bar != nil {
		p.bar.Increment()
	}
	return nil
}

func exit(code int, err error) {
	pterm.Error.Println(err.Error())
	tracer().Errorf("exit with code %d (%s)", code, core.Code(err))
	os.Exit(code)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
