package synth

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"

	"github.com/npillmayer/glyphsynth/core"
	"github.com/npillmayer/glyphsynth/core/heatmap"
	"github.com/npillmayer/glyphsynth/core/raster"
	"github.com/npillmayer/glyphsynth/core/script"
	"github.com/npillmayer/glyphsynth/engine/compose"
)

// LabeledStore is a glyph store able to list its labels.
// *glyphstore.Store is a LabeledStore.
type LabeledStore interface {
	compose.GlyphStore
	Labels(prefix string) []string
}

// Result is a generated sample together with its ground truth.
type Result struct {
	N      int
	Text   string
	Mode   Mode
	Sample compose.Sample
}

// Sink receives generated samples. Put is called concurrently.
type Sink interface {
	Put(Result) error
}

// Stats summarizes a generation run.
type Stats struct {
	Written int
	Skipped int // samples with a missing glyph image
}

// Generator creates samples.
type Generator struct {
	conf     Config
	alphabet *script.Alphabet
	printed  *compose.PrintedLine
	hand     *compose.HandwrittenWord
	font     compose.FontProvider
	store    compose.GlyphStore
	labels   []string
	corpus   *Corpus
}

// Option configures a Generator.
type Option func(*Generator)

// WithFont sets the font for printed samples.
func WithFont(font compose.FontProvider) Option {
	return func(g *Generator) {
		g.font = font
	}
}

// WithGlyphs sets the glyph store for handwritten samples.
func WithGlyphs(store LabeledStore) Option {
	return func(g *Generator) {
		g.store = store
		g.labels = store.Labels("")
	}
}

// WithCorpus sets a corpus to draw printed lines from. Without a corpus,
// printed lines consist of random words.
func WithCorpus(corpus *Corpus) Option {
	return func(g *Generator) {
		g.corpus = corpus
	}
}

// WithAlphabet sets the alphabet used for segmentation and random words.
// The default is Bengali.
func WithAlphabet(a *script.Alphabet) Option {
	return func(g *Generator) {
		g.alphabet = a
	}
}

// NewGenerator creates a generator. Printed samples need a font, handwritten
// samples need a glyph store with at least one label.
func NewGenerator(conf Config, opts ...Option) (*Generator, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{conf: conf, alphabet: script.Bengali()}
	for _, opt := range opts {
		opt(g)
	}
	if conf.Mode != Handwritten && g.font == nil {
		return nil, core.Error(core.EINVALID, "%s samples need a font", conf.Mode)
	}
	if conf.Mode != Printed && len(g.labels) == 0 {
		return nil, core.Error(core.EINVALID, "%s samples need glyph images", conf.Mode)
	}
	kernel, err := heatmap.Generate(conf.HeatmapSize, conf.HeatmapRatio)
	if err != nil {
		return nil, err
	}
	g.printed = compose.NewPrinted(kernel, script.NewSegmenter(g.alphabet))
	g.hand = compose.NewHandwritten(kernel, compose.DefaultPolicy(), g.alphabet)
	tracer().Infof("generator for %d %s samples, kernel %s", conf.Samples, conf.Mode, kernel)
	return g, nil
}

// Generate creates sample number n. The result depends on n and the
// configuration only.
func (g *Generator) Generate(n int) (Result, error) {
	rnd := rand.New(rand.NewSource(g.conf.Seed + int64(n)))
	mode := g.conf.Mode
	if mode == Mixed {
		mode = Mode(rnd.Intn(2))
	}
	r := Result{N: n, Mode: mode}
	var err error
	switch mode {
	case Printed:
		if g.corpus != nil {
			r.Text = g.corpus.Line(rnd, g.conf.MinWords, g.conf.MaxWords)
		} else {
			r.Text = RandomLine(g.alphabet, rnd, g.conf.MinWords, g.conf.MaxWords,
				g.conf.MinWordLen, g.conf.MaxWordLen)
		}
		if r.Sample, err = g.printed.Compose(r.Text, g.font); err != nil {
			return r, err
		}
		if g.conf.Extension != "" && g.conf.ExtensionRate.Chance(rnd) {
			ext, err := compose.Extension(g.conf.Extension, g.font, r.Sample.Size().X/2)
			if err != nil {
				return r, err
			}
			if r.Sample, err = r.Sample.Extend(ext); err != nil {
				return r, err
			}
		}
	default:
		comps := RandomComponents(g.alphabet, g.labels, rnd, g.conf.MinWordLen, g.conf.MaxWordLen)
		comps = g.alphabet.StripModifiers(comps)
		r.Text = strings.Join(comps, "")
		if r.Sample, err = g.hand.Compose(g.store, comps, rnd, g.conf.CompDim); err != nil {
			return r, err
		}
	}
	if r.Sample, err = g.layout(r.Sample, rnd); err != nil {
		return r, err
	}
	tracer().Debugf("sample %d (%s): %q %v", n, mode, r.Text, r.Sample.Size())
	return r, nil
}

// layout brings a composed sample onto the configured canvas. Without a
// canvas, the sample is padded by the margin.
func (g *Generator) layout(s compose.Sample, rnd core.Chooser) (compose.Sample, error) {
	switch {
	case g.conf.OutWidth > 0:
		opts := raster.PlaceOptions{
			Placement: g.conf.Placement,
			Extend:    g.conf.Jitter > 0,
			ExtMax:    g.conf.Jitter,
		}
		return s.Fit(g.conf.OutWidth, g.conf.OutHeight, g.conf.Margin, opts, rnd)
	case g.conf.Margin > 0:
		return s.Pad(g.conf.Margin)
	}
	return s, nil
}

// Printed composes a sample of a given line of text, without extension. The
// sample is laid out like generated ones.
func (g *Generator) Printed(n int, text string) (Result, error) {
	if g.font == nil {
		return Result{N: n, Text: text, Mode: Printed}, core.Error(core.EINVALID, "no font for printed samples")
	}
	r := Result{N: n, Text: text, Mode: Printed}
	var err error
	if r.Sample, err = g.printed.Compose(text, g.font); err != nil {
		return r, err
	}
	rnd := rand.New(rand.NewSource(g.conf.Seed + int64(n)))
	r.Sample, err = g.layout(r.Sample, rnd)
	return r, err
}

// Handwritten composes a sample of given components. Glyph images are
// chosen with a source of randomness seeded for sample n.
func (g *Generator) Handwritten(n int, components []string) (Result, error) {
	if g.store == nil {
		return Result{N: n, Mode: Handwritten}, core.Error(core.EINVALID, "no glyph images for handwritten samples")
	}
	comps := g.alphabet.StripModifiers(components)
	r := Result{N: n, Text: strings.Join(comps, ""), Mode: Handwritten}
	rnd := rand.New(rand.NewSource(g.conf.Seed + int64(n)))
	var err error
	if r.Sample, err = g.hand.Compose(g.store, comps, rnd, g.conf.CompDim); err != nil {
		return r, err
	}
	r.Sample, err = g.layout(r.Sample, rnd)
	return r, err
}

// Run generates the configured number of samples with a pool of workers and
// passes them to sink, in no particular order.
//
// A sample needing a glyph image the store does not have is skipped. Any
// other error stops the run; Run then returns the first error encountered.
func (g *Generator) Run(ctx context.Context, sink Sink) (Stats, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var stats Stats
	var firstErr error
	var mx sync.Mutex // guards stats and firstErr
	fail := func(err error) {
		mx.Lock()
		defer mx.Unlock()
		if firstErr == nil {
			firstErr = err
		}
		cancel()
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < g.conf.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range jobs {
				r, err := g.Generate(n)
				if errors.Is(err, compose.ErrLookupFailure) {
					tracer().Infof("skipping sample %d: %v", n, err)
					mx.Lock()
					stats.Skipped++
					mx.Unlock()
					continue
				}
				if err == nil {
					err = sink.Put(r)
				}
				if err != nil {
					tracer().Errorf("sample %d: %v", n, err)
					fail(err)
					return
				}
				mx.Lock()
				stats.Written++
				mx.Unlock()
			}
		}()
	}
feed:
	for n := 0; n < g.conf.Samples; n++ {
		select {
		case jobs <- n:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	if firstErr == nil && stats.Written+stats.Skipped < g.conf.Samples {
		firstErr = ctx.Err() // stopped by the caller
	}
	tracer().Infof("wrote %d samples, skipped %d", stats.Written, stats.Skipped)
	return stats, firstErr
}
