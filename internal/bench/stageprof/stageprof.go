// Package stageprof times the tokenize, phonemize and render stages of the
// pipeline separately, optionally under a CPU profile whose samples carry a
// "stage" pprof label.
package stageprof

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"runtime/pprof"
	"time"

	"github.com/example/go-gagspeech/internal/phoneme"
	"github.com/example/go-gagspeech/internal/render"
	"github.com/example/go-gagspeech/internal/text"
)

// Options configures a profiling session.
type Options struct {
	Text       string
	Runs       int
	Warmup     int
	CPUProfile string // empty disables the profile
	Severity   float64
}

// Timings holds the stage durations of a single run.
type Timings struct {
	Tokenize  time.Duration
	Phonemize time.Duration
	Render    time.Duration
	Total     time.Duration
	Tokens    int
	Words     int
}

// Run profiles opts.Runs passes over opts.Text after opts.Warmup unmeasured
// passes and returns the per-run timings.
func Run(ctx context.Context, opts Options, p text.Phonemizer, r render.Renderer, rng *rand.Rand) ([]Timings, error) {
	if opts.Runs < 1 {
		return nil, fmt.Errorf("runs must be >= 1, got %d", opts.Runs)
	}

	for range opts.Warmup {
		runOnce(ctx, opts, p, r, rng)
	}

	if opts.CPUProfile != "" {
		f, err := os.Create(opts.CPUProfile)
		if err != nil {
			return nil, fmt.Errorf("create cpuprofile: %w", err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return nil, fmt.Errorf("start cpuprofile: %w", err)
		}

		defer pprof.StopCPUProfile()
	}

	out := make([]Timings, 0, opts.Runs)
	for range opts.Runs {
		out = append(out, runOnce(ctx, opts, p, r, rng))
	}
	return out, nil
}

func runOnce(ctx context.Context, opts Options, p text.Phonemizer, r render.Renderer, rng *rand.Rand) Timings {
	var out Timings
	startTotal := time.Now()

	var tokens []text.Token

	pprof.Do(ctx, pprof.Labels("stage", "tokenize"), func(context.Context) {
		start := time.Now()
		tokens = text.Tokenize(opts.Text)
		out.Tokenize = time.Since(start)
	})

	pprof.Do(ctx, pprof.Labels("stage", "phonemize"), func(context.Context) {
		start := time.Now()
		for i := range tokens {
			if tokens[i].Kind == text.Word {
				ps := p.Phonemize(tokens[i].Text)
				if ps == nil {
					ps = []phoneme.Phoneme{}
				}
				tokens[i].Phonemes = ps
			}
		}
		out.Phonemize = time.Since(start)
	})

	pprof.Do(ctx, pprof.Labels("stage", "render"), func(context.Context) {
		start := time.Now()
		_ = render.Apply(tokens, r, opts.Severity, rng)
		out.Render = time.Since(start)
	})

	out.Total = time.Since(startTotal)
	out.Tokens = len(tokens)
	out.Words = text.WordCount(tokens)

	return out
}

// Mean averages the stage durations of ts.
func Mean(ts []Timings) Timings {
	var agg Timings
	if len(ts) == 0 {
		return agg
	}

	for _, t := range ts {
		agg.Tokenize += t.Tokenize
		agg.Phonemize += t.Phonemize
		agg.Render += t.Render
		agg.Total += t.Total
		agg.Tokens = t.Tokens
		agg.Words = t.Words
	}

	n := time.Duration(len(ts))
	agg.Tokenize /= n
	agg.Phonemize /= n
	agg.Render /= n
	agg.Total /= n
	return agg
}

// Write prints the averaged stage breakdown of ts as key: value lines.
func Write(w io.Writer, ts []Timings) {
	avg := Mean(ts)
	ms := func(d time.Duration) float64 { return float64(d.Microseconds()) / 1000 }

	fmt.Fprintf(w, "runs: %d\n", len(ts))
	fmt.Fprintf(w, "tokens: %d\n", avg.Tokens)
	fmt.Fprintf(w, "words: %d\n", avg.Words)
	fmt.Fprintf(w, "avg_tokenize_ms: %.3f\n", ms(avg.Tokenize))
	fmt.Fprintf(w, "avg_phonemize_ms: %.3f\n", ms(avg.Phonemize))
	fmt.Fprintf(w, "avg_render_ms: %.3f\n", ms(avg.Render))
	fmt.Fprintf(w, "avg_total_ms: %.3f\n", ms(avg.Total))

	if avg.Total > 0 {
		total := float64(avg.Total)
		fmt.Fprintf(w, "share_tokenize_pct: %.2f\n", 100*float64(avg.Tokenize)/total)
		fmt.Fprintf(w, "share_phonemize_pct: %.2f\n", 100*float64(avg.Phonemize)/total)
		fmt.Fprintf(w, "share_render_pct: %.2f\n", 100*float64(avg.Render)/total)
	}
}
