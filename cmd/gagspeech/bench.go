package main

import (
	"fmt"

	"github.com/example/go-gagspeech/internal/bench"
	"github.com/example/go-gagspeech/internal/bench/stageprof"
	"github.com/example/go-gagspeech/internal/phonemize"
	"github.com/example/go-gagspeech/internal/render"
	"github.com/example/go-gagspeech/internal/text"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var (
		input         string
		runs          int
		format        string
		minThroughput float64
		stages        bool
		warmup        int
		cpuProfile    string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark phonemization and rendering throughput",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			if runs < 1 {
				return fmt.Errorf("--runs must be at least 1")
			}
			if format != "table" && format != "json" {
				return fmt.Errorf("--format must be 'table' or 'json'")
			}

			s, err := readText(input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			if stages {
				return runStages(cmd, cfg.Paths.DictionaryPath, stageprof.Options{
					Text:       s,
					Runs:       runs,
					Warmup:     warmup,
					CPUProfile: cpuProfile,
					Severity:   cfg.Gag.Severity,
				}, cfg.Gag.Style, cfg.Gag.Seed)
			}

			// The processor is shared across runs, so run 1 pays for the
			// phonemizer caches.
			proc, err := newProcessor(cfg)
			if err != nil {
				return err
			}

			rng := render.NewRand(cfg.Gag.Seed)
			renderer, err := render.New(cfg.Gag.Style, rng)
			if err != nil {
				return err
			}

			results := bench.Run(runs, func() int {
				tokens := proc.Process(s)
				_ = render.Apply(tokens, renderer, cfg.Gag.Severity, rng)
				return text.WordCount(tokens)
			})
			stats := bench.ComputeStats(bench.Durations(results))

			switch format {
			case "json":
				bench.FormatJSON(results, stats, cmd.OutOrStdout())
			default:
				bench.FormatTable(results, stats, cmd.OutOrStdout())
			}

			return bench.CheckThroughputFloor(bench.MeanThroughput(results), minThroughput)
		},
	}

	cmd.Flags().StringVar(&input, "text", "", "Text to process on each run (if empty, read from stdin)")
	cmd.Flags().IntVar(&runs, "runs", 5, "Number of runs")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table|json")
	cmd.Flags().BoolVar(&stages, "stages", false, "Print a per-stage timing breakdown instead of throughput")
	cmd.Flags().IntVar(&warmup, "warmup", 1, "Unmeasured warmup runs before --stages profiling")
	cmd.Flags().StringVar(&cpuProfile, "cpuprofile", "", "Write a CPU profile labelled by stage (with --stages)")
	cmd.Flags().Float64Var(&minThroughput, "min-throughput", 0, "Exit non-zero if mean words/s falls below this value (0 = disabled)")

	return cmd
}

func runStages(cmd *cobra.Command, dictPath string, opts stageprof.Options, style string, seed uint64) error {
	dict, err := phonemize.LoadDictionary(dictPath)
	if err != nil {
		return err
	}

	rng := render.NewRand(seed)
	renderer, err := render.New(style, rng)
	if err != nil {
		return err
	}

	timings, err := stageprof.Run(cmd.Context(), opts, phonemize.NewDefault(dict), renderer, rng)
	if err != nil {
		return err
	}

	stageprof.Write(cmd.OutOrStdout(), timings)
	return nil
}
