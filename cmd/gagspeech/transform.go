package main

import (
	"fmt"
	"log/slog"

	"github.com/example/go-gagspeech/internal/render"
	"github.com/spf13/cobra"
)

func newTransformCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Render text through a gag style",
		Long: "Render text through a gag style. The style, severity and seed come from\n" +
			"--style, --severity and --seed (or the matching config keys).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			s, err := readText(input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			proc, err := newProcessor(cfg)
			if err != nil {
				return err
			}

			rng := render.NewRand(cfg.Gag.Seed)
			renderer, err := render.New(cfg.Gag.Style, rng)
			if err != nil {
				return err
			}

			tokens := proc.Process(s)
			slog.Debug("transform",
				slog.String("style", cfg.Gag.Style),
				slog.Float64("severity", cfg.Gag.Severity),
				slog.Int("tokens", len(tokens)),
			)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), render.Transform(s, tokens, renderer, cfg.Gag.Severity, rng))
			return err
		},
	}

	cmd.Flags().StringVar(&input, "text", "", "Text to transform (if empty, read from stdin)")

	return cmd
}
