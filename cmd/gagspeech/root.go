package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/example/go-gagspeech/internal/config"
	"github.com/example/go-gagspeech/internal/server"
	"github.com/example/go-gagspeech/internal/text"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	activeCfg config.Config
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "gagspeech",
		Short:         "Phonemize text and render it through gag styles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			setupLogger(loaded.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newTokenizeCmd())
	cmd.AddCommand(newPhonemizeCmd())
	cmd.AddCommand(newTransformCmd())
	cmd.AddCommand(newStylesCmd())
	cmd.AddCommand(newLexiconCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newHealthCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newBenchCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := server.ParseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

// requireConfig returns the configuration loaded by the root command.
// Load always resolves a style, so an empty one means it never ran.
func requireConfig() (config.Config, error) {
	if activeCfg.Gag.Style == "" {
		return config.Config{}, fmt.Errorf("configuration not loaded")
	}
	return activeCfg, nil
}

// readText returns the --text value, or stdin when the flag is blank, after
// line-ending and Unicode normalization.
func readText(flagText string, stdin io.Reader) (string, error) {
	input := flagText
	if strings.TrimSpace(input) == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		input = string(b)
	}

	normalized, err := text.Normalize(input)
	if errors.Is(err, text.ErrEmptyText) {
		return "", fmt.Errorf("either provide --text or pipe text on stdin")
	}
	return normalized, err
}
