package main

import (
	"fmt"

	"github.com/example/go-gagspeech/internal/config"
	"github.com/example/go-gagspeech/internal/phoneme"
	"github.com/example/go-gagspeech/internal/server"
	"github.com/example/go-gagspeech/internal/text"
	"github.com/spf13/cobra"
)

func newProcessor(cfg config.Config) (*text.Processor, error) {
	return server.NewProcessor(cfg.Paths.DictionaryPath)
}

func newPhonemizeCmd() *cobra.Command {
	var input string
	var ipa bool

	cmd := &cobra.Command{
		Use:   "phonemize",
		Short: "Print the phonemes of every word in the text",
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

			out := cmd.OutOrStdout()
			for _, tok := range proc.Process(s) {
				if tok.Kind != text.Word {
					continue
				}
				rendered := phoneme.Join(tok.Phonemes)
				if ipa {
					rendered = phoneme.JoinIPA(tok.Phonemes)
				}
				if _, err := fmt.Fprintf(out, "%s\t%s\n", tok.Text, rendered); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "text", "", "Text to phonemize (if empty, read from stdin)")
	cmd.Flags().BoolVar(&ipa, "ipa", false, "Print IPA instead of ARPAbet")

	return cmd
}
