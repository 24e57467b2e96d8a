package main

import (
	"encoding/json"

	"github.com/example/go-gagspeech/internal/text"
	"github.com/spf13/cobra"
)

func newTokenizeCmd() *cobra.Command {
	var input string
	var phonemes bool

	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Split text into word and preserved tokens (JSON)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			s, err := readText(input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			var tokens []text.Token
			if phonemes {
				proc, err := newProcessor(cfg)
				if err != nil {
					return err
				}
				tokens = proc.Process(s)
			} else {
				tokens = text.Tokenize(s)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(tokens)
		},
	}

	cmd.Flags().StringVar(&input, "text", "", "Text to tokenize (if empty, read from stdin)")
	cmd.Flags().BoolVar(&phonemes, "phonemes", false, "Attach phonemes to word tokens")

	return cmd
}
