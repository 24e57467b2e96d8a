package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/example/go-gagspeech/internal/lexicon"
	"github.com/example/go-gagspeech/internal/phoneme"
	"github.com/example/go-gagspeech/internal/phonemize"
	"github.com/spf13/cobra"
)

func newLexiconCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lexicon [word...]",
		Short: "Describe the pronunciation table and look up words in it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			path := cfg.Paths.DictionaryPath
			source, size := "embedded", uint64(lexicon.Size())
			if path != "" {
				info, err := os.Stat(path)
				if err != nil {
					return fmt.Errorf("stat dictionary: %w", err)
				}
				source, size = path, uint64(info.Size())
			}

			dict, err := phonemize.LoadDictionary(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "source:  %s (%s)\n", source, humanize.Bytes(size))
			fmt.Fprintf(out, "entries: %s\n", humanize.Comma(int64(dict.Len())))

			for _, word := range args {
				if !dict.CanPhonemize(word) {
					fmt.Fprintf(out, "%s\t-\n", word)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", word, phoneme.Join(dict.Phonemize(word)))
			}
			return nil
		},
	}
}
