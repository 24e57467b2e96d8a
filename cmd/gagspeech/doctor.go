package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/go-gagspeech/internal/config"
	"github.com/example/go-gagspeech/internal/doctor"
	"github.com/example/go-gagspeech/internal/phoneme"
	"github.com/example/go-gagspeech/internal/phonemize"
	"github.com/spf13/cobra"
)

// doctorSample exercises every phonemizer strategy: dictionary words, a
// compound for the splitter and a made-up word for the heuristic.
const doctorSample = "hello world sunflowerhouse blorptastic"

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Run local dictionary and configuration checks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			var dict *phonemize.Dictionary
			dcfg := doctor.Config{
				DictionaryPath: cfg.Paths.DictionaryPath,
				DictionaryEntries: func() (int, error) {
					d, err := phonemize.LoadDictionary(cfg.Paths.DictionaryPath)
					if err != nil {
						return 0, err
					}
					dict = d
					return d.Len(), nil
				},
				CheckStyle: func() (string, error) {
					return config.NormalizeStyle(cfg.Gag.Style)
				},
				ListenAddr:  cfg.Server.ListenAddr,
				SampleWords: strings.Fields(doctorSample),
			}
			var p phonemize.Phonemizer
			dcfg.Phonemize = func(word string) []phoneme.Phoneme {
				if dict == nil {
					return nil
				}
				if p == nil {
					p = phonemize.NewDefault(dict)
				}
				return p.Phonemize(word)
			}

			out := cmd.OutOrStdout()
			result := doctor.Run(dcfg, out)

			if result.Failed() {
				for _, f := range result.Failures() {
					fmt.Fprintf(cmd.ErrOrStderr(), "FAIL: %s\n", f)
				}

				return errors.New("doctor checks failed")
			}

			_, _ = fmt.Fprintln(out, "doctor checks passed")

			return nil
		},
	}
}
