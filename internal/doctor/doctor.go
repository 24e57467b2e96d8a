// Package doctor provides environment preflight checks for gagspeech.
package doctor

import (
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/example/go-gagspeech/internal/phoneme"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// Config holds injectable dependencies for each doctor check.
type Config struct {
	// DictionaryPath is the configured pronunciation table. Empty means the
	// embedded table, which skips the file check.
	DictionaryPath string
	// DictionaryEntries loads the table and returns its entry count.
	DictionaryEntries func() (int, error)
	// CheckStyle validates the configured gag style.
	CheckStyle func() (string, error)
	// ListenAddr is the configured HTTP listen address.
	ListenAddr string
	// Phonemize is run over SampleWords; nil skips the sample check.
	Phonemize   func(word string) []phoneme.Phoneme
	SampleWords []string
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

// AddFailure appends a failure message to the result.
func (r *Result) AddFailure(msg string) { r.failures = append(r.failures, msg) }

// Run executes all configured checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	// ---- dictionary file --------------------------------------------------
	if cfg.DictionaryPath == "" {
		fmt.Fprintf(w, "%s dictionary file: embedded\n", PassMark)
	} else if _, err := os.Stat(cfg.DictionaryPath); err != nil {
		res.AddFailure(fmt.Sprintf("dictionary file %q: %v", cfg.DictionaryPath, err))
		fmt.Fprintf(w, "%s dictionary file %s: not found\n", FailMark, cfg.DictionaryPath)
	} else {
		fmt.Fprintf(w, "%s dictionary file: %s\n", PassMark, cfg.DictionaryPath)
	}

	// ---- dictionary contents ----------------------------------------------
	if cfg.DictionaryEntries != nil {
		n, err := cfg.DictionaryEntries()
		if err != nil {
			res.AddFailure(fmt.Sprintf("dictionary load: %v", err))
			fmt.Fprintf(w, "%s dictionary load: %v\n", FailMark, err)
		} else {
			fmt.Fprintf(w, "%s dictionary load: %d entries\n", PassMark, n)
		}
	}

	// ---- gag style --------------------------------------------------------
	if cfg.CheckStyle != nil {
		style, err := cfg.CheckStyle()
		if err != nil {
			res.AddFailure(fmt.Sprintf("gag style: %v", err))
			fmt.Fprintf(w, "%s gag style: %v\n", FailMark, err)
		} else {
			fmt.Fprintf(w, "%s gag style: %s\n", PassMark, style)
		}
	}

	// ---- listen address ---------------------------------------------------
	if err := checkListenAddr(cfg.ListenAddr); err != nil {
		res.AddFailure(fmt.Sprintf("listen address: %v", err))
		fmt.Fprintf(w, "%s listen address %q: %v\n", FailMark, cfg.ListenAddr, err)
	} else {
		fmt.Fprintf(w, "%s listen address: %s\n", PassMark, cfg.ListenAddr)
	}

	// ---- sample phrase ----------------------------------------------------
	if cfg.Phonemize != nil {
		var bad []string
		for _, word := range cfg.SampleWords {
			if !validPhonemes(cfg.Phonemize(word)) {
				bad = append(bad, word)
			}
		}
		if len(bad) > 0 {
			res.AddFailure(fmt.Sprintf("sample phonemes: no valid phonemes for %s", strings.Join(bad, ", ")))
			fmt.Fprintf(w, "%s sample phonemes: failed for %s\n", FailMark, strings.Join(bad, ", "))
		} else {
			fmt.Fprintf(w, "%s sample phonemes: %d words\n", PassMark, len(cfg.SampleWords))
		}
	}

	return res
}

func validPhonemes(ps []phoneme.Phoneme) bool {
	if len(ps) == 0 {
		return false
	}
	for _, p := range ps {
		if !p.Valid() {
			return false
		}
	}
	return true
}

// checkListenAddr returns an error unless addr is host:port with a port in
// [0, 65535]. The host may be empty.
func checkListenAddr(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}
	_, err = parsePort(port)
	return err
}

func parsePort(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad port %q: %w", s, err)
	}
	if n < 0 || n > 65535 {
		return 0, fmt.Errorf("port %d out of range", n)
	}
	return n, nil
}
