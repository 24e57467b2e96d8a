package phonemize

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/example/go-gagspeech/internal/lexicon"
	"github.com/example/go-gagspeech/internal/phoneme"
)

// ErrEmptyVocabulary is returned when a pronunciation table yields no usable
// entries.
var ErrEmptyVocabulary = errors.New("vocabulary contains no entries")

// Dictionary resolves words by exact lookup in a pronunciation table.
// It is immutable after construction.
type Dictionary struct {
	entries map[string][]phoneme.Phoneme
}

// NewDictionary parses a CMU-format table:
//
//	;;; comment
//	HELLO  HH AH0 L OW1
//	HELLO(2)  HH EH0 L OW1
//
// Comment and blank lines are skipped, as are alternate pronunciations
// (headwords ending in "(n)"). Stress digits are stripped and unknown
// phoneme tokens dropped. The first pronunciation of a headword wins.
func NewDictionary(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{entries: make(map[string][]phoneme.Phoneme)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}

		fields := strings.Fields(line)
		word := fields[0]
		if isAlternate(word) {
			continue
		}

		phonemes := make([]phoneme.Phoneme, 0, len(fields)-1)
		for _, tok := range fields[1:] {
			if p, ok := phoneme.Parse(tok); ok {
				phonemes = append(phonemes, p)
			}
		}
		if len(phonemes) == 0 {
			continue
		}

		key := strings.ToUpper(word)
		if _, exists := d.entries[key]; exists {
			continue
		}
		d.entries[key] = phonemes
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	if len(d.entries) == 0 {
		return nil, ErrEmptyVocabulary
	}

	return d, nil
}

// LoadDictionary builds a Dictionary from the table at path, or from the
// embedded table when path is empty.
func LoadDictionary(path string) (*Dictionary, error) {
	if path == "" {
		return NewDictionary(lexicon.Default())
	}

	rc, err := lexicon.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	d, err := NewDictionary(rc)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %q: %w", path, err)
	}
	return d, nil
}

// Len returns the number of headwords.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Words returns every headword in sorted order.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.entries))
	for w := range d.entries {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

func (d *Dictionary) Phonemize(word string) []phoneme.Phoneme {
	ps, ok := d.entries[normalizeLookup(word)]
	if !ok {
		return nil
	}
	return slices.Clone(ps)
}

func (d *Dictionary) CanPhonemize(word string) bool {
	_, ok := d.entries[normalizeLookup(word)]
	return ok
}

// normalizeLookup trims the word, drops everything except word characters
// and apostrophes, and upper-cases the rest.
func normalizeLookup(word string) string {
	word = strings.TrimSpace(word)
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if isWordRune(r) || r == '\'' {
			b.WriteRune(r)
		}
	}
	return strings.ToUpper(b.String())
}

// isAlternate reports whether a headword carries a "(digits)" suffix.
func isAlternate(word string) bool {
	if !strings.HasSuffix(word, ")") {
		return false
	}
	open := strings.LastIndexByte(word, '(')
	if open <= 0 {
		return false
	}
	digits := word[open+1 : len(word)-1]
	if digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
