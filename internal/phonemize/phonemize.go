// Package phonemize resolves words to ARPAbet phoneme sequences.
//
// Three strategies implement the Phonemizer interface:
//
//   - Dictionary: exact lookup in a CMU-format pronunciation table.
//   - Splitter: segments unknown compounds into the fewest known words
//     using a prefix trie over the same table.
//   - Heuristic: letter and digraph pattern rules that resolve any word
//     containing at least one letter.
//
// Composite chains them so that every input resolves to the best available
// answer. None of the strategies return errors: a word that cannot be
// resolved yields an empty sequence and CanPhonemize reports false.
package phonemize

import (
	"strings"
	"unicode"

	"github.com/example/go-gagspeech/internal/phoneme"
)

// Phonemizer converts a single word into phonemes.
type Phonemizer interface {
	// Phonemize returns the phonemes for word, or an empty sequence when
	// the word cannot be resolved.
	Phonemize(word string) []phoneme.Phoneme
	// CanPhonemize reports whether Phonemize is able to resolve word.
	CanPhonemize(word string) bool
}

// PhonemizeSentence splits text on whitespace and phonemizes each word.
// The result has one entry per word, in order.
func PhonemizeSentence(p Phonemizer, text string) [][]phoneme.Phoneme {
	words := strings.Fields(text)
	out := make([][]phoneme.Phoneme, len(words))
	for i, w := range words {
		out[i] = p.Phonemize(w)
	}
	return out
}

// isWordRune matches the word-character class: letters, non-spacing marks,
// decimal digits and connector punctuation such as '_'.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Nd, r) ||
		unicode.Is(unicode.Pc, r)
}

func concat(a, b []phoneme.Phoneme) []phoneme.Phoneme {
	out := make([]phoneme.Phoneme, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
