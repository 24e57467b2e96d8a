package text

import (
	"fmt"

	"github.com/example/go-gagspeech/internal/phoneme"
)

// Kind classifies a token.
type Kind int

const (
	// Word tokens are eligible for phonemization.
	Word Kind = iota
	// Preserved tokens are emitted unchanged: punctuation, whitespace,
	// emoji and protocol markup.
	Preserved
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Preserved:
		return "preserved"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Word, Preserved:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("invalid token kind %d", int(k))
	}
}

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "word":
		*k = Word
	case "preserved":
		*k = Preserved
	default:
		return fmt.Errorf("invalid token kind %q", b)
	}
	return nil
}

// Token is one span of input text. Phonemes is nil until a Processor fills
// it, and stays nil for Preserved tokens.
type Token struct {
	Kind     Kind              `json:"kind"`
	Text     string            `json:"text"`
	Phonemes []phoneme.Phoneme `json:"phonemes"`
}

func NewWord(s string) Token {
	return Token{Kind: Word, Text: s}
}

func NewPreserved(s string) Token {
	return Token{Kind: Preserved, Text: s}
}

// Join concatenates token text. For input without letter-like symbols
// Join(Tokenize(s)) == s.
func Join(tokens []Token) string {
	n := 0
	for _, t := range tokens {
		n += len(t.Text)
	}
	b := make([]byte, 0, n)
	for _, t := range tokens {
		b = append(b, t.Text...)
	}
	return string(b)
}
