package text

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrEmptyText is returned when the input text is empty or whitespace-only.
var ErrEmptyText = errors.New("text is empty")

// Normalize prepares user input for tokenization. Line endings become \n,
// the text is composed to NFC so that a letter and its combining accent form
// one word character, and surrounding whitespace is trimmed.
func Normalize(s string) (string, error) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = norm.NFC.String(s)
	s = strings.TrimSpace(s)

	if s == "" {
		return "", ErrEmptyText
	}
	return s, nil
}
