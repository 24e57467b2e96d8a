package testutil

import (
	"testing"

	"github.com/example/go-gagspeech/internal/phoneme"
)

// AssertPhonemes fails the test unless got, joined with spaces, equals want
// (for example "HH AH L OW").
func AssertPhonemes(tb testing.TB, got []phoneme.Phoneme, want string) {
	tb.Helper()

	if s := phoneme.Join(got); s != want {
		tb.Fatalf("phonemes = %q, want %q", s, want)
	}
}

// AssertValidPhonemes fails the test if any phoneme is outside the inventory.
func AssertValidPhonemes(tb testing.TB, got []phoneme.Phoneme) {
	tb.Helper()

	for i, p := range got {
		if !p.Valid() {
			tb.Fatalf("phoneme %d (%q) is not in the inventory", i, p)
		}
	}
}
