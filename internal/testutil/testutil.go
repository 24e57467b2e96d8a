// Package testutil provides shared fixtures and skip helpers for tests.
//
// Skip helpers call t.Skip with a clear human-readable reason when the named
// prerequisite is absent, so integration tests remain runnable in partial
// environments without failing noisily.
//
// Typical usage:
//
//	func TestFullDictionary(t *testing.T) {
//	    path := testutil.RequireDictionaryFile(t)
//	    ...
//	}
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// DictionaryEnv names the environment variable that points integration
// tests at a complete CMU pronunciation dictionary.
const DictionaryEnv = "GAGSPEECH_CMUDICT_PATH"

// RequireDictionaryFile returns the path named by DictionaryEnv, skipping the
// test when the variable is unset or the file does not exist.
func RequireDictionaryFile(tb testing.TB) string {
	tb.Helper()

	p := os.Getenv(DictionaryEnv)
	if p == "" {
		tb.Skipf("full pronunciation dictionary not configured; set %s to a cmudict file", DictionaryEnv)
		return ""
	}

	if _, err := os.Stat(p); err != nil {
		tb.Skipf("pronunciation dictionary not available at %s=%q: %v", DictionaryEnv, p, err)
		return ""
	}
	return p
}

// WriteVocabulary writes content as a CMU-format table into a fresh temp
// directory and returns its path.
func WriteVocabulary(tb testing.TB, content string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "vocabulary.dict")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		tb.Fatalf("write vocabulary: %v", err)
	}
	return path
}
