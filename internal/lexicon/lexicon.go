// Package lexicon provides access to the pronunciation table that backs the
// dictionary phonemizer and the compound-splitting trie.
//
// The default table is embedded in the binary. A replacement table in the
// same CMU format can be supplied from disk with Open.
package lexicon

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrEmptyPath is returned when Open is called with an empty path.
var ErrEmptyPath = errors.New("dictionary path must not be empty")

//go:embed cmudict.txt
var embedded []byte

// Default returns a reader over the embedded pronunciation table.
func Default() io.Reader {
	return bytes.NewReader(embedded)
}

// Size returns the size in bytes of the embedded table.
func Size() int {
	return len(embedded)
}

// Open opens a pronunciation table from disk.
func Open(path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %q: %w", path, err)
	}
	return f, nil
}
