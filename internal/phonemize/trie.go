package phonemize

import (
	"unicode"
	"unicode/utf8"
)

// Trie is a case-insensitive prefix tree over a word list. It is built once
// and is safe for concurrent reads afterwards.
type Trie struct {
	root  *trieNode
	count int
}

type trieNode struct {
	children map[rune]*trieNode
	end      bool
}

func NewTrie() *Trie {
	return &Trie{root: &trieNode{}}
}

// Len returns the number of distinct words in the trie.
func (t *Trie) Len() int {
	return t.count
}

// Insert adds word to the trie. Empty words are ignored.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}

	node := t.root
	for _, r := range word {
		r = unicode.ToUpper(r)
		child, ok := node.children[r]
		if !ok {
			if node.children == nil {
				node.children = make(map[rune]*trieNode)
			}
			child = &trieNode{}
			node.children[r] = child
		}
		node = child
	}

	if !node.end {
		node.end = true
		t.count++
	}
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	if word == "" {
		return false
	}
	node := t.find(word)
	return node != nil && node.end
}

// HasPrefix reports whether any inserted word starts with prefix. The empty
// prefix always matches.
func (t *Trie) HasPrefix(prefix string) bool {
	if prefix == "" {
		return true
	}
	return t.find(prefix) != nil
}

// FindLongestPrefix returns the longest inserted word that is a prefix of
// text. The returned string is a slice of text, so its byte length can be
// used to take the remainder.
func (t *Trie) FindLongestPrefix(text string) (string, bool) {
	prefixes := t.FindAllPrefixes(text)
	if len(prefixes) == 0 {
		return "", false
	}
	return prefixes[0], true
}

// FindAllPrefixes returns every inserted word that is a prefix of text,
// longest first. Each result is a slice of text.
func (t *Trie) FindAllPrefixes(text string) []string {
	if text == "" {
		return nil
	}

	var ends []int
	node := t.root
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		child, ok := node.children[unicode.ToUpper(r)]
		if !ok {
			break
		}
		node = child
		i += size
		if node.end {
			ends = append(ends, i)
		}
	}

	out := make([]string, len(ends))
	for i, end := range ends {
		out[len(ends)-1-i] = text[:end]
	}
	return out
}

func (t *Trie) find(text string) *trieNode {
	node := t.root
	for _, r := range text {
		child, ok := node.children[unicode.ToUpper(r)]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}
