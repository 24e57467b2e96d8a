package phonemize

import (
	"math"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/example/go-gagspeech/internal/phoneme"
)

// maxSplitLength bounds the input, in runes, the splitter will search.
const maxSplitLength = 50

// splitResult is a memoized split outcome. segments == 0 marks the empty
// input; segments == math.MaxInt marks a failed split.
type splitResult struct {
	phonemes []phoneme.Phoneme
	segments int
}

var (
	emptySplit  = splitResult{}
	failedSplit = splitResult{segments: math.MaxInt}
)

func (r splitResult) ok() bool {
	return r.segments > 0 && r.segments < math.MaxInt
}

// Splitter resolves compounds such as "sunflower" by segmenting them into
// the fewest dictionary words. Hyphenated words are resolved part by part.
// It is safe for concurrent use.
type Splitter struct {
	dict *Dictionary
	trie *Trie

	mu    sync.Mutex
	cache map[string]splitResult
}

func NewSplitter(dict *Dictionary) *Splitter {
	trie := NewTrie()
	for _, w := range dict.Words() {
		trie.Insert(w)
	}
	return &Splitter{
		dict:  dict,
		trie:  trie,
		cache: make(map[string]splitResult),
	}
}

func (s *Splitter) Phonemize(word string) []phoneme.Phoneme {
	text := strings.ToUpper(strings.TrimSpace(word))
	if text == "" {
		return nil
	}

	if strings.Contains(text, "-") {
		var out []phoneme.Phoneme
		for _, part := range hyphenParts(text) {
			out = append(out, s.Phonemize(part)...)
		}
		return out
	}

	r := s.findBestSplit(text)
	if !r.ok() {
		return nil
	}
	return slices.Clone(r.phonemes)
}

func (s *Splitter) CanPhonemize(word string) bool {
	text := strings.ToUpper(strings.TrimSpace(word))
	if text == "" {
		return false
	}

	if strings.Contains(text, "-") {
		parts := hyphenParts(text)
		if len(parts) == 0 {
			return false
		}
		for _, part := range parts {
			if !s.CanPhonemize(part) {
				return false
			}
		}
		return true
	}

	return s.findBestSplit(text).ok()
}

// findBestSplit returns the split of text into the fewest dictionary
// words. Prefixes are tried longest first and the search stops once a
// split of at most two segments is found.
func (s *Splitter) findBestSplit(text string) splitResult {
	if text == "" {
		return emptySplit
	}
	if utf8.RuneCountInString(text) > maxSplitLength {
		return failedSplit
	}
	if r, ok := s.lookup(text); ok {
		return r
	}

	if direct := s.dict.Phonemize(text); len(direct) > 0 {
		r := splitResult{phonemes: direct, segments: 1}
		s.store(text, r)
		return r
	}

	best := failedSplit
	for _, prefix := range s.trie.FindAllPrefixes(text) {
		head := s.dict.Phonemize(prefix)
		if len(head) == 0 {
			continue
		}

		rest := text[len(prefix):]
		candidate := splitResult{phonemes: head, segments: 1}
		if rest != "" {
			tail := s.findBestSplit(rest)
			if !tail.ok() {
				continue
			}
			candidate = splitResult{
				phonemes: concat(head, tail.phonemes),
				segments: 1 + tail.segments,
			}
		}

		if candidate.segments < best.segments {
			best = candidate
		}
		if best.segments <= 2 {
			break
		}
	}

	s.store(text, best)
	return best
}

func (s *Splitter) lookup(text string) (splitResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.cache[text]
	return r, ok
}

func (s *Splitter) store(text string, r splitResult) {
	s.mu.Lock()
	s.cache[text] = r
	s.mu.Unlock()
}

func hyphenParts(text string) []string {
	var parts []string
	for _, p := range strings.Split(text, "-") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
