package phonemize

import "github.com/example/go-gagspeech/internal/phoneme"

// Composite tries each strategy in order and returns the first non-empty
// result from a strategy that reports it can handle the word.
type Composite struct {
	strategies []Phonemizer
}

func NewComposite(strategies ...Phonemizer) *Composite {
	return &Composite{strategies: strategies}
}

// NewDefault chains dictionary lookup, compound splitting and the spelling
// heuristic over dict.
func NewDefault(dict *Dictionary) *Composite {
	return NewComposite(dict, NewSplitter(dict), NewHeuristic())
}

func (c *Composite) Phonemize(word string) []phoneme.Phoneme {
	for _, s := range c.strategies {
		if !s.CanPhonemize(word) {
			continue
		}
		if out := s.Phonemize(word); len(out) > 0 {
			return out
		}
	}
	return nil
}

func (c *Composite) CanPhonemize(word string) bool {
	for _, s := range c.strategies {
		if s.CanPhonemize(word) {
			return true
		}
	}
	return false
}
