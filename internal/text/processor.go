package text

import "github.com/example/go-gagspeech/internal/phoneme"

// Phonemizer is the minimal interface the Processor needs to resolve words.
type Phonemizer interface {
	Phonemize(word string) []phoneme.Phoneme
}

// Processor tokenizes text and attaches phonemes to every Word token.
type Processor struct {
	phonemizer Phonemizer
}

func NewProcessor(p Phonemizer) *Processor {
	return &Processor{phonemizer: p}
}

// Process returns the tokens of s. Word tokens always carry a non-nil
// phoneme slice, empty when the word could not be resolved. Preserved
// tokens carry nil.
func (p *Processor) Process(s string) []Token {
	tokens := Tokenize(s)
	for i := range tokens {
		if tokens[i].Kind != Word {
			continue
		}
		ps := p.phonemizer.Phonemize(tokens[i].Text)
		if ps == nil {
			ps = []phoneme.Phoneme{}
		}
		tokens[i].Phonemes = ps
	}
	return tokens
}

// WordCount returns the number of Word tokens.
func WordCount(tokens []Token) int {
	n := 0
	for _, t := range tokens {
		if t.Kind == Word {
			n++
		}
	}
	return n
}
