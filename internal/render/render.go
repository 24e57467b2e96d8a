// Package render turns phonemized text into gagged speech.
//
// A Renderer rewrites one word at a time and may add a sentence-level
// suffix. Apply drives a renderer over processed tokens so that punctuation,
// emoji and markup survive unchanged between the rewritten words.
package render

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/example/go-gagspeech/internal/phoneme"
	"github.com/example/go-gagspeech/internal/text"
)

// ErrUnknownStyle is returned by New for an unrecognized style name.
var ErrUnknownStyle = errors.New("unknown gag style")

const (
	StyleBall       = "ball"
	StyleCow        = "cow"
	StyleCat        = "cat"
	StyleDog        = "dog"
	StyleBarkingDog = "barking-dog"
	StyleCatgirl    = "catgirl"
	StyleUwu        = "uwu"
	StyleFurry      = "furry"
)

var styles = []string{
	StyleBall,
	StyleCow,
	StyleCat,
	StyleDog,
	StyleBarkingDog,
	StyleCatgirl,
	StyleUwu,
	StyleFurry,
}

var descriptions = map[string]string{
	StyleBall:       "muffled through a ball gag; nasals pass, the rest becomes mmph",
	StyleCow:        "one moo per syllable",
	StyleCat:        "one meow per syllable",
	StyleDog:        "leading consonants replaced with r",
	StyleBarkingDog: "ruff and woof per syllable, grr after growly consonants",
	StyleCatgirl:    "nya-fied syllables with a trailing ~",
	StyleUwu:        "uwu and owo syllables",
	StyleFurry:      "text substitutions and w-speak with occasional emotes",
}

// Word is the unit a Renderer rewrites.
type Word struct {
	Text     string
	Phonemes []phoneme.Phoneme
}

type Renderer interface {
	// Name returns the style name accepted by New.
	Name() string
	// RenderWord returns the gagged form of w. An empty result means the
	// word is left as written.
	RenderWord(w Word) string
	// Suffix returns text appended once after a sentence of wordCount
	// rendered words.
	Suffix(wordCount int) string
}

// textRenderer is implemented by renderers that work from spelling and so
// also rewrite words without phonemes.
type textRenderer interface {
	usesText()
}

// Styles returns the supported style names in display order.
func Styles() []string {
	return append([]string(nil), styles...)
}

// Description returns a one-line description of style.
func Description(style string) string {
	return descriptions[style]
}

// New returns the renderer for style. Randomized styles draw from rng; a nil
// rng is replaced with a randomly seeded source.
func New(style string, rng *rand.Rand) (Renderer, error) {
	if rng == nil {
		rng = NewRand(0)
	}

	switch style {
	case StyleBall:
		return ballRenderer{}, nil
	case StyleCow:
		return cowRenderer{}, nil
	case StyleCat:
		return catRenderer{}, nil
	case StyleDog:
		return dogRenderer{}, nil
	case StyleBarkingDog:
		return barkingDogRenderer{}, nil
	case StyleCatgirl:
		return &catgirlRenderer{rng: rng}, nil
	case StyleUwu:
		return &uwuRenderer{rng: rng}, nil
	case StyleFurry:
		return &furryRenderer{rng: rng}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownStyle, style)
	}
}

// NewRand returns a PCG-backed source. A zero seed picks a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// RenderSentence renders words, joins them with spaces and appends the
// sentence suffix.
func RenderSentence(r Renderer, words []Word) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = r.RenderWord(w)
	}
	return strings.Join(parts, " ") + r.Suffix(len(words))
}

// Transform renders the tokens of input. Severity zero or below returns
// input exactly as typed, including letter-like symbols that the tokenizer
// would otherwise spell out.
func Transform(input string, tokens []text.Token, r Renderer, severity float64, rng *rand.Rand) string {
	if severity <= 0 {
		return input
	}
	return Apply(tokens, r, severity, rng)
}

// Apply renders processed tokens. Each eligible word is replaced with
// probability severity, clamped to [0, 1]. Preserved tokens are copied
// through. Phoneme-based renderers leave words without phonemes as written.
// The sentence suffix is appended once when at least one word was rendered.
// At severity zero the tokens are joined back, so letter-like runs come out
// as their decoded letters; use Transform to keep the raw input.
func Apply(tokens []text.Token, r Renderer, severity float64, rng *rand.Rand) string {
	severity = min(max(severity, 0), 1)
	if severity == 0 {
		return text.Join(tokens)
	}
	if rng == nil {
		rng = NewRand(0)
	}
	_, spelling := r.(textRenderer)

	var b strings.Builder
	eligible, rendered := 0, 0
	for _, tok := range tokens {
		if tok.Kind != text.Word || (!spelling && len(tok.Phonemes) == 0) {
			b.WriteString(tok.Text)
			continue
		}
		eligible++

		if severity < 1 && rng.Float64() >= severity {
			b.WriteString(tok.Text)
			continue
		}

		out := r.RenderWord(Word{Text: tok.Text, Phonemes: tok.Phonemes})
		if out == "" {
			b.WriteString(tok.Text)
			continue
		}
		rendered++
		b.WriteString(out)
	}

	if rendered > 0 {
		b.WriteString(r.Suffix(eligible))
	}
	return b.String()
}
