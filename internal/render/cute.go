package render

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/example/go-gagspeech/internal/phoneme"
)

var (
	aTypeVowels = map[phoneme.Phoneme]bool{phoneme.AE: true, phoneme.AA: true}
	uTypeVowels = map[phoneme.Phoneme]bool{phoneme.UW: true, phoneme.UH: true, phoneme.IY: true}
)

var catgirlSpellings = map[phoneme.Phoneme]string{
	phoneme.AY: "ai",
	phoneme.OY: "oi",
	phoneme.DH: "th",
}

func catgirlSpelling(p phoneme.Phoneme) string {
	if s, ok := catgirlSpellings[p]; ok {
		return s
	}
	return spellings[p]
}

type catgirlRenderer struct {
	rng *rand.Rand
}

func (*catgirlRenderer) Name() string { return StyleCatgirl }

// RenderWord nya-fies the word: "magic" becomes "nyajihk", "you" becomes
// "mew" and "nothing" becomes "nyuhthihng".
func (*catgirlRenderer) RenderWord(w Word) string {
	ps := w.Phonemes
	var b strings.Builder
	for i := 0; i < len(ps); {
		p := ps[i]
		hasNext := i+1 < len(ps)

		switch {
		case i == 0 && (p == phoneme.M || p == phoneme.HH) && hasNext && aTypeVowels[ps[i+1]]:
			b.WriteString("nya")
			i += 2
		case i == 0 && aTypeVowels[p]:
			b.WriteString("nya")
			i++
		case p == phoneme.Y && hasNext && uTypeVowels[ps[i+1]]:
			b.WriteString("mew")
			i += 2
		case i == 0 && uTypeVowels[p]:
			b.WriteString("nyu")
			i++
		case p == phoneme.N && hasNext && ps[i+1].IsVowel():
			b.WriteString("ny")
			b.WriteString(catgirlSpelling(ps[i+1]))
			i += 2
		default:
			b.WriteString(catgirlSpelling(p))
			i++
		}
	}
	return b.String()
}

// Suffix adds a trailing "~" to short sentences and to about a third of
// longer ones.
func (c *catgirlRenderer) Suffix(wordCount int) string {
	if wordCount <= 2 || c.rng.Float64() < 0.3 {
		return "~"
	}
	return ""
}

var (
	uwuU = []string{"uwu", "uwo", "üwu", "ùwu", "úwu", "ûwu", "ŭwu", "uvu", "üvü"}
	uwuO = []string{"owo", "owu", "öwo", "òwo", "ówo", "ôwo", "ŏwo", "ovu", "övö"}
	uwuA = []string{"awa", "awu", "awo", "nya", "nyáa", "nyanya"}

	uVowels = map[phoneme.Phoneme]bool{phoneme.UW: true, phoneme.UH: true, phoneme.IY: true, phoneme.IH: true}
	oVowels = map[phoneme.Phoneme]bool{phoneme.OW: true, phoneme.AO: true, phoneme.OY: true, phoneme.AH: true, phoneme.ER: true}
)

type uwuRenderer struct {
	rng *rand.Rand
}

func (*uwuRenderer) Name() string { return StyleUwu }

// RenderWord emits one uwu-style syllable per vowel, chosen by vowel
// quality.
func (u *uwuRenderer) RenderWord(w Word) string {
	if len(w.Phonemes) == 0 {
		return ""
	}

	var b strings.Builder
	n := 0
	for _, p := range w.Phonemes {
		if !p.IsVowel() {
			continue
		}
		patterns := uwuA
		switch {
		case uVowels[p]:
			patterns = uwuU
		case oVowels[p]:
			patterns = uwuO
		}
		if n > 0 && u.rng.Float64() < 0.3 {
			b.WriteByte('w')
		}
		b.WriteString(patterns[u.rng.IntN(len(patterns))])
		n++
	}
	if n == 0 {
		return "uwu"
	}
	return b.String()
}

func (u *uwuRenderer) Suffix(wordCount int) string {
	if wordCount > 2 && u.rng.Float64() >= 0.25 {
		return ""
	}
	if u.rng.Float64() < 0.5 {
		return " uwu"
	}
	return " owo"
}

var furrySubstitutions = map[string]string{
	"you":      "chu",
	"your":     "ur",
	"you're":   "chu'we",
	"the":      "teh",
	"this":     "dis",
	"love":     "wuv",
	"for":      "fur",
	"not":      "knot",
	"with":     "wif",
	"what":     "wat",
	"hi":       "hai",
	"bye":      "bai",
	"hello":    "hewwo",
	"cute":     "kyoot",
	"please":   "pwease",
	"pretty":   "pwetty",
	"little":   "wittle",
	"look":     "wook",
	"really":   "weawwy",
	"feel":     "feew",
	"feelings": "feewings",
}

var furryEmotes = []string{"~", "~uwu", "~owo", "~:3", "~X3", "~>:3", "~^w^"}

var (
	nBeforeVowel  = regexp.MustCompile(`([Nn])([aeiouAEIOU])`)
	lBeforeVowel  = regexp.MustCompile(`([Ll])([aeiouAEIOU])`)
	thBeforeVowel = regexp.MustCompile(`([Tt])h([aeiouAEIOU])`)
)

type furryRenderer struct {
	rng *rand.Rand
}

func (*furryRenderer) Name() string { return StyleFurry }

func (*furryRenderer) usesText() {}

// RenderWord substitutes common words, otherwise applies w-speak to the
// spelling. About one word in eight gets an emote.
func (f *furryRenderer) RenderWord(w Word) string {
	if w.Text == "" {
		return ""
	}

	out, ok := furrySubstitutions[strings.ToLower(w.Text)]
	if ok {
		out = matchCase(w.Text, out)
	} else {
		out = wSpeak(w.Text)
	}

	if f.rng.Float64() < 0.12 {
		out += furryEmotes[f.rng.IntN(len(furryEmotes))]
	}
	return out
}

func (*furryRenderer) Suffix(int) string { return "" }

func wSpeak(s string) string {
	s = nBeforeVowel.ReplaceAllStringFunc(s, func(m string) string {
		if m[0] == 'N' {
			return "Ny" + m[1:]
		}
		return "ny" + m[1:]
	})
	s = strings.NewReplacer("r", "w", "R", "W").Replace(s)
	s = lBeforeVowel.ReplaceAllStringFunc(s, func(m string) string {
		if m[0] == 'L' {
			return "W" + m[1:]
		}
		return "w" + m[1:]
	})
	s = thBeforeVowel.ReplaceAllStringFunc(s, func(m string) string {
		if m[0] == 'T' {
			return "F" + m[2:]
		}
		return "f" + m[2:]
	})
	return s
}

// matchCase gives replacement the casing pattern of original: all caps,
// title case or lower case.
func matchCase(original, replacement string) string {
	first, _ := utf8.DecodeRuneInString(original)
	switch {
	case strings.IndexFunc(original, func(r rune) bool { return !unicode.IsUpper(r) }) < 0:
		return strings.ToUpper(replacement)
	case unicode.IsUpper(first):
		r, size := utf8.DecodeRuneInString(replacement)
		return string(unicode.ToUpper(r)) + replacement[size:]
	default:
		return strings.ToLower(replacement)
	}
}
