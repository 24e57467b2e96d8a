package phonemize

import (
	"slices"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/example/go-gagspeech/internal/phoneme"
)

type pattern struct {
	letters  string
	phonemes []phoneme.Phoneme
}

func ps(p ...phoneme.Phoneme) []phoneme.Phoneme { return p }

// patternGroups are tried in order at each position; the first match wins.
var patternGroups = [][]pattern{
	// four letters
	{
		{"tion", ps(phoneme.SH, phoneme.AH, phoneme.N)},
		{"sion", ps(phoneme.ZH, phoneme.AH, phoneme.N)},
		{"ough", ps(phoneme.OW)},
		{"eigh", ps(phoneme.EY)},
		{"ture", ps(phoneme.CH, phoneme.ER)},
	},
	// three letters
	{
		{"igh", ps(phoneme.AY)},
		{"ing", ps(phoneme.IH, phoneme.NG)},
		{"tch", ps(phoneme.CH)},
		{"dge", ps(phoneme.JH)},
		{"sch", ps(phoneme.S, phoneme.K)},
		{"air", ps(phoneme.EH, phoneme.R)},
		{"ear", ps(phoneme.IH, phoneme.R)},
		{"all", ps(phoneme.AO, phoneme.L)},
		{"ous", ps(phoneme.AH, phoneme.S)},
		{"eau", ps(phoneme.OW)},
	},
	// consonant digraphs
	{
		{"th", ps(phoneme.TH)},
		{"sh", ps(phoneme.SH)},
		{"ch", ps(phoneme.CH)},
		{"ph", ps(phoneme.F)},
		{"wh", ps(phoneme.W)},
		{"kn", ps(phoneme.N)},
		{"wr", ps(phoneme.R)},
		{"ck", ps(phoneme.K)},
		{"ng", ps(phoneme.NG)},
		{"qu", ps(phoneme.K, phoneme.W)},
		{"gn", ps(phoneme.N)},
		{"mb", ps(phoneme.M)},
		{"gh", ps(phoneme.G)},
	},
	// vowel digraphs
	{
		{"ee", ps(phoneme.IY)},
		{"ea", ps(phoneme.IY)},
		{"oo", ps(phoneme.UW)},
		{"ou", ps(phoneme.AW)},
		{"ow", ps(phoneme.OW)},
		{"ai", ps(phoneme.EY)},
		{"ay", ps(phoneme.EY)},
		{"oi", ps(phoneme.OY)},
		{"oy", ps(phoneme.OY)},
		{"au", ps(phoneme.AO)},
		{"aw", ps(phoneme.AO)},
		{"ie", ps(phoneme.IY)},
		{"ei", ps(phoneme.EY)},
		{"ue", ps(phoneme.UW)},
		{"ew", ps(phoneme.UW)},
		{"oa", ps(phoneme.OW)},
		{"ar", ps(phoneme.AA, phoneme.R)},
		{"er", ps(phoneme.ER)},
		{"ir", ps(phoneme.ER)},
		{"ur", ps(phoneme.ER)},
		{"or", ps(phoneme.AO, phoneme.R)},
	},
}

var letterPhonemes = map[rune][]phoneme.Phoneme{
	'a': ps(phoneme.AE),
	'b': ps(phoneme.B),
	'c': ps(phoneme.K),
	'd': ps(phoneme.D),
	'e': ps(phoneme.EH),
	'f': ps(phoneme.F),
	'g': ps(phoneme.G),
	'h': ps(phoneme.HH),
	'i': ps(phoneme.IH),
	'j': ps(phoneme.JH),
	'k': ps(phoneme.K),
	'l': ps(phoneme.L),
	'm': ps(phoneme.M),
	'n': ps(phoneme.N),
	'o': ps(phoneme.AA),
	'p': ps(phoneme.P),
	'q': ps(phoneme.K),
	'r': ps(phoneme.R),
	's': ps(phoneme.S),
	't': ps(phoneme.T),
	'u': ps(phoneme.AH),
	'v': ps(phoneme.V),
	'w': ps(phoneme.W),
	'x': ps(phoneme.K, phoneme.S),
	'y': ps(phoneme.Y),
	'z': ps(phoneme.Z),
}

// Heuristic derives a pronunciation from spelling alone. Every word that
// contains a letter resolves to at least one phoneme. It is safe for
// concurrent use.
type Heuristic struct {
	mu    sync.Mutex
	cache map[string][]phoneme.Phoneme
}

func NewHeuristic() *Heuristic {
	return &Heuristic{cache: make(map[string][]phoneme.Phoneme)}
}

func (h *Heuristic) CanPhonemize(word string) bool {
	return strings.IndexFunc(word, unicode.IsLetter) >= 0
}

func (h *Heuristic) Phonemize(word string) []phoneme.Phoneme {
	if !h.CanPhonemize(word) {
		return nil
	}

	h.mu.Lock()
	cached, ok := h.cache[word]
	h.mu.Unlock()
	if ok {
		return slices.Clone(cached)
	}

	out := spell([]rune(foldAccents(strings.ToLower(word))))

	h.mu.Lock()
	h.cache[word] = out
	h.mu.Unlock()
	return slices.Clone(out)
}

func spell(letters []rune) []phoneme.Phoneme {
	var out []phoneme.Phoneme
	for i := 0; i < len(letters); {
		if !unicode.IsLetter(letters[i]) {
			i++
			continue
		}
		if p, n := matchPattern(letters[i:]); n > 0 {
			out = append(out, p...)
			i += n
			continue
		}
		if p, ok := letterPhonemes[letters[i]]; ok {
			out = append(out, p...)
		} else {
			out = append(out, phoneme.AH)
		}
		i++
	}
	return out
}

func matchPattern(letters []rune) ([]phoneme.Phoneme, int) {
	for _, group := range patternGroups {
		for _, p := range group {
			if hasRunePrefix(letters, p.letters) {
				return p.phonemes, len(p.letters)
			}
		}
	}
	return nil, 0
}

func hasRunePrefix(letters []rune, prefix string) bool {
	i := 0
	for _, r := range prefix {
		if i >= len(letters) || letters[i] != r {
			return false
		}
		i++
	}
	return true
}

// foldAccents strips combining marks so that "é" is spelled as "e".
// A transformer is built per call because transform chains hold state.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
