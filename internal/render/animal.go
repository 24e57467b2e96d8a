package render

import (
	"strings"

	"github.com/example/go-gagspeech/internal/phoneme"
)

// Long vowels and diphthongs stretch animal sounds; every other vowel is
// short.
var longVowels = map[phoneme.Phoneme]bool{
	phoneme.IY: true,
	phoneme.UW: true,
	phoneme.OW: true,
	phoneme.EY: true,
	phoneme.AY: true,
	phoneme.AW: true,
	phoneme.OY: true,
	phoneme.AO: true,
}

// spellings are readable approximations used by styles that keep most of
// the word intact.
var spellings = map[phoneme.Phoneme]string{
	phoneme.AA: "ah", phoneme.AE: "a", phoneme.AH: "uh", phoneme.AO: "aw",
	phoneme.AW: "ow", phoneme.AY: "y", phoneme.EH: "eh", phoneme.ER: "er",
	phoneme.EY: "ay", phoneme.IH: "ih", phoneme.IY: "ee", phoneme.OW: "oh",
	phoneme.OY: "oy", phoneme.UH: "oo", phoneme.UW: "oo",

	phoneme.B: "b", phoneme.CH: "ch", phoneme.D: "d", phoneme.DH: "d",
	phoneme.F: "f", phoneme.G: "g", phoneme.HH: "h", phoneme.JH: "j",
	phoneme.K: "k", phoneme.L: "l", phoneme.M: "m", phoneme.N: "n",
	phoneme.NG: "ng", phoneme.P: "p", phoneme.R: "r", phoneme.S: "s",
	phoneme.SH: "sh", phoneme.T: "t", phoneme.TH: "th", phoneme.V: "v",
	phoneme.W: "w", phoneme.Y: "y", phoneme.Z: "z", phoneme.ZH: "zh",
}

// syllables maps each vowel to long or short; consonants are dropped.
func syllables(ps []phoneme.Phoneme, long, short string) []string {
	var out []string
	for _, p := range ps {
		switch {
		case longVowels[p]:
			out = append(out, long)
		case p.IsVowel():
			out = append(out, short)
		}
	}
	return out
}

type cowRenderer struct{}

func (cowRenderer) Name() string { return StyleCow }

func (cowRenderer) RenderWord(w Word) string {
	if len(w.Phonemes) == 0 {
		return ""
	}
	s := syllables(w.Phonemes, "mooo", "moo")
	if len(s) == 0 {
		return "moo"
	}
	s[len(s)-1] += "o"
	return strings.Join(s, "")
}

func (cowRenderer) Suffix(int) string { return "" }

type catRenderer struct{}

func (catRenderer) Name() string { return StyleCat }

func (catRenderer) RenderWord(w Word) string {
	if len(w.Phonemes) == 0 {
		return ""
	}
	s := syllables(w.Phonemes, "meoww", "meow")
	if len(s) == 0 {
		return "meow"
	}
	return strings.Join(s, "")
}

func (catRenderer) Suffix(int) string { return "" }

type dogRenderer struct{}

func (dogRenderer) Name() string { return StyleDog }

// RenderWord drops the leading consonant cluster and starts the word with
// r: "hello" becomes "ruhloh".
func (dogRenderer) RenderWord(w Word) string {
	if len(w.Phonemes) == 0 {
		return ""
	}

	var b strings.Builder
	leading := true
	for _, p := range w.Phonemes {
		if leading {
			if !p.IsVowel() {
				continue
			}
			b.WriteByte('r')
			leading = false
		}
		b.WriteString(spellings[p])
	}
	if b.Len() == 0 {
		return "r"
	}
	return b.String()
}

func (dogRenderer) Suffix(int) string { return "" }

var growly = map[phoneme.Phoneme]bool{
	phoneme.R: true,
	phoneme.G: true,
	phoneme.K: true,
}

type barkingDogRenderer struct{}

func (barkingDogRenderer) Name() string { return StyleBarkingDog }

func (barkingDogRenderer) RenderWord(w Word) string {
	if len(w.Phonemes) == 0 {
		return ""
	}

	shortSounds := [...]string{"ruff", "arf"}
	longSounds := [...]string{"woof", "bark"}

	var b strings.Builder
	var shortN, longN int
	growl := false
	for _, p := range w.Phonemes {
		switch {
		case longVowels[p]:
			b.WriteString(longSounds[longN%len(longSounds)])
			longN++
		case p.IsVowel():
			b.WriteString(shortSounds[shortN%len(shortSounds)])
			shortN++
		case growly[p]:
			growl = true
		}
	}

	if b.Len() == 0 {
		return "ruff"
	}
	if growl {
		b.WriteString("grr")
	}
	return b.String()
}

func (barkingDogRenderer) Suffix(int) string { return "" }
