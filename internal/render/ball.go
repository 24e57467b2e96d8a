package render

import (
	"strings"

	"github.com/example/go-gagspeech/internal/phoneme"
)

var ballSounds = map[phoneme.Phoneme]string{
	phoneme.M:  "m",
	phoneme.N:  "n",
	phoneme.NG: "ng",

	phoneme.IY: "nn",
	phoneme.IH: "nh",
	phoneme.EY: "nnh",
	phoneme.EH: "eh",
	phoneme.AE: "aa",
	phoneme.AA: "aah",
	phoneme.AO: "aw",
	phoneme.OW: "oh",
	phoneme.UH: "uh",
	phoneme.UW: "oo",
	phoneme.AH: "uh",
	phoneme.ER: "rr",
	phoneme.AY: "ah",
	phoneme.AW: "aw",
	phoneme.OY: "oy",

	// Voiced stops cannot form and turn nasal; voiceless ones pop.
	phoneme.B: "mm",
	phoneme.D: "nn",
	phoneme.G: "ngh",
	phoneme.P: "mph",
	phoneme.T: "th",
	phoneme.K: "kh",

	phoneme.V:  "mm",
	phoneme.Z:  "nn",
	phoneme.ZH: "zh",
	phoneme.DH: "dh",
	phoneme.F:  "ff",
	phoneme.S:  "th",
	phoneme.SH: "sh",
	phoneme.TH: "th",
	phoneme.HH: "hh",

	phoneme.CH: "tsh",
	phoneme.JH: "zh",

	phoneme.L: "ll",
	phoneme.R: "rr",
	phoneme.W: "ww",
	phoneme.Y: "yy",
}

type ballRenderer struct{}

func (ballRenderer) Name() string { return StyleBall }

func (ballRenderer) RenderWord(w Word) string {
	var b strings.Builder
	for _, p := range w.Phonemes {
		b.WriteString(ballSounds[p])
	}
	return capRuns(b.String(), 3)
}

func (ballRenderer) Suffix(int) string { return "" }

// capRuns shortens every run of a repeated rune to at most limit runes.
func capRuns(s string, limit int) string {
	var b strings.Builder
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run <= limit {
			b.WriteRune(r)
		}
	}
	return b.String()
}
