// Package phoneme defines the ARPAbet phoneme inventory used by the CMU
// Pronouncing Dictionary, together with the classification queries the
// renderers rely on.
package phoneme

import "strings"

// Phoneme is a single ARPAbet symbol without stress marker.
type Phoneme string

const (
	// Vowels: monophthongs
	AA Phoneme = "AA" // odd, father
	AE Phoneme = "AE" // at, bat
	AH Phoneme = "AH" // hut, but
	AO Phoneme = "AO" // ought, caught
	EH Phoneme = "EH" // ed, bet
	ER Phoneme = "ER" // hurt, bird
	IH Phoneme = "IH" // it, bit
	IY Phoneme = "IY" // eat, bee
	UH Phoneme = "UH" // hood, book
	UW Phoneme = "UW" // two, boot

	// Vowels: diphthongs
	AW Phoneme = "AW" // cow, how
	AY Phoneme = "AY" // hide, my
	EY Phoneme = "EY" // ate, say
	OW Phoneme = "OW" // oat, show
	OY Phoneme = "OY" // toy, boy

	// Stops
	B Phoneme = "B"
	D Phoneme = "D"
	G Phoneme = "G"
	K Phoneme = "K"
	P Phoneme = "P"
	T Phoneme = "T"

	// Affricates
	CH Phoneme = "CH" // cheese
	JH Phoneme = "JH" // jee

	// Fricatives
	DH Phoneme = "DH" // thee
	F  Phoneme = "F"
	HH Phoneme = "HH" // he
	S  Phoneme = "S"
	SH Phoneme = "SH" // she
	TH Phoneme = "TH" // thief
	V  Phoneme = "V"
	Z  Phoneme = "Z"
	ZH Phoneme = "ZH" // seizure

	// Nasals
	M  Phoneme = "M"
	N  Phoneme = "N"
	NG Phoneme = "NG" // ping

	// Liquids
	L Phoneme = "L"
	R Phoneme = "R"

	// Semivowels
	W Phoneme = "W"
	Y Phoneme = "Y"
)

var all = []Phoneme{
	AA, AE, AH, AO, EH, ER, IH, IY, UH, UW,
	AW, AY, EY, OW, OY,
	B, D, G, K, P, T,
	CH, JH,
	DH, F, HH, S, SH, TH, V, Z, ZH,
	M, N, NG,
	L, R,
	W, Y,
}

var (
	known      = makeSet(all...)
	vowels     = makeSet(AA, AE, AH, AO, EH, ER, IH, IY, UH, UW, AW, AY, EY, OW, OY)
	nasals     = makeSet(M, N, NG)
	stops      = makeSet(B, D, G, K, P, T)
	fricatives = makeSet(DH, F, HH, S, SH, TH, V, Z, ZH)
)

var ipa = map[Phoneme]string{
	AA: "ɑ", AE: "æ", AH: "ə", AO: "ɔ", EH: "ɛ", ER: "ɝ", IH: "ɪ", IY: "i", UH: "ʊ", UW: "u",
	AW: "aʊ", AY: "aɪ", EY: "eɪ", OW: "oʊ", OY: "ɔɪ",
	B: "b", D: "d", G: "ɡ", K: "k", P: "p", T: "t",
	CH: "tʃ", JH: "dʒ",
	DH: "ð", F: "f", HH: "h", S: "s", SH: "ʃ", TH: "θ", V: "v", Z: "z", ZH: "ʒ",
	M: "m", N: "n", NG: "ŋ",
	L: "l", R: "ɹ",
	W: "w", Y: "j",
}

func makeSet(ps ...Phoneme) map[Phoneme]struct{} {
	s := make(map[Phoneme]struct{}, len(ps))
	for _, p := range ps {
		s[p] = struct{}{}
	}
	return s
}

// All returns the complete phoneme inventory in canonical order.
func All() []Phoneme {
	return append([]Phoneme(nil), all...)
}

// Parse converts a dictionary token such as "OW1" or "hh" into a Phoneme.
// A single trailing stress digit (0, 1 or 2) is stripped first.
func Parse(token string) (Phoneme, bool) {
	s := strings.ToUpper(strings.TrimSpace(token))
	if n := len(s); n > 1 {
		switch s[n-1] {
		case '0', '1', '2':
			s = s[:n-1]
		}
	}
	p := Phoneme(s)
	if _, ok := known[p]; !ok {
		return "", false
	}
	return p, true
}

// Valid reports whether p belongs to the inventory.
func (p Phoneme) Valid() bool {
	_, ok := known[p]
	return ok
}

func (p Phoneme) IsVowel() bool {
	_, ok := vowels[p]
	return ok
}

func (p Phoneme) IsNasal() bool {
	_, ok := nasals[p]
	return ok
}

func (p Phoneme) IsStop() bool {
	_, ok := stops[p]
	return ok
}

func (p Phoneme) IsFricative() bool {
	_, ok := fricatives[p]
	return ok
}

// IsConsonant reports whether p is a valid non-vowel phoneme.
func (p Phoneme) IsConsonant() bool {
	return p.Valid() && !p.IsVowel()
}

// IPA returns the International Phonetic Alphabet rendering of p, or the
// empty string for symbols outside the inventory.
func (p Phoneme) IPA() string {
	return ipa[p]
}

func (p Phoneme) String() string {
	return string(p)
}

// Join renders a phoneme sequence as space-separated ARPAbet symbols.
func Join(ps []Phoneme) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = string(p)
	}
	return strings.Join(parts, " ")
}

// JoinIPA renders a phoneme sequence as slash-delimited IPA, e.g. /h/ /ə/.
func JoinIPA(ps []Phoneme) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = "/" + p.IPA() + "/"
	}
	return strings.Join(parts, " ")
}
