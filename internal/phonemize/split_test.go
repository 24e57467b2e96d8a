package phonemize

import (
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/example/go-gagspeech/internal/phoneme"
)

func newEmbeddedDictionary(t *testing.T) *Dictionary {
	t.Helper()
	d, err := LoadDictionary("")
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	return d
}

func TestSplitter_Compounds(t *testing.T) {
	s := NewSplitter(newEmbeddedDictionary(t))

	tests := []struct {
		word string
		want []phoneme.Phoneme
	}{
		{"catdog", []phoneme.Phoneme{phoneme.K, phoneme.AE, phoneme.T, phoneme.D, phoneme.AO, phoneme.G}},
		{"HouseBoat", []phoneme.Phoneme{phoneme.HH, phoneme.AW, phoneme.S, phoneme.B, phoneme.OW, phoneme.T}},
		{"moonhousecat", []phoneme.Phoneme{
			phoneme.M, phoneme.UW, phoneme.N,
			phoneme.HH, phoneme.AW, phoneme.S,
			phoneme.K, phoneme.AE, phoneme.T,
		}},
		// Direct dictionary hit wins over a split.
		{"sunflower", []phoneme.Phoneme{phoneme.S, phoneme.AH, phoneme.N, phoneme.F, phoneme.L, phoneme.AW, phoneme.ER}},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if !s.CanPhonemize(tt.word) {
				t.Fatalf("CanPhonemize(%q) = false", tt.word)
			}
			if got := s.Phonemize(tt.word); !slices.Equal(got, tt.want) {
				t.Errorf("Phonemize(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestSplitter_FewestSegments(t *testing.T) {
	d, err := NewDictionary(strings.NewReader(`A AH0
B B IY1
AB AE1 B
ABC EY1 B IY1 S IY1
C S IY1
D D IY1
`))
	if err != nil {
		t.Fatalf("NewDictionary: %v", err)
	}
	s := NewSplitter(d)

	// ABC+D (2) beats AB+C+D and A+B+C+D.
	r := s.findBestSplit("ABCD")
	if r.segments != 2 {
		t.Fatalf("segments = %d, want 2", r.segments)
	}
	want := []phoneme.Phoneme{phoneme.EY, phoneme.B, phoneme.IY, phoneme.S, phoneme.IY, phoneme.D, phoneme.IY}
	if !slices.Equal(r.phonemes, want) {
		t.Errorf("phonemes = %v, want %v", r.phonemes, want)
	}
}

func TestSplitter_Unresolvable(t *testing.T) {
	s := NewSplitter(newEmbeddedDictionary(t))

	for _, word := range []string{"", "   ", "cat7", "!!", strings.Repeat("a", maxSplitLength+1)} {
		if s.CanPhonemize(word) {
			t.Errorf("CanPhonemize(%q) = true", word)
		}
		if got := s.Phonemize(word); len(got) != 0 {
			t.Errorf("Phonemize(%q) = %v, want empty", word, got)
		}
	}
}

func TestSplitter_LengthLimitCountsRunes(t *testing.T) {
	d, err := NewDictionary(strings.NewReader("É EY1\n"))
	if err != nil {
		t.Fatalf("NewDictionary: %v", err)
	}
	s := NewSplitter(d)

	// 50 two-byte runes are within the limit even though they span 100 bytes.
	if !s.CanPhonemize(strings.Repeat("é", maxSplitLength)) {
		t.Error("expected 50-rune word to split")
	}
	if s.CanPhonemize(strings.Repeat("é", maxSplitLength+1)) {
		t.Error("expected 51-rune word to fail")
	}
}

func TestSplitter_Hyphenated(t *testing.T) {
	s := NewSplitter(newEmbeddedDictionary(t))

	want := []phoneme.Phoneme{phoneme.W, phoneme.EH, phoneme.L, phoneme.N, phoneme.OW, phoneme.N}
	if got := s.Phonemize("well-known"); !slices.Equal(got, want) {
		t.Errorf("Phonemize(well-known) = %v, want %v", got, want)
	}

	if !s.CanPhonemize("cat--dog-") {
		t.Error("empty parts should be ignored")
	}
	if s.CanPhonemize("cat-42") {
		t.Error("every part must be resolvable")
	}
	if s.CanPhonemize("---") {
		t.Error("a word of only hyphens has no parts")
	}
	if got := s.Phonemize("---"); len(got) != 0 {
		t.Errorf("Phonemize(---) = %v, want empty", got)
	}
}

func TestSplitter_CacheDoesNotLeakMutations(t *testing.T) {
	s := NewSplitter(newEmbeddedDictionary(t))

	first := s.Phonemize("catdog")
	first[0] = phoneme.Z

	if got := s.Phonemize("catdog"); got[0] != phoneme.K {
		t.Errorf("cached result was mutated: %v", got)
	}
}

func TestSplitter_Concurrent(t *testing.T) {
	s := NewSplitter(newEmbeddedDictionary(t))
	words := []string{"catdog", "houseboat", "rainbowcat", "dogcat", "sunmoon"}

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				w := words[(i+j)%len(words)]
				if len(s.Phonemize(w)) == 0 {
					t.Errorf("Phonemize(%q) empty", w)
					return
				}
			}
		}()
	}
	wg.Wait()
}
