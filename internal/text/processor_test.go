package text

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/example/go-gagspeech/internal/phoneme"
	"github.com/example/go-gagspeech/internal/phonemize"
)

type mapPhonemizer map[string][]phoneme.Phoneme

func (m mapPhonemizer) Phonemize(word string) []phoneme.Phoneme {
	return m[strings.ToLower(word)]
}

func TestProcessor_AttachesPhonemes(t *testing.T) {
	p := NewProcessor(mapPhonemizer{
		"cat": {phoneme.K, phoneme.AE, phoneme.T},
	})

	got := p.Process("cat, zzz")
	if len(got) != 4 {
		t.Fatalf("got %d tokens, want 4", len(got))
	}

	if !slices.Equal(got[0].Phonemes, []phoneme.Phoneme{phoneme.K, phoneme.AE, phoneme.T}) {
		t.Errorf("cat phonemes = %v", got[0].Phonemes)
	}
	if got[1].Phonemes != nil || got[2].Phonemes != nil {
		t.Error("preserved tokens must not carry phonemes")
	}
	if got[3].Phonemes == nil || len(got[3].Phonemes) != 0 {
		t.Errorf("unresolved word phonemes = %#v, want empty non-nil", got[3].Phonemes)
	}
}

func TestProcessor_WithDefaultPhonemizer(t *testing.T) {
	dict, err := phonemize.LoadDictionary("")
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	p := NewProcessor(phonemize.NewDefault(dict))

	got := p.Process("Hello, world! <@123>")
	if len(got) != 7 {
		t.Fatalf("got %d tokens, want 7", len(got))
	}
	if ipa := phoneme.JoinIPA(got[0].Phonemes); ipa != "/h/ /ə/ /l/ /oʊ/" {
		t.Errorf("Hello = %s", ipa)
	}
	if ipa := phoneme.JoinIPA(got[3].Phonemes); ipa != "/w/ /ɝ/ /l/ /d/" {
		t.Errorf("world = %s", ipa)
	}
	if got[6].Kind != Preserved || got[6].Text != "<@123>" {
		t.Errorf("last token = %+v", got[6])
	}
	if WordCount(got) != 2 {
		t.Errorf("WordCount = %d, want 2", WordCount(got))
	}
}

func TestProcessor_LetterLikeSymbolsArePhonemized(t *testing.T) {
	dict, err := phonemize.LoadDictionary("")
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	got := NewProcessor(phonemize.NewDefault(dict)).Process("\u24B8\u24D0\u24E3")
	if len(got) != 1 || got[0].Text != "CAT" {
		t.Fatalf("tokens = %+v", got)
	}
	if !slices.Equal(got[0].Phonemes, []phoneme.Phoneme{phoneme.K, phoneme.AE, phoneme.T}) {
		t.Errorf("phonemes = %v", got[0].Phonemes)
	}
}

func TestToken_JSON(t *testing.T) {
	tokens := []Token{
		{Kind: Word, Text: "hi", Phonemes: []phoneme.Phoneme{phoneme.HH, phoneme.AY}},
		{Kind: Word, Text: "zz", Phonemes: []phoneme.Phoneme{}},
		{Kind: Preserved, Text: "!"},
	}

	data, err := json.Marshal(tokens)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `[{"kind":"word","text":"hi","phonemes":["HH","AY"]},` +
		`{"kind":"word","text":"zz","phonemes":[]},` +
		`{"kind":"preserved","text":"!","phonemes":null}]`
	if string(data) != want {
		t.Errorf("json = %s\nwant  %s", data, want)
	}

	var back []Token
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back[2].Kind != Preserved {
		t.Errorf("kind round trip = %v", back[2].Kind)
	}
}

func TestKind_UnmarshalRejectsUnknown(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("emoji")); err == nil {
		t.Error("expected error for unknown kind")
	}
}
