package text

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// markupPattern matches mention and custom-emoji markup at the start of the
// remaining input: <@123>, <@!123>, <@&123>, <#123>, <:name:123>,
// <a:name:123>.
var markupPattern = regexp.MustCompile(`^(?:<@[!&]?\d+>|<#\d+>|<a?:\w+:\d+>)`)

const variationSelector16 = '\uFE0F'

// Tokenize splits s into Word and Preserved tokens. At each position the
// first matching rule wins:
//
//  1. protocol markup, preserved whole
//  2. a run of letter-like symbols, decoded to a Word of ASCII capitals
//  3. a pictograph plus an optional U+FE0F, preserved
//  4. a maximal run of word characters, a Word
//  5. a single code point (or a single invalid byte), preserved
//
// Tokenize never fails. Concatenating the token text reproduces s, except
// where letter-like symbols were decoded.
func Tokenize(s string) []Token {
	var tokens []Token
	for pos := 0; pos < len(s); {
		tok, n := next(s[pos:])
		tokens = append(tokens, tok)
		pos += n
	}
	return tokens
}

func next(s string) (Token, int) {
	if m := markupPattern.FindString(s); m != "" {
		return NewPreserved(m), len(m)
	}

	if letters, n := letterRun(s); n > 0 {
		return NewWord(letters), n
	}

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return NewPreserved(s[:size]), size
	}

	if isPictograph(r) {
		n := size
		if vs, vsSize := utf8.DecodeRuneInString(s[n:]); vs == variationSelector16 {
			n += vsSize
		}
		return NewPreserved(s[:n]), n
	}

	if isWordRune(r) {
		n := size
		for n < len(s) {
			r, size := utf8.DecodeRuneInString(s[n:])
			if !isWordRune(r) {
				break
			}
			n += size
		}
		return NewWord(s[:n]), n
	}

	return NewPreserved(s[:size]), size
}

// letterRun decodes consecutive letter-like symbols at the start of s and
// returns the decoded capitals and the number of bytes consumed.
func letterRun(s string) (string, int) {
	var b strings.Builder
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		letter, ok := letterLike(r)
		if !ok {
			break
		}
		b.WriteByte(letter)
		n += size
	}
	return b.String(), n
}

// letterLike maps regional indicators, circled letters and negative squared
// letters to the capital they depict.
func letterLike(r rune) (byte, bool) {
	switch {
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return byte('A' + r - 0x1F1E6), true
	case r >= 0x24B6 && r <= 0x24CF: // circled capitals
		return byte('A' + r - 0x24B6), true
	case r >= 0x24D0 && r <= 0x24E9: // circled small letters
		return byte('A' + r - 0x24D0), true
	case r >= 0x1F170 && r <= 0x1F189: // negative squared capitals
		return byte('A' + r - 0x1F170), true
	}
	return 0, false
}

func isPictograph(r rune) bool {
	switch {
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF, r >= 0x1F170 && r <= 0x1F19A:
		return false
	case r >= 0x1F300 && r <= 0x1F5FF, // symbols and pictographs
		r >= 0x1F600 && r <= 0x1F64F, // emoticons
		r >= 0x1F680 && r <= 0x1F6FF, // transport and map
		r >= 0x1F900 && r <= 0x1F9FF, // supplemental symbols
		r >= 0x1FA00 && r <= 0x1FAFF: // extended-A
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Nd, r) ||
		unicode.Is(unicode.Pc, r)
}
