package config

import (
	"fmt"
	"strings"

	"github.com/example/go-gagspeech/internal/render"
)

const DefaultStyle = render.StyleBall

var styleAliases = map[string]string{
	"ballgag":     render.StyleBall,
	"ball-gag":    render.StyleBall,
	"gag":         render.StyleBall,
	"moo":         render.StyleCow,
	"meow":        render.StyleCat,
	"barkingdog":  render.StyleBarkingDog,
	"barking_dog": render.StyleBarkingDog,
	"bark":        render.StyleBarkingDog,
	"cat-girl":    render.StyleCatgirl,
	"nya":         render.StyleCatgirl,
	"owo":         render.StyleUwu,
}

// NormalizeStyle maps a user-supplied style name, case-insensitively and
// with aliases, to a canonical render style. Empty input selects the
// default style.
func NormalizeStyle(raw string) (string, error) {
	style := strings.ToLower(strings.TrimSpace(raw))
	if style == "" {
		return DefaultStyle, nil
	}
	if canonical, ok := styleAliases[style]; ok {
		return canonical, nil
	}
	for _, s := range render.Styles() {
		if s == style {
			return s, nil
		}
	}
	return "", fmt.Errorf(
		"invalid style %q (expected %s): %w",
		raw,
		strings.Join(render.Styles(), "|"),
		render.ErrUnknownStyle,
	)
}
