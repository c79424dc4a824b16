package sound

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// Codepoints returns the code points of a grapheme, e.g. "U+0074 U+02B0".
func Codepoints(grapheme string) string {
	cps := make([]string, 0, len(grapheme))
	for _, r := range grapheme {
		cps = append(cps, fmt.Sprintf("U+%04X", r))
	}
	return strings.Join(cps, " ")
}

// UnicodeNames returns the Unicode character names of a grapheme, separated
// by " / ". Characters without a name are given as "-".
func UnicodeNames(grapheme string) string {
	names := make([]string, 0, len(grapheme))
	for _, r := range grapheme {
		n := runenames.Name(r)
		if n == "" {
			n = "-"
		}
		names = append(names, n)
	}
	return strings.Join(names, " / ")
}
