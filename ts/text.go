package ts

import (
	"strings"

	"github.com/npillmayer/clts/sound"
	"github.com/npillmayer/uax/segment"
)

// Placeholder for sounds a translation could not resolve.
const Untranslatable = "?"

// Split breaks a text into whitespace-delimited tokens.
func Split(text string) []string {
	seg := segment.NewSegmenter()
	seg.Init(strings.NewReader(text))
	var tokens []string
	for seg.Next() {
		tokens = append(tokens, strings.Fields(seg.Text())...)
	}
	return tokens
}

// Symbols parses every token of a text.
func (ts *System) Symbols(text string) []sound.Symbol {
	tokens := Split(text)
	syms := make([]sound.Symbol, len(tokens))
	for i, t := range tokens {
		syms[i] = ts.Parse(t)
	}
	return syms
}

// Text parses every token of a text and returns the canonical rendering.
// Unknown sounds are rendered as sound.Unknown.
func (ts *System) Text(text string) string {
	syms := ts.Symbols(text)
	out := make([]string, len(syms))
	for i, sym := range syms {
		out[i] = ts.Render(sym)
	}
	return strings.Join(out, " ")
}

// Normalize applies the normalization of the system to every token of a
// text, without parsing.
func (ts *System) Normalize(text string) string {
	tokens := Split(text)
	for i, t := range tokens {
		tokens[i] = ts.normalize(t)
	}
	return strings.Join(tokens, " ")
}

// Translate parses a text in this system and renders every sound in the
// target system, using the feature name as bridge. Tokens which cannot be
// parsed or which have no counterpart in target are given as
// Untranslatable.
func (ts *System) Translate(text string, target *System) string {
	syms := ts.Symbols(text)
	out := make([]string, len(syms))
	for i, sym := range syms {
		out[i] = target.counterpart(sym)
	}
	return strings.Join(out, " ")
}

func (ts *System) counterpart(sym sound.Symbol) string {
	switch s := sym.(type) {
	case *sound.UnknownSound:
		return Untranslatable
	case *sound.Marker:
		if m, ok := ts.markers[markerKey(s)]; ok {
			return m.Grapheme
		}
		return Untranslatable
	}
	t, err := ts.resolveName(sym.Name(), false)
	if err != nil || sound.IsUnknown(t) {
		tracer().Debugf("%s has no counterpart for %q", ts.id, sym.Name())
		return Untranslatable
	}
	g := ts.Render(t)
	if hasPlaceholder(g) {
		return Untranslatable
	}
	return g
}

// IsValidSound checks that the feature name and the rendering of a sound
// are consistent: resolving the name and parsing the rendering have to
// result in the same sound. Markers and unknown sounds are never valid.
func (ts *System) IsValidSound(sym sound.Symbol) bool {
	switch sym.(type) {
	case nil, *sound.UnknownSound, *sound.Marker:
		return false
	}
	rendered := ts.Render(sym)
	if hasPlaceholder(rendered) {
		return false
	}
	byName := ts.Get(sym.Name())
	if sound.IsUnknown(byName) {
		return false
	}
	parsed := ts.Parse(rendered)
	return parsed.Name() == sym.Name() && ts.Render(byName) == rendered
}
