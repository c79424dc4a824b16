package ts

import (
	"strings"

	"github.com/npillmayer/clts/sound"
)

// Feature values which are never part of a base grapheme. Sounds carrying
// them are rendered from a plain base plus diacritic.
var excludedFromBase = map[string]bool{
	"apical":   true,
	"laminal":  true,
	"ejective": true,
}

// Render returns the canonical grapheme of a symbol. Unknown sounds are
// rendered as sound.Unknown. If no base grapheme can be found for a feature
// set, the result contains sound.UnknownBase; a feature value without a
// diacritic results in sound.MissingMark.
func (ts *System) Render(sym sound.Symbol) string {
	switch s := sym.(type) {
	case nil, *sound.UnknownSound:
		return sound.Unknown
	case *sound.Marker:
		if s.Alias {
			if m, ok := ts.markers[markerKey(s)]; ok {
				return m.Grapheme
			}
		}
		return s.Grapheme
	case *sound.Diphthong:
		return ts.Render(s.From) + ts.Render(s.To)
	case *sound.Cluster:
		return ts.Render(s.From) + ts.Render(s.To)
	}
	a, ok := sound.Attributes(sym)
	if !ok || !a.Features.Valid() {
		return sound.Unknown
	}
	if !a.Generated && a.Stress == "" {
		if !a.Alias {
			return a.Grapheme
		}
		if base, ok := ts.bases[sym.Name()]; ok {
			return base.String()
		}
	}
	return ts.renderFeatures(a)
}

func (ts *System) renderFeatures(a *sound.Sound) string {
	c := a.Features.Category()
	elements := make([]string, 0, 8)
	for _, v := range a.Features.Values() {
		if !excludedFromBase[v] {
			elements = append(elements, v)
		}
	}
	base := ts.findBase(elements, c)
	if base == nil {
		// values written as diacritics need not be part of the base
		plain := make([]string, 0, len(elements))
		for _, v := range elements {
			if _, ok := ts.glyphs[c][v]; !ok {
				plain = append(plain, v)
			}
		}
		base = ts.findBase(plain, c)
	}
	if base == nil && a.Base != "" {
		base = ts.baseOf[a.Base]
	}
	var baseFeatures sound.FeatureSet
	grapheme := sound.UnknownBase
	if base != nil {
		baseAttrs, _ := sound.Attributes(base)
		baseFeatures = baseAttrs.Features
		grapheme = base.String()
	}
	glyphs := ts.glyphs[c]
	var b strings.Builder
	mark := func(value string) {
		if g, ok := glyphs[value]; ok {
			b.WriteString(g)
		} else {
			b.WriteString(sound.MissingMark)
		}
	}
	if a.Stress != "" {
		mark(a.Stress)
	}
	schema := a.Features.Schema()
	for _, f := range schema.Pre {
		if v := a.Features.Get(f); v != "" && baseFeatures.Get(f) != v {
			mark(v)
		}
	}
	b.WriteString(grapheme)
	for _, f := range schema.Post {
		if v := a.Features.Get(f); v != "" && baseFeatures.Get(f) != v {
			mark(v)
		}
	}
	return b.String()
}

// findBase looks for an inventory sound named by a tail of values.
func (ts *System) findBase(values []string, c sound.Category) sound.Symbol {
	for i := range values {
		if b, ok := ts.bases[strings.Join(values[i:], " ")+" "+c.String()]; ok {
			return b
		}
	}
	return nil
}

// hasPlaceholder is true if a rendered grapheme is not a real grapheme.
func hasPlaceholder(g string) bool {
	return strings.Contains(g, sound.UnknownBase) || strings.Contains(g, sound.MissingMark) ||
		strings.Contains(g, sound.Unknown)
}
