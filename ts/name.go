package ts

import (
	"strings"

	"github.com/npillmayer/clts/core"
	"github.com/npillmayer/clts/sound"
)

// FromName returns the sound for a feature name, e.g.
//
//	"aspirated long voiceless alveolar plosive consonant"
//
// Feature values may be given in any order, the last word has to be a
// category. Complex sounds are named
//
//	"from <vowel features> to <vowel features> diphthong"
//
// A feature value unknown to the system results in an error wrapping
// ErrUnknownFeature (code core.EUNKNOWNFEATURE). Other malformed names result in
// an error with code core.EINVALID.
func (ts *System) FromName(name string) (sound.Symbol, error) {
	return ts.resolveName(name, true)
}

// resolveName resolves a feature name. Generated sounds are added to the
// registry only if cache is set.
func (ts *System) resolveName(name string, cache bool) (sound.Symbol, error) {
	tokens := strings.Fields(name)
	name = strings.Join(tokens, " ")
	if sym, ok := ts.named(name); ok {
		return sound.Clone(sym), nil
	}
	if len(tokens) < 2 {
		return nil, core.Error(core.EINVALID, "%s: %q is not a feature name", ts.id, name)
	}
	c, ok := sound.ParseCategory(tokens[len(tokens)-1])
	if !ok {
		return nil, core.Error(core.EINVALID, "%s: %q does not end with a sound category", ts.id, name)
	}
	if c.IsComplex() {
		return ts.fromComplexName(name, tokens, c, cache)
	}
	schema := sound.SchemaFor(c)
	if schema == nil {
		return nil, core.Error(core.EINVALID, "%s: %s symbols have no feature names", ts.id, c)
	}
	attrs := sound.Sound{
		Source:    name,
		Generated: true,
		Features:  sound.NewFeatureSet(c),
	}
	for _, value := range tokens[:len(tokens)-1] {
		feature, ok := ts.values[value]
		if !ok {
			return nil, core.WrapError(ErrUnknownFeature, core.EUNKNOWNFEATURE, "%s: %q in %q",
				ts.id, value, name)
		}
		if feature == stressFeature {
			attrs.Stress = value
			continue
		}
		if !schema.Has(feature) {
			return nil, core.Error(core.EINVALID, "%s: %s (%s) is not a feature of %s",
				ts.id, value, feature, c)
		}
		if old := attrs.Features.Get(feature); old != "" && old != value {
			return nil, core.Error(core.EINVALID, "%s: %q has conflicting values %s and %s for %s",
				ts.id, name, old, value, feature)
		}
		if err := attrs.Features.Set(feature, value); err != nil {
			return nil, core.WrapError(err, core.EINVALID, "%s", ts.id)
		}
	}
	if attrs.Stress == "" {
		if sym, ok := ts.named(attrs.Features.Name()); ok {
			return sound.Clone(sym), nil
		}
	}
	sym, err := sound.NewSound(attrs)
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "%s", ts.id)
	}
	a, _ := sound.Attributes(sym)
	a.Grapheme = ts.Render(sym)
	if hasPlaceholder(a.Grapheme) {
		tracer().Debugf("%s: %q renders as %q, not cached", ts.id, name, a.Grapheme)
		return sym, nil
	}
	if known, ok := ts.Lookup(a.Grapheme); ok {
		return known, nil
	}
	if !cache {
		return sym, nil
	}
	return sound.Clone(ts.insertGenerated(sym)), nil
}

func (ts *System) fromComplexName(name string, tokens []string, c sound.Category, cache bool) (sound.Symbol, error) {
	to := -1
	for i, t := range tokens {
		if t == "to" {
			to = i
			break
		}
	}
	if tokens[0] != "from" || to < 2 || to >= len(tokens)-2 {
		return nil, core.Error(core.EINVALID, "%s: %q is not of the form 'from … to … %s'",
			ts.id, name, c)
	}
	component := sound.VowelCategory.String()
	if c == sound.ClusterCategory {
		component = sound.ConsonantCategory.String()
	}
	from := strings.Join(tokens[1:to], " ") + " " + component
	s1, err := ts.resolveName(from, cache)
	if err != nil {
		return nil, err
	}
	s2, err := ts.resolveName(strings.Join(tokens[to+1:len(tokens)-1], " ")+" "+component, cache)
	if err != nil {
		return nil, err
	}
	sym := combine(name, name, s1, s2)
	if sym.Category() != c {
		return nil, core.Error(core.EINVALID, "%s: %q is not a valid %s", ts.id, name, c)
	}
	return sym, nil
}

// Get resolves a feature name if the last word of s is a category name, and
// parses s as a grapheme otherwise. Feature names which cannot be resolved
// result in a *sound.UnknownSound.
func (ts *System) Get(s string) sound.Symbol {
	fields := strings.Fields(s)
	if len(fields) > 1 {
		if _, ok := sound.ParseCategory(fields[len(fields)-1]); ok {
			sym, err := ts.FromName(s)
			if err != nil {
				tracer().Debugf("%s: %v", ts.id, err)
				return sound.NewUnknown(s, s)
			}
			return sym
		}
	}
	return ts.Parse(s)
}
