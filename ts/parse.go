package ts

import (
	"strings"

	"github.com/npillmayer/clts/sound"
	"github.com/npillmayer/clts/sound/inventory"
	"golang.org/x/text/unicode/norm"
)

// stressFeature is set by diacritics which mark stress. It is not a feature
// slot but goes to a sound's Stress attribute.
const stressFeature = "stress"

// normalize applies NFD, removes placeholders and replaces characters by
// their normalized form.
func (ts *System) normalize(s string) string {
	s = strings.ReplaceAll(norm.NFD.String(s), sound.Empty, "")
	return ts.normalizer.Replace(s)
}

// Parse resolves a single grapheme. Unknown graphemes are decomposed into a
// base grapheme plus diacritics, or into a diphthong or cluster. Parse
// never fails; unresolvable input results in a *sound.UnknownSound.
//
// Input of the form "x/y" is an explicit override: it resolves to y (or to x
// if y is empty), marked as an alias.
func (ts *System) Parse(s string) sound.Symbol {
	src := norm.NFD.String(s)
	nstring := strings.ReplaceAll(src, sound.Empty, "")
	if left, right, found := strings.Cut(nstring, "/"); found {
		if right == "" {
			right = left
		}
		sym := ts.parse(ts.normalizer.Replace(right), src)
		return asAlias(sym)
	}
	return ts.parse(ts.normalizer.Replace(nstring), src)
}

func (ts *System) parse(nstring, src string) sound.Symbol {
	if nstring == "" {
		return sound.NewUnknown(nstring, src)
	}
	ts.RLock()
	known, ok := ts.sounds[nstring]
	m := ts.matcher
	ts.RUnlock()
	if ok {
		tracer().Debugf("%s: %q is registered", ts.id, nstring)
		return withSource(known, src, nstring != src)
	}
	matches := m.findAll(nstring)
	tracer().Debugf("%s: %q has %d matches", ts.id, nstring, len(matches))
	switch len(matches) {
	case 1:
		return ts.decompose(nstring, src, matches[0])
	case 2:
		cut := matches[0][1]
		s1 := ts.parse(nstring[:cut], nstring[:cut])
		s2 := ts.parse(nstring[cut:], nstring[cut:])
		return combine(nstring, src, s1, s2)
	}
	return sound.NewUnknown(nstring, src)
}

// decompose resolves the characters around a base grapheme as diacritics.
func (ts *System) decompose(nstring, src string, span []int) sound.Symbol {
	pre, post := nstring[:span[0]], nstring[span[1]:]
	ts.RLock()
	base := ts.sounds[nstring[span[0]:span[1]]]
	ts.RUnlock()
	sym := sound.Clone(base)
	a, ok := sound.Attributes(sym)
	if !ok {
		tracer().Debugf("%s: %q cannot carry diacritics", ts.id, base.String())
		return sound.NewUnknown(nstring, src)
	}
	if a.Base == "" {
		if b, ok := ts.bases[base.Name()]; ok {
			a.Base = b.String()
		}
	}
	table := ts.diacritics[sym.Category()]
	for _, r := range pre {
		if !applyDiacritic(a, table[string(r)+sound.Empty]) {
			return sound.NewUnknown(nstring, src)
		}
	}
	for _, r := range post {
		if !applyDiacritic(a, table[sound.Empty+string(r)]) {
			return sound.NewUnknown(nstring, src)
		}
	}
	a.Grapheme = nstring
	a.Note = ""
	a.Generated = true
	return withSource(ts.insertGenerated(sym), src, nstring != src)
}

func applyDiacritic(a *sound.Sound, d inventory.Diacritic) bool {
	if d.Feature == "" {
		return false
	}
	if d.Feature == stressFeature {
		a.Stress = d.Value
	} else if err := a.Features.Set(d.Feature, d.Value); err != nil {
		return false
	}
	if d.Alias {
		a.Alias = true
	}
	return true
}

// combine builds a diphthong from two vowels and a cluster from two plosive
// or implosive consonants. Everything else is an unknown sound.
func combine(nstring, src string, s1, s2 sound.Symbol) sound.Symbol {
	switch a := s1.(type) {
	case *sound.Vowel:
		if b, ok := s2.(*sound.Vowel); ok {
			return sound.NewDiphthong(src, a, b)
		}
	case *sound.Consonant:
		b, ok := s2.(*sound.Consonant)
		if ok && sound.ClusterManner(a.Manner()) && sound.ClusterManner(b.Manner()) {
			return sound.NewCluster(src, a, b)
		}
	}
	tracer().Debugf("%q: cannot combine %s and %s", nstring, s1.Category(), s2.Category())
	return sound.NewUnknown(nstring, src)
}

// withSource returns a copy of a registered symbol carrying the input it
// was parsed from.
func withSource(sym sound.Symbol, src string, normalized bool) sound.Symbol {
	sym = sound.Clone(sym)
	switch s := sym.(type) {
	case *sound.Marker:
		s.Source = src
	default:
		if a, ok := sound.Attributes(sym); ok {
			a.Source = src
			a.Normalized = normalized
		}
	}
	return sym
}

func asAlias(sym sound.Symbol) sound.Symbol {
	switch s := sym.(type) {
	case *sound.Marker:
		s.Alias = true
	default:
		if a, ok := sound.Attributes(sym); ok {
			a.Alias = true
		}
	}
	return sym
}
