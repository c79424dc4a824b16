package ts

import (
	"sort"
	"strings"
	"sync"

	"github.com/derekparker/trie"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/clts/core"
	"github.com/npillmayer/clts/sound"
	"github.com/npillmayer/clts/sound/inventory"
	"github.com/npillmayer/schuko/tracing"
)

// System is a transcription system.
//
// The registry of graphemes, the feature names and the matcher are guarded
// by one read/write lock. Everything else is immutable after construction.
type System struct {
	id string
	sync.RWMutex
	sounds    map[string]sound.Symbol // grapheme → symbol, including aliases and generated sounds
	names     map[string]sound.Symbol // feature name → non-alias symbol
	sorted    *treemap.Map            // grapheme → symbol, for enumeration
	prefixes  *trie.Trie              // graphemes, for completion
	matcher   *matcher
	generated int
	//
	bases      map[string]sound.Symbol // feature name → inventory symbol
	baseOf     map[string]sound.Symbol // grapheme → inventory symbol
	markers    map[string]*sound.Marker
	diacritics map[sound.Category]map[string]inventory.Diacritic
	values     map[string]string // feature value → feature
	glyphs     map[sound.Category]map[string]string
	normalizer *strings.Replacer
}

func newSystem(id string) *System {
	ts := &System{
		id:         id,
		sounds:     make(map[string]sound.Symbol),
		names:      make(map[string]sound.Symbol),
		sorted:     treemap.NewWithStringComparator(),
		prefixes:   trie.New(),
		bases:      make(map[string]sound.Symbol),
		baseOf:     make(map[string]sound.Symbol),
		markers:    make(map[string]*sound.Marker),
		diacritics: make(map[sound.Category]map[string]inventory.Diacritic),
		values:     make(map[string]string),
		glyphs:     make(map[sound.Category]map[string]string),
	}
	for _, c := range sound.Featured {
		ts.diacritics[c] = make(map[string]inventory.Diacritic)
		ts.glyphs[c] = make(map[string]string)
	}
	return ts
}

// New creates a transcription system from a set of inventory tables.
// Inconsistent tables result in a configuration error, with code
// core.ECONFIG or core.EDUPLICATE.
func New(tables *inventory.Tables) (*System, error) {
	if tables == nil || tables.ID == "" {
		return nil, core.Error(core.EINVALID, "transcription system needs tables and an identifier")
	}
	ts := newSystem(tables.ID)
	for _, d := range tables.Diacritics {
		if err := ts.addDiacritic(d); err != nil {
			return nil, err
		}
	}
	var aliases []sound.Symbol
	for _, c := range sound.Featured {
		for _, row := range tables.Sounds[c] {
			sym, err := ts.addSound(c, row)
			if err != nil {
				return nil, err
			}
			if row.Alias {
				aliases = append(aliases, sym)
			}
		}
	}
	for _, row := range tables.Sounds[sound.MarkerCategory] {
		if err := ts.addMarker(row); err != nil {
			return nil, err
		}
	}
	for _, a := range aliases {
		if _, ok := ts.bases[a.Name()]; !ok {
			return nil, core.Error(core.ECONFIG, "system %s: alias %q has no canonical sound %q",
				ts.id, a.String(), a.Name())
		}
	}
	nrm := append([]inventory.Normalization(nil), tables.Normalize...)
	sort.SliceStable(nrm, func(i, j int) bool {
		return len(nrm[i].Source) > len(nrm[j].Source)
	})
	pairs := make([]string, 0, 2*len(nrm))
	for _, n := range nrm {
		pairs = append(pairs, n.Source, n.Target)
	}
	ts.normalizer = strings.NewReplacer(pairs...)
	ts.matcher = newMatcher(ts.graphemes())
	tracer().Infof("transcription system %s has %d symbols and %d diacritics",
		ts.id, len(ts.sounds), len(tables.Diacritics))
	return ts, nil
}

func (ts *System) addDiacritic(d inventory.Diacritic) error {
	schema := sound.SchemaFor(d.Type)
	if schema == nil {
		return core.Error(core.ECONFIG, "system %s: diacritic %q for %s, which has no features",
			ts.id, d.Grapheme, d.Type)
	}
	if d.Feature != stressFeature && !schema.Has(d.Feature) {
		return core.Error(core.ECONFIG, "system %s: diacritic %q sets feature %q, not defined for %s",
			ts.id, d.Grapheme, d.Feature, d.Type)
	}
	ts.diacritics[d.Type][d.Grapheme] = d
	ts.indexValue(d.Value, d.Feature)
	if !d.Alias {
		if _, ok := ts.glyphs[d.Type][d.Value]; !ok {
			ts.glyphs[d.Type][d.Value] = strings.ReplaceAll(d.Grapheme, sound.Empty, "")
		}
	}
	return nil
}

func (ts *System) addSound(c sound.Category, row inventory.Row) (sound.Symbol, error) {
	features := sound.NewFeatureSet(c)
	for _, f := range row.Features {
		if err := features.Set(f.Name, f.Value); err != nil {
			return nil, core.WrapError(err, core.ECONFIG, "system %s: line %d of %s table",
				ts.id, row.Line, c)
		}
		ts.indexValue(f.Value, f.Name)
	}
	sym, err := sound.NewSound(sound.Sound{
		Grapheme: row.Grapheme,
		Source:   row.Grapheme,
		Alias:    row.Alias,
		Note:     row.Note,
		Features: features,
	})
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "system %s", ts.id)
	}
	if err = ts.register(sym); err != nil {
		return nil, err
	}
	if !row.Alias {
		ts.bases[sym.Name()] = sym
		ts.baseOf[sym.String()] = sym
	}
	return sym, nil
}

func (ts *System) addMarker(row inventory.Row) error {
	m := &sound.Marker{
		Grapheme: row.Grapheme,
		Source:   row.Grapheme,
		Alias:    row.Alias,
		Note:     row.Note,
		Feature:  row.Get("feature"),
		Value:    row.Get("value"),
	}
	if _, ok := ts.sounds[m.Grapheme]; ok {
		return core.WrapError(ErrDuplicate, core.EDUPLICATE, "system %s: grapheme %q registered twice",
			ts.id, m.Grapheme)
	}
	if !m.Alias {
		ts.markers[markerKey(m)] = m
	}
	ts.store(m)
	return nil
}

func markerKey(m *sound.Marker) string {
	return m.Value + " " + m.Feature
}

// register adds an inventory sound. Graphemes and non-alias names must be
// unique.
func (ts *System) register(sym sound.Symbol) error {
	if _, ok := ts.sounds[sym.String()]; ok {
		return core.WrapError(ErrDuplicate, core.EDUPLICATE, "system %s: grapheme %q registered twice",
			ts.id, sym.String())
	}
	if !sound.IsAlias(sym) {
		if other, ok := ts.names[sym.Name()]; ok {
			return core.WrapError(ErrDuplicate, core.EDUPLICATE, "system %s: %q and %q are both %q",
				ts.id, other.String(), sym.String(), sym.Name())
		}
		ts.names[sym.Name()] = sym
	}
	ts.store(sym)
	return nil
}

func (ts *System) store(sym sound.Symbol) {
	ts.sounds[sym.String()] = sym
	ts.sorted.Put(sym.String(), sym)
	ts.prefixes.Add(sym.String(), sym.Category())
}

func (ts *System) indexValue(value, feature string) {
	if _, ok := ts.values[value]; !ok {
		ts.values[value] = feature
	}
}

// insertGenerated adds a generated sound to the registry, if its grapheme
// is not yet known. Only an unstressed sound spelled the way Render spells it
// owns its feature name; every other spelling is registered as an alias.
// insertGenerated returns the registered symbol.
func (ts *System) insertGenerated(sym sound.Symbol) sound.Symbol {
	ts.Lock()
	defer ts.Unlock()
	if known, ok := ts.sounds[sym.String()]; ok {
		return known
	}
	if a, ok := sound.Attributes(sym); ok {
		canonical := a.Stress == "" && ts.Render(sym) == sym.String()
		owner, taken := ts.names[sym.Name()]
		if taken && canonical && owner.String() != ts.Render(owner) {
			tracer().Debugf("%s: %q replaces %q as spelling of %s", ts.id, sym.String(),
				owner.String(), sym.Name())
			if o, ok := sound.Attributes(owner); ok {
				o.Alias = true
			}
			taken = false
		}
		a.Alias = !canonical || taken
		if !a.Alias {
			ts.names[sym.Name()] = sym
		}
	}
	ts.store(sym)
	ts.generated++
	ts.matcher = newMatcher(ts.graphemes())
	tracer().Debugf("%s: cached generated sound %q = %s", ts.id, sym.String(), sym.Name())
	return sym
}

// graphemes returns all registered graphemes. Caller must hold the lock.
func (ts *System) graphemes() []string {
	gg := make([]string, 0, len(ts.sounds))
	for g := range ts.sounds {
		gg = append(gg, g)
	}
	return gg
}

// ID returns the identifier of the system, e.g. "bipa".
func (ts *System) ID() string {
	return ts.id
}

// Len returns the number of registered graphemes.
func (ts *System) Len() int {
	ts.RLock()
	defer ts.RUnlock()
	return len(ts.sounds)
}

// Generated returns the number of generated sounds in the registry.
func (ts *System) Generated() int {
	ts.RLock()
	defer ts.RUnlock()
	return ts.generated
}

// Contains is true if grapheme is registered, without any normalization.
func (ts *System) Contains(grapheme string) bool {
	ts.RLock()
	defer ts.RUnlock()
	_, ok := ts.sounds[grapheme]
	return ok
}

// Lookup returns a copy of the symbol registered for grapheme.
func (ts *System) Lookup(grapheme string) (sound.Symbol, bool) {
	ts.RLock()
	sym, ok := ts.sounds[grapheme]
	ts.RUnlock()
	if !ok {
		return nil, false
	}
	return sound.Clone(sym), true
}

func (ts *System) named(name string) (sound.Symbol, bool) {
	ts.RLock()
	defer ts.RUnlock()
	sym, ok := ts.names[name]
	return sym, ok
}

// Each calls f for every registered grapheme and its symbol, in lexical
// order of the graphemes. The registry may grow while Each runs; f will see
// a snapshot.
func (ts *System) Each(f func(grapheme string, sym sound.Symbol)) {
	ts.RLock()
	keys, values := ts.sorted.Keys(), ts.sorted.Values()
	ts.RUnlock()
	for i, k := range keys {
		f(k.(string), sound.Clone(values[i].(sound.Symbol)))
	}
}

// Complete returns all registered graphemes starting with prefix, in lexical
// order. prefix is normalized first.
func (ts *System) Complete(prefix string) []string {
	prefix = ts.normalize(prefix)
	ts.RLock()
	var found []string
	if prefix == "" {
		found = ts.prefixes.Keys()
	} else {
		found = ts.prefixes.PrefixSearch(prefix)
	}
	ts.RUnlock()
	sort.Strings(found)
	return found
}

// LogSymbolList is a helper function to dump the registry of a system to
// the trace-file (log-level Info).
func (ts *System) LogSymbolList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- symbols of %s ---", ts.id)
	ts.Each(func(g string, sym sound.Symbol) {
		flag := ""
		if sound.IsGenerated(sym) {
			flag = " (generated)"
		} else if sound.IsAlias(sym) {
			flag = " (alias)"
		}
		tracer().Infof("symbol [%s] = %s%s", g, sym.Name(), flag)
	})
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}
