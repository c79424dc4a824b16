package soundclass

import (
	"io/fs"
	"sort"
	"strings"

	"github.com/npillmayer/clts/core"
	"github.com/npillmayer/clts/core/locate/inventories"
	"github.com/npillmayer/clts/sound"
	"github.com/npillmayer/clts/ts"
	"github.com/npillmayer/schuko"
)

// Table is the path of the sound-class table within the inventory data.
const Table = "soundclasses/lingpy.tsv"

// Unresolved is the class given for sounds without a sound class.
const Unresolved = "0"

// Sound-class models and their columns in Table. Prosody classes rank
// sounds by sonority (1 for stops up to 7 for vowels, T for tones), color
// classes give a display color per Dolgopolsky class.
var models = map[string]string{
	"sca":     "SCA_CLASS",
	"dolgo":   "DOLGOPOLSKY_CLASS",
	"cv":      "CV_CLASS",
	"asjp":    "ASJP_CLASS",
	"prosody": "PROSODY_CLASS",
	"color":   "COLOR_CLASS",
}

// Features which never contribute to the sound class of a sound.
var ignored = map[string]bool{
	"laminality": true,
	"ejection":   true,
	"tone":       true,
}

// Models returns the identifiers of the supported sound-class models.
func Models() []string {
	ids := make([]string, 0, len(models))
	for id := range models {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SoundClasses is a sound-class model bound to a transcription system.
// Sounds are related to the model by feature name.
type SoundClasses struct {
	model   string
	system  *ts.System
	classes map[string]string // feature name → class
}

// New reads sound-class model from the inventory data in fsys. Sounds are
// parsed by system. An unknown model is an error with code core.EMISSING.
func New(fsys fs.FS, model string, system *ts.System) (*SoundClasses, error) {
	column, ok := models[model]
	if !ok {
		return nil, core.Error(core.EMISSING, "no sound-class model %q", model)
	}
	if system == nil {
		return nil, core.Error(core.EINVALID, "sound-class model %q needs a transcription system", model)
	}
	records, err := inventories.ReadTable(fsys, Table)
	if err != nil {
		return nil, err
	}
	sc := &SoundClasses{
		model:   model,
		system:  system,
		classes: make(map[string]string, len(records)),
	}
	for _, rec := range records {
		name, class := strings.Join(strings.Fields(rec["NAME"]), " "), rec[column]
		if name == "" || class == "" {
			continue
		}
		sc.classes[name] = class
	}
	tracer().Infof("sound-class model %s has %d sounds", model, len(sc.classes))
	return sc, nil
}

// Open reads a sound-class model from the inventory data located by conf.
func Open(conf schuko.Configuration, model string, system *ts.System) (*SoundClasses, error) {
	return New(inventories.Locate(conf), model, system)
}

// Model returns the identifier of the model.
func (sc *SoundClasses) Model() string {
	return sc.model
}

// Resolve returns the sound class of a sound. Diphthongs and clusters are
// resolved through their first component. Sounds without an entry in the
// model are stripped of their leading features, as long as at least three
// features remain.
func (sc *SoundClasses) Resolve(sym sound.Symbol) (string, error) {
	if sound.IsUnknown(sym) {
		return "", core.WrapError(ErrNoSound, core.EMISSING, "%s: unknown sound", sc.model)
	}
	if class, ok := sc.classes[sym.Name()]; ok {
		return class, nil
	}
	switch s := sym.(type) {
	case *sound.Diphthong:
		return sc.Resolve(s.From)
	case *sound.Cluster:
		return sc.Resolve(s.From)
	}
	a, ok := sound.Attributes(sym)
	if !ok {
		return "", core.WrapError(ErrNoSound, core.EMISSING, "%s: %s has no sound class",
			sc.model, sym.Category())
	}
	name := make([]string, 0, 8)
	a.Features.Each(func(feature, value string) {
		if !ignored[feature] {
			name = append(name, value)
		}
	})
	name = append(name, sym.Category().String())
	for len(name) >= 4 {
		if class, ok := sc.classes[strings.Join(name, " ")]; ok {
			tracer().Debugf("%s: %q resolved as %q", sc.model, sym.Name(), strings.Join(name, " "))
			return class, nil
		}
		name = name[1:]
	}
	return "", core.WrapError(ErrNoSound, core.EMISSING, "%s: no sound class for %q",
		sc.model, sym.Name())
}

// ResolveString parses a grapheme and returns its sound class.
func (sc *SoundClasses) ResolveString(s string) (string, error) {
	return sc.Resolve(sc.system.Get(s))
}

// Classes maps every token of a text to its sound class. Tokens without a
// sound class are given as Unresolved.
func (sc *SoundClasses) Classes(text string) []string {
	syms := sc.system.Symbols(text)
	classes := make([]string, len(syms))
	for i, sym := range syms {
		class, err := sc.Resolve(sym)
		if err != nil {
			class = Unresolved
		}
		classes[i] = class
	}
	return classes
}
