package transdata

import (
	"io/fs"
	"path"
	"strings"

	"github.com/npillmayer/clts/core"
	"github.com/npillmayer/clts/core/locate/inventories"
	"github.com/npillmayer/clts/sound"
	"github.com/npillmayer/clts/ts"
	"github.com/npillmayer/schuko"
)

// Separator joins multiple graphemes for a sound.
const Separator = "//"

// TranscriptionData maps feature names to the graphemes of a database.
type TranscriptionData struct {
	id        string
	system    *ts.System
	graphemes map[string][]string // feature name → graphemes
	bipa      map[string]string   // feature name → grapheme of the reference system
}

// New reads transcription data id from the inventory data in fsys. A
// missing table results in an error with code core.EMISSING.
func New(fsys fs.FS, id string, system *ts.System) (*TranscriptionData, error) {
	if system == nil {
		return nil, core.Error(core.EINVALID, "transcription data %q needs a transcription system", id)
	}
	records, err := inventories.ReadTable(fsys, path.Join("transcriptiondata", id+".tsv"))
	if err != nil {
		return nil, err
	}
	td := &TranscriptionData{
		id:        id,
		system:    system,
		graphemes: make(map[string][]string),
		bipa:      make(map[string]string),
	}
	for _, rec := range records {
		name := strings.Join(strings.Fields(rec["NAME"]), " ")
		if name == "" || rec["GRAPHEME"] == "" {
			continue
		}
		td.graphemes[name] = append(td.graphemes[name], rec["GRAPHEME"])
		if _, ok := td.bipa[name]; !ok && rec["BIPA_GRAPHEME"] != "" {
			td.bipa[name] = rec["BIPA_GRAPHEME"]
		}
	}
	tracer().Infof("transcription data %s has %d sounds", id, len(td.graphemes))
	return td, nil
}

// Open reads transcription data from the inventory data located by conf.
func Open(conf schuko.Configuration, id string, system *ts.System) (*TranscriptionData, error) {
	return New(inventories.Locate(conf), id, system)
}

// ID returns the identifier of the transcription data, e.g. "phoible".
func (td *TranscriptionData) ID() string {
	return td.id
}

// Graphemes returns the graphemes listed for a feature name.
func (td *TranscriptionData) Graphemes(name string) []string {
	return td.graphemes[name]
}

// Reference returns the grapheme of the reference system listed for a
// feature name.
func (td *TranscriptionData) Reference(name string) (string, bool) {
	g, ok := td.bipa[name]
	return g, ok
}

// Resolve returns the graphemes for a sound, joined by Separator. Sounds are
// matched by exact feature name only.
func (td *TranscriptionData) Resolve(sym sound.Symbol) (string, error) {
	if sound.IsUnknown(sym) {
		return "", core.WrapError(ErrNoSound, core.EMISSING, "%s: unknown sound", td.id)
	}
	gg, ok := td.graphemes[sym.Name()]
	if !ok {
		return "", core.WrapError(ErrNoSound, core.EMISSING, "%s: no entry for %q", td.id, sym.Name())
	}
	return strings.Join(gg, Separator), nil
}

// ResolveString parses a grapheme and returns its graphemes in the
// transcription data.
func (td *TranscriptionData) ResolveString(s string) (string, error) {
	return td.Resolve(td.system.Get(s))
}
