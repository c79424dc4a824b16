package inventory

import (
	"bufio"
	"embed"
	"errors"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/npillmayer/clts/core"
	"github.com/npillmayer/clts/sound"
	"golang.org/x/text/unicode/norm"
)

//go:embed data
var bundled embed.FS

// Bundled returns the file system of the bundled inventory data.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		panic(err) // cannot happen with a valid embed directive
	}
	return sub
}

// Feature is a single feature/value pair of a table row.
type Feature struct {
	Name, Value string
}

// Row is a line of a sound table.
type Row struct {
	Grapheme string
	Features []Feature // in column order, EXTRA pairs last
	Alias    bool
	Note     string
	Line     int // line number in the table file, for error messages
}

// Get returns the value of a feature of the row.
func (r Row) Get(name string) string {
	for _, f := range r.Features {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// Diacritic is a line of the diacritics table.
type Diacritic struct {
	Type     sound.Category
	Grapheme string // including the "◌" placeholder
	Feature  string
	Value    string
	Alias    bool
}

// Normalization is a line of the normalization table.
type Normalization struct {
	Source, Target string
}

// Tables is the complete set of tables of a transcription system.
type Tables struct {
	ID         string
	Sounds     map[sound.Category][]Row // consonants, vowels, tones, clicks, markers
	Diacritics []Diacritic
	Normalize  []Normalization
}

// NewTables creates an empty set of tables.
func NewTables(id string) *Tables {
	return &Tables{
		ID:     id,
		Sounds: make(map[sound.Category][]Row),
	}
}

var soundTables = []struct {
	category sound.Category
	file     string
}{
	{sound.ConsonantCategory, "consonants.tsv"},
	{sound.VowelCategory, "vowels.tsv"},
	{sound.ToneCategory, "tones.tsv"},
	{sound.MarkerCategory, "markers.tsv"},
	{sound.ClickCategory, "clicks.tsv"},
}

// Load reads the tables of system id from a file system. Tables missing
// from the system's folder are treated as empty; a missing folder is an
// error with code core.EMISSING.
func Load(fsys fs.FS, id string) (*Tables, error) {
	if !IsSystem(fsys, id) {
		return nil, core.Error(core.EMISSING, "unknown transcription system %q", id)
	}
	tables := NewTables(id)
	for _, st := range soundTables {
		err := readIfPresent(fsys, path.Join(id, st.file), func(r io.Reader) error {
			rows, err := ReadSounds(r)
			if err != nil {
				return err
			}
			tables.Sounds[st.category] = rows
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	err := readIfPresent(fsys, path.Join(id, "diacritics.tsv"), func(r io.Reader) (err error) {
		tables.Diacritics, err = ReadDiacritics(r)
		return
	})
	if err != nil {
		return nil, err
	}
	err = readIfPresent(fsys, path.Join(id, "normalize.tsv"), func(r io.Reader) (err error) {
		tables.Normalize, err = ReadNormalization(r)
		return
	})
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded inventory tables for %s", id)
	return tables, nil
}

// IsSystem is true if fsys holds a transcription system folder named id.
func IsSystem(fsys fs.FS, id string) bool {
	if id == "" || strings.ContainsAny(id, `/\`) {
		return false
	}
	for _, st := range soundTables {
		if _, err := fs.Stat(fsys, path.Join(id, st.file)); err == nil {
			return true
		}
	}
	return false
}

// Systems lists the identifiers of all transcription systems in fsys.
// Folders starting with '_' are private and not listed.
func Systems(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), "_") && IsSystem(fsys, e.Name()) {
			ids = append(ids, e.Name())
		}
	}
	return ids, nil
}

func readIfPresent(fsys fs.FS, name string, read func(io.Reader) error) error {
	f, err := fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		tracer().Debugf("inventory table %s not present", name)
		return nil
	} else if err != nil {
		return err
	}
	defer f.Close()
	if err = read(f); err != nil {
		return core.WrapError(err, core.EINVALID, "table %s", name)
	}
	return nil
}

// ReadSounds reads a sound table.
func ReadSounds(r io.Reader) ([]Row, error) {
	header, records, err := readTSV(r)
	if err != nil {
		return nil, err
	}
	gcol := indexOf(header, "grapheme")
	if gcol < 0 {
		return nil, core.Error(core.EINVALID, "sound table has no GRAPHEME column")
	}
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		row := Row{Line: rec.line}
		for i, name := range header {
			value := rec.field(i)
			switch name {
			case "grapheme":
				row.Grapheme = value
			case "alias":
				row.Alias = isTrue(value)
			case "note":
				row.Note = value
			case "extra":
				for _, pair := range strings.Split(value, ",") {
					if pair = strings.TrimSpace(pair); pair == "" {
						continue
					}
					k, v, ok := strings.Cut(pair, ":")
					if !ok || k == "" {
						return nil, core.Error(core.EINVALID,
							"line %d: malformed EXTRA entry %q", rec.line, pair)
					}
					row.Features = append(row.Features, Feature{strings.TrimSpace(k), strings.TrimSpace(v)})
				}
			default:
				if value != "" {
					row.Features = append(row.Features, Feature{name, value})
				}
			}
		}
		if row.Grapheme == "" {
			return nil, core.Error(core.EINVALID, "line %d: empty grapheme", rec.line)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadDiacritics reads a diacritics table.
func ReadDiacritics(r io.Reader) ([]Diacritic, error) {
	header, records, err := readTSV(r)
	if err != nil {
		return nil, err
	}
	cols := make([]int, 5)
	for i, name := range []string{"type", "grapheme", "feature", "value", "alias"} {
		if cols[i] = indexOf(header, name); cols[i] < 0 && name != "alias" {
			return nil, core.Error(core.EINVALID, "diacritics table has no %s column",
				strings.ToUpper(name))
		}
	}
	dias := make([]Diacritic, 0, len(records))
	for _, rec := range records {
		typ, ok := sound.ParseCategory(rec.field(cols[0]))
		if !ok {
			return nil, core.Error(core.EINVALID, "line %d: unknown diacritic type %q",
				rec.line, rec.field(cols[0]))
		}
		d := Diacritic{
			Type:     typ,
			Grapheme: rec.field(cols[1]),
			Feature:  rec.field(cols[2]),
			Value:    rec.field(cols[3]),
			Alias:    isTrue(rec.field(cols[4])),
		}
		if d.Grapheme == "" || d.Feature == "" || d.Value == "" {
			return nil, core.Error(core.EINVALID, "line %d: incomplete diacritic", rec.line)
		}
		if !strings.Contains(d.Grapheme, sound.Empty) {
			return nil, core.Error(core.EINVALID, "line %d: diacritic %q lacks placeholder %s",
				rec.line, d.Grapheme, sound.Empty)
		}
		dias = append(dias, d)
	}
	return dias, nil
}

// ReadNormalization reads a normalization table.
func ReadNormalization(r io.Reader) ([]Normalization, error) {
	header, records, err := readTSV(r)
	if err != nil {
		return nil, err
	}
	src, tgt := indexOf(header, "source"), indexOf(header, "target")
	if src < 0 || tgt < 0 {
		return nil, core.Error(core.EINVALID, "normalization table needs SOURCE and TARGET columns")
	}
	nrm := make([]Normalization, 0, len(records))
	for _, rec := range records {
		n := Normalization{
			Source: strings.ReplaceAll(rec.field(src), sound.Empty, ""),
			Target: strings.ReplaceAll(rec.field(tgt), sound.Empty, ""),
		}
		if n.Source == "" {
			return nil, core.Error(core.EINVALID, "line %d: empty normalization source", rec.line)
		}
		nrm = append(nrm, n)
	}
	return nrm, nil
}

// Record is a row of a generic table, keyed by upper-case column name.
type Record map[string]string

// ReadRecords reads a generic tab-separated table from a file system.
func ReadRecords(fsys fs.FS, name string) ([]Record, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, core.WrapError(err, core.EMISSING, "table %s not found", name)
		}
		return nil, err
	}
	defer f.Close()
	header, records, err := readTSV(f)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "table %s", name)
	}
	recs := make([]Record, len(records))
	for j, rec := range records {
		recs[j] = make(Record, len(header))
		for i, col := range header {
			recs[j][strings.ToUpper(col)] = rec.field(i)
		}
	}
	return recs, nil
}

// --- TSV reading -----------------------------------------------------------

type record struct {
	line   int
	fields []string
}

func (r record) field(i int) string {
	if i < 0 || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// readTSV reads a header line and all data lines. Column names are
// lower-cased, fields are trimmed and NFD-normalized. Empty lines are
// skipped. There is no comment syntax, as '#' is a valid grapheme.
func readTSV(r io.Reader) ([]string, []record, error) {
	scanner := bufio.NewScanner(r)
	var header []string
	var records []record
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		for i, f := range fields {
			fields[i] = norm.NFD.String(strings.TrimSpace(f))
		}
		if header == nil {
			for i := range fields {
				fields[i] = strings.ToLower(fields[i])
			}
			header = fields
			continue
		}
		records = append(records, record{line: line, fields: fields})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if header == nil {
		return nil, nil, core.Error(core.EINVALID, "table has no header line")
	}
	return header, records, nil
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

func isTrue(s string) bool {
	switch strings.ToLower(s) {
	case "+", "true", "1", "yes":
		return true
	}
	return false
}
