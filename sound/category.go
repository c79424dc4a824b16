package sound

import "strings"

// Category is the type of a symbol.
type Category int8

// Symbol categories. The zero value is UnknownCategory.
const (
	UnknownCategory Category = iota
	MarkerCategory
	ConsonantCategory
	VowelCategory
	ToneCategory
	ClickCategory
	DiphthongCategory
	ClusterCategory
)

var categoryNames = [...]string{
	UnknownCategory:   "unknownsound",
	MarkerCategory:    "marker",
	ConsonantCategory: "consonant",
	VowelCategory:     "vowel",
	ToneCategory:      "tone",
	ClickCategory:     "click",
	DiphthongCategory: "diphthong",
	ClusterCategory:   "cluster",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return categoryNames[UnknownCategory]
	}
	return categoryNames[c]
}

// IsComplex is true for diphthongs and clusters.
func (c Category) IsComplex() bool {
	return c == DiphthongCategory || c == ClusterCategory
}

// ParseCategory finds a category by its name. "unknownsound" is not
// accepted, as it is not a category a client may ask for.
func ParseCategory(name string) (Category, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range categoryNames {
		if Category(c) != UnknownCategory && n == name {
			return Category(c), true
		}
	}
	return UnknownCategory, false
}

// Schema describes the feature slots of a featured category.
type Schema struct {
	Category Category
	Slots    []string // feature names in name order
	Pre      []string // features written before the base grapheme
	Post     []string // features written after the base grapheme
	index    map[string]int
}

// Slot returns the slot index of a feature.
func (s *Schema) Slot(feature string) (int, bool) {
	i, ok := s.index[feature]
	return i, ok
}

// Has is true if feature is a slot of the schema.
func (s *Schema) Has(feature string) bool {
	_, ok := s.index[feature]
	return ok
}

func newSchema(c Category, slots, pre, post []string) *Schema {
	s := &Schema{Category: c, Slots: slots, Pre: pre, Post: post}
	s.index = make(map[string]int, len(slots))
	for i, f := range slots {
		s.index[f] = i
	}
	for _, f := range append(append([]string{}, pre...), post...) {
		if _, ok := s.index[f]; !ok {
			panic("sound: write order feature " + f + " is not a slot of " + c.String())
		}
	}
	return s
}

var consonantSchema = newSchema(ConsonantCategory,
	[]string{"articulation", "preceding", "syllabicity", "nasalization",
		"palatalization", "labialization", "glottalization", "aspiration",
		"velarization", "pharyngealization", "duration", "release", "voicing",
		"creakiness", "breathiness", "phonation", "laminality", "place",
		"ejection", "laterality", "sibilancy", "manner"},
	[]string{"preceding"},
	[]string{"laminality", "creakiness", "phonation", "ejection", "syllabicity",
		"voicing", "articulation", "nasalization", "palatalization",
		"labialization", "breathiness", "aspiration", "glottalization",
		"velarization", "pharyngealization", "release", "duration"},
)

var vowelSchema = newSchema(VowelCategory,
	[]string{"duration", "rhotacization", "pharyngealization", "glottalization",
		"velarization", "syllabicity", "retraction", "tongue_root", "raising",
		"centralization", "rounding", "advancement", "articulation",
		"nasalization", "voicing", "creakiness", "breathiness", "roundedness",
		"height", "frication", "centrality", "tone"},
	nil,
	[]string{"tongue_root", "raising", "centralization", "rounding",
		"advancement", "voicing", "breathiness", "creakiness", "retraction",
		"syllabicity", "nasalization", "tone", "articulation", "rhotacization",
		"pharyngealization", "glottalization", "velarization", "duration",
		"frication"},
)

var toneSchema = newSchema(ToneCategory,
	[]string{"contour", "start", "middle", "end"},
	nil, nil,
)

var clickSchema = newSchema(ClickCategory,
	[]string{"preceding", "phonation", "place", "manner", "secondary"},
	[]string{"preceding"},
	[]string{"phonation"},
)

// SchemaFor returns the feature schema for a featured category, or nil for
// markers, unknown sounds and complex sounds.
func SchemaFor(c Category) *Schema {
	switch c {
	case ConsonantCategory:
		return consonantSchema
	case VowelCategory:
		return vowelSchema
	case ToneCategory:
		return toneSchema
	case ClickCategory:
		return clickSchema
	}
	return nil
}

// Featured lists the categories which carry a feature set, in the order
// inventory tables are loaded.
var Featured = []Category{ConsonantCategory, VowelCategory, ToneCategory, ClickCategory}
