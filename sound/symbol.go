package sound

import (
	"fmt"
	"strings"
)

// Symbol is a sum type over the symbol variants of this package:
// *UnknownSound, *Marker, *Consonant, *Vowel, *Tone, *Click, *Diphthong and
// *Cluster. No other implementations exist.
type Symbol interface {
	Category() Category
	Name() string   // feature name; a marker's grapheme; "" for unknown sounds
	String() string // grapheme as registered (not necessarily canonical)
	Origin() string // input string before normalization
	isSymbol()
}

// --- Featured sounds -------------------------------------------------------

// Sound holds the attributes common to consonants, vowels, tones and clicks.
type Sound struct {
	Grapheme   string
	Source     string
	Generated  bool // synthesized from diacritics or a feature name
	Alias      bool // secondary spelling of an already registered feature set
	Normalized bool // normalization changed the input
	Note       string
	Stress     string
	Base       string // grapheme of the inventory sound a generated sound was built on
	Features   FeatureSet
}

// Name returns the feature name of the sound.
func (s *Sound) Name() string { return s.Features.Name() }

func (s *Sound) String() string { return s.Grapheme }

// Origin returns the input string the sound was parsed from.
func (s *Sound) Origin() string { return s.Source }

// Attributes gives access to the common attributes of a featured sound.
func (s *Sound) Attributes() *Sound { return s }

// Get returns the value of a feature.
func (s *Sound) Get(feature string) string { return s.Features.Get(feature) }

func (s Sound) clone() Sound {
	s.Features = s.Features.Clone()
	return s
}

// Consonant is a pulmonic or non-pulmonic consonant.
type Consonant struct{ Sound }

// Category returns ConsonantCategory.
func (*Consonant) Category() Category { return ConsonantCategory }
func (*Consonant) isSymbol()          {}

// Manner returns the manner of articulation.
func (c *Consonant) Manner() string { return c.Features.Get("manner") }

// Vowel is a monophthong.
type Vowel struct{ Sound }

// Category returns VowelCategory.
func (*Vowel) Category() Category { return VowelCategory }
func (*Vowel) isSymbol()          {}

// Tone is a tone letter or tone number sequence.
type Tone struct{ Sound }

// Category returns ToneCategory.
func (*Tone) Category() Category { return ToneCategory }
func (*Tone) isSymbol()          {}

// Click is a click consonant.
type Click struct{ Sound }

// Category returns ClickCategory.
func (*Click) Category() Category { return ClickCategory }
func (*Click) isSymbol()          {}

// NewSound creates a featured symbol from a set of attributes. The variant is
// selected by the category of the feature set.
func NewSound(attrs Sound) (Symbol, error) {
	switch attrs.Features.Category() {
	case ConsonantCategory:
		return &Consonant{attrs}, nil
	case VowelCategory:
		return &Vowel{attrs}, nil
	case ToneCategory:
		return &Tone{attrs}, nil
	case ClickCategory:
		return &Click{attrs}, nil
	}
	return nil, fmt.Errorf("cannot create a featured sound for category %s",
		attrs.Features.Category())
}

// --- Markers and unknown sounds --------------------------------------------

// Marker is a non-sound symbol, e.g. a morpheme or word boundary.
type Marker struct {
	Grapheme string
	Source   string
	Alias    bool
	Note     string
	Feature  string
	Value    string
}

// Category returns MarkerCategory.
func (*Marker) Category() Category { return MarkerCategory }

// Name of a marker is its grapheme.
func (m *Marker) Name() string   { return m.Grapheme }
func (m *Marker) String() string { return m.Grapheme }

// Origin returns the input string the marker was parsed from.
func (m *Marker) Origin() string { return m.Source }
func (*Marker) isSymbol()        {}

// UnknownSound is the result of a failed parse. It carries no features.
type UnknownSound struct {
	Grapheme string // normalized input
	Source   string
}

// Category returns UnknownCategory.
func (*UnknownSound) Category() Category { return UnknownCategory }

// Name of an unknown sound is empty.
func (*UnknownSound) Name() string       { return "" }
func (u *UnknownSound) String() string { return u.Grapheme }

// Origin returns the input string which could not be parsed.
func (u *UnknownSound) Origin() string { return u.Source }
func (*UnknownSound) isSymbol()        {}

// NewUnknown creates an unknown sound for an input string.
func NewUnknown(grapheme, source string) *UnknownSound {
	return &UnknownSound{Grapheme: grapheme, Source: source}
}

// --- Complex sounds --------------------------------------------------------

// ComplexSound holds the attributes of a sound made up from two components.
// Complex sounds are always generated.
type ComplexSound struct {
	Grapheme string
	Source   string
	Stress   string
}

func (c *ComplexSound) String() string { return c.Grapheme }

// Origin returns the input string the complex sound was parsed from.
func (c *ComplexSound) Origin() string { return c.Source }

// Diphthong is a sequence of two vowels.
type Diphthong struct {
	ComplexSound
	From, To *Vowel
}

// Category returns DiphthongCategory.
func (*Diphthong) Category() Category { return DiphthongCategory }
func (*Diphthong) isSymbol()          {}

// Name returns "from <vowel features> to <vowel features> diphthong".
func (d *Diphthong) Name() string {
	return complexName(d.From.Name(), d.To.Name(), DiphthongCategory)
}

// NewDiphthong composes a diphthong from two vowels.
func NewDiphthong(source string, v1, v2 *Vowel) *Diphthong {
	return &Diphthong{
		ComplexSound: ComplexSound{
			Grapheme: v1.Grapheme + v2.Grapheme,
			Source:   source,
			Stress:   firstNonEmpty(v1.Stress, v2.Stress),
		},
		From: v1,
		To:   v2,
	}
}

// Cluster is a sequence of two consonants. Only plosives and implosives are
// combined into clusters.
type Cluster struct {
	ComplexSound
	From, To *Consonant
}

// Category returns ClusterCategory.
func (*Cluster) Category() Category { return ClusterCategory }
func (*Cluster) isSymbol()          {}

// Name returns "from <consonant features> to <consonant features> cluster".
func (c *Cluster) Name() string {
	return complexName(c.From.Name(), c.To.Name(), ClusterCategory)
}

// NewCluster composes a cluster from two consonants.
func NewCluster(source string, c1, c2 *Consonant) *Cluster {
	return &Cluster{
		ComplexSound: ComplexSound{
			Grapheme: c1.Grapheme + c2.Grapheme,
			Source:   source,
			Stress:   firstNonEmpty(c1.Stress, c2.Stress),
		},
		From: c1,
		To:   c2,
	}
}

// ClusterManner is true for manners which may form a cluster.
func ClusterManner(manner string) bool {
	return manner == "plosive" || manner == "implosive"
}

func complexName(n1, n2 string, c Category) string {
	return "from " + StripCategory(n1) + " to " + StripCategory(n2) + " " + c.String()
}

// StripCategory removes the trailing category word from a feature name.
func StripCategory(name string) string {
	if i := strings.LastIndexByte(name, ' '); i >= 0 {
		return name[:i]
	}
	return ""
}

func firstNonEmpty(s ...string) string {
	for _, x := range s {
		if x != "" {
			return x
		}
	}
	return ""
}

// --- Helpers over all variants ---------------------------------------------

// Attributes returns the common attributes of consonants, vowels, tones and
// clicks.
func Attributes(sym Symbol) (*Sound, bool) {
	switch s := sym.(type) {
	case *Consonant:
		return &s.Sound, true
	case *Vowel:
		return &s.Sound, true
	case *Tone:
		return &s.Sound, true
	case *Click:
		return &s.Sound, true
	}
	return nil, false
}

// IsUnknown is true for nil symbols and unknown sounds.
func IsUnknown(sym Symbol) bool {
	if sym == nil {
		return true
	}
	_, ok := sym.(*UnknownSound)
	return ok
}

// IsGenerated is true for symbols synthesized by a transcription system.
func IsGenerated(sym Symbol) bool {
	switch s := sym.(type) {
	case *Diphthong, *Cluster:
		return true
	default:
		if a, ok := Attributes(s); ok {
			return a.Generated
		}
	}
	return false
}

// IsAlias is true for secondary spellings.
func IsAlias(sym Symbol) bool {
	if m, ok := sym.(*Marker); ok {
		return m.Alias
	}
	if a, ok := Attributes(sym); ok {
		return a.Alias
	}
	return false
}

// StressOf returns the stress marker of a symbol, if any.
func StressOf(sym Symbol) string {
	switch s := sym.(type) {
	case *Diphthong:
		return s.Stress
	case *Cluster:
		return s.Stress
	}
	if a, ok := Attributes(sym); ok {
		return a.Stress
	}
	return ""
}

// Equal compares two symbols. Sounds are equal if their feature names are
// equal. Markers are equal if their graphemes are equal. Unknown sounds are
// never equal to anything.
func Equal(a, b Symbol) bool {
	if IsUnknown(a) || IsUnknown(b) || a.Category() != b.Category() {
		return false
	}
	return a.Name() == b.Name()
}

// Clone returns a deep copy of a symbol. Components of complex sounds are
// cloned as well.
func Clone(sym Symbol) Symbol {
	switch s := sym.(type) {
	case *Consonant:
		return &Consonant{s.Sound.clone()}
	case *Vowel:
		return &Vowel{s.Sound.clone()}
	case *Tone:
		return &Tone{s.Sound.clone()}
	case *Click:
		return &Click{s.Sound.clone()}
	case *Marker:
		m := *s
		return &m
	case *UnknownSound:
		u := *s
		return &u
	case *Diphthong:
		d := *s
		d.From = Clone(s.From).(*Vowel)
		d.To = Clone(s.To).(*Vowel)
		return &d
	case *Cluster:
		c := *s
		c.From = Clone(s.From).(*Consonant)
		c.To = Clone(s.To).(*Consonant)
		return &c
	}
	return sym
}
