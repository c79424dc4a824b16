/*
Package sound defines the data model for phonetic symbols.

A symbol is one of a closed set of variants: UnknownSound, Marker,
Consonant, Vowel, Tone, Click, Diphthong and Cluster. Clients distinguish
between them with a type switch:

	switch s := sym.(type) {
	case *sound.Consonant:
		...
	case *sound.Diphthong:
		...
	}

Every featured variant (consonant, vowel, tone, click) carries a FeatureSet.
A feature set is a fixed-size slot array whose layout is given by the
category's Schema. The schema's slot order is the "name order": the feature
name of a sound is the space-joined list of its non-empty values in slot
order, followed by the category, e.g.

	"aspirated voiceless alveolar plosive consonant"

The schema also carries the write order, i.e. the sequence in which
diacritics are rendered before and after a base grapheme.

Package sound does not know about transcription systems; parsing and
rendering live in package ts.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package sound

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'clts.sound'
func tracer() tracing.Trace {
	return tracing.Select("clts.sound")
}

// Placeholders used when rendering symbols.
const (
	Empty       = "◌"   // empty slot in diacritic graphemes, e.g. "◌ʰ"
	Unknown     = "�"   // rendering of an unknown sound
	UnknownBase = "<?>" // no base grapheme could be found for a feature set
	MissingMark = "<!>" // a feature value has no diacritic in the system
)
