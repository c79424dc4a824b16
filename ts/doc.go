/*
Package ts implements transcription systems.

A transcription system is an inventory of base symbols (consonants, vowels,
tones, clicks and markers) together with a table of diacritics. It parses
arbitrary graphemes into feature-based symbols and renders symbols back into
canonical graphemes:

	bipa, err := ts.Open(conf, "bipa")
	sym := bipa.Parse("tːʰ")
	fmt.Println(sym.Name())        // aspirated long voiceless alveolar plosive consonant
	fmt.Println(bipa.Render(sym))  // tʰː

Graphemes not contained in the inventory are decomposed into a base grapheme
and diacritics. The resulting generated sounds are cached, i.e. the registry
of a system grows while it is used. A system is safe for concurrent use.

Parsing never fails with an error. Input which cannot be resolved results in
a *sound.UnknownSound.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package ts

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'clts.ts'.
func tracer() tracing.Trace {
	return tracing.Select("clts.ts")
}

// Errors returned from this package are wrapped into core errors; use
// errors.Is to check for them.
var (
	ErrUnknownFeature = errors.New("unknown feature value")
	ErrUnknownSystem  = errors.New("unknown transcription system")
	ErrDuplicate      = errors.New("duplicate symbol")
)
