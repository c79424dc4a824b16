/*
Package transdata relates sounds to the graphemes used for them in other
phonetic databases.

Transcription data is read from tables

	transcriptiondata/<id>.tsv

of the inventory data, with columns NAME, BIPA_GRAPHEME and GRAPHEME. A
sound may be written by more than one grapheme in a database; resolving
a sound gives all of them, separated by "//".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package transdata

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'clts.transdata'.
func tracer() tracing.Trace {
	return tracing.Select("clts.transdata")
}

// ErrNoSound is returned (wrapped) if a sound is not contained in a
// transcription data table.
var ErrNoSound = errors.New("sound not in transcription data")
