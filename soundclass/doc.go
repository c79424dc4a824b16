/*
Package soundclass maps sounds to sound classes.

A sound-class model reduces the sounds of a transcription system to a small
alphabet of classes, e.g. the consonant/vowel model "cv". Models are read from
table

	soundclasses/lingpy.tsv

of the inventory data, which lists feature names together with one class
column per model. Sounds not listed in the table are resolved by dropping
their least distinctive features until a listed sound is found.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package soundclass

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'clts.soundclass'.
func tracer() tracing.Trace {
	return tracing.Select("clts.soundclass")
}

// ErrNoSound is returned (wrapped) if a sound has no sound class.
var ErrNoSound = errors.New("no sound class for sound")
