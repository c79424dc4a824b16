/*
Package inventory reads the static tables a transcription system is built
from.

A transcription system is a folder of tab-separated tables:

	consonants.tsv  vowels.tsv  tones.tsv  clicks.tsv  markers.tsv
	diacritics.tsv  normalize.tsv

Sound tables have a GRAPHEME column, an arbitrary number of feature columns
(PLACE, MANNER, …), an optional EXTRA column holding additional
"feature:value" pairs separated by commas, and optional ALIAS ("+") and NOTE
columns. The diacritics table has columns TYPE, GRAPHEME, FEATURE, VALUE and
ALIAS, where graphemes use "◌" to mark the position of the base symbol:
"◌ʰ" follows its base, "ⁿ◌" precedes it. The normalization table maps single
characters (SOURCE) to replacement strings (TARGET).

All table content is converted to Unicode NFD on reading.

Package inventory bundles the systems "bipa", "asjp" and "gld", together with
sound-class tables (folder "soundclasses") and cross-reference tables
(folder "transcriptiondata"). See Bundled.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package inventory

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'clts.inventory'
func tracer() tracing.Trace {
	return tracing.Select("clts.inventory")
}
