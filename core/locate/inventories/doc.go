/*
Package inventories locates the inventory data transcription systems are
built from.

Inventory data is either taken from a folder given by configuration key

	clts.data

or, if this key is unset, from the data bundled with package inventory.

As loading tables may be a time-consuming task, ResolveTables works in an
async/await fashion by returning a promise. The client calls the promise
later to receive the loaded tables; the call blocks until loading has
completed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package inventories

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'clts.inventory'.
func tracer() tracing.Trace {
	return tracing.Select("clts.inventory")
}
