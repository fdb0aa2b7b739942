/*
Package vector implements an immutable persistent vector, designed for use-cases
similar to Go slices. It is the collection type behind the vector values of a small
interpreted language: values are passed around freely, without defensive copying
or locking.

An immutable persistent vector has copy-on-write behaviour: Each “modification” of the vector
(appending, replacing or removing the last item) creates a new incarnation, leaving the original
unmodified. Under the hood, copy-on-write retains most of the memory held by the original, and
creates copies of the nodes on a single root-to-leaf path only. Thus, most of the structure/memory
is shared between original and copy, transparently to clients.

Vectors are organized as a trie of degree 2^bits, plus a tail of up to 2^bits items which
have not yet been moved into the trie. Appending is amortized O(1), random access and
replacement are O(log n) with a large logarithm base (the default degree is 32).

	v := vector.Of(1, 2, 3)
	w := v.Push(4)            // v still holds [1 2 3]
	x, err := w.Get(3)        // x = 4
	w, err = w.Update(0, 10)  // w holds [10 2 3 4]

Immutable vectors are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pvec.vector'.
func tracer() tracing.Trace {
	return tracing.Select("pvec.vector")
}
