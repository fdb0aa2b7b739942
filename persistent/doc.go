/*
Package persistent is the home of immutable persistent data structures: data structures
which can be copied and modified efficiently, leaving the original unchanged.
Functional programming languages like Lisp have long relied on them, and interpreters
for such languages pass them around as plain values.

*Persistent* immutable data structures offer structural sharing: if two incarnations of
a data structure are mostly copies of each other, most of the memory they take up will be
shared between them. Making a modified copy of a persistent data structure therefore is
cheap in terms of space- and time-complexity, and no incarnation ever needs locking for
concurrent read access.

Sub-package vector implements an indexed sequence type, organized as a trie with a tail
buffer for fast appends.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
