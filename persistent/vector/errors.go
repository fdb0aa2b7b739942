package vector

import "errors"

var (
	// ErrIndexOutOfRange signals an index outside of [0…Len()).
	ErrIndexOutOfRange = errors.New("vector: index out of range")
	// ErrEmptyCollection signals an attempt to remove an item from an empty vector.
	ErrEmptyCollection = errors.New("vector: empty collection")
	// ErrCorrupt is returned by Check for a vector violating structural invariants.
	ErrCorrupt = errors.New("vector: corrupt structure")
)
