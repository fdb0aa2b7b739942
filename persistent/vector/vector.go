package vector

import (
	"fmt"

	"github.com/npillmayer/pvec/maybe"
	"github.com/npillmayer/pvec/result"
)

// Vector is an immutable persistent vector. A Vector is a small value (length, height,
// a reference to the root of the trie and a reference to the tail) and cheap to copy.
// The zero value is usable as an empty vector with default degree, i.e. this is legal:
//
//     vec := vector.Vector[int]{}.Push(42)
//
// Operations never modify the vector they are called on; modifications return a new
// incarnation, sharing most of its structure with the original.
type Vector[T any] struct {
	props
	length int
	shift  uint // we do not store the height h of the trie, but rather bits*(h-1)
	root   *vnode[T]
	tail   []T
}

// Immutable constructs an empty vector with options, if you need any.
// Use it like this:
//
//     vec := vector.Immutable[string](vector.BitsPerLevel(4))
//     vec = vec.Push("Galaxy")
//
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	v.props = v.props.init()
	return v
}

// Empty returns an empty vector with default degree.
func Empty[T any]() Vector[T] {
	return Vector[T]{}
}

// Of creates a vector with default degree, holding values in order.
func Of[T any](values ...T) Vector[T] {
	return FromSlice(values)
}

// FromSlice creates a vector holding the items of values in order. values is not
// retained by the vector.
func FromSlice[T any](values []T, opts ...Option) Vector[T] {
	v := Immutable[T](opts...)
	for _, x := range values {
		v = v.Push(x)
	}
	return v
}

// --- API -------------------------------------------------------------------

// Len returns the number of items in v.
func (v Vector[T]) Len() int {
	return v.length
}

// Get returns the item at index i. If i is not in the range [0…Len()), the zero value
// of T is returned, together with an error wrapping ErrIndexOutOfRange.
func (v Vector[T]) Get(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var none T
		return none, err
	}
	v.props = v.props.init()
	if off := v.tailOffset(); i >= off {
		return v.tail[i-off], nil
	}
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		node = node.children[v.digit(i, level)]
	}
	return node.leafs[v.digit(i, 0)], nil
}

// Lookup is a variant of Get, returning a result.
func (v Vector[T]) Lookup(i int) result.Result[T] {
	x, err := v.Get(i)
	return result.FromPair(x, err)
}

// Push returns a copy of v with value appended.
func (v Vector[T]) Push(value T) Vector[T] {
	v.props = v.props.init()
	if !v.tailFull() {
		return v.pushTail(value)
	}
	return v.graftTail(value)
}

// Update returns a copy of v with the item at index i replaced by value.
// If i is not in the range [0…Len()), an error wrapping ErrIndexOutOfRange is returned,
// together with v itself.
func (v Vector[T]) Update(i int, value T) (Vector[T], error) {
	if err := v.checkIndex(i); err != nil {
		return v, err
	}
	v.props = v.props.init()
	if off := v.tailOffset(); i >= off {
		newTail := cloneTail(v.tail, len(v.tail))
		newTail[i-off] = value
		return Vector[T]{props: v.props, length: v.length, shift: v.shift, root: v.root, tail: newTail}, nil
	}
	newRoot := v.assoc(i, value)
	return Vector[T]{props: v.props, length: v.length, shift: v.shift, root: newRoot, tail: v.tail}, nil
}

// Pop returns a copy of v with the last item removed. If v is empty, ErrEmptyCollection
// is returned, together with v itself.
func (v Vector[T]) Pop() (Vector[T], error) {
	if v.length == 0 {
		return v, ErrEmptyCollection
	}
	v.props = v.props.init()
	return v.popTail(), nil
}

// First returns the first item of v, if any.
func (v Vector[T]) First() maybe.Maybe[T] {
	if v.length == 0 {
		return maybe.Nothing[T]()
	}
	x, _ := v.Get(0)
	return maybe.Just(x)
}

// Last returns the last item of v, if any.
func (v Vector[T]) Last() maybe.Maybe[T] {
	if len(v.tail) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.tail[len(v.tail)-1])
}

// Degree returns the maximum number of children of a node of v's trie.
func (v Vector[T]) Degree() int {
	return v.props.init().degree
}

func (v Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= v.length {
		return fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, v.length)
	}
	return nil
}
