package vector

import (
	"fmt"
	"iter"
	"strings"
)

// All returns an iterator over index/item pairs of v, in index order.
// Iterators are restartable: every call to the returned sequence walks the items anew,
// and any number of iterations may run concurrently.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		emit := func(x T) bool {
			ok := yield(i, x)
			i++
			return ok
		}
		if v.root != nil && !forEachItem(v.root, emit) {
			return
		}
		for _, x := range v.tail {
			if !emit(x) {
				return
			}
		}
	}
}

// Values returns an iterator over the items of v, in index order.
func (v Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/item pairs of v, from the last item to the first.
func (v Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := v.length - 1
		emit := func(x T) bool {
			ok := yield(i, x)
			i--
			return ok
		}
		for j := len(v.tail) - 1; j >= 0; j-- {
			if !emit(v.tail[j]) {
				return
			}
		}
		if v.root != nil {
			forEachItemReverse(v.root, emit)
		}
	}
}

// ToSlice returns the items of v in a newly allocated slice.
func (v Vector[T]) ToSlice() []T {
	s := make([]T, 0, v.length)
	for x := range v.Values() {
		s = append(s, x)
	}
	return s
}

// forEachItem walks the items below node in-order.
// Iteration stops early if callback returns false.
func forEachItem[T any](node *vnode[T], fn func(T) bool) bool {
	if node.isLeaf() {
		for _, x := range node.leafs {
			if !fn(x) {
				return false
			}
		}
		return true
	}
	for _, child := range node.children {
		if !forEachItem(child, fn) {
			return false
		}
	}
	return true
}

func forEachItemReverse[T any](node *vnode[T], fn func(T) bool) bool {
	if node.isLeaf() {
		for i := len(node.leafs) - 1; i >= 0; i-- {
			if !fn(node.leafs[i]) {
				return false
			}
		}
		return true
	}
	for i := len(node.children) - 1; i >= 0; i-- {
		if !forEachItemReverse(node.children[i], fn) {
			return false
		}
	}
	return true
}

// String renders v as a list of items, e.g. "[1 2 3]".
func (v Vector[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i, x := range v.All() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteByte(']')
	return b.String()
}
