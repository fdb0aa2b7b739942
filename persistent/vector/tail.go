package vector

// The tail collects up to 2^bits trailing items before they are moved into the trie
// as a single full leaf. Only one in 2^bits pushes touches the trie; Pop mirrors this
// by draining the tail first and pulling back the rightmost leaf once the tail would
// become empty. A tail is never modified once it is part of a vector; each change
// produces a fresh copy of at most 2^bits items.

// tailOffset is the index of the first item in the tail, i.e. the number of items in
// the trie.
func (v Vector[T]) tailOffset() int {
	return v.length - len(v.tail)
}

func (v Vector[T]) tailFull() bool {
	return len(v.tail) >= v.degree
}

// cloneTail copies the first l items of tail into a new slice of length l, leaving
// room for one more item.
func cloneTail[T any](tail []T, l int) []T {
	newTail := make([]T, l, l+1)
	copy(newTail, tail[:min(l, len(tail))])
	return newTail
}

// pushTail returns a copy of v with value appended to the tail, which must not be full.
func (v Vector[T]) pushTail(value T) Vector[T] {
	newTail := cloneTail(v.tail, len(v.tail))
	newTail = append(newTail, value)
	return Vector[T]{props: v.props, length: v.length + 1, shift: v.shift, root: v.root, tail: newTail}
}

// graftTail moves a full tail into the trie and starts a new tail with value.
func (v Vector[T]) graftTail(value T) Vector[T] {
	assertThat(v.tailFull(), "attempt to move a partial tail into the trie")
	w := Vector[T]{props: v.props, length: v.length + 1, shift: v.shift, tail: []T{value}}
	switch trieSize := v.tailOffset(); {
	case v.root == nil: // tail becomes the root
		assertThat(trieSize == 0, "inconsistency: vector without root has items outside the tail")
		w.root = newLeaf(v.tail)
	case trieSize == v.capacity(v.shift): // root is full ⇒ grow by one level
		w.shift = v.shift + v.bits
		w.root = newInner(int(w.shift/v.bits), v.root, newPath(v.props, v.shift, v.tail))
		tracer().Debugf("trie is full, new height has shift=%d", w.shift)
	default: // still room below the root
		w.root = v.graft(v.tail)
	}
	return w
}

// popTail returns a copy of v without its last item. If the tail holds just this item,
// the rightmost leaf of the trie becomes the new tail.
func (v Vector[T]) popTail() Vector[T] {
	if len(v.tail) > 1 || v.root == nil {
		newTail := cloneTail(v.tail, len(v.tail)-1)
		if len(newTail) == 0 {
			return Vector[T]{props: v.props}
		}
		return Vector[T]{props: v.props, length: v.length - 1, shift: v.shift, root: v.root, tail: newTail}
	}
	root, leaf := v.detach()
	w := Vector[T]{props: v.props, length: v.length - 1, shift: v.shift, root: root, tail: leaf.leafs}
	if root == nil {
		w.shift = 0
	}
	for w.root != nil && !w.root.isLeaf() && len(w.root.children) == 1 {
		w.root = w.root.children[0]
		w.shift -= w.bits
		tracer().Debugf("root has a single child, new height has shift=%d", w.shift)
	}
	return w
}
