package vector

import "fmt"

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used for variables holding clones of nodes.

- Every modification of the trie follows the same pattern: walk from the root towards
  an index and record the path, create a modified copy of the bottom-most node, then
  fold the path from the bottom up, cloning every parent and re-linking it to its
  new child. Siblings off the path are shared, not copied.

*/

// slot holds a step of a path: a node and the index of the child (or item) taken at it.
type slot[T any] struct {
	node  *vnode[T]
	index int
}

func (s slot[T]) String() string {
	return fmt.Sprintf("%d@%s", s.index, s.node)
}

// slotPath is a list of slots, denoting the path from the root down to a leaf slot.
type slotPath[T any] []slot[T]

func (path slotPath[T]) last() slot[T] {
	if len(path) == 0 {
		return slot[T]{}
	}
	return path[len(path)-1]
}

func (path slotPath[T]) dropLast() slotPath[T] {
	if len(path) == 0 {
		return path
	}
	return path[:len(path)-1]
}

// foldR applies function f on pairs (parent,child) of slots of path.
// Application starts from the right ('R'), which corresponds to the bottom-most item of the path
// (often a leaf of the tree). zero is an element to apply as `child` in the rightmost call
// of f(parent,child). If path is empty, zero will be returned, otherwise the value returned from
// the final call to f will be returned.
func (path slotPath[T]) foldR(f func(slot[T], slot[T]) slot[T], zero slot[T]) slot[T] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

// pathTo records the path from the root towards item i. The walk stops early at an
// inner node which has no child for i's digit yet; this happens only when i is the
// first index past the trie's items.
func (v Vector[T]) pathTo(i int) slotPath[T] {
	path := make(slotPath[T], 0, v.shift/v.bits+1)
	node := v.root
	for level, d := range v.digits(i, v.shift) {
		path = append(path, slot[T]{node: node, index: d})
		if level == 0 || d >= len(node.children) {
			break
		}
		node = node.children[d]
	}
	return path
}

// cloneSeam creates a copy of parent.node with child linked at parent.index.
// An index one past the last child appends child; a nil child.node detaches the
// rightmost child. A parent left without children vanishes, i.e. the resulting
// slot holds no node.
func cloneSeam[T any](parent, child slot[T]) slot[T] {
	assertThat(parent.node != nil, "inconsistency: parent of a child is never nil")
	assertThat(!parent.node.isLeaf(), "inconsistency: parent of a child is never a leaf")
	cow := parent.node.clone(1)
	switch {
	case child.node == nil:
		assertThat(parent.index == len(cow.children)-1, "attempt to detach child other than the rightmost")
		cow.children = cow.children[:parent.index]
		if len(cow.children) == 0 {
			return slot[T]{index: parent.index}
		}
	case parent.index == len(cow.children):
		cow.children = append(cow.children, child.node)
	default:
		cow.children[parent.index] = child.node
	}
	return slot[T]{node: cow, index: parent.index}
}

// newPath fabricates a chain of single-child inner nodes from level `shift` down to a
// new leaf holding items.
func newPath[T any](p props, shift uint, items []T) *vnode[T] {
	node := newLeaf(items)
	for level := p.bits; level <= shift; level += p.bits {
		node = newInner(int(level/p.bits), node)
	}
	return node
}

// --- Path copying ----------------------------------------------------------

// assoc returns a new root where the trie item at index i is replaced by value.
func (v Vector[T]) assoc(i int, value T) *vnode[T] {
	path := v.pathTo(i)
	hit := path.last()
	assertThat(hit.node != nil && hit.node.isLeaf(), "path for index %d does not end in a leaf", i)
	cow := hit.node.withSlot(hit.index, value)
	return path.dropLast().foldR(cloneSeam[T], slot[T]{node: cow, index: hit.index}).node
}

// graft returns a new root with a leaf holding items appended at the next free position
// of the trie. The trie must have room at its current height.
func (v Vector[T]) graft(items []T) *vnode[T] {
	at := v.tailOffset()
	path := v.pathTo(at)
	parent := path.last()
	assertThat(!parent.node.isLeaf() && parent.index == len(parent.node.children),
		"no free slot for leaf at index %d", at)
	chain := newPath(v.props, v.level(parent.node.depth)-v.bits, items)
	tracer().Debugf("graft leaf at index %d below %s", at, parent)
	return path.foldR(cloneSeam[T], slot[T]{node: chain}).node
}

// detach returns a new root without the rightmost leaf, together with this leaf.
// The new root is nil if the leaf was the only one in the trie.
func (v Vector[T]) detach() (*vnode[T], *vnode[T]) {
	path := v.pathTo(v.tailOffset() - 1)
	leaf := path.last().node
	assertThat(leaf != nil && leaf.isLeaf(), "rightmost path does not end in a leaf")
	root := path.dropLast().foldR(cloneSeam[T], slot[T]{}).node
	tracer().Debugf("detached rightmost leaf %s", leaf)
	return root, leaf
}
