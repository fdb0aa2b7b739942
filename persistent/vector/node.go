package vector

import (
	"fmt"
	"strings"
)

// vnode represents a node in the trie a vector is made of. It is one of two variants,
// told apart by depth: a leaf (depth 0) holds items, an inner node (depth > 0) holds
// links to children of depth-1. Nodes are never modified once they are linked into a trie.
//
// Leafs in a trie always are full. Inner nodes are packed from the left; only nodes
// on the rightmost path from the root may have fewer than 2^bits children.
type vnode[T any] struct {
	depth    int
	children []*vnode[T]
	leafs    []T
}

func newLeaf[T any](items []T) *vnode[T] {
	return &vnode[T]{leafs: items}
}

func newInner[T any](depth int, children ...*vnode[T]) *vnode[T] {
	return &vnode[T]{depth: depth, children: children}
}

func (node *vnode[T]) isLeaf() bool {
	return node.depth == 0
}

// clone creates a shallow copy of node, with room for `ext` additional children.
// Children are shared between node and its clone.
func (node *vnode[T]) clone(ext int) *vnode[T] {
	n := &vnode[T]{depth: node.depth}
	if node.isLeaf() {
		n.leafs = make([]T, len(node.leafs))
		copy(n.leafs, node.leafs)
		return n
	}
	n.children = make([]*vnode[T], len(node.children), len(node.children)+ext)
	copy(n.children, node.children)
	return n
}

// withSlot returns a copy of a leaf with item at slot i replaced by value.
func (node *vnode[T]) withSlot(i int, value T) *vnode[T] {
	assertThat(node.isLeaf(), "attempt to replace slot of inner node")
	cow := node.clone(0)
	cow.leafs[i] = value
	return cow
}

func (node *vnode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	if node.isLeaf() {
		for i, l := range node.leafs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString("▪︎")
		}
	}
	b.WriteByte(']')
	return b.String()
}

// ---------------------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.vector: "+msg, msgargs...)
		panic(msg)
	}
}
