package vector

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Check validates the structural invariants of v:
//
//   - all leafs are full and at the same depth
//   - every child of an inner node but the rightmost one is completely filled
//   - an inner root has at least 2 children
//   - the tail holds 1…2^bits items for a non-empty vector, and no items otherwise
//   - the item count of trie and tail matches v.Len()
//
// Check is meant for tests and debugging; vectors created through the API always pass.
func (v Vector[T]) Check() error {
	v.props = v.props.init()
	if v.bits == 0 || v.bits > maxBits || v.degree != 1<<v.bits || v.mask != v.degree-1 {
		return fmt.Errorf("%w: invalid degree parameters %+v", ErrCorrupt, v.props)
	}
	if len(v.tail) > v.degree {
		return fmt.Errorf("%w: tail holds %d items, degree is %d", ErrCorrupt, len(v.tail), v.degree)
	}
	if (len(v.tail) == 0) != (v.length == 0) {
		return fmt.Errorf("%w: tail holds %d items for length %d", ErrCorrupt, len(v.tail), v.length)
	}
	if v.shift%v.bits != 0 {
		return fmt.Errorf("%w: shift %d is not a multiple of %d", ErrCorrupt, v.shift, v.bits)
	}
	if v.root == nil {
		if v.shift != 0 || v.length != len(v.tail) {
			return fmt.Errorf("%w: vector without trie has shift=%d and length %d ≠ %d",
				ErrCorrupt, v.shift, v.length, len(v.tail))
		}
		return nil
	}
	if v.level(v.root.depth) != v.shift {
		return fmt.Errorf("%w: root depth %d does not match shift %d", ErrCorrupt, v.root.depth, v.shift)
	}
	if !v.root.isLeaf() && len(v.root.children) < 2 {
		return fmt.Errorf("%w: inner root has %d children", ErrCorrupt, len(v.root.children))
	}
	count, err := v.checkNode(v.root)
	if err != nil {
		return err
	}
	if count+len(v.tail) != v.length {
		return fmt.Errorf("%w: trie holds %d items, tail %d, length is %d",
			ErrCorrupt, count, len(v.tail), v.length)
	}
	return nil
}

// checkNode validates the sub-trie below node and returns its item count.
func (v Vector[T]) checkNode(node *vnode[T]) (int, error) {
	if node == nil {
		return 0, fmt.Errorf("%w: nil node", ErrCorrupt)
	}
	if node.isLeaf() {
		if len(node.leafs) != v.degree || node.children != nil {
			return 0, fmt.Errorf("%w: leaf %s is not full", ErrCorrupt, node)
		}
		return len(node.leafs), nil
	}
	if len(node.children) == 0 || len(node.children) > v.degree {
		return 0, fmt.Errorf("%w: inner node at depth %d has %d children",
			ErrCorrupt, node.depth, len(node.children))
	}
	var total int
	for i, child := range node.children {
		if child == nil || child.depth != node.depth-1 {
			return 0, fmt.Errorf("%w: child %d of node at depth %d is missing or misplaced",
				ErrCorrupt, i, node.depth)
		}
		count, err := v.checkNode(child)
		if err != nil {
			return 0, err
		}
		if i < len(node.children)-1 && count != v.capacity(v.level(child.depth)) {
			return 0, fmt.Errorf("%w: child %d of node at depth %d is partially filled",
				ErrCorrupt, i, node.depth)
		}
		total += count
	}
	return total, nil
}

// --- Print vector tree -----------------------------------------------------

// Dump renders the internal shape of v: its parameters, the tail and the trie with
// index ranges covered by every node.
func (v Vector[T]) Dump() string {
	v.props = v.props.init()
	header := fmt.Sprintf("Vector(length=%d, shift=%d, degree=%d)\n", v.length, v.shift, v.degree)
	tail := fmt.Sprintf("  tail=%v\n", v.tail)
	printer := tp.New()
	if v.root != nil {
		v.printNode(printer, v.root, 0)
	}
	return header + tail + printer.String()
}

func (v Vector[T]) printNode(printer tp.Tree, node *vnode[T], from int) {
	pp := v.capacity(v.level(node.depth))
	label := fmt.Sprintf("%s  %d…%d", node, from, from+pp-1)
	if node.isLeaf() {
		printer.AddNode(label)
		return
	}
	branch := printer.AddBranch(label)
	pp = v.capacity(v.level(node.depth - 1))
	for i, child := range node.children {
		v.printNode(branch, child, from+i*pp)
	}
}
