package vector

import "iter"

// An index i is routed through the trie by splitting it into digits of base 2^bits.
// At level `shift` the child to descend into is (i >> shift) & mask; at level 0
// the digit selects the slot within a leaf. Callers validate i against the vector's
// length beforehand.

func (p props) digit(i int, shift uint) int {
	return (i >> shift) & p.mask
}

// digits produces the pairs (shift, digit) for index i, from level `shift` down to
// the leaf level 0.
func (p props) digits(i int, shift uint) iter.Seq2[uint, int] {
	return func(yield func(uint, int) bool) {
		for level := shift; ; level -= p.bits {
			if !yield(level, p.digit(i, level)) || level == 0 {
				return
			}
		}
	}
}

// capacity is the number of items a completely filled sub-trie rooted at level
// `shift` holds.
func (p props) capacity(shift uint) int {
	return 1 << (shift + p.bits)
}

// level is the shift of a node with the given depth.
func (p props) level(depth int) uint {
	return uint(depth) * p.bits
}
