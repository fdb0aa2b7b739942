package vector

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

const (
	defaultBits uint = 5 // will produce nodes with degree 2 ^ 5 = 32
	maxBits     uint = 5
)

// props holds the shape parameters of a vector's trie. The zero value is
// replaced by the defaults on first use.
type props struct {
	bits   uint // number of bits to use per level
	degree int  // degree is always 2 ^ bits
	mask   int  // mask is degree - 1, i.e. a bit pattern with trailing 1s of length 'bits'
}

func withBits(n uint) props {
	p := props{bits: n}
	p.degree = 1 << p.bits
	p.mask = p.degree - 1
	return p
}

func (p props) init() props {
	if p.bits == 0 {
		return withBits(defaultBits)
	}
	return p
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// BitsPerLevel is an option to indirectly set the degree of the underlying trie for a vector.
// The degree of the trie will be 2^n. Accepted exponents are [1…5]; default is 5, i.e.
// a degree of 32. Values outside this range are clamped.
//
// Use it like this:
//
//     vec := vector.Immutable[int](vector.BitsPerLevel(2))
//
func BitsPerLevel(n int) Option {
	conf := func(p props) props {
		if n <= 0 {
			n = 1
		} else if n > int(maxBits) {
			n = int(maxBits)
		}
		return withBits(uint(n))
	}
	return Option{config: conf}
}

// BranchingFactor sets the degree of the underlying trie directly. k should be a
// power of 2 in [2…32]; other values are rounded down to the next power of 2 and
// clamped to this range.
func BranchingFactor(k int) Option {
	conf := func(p props) props {
		if k < 2 {
			k = 2
		}
		if popcount.Count(uint64(k)) != 1 {
			tracer().Infof("vector: branching factor %d is not a power of 2, rounding down", k)
		}
		n := uint(bits.Len(uint(k))) - 1
		if n > maxBits {
			n = maxBits
		}
		return withBits(n)
	}
	return Option{config: conf}
}
