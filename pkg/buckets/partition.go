package buckets

import (
	"math/big"
	"sort"
)

// Partition holds the exact bounds of a bucket set: bucket i covers
// [bounds[i], bounds[i+1]).
type Partition struct {
	bounds []*big.Int
}

// Len returns the number of buckets.
func (p *Partition) Len() int {
	return len(p.bounds) - 1
}

// Bounds returns the lower and upper bounds of bucket number 'bucket'.
func (p *Partition) Bounds(bucket int) (lower, upper *big.Int) {
	return new(big.Int).Set(p.bounds[bucket]), new(big.Int).Set(p.bounds[bucket+1])
}

// Find finds the number of the bucket that 'n' falls into. Values below
// zero give -1 and values past the last bound give Len().
func (p *Partition) Find(n *big.Int) int {
	if n.Sign() < 0 {
		return -1
	}

	if n.Cmp(p.bounds[len(p.bounds)-1]) >= 0 {
		return p.Len()
	}

	i := sort.Search(len(p.bounds), func(i int) bool {
		return p.bounds[i].Cmp(n) > 0
	})

	return i - 1
}
