// Package buckets partitions the domain [0, 2^128) into an ordered set of
// contiguous buckets and projects their bounds onto the nano display axis.
package buckets

import (
	"fmt"
	"math/big"
)

// NanoScale is the divisor that maps exact domain values onto the nano axis.
const NanoScale = 1e30

// Bucket is one partition of the domain on the nano axis, covering
// [MinNano, MaxNano).
type Bucket struct {
	Index   int     `json:"index"`
	MinNano float64 `json:"minNano"`
	MaxNano float64 `json:"maxNano"`
	Toggled bool    `json:"toggled"`
}

// Builder expands a validated region table into buckets.
type Builder struct {
	floor   uint
	regions []Region
}

// NewBuilder validates the region table. The first bucket always covers
// [0, 2^floor) and the regions must start at floor and follow each other
// without gaps.
func NewBuilder(floor uint, regions []Region) (*Builder, error) {
	if err := validateRegions(floor, regions); err != nil {
		return nil, err
	}

	rs := make([]Region, len(regions))
	copy(rs, regions)

	return &Builder{floor: floor, regions: rs}, nil
}

// MustNewBuilder is like NewBuilder but panics on an invalid table.
func MustNewBuilder(floor uint, regions []Region) *Builder {
	b, err := NewBuilder(floor, regions)
	if err != nil {
		panic(fmt.Sprintf("buckets: invalid region table: %v", err))
	}
	return b
}

// Build returns the buckets of the reference configuration.
func Build() []Bucket {
	return MustNewBuilder(DefaultFloor, DefaultRegions()).Build()
}

// Len returns the number of buckets the builder produces.
func (b *Builder) Len() int {
	n := 1
	for _, r := range b.regions {
		n += r.Count
	}
	return n
}

// Regions returns a copy of the region table.
func (b *Builder) Regions() []Region {
	rs := make([]Region, len(b.regions))
	copy(rs, b.regions)
	return rs
}

// Partition computes the exact bucket bounds.
func (b *Builder) Partition() *Partition {
	bounds := make([]*big.Int, 0, b.Len()+1)
	bounds = append(bounds, new(big.Int), pow2(b.floor))

	for _, r := range b.regions {
		lower, _, width := r.span()
		for i := 1; i <= r.Count; i++ {
			v := new(big.Int).Mul(width, big.NewInt(int64(i)))
			bounds = append(bounds, v.Add(v, lower))
		}
	}

	return &Partition{bounds: bounds}
}

// Build returns a freshly allocated bucket slice. All arithmetic happens on
// exact integers; the nano projection is applied to the finished bounds, so
// adjacent buckets share the very same float64 boundary.
func (b *Builder) Build() []Bucket {
	p := b.Partition()

	nanos := make([]float64, len(p.bounds))
	for i, v := range p.bounds {
		nanos[i] = ToNano(v)
	}

	res := make([]Bucket, p.Len())
	for i := range res {
		res[i] = Bucket{
			Index:   i,
			MinNano: nanos[i],
			MaxNano: nanos[i+1],
		}
	}

	return res
}

// ToNano projects an exact domain value onto the nano axis. The integer is
// rounded to the nearest float64 before the division.
func ToNano(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()
	return f / NanoScale
}
