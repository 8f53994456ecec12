package buckets

import (
	"math/big"

	"github.com/pkg/errors"
)

const (
	// DomainBits is the width of the partitioned domain: [0, 2^DomainBits).
	DomainBits = 128

	// DefaultFloor is the exponent of the upper bound of the first bucket,
	// which covers [0, 2^DefaultFloor).
	DefaultFloor = 79

	// MaxBuckets caps the total number of buckets a region table may
	// produce, the leading [0, 2^floor) bucket included.
	MaxBuckets = 1 << 16
)

var (
	ErrNoRegions = errors.New("buckets: no regions configured")
	ErrBadCount  = errors.New("buckets: region count must be positive")
	ErrBadRange  = errors.New("buckets: region range is empty or outside the domain")
	ErrGap       = errors.New("buckets: regions are not contiguous")
	ErrUneven    = errors.New("buckets: region span is not divisible by its count")
	ErrTooMany   = errors.New("buckets: region table produces too many buckets")
)

// Region describes the sub-range [2^Begin, 2^End) split into Count
// equal-width buckets.
type Region struct {
	Begin uint `yaml:"begin" json:"begin"`
	End   uint `yaml:"end" json:"end"`
	Count int  `yaml:"count" json:"count"`
}

// DefaultRegions returns the reference region table. Resolution is finest
// between 2^100 and 2^108 and coarsens towards both ends of the domain.
func DefaultRegions() []Region {
	return []Region{
		{Begin: 79, End: 88, Count: 1},
		{Begin: 88, End: 92, Count: 2},
		{Begin: 92, End: 96, Count: 4},
		{Begin: 96, End: 100, Count: 8},
		{Begin: 100, End: 104, Count: 16},
		{Begin: 104, End: 108, Count: 16},
		{Begin: 108, End: 112, Count: 8},
		{Begin: 112, End: 116, Count: 4},
		{Begin: 116, End: 120, Count: 2},
		{Begin: 120, End: 128, Count: 1},
	}
}

// span returns the exact bounds of r and the width of each of its buckets.
func (r Region) span() (lower, upper, width *big.Int) {
	lower = pow2(r.Begin)
	upper = pow2(r.End)

	width = new(big.Int).Sub(upper, lower)
	width.Quo(width, big.NewInt(int64(r.Count)))

	return lower, upper, width
}

func (r Region) validate() error {
	if r.Count <= 0 {
		return errors.Wrapf(ErrBadCount, "region [%d, %d) has count %d", r.Begin, r.End, r.Count)
	}

	if r.Begin >= r.End || r.End > DomainBits {
		return errors.Wrapf(ErrBadRange, "region [%d, %d)", r.Begin, r.End)
	}

	lower, upper := pow2(r.Begin), pow2(r.End)
	size := new(big.Int).Sub(upper, lower)
	if new(big.Int).Rem(size, big.NewInt(int64(r.Count))).Sign() != 0 {
		return errors.Wrapf(ErrUneven, "region [%d, %d) with count %d", r.Begin, r.End, r.Count)
	}

	return nil
}

func validateRegions(floor uint, regions []Region) error {
	if len(regions) == 0 {
		return ErrNoRegions
	}

	if regions[0].Begin != floor {
		return errors.Wrapf(ErrGap, "first region begins at %d, expected %d", regions[0].Begin, floor)
	}

	total := 1
	for i, r := range regions {
		if err := r.validate(); err != nil {
			return errors.Wrapf(err, "region %d", i)
		}

		if r.Count > MaxBuckets-total {
			return errors.Wrapf(ErrTooMany, "region %d adds %d buckets to %d, limit is %d",
				i, r.Count, total, MaxBuckets)
		}
		total += r.Count

		if i > 0 && regions[i-1].End != r.Begin {
			return errors.Wrapf(ErrGap, "region %d ends at %d, region %d begins at %d",
				i-1, regions[i-1].End, i, r.Begin)
		}
	}

	return nil
}

func pow2(exp uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), exp)
}
