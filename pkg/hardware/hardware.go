// Package hardware holds reference figures for hashing hardware.
package hardware

import (
	"github.com/govalues/decimal"
	"github.com/pkg/errors"
)

// Option is one piece of hardware: purchase cost in currency units, power
// draw in watts and throughput in operations per second.
type Option struct {
	Name     string          `json:"name"`
	Cost     decimal.Decimal `json:"cost"`
	Power    float64         `json:"power"`
	TxPerSec float64         `json:"txPerSec"`
}

var options = []Option{
	{Name: "GTX 1080", Cost: decimal.MustParse("115"), Power: 150, TxPerSec: 3.32},
	{Name: "RTX 2080 Ti", Cost: decimal.MustParse("350"), Power: 250, TxPerSec: 5.48},
	{Name: "Tesla V100", Cost: decimal.MustParse("700"), Power: 300, TxPerSec: 7.25},
	{Name: "Tesla P100", Cost: decimal.MustParse("350"), Power: 140, TxPerSec: 3.63},
	{Name: "200W ASIC (theoretical)", Cost: decimal.MustParse("500"), Power: 200, TxPerSec: 1200},
}

// Options returns a copy of the reference table in its fixed order.
func Options() []Option {
	res := make([]Option, len(options))
	copy(res, options)
	return res
}

// Lookup finds an option by name.
func Lookup(name string) (Option, bool) {
	for _, o := range options {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

// TxPerWatt is throughput per watt of power draw.
func (o Option) TxPerWatt() float64 {
	return o.TxPerSec / o.Power
}

// CostPerTx is the purchase cost of one operation per second of throughput.
func (o Option) CostPerTx() (decimal.Decimal, error) {
	tx, err := decimal.NewFromFloat64(o.TxPerSec)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "%s: bad throughput %v", o.Name, o.TxPerSec)
	}

	res, err := o.Cost.Quo(tx)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "%s: cost per throughput", o.Name)
	}

	return res.Round(2), nil
}
