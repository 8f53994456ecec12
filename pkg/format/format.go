// Package format renders magnitudes, counts and durations as short strings.
//
// Negative values are formatted as their magnitude with a leading '-'.
// NaN renders as "NaN" and infinities as "+Inf" or "-Inf".
package format

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

const (
	micro = 1e-6
	kilo  = 1e3
	mega  = 1e6
)

// Nano formats a value on the nano axis. Values under 1e-6 are shown in
// micro units with four decimals.
func Nano(v float64) string {
	if s, ok := special(v); ok {
		return s
	}

	switch {
	case v == 0:
		return "0"
	case v < 0:
		return "-" + Nano(-v)
	case v < micro:
		return fmt.Sprintf("%.4fµ", v*mega)
	case v >= mega:
		return fmt.Sprintf("%.2fM", v/mega)
	case v >= kilo:
		return fmt.Sprintf("%.2fk", v/kilo)
	default:
		return fmt.Sprintf("%.3f", v)
	}
}

// Number formats a count with k and M suffixes.
func Number(v float64) string {
	if s, ok := special(v); ok {
		return s
	}

	switch {
	case v < 0:
		return "-" + Number(-v)
	case v >= mega:
		return fmt.Sprintf("%.2fM", v/mega)
	case v >= kilo:
		return fmt.Sprintf("%.2fk", v/kilo)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// Cooldown formats a duration in seconds as "Ns", "Mm Ss" or "Hh Mm".
func Cooldown(seconds int64) string {
	if seconds < 0 {
		return "-" + cooldown(uint64(-(seconds + 1))+1)
	}
	return cooldown(uint64(seconds))
}

func cooldown(s uint64) string {
	switch {
	case s < 60:
		return fmt.Sprintf("%ds", s)
	case s < 3600:
		return fmt.Sprintf("%dm %ds", s/60, s%60)
	default:
		return fmt.Sprintf("%dh %dm", s/3600, s%3600/60)
	}
}

// SI formats v with an SI prefix and unit, e.g. "1.20 kH/s".
func SI(v float64, unit string) string {
	if s, ok := special(v); ok {
		return s + " " + unit
	}

	sv, prefix := humanize.ComputeSI(v)
	return fmt.Sprintf("%.2f %s%s", sv, prefix, unit)
}

func special(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "+Inf", true
	case math.IsInf(v, -1):
		return "-Inf", true
	}
	return "", false
}
