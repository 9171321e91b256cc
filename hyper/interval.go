package hyper

import (
	"math"
	"strconv"
	"strings"
)

// Bound is one endpoint of an Interval. An open bound excludes its value,
// a closed bound includes it.
type Bound struct {
	value float64
	open  bool
}

// Open returns a bound that excludes v, as in (v, ·) or (·, v).
func Open(v float64) Bound { return Bound{value: v, open: true} }

// Closed returns a bound that includes v, as in [v, ·] or (·, v].
func Closed(v float64) Bound { return Bound{value: v, open: false} }

// Value reports the endpoint value.
func (b Bound) Value() float64 { return b.value }

// IsOpen reports whether the endpoint excludes its value.
func (b Bound) IsOpen() bool { return b.open }

// Interval is a validation domain over float64. The zero Interval is
// unbounded and contains every finite value.
//
// NaN is never contained, regardless of bounds: a hyperparameter that is
// not a number is always a violation.
type Interval struct {
	lower *Bound
	upper *Bound
}

// Unbounded returns the interval (-∞, +∞).
func Unbounded() Interval { return Interval{} }

// Above returns an interval bounded below by b: (b,∞) or [b,∞).
func Above(b Bound) Interval { return Interval{lower: &b} }

// Below returns an interval bounded above by b: (-∞,b) or (-∞,b].
func Below(b Bound) Interval { return Interval{upper: &b} }

// Between returns an interval with both endpoints.
// lo.Value() must not exceed hi.Value(); the constructor does not reorder.
func Between(lo, hi Bound) Interval { return Interval{lower: &lo, upper: &hi} }

// Contains reports whether v lies inside the interval.
// Complexity: O(1).
func (in Interval) Contains(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if in.lower != nil {
		if in.lower.open && v <= in.lower.value {
			return false
		}
		if !in.lower.open && v < in.lower.value {
			return false
		}
	}
	if in.upper != nil {
		if in.upper.open && v >= in.upper.value {
			return false
		}
		if !in.upper.open && v > in.upper.value {
			return false
		}
	}

	return true
}

// String renders the interval in standard mathematical notation,
// e.g. "(0,∞)" or "[0,1]".
func (in Interval) String() string {
	var sb strings.Builder
	if in.lower == nil {
		sb.WriteString("(-∞")
	} else if in.lower.open {
		sb.WriteByte('(')
		sb.WriteString(formatEndpoint(in.lower.value))
	} else {
		sb.WriteByte('[')
		sb.WriteString(formatEndpoint(in.lower.value))
	}
	sb.WriteByte(',')
	if in.upper == nil {
		sb.WriteString("∞)")
	} else {
		sb.WriteString(formatEndpoint(in.upper.value))
		if in.upper.open {
			sb.WriteByte(')')
		} else {
			sb.WriteByte(']')
		}
	}

	return sb.String()
}

func formatEndpoint(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
