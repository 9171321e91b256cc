// Package hyper_test contains unit tests for Interval and Bound semantics.
package hyper_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gramian/hyper"
	"github.com/stretchr/testify/require"
)

// TestUnboundedContainsEverythingFinite verifies the zero/unbounded interval.
func TestUnboundedContainsEverythingFinite(t *testing.T) {
	in := hyper.Unbounded()

	require.True(t, in.Contains(0))           // origin
	require.True(t, in.Contains(-1e300))      // very negative
	require.True(t, in.Contains(1e300))       // very positive
	require.True(t, in.Contains(math.Inf(1))) // +Inf is inside (-∞,∞)
	require.False(t, in.Contains(math.NaN())) // NaN is never contained
}

// TestOpenLowerBound verifies strict exclusion of an open lower endpoint.
func TestOpenLowerBound(t *testing.T) {
	in := hyper.Above(hyper.Open(0)) // (0, ∞)

	require.False(t, in.Contains(0))    // endpoint excluded
	require.False(t, in.Contains(-0.5)) // below endpoint
	require.True(t, in.Contains(1e-12)) // barely above endpoint
	require.True(t, in.Contains(7))     // well inside
}

// TestClosedLowerBound verifies inclusion of a closed lower endpoint.
func TestClosedLowerBound(t *testing.T) {
	in := hyper.Above(hyper.Closed(0)) // [0, ∞)

	require.True(t, in.Contains(0))     // endpoint included
	require.False(t, in.Contains(-0.1)) // below endpoint
}

// TestBetweenMixedBounds verifies a half-open interval (0,1].
func TestBetweenMixedBounds(t *testing.T) {
	in := hyper.Between(hyper.Open(0), hyper.Closed(1)) // (0,1]

	require.False(t, in.Contains(0))   // open lower endpoint excluded
	require.True(t, in.Contains(0.5))  // interior
	require.True(t, in.Contains(1))    // closed upper endpoint included
	require.False(t, in.Contains(1.1)) // above upper endpoint
}

// TestBelowUpperBound verifies an upper-only interval (-∞, 2).
func TestBelowUpperBound(t *testing.T) {
	in := hyper.Below(hyper.Open(2))

	require.True(t, in.Contains(-100)) // anything below 2
	require.False(t, in.Contains(2))   // endpoint excluded
	require.False(t, in.Contains(3))   // above endpoint
}

// TestIntervalString verifies the mathematical rendering of intervals.
func TestIntervalString(t *testing.T) {
	require.Equal(t, "(-∞,∞)", hyper.Unbounded().String())
	require.Equal(t, "(0,∞)", hyper.Above(hyper.Open(0)).String())
	require.Equal(t, "[0,∞)", hyper.Above(hyper.Closed(0)).String())
	require.Equal(t, "(0,1]", hyper.Between(hyper.Open(0), hyper.Closed(1)).String())
	require.Equal(t, "(-∞,2)", hyper.Below(hyper.Open(2)).String())
}
