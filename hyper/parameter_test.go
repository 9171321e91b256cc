// Package hyper_test contains unit tests for Parameter construction and
// in-place updates.
package hyper_test

import (
	"testing"

	"github.com/katalvlaran/gramian/hyper"
	"github.com/stretchr/testify/require"
)

// TestNewRejectsOutOfDomain ensures construction fails outside the interval.
func TestNewRejectsOutOfDomain(t *testing.T) {
	_, err := hyper.New(0, hyper.Above(hyper.Open(0))) // scale-style domain (0,∞)
	require.ErrorIs(t, err, hyper.ErrOutOfDomain)      // 0 violates the open bound

	_, err = hyper.New(-1, hyper.Above(hyper.Closed(0))) // shift-style domain [0,∞)
	require.ErrorIs(t, err, hyper.ErrOutOfDomain)        // -1 violates the closed bound
}

// TestNewAcceptsInteriorValue ensures a valid value is stored unchanged.
func TestNewAcceptsInteriorValue(t *testing.T) {
	p, err := hyper.New(2.5, hyper.Above(hyper.Open(0)))
	require.NoError(t, err)
	require.Equal(t, 2.5, p.Value())
	require.False(t, p.IsFixed())
}

// TestSetRevalidates ensures Set enforces the domain and keeps the old
// value on failure.
func TestSetRevalidates(t *testing.T) {
	p, err := hyper.New(1, hyper.Above(hyper.Open(0)))
	require.NoError(t, err)

	require.NoError(t, p.Set(3)) // interior update succeeds
	require.Equal(t, 3.0, p.Value())

	err = p.Set(-2)                               // out-of-domain update
	require.ErrorIs(t, err, hyper.ErrOutOfDomain) // rejected
	require.Equal(t, 3.0, p.Value())              // stored value untouched
}

// TestFixedParameterRefusesSet ensures fixed parameters are immutable.
func TestFixedParameterRefusesSet(t *testing.T) {
	p, err := hyper.NewFixed(1, hyper.Unbounded())
	require.NoError(t, err)
	require.True(t, p.IsFixed())

	err = p.Set(2)
	require.ErrorIs(t, err, hyper.ErrFixed) // update refused
	require.Equal(t, 1.0, p.Value())        // value unchanged
}

// TestParameterEqualIsValueEquality ensures Equal ignores domains and flags.
func TestParameterEqualIsValueEquality(t *testing.T) {
	a, err := hyper.New(2, hyper.Above(hyper.Open(0)))
	require.NoError(t, err)
	b, err := hyper.NewFixed(2, hyper.Unbounded()) // different domain and fixed flag
	require.NoError(t, err)
	c, err := hyper.New(3, hyper.Above(hyper.Open(0)))
	require.NoError(t, err)

	require.True(t, a.Equal(b))  // same value ⇒ equal
	require.False(t, a.Equal(c)) // different value ⇒ not equal
	require.False(t, a.Equal(nil))
}
