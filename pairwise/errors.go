package pairwise

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates two shape quantities disagree. Every
	// occurrence is wrapped with the names and values of both quantities.
	ErrDimensionMismatch = errors.New("pairwise: dimension mismatch")

	// ErrNilKernel indicates a nil kernel was passed to an engine operation.
	ErrNilKernel = errors.New("pairwise: nil kernel")

	// ErrNilMatrix indicates a nil input or destination matrix.
	ErrNilMatrix = errors.New("pairwise: nil matrix")

	// ErrBadOrientation indicates an Orientation value outside
	// {RowSamples, ColSamples}.
	ErrBadOrientation = errors.New("pairwise: unknown orientation")
)

// pairwiseErrorf tags err with the failing operation, preserving the
// sentinel for errors.Is.
func pairwiseErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// mismatchf builds a DimensionMismatch naming the two disagreeing
// quantities, e.g. mismatchf("rows of K", 3, "sample count of X", 5).
func mismatchf(aName string, a int, bName string, b int) error {
	return fmt.Errorf("%s (%d) vs %s (%d): %w", aName, a, bName, b, ErrDimensionMismatch)
}
