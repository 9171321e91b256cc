package pairwise

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gramian/kernel"
)

// Centralized fail-fast checks shared by the engine facades. Validators
// return plain sentinels (or mismatchf-wrapped sentinels that already name
// both disagreeing quantities); facades add the operation tag.

// validateKernel rejects a nil kernel.
func validateKernel(k kernel.Kernel) error {
	if k == nil {
		return ErrNilKernel
	}

	return nil
}

// validateMatrix rejects a nil matrix.
func validateMatrix(x *mat.Dense) error {
	if x == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateOrientation rejects values outside {RowSamples, ColSamples}.
func validateOrientation(o Orientation) error {
	if !o.valid() {
		return ErrBadOrientation
	}

	return nil
}

// validateSquareDst checks that dst is n×n for the single-dataset overload.
// Rows and columns are reported independently, each naming the quantity
// pair that disagrees.
func validateSquareDst(dst *mat.Dense, n int) error {
	if dst == nil {
		return ErrNilMatrix
	}
	r, c := dst.Dims()
	if r != n {
		return mismatchf("rows of K", r, "sample count of X", n)
	}
	if c != n {
		return mismatchf("cols of K", c, "sample count of X", n)
	}

	return nil
}

// validateCrossDst checks that dst is n×m for the two-dataset overload,
// each dimension reported independently.
func validateCrossDst(dst *mat.Dense, n, m int) error {
	if dst == nil {
		return ErrNilMatrix
	}
	r, c := dst.Dims()
	if r != n {
		return mismatchf("rows of K", r, "sample count of X", n)
	}
	if c != m {
		return mismatchf("cols of K", c, "sample count of Y", m)
	}

	return nil
}

// validateSameFeatures checks that two datasets agree on the feature
// dimension implied by o.
func validateSameFeatures(o Orientation, x, y *mat.Dense) error {
	dx, dy := o.features(x), o.features(y)
	if dx != dy {
		return mismatchf("feature dimension of X", dx, "feature dimension of Y", dy)
	}

	return nil
}
