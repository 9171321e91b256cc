package pairwise

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gramian/kernel"
)

// Pairwise evaluates κ on two feature vectors. The only validation is the
// length check — unequal lengths fail with ErrDimensionMismatch naming both
// lengths. Leaf kernels aggregate their per-component terms strictly
// left-to-right, so repeated calls are bit-for-bit reproducible.
func Pairwise(k kernel.Kernel, x, y []float64) (float64, error) {
	const op = "Pairwise"
	if err := validateKernel(k); err != nil {
		return 0, pairwiseErrorf(op, err)
	}
	if len(x) != len(y) {
		return 0, pairwiseErrorf(op, mismatchf("length of x", len(x), "length of y", len(y)))
	}

	return k.Eval(x, y), nil
}

// PairwiseMatrix computes the n×n pairwise matrix of one dataset into a
// freshly allocated matrix. See PairwiseMatrixInto for the contract.
func PairwiseMatrix(o Orientation, k kernel.Kernel, x *mat.Dense, symmetrize bool) (*mat.Dense, error) {
	const op = "PairwiseMatrix"
	if err := validateOrientation(o); err != nil {
		return nil, pairwiseErrorf(op, err)
	}
	if err := validateKernel(k); err != nil {
		return nil, pairwiseErrorf(op, err)
	}
	if err := validateMatrix(x); err != nil {
		return nil, pairwiseErrorf(op, err)
	}
	n := o.samples(x)
	dst := mat.NewDense(n, n, nil)
	if err := PairwiseMatrixInto(o, k, x, dst, symmetrize); err != nil {
		return nil, err
	}

	return dst, nil
}

// PairwiseMatrixInto computes the n×n pairwise matrix of one dataset into
// the caller-supplied destination, which the call owns exclusively for its
// duration. dst must be n×n for the sample count implied by o; each
// dimension is validated independently.
//
// Only the upper triangle (including the diagonal) is computed. With
// symmetrize=true the triangle is mirrored into the lower half on return;
// otherwise the lower half is undefined and must not be read.
//
// Kernels decomposable over the inner-product or squared-distance base (see
// kernel.Decompose) are routed through the BLAS accelerator and an
// elementwise kappa pass; all other kernels use the generic per-pair loop.
func PairwiseMatrixInto(o Orientation, k kernel.Kernel, x, dst *mat.Dense, symmetrize bool) error {
	const op = "PairwiseMatrixInto"
	if err := validateOrientation(o); err != nil {
		return pairwiseErrorf(op, err)
	}
	if err := validateKernel(k); err != nil {
		return pairwiseErrorf(op, err)
	}
	if err := validateMatrix(x); err != nil {
		return pairwiseErrorf(op, err)
	}
	n := o.samples(x)
	if err := validateSquareDst(dst, n); err != nil {
		return pairwiseErrorf(op, err)
	}

	if d, ok := kernel.Decompose(k); ok {
		return acceleratedInto(o, d, x, dst, n, symmetrize)
	}

	// Generic path: upper triangle of per-pair evaluations.
	var bufI, bufJ []float64
	if o == ColSamples {
		dim := o.features(x)
		bufI = make([]float64, dim)
		bufJ = make([]float64, dim)
	}
	for j := 0; j < n; j++ {
		xj := o.sample(x, j, bufJ)
		for i := 0; i <= j; i++ {
			xi := o.sample(x, i, bufI)
			dst.Set(i, j, k.Eval(xi, xj))
		}
	}
	if symmetrize {
		mirrorUpper(dst, n)
	}

	return nil
}

// PairwiseMatrixCross computes the n×m pairwise matrix over two datasets
// into a freshly allocated matrix. See PairwiseMatrixCrossInto.
func PairwiseMatrixCross(o Orientation, k kernel.Kernel, x, y *mat.Dense) (*mat.Dense, error) {
	const op = "PairwiseMatrixCross"
	if err := validateOrientation(o); err != nil {
		return nil, pairwiseErrorf(op, err)
	}
	if err := validateKernel(k); err != nil {
		return nil, pairwiseErrorf(op, err)
	}
	if err := validateMatrix(x); err != nil {
		return nil, pairwiseErrorf(op, err)
	}
	if err := validateMatrix(y); err != nil {
		return nil, pairwiseErrorf(op, err)
	}
	dst := mat.NewDense(o.samples(x), o.samples(y), nil)
	if err := PairwiseMatrixCrossInto(o, k, x, y, dst); err != nil {
		return nil, err
	}

	return dst, nil
}

// PairwiseMatrixCrossInto computes the n×m pairwise matrix over two
// datasets into the caller-supplied destination — the full dense grid, no
// symmetry assumed. X and Y must agree on the feature dimension implied by
// o; dst must be n×m; every mismatch is reported independently.
func PairwiseMatrixCrossInto(o Orientation, k kernel.Kernel, x, y, dst *mat.Dense) error {
	const op = "PairwiseMatrixCrossInto"
	if err := validateOrientation(o); err != nil {
		return pairwiseErrorf(op, err)
	}
	if err := validateKernel(k); err != nil {
		return pairwiseErrorf(op, err)
	}
	if err := validateMatrix(x); err != nil {
		return pairwiseErrorf(op, err)
	}
	if err := validateMatrix(y); err != nil {
		return pairwiseErrorf(op, err)
	}
	if err := validateSameFeatures(o, x, y); err != nil {
		return pairwiseErrorf(op, err)
	}
	n, m := o.samples(x), o.samples(y)
	if err := validateCrossDst(dst, n, m); err != nil {
		return pairwiseErrorf(op, err)
	}

	if d, ok := kernel.Decompose(k); ok {
		return acceleratedCrossInto(o, d, x, y, dst, n, m)
	}

	var bufI, bufJ []float64
	if o == ColSamples {
		dim := o.features(x)
		bufI = make([]float64, dim)
		bufJ = make([]float64, dim)
	}
	for i := 0; i < n; i++ {
		xi := o.sample(x, i, bufI)
		for j := 0; j < m; j++ {
			yj := o.sample(y, j, bufJ)
			dst.Set(i, j, k.Eval(xi, yj))
		}
	}

	return nil
}

// acceleratedInto is the single-dataset fast path: one Syrk pass for the
// base matrix, the squared-distance rewrite when the base requires it, then
// the kappa transfer — three dense passes, never a per-pair kernel call.
// The intermediate (unsymmetrized, pre-kappa) values live only in dst's
// upper triangle and are fully rewritten before return.
func acceleratedInto(o Orientation, d kernel.Decomposable, x, dst *mat.Dense, n int, symmetrize bool) error {
	if err := GramianInto(o, x, dst, false); err != nil {
		return err
	}
	if d.Base() == kernel.BaseSquaredDistance {
		xtx, err := DotVectors(o, x)
		if err != nil {
			return err
		}
		if err = SquaredDistanceInto(dst, xtx, false); err != nil {
			return err
		}
	}
	for j := 0; j < n; j++ {
		for i := 0; i <= j; i++ {
			dst.Set(i, j, d.Kappa(dst.At(i, j)))
		}
	}
	if symmetrize {
		mirrorUpper(dst, n)
	}

	return nil
}

// acceleratedCrossInto is the two-dataset fast path: one Gemm pass, the
// squared-distance rewrite when required, then the kappa transfer over the
// full grid.
func acceleratedCrossInto(o Orientation, d kernel.Decomposable, x, y, dst *mat.Dense, n, m int) error {
	if err := GramianCrossInto(o, x, y, dst); err != nil {
		return err
	}
	if d.Base() == kernel.BaseSquaredDistance {
		xtx, err := DotVectors(o, x)
		if err != nil {
			return err
		}
		yty, err := DotVectors(o, y)
		if err != nil {
			return err
		}
		if err = SquaredDistanceCrossInto(dst, xtx, yty); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		row := dst.RawRowView(i)
		for j := 0; j < m; j++ {
			row[j] = d.Kappa(row[j])
		}
	}

	return nil
}
