package pairwise

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// GramianAccelerator: inner-product and squared-distance matrices computed
// through matrix-multiply primitives instead of per-pair evaluation.

// GramianInto computes the Gram matrix of one dataset in place:
// dst = X·Xᵗ under RowSamples, dst = Xᵗ·X under ColSamples.
//
// The computation is a symmetric rank-k update (blas64.Syrk) writing only
// the upper triangle — half the work of a general multiply. With
// symmetrize=true the triangle is mirrored; otherwise the lower triangle of
// dst is left untouched and must not be read.
//
// Complexity: O(n²·D/2) multiply-adds.
func GramianInto(o Orientation, x, dst *mat.Dense, symmetrize bool) error {
	const op = "GramianInto"
	if err := validateOrientation(o); err != nil {
		return pairwiseErrorf(op, err)
	}
	if err := validateMatrix(x); err != nil {
		return pairwiseErrorf(op, err)
	}
	n := o.samples(x)
	if err := validateSquareDst(dst, n); err != nil {
		return pairwiseErrorf(op, err)
	}

	t := blas.NoTrans // RowSamples: C = X·Xᵗ
	if o == ColSamples {
		t = blas.Trans // ColSamples: C = Xᵗ·X
	}
	raw := dst.RawMatrix()
	c := blas64.Symmetric{Uplo: blas.Upper, N: n, Data: raw.Data, Stride: raw.Stride}
	blas64.Syrk(t, 1, x.RawMatrix(), 0, c)

	if symmetrize {
		mirrorUpper(dst, n)
	}

	return nil
}

// GramianCrossInto computes the cross Gram matrix of two datasets in place:
// dst = X·Yᵗ under RowSamples, dst = Xᵗ·Y under ColSamples. No symmetry
// exists to exploit, so this is a general multiply (blas64.Gemm).
//
// Complexity: O(n·m·D) multiply-adds.
func GramianCrossInto(o Orientation, x, y, dst *mat.Dense) error {
	const op = "GramianCrossInto"
	if err := validateOrientation(o); err != nil {
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
	if err := validateCrossDst(dst, o.samples(x), o.samples(y)); err != nil {
		return pairwiseErrorf(op, err)
	}

	tA, tB := blas.NoTrans, blas.Trans // RowSamples: C = X·Yᵗ
	if o == ColSamples {
		tA, tB = blas.Trans, blas.NoTrans // ColSamples: C = Xᵗ·Y
	}
	blas64.Gemm(tA, tB, 1, x.RawMatrix(), y.RawMatrix(), 0, dst.RawMatrix())

	return nil
}

// DotVectors computes the per-sample squared norms of x under o: one value
// per sample, summing squared elements along the non-sample axis.
//
// Complexity: O(n·D).
func DotVectors(o Orientation, x *mat.Dense) ([]float64, error) {
	const op = "DotVectors"
	if err := validateOrientation(o); err != nil {
		return nil, pairwiseErrorf(op, err)
	}
	if err := validateMatrix(x); err != nil {
		return nil, pairwiseErrorf(op, err)
	}

	n := o.samples(x)
	out := make([]float64, n)
	var buf []float64
	if o == ColSamples {
		buf = make([]float64, o.features(x))
	}
	for i := 0; i < n; i++ {
		v := o.sample(x, i, buf)
		out[i] = floats.Dot(v, v)
	}

	return out, nil
}

// SquaredDistanceInto rewrites a pre-computed Gram matrix into the squared
// Euclidean distance matrix, in place, via the identity
// ‖a−b‖² = a·a − 2·a·b + b·b:
//
//	G[i,j] ← xtx[i] − 2·G[i,j] + xtx[j]   for i ≤ j
//
// Only the upper triangle is rewritten (the Gram input is only defined
// there); symmetrize=true mirrors it afterwards. Negative floating-point
// residue on near-zero entries is clamped to zero.
func SquaredDistanceInto(g *mat.Dense, xtx []float64, symmetrize bool) error {
	const op = "SquaredDistanceInto"
	if g == nil {
		return pairwiseErrorf(op, ErrNilMatrix)
	}
	n := len(xtx)
	r, c := g.Dims()
	if r != n {
		return pairwiseErrorf(op, mismatchf("rows of G", r, "length of xtx", n))
	}
	if c != n {
		return pairwiseErrorf(op, mismatchf("cols of G", c, "length of xtx", n))
	}

	for j := 0; j < n; j++ {
		for i := 0; i <= j; i++ {
			g.Set(i, j, clampNonNegative(xtx[i]-2*g.At(i, j)+xtx[j]))
		}
	}
	if symmetrize {
		mirrorUpper(g, n)
	}

	return nil
}

// SquaredDistanceCrossInto is the two-dataset variant of
// SquaredDistanceInto: the full dense grid is rewritten with
// G[i,j] ← xtx[i] − 2·G[i,j] + yty[j]. Each dimension check is reported
// independently.
func SquaredDistanceCrossInto(g *mat.Dense, xtx, yty []float64) error {
	const op = "SquaredDistanceCrossInto"
	if g == nil {
		return pairwiseErrorf(op, ErrNilMatrix)
	}
	r, c := g.Dims()
	if r != len(xtx) {
		return pairwiseErrorf(op, mismatchf("rows of G", r, "length of xtx", len(xtx)))
	}
	if c != len(yty) {
		return pairwiseErrorf(op, mismatchf("cols of G", c, "length of yty", len(yty)))
	}

	for i := 0; i < r; i++ {
		row := g.RawRowView(i)
		for j := 0; j < c; j++ {
			row[j] = clampNonNegative(xtx[i] - 2*row[j] + yty[j])
		}
	}

	return nil
}

// clampNonNegative zeroes the tiny negative residue the identity can leave
// when the rank-k update and the norm vector accumulate in different
// orders. A true squared distance is never negative, and downstream kappa
// transfers (fractional powers in particular) require that.
func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}

	return v
}

// mirrorUpper copies the strict upper triangle of the leading n×n block
// into the lower triangle, making the block exactly symmetric.
func mirrorUpper(m *mat.Dense, n int) {
	for j := 0; j < n; j++ {
		for i := 0; i < j; i++ {
			m.Set(j, i, m.At(i, j))
		}
	}
}
