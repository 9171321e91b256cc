// Package pairwise computes dense pairwise kernel (Gram) matrices from
// feature matrices, with BLAS-accelerated fast paths for decomposable
// kernels.
//
// What:
//
//   - Pairwise: kernel evaluation of two feature vectors with dimension
//     validation.
//   - PairwiseMatrix / PairwiseMatrixInto: the n×n matrix of all pairwise
//     evaluations over one dataset. Only the upper triangle (including the
//     diagonal) is computed; symmetrize=true mirrors it into the lower
//     triangle, otherwise the lower triangle is undefined.
//   - PairwiseMatrixCross / PairwiseMatrixCrossInto: the n×m matrix over
//     two datasets, full dense grid.
//   - GramianInto / GramianCrossInto / DotVectors / SquaredDistanceInto /
//     SquaredDistanceCrossInto: the accelerator primitives — symmetric
//     rank-k update (X·Xᵗ), general multiply (X·Yᵗ), per-sample squared
//     norms, and the in-place ‖a−b‖² = a·a − 2a·b + b·b rewrite.
//
// Orientation is a first-class parameter of every matrix operation:
// RowSamples treats matrix rows as sample vectors, ColSamples treats
// columns as samples. It is never inferred, and all shape checks derive
// from it.
//
// Why the accelerator:
//
//   - Any kernel expressible as kappa over the inner product or the squared
//     Euclidean distance (see kernel.Decompose) is evaluated as a Gram
//     matrix through blas64.Syrk/Gemm followed by an elementwise kappa
//     pass, never through the per-pair scalar loop. Same O(n²·D) work, but
//     cache- and vectorization-friendly.
//
// Complexity:
//
//   - PairwiseMatrix (generic): O(n²·D/2) kernel evaluations.
//   - PairwiseMatrix (decomposable): one Syrk + O(n²) elementwise work.
//   - PairwiseMatrixCross: O(n·m·D) either way.
//
// Errors:
//
//   - ErrDimensionMismatch: two shape quantities disagree; the message
//     names both (e.g. "rows of K (3) vs sample count of X (5)").
//   - ErrNilKernel, ErrNilMatrix: nil operands.
//   - ErrBadOrientation: an Orientation outside {RowSamples, ColSamples}.
//
// In-place variants take exclusive write ownership of the destination for
// the duration of the call; the caller owns allocation and lifetime.
// All inputs are read-only, and kernel objects are immutable, so concurrent
// callers with distinct destinations need no synchronization.
package pairwise
