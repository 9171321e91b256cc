// Package gramian computes pairwise kernel (Gram) matrices from vector
// datasets and provides a closed composition algebra over kernel functions.
//
// 🚀 What is gramian?
//
//	A small, deterministic library for kernel methods (SVMs, Gaussian
//	processes) that brings together:
//		• Hyperparameters: interval-constrained scalars, validated for life
//		• Kernels: inner-product & squared-distance leaves, Affine/Sum/Product
//		  composites, Polynomial/Power/Exponentiated/Sigmoid classes
//		• Algebra: Scale, Shift, Add, Mul, Pow, Exp, Tanh constructors that
//		  enforce closure rules and collapse redundant wrappers
//		• Engine: orientation-generic pairwise matrices with BLAS-accelerated
//		  (syrk/gemm) fast paths for decomposable kernels
//
// ✨ Why choose gramian?
//
//   - Validity by construction — Mercer/negative-definite closure is checked
//     when a composite is built, so an invalid kernel object can never exist
//   - No wrapper towers — stacked affine transforms fold into one, and
//     powers/exponentials of affine kernels become single named classes
//   - Fast where it matters — any kernel expressible through the inner
//     product or the squared Euclidean distance is evaluated with matrix
//     multiplication, never a per-pair scalar loop
//
// Under the hood, everything is organized under three subpackages:
//
//	hyper/    — Bound, Interval, Parameter
//	kernel/   — the Kernel contract, leaves, composites & the algebra
//	pairwise/ — PairwiseMatrix, the GramianAccelerator & in-place variants
//
// Quick example:
//
//	x := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
//	k, _ := kernel.Scale(0.5, kernel.SquaredDistance{})
//	m, _ := pairwise.PairwiseMatrix(pairwise.RowSamples, k, x, true)
//
//	go get github.com/katalvlaran/gramian
package gramian
