package pairwise_test

import (
	"fmt"

	"github.com/katalvlaran/gramian/kernel"
	"github.com/katalvlaran/gramian/pairwise"
	"gonum.org/v1/gonum/mat"
)

// printMatrix renders a small matrix row by row with fixed precision.
func printMatrix(label string, m *mat.Dense) {
	r, c := m.Dims()
	fmt.Println(label)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if j > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%.4f", m.At(i, j))
		}
		fmt.Println()
	}
}

// //////////////////////////////////////////////////////////////////////////////
// ExamplePairwiseMatrix
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two orthonormal samples as the rows of the 2×2 identity matrix.
//	The dot-product kernel reproduces the identity as its Gram matrix;
//	the squared-distance kernel gives 2 off the diagonal (‖e₁−e₂‖² = 2).
//
// Both kernels are decomposable, so the matrices are computed through the
// BLAS fast path, never the per-pair loop.
func ExamplePairwiseMatrix() {
	x := mat.NewDense(2, 2, []float64{
		1, 0,
		0, 1,
	})

	gram, err := pairwise.PairwiseMatrix(pairwise.RowSamples, kernel.DotProduct{}, x, true)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	dist, err := pairwise.PairwiseMatrix(pairwise.RowSamples, kernel.SquaredDistance{}, x, true)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	printMatrix("gram:", gram)
	printMatrix("dist:", dist)
	// Output:
	// gram:
	// 1.0000 0.0000
	// 0.0000 1.0000
	// dist:
	// 0.0000 2.0000
	// 2.0000 0.0000
}

// //////////////////////////////////////////////////////////////////////////////
// ExamplePairwiseMatrix_composed
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A similarity assembled from the algebra: the squared-distance kernel
//	scaled by 0.5, then mapped through tanh — built entirely from
//	constructors, evaluated entirely through the accelerator.
func ExamplePairwiseMatrix_composed() {
	x := mat.NewDense(3, 1, []float64{0, 1, 2})

	scaled, err := kernel.Scale(0.5, kernel.SquaredDistance{})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	k, err := kernel.Tanh(scaled)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	m, err := pairwise.PairwiseMatrix(pairwise.RowSamples, k, x, true)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	printMatrix("tanh(0.5*d^2):", m)
	// Output:
	// tanh(0.5*d^2):
	// 0.0000 0.4621 0.9640
	// 0.4621 0.0000 0.4621
	// 0.9640 0.4621 0.0000
}
