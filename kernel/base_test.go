// Package kernel_test contains unit tests for the leaf kernels and the
// decomposition capability.
package kernel_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gramian/kernel"
	"github.com/stretchr/testify/require"
)

// genericKernel is a test-only kernel with configurable definiteness and no
// decomposable base, used to drive the algebra and the generic engine path.
type genericKernel struct {
	mercer, negdef bool
}

func (g genericKernel) Eval(x, y []float64) float64 {
	// min over components: symmetric, not expressible through a base form
	m := math.Inf(1)
	for i := range x {
		m = math.Min(m, math.Min(x[i], y[i]))
	}

	return m
}

func (g genericKernel) IsMercer() bool           { return g.mercer }
func (g genericKernel) IsNegativeDefinite() bool { return g.negdef }
func (g genericKernel) AttainsZero() bool        { return true }
func (g genericKernel) AttainsPositive() bool    { return true }
func (g genericKernel) AttainsNegative() bool    { return true }
func (g genericKernel) Equal(o kernel.Kernel) bool {
	og, ok := o.(genericKernel)

	return ok && og == g
}

// TestDotProductEval verifies the inner-product leaf on known vectors.
func TestDotProductEval(t *testing.T) {
	k := kernel.DotProduct{}

	require.Equal(t, 11.0, k.Eval([]float64{1, 2, 3}, []float64{3, 1, 2})) // 3+2+6
	require.Equal(t, 0.0, k.Eval([]float64{1, 0}, []float64{0, 1}))        // orthogonal
	require.Equal(t, 2.0, k.Phi(1, 2))                                     // scalar component term
}

// TestSquaredDistanceEval verifies the squared-distance leaf on known vectors.
func TestSquaredDistanceEval(t *testing.T) {
	k := kernel.SquaredDistance{}

	require.Equal(t, 2.0, k.Eval([]float64{1, 0}, []float64{0, 1})) // 1+1
	require.Equal(t, 0.0, k.Eval([]float64{3, 4}, []float64{3, 4})) // identical points
	require.Equal(t, 9.0, k.Phi(1, 4))                              // (1-4)²
}

// TestLeafCapabilities verifies the definiteness and range predicates of
// both leaves.
func TestLeafCapabilities(t *testing.T) {
	dot := kernel.DotProduct{}
	require.True(t, dot.IsMercer())
	require.False(t, dot.IsNegativeDefinite())
	require.True(t, dot.AttainsNegative()) // ⟨x,y⟩ can be negative

	sqd := kernel.SquaredDistance{}
	require.False(t, sqd.IsMercer())
	require.True(t, sqd.IsNegativeDefinite())
	require.False(t, sqd.AttainsNegative()) // ‖x−y‖² ≥ 0 always
	require.True(t, sqd.AttainsZero())
}

// TestDecomposeLeaves verifies the base tags and identity kappa of the leaves.
func TestDecomposeLeaves(t *testing.T) {
	d, ok := kernel.Decompose(kernel.DotProduct{})
	require.True(t, ok)
	require.Equal(t, kernel.BaseInnerProduct, d.Base())
	require.Equal(t, 3.5, d.Kappa(3.5)) // identity transfer

	d, ok = kernel.Decompose(kernel.SquaredDistance{})
	require.True(t, ok)
	require.Equal(t, kernel.BaseSquaredDistance, d.Base())
	require.Equal(t, -1.0, d.Kappa(-1))
}

// TestDecomposeGenericFails verifies a kernel without a base form is not
// decomposable.
func TestDecomposeGenericFails(t *testing.T) {
	_, ok := kernel.Decompose(genericKernel{mercer: true})
	require.False(t, ok)
}

// TestDecomposeAffineChain verifies decomposability propagates through an
// Affine wrapper with the affine map chained into kappa.
func TestDecomposeAffineChain(t *testing.T) {
	aff, err := kernel.NewAffine(2, 3, kernel.DotProduct{})
	require.NoError(t, err)

	d, ok := kernel.Decompose(aff)
	require.True(t, ok)
	require.Equal(t, kernel.BaseInnerProduct, d.Base())
	require.Equal(t, 2*5.0+3, d.Kappa(5)) // kappa(z) = 2z+3

	// An Affine over a generic kernel stays generic.
	affGeneric, err := kernel.NewAffine(2, 3, genericKernel{mercer: true})
	require.NoError(t, err)
	_, ok = kernel.Decompose(affGeneric)
	require.False(t, ok)
}

// TestDecomposeCompositionChain verifies the class transfer chains through
// the child kappa: exp(2·z+1) over the squared-distance base.
func TestDecomposeCompositionChain(t *testing.T) {
	aff, err := kernel.NewAffine(2, 1, kernel.SquaredDistance{})
	require.NoError(t, err)
	// Exponentiated requires Mercer, so go through Sigmoid (no precondition).
	sig, err := kernel.Tanh(aff)
	require.NoError(t, err)

	d, ok := kernel.Decompose(sig)
	require.True(t, ok)
	require.Equal(t, kernel.BaseSquaredDistance, d.Base())
	require.InDelta(t, math.Tanh(2*0.25+1), d.Kappa(0.25), 1e-15)
}
