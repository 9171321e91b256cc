package kernel

import "fmt"

// Algebra constructors. Each is a pure function selecting among composite
// variants so redundant wrappers collapse at construction time:
//
//   - Scale/Shift of an Affine fold into the existing wrapper.
//   - Add/Mul of Affine operands with a neutral other-scalar (scale 1 for
//     sums, shift 0 for products) bypass the affine layer and carry the
//     active scalar on the Sum/Product itself.
//   - Pow/PowGamma/Exp/Tanh of an Affine absorb (a, c) into a single named
//     composition class instead of nesting wrappers.
//
// Collapsing is exact case analysis on the operand variants; when no rule
// applies, the composite wraps the operands as-is with the operation's
// identity scalar.

// Scale returns a·κ as a single Affine wrapper. Scaling an existing Affine
// {a0, c0, κ0} yields Affine{a·a0, a·c0, κ0} — one level, never nested.
func Scale(a float64, k Kernel) (Kernel, error) {
	if k == nil {
		return nil, fmt.Errorf("Scale: %w", ErrNilKernel)
	}
	if aff, ok := k.(*Affine); ok {
		return NewAffine(a*aff.A(), a*aff.C(), aff.Inner())
	}

	return NewAffine(a, 0, k)
}

// Shift returns κ + c as a single Affine wrapper. Shifting an existing
// Affine {a0, c0, κ0} yields Affine{a0, c0+c, κ0} — one level, never nested.
func Shift(c float64, k Kernel) (Kernel, error) {
	if k == nil {
		return nil, fmt.Errorf("Shift: %w", ErrNilKernel)
	}
	if aff, ok := k.(*Affine); ok {
		return NewAffine(aff.A(), aff.C()+c, aff.Inner())
	}

	return NewAffine(1, c, k)
}

// Add returns κ1 + κ2 as a Sum, subject to the Sum closure rule.
//
// When an operand is an Affine with neutral scale (exactly 1), its shift
// migrates onto the Sum and the inner kernel is wrapped directly; with both
// operands neutral the shifts combine. A non-neutral Affine is wrapped
// as-is and the Sum carries the identity shift 0.
func Add(k1, k2 Kernel) (Kernel, error) {
	if k1 == nil || k2 == nil {
		return nil, fmt.Errorf("Add: %w", ErrNilKernel)
	}
	a1, ok1 := asNeutralScaleAffine(k1)
	a2, ok2 := asNeutralScaleAffine(k2)
	switch {
	case ok1 && ok2:
		return NewSum(a1.C()+a2.C(), a1.Inner(), a2.Inner())
	case ok1:
		return NewSum(a1.C(), a1.Inner(), k2)
	case ok2:
		return NewSum(a2.C(), k1, a2.Inner())
	default:
		return NewSum(0, k1, k2)
	}
}

// Mul returns κ1·κ2 as a Product, subject to the Product closure rule.
//
// When an operand is an Affine with neutral shift (exactly 0), its scale
// migrates onto the Product and the inner kernel is wrapped directly; with
// both operands neutral the scales multiply. A non-neutral Affine is
// wrapped as-is and the Product carries the identity scale 1.
func Mul(k1, k2 Kernel) (Kernel, error) {
	if k1 == nil || k2 == nil {
		return nil, fmt.Errorf("Mul: %w", ErrNilKernel)
	}
	a1, ok1 := asNeutralShiftAffine(k1)
	a2, ok2 := asNeutralShiftAffine(k2)
	switch {
	case ok1 && ok2:
		return NewProduct(a1.A()*a2.A(), a1.Inner(), a2.Inner())
	case ok1:
		return NewProduct(a1.A(), a1.Inner(), k2)
	case ok2:
		return NewProduct(a2.A(), k1, a2.Inner())
	default:
		return NewProduct(1, k1, k2)
	}
}

// Pow returns κ^d as a Polynomial composition class. An Affine operand's
// (a, c) pair is absorbed into the class; any other operand is wrapped with
// the identity pair (1, 0).
func Pow(k Kernel, d int) (Kernel, error) {
	if k == nil {
		return nil, fmt.Errorf("Pow: %w", ErrNilKernel)
	}
	if aff, ok := k.(*Affine); ok {
		return NewPolynomial(aff.A(), aff.C(), d, aff.Inner())
	}

	return NewPolynomial(1, 0, d, k)
}

// PowGamma returns κ^γ for fractional γ as a Power composition class,
// absorbing an Affine operand's (a, c) pair.
func PowGamma(k Kernel, gamma float64) (Kernel, error) {
	if k == nil {
		return nil, fmt.Errorf("PowGamma: %w", ErrNilKernel)
	}
	if aff, ok := k.(*Affine); ok {
		return NewPower(aff.A(), aff.C(), gamma, aff.Inner())
	}

	return NewPower(1, 0, gamma, k)
}

// Exp returns exp(κ) as an Exponentiated composition class, absorbing an
// Affine operand's (a, c) pair.
func Exp(k Kernel) (Kernel, error) {
	if k == nil {
		return nil, fmt.Errorf("Exp: %w", ErrNilKernel)
	}
	if aff, ok := k.(*Affine); ok {
		return NewExponentiated(aff.A(), aff.C(), aff.Inner())
	}

	return NewExponentiated(1, 0, k)
}

// Tanh returns tanh(κ) as a Sigmoid composition class, absorbing an Affine
// operand's (a, c) pair.
func Tanh(k Kernel) (Kernel, error) {
	if k == nil {
		return nil, fmt.Errorf("Tanh: %w", ErrNilKernel)
	}
	if aff, ok := k.(*Affine); ok {
		return NewSigmoid(aff.A(), aff.C(), aff.Inner())
	}

	return NewSigmoid(1, 0, k)
}

// asNeutralScaleAffine matches an Affine whose scale is exactly 1 — the
// collapsible operand shape for Add.
func asNeutralScaleAffine(k Kernel) (*Affine, bool) {
	aff, ok := k.(*Affine)
	if !ok || aff.A() != 1 {
		return nil, false
	}

	return aff, true
}

// asNeutralShiftAffine matches an Affine whose shift is exactly 0 — the
// collapsible operand shape for Mul.
func asNeutralShiftAffine(k Kernel) (*Affine, bool) {
	aff, ok := k.(*Affine)
	if !ok || aff.C() != 0 {
		return nil, false
	}

	return aff, true
}
