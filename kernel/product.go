package kernel

import (
	"fmt"

	"github.com/katalvlaran/gramian/hyper"
)

// Product is the composite a·κ1·κ2 with scale a ∈ (0,∞).
//
// Closure: the product of two Mercer kernels is Mercer. No closure rule
// exists for negative-definite kernels under multiplication, so any
// non-Mercer operand fails construction.
type Product struct {
	a      *hyper.Parameter
	k1, k2 Kernel
}

// NewProduct constructs a·κ1·κ2. Fails with ErrInvalidClosure unless both
// operands are Mercer, with ErrNilKernel on a nil operand, and with
// hyper.ErrOutOfDomain when a ≤ 0.
func NewProduct(a float64, k1, k2 Kernel) (*Product, error) {
	const op = "NewProduct"
	if k1 == nil || k2 == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilKernel)
	}
	if !k1.IsMercer() || !k2.IsMercer() {
		return nil, fmt.Errorf("%s: operands must both be Mercer: %w", op, ErrInvalidClosure)
	}
	pa, err := newScale(op, a)
	if err != nil {
		return nil, err
	}

	return &Product{a: pa, k1: k1, k2: k2}, nil
}

// A reports the scale value.
func (k *Product) A() float64 { return k.a.Value() }

// Left returns the first wrapped kernel (shared, read-only).
func (k *Product) Left() Kernel { return k.k1 }

// Right returns the second wrapped kernel (shared, read-only).
func (k *Product) Right() Kernel { return k.k2 }

// Eval computes a·κ1(x,y)·κ2(x,y).
func (k *Product) Eval(x, y []float64) float64 {
	return k.a.Value() * k.k1.Eval(x, y) * k.k2.Eval(x, y)
}

// IsMercer always holds: construction requires both children Mercer.
func (k *Product) IsMercer() bool { return true }

// IsNegativeDefinite never holds for a product.
func (k *Product) IsNegativeDefinite() bool { return false }

func (k *Product) AttainsZero() bool {
	return k.k1.AttainsZero() || k.k2.AttainsZero()
}

func (k *Product) AttainsPositive() bool {
	return k.k1.AttainsPositive() && k.k2.AttainsPositive()
}

func (k *Product) AttainsNegative() bool {
	// One factor negative, the other positive (a > 0 keeps the sign).
	return (k.k1.AttainsNegative() && k.k2.AttainsPositive()) ||
		(k.k1.AttainsPositive() && k.k2.AttainsNegative())
}

// Equal reports recursive value equality with another Product; children are
// compared in order.
func (k *Product) Equal(other Kernel) bool {
	o, ok := other.(*Product)
	if !ok {
		return false
	}

	return k.a.Equal(o.a) && k.k1.Equal(o.k1) && k.k2.Equal(o.k2)
}
