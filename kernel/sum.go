package kernel

import (
	"fmt"

	"github.com/katalvlaran/gramian/hyper"
)

// Sum is the composite κ1 + κ2 + c with shift c ∈ [0,∞).
//
// Closure: the sum of two Mercer kernels is Mercer; the sum of two
// negative-definite kernels is negative-definite; a mixed sum belongs to
// neither class and cannot be constructed.
type Sum struct {
	c      *hyper.Parameter
	k1, k2 Kernel
}

// NewSum constructs κ1 + κ2 + c. Fails with ErrInvalidClosure unless both
// operands are Mercer or both are negative-definite, with ErrNilKernel on a
// nil operand, and with hyper.ErrOutOfDomain when c < 0.
func NewSum(c float64, k1, k2 Kernel) (*Sum, error) {
	const op = "NewSum"
	if k1 == nil || k2 == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilKernel)
	}
	bothMercer := k1.IsMercer() && k2.IsMercer()
	bothNegDef := k1.IsNegativeDefinite() && k2.IsNegativeDefinite()
	if !bothMercer && !bothNegDef {
		return nil, fmt.Errorf("%s: operands must both be Mercer or both negative-definite: %w", op, ErrInvalidClosure)
	}
	pc, err := newShift(op, c)
	if err != nil {
		return nil, err
	}

	return &Sum{c: pc, k1: k1, k2: k2}, nil
}

// C reports the shift value.
func (k *Sum) C() float64 { return k.c.Value() }

// Left returns the first wrapped kernel (shared, read-only).
func (k *Sum) Left() Kernel { return k.k1 }

// Right returns the second wrapped kernel (shared, read-only).
func (k *Sum) Right() Kernel { return k.k2 }

// Eval computes κ1(x,y) + κ2(x,y) + c.
func (k *Sum) Eval(x, y []float64) float64 {
	return k.k1.Eval(x, y) + k.k2.Eval(x, y) + k.c.Value()
}

// IsMercer holds when both children are Mercer (guaranteed by closure when
// the children are not negative-definite).
func (k *Sum) IsMercer() bool { return k.k1.IsMercer() && k.k2.IsMercer() }

// IsNegativeDefinite holds when both children are negative-definite.
func (k *Sum) IsNegativeDefinite() bool {
	return k.k1.IsNegativeDefinite() && k.k2.IsNegativeDefinite()
}

func (k *Sum) AttainsZero() bool {
	return k.c.Value() == 0 && k.k1.AttainsZero() && k.k2.AttainsZero()
}

func (k *Sum) AttainsPositive() bool {
	return k.c.Value() > 0 || k.k1.AttainsPositive() || k.k2.AttainsPositive()
}

func (k *Sum) AttainsNegative() bool {
	return k.c.Value() == 0 && k.k1.AttainsNegative() && k.k2.AttainsNegative()
}

// Equal reports recursive value equality with another Sum; children are
// compared in order.
func (k *Sum) Equal(other Kernel) bool {
	o, ok := other.(*Sum)
	if !ok {
		return false
	}

	return k.c.Equal(o.c) && k.k1.Equal(o.k1) && k.k2.Equal(o.k2)
}
