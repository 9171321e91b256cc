package kernel

import (
	"fmt"

	"github.com/katalvlaran/gramian/hyper"
)

// Affine is the affine transform a·κ + c of a single wrapped kernel,
// with scale a ∈ (0,∞) and shift c ∈ [0,∞).
//
// An affine transform with positive scale and non-negative shift preserves
// the child's definiteness class unchanged, so Affine carries no closure
// precondition of its own. The wrapped kernel is shared by reference and
// never mutated.
type Affine struct {
	a, c  *hyper.Parameter
	inner Kernel
}

// NewAffine constructs a·κ + c. Fails with hyper.ErrOutOfDomain when a ≤ 0
// or c < 0, and with ErrNilKernel when κ is nil.
//
// Prefer the algebra constructors Scale and Shift: applied to an existing
// Affine they collapse into a single wrapper instead of nesting.
func NewAffine(a, c float64, k Kernel) (*Affine, error) {
	const op = "NewAffine"
	if k == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilKernel)
	}
	pa, err := newScale(op, a)
	if err != nil {
		return nil, err
	}
	pc, err := newShift(op, c)
	if err != nil {
		return nil, err
	}

	return &Affine{a: pa, c: pc, inner: k}, nil
}

// A reports the scale value.
func (k *Affine) A() float64 { return k.a.Value() }

// C reports the shift value.
func (k *Affine) C() float64 { return k.c.Value() }

// Inner returns the wrapped kernel (shared, read-only).
func (k *Affine) Inner() Kernel { return k.inner }

// Eval computes a·κ(x,y) + c.
func (k *Affine) Eval(x, y []float64) float64 {
	return k.a.Value()*k.inner.Eval(x, y) + k.c.Value()
}

// IsMercer is inherited unchanged from the wrapped kernel.
func (k *Affine) IsMercer() bool { return k.inner.IsMercer() }

// IsNegativeDefinite is inherited unchanged from the wrapped kernel.
func (k *Affine) IsNegativeDefinite() bool { return k.inner.IsNegativeDefinite() }

// Range predicates are conservative: with c > 0 the transform may or may
// not cross zero depending on the child's range, so only the c == 0 case
// makes a claim beyond positivity.
func (k *Affine) AttainsZero() bool {
	return k.c.Value() == 0 && k.inner.AttainsZero()
}

func (k *Affine) AttainsPositive() bool {
	return k.c.Value() > 0 || k.inner.AttainsPositive()
}

func (k *Affine) AttainsNegative() bool {
	return k.c.Value() == 0 && k.inner.AttainsNegative()
}

// Equal reports recursive value equality with another Affine.
func (k *Affine) Equal(other Kernel) bool {
	o, ok := other.(*Affine)
	if !ok {
		return false
	}

	return k.a.Equal(o.a) && k.c.Equal(o.c) && k.inner.Equal(o.inner)
}

// decompose chains the affine map through a decomposable child:
// kappa(z) = a·kappa_child(z) + c over the child's base form.
func (k *Affine) decompose() (Decomposable, bool) {
	d, ok := Decompose(k.inner)
	if !ok {
		return nil, false
	}
	a, c := k.a.Value(), k.c.Value()

	return kappaChain{
		Kernel: k,
		base:   d.Base(),
		kappa:  func(z float64) float64 { return a*d.Kappa(z) + c },
	}, true
}
