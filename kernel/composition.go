package kernel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gramian/hyper"
)

// Composition classes: named scalar functions of an affine-transformed
// kernel, f(a·κ(x,y) + c). The algebra produces them when a polynomial or
// transcendental function is applied to an Affine kernel — the affine pair
// (a, c) is absorbed into the class instead of nesting wrapper objects.
//
// Each class carries its own closure precondition on the wrapped kernel and
// its own resulting definiteness class:
//
//	class          f(z)        requires κ     yields
//	Polynomial     z^d         Mercer         Mercer
//	Power          z^γ         neg-definite   neg-definite
//	Exponentiated  exp(z)      Mercer         Mercer
//	Sigmoid        tanh(z)     —              neither
//
// All classes are decomposable whenever the wrapped kernel is, chaining
// f(a·kappa_child(z)+c) through the child's base form.

// Polynomial is (a·κ + c)^d with integer degree d ≥ 1.
type Polynomial struct {
	a, c   *hyper.Parameter
	degree int
	inner  Kernel
}

// NewPolynomial constructs (a·κ+c)^d. Fails with ErrInvalidClosure when κ
// is not Mercer and with hyper.ErrOutOfDomain when a ≤ 0, c < 0 or d < 1.
func NewPolynomial(a, c float64, d int, k Kernel) (*Polynomial, error) {
	const op = "NewPolynomial"
	if k == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilKernel)
	}
	if !k.IsMercer() {
		return nil, fmt.Errorf("%s: wrapped kernel must be Mercer: %w", op, ErrInvalidClosure)
	}
	if d < 1 {
		return nil, fmt.Errorf("%s: degree %d outside domain [1,∞): %w", op, d, hyper.ErrOutOfDomain)
	}
	pa, err := newScale(op, a)
	if err != nil {
		return nil, err
	}
	pc, err := newShift(op, c)
	if err != nil {
		return nil, err
	}

	return &Polynomial{a: pa, c: pc, degree: d, inner: k}, nil
}

func (k *Polynomial) A() float64    { return k.a.Value() }
func (k *Polynomial) C() float64    { return k.c.Value() }
func (k *Polynomial) Degree() int   { return k.degree }
func (k *Polynomial) Inner() Kernel { return k.inner }

func (k *Polynomial) Eval(x, y []float64) float64 {
	return math.Pow(k.a.Value()*k.inner.Eval(x, y)+k.c.Value(), float64(k.degree))
}

func (k *Polynomial) IsMercer() bool           { return true }
func (k *Polynomial) IsNegativeDefinite() bool { return false }

func (k *Polynomial) AttainsZero() bool {
	return k.c.Value() == 0 && k.inner.AttainsZero()
}
func (k *Polynomial) AttainsPositive() bool { return true }
func (k *Polynomial) AttainsNegative() bool {
	return k.degree%2 == 1 && k.c.Value() == 0 && k.inner.AttainsNegative()
}

func (k *Polynomial) Equal(other Kernel) bool {
	o, ok := other.(*Polynomial)
	if !ok {
		return false
	}

	return k.a.Equal(o.a) && k.c.Equal(o.c) && k.degree == o.degree && k.inner.Equal(o.inner)
}

func (k *Polynomial) decompose() (Decomposable, bool) {
	return chainClass(k, k.inner, k.a.Value(), k.c.Value(), func(z float64) float64 {
		return math.Pow(z, float64(k.degree))
	})
}

// Power is (a·κ + c)^γ with fractional exponent γ ∈ (0,1].
type Power struct {
	a, c, gamma *hyper.Parameter
	inner       Kernel
}

// NewPower constructs (a·κ+c)^γ. Fails with ErrInvalidClosure when κ is not
// negative-definite and with hyper.ErrOutOfDomain when a ≤ 0, c < 0 or
// γ ∉ (0,1].
func NewPower(a, c, gamma float64, k Kernel) (*Power, error) {
	const op = "NewPower"
	if k == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilKernel)
	}
	if !k.IsNegativeDefinite() {
		return nil, fmt.Errorf("%s: wrapped kernel must be negative-definite: %w", op, ErrInvalidClosure)
	}
	pa, err := newScale(op, a)
	if err != nil {
		return nil, err
	}
	pc, err := newShift(op, c)
	if err != nil {
		return nil, err
	}
	pg, err := newGamma(op, gamma)
	if err != nil {
		return nil, err
	}

	return &Power{a: pa, c: pc, gamma: pg, inner: k}, nil
}

func (k *Power) A() float64     { return k.a.Value() }
func (k *Power) C() float64     { return k.c.Value() }
func (k *Power) Gamma() float64 { return k.gamma.Value() }
func (k *Power) Inner() Kernel  { return k.inner }

func (k *Power) Eval(x, y []float64) float64 {
	return math.Pow(k.a.Value()*k.inner.Eval(x, y)+k.c.Value(), k.gamma.Value())
}

func (k *Power) IsMercer() bool           { return false }
func (k *Power) IsNegativeDefinite() bool { return true }

func (k *Power) AttainsZero() bool {
	return k.c.Value() == 0 && k.inner.AttainsZero()
}
func (k *Power) AttainsPositive() bool { return true }
func (k *Power) AttainsNegative() bool { return false }

func (k *Power) Equal(other Kernel) bool {
	o, ok := other.(*Power)
	if !ok {
		return false
	}

	return k.a.Equal(o.a) && k.c.Equal(o.c) && k.gamma.Equal(o.gamma) && k.inner.Equal(o.inner)
}

func (k *Power) decompose() (Decomposable, bool) {
	gamma := k.gamma.Value()

	return chainClass(k, k.inner, k.a.Value(), k.c.Value(), func(z float64) float64 {
		return math.Pow(z, gamma)
	})
}

// Exponentiated is exp(a·κ + c).
type Exponentiated struct {
	a, c  *hyper.Parameter
	inner Kernel
}

// NewExponentiated constructs exp(a·κ+c). Fails with ErrInvalidClosure when
// κ is not Mercer and with hyper.ErrOutOfDomain when a ≤ 0 or c < 0.
func NewExponentiated(a, c float64, k Kernel) (*Exponentiated, error) {
	const op = "NewExponentiated"
	if k == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilKernel)
	}
	if !k.IsMercer() {
		return nil, fmt.Errorf("%s: wrapped kernel must be Mercer: %w", op, ErrInvalidClosure)
	}
	pa, err := newScale(op, a)
	if err != nil {
		return nil, err
	}
	pc, err := newShift(op, c)
	if err != nil {
		return nil, err
	}

	return &Exponentiated{a: pa, c: pc, inner: k}, nil
}

func (k *Exponentiated) A() float64    { return k.a.Value() }
func (k *Exponentiated) C() float64    { return k.c.Value() }
func (k *Exponentiated) Inner() Kernel { return k.inner }

func (k *Exponentiated) Eval(x, y []float64) float64 {
	return math.Exp(k.a.Value()*k.inner.Eval(x, y) + k.c.Value())
}

func (k *Exponentiated) IsMercer() bool           { return true }
func (k *Exponentiated) IsNegativeDefinite() bool { return false }

func (k *Exponentiated) AttainsZero() bool     { return false }
func (k *Exponentiated) AttainsPositive() bool { return true }
func (k *Exponentiated) AttainsNegative() bool { return false }

func (k *Exponentiated) Equal(other Kernel) bool {
	o, ok := other.(*Exponentiated)
	if !ok {
		return false
	}

	return k.a.Equal(o.a) && k.c.Equal(o.c) && k.inner.Equal(o.inner)
}

func (k *Exponentiated) decompose() (Decomposable, bool) {
	return chainClass(k, k.inner, k.a.Value(), k.c.Value(), math.Exp)
}

// Sigmoid is tanh(a·κ + c). It belongs to neither definiteness class, which
// bars it from further Sum/Product composition but keeps it useful as a
// standalone similarity (the classic SVM sigmoid kernel).
type Sigmoid struct {
	a, c  *hyper.Parameter
	inner Kernel
}

// NewSigmoid constructs tanh(a·κ+c). Fails with hyper.ErrOutOfDomain when
// a ≤ 0 or c < 0.
func NewSigmoid(a, c float64, k Kernel) (*Sigmoid, error) {
	const op = "NewSigmoid"
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

	return &Sigmoid{a: pa, c: pc, inner: k}, nil
}

func (k *Sigmoid) A() float64    { return k.a.Value() }
func (k *Sigmoid) C() float64    { return k.c.Value() }
func (k *Sigmoid) Inner() Kernel { return k.inner }

func (k *Sigmoid) Eval(x, y []float64) float64 {
	return math.Tanh(k.a.Value()*k.inner.Eval(x, y) + k.c.Value())
}

func (k *Sigmoid) IsMercer() bool           { return false }
func (k *Sigmoid) IsNegativeDefinite() bool { return false }

func (k *Sigmoid) AttainsZero() bool {
	return k.c.Value() == 0 && k.inner.AttainsZero()
}
func (k *Sigmoid) AttainsPositive() bool { return true }
func (k *Sigmoid) AttainsNegative() bool {
	return k.c.Value() == 0 && k.inner.AttainsNegative()
}

func (k *Sigmoid) Equal(other Kernel) bool {
	o, ok := other.(*Sigmoid)
	if !ok {
		return false
	}

	return k.a.Equal(o.a) && k.c.Equal(o.c) && k.inner.Equal(o.inner)
}

func (k *Sigmoid) decompose() (Decomposable, bool) {
	return chainClass(k, k.inner, k.a.Value(), k.c.Value(), math.Tanh)
}

// chainClass builds the Decomposable view of a composition class over a
// decomposable child: kappa(z) = f(a·kappa_child(z) + c).
func chainClass(outer Kernel, inner Kernel, a, c float64, f func(float64) float64) (Decomposable, bool) {
	d, ok := Decompose(inner)
	if !ok {
		return nil, false
	}

	return kappaChain{
		Kernel: outer,
		base:   d.Base(),
		kappa:  func(z float64) float64 { return f(a*d.Kappa(z) + c) },
	}, true
}
