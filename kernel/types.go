package kernel

// BaseForm tags the building block a decomposable kernel reduces to.
// The pairwise engine uses the tag to route matrix evaluation to BLAS
// primitives instead of a per-pair scalar loop.
type BaseForm int

const (
	// BaseInnerProduct marks kernels expressible as kappa(x·y).
	BaseInnerProduct BaseForm = iota

	// BaseSquaredDistance marks kernels expressible as kappa(‖x−y‖²).
	BaseSquaredDistance
)

// String renders the base form for error messages and logs.
func (b BaseForm) String() string {
	switch b {
	case BaseInnerProduct:
		return "inner-product"
	case BaseSquaredDistance:
		return "squared-distance"
	default:
		return "unknown"
	}
}

// Kernel is the scalar kernel contract consumed by the pairwise engine.
//
// Eval computes phi(x, y) for two feature vectors of equal length; it
// performs no dimension validation (the engine validates once per call).
// The capability predicates classify the kernel:
//
//   - IsMercer: the kernel matrix is always positive semi-definite.
//   - IsNegativeDefinite: the kernel is conditionally negative-definite.
//   - AttainsZero/Positive/Negative: whether the kernel's range reaches
//     zero, positive or negative values (conservative: false means
//     "not guaranteed", never "impossible").
//
// Equal is recursive value equality over the whole structural tree —
// variant, scalar hyperparameters and children — never identity.
type Kernel interface {
	Eval(x, y []float64) float64
	IsMercer() bool
	IsNegativeDefinite() bool
	AttainsZero() bool
	AttainsPositive() bool
	AttainsNegative() bool
	Equal(other Kernel) bool
}

// Decomposable is the capability view of a kernel expressible as
// kappa(base(x, y)) where base is the inner product or the squared
// Euclidean distance. The engine must never evaluate such a kernel through
// the generic scalar loop: it computes the base matrix with BLAS primitives
// and applies Kappa over the entries.
//
// Use Decompose to obtain the view: wrappers such as Affine are
// decomposable exactly when their child is, which a plain type assertion
// cannot express.
type Decomposable interface {
	Kernel
	Base() BaseForm
	Kappa(z float64) float64
}

// decomposer is implemented by composites whose decomposability depends on
// their child kernel.
type decomposer interface {
	decompose() (Decomposable, bool)
}

// Decompose reports whether k is expressible as kappa over an accelerable
// base, unwrapping composites recursively. Complexity: O(depth of the
// composition tree).
func Decompose(k Kernel) (Decomposable, bool) {
	if dc, ok := k.(decomposer); ok {
		return dc.decompose()
	}
	d, ok := k.(Decomposable)

	return d, ok
}

// kappaChain is a Decomposable view over a composite: the composite's own
// Kernel behavior with a transfer function chained through its child's.
type kappaChain struct {
	Kernel
	base  BaseForm
	kappa func(z float64) float64
}

func (kc kappaChain) Base() BaseForm          { return kc.base }
func (kc kappaChain) Kappa(z float64) float64 { return kc.kappa(z) }

// sumPhi aggregates a per-component base term strictly left-to-right.
// The order is part of the contract: it fixes floating-point rounding so
// repeated evaluations are bit-for-bit reproducible.
func sumPhi(phi func(x, y float64) float64, x, y []float64) float64 {
	var s float64
	for i := range x {
		s += phi(x[i], y[i])
	}

	return s
}
