package kernel

import "errors"

var (
	// ErrNilKernel indicates a nil kernel operand was passed to an algebra
	// constructor.
	ErrNilKernel = errors.New("kernel: nil kernel operand")

	// ErrInvalidClosure indicates a composite kernel's definiteness
	// precondition is violated: Sum over mixed classes, Product over a
	// non-Mercer operand, or a composition class over the wrong class.
	// Raised at construction time so an invalid composite can never exist.
	ErrInvalidClosure = errors.New("kernel: composition violates closure rules")
)
