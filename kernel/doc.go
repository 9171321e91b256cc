// Package kernel defines the scalar kernel contract and a closed composition
// algebra over kernel objects.
//
// What:
//
//   - Kernel: a symmetric binary function over equal-length feature vectors,
//     plus capability predicates (Mercer, negative-definite, attainable sign
//     range) and recursive structural equality.
//   - Leaf kernels: DotProduct (inner-product form) and SquaredDistance
//     (squared-Euclidean form), the two bases the pairwise engine can
//     accelerate through BLAS primitives.
//   - Composites: Affine (a·κ+c), Sum (κ1+κ2+c), Product (a·κ1·κ2), and the
//     Polynomial, Power, Exponentiated and Sigmoid composition classes.
//   - Algebra: Scale, Shift, Add, Mul, Pow, PowGamma, Exp and Tanh — pure
//     constructor functions that validate closure preconditions and collapse
//     redundant wrappers (two stacked affine transforms become one; a power
//     of an affine transform becomes a single named composition class).
//
// Why:
//
//   - Kernel methods (SVMs, Gaussian processes) are only valid when the
//     kernel matrix keeps its definiteness class. The algebra enforces the
//     closure rules at construction time: a Sum of a Mercer and a
//     negative-definite kernel, or a Product involving a non-Mercer kernel,
//     cannot be built at all.
//
// Closure rules:
//
//   - Affine (a>0, c≥0) preserves the child's class unchanged.
//   - Sum requires both children Mercer or both negative-definite.
//   - Product requires both children Mercer.
//   - Polynomial and Exponentiated require a Mercer child and yield Mercer;
//     Power requires a negative-definite child and yields negative-definite;
//     Sigmoid yields neither class.
//
// Errors:
//
//   - ErrInvalidClosure: a composite's definiteness precondition is violated.
//   - ErrNilKernel: a nil kernel operand was passed to a constructor.
//   - hyper.ErrOutOfDomain: a scalar violates its bound (scale ≤ 0, shift < 0,
//     degree < 1, exponent outside (0,1]).
//
// All kernel objects are immutable after construction and safe for
// concurrent readers.
package kernel
