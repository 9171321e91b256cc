// Package hyper provides interval-constrained scalar hyperparameters for
// kernel objects.
//
// What:
//
//   - Bound: a single endpoint, open (excluded) or closed (included).
//   - Interval: a validation domain built from zero, one or two bounds.
//   - Parameter: a float64 value that is guaranteed, for its whole lifetime,
//     to lie inside its Interval. Construction and in-place updates both
//     validate; a violated domain is reported, never stored.
//
// Why:
//
//   - Kernel validity is a construction-time property: an affine scale must
//     stay strictly positive, a shift non-negative, a power exponent in
//     (0,1]. Holding those values in a Parameter makes the invariant
//     unforgeable — no caller can obtain a kernel with an out-of-domain
//     scalar.
//
// Errors:
//
//   - ErrOutOfDomain: the candidate value lies outside the Interval.
//   - ErrFixed: an in-place update was attempted on a fixed Parameter.
//
// Complexity: all operations are O(1) and allocation-free after construction.
package hyper
