package hyper

import "errors"

var (
	// ErrOutOfDomain indicates a candidate value lies outside a Parameter's
	// declared Interval. Returned by New and Set; matched via errors.Is.
	ErrOutOfDomain = errors.New("hyper: value outside declared domain")

	// ErrFixed indicates an in-place update was attempted on a Parameter
	// constructed as fixed.
	ErrFixed = errors.New("hyper: parameter is fixed")
)
