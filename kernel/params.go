package kernel

import (
	"fmt"

	"github.com/katalvlaran/gramian/hyper"
)

// Scalar hyperparameter domains shared by all composites.
//
//   - scale a lives in (0,∞): an open lower bound, zero is excluded.
//   - shift c lives in [0,∞): a closed lower bound, zero is the neutral value.
//   - exponent γ lives in (0,1]: the range under which the Power class stays
//     negative-definite.
func scaleDomain() hyper.Interval { return hyper.Above(hyper.Open(0)) }
func shiftDomain() hyper.Interval { return hyper.Above(hyper.Closed(0)) }
func gammaDomain() hyper.Interval { return hyper.Between(hyper.Open(0), hyper.Closed(1)) }

// newScale validates and boxes a scale value, tagging errors with op.
func newScale(op string, a float64) (*hyper.Parameter, error) {
	p, err := hyper.New(a, scaleDomain())
	if err != nil {
		return nil, fmt.Errorf("%s: scale: %w", op, err)
	}

	return p, nil
}

// newShift validates and boxes a shift value, tagging errors with op.
func newShift(op string, c float64) (*hyper.Parameter, error) {
	p, err := hyper.New(c, shiftDomain())
	if err != nil {
		return nil, fmt.Errorf("%s: shift: %w", op, err)
	}

	return p, nil
}

// newGamma validates and boxes a fractional exponent, tagging errors with op.
func newGamma(op string, gamma float64) (*hyper.Parameter, error) {
	p, err := hyper.New(gamma, gammaDomain())
	if err != nil {
		return nil, fmt.Errorf("%s: exponent: %w", op, err)
	}

	return p, nil
}
