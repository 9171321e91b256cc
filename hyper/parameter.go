package hyper

import "fmt"

// Parameter is a scalar hyperparameter whose value is guaranteed to lie
// inside its domain Interval. The guarantee holds for the Parameter's whole
// lifetime: construction validates, and Set revalidates before storing.
//
// A Parameter never changes identity — updating produces the same object
// with a new value, never a new Parameter.
type Parameter struct {
	value  float64
	domain Interval
	fixed  bool
}

// New constructs a Parameter holding v, validated against domain.
// Returns ErrOutOfDomain (wrapped with the offending value and domain)
// when domain does not contain v.
func New(v float64, domain Interval) (*Parameter, error) {
	if !domain.Contains(v) {
		return nil, fmt.Errorf("New: value %g outside domain %s: %w", v, domain, ErrOutOfDomain)
	}

	return &Parameter{value: v, domain: domain}, nil
}

// NewFixed constructs a Parameter like New, additionally marked fixed:
// Set will refuse any update. Used for hyperparameters that an optimizer
// must treat as constants.
func NewFixed(v float64, domain Interval) (*Parameter, error) {
	p, err := New(v, domain)
	if err != nil {
		return nil, err
	}
	p.fixed = true

	return p, nil
}

// Value reports the current value.
func (p *Parameter) Value() float64 { return p.value }

// Domain reports the validation interval.
func (p *Parameter) Domain() Interval { return p.domain }

// IsFixed reports whether in-place updates are refused.
func (p *Parameter) IsFixed() bool { return p.fixed }

// Set updates the value in place after revalidating it against the domain.
// Returns ErrFixed for fixed parameters and ErrOutOfDomain for values the
// domain rejects; the stored value is untouched on failure.
func (p *Parameter) Set(v float64) error {
	if p.fixed {
		return fmt.Errorf("Set: %w", ErrFixed)
	}
	if !p.domain.Contains(v) {
		return fmt.Errorf("Set: value %g outside domain %s: %w", v, p.domain, ErrOutOfDomain)
	}
	p.value = v

	return nil
}

// Equal reports value equality. Domains and fixed flags do not participate:
// two parameters are interchangeable in a kernel exactly when their values
// coincide.
func (p *Parameter) Equal(q *Parameter) bool {
	if p == nil || q == nil {
		return p == q
	}

	return p.value == q.value
}
