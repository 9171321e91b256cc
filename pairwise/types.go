package pairwise

import "gonum.org/v1/gonum/mat"

// Orientation declares which axis of a feature matrix holds the sample
// vectors. It is an explicit parameter of every matrix operation — never
// inferred from shapes — and is the single indirection point the rest of
// the engine is blind to: sample count, feature dimension and sub-vector
// extraction all derive from it.
type Orientation int

const (
	// RowSamples treats each matrix row as one sample vector
	// (an n×D matrix holds n samples of dimension D).
	RowSamples Orientation = iota

	// ColSamples treats each matrix column as one sample vector
	// (a D×n matrix holds n samples of dimension D).
	ColSamples
)

// String renders the orientation for error messages and logs.
func (o Orientation) String() string {
	switch o {
	case RowSamples:
		return "row-samples"
	case ColSamples:
		return "col-samples"
	default:
		return "unknown"
	}
}

// valid reports whether o is one of the two declared orientations.
func (o Orientation) valid() bool {
	return o == RowSamples || o == ColSamples
}

// samples reports the number of sample vectors x holds under o.
func (o Orientation) samples(x *mat.Dense) int {
	r, c := x.Dims()
	if o == RowSamples {
		return r
	}

	return c
}

// features reports the feature dimension of x under o.
func (o Orientation) features(x *mat.Dense) int {
	r, c := x.Dims()
	if o == RowSamples {
		return c
	}

	return r
}

// sample extracts the i-th sample vector of x under o. For RowSamples the
// returned slice is a zero-copy view into x; for ColSamples the column is
// copied into buf (which must have length o.features(x)) and buf is
// returned. Callers must treat the result as read-only.
func (o Orientation) sample(x *mat.Dense, i int, buf []float64) []float64 {
	if o == RowSamples {
		return x.RawRowView(i)
	}
	mat.Col(buf, i, x)

	return buf
}
