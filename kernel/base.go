package kernel

// DotProduct is the plain inner-product kernel ⟨x,y⟩ = Σ x[i]·y[i].
// It is Mercer (its Gram matrix is positive semi-definite by construction)
// and is the identity-kappa representative of the inner-product base form.
type DotProduct struct{}

// Phi is the per-component base term x·y.
func (DotProduct) Phi(x, y float64) float64 { return x * y }

// Eval computes ⟨x,y⟩, accumulating left-to-right.
func (DotProduct) Eval(x, y []float64) float64 {
	return sumPhi(DotProduct{}.Phi, x, y)
}

// Base tags the kernel inner-product-decomposable.
func (DotProduct) Base() BaseForm { return BaseInnerProduct }

// Kappa is the identity: the kernel value is the base value itself.
func (DotProduct) Kappa(z float64) float64 { return z }

func (DotProduct) IsMercer() bool           { return true }
func (DotProduct) IsNegativeDefinite() bool { return false }
func (DotProduct) AttainsZero() bool        { return true }
func (DotProduct) AttainsPositive() bool    { return true }
func (DotProduct) AttainsNegative() bool    { return true }

// Equal reports structural equality: any two DotProduct values are equal.
func (DotProduct) Equal(other Kernel) bool {
	_, ok := other.(DotProduct)

	return ok
}

// SquaredDistance is the squared Euclidean distance kernel
// ‖x−y‖² = Σ (x[i]−y[i])². It is conditionally negative-definite (not
// Mercer) and is the identity-kappa representative of the squared-distance
// base form.
type SquaredDistance struct{}

// Phi is the per-component base term (x−y)².
func (SquaredDistance) Phi(x, y float64) float64 {
	d := x - y

	return d * d
}

// Eval computes ‖x−y‖², accumulating left-to-right.
func (SquaredDistance) Eval(x, y []float64) float64 {
	return sumPhi(SquaredDistance{}.Phi, x, y)
}

// Base tags the kernel squared-distance-decomposable.
func (SquaredDistance) Base() BaseForm { return BaseSquaredDistance }

// Kappa is the identity: the kernel value is the base value itself.
func (SquaredDistance) Kappa(z float64) float64 { return z }

func (SquaredDistance) IsMercer() bool           { return false }
func (SquaredDistance) IsNegativeDefinite() bool { return true }
func (SquaredDistance) AttainsZero() bool        { return true }
func (SquaredDistance) AttainsPositive() bool    { return true }
func (SquaredDistance) AttainsNegative() bool    { return false }

// Equal reports structural equality: any two SquaredDistance values are equal.
func (SquaredDistance) Equal(other Kernel) bool {
	_, ok := other.(SquaredDistance)

	return ok
}
