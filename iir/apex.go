package iir

// Apex reports a float64 sequence's local turning points: Sample returns
// isApex=true on the sample immediately after the delta's sign flips.
type Apex struct {
	delta           Delta
	priorIsPositive bool
}

// NewApex returns an Apex optionally pre-seeded with a prior value.
func NewApex(hasPrior bool, priorSequence float64) *Apex {
	return &Apex{delta: Delta{hasPrior: hasPrior, prior: priorSequence}, priorIsPositive: true}
}

// Sample returns the current delta and whether its sign changed from the
// previously observed sign. The cached sign is updated on every sample
// that has a delta, regardless of whether it changed.
func (a *Apex) Sample(x float64) (delta float64, isApex bool) {
	delta, ok := a.delta.Sample(x)
	if ok {
		isPositive := delta >= 0
		isApex = isPositive != a.priorIsPositive
		a.priorIsPositive = isPositive
	}
	return delta, isApex
}

// ApexC is the complex128 analogue of Apex. The sign used for the
// turning-point test is the sign of the real part of the delta ratio,
// the only total order a complex delta admits here.
type ApexC struct {
	delta           DeltaC
	priorIsPositive bool
}

// NewApexC returns an ApexC optionally pre-seeded with a prior value.
func NewApexC(hasPrior bool, priorSequence complex128) *ApexC {
	return &ApexC{delta: DeltaC{hasPrior: hasPrior, prior: priorSequence}, priorIsPositive: true}
}

// Sample returns the current delta and whether the sign of its real part
// changed from the previously observed sign.
func (a *ApexC) Sample(x complex128) (delta complex128, isApex bool) {
	delta, ok := a.delta.Sample(x)
	if ok {
		isPositive := real(delta) >= 0
		isApex = isPositive != a.priorIsPositive
		a.priorIsPositive = isPositive
	}
	return delta, isApex
}
