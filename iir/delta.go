package iir

// DeltaDC returns the per-sample ratio of a complex sequence: cval over
// prior_cval, or zero when prior_cval is zero. This is the complex
// analogue of a difference — the spec tracks phase/period information
// multiplicatively, so "change since last sample" is a ratio, not a
// subtraction.
func DeltaDC(cval, priorCval complex128) complex128 {
	if priorCval != 0 {
		return cval / priorCval
	}
	return 0
}

// Delta tracks the sample-to-sample difference of a float64 sequence.
//
// The reference implementation this is ported from has has_value
// inverted and never advances prior_sequence inside its sample step, so
// it can never report a second delta. This type fixes that to the
// natural semantics: Sample reports ok=true from the second call
// onward, and always advances the stored prior value.
type Delta struct {
	hasPrior bool
	prior    float64
}

// NewDelta returns a Delta optionally pre-seeded with a prior value.
func NewDelta(hasPrior bool, priorSequence float64) *Delta {
	return &Delta{hasPrior: hasPrior, prior: priorSequence}
}

// Sample returns the difference between x and the previously sampled
// value. ok is false on the first sample, when there is no prior value
// to difference against.
func (d *Delta) Sample(x float64) (delta float64, ok bool) {
	if d.hasPrior {
		delta = x - d.prior
		ok = true
	}
	d.prior = x
	d.hasPrior = true
	return delta, ok
}

// DeltaC tracks the sample-to-sample ratio of a complex128 sequence,
// via DeltaDC. Same fixed has-prior/advance semantics as Delta.
type DeltaC struct {
	hasPrior bool
	prior    complex128
}

// NewDeltaC returns a DeltaC optionally pre-seeded with a prior value.
func NewDeltaC(hasPrior bool, priorSequence complex128) *DeltaC {
	return &DeltaC{hasPrior: hasPrior, prior: priorSequence}
}

// Sample returns the ratio of x over the previously sampled value. ok is
// false on the first sample.
func (d *DeltaC) Sample(x complex128) (delta complex128, ok bool) {
	if d.hasPrior {
		delta = DeltaDC(x, d.prior)
		ok = true
	}
	d.prior = x
	d.hasPrior = true
	return delta, ok
}
