// Package lifecycle tracks an unbounded, continuously unwrapped phase
// accumulator over a complex sequence: each full rotation through the
// complex plane increments or decrements a cycle counter, and the
// lifecycle value is the cycle count plus the fractional turn within
// the current cycle.
package lifecycle

import (
	"math/cmplx"

	"github.com/alsosprachben/recept/iir"
	"github.com/alsosprachben/recept/tau"
)

// Lifecycle is the unwrapped phase accumulator itself.
type Lifecycle struct {
	MaxR float64

	Cval complex128
	F    float64
	R    float64
	Phi  float64

	Cycle     int
	Lifecycle float64
}

// New returns a Lifecycle bounded to maxR (the expected maximum
// magnitude of sampled values, used by callers for scaling displays).
func New(maxR float64) *Lifecycle {
	return &Lifecycle{MaxR: maxR}
}

// Sample folds cval into the accumulator and returns the updated
// lifecycle value. F is a free-energy-like scalar, the difference of
// cval's real and imaginary parts.
func (lc *Lifecycle) Sample(cval complex128) float64 {
	lc.Cval = cval
	lc.F = real(cval) - imag(cval)

	prevPhi := lc.Phi
	lc.R = cmplx.Abs(cval)
	lc.Phi = tau.RadToTurns(cmplx.Phase(cval))

	switch {
	case lc.Phi-prevPhi > 0.5:
		lc.Cycle--
	case lc.Phi-prevPhi < -0.5:
		lc.Cycle++
	}

	lc.Lifecycle = float64(lc.Cycle) + lc.Phi
	return lc.Lifecycle
}

// Derive drives a Lifecycle from the first and second derivatives of a
// real-valued sequence, either sampled directly or exponentially
// smoothed first.
type Derive struct {
	LC             Lifecycle
	ResponseFactor float64

	dAvg  iir.Smoother[float64]
	ddAvg iir.Smoother[float64]

	D, DD       float64
	Cval        complex128
	DAvg, DDAvg float64
	CvalAvg     complex128
}

// NewDerive returns a Derive bounded to maxR, smoothing its averaged
// samples with responseFactor.
func NewDerive(maxR, responseFactor float64) *Derive {
	return &Derive{
		LC:             Lifecycle{MaxR: maxR},
		ResponseFactor: responseFactor,
	}
}

func (d *Derive) derive(v1, v2, v3 float64) {
	d1 := v2 - v1
	d2 := v3 - v2
	d.D = d1
	d.DD = d2 - d1
}

// SampleDirect drives the lifecycle directly from the first and second
// derivative of v1, v2, v3 (three successive samples of a sequence).
func (d *Derive) SampleDirect(v1, v2, v3 float64) float64 {
	d.derive(v1, v2, v3)
	d.Cval = complex(d.D, d.DD)
	return d.LC.Sample(d.Cval)
}

// SampleAvg drives the lifecycle from an exponentially smoothed version
// of the first and second derivative of v1, v2, v3.
func (d *Derive) SampleAvg(v1, v2, v3 float64) float64 {
	d.derive(v1, v2, v3)

	d.DAvg = d.dAvg.Sample(d.D, d.ResponseFactor)
	d.DDAvg = d.ddAvg.Sample(d.DD, d.ResponseFactor)

	d.CvalAvg = complex(d.DAvg, d.DDAvg)
	return d.LC.Sample(d.CvalAvg)
}

// Iter drives a Lifecycle from the first and second discrete
// differences of an already-scalar sequence, rather than from three
// explicit samples at once.
type Iter struct {
	LC Lifecycle

	dState  iir.Delta
	ddState iir.Delta

	D, DD float64
	Cval  complex128
}

// NewIter returns an Iter bounded to maxR.
func NewIter(maxR float64) *Iter {
	return &Iter{LC: Lifecycle{MaxR: maxR}}
}

// Sample folds value into the first and second difference trackers and
// drives the lifecycle from the result.
func (it *Iter) Sample(value float64) float64 {
	it.D, _ = it.dState.Sample(value)
	it.DD, _ = it.ddState.Sample(it.D)
	it.Cval = complex(it.D, it.DD)
	return it.LC.Sample(it.Cval)
}
