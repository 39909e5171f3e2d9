// Package receptor holds the receptive field and value types shared by
// every period sensor: the tuning parameters a sensor listens with, and
// the periodic (complex) value it currently reports.
package receptor

import "github.com/alsosprachben/recept/tau"

// Field is a sensor's receptive field: the period and phase it is tuned
// to, the window-size factors derived from them, and the glissando
// (period drift) component tracked alongside.
type Field struct {
	Period       float64
	Phase        float64
	PeriodFactor float64
	PhaseFactor  float64
	Glissando    float64
}

// Value is a sensor's current periodic value, carried as a complex
// number together with its polar decomposition.
type Value struct {
	Cval      complex128
	R         float64
	Phi       float64
	Timestamp float64
}

// NewValue returns a Value initialized from cval, with R and Phi
// derived from it.
func NewValue(cval complex128) Value {
	v := Value{Cval: cval}
	v.Polar()
	return v
}

// Polar recomputes R and Phi from Cval.
func (v *Value) Polar() {
	v.R, v.Phi = tau.Polar(v.Cval)
}

// Rect recomputes Cval from Phi and R.
func (v *Value) Rect() {
	v.Cval = tau.Rect(v.Phi, v.R)
}

// Superimpose adds source's complex value into v (in place) and
// recomputes v's polar decomposition, implementing the sensor
// superposition step: v.Cval += source.Cval.
func (v *Value) Superimpose(source Value) {
	v.Cval += source.Cval
	v.Polar()
}
