// Package demod implements the time-domain heterodyne smoother that
// turns a raw sample stream into a receptive value tuned to a given
// period and phase: a single-bin sliding DFT, continuously demodulated
// and re-smoothed.
package demod

import (
	"github.com/alsosprachben/recept/iir"
	"github.com/alsosprachben/recept/receptor"
	"github.com/alsosprachben/recept/tau"
)

// TimeSmoother demodulates a raw sample stream at a fixed field's
// period and phase, producing a complex receptive value.
type TimeSmoother struct {
	field *receptor.Field
	value *receptor.Value
	s     iir.Smoother[complex128]
}

// NewTimeSmoother returns a TimeSmoother tuned by field, writing its
// output into value. field and value are shared with the caller; Sample
// reads field and mutates value in place.
func NewTimeSmoother(field *receptor.Field, value *receptor.Value) *TimeSmoother {
	return &TimeSmoother{field: field, value: value, s: *iir.NewSmoother(value.Cval)}
}

// Field returns the receptive field this smoother is tuned by.
func (ts *TimeSmoother) Field() *receptor.Field {
	return ts.field
}

// Value returns the receptive value this smoother writes into.
func (ts *TimeSmoother) Value() *receptor.Value {
	return ts.value
}

// Sample folds the raw value at time into the heterodyne smoother and
// updates the associated receptive value (both its rectangular and
// polar components) and timestamp.
func (ts *TimeSmoother) Sample(time, value float64) {
	turns := (time + ts.field.Phase) / ts.field.Period
	mixed := tau.Rect1(turns) * complex(value, 0)
	window := ts.field.Period * ts.field.PeriodFactor
	ts.value.Cval = ts.s.Sample(mixed, window)
	ts.value.Polar()
	ts.value.Timestamp = time
}

// DynamicTimeSmoother is a TimeSmoother whose period can be retuned
// between samples, tracking the resulting period drift ("glissando").
type DynamicTimeSmoother struct {
	ts             TimeSmoother
	periodState    iir.Smoother[float64]
	glissandoState iir.Smoother[float64]
}

// NewDynamicTimeSmoother returns a DynamicTimeSmoother tuned by field,
// writing its output into value, with the glissando tracker seeded at
// initialGlissando.
func NewDynamicTimeSmoother(field *receptor.Field, value *receptor.Value, initialGlissando float64) *DynamicTimeSmoother {
	return &DynamicTimeSmoother{
		ts:             *NewTimeSmoother(field, value),
		periodState:    *iir.NewSmoother(field.Period),
		glissandoState: *iir.NewSmoother(initialGlissando),
	}
}

// Field returns the receptive field this smoother is tuned by.
func (dts *DynamicTimeSmoother) Field() *receptor.Field {
	return dts.ts.Field()
}

// Value returns the receptive value this smoother writes into.
func (dts *DynamicTimeSmoother) Value() *receptor.Value {
	return dts.ts.Value()
}

// UpdatePeriod retunes the smoother to period, smoothing the period and
// glissando trackers and rescaling the field's phase to stay continuous
// across the period change.
func (dts *DynamicTimeSmoother) UpdatePeriod(period float64) {
	field := dts.ts.field
	window := period * field.PeriodFactor
	dts.periodState.Sample(period, window)
	dts.glissandoState.Sample(period-field.Period, window)

	field.Phase = field.Phase / field.Period * period
	field.Period = period
}

// UpdatePhase sets the field's phase directly.
func (dts *DynamicTimeSmoother) UpdatePhase(phase float64) {
	dts.ts.field.Phase = phase
}

// GlissandoSample retunes to period (when positive) before sampling
// value at time, tracking the resulting period drift.
func (dts *DynamicTimeSmoother) GlissandoSample(time, value, period float64) {
	if period > 0 {
		dts.UpdatePeriod(period)
	}
	dts.ts.Sample(time, value)
}

// Sample samples value at time without retuning the period.
func (dts *DynamicTimeSmoother) Sample(time, value float64) {
	dts.GlissandoSample(time, value, 0)
}

// EffectiveField returns a copy of the tuned field with its period
// replaced by the smoothed period estimate.
//
// The reference implementation this is ported from writes the smoothed
// period estimate into both the returned field's Period and its
// Glissando component, rather than writing the independently-tracked
// glissando estimate into Glissando. That is very likely an accidental
// copy-paste in the original; it is reproduced here as is. Within this
// module the reported Glissando is only averaged into a Recept's field;
// the scale-space lifecycles read percept magnitudes, not Glissando.
func (dts *DynamicTimeSmoother) EffectiveField() receptor.Field {
	field := *dts.ts.field
	field.Period = dts.periodState.Value()
	field.Glissando = dts.periodState.Value()
	return field
}
