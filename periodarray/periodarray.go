// Package periodarray implements the logarithmic grid of period
// scale-space sensors that gives this module its pitch resolution: one
// scalespace.Sensor per period, spaced geometrically across a requested
// octave range, optionally cross-linked by monochords.
package periodarray

import (
	"fmt"
	"math"

	"github.com/emer/etable/etensor"

	"github.com/alsosprachben/recept/receptor"
	"github.com/alsosprachben/recept/recepterr"
	"github.com/alsosprachben/recept/scalespace"
)

// MaxSensors bounds the number of period sensors a single Array can
// hold. The sample path never allocates, so the entry bank is sized
// once at construction.
const MaxSensors = 256

// Entry pairs a scale-space sensor with the view of its most recently
// sampled output.
type Entry struct {
	Sensor *scalespace.Sensor
	Value  scalespace.Value
}

// Array is the logarithmic grid of period scale-space sensors.
type Array struct {
	field           receptor.Field
	responsePeriod  float64
	scaleFactor     float64
	octaveBandwidth float64
	periodBandwidth float64

	entries []*Entry
}

// New returns an empty Array tuned by field: responsePeriod controls how
// quickly each sensor's period/beat lifecycle tracking responds,
// octaveBandwidth is the number of sensors per octave once populated,
// and scaleFactor is the bandwidth ratio between each scale-space
// sensor's three internal bandwidth sensors.
func New(field receptor.Field, responsePeriod, octaveBandwidth, scaleFactor float64) (*Array, error) {
	if octaveBandwidth <= 0 {
		return nil, fmt.Errorf("periodarray: octave bandwidth %v: %w", octaveBandwidth, recepterr.ErrInvalidParameter)
	}
	return &Array{
		field:           field,
		responsePeriod:  responsePeriod,
		scaleFactor:     scaleFactor,
		octaveBandwidth: octaveBandwidth,
		periodBandwidth: 1.0 / (math.Pow(2.0, 1.0/octaveBandwidth) - 1),
		entries:         make([]*Entry, 0, MaxSensors),
	}, nil
}

// Len returns the number of period sensors currently in the array.
func (a *Array) Len() int {
	return len(a.entries)
}

// Entry returns the i'th sensor entry.
func (a *Array) Entry(i int) *Entry {
	return a.entries[i]
}

// AddPeriodSensor adds one scale-space sensor tuned to period, with its
// period-factor bandwidth scaled by bandwidthFactor, and returns its
// index. It returns ErrCapacityExceeded once MaxSensors entries exist.
func (a *Array) AddPeriodSensor(period, bandwidthFactor float64) (int, error) {
	if len(a.entries) >= MaxSensors {
		return -1, fmt.Errorf("periodarray: adding period sensor: %w", recepterr.ErrCapacityExceeded)
	}

	field := a.field
	field.Period = period
	field.PeriodFactor = a.periodBandwidth * bandwidthFactor

	entry := &Entry{Sensor: scalespace.New(field, a.responsePeriod, a.scaleFactor)}
	a.entries = append(a.entries, entry)
	return len(a.entries) - 1, nil
}

// Populate fills the array with a logarithmic grid of period sensors
// spanning the given number of octaves below the array's base period
// (inclusive of the base period itself), each with the given bandwidth
// factor.
func (a *Array) Populate(octaves, bandwidthFactor float64) error {
	start := -int(a.octaveBandwidth * octaves)
	for n := start; n <= 0; n++ {
		period := a.field.Period * math.Pow(2, float64(n)/a.octaveBandwidth)
		if _, err := a.AddPeriodSensor(period, bandwidthFactor); err != nil {
			return err
		}
	}
	return nil
}

// AddMonochord registers a cross-sensor monochord on the sensor at
// targetIndex, drawing from the sensor at sourceIndex, scaled by ratio.
func (a *Array) AddMonochord(sourceIndex, targetIndex int, ratio float64) error {
	return a.entries[targetIndex].Sensor.AddMonochord(a.entries[sourceIndex].Sensor, ratio)
}

// Sample advances every sensor in the array by one raw sample, at the
// given time. The full array is fanned out through each pipeline stage
// in turn (every sensor demodulates the sample, then every sensor's
// monochords are superimposed, then every sensor's lifecycle is
// advanced) so a monochord's source sensor always contributes this
// time step's percept, regardless of registration order.
func (a *Array) Sample(time, value float64) {
	for _, e := range a.entries {
		e.Sensor.SampleSensors(time, value)
	}
	for _, e := range a.entries {
		e.Sensor.SampleMonochords()
	}
	for _, e := range a.entries {
		e.Sensor.SampleLifecycle()
		e.Value = e.Sensor.Values()
	}
}

// Snapshot copies the array's current (r, phi, lifecycle) triples into
// a shaped etensor.Float32 frame, one row per sensor, giving an external
// frame renderer a typed view instead of a raw slice.
func (a *Array) Snapshot() *etensor.Float32 {
	t := etensor.NewFloat32([]int{len(a.entries), 3}, nil, []string{"sensor", "component"})
	for i, e := range a.entries {
		t.SetFloat([]int{i, 0}, e.Value.Concept.Recept.Value.R)
		t.SetFloat([]int{i, 1}, e.Value.Concept.Recept.Value.Phi)
		t.SetFloat([]int{i, 2}, e.Value.PeriodLifecycle.Lifecycle)
	}
	return t
}
