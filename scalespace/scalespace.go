// Package scalespace implements the three-bandwidth period scale-space
// sensor: a bank of three percept.Sensor instances tuned to the same
// period at different response bandwidths, cross-fed by monochords from
// other scale-space sensors, and tracked by a pair of lifecycle
// detectors (one for the period itself, one for the beat derived from
// it).
package scalespace

import (
	"fmt"
	"math"

	"github.com/alsosprachben/recept/lifecycle"
	"github.com/alsosprachben/recept/monochord"
	"github.com/alsosprachben/recept/percept"
	"github.com/alsosprachben/recept/receptor"
	"github.com/alsosprachben/recept/recepterr"
)

// MaxMonochords bounds how many cross-sensor monochords a single Sensor
// can carry. This module has no dynamic allocation on the sample path,
// so the bank is a fixed-size slice allocated once at construction.
const MaxMonochords = 8

// bandwidthCount is the number of period sensors tuned to the same
// period at different bandwidths, fixed at three (narrow, middle,
// wide), matching the reference implementation's fixed 3-element
// sensor bank.
const bandwidthCount = 3

// MonochordEntry is one cross-sensor link: the sensor this monochord
// draws its source percept from, and the monochord rotation itself.
type MonochordEntry struct {
	Source *Sensor
	MC     *monochord.Monochord
}

// Value is the set of collaborators a caller reads a scale-space
// sensor's output through: the period concept (from the sensor bank's
// first, narrowest-bandwidth member), and the two lifecycle trackers.
type Value struct {
	Concept         *percept.Concept
	PeriodLifecycle *lifecycle.Lifecycle
	BeatLifecycle   *lifecycle.Lifecycle
}

// Sensor is a period scale-space sensor: three percept.Sensor instances
// tuned to the same period at geometrically increasing bandwidths, plus
// the lifecycle detectors driven by their combined output.
type Sensor struct {
	field          receptor.Field
	responsePeriod float64
	scaleFactor    float64

	sensors [bandwidthCount]*percept.Sensor

	periodLifecycle *lifecycle.Derive
	beatLifecycle   *lifecycle.Iter

	monochords []MonochordEntry
}

// New returns a Sensor tuned by field, averaging its period/beat
// lifecycles over responsePeriod samples, with each of the three
// bandwidth sensors separated by scaleFactor.
func New(field receptor.Field, responsePeriod, scaleFactor float64) *Sensor {
	s := &Sensor{
		field:          field,
		responsePeriod: responsePeriod,
		scaleFactor:    scaleFactor,
		monochords:     make([]MonochordEntry, 0, MaxMonochords),
	}

	for i := 0; i < bandwidthCount; i++ {
		sensorField := field
		sensorField.PeriodFactor *= math.Pow(scaleFactor, -1.0-float64(i))
		s.sensors[i] = percept.NewSensor(sensorField)
	}

	s.periodLifecycle = lifecycle.NewDerive(field.Period, responsePeriod)
	s.beatLifecycle = lifecycle.NewIter(field.Period)

	return s
}

// Field returns the sensor's tuned receptive field.
func (s *Sensor) Field() *receptor.Field {
	return &s.field
}

// SampleSensors demodulates the three bandwidth sensors with the same
// raw sample. Exposed so a period array can fan this step out across
// its whole sensor bank before any sensor's monochords run.
func (s *Sensor) SampleSensors(time, value float64) {
	for i := 0; i < bandwidthCount; i++ {
		s.sensors[i].Sample(time, value)
	}
}

// SampleMonochords superimposes every cross-sensor monochord registered
// on this sensor, then re-derives each bandwidth sensor's recept and
// concept from the resulting percept.
func (s *Sensor) SampleMonochords() {
	for _, e := range s.monochords {
		superimposeMonochordOn(e.Source, s, e.MC)
	}
}

func superimposeMonochordOn(source, target *Sensor, mc *monochord.Monochord) {
	for i := 0; i < bandwidthCount; i++ {
		percept.SuperimposeFromPercept(source.sensors[i].Percept(), target.sensors[i].Percept(), mc)
	}
	for i := 0; i < bandwidthCount; i++ {
		target.sensors[i].Receive()
	}
}

// SampleLifecycle drives the period and beat lifecycles from the three
// bandwidth sensors' percept magnitudes.
func (s *Sensor) SampleLifecycle() {
	s.periodLifecycle.SampleAvg(
		s.sensors[0].Percept().Value.R,
		s.sensors[1].Percept().Value.R,
		s.sensors[2].Percept().Value.R,
	)
	s.beatLifecycle.Sample(s.periodLifecycle.LC.Lifecycle)
}

// Values returns the current read-only view of this sensor's outputs.
func (s *Sensor) Values() Value {
	return Value{
		Concept:         s.sensors[0].Concept(),
		PeriodLifecycle: &s.periodLifecycle.LC,
		BeatLifecycle:   &s.beatLifecycle.LC,
	}
}

// Diagnostics returns the mean and standard deviation of the
// narrowest-bandwidth bandwidth sensor's recently recorded
// instantaneous periods, a batch statistics summary for callers such as
// a CLI's audio-stats report rather than the per-sample concept.
func (s *Sensor) Diagnostics() (mean, stddev float64) {
	return s.sensors[0].Diagnostics()
}

// Sample advances the full per-sample pipeline in the ordering the rest
// of this module depends on: demodulate the bandwidth sensors, fold in
// any cross-sensor monochords, drive the lifecycles, then return the
// resulting view.
func (s *Sensor) Sample(time, value float64) Value {
	s.SampleSensors(time, value)
	s.SampleMonochords()
	s.SampleLifecycle()
	return s.Values()
}

// AddMonochord registers a cross-sensor monochord drawing from source
// into this sensor, rotating source's period space into this sensor's,
// scaled by ratio. It returns ErrCapacityExceeded once MaxMonochords
// entries are registered.
func (s *Sensor) AddMonochord(source *Sensor, ratio float64) error {
	if len(s.monochords) >= MaxMonochords {
		return fmt.Errorf("scalespace: adding monochord: %w", recepterr.ErrCapacityExceeded)
	}
	mc := monochord.New(source.field.Period, s.field.Period, ratio)
	s.monochords = append(s.monochords, MonochordEntry{Source: source, MC: mc})
	return nil
}
