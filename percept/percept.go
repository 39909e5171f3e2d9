// Package percept implements the Helmholtz-style percept/recept/concept
// pipeline: a snapshot of a sensor's periodic value (Percept), the
// instantaneous period deduced from two successive snapshots (Recept),
// and the running concept formed by averaging and bounding that
// instantaneous period over time (Concept).
package percept

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/alsosprachben/recept/demod"
	"github.com/alsosprachben/recept/iir"
	"github.com/alsosprachben/recept/monochord"
	"github.com/alsosprachben/recept/receptor"
)

// diagnosticsRingSize bounds the batch-statistics ring buffer kept
// alongside each sensor's concept state. It is a fixed-size array, not
// a slice that grows, so recording a sample never allocates.
const diagnosticsRingSize = 64

// Percept is an immutable snapshot of a sensor's tuned field and
// demodulated value at one point in time.
type Percept struct {
	Field     receptor.Field
	Timestamp float64
	Value     receptor.Value
}

// NewPercept snapshots the current state of a dynamic time smoother at
// time.
func NewPercept(dts *demod.DynamicTimeSmoother, time float64) Percept {
	return Percept{
		Field:     dts.EffectiveField(),
		Timestamp: time,
		Value:     *dts.Value(),
	}
}

// SuperimposeFromPercept rotates source's value onto target's tuning
// via mc and adds it into target's value in place, without mutating
// source.
func SuperimposeFromPercept(source, target *Percept, mc *monochord.Monochord) {
	rotated := mc.DupRotate(source.Value)
	target.Value.Superimpose(rotated)
}

// Recept is the instantaneous period and frequency deduced from two
// successive percepts of the same sensor.
type Recept struct {
	Field            receptor.Field
	Frequency        float64
	InstantPeriod    float64
	InstantFrequency float64
	Value            receptor.Value
	Duration         float64
}

// NewRecept deduces a Recept from phase (the current percept) and
// priorPhase (the percept immediately before it).
func NewRecept(phase, priorPhase Percept) Recept {
	var r Recept
	r.Field = phase.Field
	r.Field.Period = (phase.Field.Period + priorPhase.Field.Period) / 2
	r.Field.Glissando = (phase.Field.Glissando + priorPhase.Field.Glissando) / 2

	r.Frequency = 1.0 / r.Field.Period

	r.Value.Timestamp = phase.Value.Timestamp
	r.Value.Cval = iir.DeltaDC(phase.Value.Cval, priorPhase.Value.Cval)
	r.Value.Polar()

	r.Duration = phase.Timestamp - priorPhase.Timestamp

	var phiPerTime float64
	if r.Duration > 0 {
		phiPerTime = r.Value.Phi / r.Duration
	}

	r.InstantFrequency = r.Frequency - phiPerTime
	if r.InstantFrequency == 0 {
		r.InstantPeriod = 0
	} else {
		r.InstantPeriod = 1.0 / r.InstantFrequency
	}

	return r
}

// ConceptState is the long-lived smoothing state behind a sensor's
// running Concept: unlike Percept and Recept, this is not a snapshot,
// it accumulates across every sample.
type ConceptState struct {
	avgInstantPeriod    iir.Smoother[float64]
	instantPeriodDelta  iir.Delta
	instantPeriodStddev iir.Smoother[float64]

	ring       [diagnosticsRingSize]float64
	ringPos    int
	ringFilled bool
}

// NewConceptState returns a ConceptState seeded from field's period.
func NewConceptState(field receptor.Field) *ConceptState {
	return &ConceptState{
		avgInstantPeriod:    *iir.NewSmoother(field.Period),
		instantPeriodDelta:  *iir.NewDelta(false, 0),
		instantPeriodStddev: *iir.NewSmoother(field.Period),
	}
}

// record appends instantPeriod into the diagnostics ring buffer,
// overwriting the oldest entry once full.
func (cs *ConceptState) record(instantPeriod float64) {
	cs.ring[cs.ringPos] = instantPeriod
	cs.ringPos = (cs.ringPos + 1) % diagnosticsRingSize
	if cs.ringPos == 0 {
		cs.ringFilled = true
	}
}

// Diagnostics returns the mean and standard deviation of the most
// recently recorded instantaneous periods, a batch summary over the
// same fixed-size window rather than the running exponential concept.
// It is not on the per-sample hot path's output; callers (tests, the
// CLI's -a summary) pull it on demand.
func (cs *ConceptState) Diagnostics() (mean, stddev float64) {
	n := cs.ringPos
	if cs.ringFilled {
		n = diagnosticsRingSize
	}
	if n == 0 {
		return 0, 0
	}
	window := cs.ring[:n]
	return stat.Mean(window, nil), stat.StdDev(window, nil)
}

// Concept is the running, bounded estimate of a sensor's period: an
// average instantaneous period and the deviation from it, with enough
// history to judge whether the sensor has converged.
type Concept struct {
	Recept Recept

	AvgInstantPeriod       float64
	AvgInstantPeriodOffset float64

	HasInstantPeriodDelta bool
	InstantPeriodDelta    float64
	InstantPeriodStddev   float64
}

// NewConcept folds recept into cs and returns the resulting Concept.
func NewConcept(cs *ConceptState, recept Recept) Concept {
	var c Concept
	c.Recept = recept

	c.AvgInstantPeriod = cs.avgInstantPeriod.Sample(recept.InstantPeriod, recept.Field.Period*recept.Field.PhaseFactor)
	c.AvgInstantPeriodOffset = c.AvgInstantPeriod - recept.Field.Period

	delta, ok := cs.instantPeriodDelta.Sample(c.AvgInstantPeriod)
	if !ok {
		delta = c.AvgInstantPeriod
		ok = true
	}
	c.HasInstantPeriodDelta = ok
	c.InstantPeriodDelta = delta

	c.InstantPeriodStddev = cs.instantPeriodStddev.Sample(math.Abs(c.InstantPeriodDelta), math.Abs(recept.InstantPeriod*recept.Field.PhaseFactor))

	cs.record(recept.InstantPeriod)

	return c
}

// Sensor is a single period sensor: it demodulates a raw sample stream
// at a tuned period/phase, deduces the instantaneous period sample to
// sample, and tracks a running concept of that period.
type Sensor struct {
	field receptor.Field
	value receptor.Value

	state *demod.DynamicTimeSmoother
	cs    *ConceptState

	percept         Percept
	priorPercept    Percept
	hasPriorPercept bool

	recept  Recept
	concept Concept
}

// NewSensor returns a Sensor tuned by field, with its value initialized
// to zero.
func NewSensor(field receptor.Field) *Sensor {
	s := &Sensor{field: field}
	s.state = demod.NewDynamicTimeSmoother(&s.field, &s.value, 0)
	s.cs = NewConceptState(field)
	return s
}

// Field returns the sensor's current receptive field.
func (s *Sensor) Field() *receptor.Field {
	return &s.field
}

// Value returns the sensor's current receptive value.
func (s *Sensor) Value() *receptor.Value {
	return &s.value
}

// Percept returns the sensor's most recent percept snapshot.
func (s *Sensor) Percept() *Percept {
	return &s.percept
}

// Concept returns the sensor's current running concept.
func (s *Sensor) Concept() *Concept {
	return &s.concept
}

// Diagnostics returns the mean and standard deviation of this sensor's
// most recently recorded instantaneous periods, a batch summary
// distinct from the running exponential Concept.
func (s *Sensor) Diagnostics() (mean, stddev float64) {
	return s.cs.Diagnostics()
}

// Receive re-derives the sensor's recept and concept from its current
// percept and prior percept. Sample calls this itself after demodulating
// a new sample; callers that mutate the sensor's percept directly (e.g.
// cross-sensor monochord superposition) must call it again afterward.
func (s *Sensor) Receive() {
	s.recept = NewRecept(s.percept, s.priorPercept)
	s.concept = NewConcept(s.cs, s.recept)
}

// Sample demodulates value at time, advances the percept/recept/concept
// pipeline, and updates the sensor's running concept.
func (s *Sensor) Sample(time, value float64) {
	if s.hasPriorPercept {
		s.priorPercept = s.percept
	}
	s.state.Sample(time, value)
	s.percept = NewPercept(s.state, time)
	if !s.hasPriorPercept {
		s.priorPercept = s.percept
		s.hasPriorPercept = true
	}

	s.Receive()
}

// UpdatePeriod retunes the sensor to period. The field's period is
// mutated by the underlying dynamic time smoother, which needs to read
// the prior period (to rescale phase and to compute the glissando
// delta) before overwriting it; setting it here first would corrupt
// both of those computations.
func (s *Sensor) UpdatePeriod(period float64) {
	s.state.UpdatePeriod(period)
}

// UpdatePhase sets the sensor's phase directly.
func (s *Sensor) UpdatePhase(phase float64) {
	s.state.UpdatePhase(phase)
}

// UpdateFromConcept retunes the sensor's period to the concept's
// average instantaneous period, guarding against runaway retuning
// toward implausibly short periods.
func (s *Sensor) UpdateFromConcept(c *Concept) {
	if c.AvgInstantPeriod > 2.0 {
		s.UpdatePeriod(c.AvgInstantPeriod)
	}
}
