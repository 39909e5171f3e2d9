package percept

import (
	"math"
	"testing"

	"github.com/alsosprachben/recept/monochord"
	"github.com/alsosprachben/recept/receptor"
	"github.com/stretchr/testify/assert"
)

func identityMonochord(t *testing.T) *monochord.Monochord {
	t.Helper()
	return monochord.New(10, 10, 1)
}

func Test_NewSensor_SamplesAndTracksConcept(t *testing.T) {
	field := receptor.Field{Period: 20, PeriodFactor: 1, PhaseFactor: 1}
	s := NewSensor(field)

	for i := 0; i < 200; i++ {
		s.Sample(float64(i), math.Sin(2*math.Pi*float64(i)/20))
	}

	concept := s.Concept()
	assert.Greater(t, concept.AvgInstantPeriod, 0.0)
}

func Test_Sensor_UpdatePeriodRetunesField(t *testing.T) {
	field := receptor.Field{Period: 20, PeriodFactor: 1, PhaseFactor: 1}
	s := NewSensor(field)
	s.UpdatePeriod(40)
	assert.InDelta(t, 40.0, s.Field().Period, 1e-9)
}

func Test_Sensor_UpdatePeriodPreservesPhaseOverPeriodRatio(t *testing.T) {
	field := receptor.Field{Period: 20, Phase: 5, PeriodFactor: 1, PhaseFactor: 1}
	s := NewSensor(field)
	ratioBefore := s.Field().Phase / s.Field().Period
	s.UpdatePeriod(40)
	ratioAfter := s.Field().Phase / s.Field().Period
	assert.InDelta(t, ratioBefore, ratioAfter, 1e-9)
}

func Test_UpdateFromConcept_GuardsShortPeriods(t *testing.T) {
	field := receptor.Field{Period: 20, PeriodFactor: 1, PhaseFactor: 1}
	s := NewSensor(field)
	c := &Concept{AvgInstantPeriod: 1.0}
	s.UpdateFromConcept(c)
	assert.InDelta(t, 20.0, s.Field().Period, 1e-9)

	c.AvgInstantPeriod = 50
	s.UpdateFromConcept(c)
	assert.InDelta(t, 50.0, s.Field().Period, 1e-9)
}

func Test_Sensor_DiagnosticsSummarizesRecordedPeriods(t *testing.T) {
	field := receptor.Field{Period: 20, PeriodFactor: 1, PhaseFactor: 1}
	s := NewSensor(field)

	mean, stddev := s.Diagnostics()
	assert.Equal(t, 0.0, mean)
	assert.Equal(t, 0.0, stddev)

	for i := 0; i < 200; i++ {
		s.Sample(float64(i), math.Sin(2*math.Pi*float64(i)/20))
	}

	mean, _ = s.Diagnostics()
	assert.Greater(t, mean, 0.0)
}

// Test_SuperimposeFromPercept_MonochordMatchesSource is scenario S5:
// a source sensor at period 10 and a target sensor at period 20, linked
// by a ratio-2 monochord, have phiOffset=0 (value=1+0i); after ten
// samples (one period) of a 10-period tone, superimposing the source's percept onto
// the target should make the target read approximately what the source
// read.
func Test_SuperimposeFromPercept_MonochordMatchesSource(t *testing.T) {
	mc := monochord.New(10, 20, 2)
	assert.InDelta(t, 1.0, real(mc.Value()), 1e-9)
	assert.InDelta(t, 0.0, imag(mc.Value()), 1e-9)

	source := NewSensor(receptor.Field{Period: 10, PeriodFactor: 1, PhaseFactor: 1})
	target := &Percept{}

	for i := 0; i < 10; i++ {
		source.Sample(float64(i), math.Sin(2*math.Pi*float64(i)/10))
	}

	SuperimposeFromPercept(source.Percept(), target, mc)
	assert.InDelta(t, real(source.Percept().Value.Cval), real(target.Value.Cval), 1e-9)
	assert.InDelta(t, imag(source.Percept().Value.Cval), imag(target.Value.Cval), 1e-9)
}

// Test_NewRecept_ZeroInstantFrequencyYieldsZeroPeriod covers spec.md §8
// invariant 5: instant_period is only 1/instant_frequency when
// instant_frequency is nonzero; when the phase-per-time term exactly
// cancels the tuned frequency, instant_period must be zero, not +-Inf.
func Test_NewRecept_ZeroInstantFrequencyYieldsZeroPeriod(t *testing.T) {
	field := receptor.Field{Period: 4}
	prior := Percept{Field: field, Timestamp: 0, Value: receptor.NewValue(complex(1, 0))}
	phase := Percept{Field: field, Timestamp: 1, Value: receptor.NewValue(complex(0, 1))}

	r := NewRecept(phase, prior)
	assert.InDelta(t, 0.0, r.InstantFrequency, 1e-9)
	assert.Equal(t, 0.0, r.InstantPeriod)
	assert.False(t, math.IsInf(r.InstantPeriod, 0))
	assert.False(t, math.IsNaN(r.InstantPeriod))
}

func Test_SuperimposeFromPercept_AddsSourceIntoTarget(t *testing.T) {
	source := &Percept{Value: receptor.NewValue(complex(1, 0))}
	target := &Percept{Value: receptor.NewValue(complex(0, 1))}

	mc := identityMonochord(t)
	SuperimposeFromPercept(source, target, mc)

	assert.InDelta(t, 1.0, real(target.Value.Cval), 1e-9)
	assert.InDelta(t, 1.0, imag(target.Value.Cval), 1e-9)
}
