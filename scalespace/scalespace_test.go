package scalespace

import (
	"testing"

	"github.com/alsosprachben/recept/receptor"
	"github.com/stretchr/testify/assert"
)

func Test_New_BuildsThreeBandwidthSensors(t *testing.T) {
	field := receptor.Field{Period: 20, PeriodFactor: 1, PhaseFactor: 1}
	s := New(field, 100, 1.5)
	assert.Equal(t, 20.0, s.Field().Period)
}

func Test_Sample_ReturnsConceptAndLifecycles(t *testing.T) {
	field := receptor.Field{Period: 20, PeriodFactor: 1, PhaseFactor: 1}
	s := New(field, 100, 1.5)

	var v Value
	for i := 0; i < 100; i++ {
		v = s.Sample(float64(i), 1.0)
	}
	assert.NotNil(t, v.Concept)
	assert.NotNil(t, v.PeriodLifecycle)
	assert.NotNil(t, v.BeatLifecycle)
}

func Test_AddMonochord_UsesBothSensorsOwnPeriods(t *testing.T) {
	source := New(receptor.Field{Period: 10, PeriodFactor: 1, PhaseFactor: 1}, 100, 1.5)
	target := New(receptor.Field{Period: 20, PeriodFactor: 1, PhaseFactor: 1}, 100, 1.5)

	err := target.AddMonochord(source, 1.0)
	assert.NoError(t, err)
	assert.Len(t, target.monochords, 1)
	assert.InDelta(t, 10.0, target.monochords[0].MC.SourcePeriod, 1e-9)
	assert.InDelta(t, 20.0, target.monochords[0].MC.TargetPeriod, 1e-9)
}

func Test_AddMonochord_ReturnsErrorPastCapacity(t *testing.T) {
	field := receptor.Field{Period: 20, PeriodFactor: 1, PhaseFactor: 1}
	target := New(field, 100, 1.5)
	source := New(field, 100, 1.5)

	for i := 0; i < MaxMonochords; i++ {
		assert.NoError(t, target.AddMonochord(source, 1.0))
	}
	assert.Error(t, target.AddMonochord(source, 1.0))
}
