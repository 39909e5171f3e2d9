package lifecycle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Lifecycle_TracksMagnitudeAndPhase(t *testing.T) {
	lc := New(1.0)
	got := lc.Sample(complex(0, 1))
	assert.InDelta(t, 1.0, lc.R, 1e-9)
	assert.InDelta(t, 0.25, lc.Phi, 1e-9)
	assert.InDelta(t, 0.25, got, 1e-9)
}

func Test_Lifecycle_CountsFullRotations(t *testing.T) {
	lc := New(1.0)
	// walk steadily counter-clockwise through more than one full turn.
	turns := []float64{0.1, 0.3, 0.45, -0.45, -0.3, -0.1, 0.1}
	for _, turn := range turns {
		rad := turn * 2 * math.Pi
		lc.Sample(complex(math.Cos(rad), math.Sin(rad)))
	}
	assert.NotEqual(t, 0, lc.Cycle)
}

// Test_Lifecycle_WrapsOverManyRotations is scenario S4: a steadily
// rotating unit complex value at period 50 should accumulate 10 full
// cycles after 500 samples, with lifecycle tracking cycle+phi.
func Test_Lifecycle_WrapsOverManyRotations(t *testing.T) {
	lc := New(1.0)
	var got float64
	for t64 := 0; t64 < 500; t64++ {
		rad := 2 * math.Pi * float64(t64) / 50
		got = lc.Sample(complex(math.Cos(rad), math.Sin(rad)))
	}
	assert.Equal(t, 10, lc.Cycle)
	assert.InDelta(t, float64(lc.Cycle)+lc.Phi, got, 1e-9)
}

func Test_Derive_SampleDirectComputesFiniteDifferences(t *testing.T) {
	d := NewDerive(1.0, 4)
	d.SampleDirect(1, 3, 7)
	assert.InDelta(t, 2.0, d.D, 1e-9)
	assert.InDelta(t, 2.0, d.DD, 1e-9)
}

func Test_Iter_SampleTracksRunningDifferences(t *testing.T) {
	it := NewIter(1.0)
	it.Sample(1)
	it.Sample(3)
	it.Sample(7)
	assert.InDelta(t, 4.0, it.D, 1e-9)
	assert.InDelta(t, 2.0, it.DD, 1e-9)
}
