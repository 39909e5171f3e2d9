package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DynamicWindow_FirstSampleReturnsTargetDuration(t *testing.T) {
	dw := NewDynamicWindow(100, 8, false, 0, 1)
	got := dw.Sample(0)
	assert.InDelta(t, 100, got, 1e-9)
}

func Test_DynamicWindow_TracksUnitRate(t *testing.T) {
	dw := NewDynamicWindow(100, 1, true, 0, 1)
	var got float64
	for i := 1; i <= 50; i++ {
		got = dw.Sample(float64(i))
	}
	// one sequence unit of duration per sample, so a 100-unit target
	// duration settles to a window size of ~100 events.
	assert.InDelta(t, 100, got, 1.0)
}

func Test_SmoothDuration_ValueAfterSamples(t *testing.T) {
	sd := NewSmoothDuration[float64](10, 4, true, 0, 1, 0)
	for i := 1; i <= 200; i++ {
		sd.Sample(1.0, float64(i))
	}
	assert.InDelta(t, 1.0, sd.Value(), 1e-2)
}

func Test_SmoothDurationDistributionC_ReturnsRealDeviation(t *testing.T) {
	sdd := NewSmoothDurationDistributionC(10, 4, true, 0, 1, complex(1, 0))
	_, dev := sdd.Sample(complex(1, 0), 1)
	assert.Equal(t, 0.0, imag(dev))
}
