package iir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Distribution_ConstantInputHasZeroDeviation(t *testing.T) {
	d := NewDistribution(2.0)
	var ave, dev float64
	for i := 0; i < 100; i++ {
		ave, dev = d.Sample(2.0, 5)
	}
	assert.InDelta(t, 2.0, ave, 1e-9)
	assert.InDelta(t, 0.0, dev, 1e-9)
}

func Test_Distribution_StepInputGrowsDeviation(t *testing.T) {
	d := NewDistribution(0.0)
	_, dev := d.Sample(10.0, 4)
	assert.Greater(t, dev, 0.0)
}

func Test_WeightedDistribution_UsesFixedWindow(t *testing.T) {
	wd := NewWeightedDistribution(0.0, 4)
	ave, _ := wd.Sample(1.0)
	assert.InDelta(t, 0.25, ave, 1e-9)
}

func Test_DistributionC_ConstantInputHasZeroDeviation(t *testing.T) {
	d := NewDistributionC(complex(1, 1))
	var dev complex128
	for i := 0; i < 100; i++ {
		_, dev = d.Sample(complex(1, 1), 5)
	}
	assert.InDelta(t, 0.0, real(dev), 1e-6)
}

func Test_DistributionC_DeviationIsRealValued(t *testing.T) {
	d := NewDistributionC(complex(1, 0))
	_, dev := d.Sample(complex(2, 0), 4)
	assert.Equal(t, 0.0, imag(dev))
}
