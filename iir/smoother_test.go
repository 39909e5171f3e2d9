package iir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Smoother_PassThroughBelowFactorOne(t *testing.T) {
	s := NewSmoother(1.0)
	got := s.Sample(5.0, 0.5)
	assert.InDelta(t, 5.0, got, 1e-9)
}

func Test_Smoother_ConvergesTowardConstantInput(t *testing.T) {
	s := NewSmoother(0.0)
	for i := 0; i < 5000; i++ {
		s.Sample(1.0, 10)
	}
	assert.InDelta(t, 1.0, s.Value(), 1e-3)
}

func Test_Smoother_Complex(t *testing.T) {
	s := NewSmoother(complex(0, 0))
	for i := 0; i < 5000; i++ {
		s.Sample(complex(1, -1), 10)
	}
	got := s.Value()
	assert.InDelta(t, 1.0, real(got), 1e-3)
	assert.InDelta(t, -1.0, imag(got), 1e-3)
}

func Test_Smoothing_FixedWindow(t *testing.T) {
	sg := NewSmoothing(4.0, 0.0)
	first := sg.Sample(1.0)
	assert.InDelta(t, 0.25, first, 1e-9)
}
