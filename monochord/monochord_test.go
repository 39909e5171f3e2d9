package monochord

import (
	"testing"

	"github.com/alsosprachben/recept/receptor"
	"github.com/stretchr/testify/assert"
)

func Test_New_SamePeriodRatioOneIsIdentity(t *testing.T) {
	mc := New(10, 10, 1)
	v := receptor.NewValue(complex(1, 0))
	mc.Rotate(&v)
	assert.InDelta(t, 1.0, real(v.Cval), 1e-9)
	assert.InDelta(t, 0.0, imag(v.Cval), 1e-9)
}

func Test_Rotate_PreservesMagnitude(t *testing.T) {
	mc := New(10, 15, 1)
	v := receptor.NewValue(complex(3, 4))
	mc.Rotate(&v)
	assert.InDelta(t, 5.0, v.R, 1e-9)
}

func Test_Value_MatchesPhiOffsetFormula(t *testing.T) {
	mc := New(10, 20, 2)
	assert.InDelta(t, 0.0, mc.PhiOffset(), 1e-9)
	assert.InDelta(t, 1.0, real(mc.Value()), 1e-9)
	assert.InDelta(t, 0.0, imag(mc.Value()), 1e-9)
}

func Test_DupRotate_LeavesSourceUntouched(t *testing.T) {
	mc := New(10, 15, 1)
	source := receptor.NewValue(complex(1, 0))
	rotated := mc.DupRotate(source)
	assert.Equal(t, complex(1, 0), source.Cval)
	assert.NotEqual(t, source.Cval, rotated.Cval)
}
