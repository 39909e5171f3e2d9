package receptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewValue_DerivesPolarFromCval(t *testing.T) {
	v := NewValue(complex(0, 1))
	assert.InDelta(t, 1.0, v.R, 1e-9)
	assert.InDelta(t, 0.25, v.Phi, 1e-9)
}

func Test_Value_RectRoundTrip(t *testing.T) {
	v := NewValue(complex(3, 4))
	v.Rect()
	assert.InDelta(t, 3.0, real(v.Cval), 1e-9)
	assert.InDelta(t, 4.0, imag(v.Cval), 1e-9)
}

func Test_Value_Superimpose(t *testing.T) {
	v := NewValue(complex(1, 0))
	source := NewValue(complex(0, 1))
	v.Superimpose(source)
	assert.InDelta(t, 1.0, real(v.Cval), 1e-9)
	assert.InDelta(t, 1.0, imag(v.Cval), 1e-9)
	assert.InDelta(t, 1.4142135623730951, v.R, 1e-9)
}
