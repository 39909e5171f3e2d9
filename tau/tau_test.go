package tau

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Wrap(t *testing.T) {
	assert.InDelta(t, 0.25, Wrap(0.25), 1e-9)
	assert.InDelta(t, 0.25, Wrap(1.25), 1e-9)
	assert.InDelta(t, -0.25, Wrap(-0.25), 1e-9)
}

func Test_Wrap_NegativeBeyondRange(t *testing.T) {
	assert.InDelta(t, 0.4, Wrap(-0.6), 1e-9)
	assert.InDelta(t, -0.3, Wrap(-1.3), 1e-9)
}

func Test_RadTurnsRoundTrip(t *testing.T) {
	turns := 0.37
	assert.InDelta(t, turns, RadToTurns(TurnsToRad(turns)), 1e-9)
}

func Test_RadToTurns_HalfCircle(t *testing.T) {
	assert.InDelta(t, -0.5, RadToTurns(math.Pi), 1e-9)
}

func Test_RectPolarRoundTrip(t *testing.T) {
	c := Rect1(0.3)
	r, phi := Polar(c)
	assert.InDelta(t, 1.0, r, 1e-9)
	assert.InDelta(t, 0.3, phi, 1e-9)
}
