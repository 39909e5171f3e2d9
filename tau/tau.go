// Package tau provides the turn-normalized angle arithmetic the rest of
// this module builds on: radians rescaled so a full cycle is 1.0 instead
// of 2*pi, always wrapped into [-0.5, 0.5).
package tau

import (
	"math"
	"math/cmplx"
)

// RadianCycle is a full turn in radians.
const RadianCycle = math.Pi * 2

// Wrap folds x into [-0.5, 0.5), the canonical range for a turns value.
// monochord.Rotate and lifecycle.Lifecycle.Sample both need this same
// fold-a-phase-delta-into-range shape; this is the one place it's written.
func Wrap(x float64) float64 {
	y := math.Mod(x+0.5, 1)
	if y < 0 {
		y += 1
	}
	return y - 0.5
}

// RadToTurns converts radians to turns, wrapped into [-0.5, 0.5).
func RadToTurns(rad float64) float64 {
	return Wrap(rad / RadianCycle)
}

// TurnsToRad converts turns to radians.
func TurnsToRad(turns float64) float64 {
	return turns * RadianCycle
}

// Rect1 returns the unit-magnitude complex exponential for a turns value.
func Rect1(turns float64) complex128 {
	rad := TurnsToRad(turns)
	return complex(math.Cos(rad), math.Sin(rad))
}

// Rect returns the complex exponential for a turns value scaled by mag.
func Rect(turns, mag float64) complex128 {
	rad := TurnsToRad(turns)
	return complex(math.Cos(rad)*mag, math.Sin(rad)*mag)
}

// Polar returns the magnitude and turns-normalized phase of cval.
func Polar(cval complex128) (r, phi float64) {
	return cmplx.Abs(cval), RadToTurns(cmplx.Phase(cval))
}
