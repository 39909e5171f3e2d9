// Package monochord implements the digital up/down converter that
// shifts a receptive value from one sensor's period onto another's,
// by rotating its phase through a fixed offset.
package monochord

import (
	"github.com/alsosprachben/recept/receptor"
	"github.com/alsosprachben/recept/tau"
)

// Monochord rotates a receptive value tuned to sourcePeriod so that it
// reads as if tuned to targetPeriod, scaled by ratio.
type Monochord struct {
	SourcePeriod float64
	TargetPeriod float64
	Ratio        float64

	period    float64
	offset    float64
	phiOffset float64
	value     complex128
}

// New returns a Monochord converting from sourcePeriod to targetPeriod
// at the given ratio.
func New(sourcePeriod, targetPeriod, ratio float64) *Monochord {
	mc := &Monochord{SourcePeriod: sourcePeriod, TargetPeriod: targetPeriod, Ratio: ratio}
	mc.construct()
	return mc
}

func (mc *Monochord) construct() {
	mc.period = mc.SourcePeriod * mc.Ratio
	mc.offset = mc.TargetPeriod - mc.period
	mc.phiOffset = mc.offset / mc.TargetPeriod
	mc.value = tau.Rect1(mc.phiOffset)
}

// Value returns the monochord's fixed unit-magnitude rotation factor,
// rect1(phiOffset).
func (mc *Monochord) Value() complex128 {
	return mc.value
}

// PhiOffset returns the monochord's fixed phase offset, in turns.
func (mc *Monochord) PhiOffset() float64 {
	return mc.phiOffset
}

// Rotate applies the monochord's phase shift to v in place.
func (mc *Monochord) Rotate(v *receptor.Value) {
	v.Cval *= mc.value
	v.Phi = tau.Wrap(v.Phi + mc.phiOffset)
}

// DupRotate returns a rotated copy of v, leaving v itself untouched.
// This mirrors the reference implementation's split between a
// duplicate-then-rotate step and an in-place rotation, so a superposed
// value is never taken directly from the source sensor without first
// being copied.
func (mc *Monochord) DupRotate(v receptor.Value) receptor.Value {
	dup := v
	mc.Rotate(&dup)
	return dup
}
