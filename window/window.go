// Package window provides a dynamically-adjusted window size, derived
// from the observed rate of some sequence of events (typically sample
// timestamps), targeting a fixed duration.
package window

import "github.com/alsosprachben/recept/iir"

// DynamicWindow converts a target duration into a window size (a count
// of sequence events) by tracking how much sequence value elapses
// between samples and smoothing that rate.
type DynamicWindow struct {
	targetDuration float64
	seq            iir.Delta
	expDuration    iir.Smoothing[float64]
}

// NewDynamicWindow returns a DynamicWindow targeting targetDuration,
// smoothing the observed inter-sample duration over windowSize events,
// optionally pre-seeded with a prior sequence value and an initial
// duration estimate.
func NewDynamicWindow(targetDuration, windowSize float64, hasPrior bool, priorValue, initialDuration float64) *DynamicWindow {
	return &DynamicWindow{
		targetDuration: targetDuration,
		seq:            *iir.NewDelta(hasPrior, priorValue),
		expDuration:    *iir.NewSmoothing(windowSize, initialDuration),
	}
}

// Sample advances the window with the next sequence value (e.g. a
// timestamp) and returns the window size, in sequence events, that
// currently corresponds to the target duration. Before a second
// sequence value has been observed, it returns the target duration
// itself.
func (dw *DynamicWindow) Sample(sequenceValue float64) float64 {
	durationSince, ok := dw.seq.Sample(sequenceValue)
	if !ok {
		return dw.targetDuration
	}
	expectedDuration := dw.expDuration.Sample(durationSince)
	return dw.targetDuration / expectedDuration
}

// SmoothDuration is an exponential smoother windowed by a DynamicWindow:
// the window size adapts so the smoother always targets the same
// duration regardless of the rate samples arrive at.
type SmoothDuration[T iir.Number] struct {
	dw *DynamicWindow
	s  iir.Smoother[T]
}

// NewSmoothDuration returns a SmoothDuration targeting targetDuration.
func NewSmoothDuration[T iir.Number](targetDuration, windowSize float64, hasPrior bool, priorValue, initialDuration float64, initialValue T) *SmoothDuration[T] {
	return &SmoothDuration[T]{
		dw: NewDynamicWindow(targetDuration, windowSize, hasPrior, priorValue, initialDuration),
		s:  *iir.NewSmoother(initialValue),
	}
}

// Value returns the current smoothed value without sampling.
func (sd *SmoothDuration[T]) Value() T {
	return sd.s.Value()
}

// Sample folds value into the duration-windowed smoother, given the
// current sequence value (e.g. timestamp) used to adapt the window.
func (sd *SmoothDuration[T]) Sample(value T, sequenceValue float64) T {
	w := sd.dw.Sample(sequenceValue)
	return sd.s.Sample(value, w)
}

// SmoothDurationDistribution is a running average/deviation pair over
// float64 samples, windowed by a DynamicWindow.
type SmoothDurationDistribution struct {
	dw   *DynamicWindow
	dist iir.Distribution
}

// NewSmoothDurationDistribution returns a SmoothDurationDistribution
// targeting targetDuration.
func NewSmoothDurationDistribution(targetDuration, windowSize float64, hasPrior bool, priorValue, initialDuration, initialValue float64) *SmoothDurationDistribution {
	return &SmoothDurationDistribution{
		dw:   NewDynamicWindow(targetDuration, windowSize, hasPrior, priorValue, initialDuration),
		dist: *iir.NewDistribution(initialValue),
	}
}

// Sample folds value into the duration-windowed distribution.
func (sdd *SmoothDurationDistribution) Sample(value, sequenceValue float64) (ave, dev float64) {
	w := sdd.dw.Sample(sequenceValue)
	return sdd.dist.Sample(value, w)
}

// SmoothDurationDistributionC is the complex128 analogue of
// SmoothDurationDistribution.
type SmoothDurationDistributionC struct {
	dw   *DynamicWindow
	dist iir.DistributionC
}

// NewSmoothDurationDistributionC returns a SmoothDurationDistributionC
// targeting targetDuration.
func NewSmoothDurationDistributionC(targetDuration, windowSize float64, hasPrior bool, priorValue, initialDuration float64, initialValue complex128) *SmoothDurationDistributionC {
	return &SmoothDurationDistributionC{
		dw:   NewDynamicWindow(targetDuration, windowSize, hasPrior, priorValue, initialDuration),
		dist: *iir.NewDistributionC(initialValue),
	}
}

// Sample folds value into the duration-windowed distribution.
func (sdd *SmoothDurationDistributionC) Sample(value complex128, sequenceValue float64) (ave, dev complex128) {
	w := sdd.dw.Sample(sequenceValue)
	return sdd.dist.Sample(value, w)
}
