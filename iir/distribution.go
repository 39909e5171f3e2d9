package iir

import "math/cmplx"

// Distribution tracks a running average and deviation of a float64
// sequence via a pair of exponential smoothers: deviation is the
// smoothed absolute difference between the prior average and the new
// sample, computed before the average itself is updated.
type Distribution struct {
	ave Smoother[float64]
	dev Smoother[float64]
}

// NewDistribution returns a Distribution with both the average and
// deviation smoothers seeded at initial.
func NewDistribution(initial float64) *Distribution {
	return &Distribution{ave: Smoother[float64]{v: initial}, dev: Smoother[float64]{v: initial}}
}

// Sample folds value into the running average and deviation using the
// given window factor.
func (d *Distribution) Sample(value, factor float64) (ave, dev float64) {
	deviation := value - d.ave.Value()
	if deviation < 0 {
		deviation = -deviation
	}
	ave = d.ave.Sample(value, factor)
	dev = d.dev.Sample(deviation, factor)
	return ave, dev
}

// WeightedDistribution is a Distribution with a fixed window size.
type WeightedDistribution struct {
	dist Distribution
	w    float64
}

// NewWeightedDistribution returns a WeightedDistribution with a fixed
// window size.
func NewWeightedDistribution(initial, windowSize float64) *WeightedDistribution {
	return &WeightedDistribution{dist: *NewDistribution(initial), w: windowSize}
}

// Sample folds value into the running average and deviation using the
// fixed window size.
func (w *WeightedDistribution) Sample(value float64) (ave, dev float64) {
	return w.dist.Sample(value, w.w)
}

// DistributionC tracks a running average of a complex128 sequence and the
// magnitude of its deviation. Deviation here is the magnitude of the
// complex difference between the prior average and the new sample,
// computed before the average itself is updated. The deviation
// smoother is complex-valued (a real magnitude promoted to a zero-
// imaginary complex128 each sample), matching the reference shape where
// both the average and deviation smoothers share one struct type.
type DistributionC struct {
	ave Smoother[complex128]
	dev Smoother[complex128]
}

// NewDistributionC returns a DistributionC with both smoothers seeded
// at initial.
func NewDistributionC(initial complex128) *DistributionC {
	return &DistributionC{ave: Smoother[complex128]{v: initial}, dev: Smoother[complex128]{v: initial}}
}

// Sample folds value into the running average and deviation using the
// given window factor.
func (d *DistributionC) Sample(value complex128, factor float64) (ave, dev complex128) {
	deviation := complex(cmplx.Abs(d.ave.Value()-value), 0)
	ave = d.ave.Sample(value, factor)
	dev = d.dev.Sample(deviation, factor)
	return ave, dev
}

// WeightedDistributionC is a DistributionC with a fixed window size.
type WeightedDistributionC struct {
	dist DistributionC
	w    float64
}

// NewWeightedDistributionC returns a WeightedDistributionC with a fixed
// window size.
func NewWeightedDistributionC(initial complex128, windowSize float64) *WeightedDistributionC {
	return &WeightedDistributionC{dist: *NewDistributionC(initial), w: windowSize}
}

// Sample folds value into the running average and deviation using the
// fixed window size.
func (w *WeightedDistributionC) Sample(value complex128) (ave, dev complex128) {
	return w.dist.Sample(value, w.w)
}
