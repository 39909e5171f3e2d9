// Package iir implements the scalar and complex infinite-impulse-response
// primitives the rest of this module is built from: exponential smoothing,
// sample-to-sample deltas, running distributions, and sign-change
// ("apex") detection.
//
// The exponential-smoothing primitive is identical in shape for float64
// and complex128, so it is written once as a generic. Delta, Distribution,
// and Apex keep separate scalar/complex types instead: their complex
// variants differ by more than a type parameter (a ratio instead of a
// difference, a real deviation magnitude carried in a complex smoother),
// and collapsing that into one generic would hide the difference behind
// a type switch rather than express it in the type.
package iir

// Number is the set of sample types an exponential smoother operates on.
type Number interface {
	~float64 | ~complex128
}

// divReal divides a Number by a real (float64) scale factor. float64 and
// complex128 both support division by a real scalar, but the language
// requires different spellings (v/w versus v/complex(w, 0)); this is the
// one place that distinction is made explicit.
func divReal[T Number](x T, w float64) T {
	switch v := any(x).(type) {
	case float64:
		return any(v / w).(T)
	case complex128:
		return any(v / complex(w, 0)).(T)
	default:
		panic("iir: unsupported Number type")
	}
}

// Smoother is a single-pole exponential smoother: each sample moves the
// running value a 1/factor fraction of the way toward the new input.
// factor is a window length in samples, not a 0..1 decay constant.
type Smoother[T Number] struct {
	v T
}

// NewSmoother returns a Smoother seeded at initial.
func NewSmoother[T Number](initial T) *Smoother[T] {
	return &Smoother[T]{v: initial}
}

// Value returns the current smoothed value without sampling.
func (s *Smoother[T]) Value() T {
	return s.v
}

// Sample folds value into the running average with the given window
// factor and returns the updated value. factor < 1 is clamped to 1,
// which makes the smoother a pass-through (output equals input).
func (s *Smoother[T]) Sample(value T, factor float64) T {
	if factor < 1 {
		factor = 1
	}
	s.v = s.v + divReal(value-s.v, factor)
	return s.v
}

// Smoothing is a Smoother with a fixed window size, so callers only ever
// supply the sample value.
type Smoothing[T Number] struct {
	s Smoother[T]
	w float64
}

// NewSmoothing returns a Smoothing with the given fixed window size and
// initial value.
func NewSmoothing[T Number](windowSize float64, initial T) *Smoothing[T] {
	return &Smoothing[T]{s: Smoother[T]{v: initial}, w: windowSize}
}

// Value returns the current smoothed value without sampling.
func (sg *Smoothing[T]) Value() T {
	return sg.s.Value()
}

// Sample folds value into the running average using the fixed window
// size and returns the updated value.
func (sg *Smoothing[T]) Sample(value T) T {
	return sg.s.Sample(value, sg.w)
}
