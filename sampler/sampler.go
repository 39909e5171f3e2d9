// Package sampler provides the pull-based raw sample source this module
// is driven by: a Source that yields one normalized float64 sample at a
// time, plus a concrete file-backed implementation reading raw
// byte-aligned PCM or a RIFF/WAV container.
package sampler

// Source is the pull iterator a driver advances the rest of the
// pipeline with. Next returns the next sample and whether the stream
// is exhausted; once eof is true, further calls must keep returning
// eof=true rather than erroring.
type Source interface {
	Next() (sample float64, eof bool)
	Elapsed() float64
	Count() uint64
}
