// Package recepterr holds the sentinel errors shared by every
// construction and topology-mutation operation in this module: adding a
// period sensor or monochord past a fixed capacity, or supplying an
// out-of-range parameter. Per-sample operations never return an error;
// they clamp to a defined edge value instead (division by an
// effectively-zero period, a polar decomposition of a zero complex
// value, and so on).
package recepterr

import "errors"

// ErrCapacityExceeded is returned when a fixed-size bank (a scale-space
// sensor's monochords, a period array's sensors) is already full.
var ErrCapacityExceeded = errors.New("recept: capacity exceeded")

// ErrInvalidParameter is returned when a construction parameter is out
// of the range the rest of the pipeline assumes (a non-positive period,
// an octave bandwidth of zero, and similar).
var ErrInvalidParameter = errors.New("recept: invalid parameter")
