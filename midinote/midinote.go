// Package midinote converts a sample rate and period into a musical
// pitch: a fractional MIDI note number, and the octave/note-name/cents
// decomposition of it.
package midinote

import (
	"fmt"
	"math"

	"github.com/alsosprachben/recept/recepterr"
)

const midiA4 = 69.0

// names is the 12-tone chromatic scale, enharmonic pairs spelled out,
// indexed by note-within-octave (0 = C).
var names = [12]string{
	"C /B#", "C#/Db", "D /D ", "D#/Eb", "E /Fb", "F /E#",
	"F#/Gb", "G /G ", "G#/Ab", "A /A ", "A#/Bb", "B /Cb",
}

// Number returns the fractional MIDI note number for a period (in
// samples) at sampleRate, tuned against a4 (440 for concert pitch). It
// returns ErrInvalidParameter for a non-positive period.
func Number(sampleRate, period, a4 float64) (float64, error) {
	if period <= 0 {
		return 0, fmt.Errorf("midinote: period %v: %w", period, recepterr.ErrInvalidParameter)
	}
	hz := sampleRate / period
	return 12.0*(math.Log(hz/a4)/math.Ln2) + midiA4, nil
}

// Note is the musical spelling of a MIDI note number: its octave
// (4 = the octave containing A4), name, and the deviation in cents from
// the nearest semitone.
type Note struct {
	Octave int
	Name   string
	Cents  float64
}

// Describe returns the Note at sampleRate/period, tuned against a4.
func Describe(sampleRate, period, a4 float64) (Note, error) {
	n, err := Number(sampleRate, period, a4)
	if err != nil {
		return Note{}, err
	}

	note := int(math.Floor(n + 0.5))
	octave := floorDiv(note, 12) - 1
	octaveNote := floorMod(note, 12)
	cents := 100.0 * (math.Mod(n+0.5, 1.0) - 0.5)

	return Note{Octave: octave, Name: names[octaveNote], Cents: cents}, nil
}

// String formats n the way the reference driver's display column does:
// a 2-wide octave, the note name, and cents rounded to the nearest
// integer.
func (n Note) String() string {
	return fmt.Sprintf("%2d%s%3.0f", n.Octave, n.Name, n.Cents)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
