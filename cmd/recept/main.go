// Command recept drives a file-backed sample source through a period
// array and renders its sensors' tonal phase, note, and lifecycle
// energy columns to the terminal at a bounded frame rate.
package main

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"

	"github.com/spf13/pflag"

	"github.com/alsosprachben/recept/midinote"
	"github.com/alsosprachben/recept/periodarray"
	"github.com/alsosprachben/recept/receptor"
	"github.com/alsosprachben/recept/sampler"
	"github.com/alsosprachben/recept/screen"
)

const noteFieldWidth = 11

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "recept:", err)
		os.Exit(1)
	}
}

func run() error {
	columns := pflag.IntP("columns", "c", 120, "terminal width")
	rows := pflag.IntP("lines", "l", 48, "number of period sensor rows")
	fps := pflag.IntP("fps", "f", 60, "target draw rate")
	sampleRate := pflag.IntP("rate", "r", 44100, "input sample rate, used when the input has no WAV header")
	bitDepth := pflag.IntP("depth", "d", 16, "raw PCM bit depth, ignored for WAV input")
	octaveBandwidth := pflag.IntP("bandwidth", "b", 12, "period sensors per octave")
	periodResponseHz := pflag.Float64P("period-response", "p", 60.0, "lifecycle smoothing rate in Hz")
	startingNote := pflag.IntP("starting-note", "n", -21, "lowest period sensor's offset in semitones from A4")
	audioStats := pflag.BoolP("audio-stats", "a", false, "print per-sensor instantaneous-period diagnostics to stderr on exit")
	pflag.Parse()

	args := pflag.Args()
	if len(args) < 1 {
		return fmt.Errorf("usage: recept [flags] <input-file>")
	}

	src, err := sampler.NewFileSource(args[0], *bitDepth)
	if err != nil {
		return err
	}
	defer src.Close()

	rate := float64(*sampleRate)
	if sr := src.SampleRate(); sr > 0 {
		rate = sr
	}

	cycleArea := 1.0 / (1.0 - math.Exp(-1.0))

	field := receptor.Field{
		Period:       rate / (440.0 * math.Pow(2, float64(*startingNote)/12.0)),
		Phase:        0,
		PhaseFactor:  cycleArea,
		PeriodFactor: 1,
	}

	octaveCount := float64(*rows) / float64(*octaveBandwidth)
	array, err := periodarray.New(field, rate/(*periodResponseHz), float64(*octaveBandwidth), cycleArea)
	if err != nil {
		return err
	}
	if err := array.Populate(octaveCount, 1.0); err != nil {
		return err
	}

	mod := int(math.Floor(rate / float64(array.Len()) / float64(*fps)))
	if mod < 1 {
		mod = 1
	}

	buf := screen.New(*columns, array.Len()+1)
	if err := screen.Clear(os.Stdout); err != nil {
		return err
	}

	drawHeader(buf, *columns, rate)

	var frame uint64
	for {
		value, eof := src.Next()
		if eof {
			if *audioStats {
				printAudioStats(os.Stderr, array, rate)
			}
			return nil
		}
		array.Sample(float64(src.Count()), value*10000)

		if frame%uint64(mod) == 0 {
			drawFrame(buf, array, rate, src.Elapsed())
			if err := buf.Draw(os.Stdout); err != nil {
				return err
			}
		}
		frame++
	}
}

// printAudioStats writes a per-sensor batch summary of recently
// recorded instantaneous periods, distinct from the per-frame running
// concept the terminal UI renders.
func printAudioStats(w io.Writer, array *periodarray.Array, sampleRate float64) {
	fmt.Fprintln(w, "sensor  note         mean period  period stddev")
	for row := 0; row < array.Len(); row++ {
		e := array.Entry(row)
		mean, stddev := e.Sensor.Diagnostics()
		note, err := midinote.Describe(sampleRate, mean, 440.0)
		name := "?"
		if err == nil {
			name = note.String()
		}
		fmt.Fprintf(w, "%6d  %-11s  %12.3f  %14.3f\n", row, name, mean, stddev)
	}
}

func drawHeader(buf *screen.Buffer, columns int, sampleRate float64) {
	buf.Printf(0, 0, 20, "%s", "    Tonal Phase     ")
	buf.Printf(20, 0, 22, "%s", " Sensor <note> Sensed ")
	buf.Printf(20+2*noteFieldWidth, 0, 20, "%s", "| Receptor Model    ")
	buf.Printf(20+2*noteFieldWidth+20, 0, 20, "%s", "       Entropy      ")
	buf.Printf(20+2*noteFieldWidth+40, 0, 20, "%s", "      - Energy      ")
	buf.Printf(20+2*noteFieldWidth+60, 0, 20, "%s", "     Free Energy    ")

	if nyquist, err := midinote.Describe(sampleRate, 2.0, 440.0); err == nil {
		buf.Printf(columns-20, 0, 20, "Nyquist: %s", nyquist)
	}
}

func drawFrame(buf *screen.Buffer, array *periodarray.Array, sampleRate, elapsed float64) {
	phaseBar := screen.NewBar(screen.Signed, screen.Linear, 20)
	forceBar := screen.NewBar(screen.Positive, screen.Log, 40)
	entropyBar := screen.NewBar(screen.Signed, screen.LogP1, 20)
	energyBar := screen.NewBar(screen.Signed, screen.LogP1, 20)
	freeEnergyBar := screen.NewBar(screen.Signed, screen.LogP1, 20)

	for row := 0; row < array.Len(); row++ {
		e := array.Entry(row)
		lc := e.Value.PeriodLifecycle
		concept := e.Value.Concept

		pc := cmplx.Abs(complex(negIfBelowZero(imag(lc.Cval)), negIfBelowZero(lc.F)))

		if note, err := midinote.Describe(sampleRate, concept.Recept.Field.Period, 440.0); err == nil {
			buf.Printf(20, row+1, noteFieldWidth, "%s", note)
		}
		if pc == 0.0 {
			buf.Printf(20+noteFieldWidth, row+1, noteFieldWidth, "%s", "           ")
		} else if note, err := midinote.Describe(sampleRate, concept.AvgInstantPeriod, 440.0); err == nil {
			buf.Printf(20+noteFieldWidth, row+1, noteFieldWidth, "%s", note)
		}

		buf.Printf(0, row+1, 20, "%s", phaseBar.Render(lc.Phi, 0.5))
		buf.Printf(20+2*noteFieldWidth, row+1, 40, "%s", forceBar.Render(pc*100, lc.MaxR*10000))
		buf.Printf(20+2*noteFieldWidth+20, row+1, 20, "%s", entropyBar.Render(real(lc.Cval), lc.MaxR))
		buf.Printf(20+2*noteFieldWidth+40, row+1, 20, "%s", energyBar.Render(imag(lc.Cval), lc.MaxR))
		buf.Printf(20+2*noteFieldWidth+60, row+1, 20, "%s", freeEnergyBar.Render(lc.F, lc.MaxR))
	}

	buf.Printf(buf.Columns()-20, 1, 20, "time: %f", elapsed)
}

func negIfBelowZero(v float64) float64 {
	if v < 0 {
		return -v
	}
	return 0
}
