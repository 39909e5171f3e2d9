package sampler

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"

	"github.com/alsosprachben/recept/recepterr"
)

// FileSource is a Source backed by a file: either a RIFF/WAV container,
// decoded in full when opened, or a headerless stream of raw little-endian
// PCM samples. BitsPerSample governs the raw path's sample width (8, 16,
// 24, or 32), mirroring the reference sampler's bit-depth parameter;
// a decoded WAV's own bit depth overrides it once the file is opened.
type FileSource struct {
	f    *os.File
	wav  *wav.Decoder
	raw  bool

	BitsPerSample int
	sampleRate    float64

	buf      []float64
	bufPos   int
	readBuf  []byte

	count   uint64
	elapsed float64
	eof     bool
}

// NewFileSource opens filename and sniffs whether it is a valid RIFF/WAV
// container; if not, it is treated as headerless raw PCM at the given
// bit depth (0 defaults to 16). Raw samples are read one sampleSize
// chunk at a time directly from the file; WAV samples are decoded in
// bulk up front, matching the teacher's own full-buffer decode.
func NewFileSource(filename string, bitsPerSample int) (*FileSource, error) {
	if bitsPerSample == 0 {
		bitsPerSample = 16
	}
	if bitsPerSample != 8 && bitsPerSample != 16 && bitsPerSample != 24 && bitsPerSample != 32 {
		return nil, fmt.Errorf("sampler: bits per sample %d: %w", bitsPerSample, recepterr.ErrInvalidParameter)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("sampler: opening %s: %w", filename, err)
	}

	fs := &FileSource{f: f, BitsPerSample: bitsPerSample}

	dec := wav.NewDecoder(f)
	if dec.IsValidFile() {
		fs.wav = dec
		fs.sampleRate = float64(dec.SampleRate)
		if err := fs.decodeWAV(); err != nil {
			f.Close()
			return nil, err
		}
		return fs, nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("sampler: rewinding %s: %w", filename, err)
	}
	fs.raw = true
	fs.readBuf = make([]byte, bitsPerSample/8)
	return fs, nil
}

func (fs *FileSource) decodeWAV() error {
	buf, err := fs.wav.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("sampler: decoding wav: %w", err)
	}
	fs.BitsPerSample = buf.SourceBitDepth
	fs.buf = make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		fs.buf[i] = normalizeInt(v, buf.SourceBitDepth)
	}
	return nil
}

// normalizeInt scales an integer PCM sample of the given bit depth into
// the -1..1 range, the same per-depth divisors the teacher's own WAV
// reader applies.
func normalizeInt(v, bitDepth int) float64 {
	switch bitDepth {
	case 32:
		return float64(v) / float64(0x7FFFFFFF)
	case 24:
		return float64(v) / float64(0x7FFFFF)
	case 16:
		return float64(v) / float64(0x7FFF)
	case 8:
		return float64(v) / float64(0x7F)
	default:
		return 0
	}
}

// Next returns the next normalized sample, or eof=true once the
// underlying stream is exhausted.
func (fs *FileSource) Next() (float64, bool) {
	if fs.eof {
		return 0, true
	}

	var sample float64
	var ok bool
	if fs.raw {
		sample, ok = fs.nextRaw()
	} else {
		sample, ok = fs.nextWAV()
	}
	if !ok {
		fs.eof = true
		return 0, true
	}

	fs.count++
	if fs.sampleRate > 0 {
		fs.elapsed = float64(fs.count) / fs.sampleRate
	}
	return sample, false
}

func (fs *FileSource) nextWAV() (float64, bool) {
	if fs.bufPos >= len(fs.buf) {
		return 0, false
	}
	v := fs.buf[fs.bufPos]
	fs.bufPos++
	return v, true
}

func (fs *FileSource) nextRaw() (float64, bool) {
	if _, err := io.ReadFull(fs.f, fs.readBuf); err != nil {
		return 0, false
	}
	var raw int64
	switch fs.BitsPerSample {
	case 8:
		raw = int64(int8(fs.readBuf[0]))
	case 16:
		raw = int64(int16(binary.LittleEndian.Uint16(fs.readBuf)))
	case 24:
		u := uint32(fs.readBuf[0]) | uint32(fs.readBuf[1])<<8 | uint32(fs.readBuf[2])<<16
		if u&0x800000 != 0 {
			u |= 0xFF000000
		}
		raw = int64(int32(u))
	case 32:
		raw = int64(int32(binary.LittleEndian.Uint32(fs.readBuf)))
	}
	return normalizeInt(int(raw), fs.BitsPerSample), true
}

// Elapsed returns the number of seconds of audio consumed so far. It is
// zero for a raw stream, whose sample rate this source has no way to
// infer on its own; a driver reading raw PCM must track elapsed time
// itself from a known sample rate.
func (fs *FileSource) Elapsed() float64 {
	return fs.elapsed
}

// Count returns the number of samples yielded by Next so far.
func (fs *FileSource) Count() uint64 {
	return fs.count
}

// SampleRate returns the decoded WAV's sample rate, or 0 for a raw
// stream.
func (fs *FileSource) SampleRate() float64 {
	return fs.sampleRate
}

// Close releases the underlying file.
func (fs *FileSource) Close() error {
	return fs.f.Close()
}
