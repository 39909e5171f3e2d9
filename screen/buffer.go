// Package screen implements the fixed-size terminal frame buffer and bar
// widget this module's driver renders its period array through: a flat
// rune grid addressed by column/row, redrawn in full each frame via a
// single write, plus a Bar that renders one column of bounded scalar
// data as a block-eighths meter.
package screen

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const escapeClear = "\033[2J"
const escapeReset = "\033[;H"

// Buffer is a fixed columns x rows grid of runes, redrawn to an
// io.Writer in one shot each frame rather than incrementally, mirroring
// the reference implementation's single malloc'd frame plus escape
// prefix.
type Buffer struct {
	columns int
	rows    int
	frame   []rune
}

// New returns a blanked Buffer of the given size.
func New(columns, rows int) *Buffer {
	b := &Buffer{columns: columns, rows: rows, frame: make([]rune, columns*rows)}
	b.Blank()
	return b
}

// Columns returns the buffer's width.
func (b *Buffer) Columns() int { return b.columns }

// Rows returns the buffer's height.
func (b *Buffer) Rows() int { return b.rows }

// Blank fills every cell with a space.
func (b *Buffer) Blank() {
	for i := range b.frame {
		b.frame[i] = ' '
	}
}

// pos returns the flat index of (column, row), not bounds-checked
// beyond what a slice index panic would already catch.
func (b *Buffer) pos(column, row int) int {
	return row*b.columns + column
}

// Printf writes format into the frame at (column, row), left-to-right,
// clipped to at most n runes so a caller can reserve a fixed field
// width regardless of the formatted value's length.
func (b *Buffer) Printf(column, row, n int, format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	start := b.pos(column, row)
	for i, r := range runes {
		if start+i >= len(b.frame) {
			break
		}
		b.frame[start+i] = r
	}
}

// Set writes a single rune at (column, row).
func (b *Buffer) Set(column, row int, r rune) {
	i := b.pos(column, row)
	if i >= 0 && i < len(b.frame) {
		b.frame[i] = r
	}
}

// Clear emits the terminal clear-screen escape to w.
func Clear(w io.Writer) error {
	_, err := io.WriteString(w, escapeClear)
	return err
}

// Draw writes the cursor-reset escape followed by the full frame to w
// in a single call, row by row.
func (b *Buffer) Draw(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString(escapeReset)
	for row := 0; row < b.rows; row++ {
		start := b.pos(0, row)
		sb.WriteString(string(b.frame[start : start+b.columns]))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Width returns the terminal display width of s, accounting for wide
// runes, for callers sizing fields around multi-byte glyphs such as
// the bar's block-eighths fill characters.
func Width(s string) int {
	return runewidth.StringWidth(s)
}
