// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segterm emulates a 7-segment LED module on the terminal (stdout)
// using ANSI color codes.
//
// Useful while you are waiting for your TM1637 clock module to come by
// mail: point the segment buffers your code produces at a Dev and watch
// the digits on the console instead of the hardware.
package segterm

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// rows is the height of one rendered digit cell in terminal lines.
const rows = 3

// cellMask maps each cell of the 3x4 digit grid to the segment bit that
// lights it. Zero cells are always blank.
//
// Bit order is the usual 7-segment one: a=0x01 top, b=0x02 top right,
// c=0x04 bottom right, d=0x08 bottom, e=0x10 bottom left, f=0x20 top
// left, g=0x40 middle, 0x80 decimal point.
var cellMask = [rows][4]byte{
	{0x00, 0x01, 0x00, 0x00},
	{0x20, 0x40, 0x02, 0x00},
	{0x10, 0x08, 0x04, 0x80},
}

// Opts represents the options available for this display.
type Opts struct {
	// Digits is the number of digit positions, typically 4 or 6.
	Digits int
	// Color is the color of a lit segment. Nil means LED red.
	Color color.Color
	// Palette is the ANSI palette. Nil means ansi256.Default.
	Palette *ansi256.Palette

	_ struct{}
}

// Dev is a 7-segment display emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	digits  int
	lit     color.NRGBA
	palette ansi256.Palette

	segments []byte
	buf      bytes.Buffer
}

// New returns a Dev that displays at the console.
//
// Permits local testing of clock and counter rendering.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	lit := color.NRGBA{R: 255, A: 255}
	if opts.Color != nil {
		lit = color.NRGBAModel.Convert(opts.Color).(color.NRGBA)
	}
	return &Dev{
		w:        colorable.NewColorableStdout(),
		digits:   opts.Digits,
		lit:      lit,
		palette:  *p,
		segments: make([]byte, opts.Digits),
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("SegTerm{%d}", d.digits)
}

// Halt moves the cursor below the rendered digits and resets the terminal
// attributes so the shell prompt is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte(fmt.Sprintf("\033[%dB\033[0m\n", rows)))
	return err
}

// Write accepts a buffer of segment bytes, one per digit position, and
// redraws the console. Extra bytes are ignored, missing ones render blank.
func (d *Dev) Write(segments []byte) (int, error) {
	for i := range d.segments {
		d.segments[i] = 0
	}
	copy(d.segments, segments)
	return d.refresh()
}

func (d *Dev) refresh() (int, error) {
	// This code is designed to minimize the amount of memory allocated per
	// call.
	d.buf.Reset()
	for row := 0; row < rows; row++ {
		_, _ = d.buf.WriteString("\033[0m")
		for _, seg := range d.segments {
			for _, mask := range cellMask[row] {
				if mask != 0 && seg&mask != 0 {
					_, _ = io.WriteString(&d.buf, d.palette.Block(d.lit))
				} else {
					_, _ = d.buf.WriteString(" ")
				}
			}
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	// Park the cursor back on the first row so the next frame redraws in
	// place.
	_, _ = d.buf.WriteString(fmt.Sprintf("\033[%dA\r", rows))
	_, err := d.buf.WriteTo(d.w)
	return len(d.segments), err
}

var _ fmt.Stringer = &Dev{}
