// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segimage renders 7-segment LED buffers into images.
//
// It draws the same segment bytes a TM1637 module consumes, which makes it
// handy for documentation screenshots and for eyeballing layout math
// without hardware attached.
package segimage

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

const (
	digitWidth = 0.55 // digit box width as a fraction of digit height
	pitch      = 0.95 // horizontal distance between digit origins
	margin     = 0.2  // border around the digit row
)

// segLines holds the endpoints of segments a through g in digit box
// coordinates: x in digit widths, y in digit heights. Index equals the
// segment's bit number.
var segLines = [7][4]float64{
	{0, 0, 1, 0},     // a, top
	{1, 0, 1, 0.5},   // b, top right
	{1, 0.5, 1, 1},   // c, bottom right
	{0, 1, 1, 1},     // d, bottom
	{0, 0.5, 0, 1},   // e, bottom left
	{0, 0, 0, 0.5},   // f, top left
	{0, 0.5, 1, 0.5}, // g, middle
}

// Opts represents the options available for this renderer.
type Opts struct {
	// Digits is the number of digit positions, typically 4 or 6.
	Digits int
	// Scale is the digit height in pixels. Zero means 64.
	Scale float64
	// On is the color of a lit segment. Nil means LED red.
	On color.Color
	// Off is the color of an unlit segment. Nil means a faint ghost of red.
	Off color.Color
	// Background is the panel color. Nil means near black.
	Background color.Color

	_ struct{}
}

// Dev renders segment buffers for a fixed number of digits.
type Dev struct {
	digits int
	scale  float64
	on     color.Color
	off    color.Color
	bg     color.Color
}

// New returns a renderer for the given options.
func New(opts *Opts) *Dev {
	d := &Dev{
		digits: opts.Digits,
		scale:  opts.Scale,
		on:     opts.On,
		off:    opts.Off,
		bg:     opts.Background,
	}
	if d.scale == 0 {
		d.scale = 64
	}
	if d.on == nil {
		d.on = color.NRGBA{R: 0xff, A: 0xff}
	}
	if d.off == nil {
		d.off = color.NRGBA{R: 0x30, A: 0xff}
	}
	if d.bg == nil {
		d.bg = color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	}
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("SegImage{%d}", d.digits)
}

// Bounds is the size of the rendered image.
func (d *Dev) Bounds() image.Rectangle {
	w := d.scale * (2*margin + pitch*float64(d.digits))
	h := d.scale * (2*margin + 1)
	return image.Rect(0, 0, int(w), int(h))
}

// Render draws one segment byte per digit position. Extra bytes are
// ignored, missing ones render as unlit digits.
func (d *Dev) Render(segments []byte) image.Image {
	b := d.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.SetColor(d.bg)
	dc.Clear()
	dc.SetLineWidth(d.scale * 0.11)
	dc.SetLineCap(gg.LineCapRound)
	w := d.scale * digitWidth
	y0 := d.scale * margin
	for i := 0; i < d.digits; i++ {
		var seg byte
		if i < len(segments) {
			seg = segments[i]
		}
		x0 := d.scale * (margin + pitch*float64(i))
		for bit, l := range segLines {
			if seg&(1<<uint(bit)) != 0 {
				dc.SetColor(d.on)
			} else {
				dc.SetColor(d.off)
			}
			dc.DrawLine(x0+l[0]*w, y0+l[1]*d.scale, x0+l[2]*w, y0+l[3]*d.scale)
			dc.Stroke()
		}
		if seg&0x80 != 0 {
			dc.SetColor(d.on)
		} else {
			dc.SetColor(d.off)
		}
		dc.DrawCircle(x0+w+d.scale*0.18, y0+d.scale, d.scale*0.055)
		dc.Fill()
	}
	return dc.Image()
}

var _ fmt.Stringer = &Dev{}
