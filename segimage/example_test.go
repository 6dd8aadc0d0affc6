// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segimage_test

import (
	"log"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"periph.io/x/tm1637"
	"periph.io/x/tm1637/segimage"
)

// Render the clock face "12:34" to a PNG with a caption underneath.
func Example() {
	dev := segimage.New(&segimage.Opts{Digits: 4})
	seg := []byte{
		tm1637.EncodeDigit(1),
		tm1637.EncodeDigit(2) | tm1637.DP, // colon position on clock modules
		tm1637.EncodeDigit(3),
		tm1637.EncodeDigit(4),
	}
	img := dev.Render(seg)

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: 16})

	b := img.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy()+24)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.DrawImage(img, 0, 0)
	dc.SetRGB(0, 0, 0)
	dc.SetFontFace(face)
	dc.DrawString("TM1637 quad module, 12:34", 8, float64(b.Dy()+18))

	if err := gg.SavePNG("tm1637.png", dc.Image()); err != nil {
		log.Fatal(err)
	}
}
