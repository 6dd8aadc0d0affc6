// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tm1637

import (
	"fmt"
	"time"
)

// Hex displays v right aligned as 4 hex digits, or 6 on SixDigit modules.
// Higher bits are masked off.
func (d *Dev) Hex(v int) error {
	var s string
	if d.variant == SixDigit {
		s = fmt.Sprintf("%06x", v&0xffffff)
	} else {
		s = fmt.Sprintf("%04x", v&0xffff)
	}
	seg, err := d.EncodeString(s)
	if err != nil {
		return err
	}
	return d.Write(seg, 0)
}

// Number displays n right aligned, clamped to -999 through 9999, or -99999
// through 999999 on SixDigit modules.
func (d *Dev) Number(n int) error {
	if d.variant == SixDigit {
		n = clamp(n, -99999, 999999)
	} else {
		n = clamp(n, -999, 9999)
	}
	seg, err := d.EncodeString(fmt.Sprintf("%*d", d.digits(), n))
	if err != nil {
		return err
	}
	return d.Write(seg, 0)
}

// Numbers displays two zero padded values side by side, each clamped to -9
// through 99, or -99 through 999 on SixDigit modules. colon lights the
// separator at the boundary: the clock colon on Plain modules, the third
// digit's decimal point on SixDigit modules.
func (d *Dev) Numbers(a, b int, colon bool) error {
	var seg []byte
	var err error
	if d.variant == SixDigit {
		a = clamp(a, -99, 999)
		b = clamp(b, -99, 999)
		seg, err = d.EncodeString(fmt.Sprintf("%03d%03d", a, b))
		if err != nil {
			return err
		}
		if colon {
			// Physical position 0 holds the third logical digit.
			seg[0] |= DP
		}
	} else {
		a = clamp(a, -9, 99)
		b = clamp(b, -9, 99)
		seg, err = d.EncodeString(fmt.Sprintf("%02d%02d", a, b))
		if err != nil {
			return err
		}
		if colon {
			seg[1] |= DP
		}
	}
	return d.Write(seg, 0)
}

// Temperature displays n followed by a degree sign and a C. Values below
// the displayable range render as "lo" and above it as "hi" ("low" and
// "high" on SixDigit modules).
func (d *Dev) Temperature(n int) error {
	if d.variant == SixDigit {
		switch {
		case n < -999:
			return d.Show("low", false)
		case n > 9999:
			return d.Show("high", false)
		}
		seg, err := d.EncodeString(fmt.Sprintf("%4d*C", n))
		if err != nil {
			return err
		}
		return d.Write(seg, 0)
	}
	switch {
	case n < -9:
		if err := d.Show("lo", false); err != nil {
			return err
		}
	case n > 99:
		if err := d.Show("hi", false); err != nil {
			return err
		}
	default:
		seg, err := d.EncodeString(fmt.Sprintf("%2d", n))
		if err != nil {
			return err
		}
		if err := d.Write(seg, 0); err != nil {
			return err
		}
	}
	// Degree sign and C on the last two digits.
	return d.Write([]byte{segments[38], segments[12]}, 2)
}

// Show displays s, truncated to 4 digits on quad modules. colon lights the
// clock colon when the buffer is long enough; SixDigit modules have no
// colon and ignore it.
func (d *Dev) Show(s string, colon bool) error {
	seg, err := d.EncodeString(s)
	if err != nil {
		return err
	}
	if d.variant != SixDigit {
		if colon && len(seg) > 1 {
			seg[1] |= DP
		}
		if len(seg) > 4 {
			seg = seg[:4]
		}
	}
	return d.Write(seg, 0)
}

// Scroll slides s across the display one digit per step, sleeping delay
// between steps. It blocks until the text has scrolled through.
func (d *Dev) Scroll(s string, delay time.Duration) error {
	if d.variant == SixDigit {
		// The physical remap has to be redone per frame, so scroll by
		// showing successive suffixes.
		for i := 0; i <= len(s); i++ {
			if err := d.Show(s[i:], false); err != nil {
				return err
			}
			time.Sleep(delay)
		}
		return nil
	}
	seg, err := d.EncodeString(s)
	if err != nil {
		return err
	}
	// A 4 wide window over the text padded with 4 blanks on each side.
	buf := make([]byte, len(seg)+8)
	copy(buf[4:], seg)
	for i := 0; i < len(seg)+5; i++ {
		if err := d.Write(buf[i:i+4], 0); err != nil {
			return err
		}
		time.Sleep(delay)
	}
	return nil
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
