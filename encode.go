// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tm1637

import (
	"fmt"
	"strings"
)

// segments maps symbol codes to 7-segment masks: 0-9 digits, 10-35 the
// letters a-z, 36 space, 37 dash, 38 star (doubles as a degree sign).
var segments = [39]byte{
	0x3f, 0x06, 0x5b, 0x4f, 0x66, 0x6d, 0x7d, 0x07, 0x7f, 0x6f, // 0-9
	0x77, 0x7c, 0x39, 0x5e, 0x79, 0x71, 0x3d, 0x76, 0x06, 0x1e, // a-j
	0x76, 0x38, 0x55, 0x54, 0x3f, 0x73, 0x67, 0x50, 0x6d, 0x78, // k-t
	0x3e, 0x1c, 0x2a, 0x76, 0x6e, 0x5b, // u-z
	0x00, 0x40, 0x63, // space, dash, star
}

// EncodeDigit returns the segment mask for a hex digit. The input wraps on
// the low nibble: EncodeDigit(16) == EncodeDigit(0). Hex rendering relies
// on the wrap, so it is deliberately not a validation error.
func EncodeDigit(d int) byte {
	return segments[d&0x0f]
}

// EncodeChar returns the segment mask for one of 0-9, a-z, A-Z, space,
// dash or star. Anything else is an error naming the offending character.
func EncodeChar(r rune) (byte, error) {
	switch {
	case r == ' ':
		return segments[36], nil
	case r == '*':
		return segments[38], nil
	case r == '-':
		return segments[37], nil
	case r >= 'A' && r <= 'Z':
		return segments[r-'A'+10], nil
	case r >= 'a' && r <= 'z':
		return segments[r-'a'+10], nil
	case r >= '0' && r <= '9':
		return segments[r-'0'], nil
	}
	return 0, fmt.Errorf("tm1637: character out of range: %d %q", r, r)
}

// Encoder turns a string into the segment buffer a particular module
// expects. Implementations differ in decimal point handling and in the
// mapping of logical digits to physical positions.
type Encoder interface {
	// EncodeString converts a string of 0-9, a-z, A-Z, space, dash and
	// star into segment bytes. Variants that support it fold '.' into the
	// preceding digit's DP bit.
	EncodeString(s string) ([]byte, error)
}

func newEncoder(v Variant) Encoder {
	switch v {
	case DecimalPoint:
		return decimalPointEncoder{}
	case SixDigit:
		return sixDigitEncoder{}
	default:
		return plainEncoder{}
	}
}

// plainEncoder maps every character to exactly one segment byte. '.' is not
// in the symbol set; Plain modules have no per digit decimal point.
type plainEncoder struct{}

func (plainEncoder) EncodeString(s string) ([]byte, error) {
	seg := make([]byte, 0, len(s))
	for _, r := range s {
		b, err := EncodeChar(r)
		if err != nil {
			return nil, err
		}
		seg = append(seg, b)
	}
	return seg, nil
}

// decimalPointEncoder folds a '.' into the preceding digit's DP bit, so the
// output is shorter than the input by the number of embedded dots. A
// leading dot has no preceding digit and is dropped.
type decimalPointEncoder struct{}

func (decimalPointEncoder) EncodeString(s string) ([]byte, error) {
	seg := make([]byte, 0, len(s))
	for _, r := range s {
		if r == '.' {
			if len(seg) > 0 {
				seg[len(seg)-1] |= DP
			}
			continue
		}
		b, err := EncodeChar(r)
		if err != nil {
			return nil, err
		}
		seg = append(seg, b)
	}
	return seg, nil
}

// sixDigitEncoder lays digits out for modules built from two three digit
// blocks with reversed wiring: logical position j lands at physical
// position (j/3)*3 + (2 - j%3). Dots fold like decimalPointEncoder, onto
// the physical position of the preceding digit.
//
// The buffer carries three trailing zero bytes so the remap of a partially
// filled block stays in bounds; Write drops everything past the sixth byte
// before transmission.
type sixDigitEncoder struct{}

func (sixDigitEncoder) EncodeString(s string) ([]byte, error) {
	seg := make([]byte, len(s)-strings.Count(s, ".")+3)
	j := 0
	for _, r := range s {
		if r == '.' {
			if j > 0 {
				seg[digitToLogic(j-1)] |= DP
			}
			continue
		}
		b, err := EncodeChar(r)
		if err != nil {
			return nil, err
		}
		seg[digitToLogic(j)] = b
		j++
	}
	return seg, nil
}

// digitToLogic converts a logical (reading order) digit index to the
// physical index on a six digit module.
func digitToLogic(n int) int {
	return (n/3)*3 + (2 - n%3)
}
