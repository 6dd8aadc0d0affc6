// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tm1637

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

const (
	cmdData    byte = 0x40 // data command: auto increment addressing, normal mode
	cmdAddress byte = 0xc0 // address command, digit position in the low 3 bits
	cmdDisplay byte = 0x80 // display control command, brightness in the low 3 bits
	displayOn  byte = 0x08

	// DP is OR'ed into a segment byte to light the decimal point at that
	// position. On quad clock modules the data point of the second digit
	// drives the colon instead.
	DP byte = 0x80

	// MaxBrightness is the brightest display control setting. Brightness 0
	// is a 1/16 pulse width, MaxBrightness is 14/16.
	MaxBrightness = 7

	// MaxPosition is the highest addressable digit position.
	MaxPosition = 5

	// DefaultBusDelay is the pause between line transitions. The chip is
	// specified for clock rates well above this; 10µs works with every
	// common breakout module.
	DefaultBusDelay = 10 * time.Microsecond
)

var (
	// ErrBrightness is returned when a brightness value is outside 0 to
	// MaxBrightness.
	ErrBrightness = errors.New("tm1637: brightness out of range")
	// ErrPosition is returned when a digit position is outside 0 to
	// MaxPosition.
	ErrPosition = errors.New("tm1637: position out of range")
)

// Variant selects how a module interprets buffer positions and decimal
// points.
type Variant int

const (
	// Plain is a 4 digit module with a colon between the second and third
	// digits. '.' is not an accepted input character on this variant.
	Plain Variant = iota
	// DecimalPoint is a 4 digit module with a decimal point after each
	// digit. An embedded '.' in the input folds into the preceding digit.
	DecimalPoint
	// SixDigit is a 6 digit module built from two three digit blocks whose
	// digit order is reversed inside each block.
	SixDigit
)

// Opts holds the configuration for the display.
type Opts struct {
	// Brightness is the initial brightness, 0 to MaxBrightness.
	Brightness int
	// Variant selects the module type.
	Variant Variant
	// BusDelay is the pause between line transitions. Zero means
	// DefaultBusDelay.
	BusDelay time.Duration

	_ struct{}
}

// DefaultOpts is the recommended configuration: a quad module at full
// brightness.
var DefaultOpts = Opts{Brightness: MaxBrightness, Variant: Plain}

// Dev is an open handle to one TM1637 module.
//
// The two GPIO lines are owned exclusively by the Dev; a second display
// needs its own line pair and its own Dev. Every operation runs to
// completion on the caller's goroutine, paced by BusDelay sleeps.
type Dev struct {
	clk        gpio.PinOut
	dio        gpio.PinOut
	enc        Encoder
	variant    Variant
	brightness int
	delay      time.Duration
}

// New initializes a TM1637 on the given clock and data lines and switches
// the display on.
//
// opts may be nil, in which case DefaultOpts is used.
func New(clk, dio gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Brightness < 0 || opts.Brightness > MaxBrightness {
		return nil, fmt.Errorf("%w: %d", ErrBrightness, opts.Brightness)
	}
	delay := opts.BusDelay
	if delay == 0 {
		delay = DefaultBusDelay
	}
	d := &Dev{
		clk:        clk,
		dio:        dio,
		enc:        newEncoder(opts.Variant),
		variant:    opts.Variant,
		brightness: opts.Brightness,
		delay:      delay,
	}
	if err := d.clk.Out(gpio.Low); err != nil {
		return nil, err
	}
	if err := d.dio.Out(gpio.Low); err != nil {
		return nil, err
	}
	d.sleep()
	if err := d.writeDataCmd(); err != nil {
		return nil, err
	}
	if err := d.writeDspCtrl(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("TM1637{%s, %s}", d.clk, d.dio)
}

// Brightness returns the current brightness, 0 to MaxBrightness.
func (d *Dev) Brightness() int {
	return d.brightness
}

// SetBrightness changes the display brightness, 0 to MaxBrightness.
func (d *Dev) SetBrightness(v int) error {
	if v < 0 || v > MaxBrightness {
		return fmt.Errorf("%w: %d", ErrBrightness, v)
	}
	d.brightness = v
	if err := d.writeDataCmd(); err != nil {
		return err
	}
	return d.writeDspCtrl()
}

// Write sends segment bytes to consecutive digit positions starting at pos,
// 0 to MaxPosition. On SixDigit modules anything past the sixth byte is
// dropped before transmission.
//
// Callers using EncodeString get variant aware layout for free; Write
// itself transmits the bytes as given.
func (d *Dev) Write(segments []byte, pos int) error {
	if pos < 0 || pos > MaxPosition {
		return fmt.Errorf("%w: %d", ErrPosition, pos)
	}
	if d.variant == SixDigit && len(segments) > 6 {
		segments = segments[:6]
	}
	if err := d.writeDataCmd(); err != nil {
		return err
	}
	if err := d.start(); err != nil {
		return err
	}
	if err := d.writeByte(cmdAddress | byte(pos)); err != nil {
		return err
	}
	for _, s := range segments {
		if err := d.writeByte(s); err != nil {
			return err
		}
	}
	if err := d.stop(); err != nil {
		return err
	}
	return d.writeDspCtrl()
}

// EncodeString converts s into segment bytes using the module's encoding
// rules. See the Encoder implementations selected by Variant.
func (d *Dev) EncodeString(s string) ([]byte, error) {
	return d.enc.EncodeString(s)
}

// Clear blanks every digit.
func (d *Dev) Clear() error {
	return d.Write(make([]byte, d.digits()), 0)
}

// Halt blanks the display and switches it off. Implements conn.Resource.
func (d *Dev) Halt() error {
	if err := d.Clear(); err != nil {
		return err
	}
	if err := d.start(); err != nil {
		return err
	}
	if err := d.writeByte(cmdDisplay); err != nil {
		return err
	}
	return d.stop()
}

// digits is the visible width of the module.
func (d *Dev) digits() int {
	if d.variant == SixDigit {
		return 6
	}
	return 4
}

// writeDataCmd selects auto increment addressing in normal operating mode.
// The chip expects it before every address/data frame.
func (d *Dev) writeDataCmd() error {
	if err := d.start(); err != nil {
		return err
	}
	if err := d.writeByte(cmdData); err != nil {
		return err
	}
	return d.stop()
}

// writeDspCtrl re-asserts display on with the current brightness. Required
// after every data frame and brightness change.
func (d *Dev) writeDspCtrl() error {
	if err := d.start(); err != nil {
		return err
	}
	if err := d.writeByte(cmdDisplay | displayOn | byte(d.brightness)); err != nil {
		return err
	}
	return d.stop()
}

func (d *Dev) sleep() {
	time.Sleep(d.delay)
}

// start asserts the start condition: dio falling while clk is high. Both
// lines end up low, which also covers the degenerate first frame where clk
// was never raised.
func (d *Dev) start() error {
	if err := d.dio.Out(gpio.Low); err != nil {
		return err
	}
	d.sleep()
	if err := d.clk.Out(gpio.Low); err != nil {
		return err
	}
	d.sleep()
	return nil
}

// stop asserts the end of frame condition: dio rising while clk is high.
func (d *Dev) stop() error {
	if err := d.dio.Out(gpio.Low); err != nil {
		return err
	}
	d.sleep()
	if err := d.clk.Out(gpio.High); err != nil {
		return err
	}
	d.sleep()
	return d.dio.Out(gpio.High)
}

// writeByte shifts b out LSB first, then clocks once more across the ack
// slot. The ack is never sampled: both lines are outputs only, so a stuck
// line is undetectable and the protocol proceeds blind.
func (d *Dev) writeByte(b byte) error {
	for i := 0; i < 8; i++ {
		if err := d.dio.Out(gpio.Level(b>>uint(i)&1 == 1)); err != nil {
			return err
		}
		d.sleep()
		if err := d.clk.Out(gpio.High); err != nil {
			return err
		}
		d.sleep()
		if err := d.clk.Out(gpio.Low); err != nil {
			return err
		}
		d.sleep()
	}
	if err := d.clk.Out(gpio.Low); err != nil {
		return err
	}
	d.sleep()
	if err := d.clk.Out(gpio.High); err != nil {
		return err
	}
	d.sleep()
	if err := d.clk.Out(gpio.Low); err != nil {
		return err
	}
	d.sleep()
	return nil
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
