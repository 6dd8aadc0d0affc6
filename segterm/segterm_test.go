// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segterm

import (
	"bytes"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	d := New(&Opts{Digits: 4})
	if got := d.String(); got != "SegTerm{4}" {
		t.Errorf("String() = %q", got)
	}
}

func TestWriteBlank(t *testing.T) {
	d := New(&Opts{Digits: 2})
	var buf bytes.Buffer
	d.w = &buf
	n, err := d.Write([]byte{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
	out := buf.String()
	if strings.Count(out, "\n") != rows {
		t.Errorf("expected %d rendered rows, got output %q", rows, out)
	}
	// Nothing is lit, so there must be no color blocks between the escape
	// sequences, just spaces.
	for _, line := range strings.Split(out, "\n")[:rows] {
		line = strings.ReplaceAll(line, "\033[0m", "")
		if strings.TrimLeft(line, " ") != "" {
			t.Errorf("blank digit rendered non-space cells: %q", line)
		}
	}
}

func TestWriteLit(t *testing.T) {
	d := New(&Opts{Digits: 1})
	var buf bytes.Buffer
	d.w = &buf

	// All segments plus the decimal point light every maskable cell.
	if _, err := d.Write([]byte{0xff}); err != nil {
		t.Fatal(err)
	}
	lit := strings.Count(buf.String(), d.palette.Block(d.lit))
	want := 0
	for _, row := range cellMask {
		for _, mask := range row {
			if mask != 0 {
				want++
			}
		}
	}
	if lit != want {
		t.Errorf("0xff lit %d cells, want %d", lit, want)
	}

	// A bare decimal point lights exactly one cell.
	buf.Reset()
	if _, err := d.Write([]byte{0x80}); err != nil {
		t.Fatal(err)
	}
	if lit := strings.Count(buf.String(), d.palette.Block(d.lit)); lit != 1 {
		t.Errorf("0x80 lit %d cells, want 1", lit)
	}
}

func TestWriteShort(t *testing.T) {
	d := New(&Opts{Digits: 4})
	var buf bytes.Buffer
	d.w = &buf
	// Writing fewer bytes than digits blanks the remainder.
	if _, err := d.Write([]byte{0xff, 0xff}); err != nil {
		t.Fatal(err)
	}
	first := buf.String()
	buf.Reset()
	if _, err := d.Write([]byte{0xff, 0xff, 0, 0}); err != nil {
		t.Fatal(err)
	}
	if first != buf.String() {
		t.Error("short write did not blank the trailing digits")
	}
}

func TestHalt(t *testing.T) {
	d := New(&Opts{Digits: 4})
	var buf bytes.Buffer
	d.w = &buf
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "\033[0m\n") {
		t.Errorf("Halt did not reset attributes: %q", buf.String())
	}
}
