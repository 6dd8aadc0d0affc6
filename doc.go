// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tm1637 controls quad and six digit 7-segment LED modules built
// around the Titan Micro TM1637 controller.
//
// The chip speaks a two wire clock/data protocol that looks like I²C but is
// not: there is no device addressing, timing is fixed, and the single ack
// bit is left unread. Both lines are plain push-pull outputs, bit-banged
// with a fixed delay between transitions.
//
// Three module variants are supported through the same driver: the common
// quad display with a clock colon, quad displays with a decimal point after
// each digit, and six digit displays wired as two reversed triplets.
//
// # Datasheet
//
// https://www.mcielectronics.cl/website_MCI/static/documents/Datasheet_TM1637.pdf
package tm1637
