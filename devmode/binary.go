/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package devmode

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/pkg/errors"
)

// ErrEncodingViolation is returned when a string is written to a narrow
// (single byte) field and contains a code unit above 0xff.
var ErrEncodingViolation = errors.New("character does not fit a narrow DEVMODE string")

// accessor reads and writes little-endian values at byte offsets.
//
// Accesses that would touch a byte at or past the end of the buffer are
// absorbed: reads return zero and writes are dropped. DEVMODE buffers come
// from drivers and are routinely shorter than the full structure.
type accessor []byte

func (a accessor) fits(offset, width int) bool {
	return offset >= 0 && offset+width <= len(a)
}

func (a accessor) readU16(offset int) uint16 {
	if !a.fits(offset, 2) {
		return 0
	}
	return binary.LittleEndian.Uint16(a[offset:])
}

func (a accessor) readU32(offset int) uint32 {
	if !a.fits(offset, 4) {
		return 0
	}
	return binary.LittleEndian.Uint32(a[offset:])
}

func (a accessor) writeU16(offset int, value uint16) {
	if !a.fits(offset, 2) {
		return
	}
	binary.LittleEndian.PutUint16(a[offset:], value)
}

func (a accessor) writeU32(offset int, value uint32) {
	if !a.fits(offset, 4) {
		return
	}
	binary.LittleEndian.PutUint32(a[offset:], value)
}

func unitSize(wide bool) int {
	if wide {
		return 2
	}
	return 1
}

func (a accessor) readUnit(offset int, wide bool) uint16 {
	if wide {
		return a.readU16(offset)
	}
	if !a.fits(offset, 1) {
		return 0
	}
	return uint16(a[offset])
}

func (a accessor) writeUnit(offset int, wide bool, unit uint16) {
	if wide {
		a.writeU16(offset, unit)
		return
	}
	if !a.fits(offset, 1) {
		return
	}
	a[offset] = byte(unit)
}

// readFixedString reads up to maxChars code units starting at offset,
// stopping at the first null.
func (a accessor) readFixedString(offset, maxChars int, wide bool) string {
	size := unitSize(wide)
	units := make([]uint16, 0, maxChars)
	for i := 0; i < maxChars; i++ {
		u := a.readUnit(offset+i*size, wide)
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	if !wide {
		runes := make([]rune, len(units))
		for i, u := range units {
			runes[i] = rune(u)
		}
		return string(runes)
	}
	return string(utf16.Decode(units))
}

// writeFixedString writes at most maxChars-1 code units of value and fills
// the rest of the slot with nulls, so the field is always terminated.
// Nothing is written when the value does not fit the narrow encoding.
func (a accessor) writeFixedString(offset, maxChars int, wide bool, value string) error {
	if maxChars <= 0 {
		return nil
	}
	units := utf16.Encode([]rune(value))
	if !wide {
		for _, u := range units {
			if u > 0xff {
				return errors.Wrapf(ErrEncodingViolation, "code unit %#04x in %q", u, value)
			}
		}
	}
	if len(units) > maxChars-1 {
		units = units[:maxChars-1]
		if last := len(units) - 1; wide && last >= 0 && units[last] >= 0xd800 && units[last] < 0xdc00 {
			// Don't leave half of a surrogate pair behind.
			units = units[:len(units)-1]
		}
	}

	size := unitSize(wide)
	for i := 0; i < maxChars; i++ {
		var u uint16
		if i < len(units) {
			u = units[i]
		}
		a.writeUnit(offset+i*size, wide, u)
	}
	return nil
}
