/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package devmode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestAccessorIgnoresOutOfRange(t *testing.T) {
	a := accessor(make([]byte, 5))

	a.writeU32(2, 0xffffffff)
	a.writeU16(4, 0xffff)
	if !bytes.Equal(a, make([]byte, 5)) {
		t.Fatalf("out of range writes changed the buffer: %v", []byte(a))
	}
	if v := a.readU32(2); v != 0 {
		t.Errorf("expected 0 from partial read, got %d", v)
	}
	if v := a.readU16(4); v != 0 {
		t.Errorf("expected 0 from partial read, got %d", v)
	}

	a.writeU16(3, 0x0201)
	if a[3] != 1 || a[4] != 2 {
		t.Errorf("expected little endian write at the end of the buffer, got %v", []byte(a))
	}

	var empty accessor
	empty.writeU32(0, 1)
	if v := empty.readU32(0); v != 0 {
		t.Errorf("expected 0 from empty accessor, got %d", v)
	}
}

func TestWriteFixedStringWide(t *testing.T) {
	a := accessor(make([]byte, 64))
	for i := range a {
		a[i] = 0xee
	}
	if err := a.writeFixedString(0, 32, true, "ABC"); err != nil {
		t.Fatal(err)
	}

	expected := make([]byte, 64)
	copy(expected, []byte{'A', 0, 'B', 0, 'C', 0})
	if !bytes.Equal(expected, a) {
		t.Fatalf("expected %v, got %v", expected, []byte(a))
	}
	if s := a.readFixedString(0, 32, true); s != "ABC" {
		t.Errorf("expected ABC, got %q", s)
	}
}

func TestWriteFixedStringNarrow(t *testing.T) {
	a := accessor(make([]byte, 32))
	if err := a.writeFixedString(0, 32, false, "Büro"); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a[:5], []byte{'B', 0xfc, 'r', 'o', 0}) {
		t.Errorf("unexpected narrow bytes %v", []byte(a[:5]))
	}
	if s := a.readFixedString(0, 32, false); s != "Büro" {
		t.Errorf("expected Büro, got %q", s)
	}

	err := a.writeFixedString(0, 32, false, "日本")
	if errors.Cause(err) != ErrEncodingViolation {
		t.Fatalf("expected ErrEncodingViolation, got %v", err)
	}
	if s := a.readFixedString(0, 32, false); s != "Büro" {
		t.Errorf("failed write changed the slot to %q", s)
	}
}

func TestWriteFixedStringTruncates(t *testing.T) {
	a := accessor(make([]byte, 64))
	long := strings.Repeat("x", 40)
	if err := a.writeFixedString(0, 32, true, long); err != nil {
		t.Fatal(err)
	}
	if s := a.readFixedString(0, 32, true); s != long[:31] {
		t.Errorf("expected 31 characters, got %d", len(s))
	}
	if a[62] != 0 || a[63] != 0 {
		t.Error("expected the last code unit to be a terminator")
	}

	// The emoji is a surrogate pair straddling the 31 unit limit.
	if err := a.writeFixedString(0, 32, true, strings.Repeat("a", 30)+"\U0001F600"); err != nil {
		t.Fatal(err)
	}
	if s := a.readFixedString(0, 32, true); s != strings.Repeat("a", 30) {
		t.Errorf("expected the split surrogate to be dropped, got %q", s)
	}

	if err := a.writeFixedString(0, 32, true, strings.Repeat("a", 29)+"\U0001F600"); err != nil {
		t.Fatal(err)
	}
	if s := a.readFixedString(0, 32, true); s != strings.Repeat("a", 29)+"\U0001F600" {
		t.Errorf("expected the whole surrogate pair to be kept, got %q", s)
	}
}

func TestReadFixedStringUnterminated(t *testing.T) {
	a := accessor(bytes.Repeat([]byte{'z', 0}, 40))
	if s := a.readFixedString(0, 32, true); s != strings.Repeat("z", 32) {
		t.Errorf("expected 32 characters, got %d", len(s))
	}
	if s := accessor([]byte{'q', 0, 'r'}).readFixedString(0, 32, true); s != "q" {
		t.Errorf("expected a short buffer to end the string, got %q", s)
	}
}
