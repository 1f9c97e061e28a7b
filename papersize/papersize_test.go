/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package papersize

import (
	"testing"

	"github.com/google/cloud-print-devmode/devmode"
)

func TestToLegacyCode(t *testing.T) {
	for name, expected := range map[Name]int16{
		NorthAmericaLetter:          devmode.DMPAPER_LETTER,
		ISOA4:                       devmode.DMPAPER_A4,
		JISB5:                       devmode.DMPAPER_B5,
		ISOB4:                       devmode.DMPAPER_ISO_B4,
		JapanYou4EnvelopeRotated:    devmode.DMPAPER_JENV_YOU4_ROTATED,
		PRC10EnvelopeRotated:        devmode.DMPAPER_PENV_10_ROTATED,
		NorthAmericaMonarchEnvelope: devmode.DMPAPER_ENV_MONARCH,
	} {
		code, ok := ToLegacyCode(name)
		if !ok || code != expected {
			t.Errorf("ToLegacyCode(%s) = %d, %t; expected %d", name, code, ok, expected)
		}
	}

	for _, name := range []Name{Unknown, ISOA0, Roll04Inch, BusinessCard, JISB10} {
		if code, ok := ToLegacyCode(name); ok {
			t.Errorf("expected no legacy code for %s, got %d", name, code)
		}
	}
}

func TestForwardThenInverse(t *testing.T) {
	for _, name := range Names() {
		code, ok := ToLegacyCode(name)
		if !ok {
			continue
		}
		back, ok := ToNeutralSize(code)
		if !ok || back != name {
			t.Errorf("%s -> %d -> %s, %t", name, code, back, ok)
		}
	}
}

func TestInverseIsNotABijection(t *testing.T) {
	for code, expected := range map[int16]Name{
		devmode.DMPAPER_LETTERSMALL:       NorthAmericaLetter,
		devmode.DMPAPER_LEDGER:            NorthAmericaTabloid,
		devmode.DMPAPER_A4SMALL:           ISOA4,
		devmode.DMPAPER_LETTER_TRANSVERSE: NorthAmericaLetterRotated,
		devmode.DMPAPER_A3_TRANSVERSE:     ISOA3Rotated,
		devmode.DMPAPER_B5_TRANSVERSE:     JISB5Rotated,
	} {
		name, ok := ToNeutralSize(code)
		if !ok || name != expected {
			t.Errorf("ToNeutralSize(%d) = %s, %t; expected %s", code, name, ok, expected)
			continue
		}
		if forward, _ := ToLegacyCode(name); forward == code {
			t.Errorf("%s should not translate back to %d", name, code)
		}
	}

	if name, _ := ToNeutralSize(devmode.DMPAPER_LETTER_TRANSVERSE); name != NorthAmericaLetterRotated {
		t.Fatalf("unexpected name %s", name)
	}
	if code, _ := ToLegacyCode(NorthAmericaLetterRotated); code != devmode.DMPAPER_LETTER_ROTATED {
		t.Errorf("expected %d, got %d", devmode.DMPAPER_LETTER_ROTATED, code)
	}
}

func TestToNeutralSizeUnknown(t *testing.T) {
	for _, code := range []int16{0, -1, 90, 119, devmode.DMPAPER_USER, 300} {
		if name, ok := ToNeutralSize(code); ok {
			t.Errorf("expected no name for %d, got %s", code, name)
		}
	}
}

func TestIsCustomCode(t *testing.T) {
	if IsCustomCode(devmode.DMPAPER_A4) {
		t.Error("A4 is not custom")
	}
	if !IsCustomCode(devmode.DMPAPER_USER) || !IsCustomCode(512) {
		t.Error("codes from DMPAPER_USER up are custom")
	}
}

func TestParseName(t *testing.T) {
	for _, name := range Names() {
		parsed, ok := ParseName(name.String())
		if !ok || parsed != name {
			t.Errorf("ParseName(%q) = %s, %t", name.String(), parsed, ok)
		}
	}
	if n, ok := ParseName("isoa4"); !ok || n != ISOA4 {
		t.Errorf("expected case insensitive match, got %s, %t", n, ok)
	}
	if _, ok := ParseName("A4"); ok {
		t.Error("A4 is not a neutral name")
	}
	if Name(-3).String() != "Unknown" || numNames.String() != "Unknown" {
		t.Error("out of range names should print as Unknown")
	}
}
