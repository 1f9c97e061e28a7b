/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package log

import (
	"bytes"
	"os"
	"regexp"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	for s, expected := range map[string]LogLevel{
		"FATAL":   FATAL,
		"error":   ERROR,
		"Warning": WARNING,
		"info":    INFO,
		"DEBUG":   DEBUG,
	} {
		l, ok := LevelFromString(s)
		if !ok || l != expected {
			t.Errorf("LevelFromString(%q) = %v, %t", s, l, ok)
		}
		if l.String() != expected.String() {
			t.Errorf("String() mismatch for %q", s)
		}
	}
	if _, ok := LevelFromString("verbose"); ok {
		t.Error("verbose is not a level")
	}
}

func TestLogFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	SetLevel(WARNING)
	defer func() {
		SetWriter(os.Stderr)
		SetLevel(INFO)
	}()

	Infof("dropped %d", 1)
	WarningDevicef("HP LaserJet", "paper size %d not supported", 9)
	Error("plain")

	lines := regexp.MustCompile(`\n`).Split(buf.String(), -1)
	if len(lines) != 3 || lines[2] != "" {
		t.Fatalf("expected two lines, got %q", buf.String())
	}
	if !regexp.MustCompile(`^W \[[^]]+\] \[Device HP LaserJet\] paper size 9 not supported$`).MatchString(lines[0]) {
		t.Errorf("unexpected device line %q", lines[0])
	}
	if !regexp.MustCompile(`^E \[[^]]+\] plain$`).MatchString(lines[1]) {
		t.Errorf("unexpected line %q", lines[1])
	}
}

func TestFatalReturns(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(os.Stderr)

	Fatalf("spooler %s is gone", "winspool")
	if !regexp.MustCompile(`^X \[[^]]+\] spooler winspool is gone\n$`).MatchString(buf.String()) {
		t.Errorf("unexpected line %q", buf.String())
	}
}
