/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/cloud-print-devmode/cdd"
	"github.com/google/cloud-print-devmode/devmode"
	"github.com/google/cloud-print-devmode/lib"
	"github.com/google/go-cmp/cmp"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"
)

// newContext parses args against the flags of the set command.
func newContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("set", flag.ContinueOnError)
	for _, name := range []string{
		"settings", "device-name", "form-name", "orientation", "paper-size", "duplex", "color", "collate",
		"paper-length", "paper-width", "copies", "default-source", "media-type",
	} {
		set.String(name, "", "")
	}
	if err := set.Parse(args); err != nil {
		t.Fatal(err)
	}
	return cli.NewContext(nil, set, nil)
}

func TestPaperCodeString(t *testing.T) {
	for code, expected := range map[int16]string{
		devmode.DMPAPER_A4:     "9 (ISOA4)",
		devmode.DMPAPER_LETTER: "1 (NorthAmericaLetter)",
		devmode.DMPAPER_USER:   "256 (driver-defined)",
		300:                    "300 (driver-defined)",
		0:                      "0",
	} {
		if s := paperCodeString(code); s != expected {
			t.Errorf("paperCodeString(%d) = %q, want %q", code, s, expected)
		}
	}
}

func TestParseNamedValue(t *testing.T) {
	testCases := []struct {
		value    string
		expected int16
		ok       bool
	}{
		{"landscape", devmode.DMORIENT_LANDSCAPE, true},
		{"Portrait", devmode.DMORIENT_PORTRAIT, true},
		{"2", 2, true},
		{"sideways", 0, false},
		{"70000", 0, false},
	}
	for _, tc := range testCases {
		v, err := parseNamedValue(tc.value, orientationByName)
		if tc.ok != (err == nil) {
			t.Errorf("parseNamedValue(%q) returned error %v", tc.value, err)
			continue
		}
		if v != tc.expected {
			t.Errorf("parseNamedValue(%q) = %d, want %d", tc.value, v, tc.expected)
		}
	}
}

func TestParsePaperSize(t *testing.T) {
	if code, err := parsePaperSize("isoa4"); err != nil || code != devmode.DMPAPER_A4 {
		t.Errorf("parsePaperSize(isoa4) = %d, %v", code, err)
	}
	if code, err := parsePaperSize("257"); err != nil || code != 257 {
		t.Errorf("parsePaperSize(257) = %d, %v", code, err)
	}
	if _, err := parsePaperSize("napkin"); err == nil {
		t.Error("parsePaperSize(napkin) succeeded")
	}
}

func TestApplyFlags(t *testing.T) {
	dm := devmode.NewFull()
	context := newContext(t,
		"--device-name", "Front Desk",
		"--orientation", "landscape",
		"--paper-size", "ISOA4",
		"--copies", "3",
		"--duplex", "short-edge",
		"--color", "monochrome",
		"--collate", "true",
		"--media-type", "3",
	)
	if err := applyFlags(context, dm); err != nil {
		t.Fatal(err)
	}

	expected := devmode.Settings{
		DeviceName:  "Front Desk",
		Orientation: int16p(devmode.DMORIENT_LANDSCAPE),
		PaperSize:   int16p(devmode.DMPAPER_A4),
		Copies:      int16p(3),
		Duplex:      int16p(devmode.DMDUP_HORIZONTAL),
		Color:       int16p(devmode.DMCOLOR_MONOCHROME),
		Collate:     int16p(devmode.DMCOLLATE_TRUE),
		MediaType:   uint32p(3),
	}
	if diff := cmp.Diff(expected, dm.Settings()); diff != "" {
		t.Errorf("unexpected settings (-want +got):\n%s", diff)
	}
}

func TestApplyFlagsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--duplex", "sometimes"},
		{"--paper-size", "napkin"},
		{"--collate", "maybe"},
		{"--copies", "40000"},
		{"--paper-length", "50000"},
		{"--default-source", "-40000"},
		{"--media-type", "-1"},
		{"--media-type", "5000000000"},
		{"--settings", filepath.Join(t.TempDir(), "missing.yaml")},
	} {
		if err := applyFlags(newContext(t, args...), devmode.NewFull()); err == nil {
			t.Errorf("applyFlags(%v) succeeded", args)
		}
	}
}

func TestReadSettings(t *testing.T) {
	dm := devmode.NewFull()
	dm.SetCopies(2)
	dm.SetPaperSize(devmode.DMPAPER_LETTER)
	expected := dm.Settings()

	// A dump report and bare settings both work.
	var report bytes.Buffer
	if err := writeRecord(&report, lib.OutputYAML, newDevModeReport(dm), nil); err != nil {
		t.Fatal(err)
	}
	bare, err := json.Marshal(expected)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	for name, b := range map[string][]byte{"report.yaml": report.Bytes(), "bare.json": bare} {
		filename := filepath.Join(dir, name)
		if err := os.WriteFile(filename, b, 0644); err != nil {
			t.Fatal(err)
		}
		s, err := readSettings(filename)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if diff := cmp.Diff(expected, s); diff != "" {
			t.Errorf("%s: unexpected settings (-want +got):\n%s", name, diff)
		}
	}
}

func TestReadWriteDevMode(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "dm.bin")
	if _, err := readDevMode(filename); err == nil {
		t.Fatal("read a missing file")
	}

	dm := devmode.NewFull()
	dm.SetOrientation(devmode.DMORIENT_PORTRAIT)
	if err := writeDevMode(filename, dm); err != nil {
		t.Fatal(err)
	}
	got, err := readDevMode(filename)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got.Bytes(), dm.Bytes()) {
		t.Error("DEVMODE changed through a file")
	}
}

func TestIncompatibility(t *testing.T) {
	a := devmode.NewFull()
	if s := incompatibility(a, a.Clone()); s != "" {
		t.Errorf("identical DEVMODEs differ by %q", s)
	}

	// dmDriverExtra of a wide DEVMODE is at offset 70.
	raw := append(a.Bytes(), 0, 0, 0, 0)
	raw[70] = 4
	b := devmode.Parse(raw)
	if s := incompatibility(a, b); !strings.Contains(s, "driver extra 0 vs 4") {
		t.Errorf("incompatibility = %q", s)
	}
}

func TestWriteRecord(t *testing.T) {
	entries := []paperEntry{{Name: "ISOA4", Code: int16p(devmode.DMPAPER_A4)}}

	var b bytes.Buffer
	if err := writeRecord(&b, lib.OutputYAML, entries, nil); err != nil {
		t.Fatal(err)
	}
	var fromYAML []paperEntry
	if err := yaml.Unmarshal(b.Bytes(), &fromYAML); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(entries, fromYAML); diff != "" {
		t.Errorf("YAML changed the entries (-want +got):\n%s", diff)
	}

	b.Reset()
	if err := writeRecord(&b, lib.OutputJSON, entries, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), `"name": "ISOA4"`) {
		t.Errorf("unexpected JSON:\n%s", b.String())
	}

	b.Reset()
	err := writeRecord(&b, lib.OutputTable, entries, func(w io.Writer) {
		writeTable(w, []string{"Name", "DMPAPER"}, paperRows(entries))
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "ISOA4") || !strings.Contains(b.String(), "9") {
		t.Errorf("unexpected table:\n%s", b.String())
	}

	if err := writeRecord(&b, "xml", entries, nil); err == nil {
		t.Error("wrote an unknown format")
	}
}

func TestPaperEntries(t *testing.T) {
	entries := paperEntries()
	var a4, custom *paperEntry
	for i := range entries {
		switch entries[i].Name {
		case "ISOA4":
			a4 = &entries[i]
		case "Unknown":
			t.Error("Unknown is listed")
		}
		if entries[i].Code == nil && custom == nil {
			custom = &entries[i]
		}
	}
	if a4 == nil || a4.Code == nil || *a4.Code != devmode.DMPAPER_A4 {
		t.Errorf("ISOA4 entry is %+v", a4)
	}
	if custom != nil && paperRows([]paperEntry{*custom})[0][1] != "" {
		t.Error("a name without a code shows one")
	}
}

func TestDevModeReportRows(t *testing.T) {
	dm := devmode.NewFull()
	dm.SetPaperSize(devmode.DMPAPER_A4)
	dm.SetCopies(4)

	rows := newDevModeReport(dm).rows()
	values := make(map[string]string, len(rows))
	for _, r := range rows {
		values[r[0]] = r[1]
	}
	if values["paper size"] != "9 (ISOA4)" {
		t.Errorf("paper size row is %q", values["paper size"])
	}
	if values["copies"] != "4" {
		t.Errorf("copies row is %q", values["copies"])
	}
	if values["fields"] != "paper-size,copies" {
		t.Errorf("fields row is %q", values["fields"])
	}
	if _, ok := values["orientation"]; ok {
		t.Error("absent orientation has a row")
	}
}

func TestDescriptionRows(t *testing.T) {
	d := &cdd.PrinterDescriptionSection{
		Copies: &cdd.Copies{Default: 1, Max: 99},
		Duplex: &cdd.Duplex{Option: []cdd.DuplexOption{
			{Type: cdd.DuplexNoDuplex, IsDefault: true},
			{Type: cdd.DuplexLongEdge},
		}},
	}
	expected := [][]string{
		{"duplex", "NO_DUPLEX*, LONG_EDGE"},
		{"copies", "default 1, max 99"},
	}
	if diff := cmp.Diff(expected, descriptionRows(d)); diff != "" {
		t.Errorf("unexpected rows (-want +got):\n%s", diff)
	}
}

func int16p(v int16) *int16    { return &v }
func uint32p(v uint32) *uint32 { return &v }
