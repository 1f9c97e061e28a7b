/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package devcaps

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/google/cloud-print-devmode/devmode"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

const snapshotYAML = `
device: Office LaserJet
driver: HP Universal Printing PCL 6
port: IP_10.0.0.12
scalars:
  duplex: 1
  collate: 1
  copies: 999
  color-device: 0
min_extent:
  width: 762
  height: 1270
papers: [1, 5, 9]
paper_names: [Letter, Legal, A4]
paper_sizes:
  - {width: 2159, height: 2794}
  - {width: 2159, height: 3556}
  - {width: 2100, height: 2970}
bins: [15, 7]
bin_names: [Automatically Select, Tray 1]
resolutions:
  - {x: 600, y: 600}
  - {x: 1200, y: 1200}
devmode:
  paper_size: 9
  duplex: 2
`

func writeSnapshot(t *testing.T) string {
	filename := filepath.Join(t.TempDir(), "laserjet.yaml")
	if err := os.WriteFile(filename, []byte(snapshotYAML), 0600); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestLoadSnapshot(t *testing.T) {
	s, err := LoadSnapshot(writeSnapshot(t))
	if err != nil {
		t.Fatal(err)
	}
	tr, err := s.Translator()
	if err != nil {
		t.Fatal(err)
	}

	papers, err := tr.Papers()
	if err != nil {
		t.Fatal(err)
	}
	if expected := []int16{1, 5, 9}; !reflect.DeepEqual(expected, papers) {
		t.Errorf("expected %v, got %v", expected, papers)
	}

	names, err := tr.BinNames()
	if err != nil {
		t.Fatal(err)
	}
	if expected := []string{"Automatically Select", "Tray 1"}; !reflect.DeepEqual(expected, names) {
		t.Errorf("expected %q, got %q", expected, names)
	}

	if duplex, err := tr.Duplex(); err != nil || !duplex {
		t.Errorf("expected duplex, got %t, %v", duplex, err)
	}
	if color, err := tr.Color(); err != nil || color {
		t.Errorf("expected monochrome, got %t, %v", color, err)
	}
	if _, err := tr.Orientation(); errors.Cause(err) != ErrUnsupported {
		t.Errorf("expected ErrUnsupported for unrecorded scalar, got %v", err)
	}
	if e, err := tr.MinExtent(); err != nil || e != (PaperSize{762, 1270}) {
		t.Errorf("unexpected min extent %v, %v", e, err)
	}
	if _, err := tr.MaxExtent(); errors.Cause(err) != ErrUnsupported {
		t.Errorf("expected ErrUnsupported for max extent, got %v", err)
	}

	size, ok, err := tr.DefaultPaperSize()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || size != (PaperSize{2100, 2970}) {
		t.Errorf("expected A4 default, got %v, %t", size, ok)
	}
}

func TestLoadSnapshotErrors(t *testing.T) {
	if _, err := LoadSnapshot(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}

	filename := filepath.Join(t.TempDir(), "nodevice.yaml")
	if err := os.WriteFile(filename, []byte("papers: [1]\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnapshot(filename); err == nil {
		t.Error("expected an error for a snapshot without a device")
	}
}

func TestSnapshotOtherDevice(t *testing.T) {
	s := &Snapshot{Device: "A", Papers: []int16{1}}
	tr := NewTranslator(s, "B", "", "", nil)
	if _, err := tr.Papers(); errors.Cause(err) != ErrUnsupported {
		t.Errorf("expected ErrUnsupported for another device, got %v", err)
	}
}

func TestTakeSnapshotRoundTrip(t *testing.T) {
	original, err := LoadSnapshot(writeSnapshot(t))
	if err != nil {
		t.Fatal(err)
	}
	tr, err := original.Translator()
	if err != nil {
		t.Fatal(err)
	}

	taken, err := TakeSnapshot(tr)
	if err != nil {
		t.Fatal(err)
	}

	filename := filepath.Join(t.TempDir(), "taken.yaml")
	if err := taken.Save(filename); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadSnapshot(filename)
	if err != nil {
		t.Fatal(err)
	}

	// The default DevMode gains the device name when it is rebuilt.
	expected := *original
	settings := *original.DevMode
	settings.DeviceName = original.Device
	expected.DevMode = &settings
	if diff := cmp.Diff(&expected, loaded); diff != "" {
		t.Errorf("snapshot changed after a round trip (-want +got):\n%s", diff)
	}
}

func TestSnapshotTruncatesNames(t *testing.T) {
	long := "Heavyweight Glossy Photo Paper With Extra Long Name Beyond Sixty Four Units"
	s := &Snapshot{Device: "A", MediaTypeNames: []string{long}, MediaTypes: []uint32{devmode.DMMEDIA_GLOSSY}}
	tr := NewTranslator(s, "A", "", "", nil)

	names, err := tr.MediaTypeNames()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != long[:63] {
		t.Errorf("expected the name cut to 63 characters, got %q", names)
	}
}
