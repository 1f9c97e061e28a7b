// Copyright 2015 Google Inc. All rights reserved.

// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

package lib

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/urfave/cli"
)

func contextWithConfig(filename string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("config-filename", filename, "")
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestGetConfigMissingFile(t *testing.T) {
	config, filename, err := GetConfig(contextWithConfig(filepath.Join(t.TempDir(), "absent.json")))
	if err != nil {
		t.Fatal(err)
	}
	if filename != "" {
		t.Errorf("expected no filename, got %s", filename)
	}
	if diff := cmp.Diff(&DefaultConfig, config); diff != "" {
		t.Errorf("expected the default config (-want +got):\n%s", diff)
	}
}

func TestGetConfigBackfill(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "devmode-util.config.json")
	contents := `{"log_level": "debug", "default_printer": "Office", "log_max_files": 0}`
	if err := os.WriteFile(filename, []byte(contents), 0600); err != nil {
		t.Fatal(err)
	}

	config, found, err := GetConfig(contextWithConfig(filename))
	if err != nil {
		t.Fatal(err)
	}
	if found != filename {
		t.Errorf("expected %s, got %s", filename, found)
	}

	expected := DefaultConfig
	expected.LogLevel = "debug"
	expected.DefaultPrinter = "Office"
	expected.LogMaxFiles = 0
	if diff := cmp.Diff(&expected, config); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
	if err := config.Validate(); err != nil {
		t.Error(err)
	}
}

func TestGetConfigMalformed(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(filename, []byte("{"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := GetConfig(contextWithConfig(filename)); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestToFileSparse(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.json")
	context := contextWithConfig(filename)

	config := DefaultConfig
	config.CapabilitySnapshot = "laserjet.yaml"
	written, err := config.Sparse(context).ToFile(context)
	if err != nil {
		t.Fatal(err)
	}
	if written != filename {
		t.Errorf("expected %s, got %s", filename, written)
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	expected := "{\n  \"capability_snapshot\": \"laserjet.yaml\"\n}"
	if string(b) != expected {
		t.Errorf("expected %s, got %s", expected, b)
	}

	read, _, err := GetConfig(context)
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig
	want.CapabilitySnapshot = "laserjet.yaml"
	if diff := cmp.Diff(&want, read); diff != "" {
		t.Errorf("unexpected config after round trip (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	config := DefaultConfig
	config.OutputFormat = "xml"
	if err := config.Validate(); err == nil {
		t.Error("expected xml to be rejected")
	}
	config = DefaultConfig
	config.LogLevel = "loud"
	if err := config.Validate(); err == nil {
		t.Error("expected loud to be rejected")
	}
}
