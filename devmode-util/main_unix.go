// Copyright 2015 Google Inc. All rights reserved.

// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

//go:build !windows

package main

import (
	"os"

	"github.com/google/cloud-print-devmode/devcaps"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var unixInitFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "log-to-journal",
		Usage: "Log to the systemd journal (if available) instead of to log-file-name",
	},
}

// Without a spooler, capabilities come only from snapshots.
var printerFlags = []cli.Flag{
	snapshotFlag,
}

var unixCommands = []cli.Command{
	{
		Name:      "init",
		ShortName: "i",
		Usage:     "Creates a config file",
		Action:    initConfigFile,
		Flags:     append(commonInitFlags, unixInitFlags...),
	},
}

func newTranslator(context *cli.Context) (*devcaps.Translator, error) {
	filename := snapshotFilename(context)
	if filename == "" {
		return nil, errors.New("no capability snapshot; pass --snapshot or set capability_snapshot in the config file")
	}
	return translatorFromSnapshot(filename)
}

func main() {
	app := newApp(unixCommands)
	app.Run(os.Args)
}
