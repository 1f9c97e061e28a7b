/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package main

import (
	"fmt"

	"github.com/google/cloud-print-devmode/lib"
	"github.com/urfave/cli"
)

var commonInitFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "log-level",
		Usage: "Minimum event severity to log: FATAL, ERROR, WARNING, INFO, DEBUG",
		Value: lib.DefaultConfig.LogLevel,
	},
	cli.StringFlag{
		Name:  "log-file-name",
		Usage: "Log file name, full path. Empty logs to stderr",
		Value: lib.DefaultConfig.LogFileName,
	},
	cli.IntFlag{
		Name:  "log-file-max-megabytes",
		Usage: "Log file max size, in megabytes",
		Value: int(lib.DefaultConfig.LogFileMaxMegabytes),
	},
	cli.IntFlag{
		Name:  "log-max-files",
		Usage: "Maximum log file quantity before rollover",
		Value: int(lib.DefaultConfig.LogMaxFiles),
	},
	cli.StringFlag{
		Name:  "default-printer",
		Usage: "Printer queried when a command names none",
	},
	cli.StringFlag{
		Name:  "capability-snapshot",
		Usage: "Capability snapshot (YAML) queried instead of a printer",
	},
	cli.StringFlag{
		Name:  "output-format",
		Usage: "Output format: table, yaml, or json",
		Value: lib.DefaultConfig.OutputFormat,
	},
}

// createConfig builds a config from the init flags.
func createConfig(context *cli.Context) *lib.Config {
	return &lib.Config{
		LogLevel:            context.String("log-level"),
		LogFileName:         context.String("log-file-name"),
		LogFileMaxMegabytes: uint(context.Int("log-file-max-megabytes")),
		LogMaxFiles:         uint(context.Int("log-max-files")),
		LogToJournal:        lib.PointerToBool(context.Bool("log-to-journal")),
		DefaultPrinter:      context.String("default-printer"),
		CapabilitySnapshot:  context.String("capability-snapshot"),
		OutputFormat:        context.String("output-format"),
	}
}

func initConfigFile(context *cli.Context) error {
	c := createConfig(context)
	if err := c.Validate(); err != nil {
		return cli.NewExitError(err, 1)
	}

	configFilename, err := c.Sparse(context).ToFile(context)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Printf("The config file %s is ready.\n", configFilename)
	return nil
}
