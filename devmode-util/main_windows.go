// Copyright 2015 Google Inc. All rights reserved.

// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

//go:build windows

package main

import (
	"io"
	"os"

	"github.com/google/cloud-print-devmode/devcaps"
	"github.com/google/cloud-print-devmode/log"
	"github.com/google/cloud-print-devmode/winspool"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var printerFlags = []cli.Flag{
	snapshotFlag,
	cli.StringFlag{
		Name:  "printer",
		Usage: "Printer to query; defaults to default_printer in the config file",
	},
}

var windowsCommands = []cli.Command{
	{
		Name:      "init",
		ShortName: "i",
		Usage:     "Creates a config file",
		Action:    initConfigFile,
		Flags:     commonInitFlags,
	},
	{
		Name:   "printers",
		Usage:  "Lists the printers known to the spooler",
		Action: listPrinters,
		Flags:  []cli.Flag{outputFormatFlag},
	},
	{
		Name:      "get",
		Usage:     "Writes a printer's default DEVMODE to FILE",
		ArgsUsage: "FILE",
		Action:    getPrinterDevMode,
		Flags:     printerFlags[1:],
	},
	{
		Name:      "merge",
		Usage:     "Has the printer driver validate FILE, writing the merged DEVMODE",
		ArgsUsage: "FILE",
		Action:    mergePrinterDevMode,
		Flags: append(printerFlags[1:], cli.StringFlag{
			Name:  "out",
			Usage: "Write to this file instead of FILE",
		}),
	},
}

// printerName prefers the command's flag over the config file.
func printerName(context *cli.Context) string {
	if p := context.String("printer"); p != "" {
		return p
	}
	return config.DefaultPrinter
}

func newTranslator(context *cli.Context) (*devcaps.Translator, error) {
	if filename := snapshotFilename(context); filename != "" && !context.IsSet("printer") {
		return translatorFromSnapshot(filename)
	}
	name := printerName(context)
	if name == "" {
		return nil, errors.New("no printer; pass --printer or set default_printer in the config file")
	}
	return winspool.NewTranslator(name)
}

func listPrinters(context *cli.Context) error {
	printers, err := winspool.EnumPrinters2()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	rows := make([][]string, 0, len(printers))
	for _, p := range printers {
		rows = append(rows, []string{p.Name, p.Driver, p.Port, p.Location})
	}
	err = writeRecord(os.Stdout, outputFormat(context), printers, func(w io.Writer) {
		writeTable(w, []string{"Name", "Driver", "Port", "Location"}, rows)
	})
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

func openPrinter(context *cli.Context) (winspool.HANDLE, string, error) {
	name := printerName(context)
	if name == "" {
		return 0, "", errors.New("no printer; pass --printer or set default_printer in the config file")
	}
	h, err := winspool.OpenPrinter(name)
	return h, name, err
}

func getPrinterDevMode(context *cli.Context) error {
	filename := context.Args().First()
	if filename == "" {
		return cli.NewExitError("missing DEVMODE file name", 1)
	}
	h, name, err := openPrinter(context)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer h.ClosePrinter()

	dm, err := h.DocumentPropertiesGet(name)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if err := writeDevMode(filename, dm); err != nil {
		return cli.NewExitError(err, 1)
	}
	log.Infof("Wrote the default DEVMODE of %s to %s", name, filename)
	return nil
}

func mergePrinterDevMode(context *cli.Context) error {
	filename := context.Args().First()
	dm, err := readDevMode(filename)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	h, name, err := openPrinter(context)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer h.ClosePrinter()

	merged, err := h.DocumentPropertiesSet(name, dm)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	out := context.String("out")
	if out == "" {
		out = filename
	}
	if err := writeDevMode(out, merged); err != nil {
		return cli.NewExitError(err, 1)
	}
	log.Infof("%s accepted fields %s", name, merged.Fields())
	return nil
}

func main() {
	app := newApp(windowsCommands)
	app.Run(os.Args)
}
