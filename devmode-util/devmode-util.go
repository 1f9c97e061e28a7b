/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/google/cloud-print-devmode/cdd"
	"github.com/google/cloud-print-devmode/devcaps"
	"github.com/google/cloud-print-devmode/devmode"
	"github.com/google/cloud-print-devmode/lib"
	"github.com/google/cloud-print-devmode/log"
	"github.com/google/cloud-print-devmode/papersize"
	"github.com/google/cloud-print-devmode/winspool"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"
)

// config is loaded before any command runs.
var config = &lib.DefaultConfig

var snapshotFlag = cli.StringFlag{
	Name:  "snapshot",
	Usage: "Capability snapshot (YAML) to query instead of a printer",
}

var commonCommands = []cli.Command{
	{
		Name:      "dump",
		Usage:     "Shows the members of a DEVMODE file",
		ArgsUsage: "FILE",
		Action:    dumpDevMode,
		Flags:     []cli.Flag{outputFormatFlag},
	},
	{
		Name:      "set",
		Usage:     "Sets members of a DEVMODE file",
		ArgsUsage: "FILE",
		Action:    setDevMode,
		Flags: []cli.Flag{
			cli.BoolFlag{
				Name:  "create",
				Usage: "Start from an empty DEVMODE when FILE does not exist",
			},
			cli.StringFlag{
				Name:  "out",
				Usage: "Write to this file instead of FILE",
			},
			cli.StringFlag{
				Name:  "settings",
				Usage: "YAML or JSON file of members to apply, as printed by dump",
			},
			cli.StringFlag{Name: "device-name"},
			cli.StringFlag{Name: "form-name"},
			cli.StringFlag{
				Name:  "orientation",
				Usage: "portrait, landscape, or a DMORIENT value",
			},
			cli.StringFlag{
				Name:  "paper-size",
				Usage: "Paper name (see papers) or a DMPAPER value",
			},
			cli.StringFlag{
				Name:  "paper-length",
				Usage: "Paper length in tenths of a millimeter",
			},
			cli.StringFlag{
				Name:  "paper-width",
				Usage: "Paper width in tenths of a millimeter",
			},
			cli.StringFlag{Name: "copies"},
			cli.StringFlag{
				Name:  "duplex",
				Usage: "simplex, long-edge, short-edge, or a DMDUP value",
			},
			cli.StringFlag{
				Name:  "color",
				Usage: "color, monochrome, or a DMCOLOR value",
			},
			cli.StringFlag{
				Name:  "collate",
				Usage: "true or false",
			},
			cli.StringFlag{
				Name:  "default-source",
				Usage: "DMBIN value",
			},
			cli.StringFlag{
				Name:  "media-type",
				Usage: "DMMEDIA value",
			},
		},
	},
	{
		Name:      "copy",
		Usage:     "Copies members from one DEVMODE file to another",
		ArgsUsage: "SOURCE DESTINATION",
		Action:    copyDevMode,
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "fields",
				Usage: "Comma-separated members to copy, or all",
				Value: "all",
			},
			cli.BoolFlag{
				Name:  "compatible",
				Usage: "Copy every byte, including driver-private data; both files must come from the same driver",
			},
			cli.StringFlag{
				Name:  "out",
				Usage: "Write to this file instead of DESTINATION",
			},
		},
	},
	{
		Name:      "compat",
		Usage:     "Reports whether two DEVMODE files have the same layout",
		ArgsUsage: "A B",
		Action:    compareDevModes,
	},
	{
		Name:   "caps",
		Usage:  "Shows the device capabilities of a printer",
		Action: showCapabilities,
		Flags: append(printerFlags, outputFormatFlag,
			cli.StringFlag{
				Name:  "save",
				Usage: "Write the capabilities to this snapshot file",
			},
		),
	},
	{
		Name:   "describe",
		Usage:  "Translates a printer's capabilities to a cloud device description",
		Action: describePrinter,
		Flags: append(printerFlags, outputFormatFlag,
			cli.StringFlag{
				Name:  "ticket",
				Usage: "Apply this cloud job ticket (JSON) to the printer's defaults",
			},
			cli.StringFlag{
				Name:  "out",
				Usage: "Write the DEVMODE that results from the ticket to this file",
			},
		),
	},
	{
		Name:   "papers",
		Usage:  "Lists paper names and their DMPAPER values",
		Action: listPapers,
		Flags: []cli.Flag{
			outputFormatFlag,
			cli.IntFlag{
				Name:  "code",
				Usage: "Show only the name of this DMPAPER value",
				Value: -1,
			},
		},
	},
}

// setupApp loads the config file and starts logging.
func setupApp(context *cli.Context) error {
	c, filename, err := lib.GetConfig(context)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if err := c.Validate(); err != nil {
		return cli.NewExitError(errors.Wrap(err, filename), 1)
	}
	config = c

	cleanup, err := config.SetupLogging()
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	cleanupLogging = cleanup
	if filename != "" {
		log.Debugf("Using config file %s", filename)
	}
	return nil
}

var cleanupLogging = func() {}

func teardownApp(context *cli.Context) error {
	cleanupLogging()
	return nil
}

func newApp(commands []cli.Command) *cli.App {
	app := cli.NewApp()
	app.Name = lib.ShortName
	app.Usage = lib.ToolName
	app.Version = lib.BuildDate
	app.Flags = []cli.Flag{
		lib.ConfigFilenameFlag,
	}
	app.Before = setupApp
	app.After = teardownApp
	app.Commands = append(commands, commonCommands...)
	return app
}

func readDevMode(filename string) (*devmode.DevMode, error) {
	if filename == "" {
		return nil, errors.New("missing DEVMODE file name")
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "read DEVMODE")
	}
	dm := devmode.Parse(b)
	if dm == nil {
		return nil, errors.Errorf("%s is empty", filename)
	}
	if !dm.Valid() {
		log.Warningf("%s does not look like a DEVMODE", filename)
	}
	return dm, nil
}

func writeDevMode(filename string, dm *devmode.DevMode) error {
	return errors.Wrap(os.WriteFile(filename, dm.Bytes(), 0644), "write DEVMODE")
}

func dumpDevMode(context *cli.Context) error {
	dm, err := readDevMode(context.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return printDevMode(os.Stdout, outputFormat(context), dm)
}

func printDevMode(w io.Writer, format string, dm *devmode.DevMode) error {
	r := newDevModeReport(dm)
	return writeRecord(w, format, r, func(w io.Writer) {
		writeTable(w, []string{"Member", "Value"}, r.rows())
	})
}

var (
	orientationByName = map[string]int16{
		"portrait":  devmode.DMORIENT_PORTRAIT,
		"landscape": devmode.DMORIENT_LANDSCAPE,
	}
	duplexByName = map[string]int16{
		"simplex":    devmode.DMDUP_SIMPLEX,
		"long-edge":  devmode.DMDUP_VERTICAL,
		"vertical":   devmode.DMDUP_VERTICAL,
		"short-edge": devmode.DMDUP_HORIZONTAL,
		"horizontal": devmode.DMDUP_HORIZONTAL,
	}
	colorByName = map[string]int16{
		"monochrome": devmode.DMCOLOR_MONOCHROME,
		"color":      devmode.DMCOLOR_COLOR,
	}
)

// parseNamedValue accepts a name from names or a plain number.
func parseNamedValue(value string, names map[string]int16) (int16, error) {
	if v, ok := names[strings.ToLower(value)]; ok {
		return v, nil
	}
	v, err := strconv.ParseInt(value, 10, 16)
	if err != nil {
		return 0, errors.Errorf("%q is neither a known name nor a number", value)
	}
	return int16(v), nil
}

// parsePaperSize accepts a neutral paper name or a DMPAPER value.
func parsePaperSize(value string) (int16, error) {
	if name, ok := papersize.ParseName(value); ok {
		code, ok := papersize.ToLegacyCode(name)
		if !ok {
			return 0, errors.Errorf("paper %s has no DMPAPER value", name)
		}
		return code, nil
	}
	v, err := strconv.ParseInt(value, 10, 16)
	if err != nil {
		return 0, errors.Errorf("%q is neither a paper name nor a DMPAPER value", value)
	}
	return int16(v), nil
}

// readSettings reads YAML or JSON settings, as written by dump. A full dump
// report is accepted too.
func readSettings(filename string) (devmode.Settings, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return devmode.Settings{}, errors.Wrap(err, "read settings")
	}
	var report struct {
		Settings *devmode.Settings `yaml:"settings"`
	}
	if err := yaml.Unmarshal(b, &report); err == nil && report.Settings != nil {
		return *report.Settings, nil
	}
	// YAML is a superset of JSON, so either format parses here.
	var s devmode.Settings
	if err := yaml.Unmarshal(b, &s); err != nil {
		return devmode.Settings{}, errors.Wrapf(err, "parse settings %s", filename)
	}
	return s, nil
}

// applyFlags writes the members named by set's flags onto dm.
func applyFlags(context *cli.Context, dm *devmode.DevMode) error {
	if filename := context.String("settings"); filename != "" {
		s, err := readSettings(filename)
		if err != nil {
			return err
		}
		if err := dm.ApplySettings(s); err != nil {
			return err
		}
	}

	if context.IsSet("device-name") {
		if err := dm.SetDeviceName(context.String("device-name")); err != nil {
			return errors.Wrap(err, "device name")
		}
	}
	if context.IsSet("form-name") {
		if _, err := dm.SetFormName(context.String("form-name")); err != nil {
			return errors.Wrap(err, "form name")
		}
	}

	named := []struct {
		flag  string
		names map[string]int16
		set   func(int16) devmode.Fields
	}{
		{"orientation", orientationByName, dm.SetOrientation},
		{"duplex", duplexByName, dm.SetDuplex},
		{"color", colorByName, dm.SetColor},
	}
	for _, n := range named {
		if !context.IsSet(n.flag) {
			continue
		}
		v, err := parseNamedValue(context.String(n.flag), n.names)
		if err != nil {
			return errors.Wrap(err, n.flag)
		}
		n.set(v)
	}

	if context.IsSet("paper-size") {
		code, err := parsePaperSize(context.String("paper-size"))
		if err != nil {
			return err
		}
		dm.SetPaperSize(code)
	}

	numbers := []struct {
		flag string
		set  func(int16) devmode.Fields
	}{
		{"paper-length", dm.SetPaperLength},
		{"paper-width", dm.SetPaperWidth},
		{"copies", dm.SetCopies},
		{"default-source", dm.SetDefaultSource},
	}
	for _, n := range numbers {
		if !context.IsSet(n.flag) {
			continue
		}
		v, err := strconv.ParseInt(context.String(n.flag), 10, 16)
		if err != nil {
			return errors.Wrap(err, n.flag)
		}
		n.set(int16(v))
	}

	if context.IsSet("collate") {
		collate, err := strconv.ParseBool(context.String("collate"))
		if err != nil {
			return errors.Wrap(err, "collate")
		}
		if collate {
			dm.SetCollate(devmode.DMCOLLATE_TRUE)
		} else {
			dm.SetCollate(devmode.DMCOLLATE_FALSE)
		}
	}
	if context.IsSet("media-type") {
		v, err := strconv.ParseUint(context.String("media-type"), 10, 32)
		if err != nil {
			return errors.Wrap(err, "media-type")
		}
		dm.SetMediaType(uint32(v))
	}

	return nil
}

func setDevMode(context *cli.Context) error {
	filename := context.Args().First()
	dm, err := readDevMode(filename)
	if err != nil {
		if !context.Bool("create") || filename == "" || !os.IsNotExist(errors.Cause(err)) {
			return cli.NewExitError(err, 1)
		}
		dm = devmode.NewFull()
	}

	if err := applyFlags(context, dm); err != nil {
		return cli.NewExitError(err, 1)
	}

	out := context.String("out")
	if out == "" {
		out = filename
	}
	if err := writeDevMode(out, dm); err != nil {
		return cli.NewExitError(err, 1)
	}
	log.Infof("Wrote %s with fields %s", out, dm.Fields())
	return nil
}

func copyDevMode(context *cli.Context) error {
	if context.NArg() != 2 {
		return cli.NewExitError("copy needs SOURCE and DESTINATION", 1)
	}
	source, err := readDevMode(context.Args().Get(0))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	destinationName := context.Args().Get(1)
	destination, err := readDevMode(destinationName)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if context.Bool("compatible") {
		if !destination.CompatibleCopy(source) {
			return cli.NewExitError("the DEVMODEs are not compatible; copy named fields instead", 1)
		}
	} else {
		fields, err := devmode.ParseFields(context.String("fields"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if err := destination.Copy(source, fields); err != nil {
			if errors.Cause(err) != devmode.ErrEncodingViolation {
				return cli.NewExitError(err, 1)
			}
			log.Warning(err)
		}
	}

	out := context.String("out")
	if out == "" {
		out = destinationName
	}
	if err := writeDevMode(out, destination); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

// incompatibility explains why two DEVMODEs cannot be copied wholesale.
func incompatibility(a, b *devmode.DevMode) string {
	var reasons []string
	if a.DriverVersion() != b.DriverVersion() {
		reasons = append(reasons, fmt.Sprintf("driver version %#04x vs %#04x", a.DriverVersion(), b.DriverVersion()))
	}
	if a.SpecVersion() != b.SpecVersion() {
		reasons = append(reasons, fmt.Sprintf("spec version %#04x vs %#04x", a.SpecVersion(), b.SpecVersion()))
	}
	if a.Size() != b.Size() {
		reasons = append(reasons, fmt.Sprintf("size %d vs %d", a.Size(), b.Size()))
	}
	if a.DriverExtra() != b.DriverExtra() {
		reasons = append(reasons, fmt.Sprintf("driver extra %d vs %d", a.DriverExtra(), b.DriverExtra()))
	}
	return strings.Join(reasons, "; ")
}

func compareDevModes(context *cli.Context) error {
	if context.NArg() != 2 {
		return cli.NewExitError("compat needs two DEVMODE files", 1)
	}
	a, err := readDevMode(context.Args().Get(0))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	b, err := readDevMode(context.Args().Get(1))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if devmode.AreCompatible(a, b) {
		fmt.Println("compatible")
		return nil
	}
	return cli.NewExitError("not compatible: "+incompatibility(a, b), 1)
}

// snapshotFilename prefers the command's flag over the config file.
func snapshotFilename(context *cli.Context) string {
	if f := context.String("snapshot"); f != "" {
		return f
	}
	return config.CapabilitySnapshot
}

func translatorFromSnapshot(filename string) (*devcaps.Translator, error) {
	s, err := devcaps.LoadSnapshot(filename)
	if err != nil {
		return nil, err
	}
	return s.Translator()
}

func showCapabilities(context *cli.Context) error {
	t, err := newTranslator(context)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	s, err := devcaps.TakeSnapshot(t)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if filename := context.String("save"); filename != "" {
		if err := s.Save(filename); err != nil {
			return cli.NewExitError(err, 1)
		}
		log.Infof("Saved capabilities of %s to %s", s.Device, filename)
		return nil
	}

	err = writeRecord(os.Stdout, outputFormat(context), s, func(w io.Writer) {
		writeTable(w, []string{"Capability", "Value"}, snapshotRows(s))
	})
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

func readTicket(filename string) (*cdd.CloudJobTicket, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "read ticket")
	}
	var ticket cdd.CloudJobTicket
	if err := json.Unmarshal(b, &ticket); err != nil {
		return nil, errors.Wrapf(err, "parse ticket %s", filename)
	}
	return &ticket, nil
}

func describePrinter(context *cli.Context) error {
	t, err := newTranslator(context)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	description, err := winspool.Describe(t, t.DevMode())
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if filename := context.String("ticket"); filename != "" {
		ticket, err := readTicket(filename)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		dm := t.DevMode().Clone()
		if dm == nil {
			dm = devmode.NewFull()
		}
		if err := winspool.ApplyTicket(dm, ticket, description); err != nil {
			return cli.NewExitError(err, 1)
		}
		if out := context.String("out"); out != "" {
			if err := writeDevMode(out, dm); err != nil {
				return cli.NewExitError(err, 1)
			}
		}
		if err := printDevMode(os.Stdout, outputFormat(context), dm); err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	}

	cloudDescription := cdd.NewCloudDeviceDescription(description)
	err = writeRecord(os.Stdout, outputFormat(context), cloudDescription, func(w io.Writer) {
		writeTable(w, []string{"Section", "Options"}, descriptionRows(description))
	})
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

func listPapers(context *cli.Context) error {
	entries := paperEntries()
	if code := context.Int("code"); code >= 0 {
		if code > math.MaxInt16 {
			return cli.NewExitError(fmt.Sprintf("%d is not a DMPAPER value", code), 1)
		}
		name, _ := papersize.ToNeutralSize(int16(code))
		c := int16(code)
		entries = []paperEntry{{Name: name.String(), Code: &c}}
	}

	err := writeRecord(os.Stdout, outputFormat(context), entries, func(w io.Writer) {
		writeTable(w, []string{"Name", "DMPAPER"}, paperRows(entries))
	})
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}
