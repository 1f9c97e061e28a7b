/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package main

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/google/cloud-print-devmode/lib"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"
)

var outputFormatFlag = cli.StringFlag{
	Name:  "output-format",
	Usage: "Output format: table, yaml, or json",
}

// outputFormat prefers the command's flag over the config file.
func outputFormat(context *cli.Context) string {
	if f := context.String("output-format"); f != "" {
		return strings.ToLower(f)
	}
	return strings.ToLower(config.OutputFormat)
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("|")
	table.SetRowSeparator("")
	table.SetBorder(false)
	table.SetHeader(header)
	return table
}

// writeTable renders rows under header.
func writeTable(w io.Writer, header []string, rows [][]string) {
	table := newTable(w, header...)
	table.AppendBulk(rows)
	table.Render()
}

// writeRecord writes v as YAML or JSON, or calls table for the table format.
func writeRecord(w io.Writer, format string, v interface{}, table func(io.Writer)) error {
	switch format {
	case lib.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err := enc.Encode(v)
		if err == nil {
			err = enc.Close()
		}
		return errors.Wrap(err, "encode YAML")

	case lib.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encode JSON")

	case lib.OutputTable, "":
		table(w)
		return nil
	}
	return errors.Errorf("unknown output format %q", format)
}
