/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/cloud-print-devmode/cdd"
	"github.com/google/cloud-print-devmode/devcaps"
	"github.com/google/cloud-print-devmode/devmode"
	"github.com/google/cloud-print-devmode/papersize"
)

// devModeReport is what dump prints about one DEVMODE.
type devModeReport struct {
	Wide          bool             `json:"wide" yaml:"wide"`
	Valid         bool             `json:"valid" yaml:"valid"`
	SpecVersion   uint16           `json:"spec_version" yaml:"spec_version"`
	DriverVersion uint16           `json:"driver_version" yaml:"driver_version"`
	Size          uint16           `json:"size" yaml:"size"`
	DriverExtra   uint16           `json:"driver_extra" yaml:"driver_extra"`
	Fields        string           `json:"fields" yaml:"fields"`
	Settings      devmode.Settings `json:"settings" yaml:"settings"`
}

func newDevModeReport(dm *devmode.DevMode) devModeReport {
	return devModeReport{
		Wide:          dm.IsWide(),
		Valid:         dm.Valid(),
		SpecVersion:   dm.SpecVersion(),
		DriverVersion: dm.DriverVersion(),
		Size:          dm.Size(),
		DriverExtra:   dm.DriverExtra(),
		Fields:        dm.Fields().String(),
		Settings:      dm.Settings(),
	}
}

// paperCodeString shows a paper code with its neutral name, if it has one.
func paperCodeString(code int16) string {
	if name, ok := papersize.ToNeutralSize(code); ok {
		return fmt.Sprintf("%d (%s)", code, name)
	}
	if papersize.IsCustomCode(code) {
		return fmt.Sprintf("%d (driver-defined)", code)
	}
	return strconv.Itoa(int(code))
}

func (r devModeReport) rows() [][]string {
	rows := [][]string{
		{"wide", strconv.FormatBool(r.Wide)},
		{"valid", strconv.FormatBool(r.Valid)},
		{"spec version", fmt.Sprintf("%#04x", r.SpecVersion)},
		{"driver version", fmt.Sprintf("%#04x", r.DriverVersion)},
		{"size", fmt.Sprintf("%d+%d", r.Size, r.DriverExtra)},
		{"fields", r.Fields},
		{"device name", r.Settings.DeviceName},
	}

	s := r.Settings
	addInt16 := func(name string, v *int16) {
		if v != nil {
			rows = append(rows, []string{name, strconv.Itoa(int(*v))})
		}
	}
	addUint32 := func(name string, v *uint32) {
		if v != nil {
			rows = append(rows, []string{name, strconv.FormatUint(uint64(*v), 10)})
		}
	}

	addInt16("orientation", s.Orientation)
	if s.PaperSize != nil {
		rows = append(rows, []string{"paper size", paperCodeString(*s.PaperSize)})
	}
	addInt16("paper length", s.PaperLength)
	addInt16("paper width", s.PaperWidth)
	addInt16("scale", s.Scale)
	addInt16("copies", s.Copies)
	addInt16("default source", s.DefaultSource)
	addInt16("print quality", s.PrintQuality)
	addInt16("color", s.Color)
	addInt16("duplex", s.Duplex)
	addInt16("y resolution", s.YResolution)
	addInt16("tt option", s.TTOption)
	addInt16("collate", s.Collate)
	if s.FormName != nil {
		rows = append(rows, []string{"form name", *s.FormName})
	}
	addUint32("nup", s.Nup)
	addUint32("icm method", s.ICMMethod)
	addUint32("icm intent", s.ICMIntent)
	addUint32("media type", s.MediaType)
	addUint32("dither type", s.DitherType)

	return rows
}

// snapshotRows flattens a capability snapshot into capability/value rows.
func snapshotRows(s *devcaps.Snapshot) [][]string {
	rows := [][]string{
		{"device", s.Device},
		{"driver", s.Driver},
		{"port", s.Port},
	}

	scalars := make([]string, 0, len(s.Scalars))
	for name := range s.Scalars {
		scalars = append(scalars, name)
	}
	sort.Strings(scalars)
	for _, name := range scalars {
		v := strconv.Itoa(int(s.Scalars[name]))
		if name == devcaps.DC_FIELDS.String() {
			v = devmode.Fields(uint32(s.Scalars[name])).String()
		}
		rows = append(rows, []string{name, v})
	}

	if s.MinExtent != nil {
		rows = append(rows, []string{"min-extent", fmt.Sprintf("%dx%d", s.MinExtent.Width, s.MinExtent.Height)})
	}
	if s.MaxExtent != nil {
		rows = append(rows, []string{"max-extent", fmt.Sprintf("%dx%d", s.MaxExtent.Width, s.MaxExtent.Height)})
	}

	for i, code := range s.Papers {
		v := paperCodeString(code)
		if i < len(s.PaperNames) {
			v += " " + s.PaperNames[i]
		}
		if i < len(s.PaperSizes) {
			v += fmt.Sprintf(" %dx%d", s.PaperSizes[i].Width, s.PaperSizes[i].Height)
		}
		rows = append(rows, []string{"paper", v})
	}
	for i, code := range s.Bins {
		v := strconv.Itoa(int(code))
		if i < len(s.BinNames) {
			v += " " + s.BinNames[i]
		}
		rows = append(rows, []string{"bin", v})
	}
	for _, r := range s.Resolutions {
		rows = append(rows, []string{"resolution", fmt.Sprintf("%dx%d", r.X, r.Y)})
	}
	for i, mediaType := range s.MediaTypes {
		v := strconv.FormatUint(uint64(mediaType), 10)
		if i < len(s.MediaTypeNames) {
			v += " " + s.MediaTypeNames[i]
		}
		rows = append(rows, []string{"media type", v})
	}
	if len(s.NUp) > 0 {
		values := make([]string, len(s.NUp))
		for i, nup := range s.NUp {
			values[i] = strconv.FormatUint(uint64(nup), 10)
		}
		rows = append(rows, []string{"nup", strings.Join(values, ",")})
	}

	return rows
}

// defaultMark flags the default option in a table cell.
func defaultMark(value string, isDefault bool) string {
	if isDefault {
		return value + "*"
	}
	return value
}

func localized(l *[]cdd.LocalizedString) string {
	if l == nil || len(*l) == 0 {
		return ""
	}
	return (*l)[0].Value
}

// descriptionRows summarizes each section on one row; defaults are starred.
func descriptionRows(d *cdd.PrinterDescriptionSection) [][]string {
	var rows [][]string
	add := func(section string, options []string) {
		rows = append(rows, []string{section, strings.Join(options, ", ")})
	}

	if d.Color != nil {
		var options []string
		for _, o := range d.Color.Option {
			options = append(options, defaultMark(string(o.Type), o.IsDefault))
		}
		add("color", options)
	}
	if d.Duplex != nil {
		var options []string
		for _, o := range d.Duplex.Option {
			options = append(options, defaultMark(string(o.Type), o.IsDefault))
		}
		add("duplex", options)
	}
	if d.PageOrientation != nil {
		var options []string
		for _, o := range d.PageOrientation.Option {
			options = append(options, defaultMark(string(o.Type), o.IsDefault))
		}
		add("page orientation", options)
	}
	if d.Copies != nil {
		add("copies", []string{fmt.Sprintf("default %d, max %d", d.Copies.Default, d.Copies.Max)})
	}
	if d.DPI != nil {
		var options []string
		for _, o := range d.DPI.Option {
			options = append(options, defaultMark(o.VendorID, o.IsDefault))
		}
		add("dpi", options)
	}
	if d.MediaSize != nil {
		var options []string
		for _, o := range d.MediaSize.Option {
			options = append(options, defaultMark(localized(o.CustomDisplayNameLocalized), o.IsDefault))
		}
		add("media size", options)
	}
	if d.Collate != nil {
		add("collate", []string{fmt.Sprintf("default %t", d.Collate.Default)})
	}
	if d.InputTrayUnit != nil {
		var options []string
		for _, u := range *d.InputTrayUnit {
			options = append(options, fmt.Sprintf("%s (%s)", localized(u.CustomDisplayNameLocalized), u.Type))
		}
		add("input trays", options)
	}
	if d.VendorCapability != nil {
		for _, vc := range *d.VendorCapability {
			if vc.SelectCap == nil {
				continue
			}
			var options []string
			for _, o := range vc.SelectCap.Option {
				options = append(options, defaultMark(o.DisplayName, o.IsDefault))
			}
			add(vc.ID, options)
		}
	}

	return rows
}

// paperEntry is one row of the papers command.
type paperEntry struct {
	Name string `json:"name" yaml:"name"`
	Code *int16 `json:"code,omitempty" yaml:"code,omitempty"`
}

func paperEntries() []paperEntry {
	names := papersize.Names()
	entries := make([]paperEntry, 0, len(names))
	for _, name := range names {
		e := paperEntry{Name: name.String()}
		if code, ok := papersize.ToLegacyCode(name); ok {
			e.Code = &code
		}
		entries = append(entries, e)
	}
	return entries
}

func paperRows(entries []paperEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		code := ""
		if e.Code != nil {
			code = strconv.Itoa(int(*e.Code))
		}
		rows = append(rows, []string{e.Name, code})
	}
	return rows
}
