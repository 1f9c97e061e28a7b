/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package winspool

import (
	"math"
	"testing"

	"github.com/google/cloud-print-devmode/cdd"
	"github.com/google/cloud-print-devmode/devcaps"
	"github.com/google/cloud-print-devmode/devmode"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func int16p(v int16) *int16    { return &v }
func uint32p(v uint32) *uint32 { return &v }

func laserJet() *devcaps.Snapshot {
	return &devcaps.Snapshot{
		Device: "Office LaserJet",
		Driver: "HP Universal Printing PCL 6",
		Port:   "IP_10.0.0.12",
		Scalars: map[string]int32{
			"duplex":       1,
			"orientation":  90,
			"copies":       999,
			"collate":      1,
			"color-device": 1,
		},
		MinExtent:  &devcaps.PaperSize{Width: 762, Height: 1270},
		MaxExtent:  &devcaps.PaperSize{Width: 2159, Height: 3556},
		Papers:     []int16{devmode.DMPAPER_LETTER, devmode.DMPAPER_LEGAL, devmode.DMPAPER_A4, devmode.DMPAPER_USER},
		PaperNames: []string{"Letter", "", "A4", ""},
		PaperSizes: []devcaps.PaperSize{{Width: 2159, Height: 2794}, {Width: 2159, Height: 3556}, {Width: 2100, Height: 2970}, {Width: 1000, Height: 1000}},
		Bins:       []int16{devmode.DMBIN_FORMSOURCE, devmode.DMBIN_UPPER, devmode.DMBIN_MANUAL, 260},
		BinNames:   []string{"Automatically Select", "Tray 1", "Manual Feed", "Tray 9"},
		Resolutions: []devcaps.Resolution{
			{X: 300, Y: 300}, {X: 600, Y: 600}, {X: 1200, Y: 600},
		},
		MediaTypes:     []uint32{devmode.DMMEDIA_STANDARD, devmode.DMMEDIA_GLOSSY},
		MediaTypeNames: []string{"Plain", "Glossy"},
		DevMode: &devmode.Settings{
			Orientation:   int16p(devmode.DMORIENT_LANDSCAPE),
			PaperSize:     int16p(devmode.DMPAPER_A4),
			Copies:        int16p(1),
			DefaultSource: int16p(devmode.DMBIN_MANUAL),
			PrintQuality:  int16p(600),
			Color:         int16p(devmode.DMCOLOR_MONOCHROME),
			Duplex:        int16p(devmode.DMDUP_VERTICAL),
			YResolution:   int16p(600),
			Collate:       int16p(devmode.DMCOLLATE_TRUE),
			MediaType:     uint32p(devmode.DMMEDIA_GLOSSY),
		},
	}
}

func describeLaserJet(t *testing.T) (*cdd.PrinterDescriptionSection, *devmode.DevMode) {
	s := laserJet()
	tr, err := s.Translator()
	if err != nil {
		t.Fatal(err)
	}
	dm, err := s.DefaultDevMode()
	if err != nil {
		t.Fatal(err)
	}
	description, err := Describe(tr, dm)
	if err != nil {
		t.Fatal(err)
	}
	return description, dm
}

func TestDescribe(t *testing.T) {
	description, _ := describeLaserJet(t)

	expected := &cdd.PrinterDescriptionSection{
		InputTrayUnit: &[]cdd.InputTrayUnit{
			{VendorID: "1", Type: cdd.InputTrayUnitInputTray, Index: 1, CustomDisplayNameLocalized: cdd.NewLocalizedString("Tray 1")},
			{VendorID: "4", Type: cdd.InputTrayUnitManualFeedTray, Index: 2, CustomDisplayNameLocalized: cdd.NewLocalizedString("Manual Feed")},
			{VendorID: "260", Type: cdd.InputTrayUnitCustom, Index: 3, CustomDisplayNameLocalized: cdd.NewLocalizedString("Tray 9")},
		},
		VendorCapability: &[]cdd.VendorCapability{
			{
				ID:          VendorCapabilityInputTray,
				DisplayName: "Paper source",
				Type:        cdd.VendorCapabilitySelect,
				SelectCap: &cdd.SelectCapability{Option: []cdd.SelectCapabilityOption{
					{Value: "15", DisplayName: "Automatically Select"},
					{Value: "1", DisplayName: "Tray 1"},
					{Value: "4", DisplayName: "Manual Feed", IsDefault: true},
					{Value: "260", DisplayName: "Tray 9"},
				}},
				DisplayNameLocalized: cdd.NewLocalizedString("Paper source"),
			},
			{
				ID:          VendorCapabilityMediaType,
				DisplayName: "Media type",
				Type:        cdd.VendorCapabilitySelect,
				SelectCap: &cdd.SelectCapability{Option: []cdd.SelectCapabilityOption{
					{Value: "1", DisplayName: "Plain"},
					{Value: "3", DisplayName: "Glossy", IsDefault: true},
				}},
				DisplayNameLocalized: cdd.NewLocalizedString("Media type"),
			},
		},
		Color: &cdd.Color{Option: []cdd.ColorOption{
			{VendorID: "2", Type: cdd.ColorTypeStandardColor},
			{VendorID: "1", Type: cdd.ColorTypeStandardMonochrome, IsDefault: true},
		}},
		Duplex: &cdd.Duplex{Option: []cdd.DuplexOption{
			{Type: cdd.DuplexNoDuplex},
			{Type: cdd.DuplexLongEdge, IsDefault: true},
			{Type: cdd.DuplexShortEdge},
		}},
		PageOrientation: &cdd.PageOrientation{Option: []cdd.PageOrientationOption{
			{Type: cdd.PageOrientationPortrait},
			{Type: cdd.PageOrientationLandscape, IsDefault: true},
		}},
		Copies: &cdd.Copies{Default: 1, Max: 999},
		DPI: &cdd.DPI{
			Option: []cdd.DPIOption{
				{HorizontalDPI: 300, VerticalDPI: 300, VendorID: "300x300"},
				{HorizontalDPI: 600, VerticalDPI: 600, VendorID: "600x600", IsDefault: true},
				{HorizontalDPI: 1200, VerticalDPI: 600, VendorID: "1200x600"},
			},
			MinHorizontalDPI: 300,
			MaxHorizontalDPI: 1200,
			MinVerticalDPI:   300,
			MaxVerticalDPI:   600,
		},
		MediaSize: &cdd.MediaSize{
			Option: []cdd.MediaSizeOption{
				{
					Name:                       cdd.MediaSizeCustom,
					WidthMicrons:               215900,
					HeightMicrons:              279400,
					VendorID:                   "1",
					CustomDisplayNameLocalized: cdd.NewLocalizedString("Letter"),
				},
				{
					Name:                       cdd.MediaSizeCustom,
					WidthMicrons:               215900,
					HeightMicrons:              355600,
					VendorID:                   "5",
					CustomDisplayNameLocalized: cdd.NewLocalizedString("NorthAmericaLegal"),
				},
				{
					Name:                       cdd.MediaSizeCustom,
					WidthMicrons:               210000,
					HeightMicrons:              297000,
					IsDefault:                  true,
					VendorID:                   "9",
					CustomDisplayNameLocalized: cdd.NewLocalizedString("A4"),
				},
			},
			MinWidthMicrons:  76200,
			MinHeightMicrons: 127000,
			MaxWidthMicrons:  215900,
			MaxHeightMicrons: 355600,
		},
		Collate: &cdd.Collate{Default: true},
	}

	if diff := cmp.Diff(expected, description); diff != "" {
		t.Errorf("unexpected description (-want +got):\n%s", diff)
	}
}

func TestDescribeWithoutDefaults(t *testing.T) {
	s := &devcaps.Snapshot{
		Device:     "Label Printer",
		Scalars:    map[string]int32{"duplex": 1, "copies": 10},
		Papers:     []int16{devmode.DMPAPER_A6, devmode.DMPAPER_A5},
		PaperSizes: []devcaps.PaperSize{{Width: 1050, Height: 1480}, {Width: 1480, Height: 2100}},
	}
	description, err := Describe(devcaps.NewTranslator(s, s.Device, "", "", nil), nil)
	if err != nil {
		t.Fatal(err)
	}

	// Without a DEVMODE there are no defaults for the scalar sections.
	if description.Duplex != nil || description.Copies != nil {
		t.Errorf("expected no duplex or copies sections, got %+v, %+v", description.Duplex, description.Copies)
	}
	if description.InputTrayUnit != nil || description.VendorCapability != nil || description.DPI != nil {
		t.Error("expected no sections for capabilities with no answers")
	}
	if description.MediaSize == nil || len(description.MediaSize.Option) != 2 {
		t.Fatalf("expected two media sizes, got %+v", description.MediaSize)
	}
	o := description.MediaSize.Option
	if !o[0].IsDefault || o[1].IsDefault {
		t.Error("expected the first media size to be the default")
	}
	if (*o[0].CustomDisplayNameLocalized)[0].Value != "ISOA6" {
		t.Errorf("expected the neutral name to stand in, got %+v", *o[0].CustomDisplayNameLocalized)
	}
	if description.MediaSize.MinWidthMicrons != 0 || description.MediaSize.MaxWidthMicrons != 0 {
		t.Error("expected no extents when they are unsupported")
	}
}

func TestDescribePaperDisagreement(t *testing.T) {
	s := &devcaps.Snapshot{
		Device:     "Broken",
		Papers:     []int16{devmode.DMPAPER_LETTER, devmode.DMPAPER_A4},
		PaperSizes: []devcaps.PaperSize{{Width: 2159, Height: 2794}},
	}
	description, err := Describe(devcaps.NewTranslator(s, s.Device, "", "", nil), nil)
	if err != nil {
		t.Fatal(err)
	}
	if description.MediaSize != nil {
		t.Errorf("expected no media sizes when codes and sizes disagree, got %+v", description.MediaSize)
	}
}

type failingProvider struct {
	err error
}

func (p failingProvider) DeviceCapabilities(device, port string, capability devcaps.Capability, output []byte, devMode *devmode.DevMode) (int32, error) {
	return 0, p.err
}

func TestDescribeProviderFailure(t *testing.T) {
	failure := errors.New("spooler stopped")
	tr := devcaps.NewTranslator(failingProvider{failure}, "printer", "", "", nil)
	if _, err := Describe(tr, nil); errors.Cause(err) != failure {
		t.Errorf("expected the provider error, got %v", err)
	}
}

func TestApplyTicket(t *testing.T) {
	description, dm := describeLaserJet(t)
	dm.SetPaperLength(2970)
	dm.SetPaperWidth(2100)

	ticket := &cdd.CloudJobTicket{
		Version: "1.0",
		Print: cdd.PrintTicketSection{
			VendorTicketItem: []cdd.VendorTicketItem{
				{ID: VendorCapabilityInputTray, Value: "1"},
				{ID: VendorCapabilityMediaType, Value: "1"},
				{ID: "staple", Value: "top-left"},
			},
			Color:           &cdd.ColorTicketItem{Type: cdd.ColorTypeStandardColor},
			Duplex:          &cdd.DuplexTicketItem{Type: cdd.DuplexShortEdge},
			PageOrientation: &cdd.PageOrientationTicketItem{Type: cdd.PageOrientationAuto},
			Copies:          &cdd.CopiesTicketItem{Copies: 5000},
			DPI:             &cdd.DPITicketItem{HorizontalDPI: 1200, VerticalDPI: 600, VendorID: "1200x600"},
			MediaSize:       &cdd.MediaSizeTicketItem{WidthMicrons: 215900, HeightMicrons: 355600, VendorID: "5"},
			Collate:         &cdd.CollateTicketItem{Collate: false},
		},
	}
	if err := ApplyTicket(dm, ticket, description); err != nil {
		t.Fatal(err)
	}

	expected := devmode.Settings{
		DeviceName:    "Office LaserJet",
		Orientation:   int16p(devmode.DMORIENT_LANDSCAPE),
		PaperSize:     int16p(devmode.DMPAPER_LEGAL),
		Copies:        int16p(999),
		DefaultSource: int16p(devmode.DMBIN_UPPER),
		PrintQuality:  int16p(1200),
		Color:         int16p(devmode.DMCOLOR_COLOR),
		Duplex:        int16p(devmode.DMDUP_HORIZONTAL),
		YResolution:   int16p(600),
		Collate:       int16p(devmode.DMCOLLATE_FALSE),
		MediaType:     uint32p(devmode.DMMEDIA_STANDARD),
	}
	if diff := cmp.Diff(expected, dm.Settings()); diff != "" {
		t.Errorf("unexpected settings after the ticket (-want +got):\n%s", diff)
	}
}

func TestApplyTicketExplicitMediaSize(t *testing.T) {
	description, dm := describeLaserJet(t)
	ticket := &cdd.CloudJobTicket{Print: cdd.PrintTicketSection{
		MediaSize: &cdd.MediaSizeTicketItem{WidthMicrons: 100000, HeightMicrons: 150000},
	}}
	if err := ApplyTicket(dm, ticket, description); err != nil {
		t.Fatal(err)
	}

	if _, ok := dm.GetPaperSize(); ok {
		t.Error("expected the paper size to be cleared")
	}
	if v, ok := dm.GetPaperWidth(); !ok || v != 1000 {
		t.Errorf("expected width 1000, got %d, %t", v, ok)
	}
	if v, ok := dm.GetPaperLength(); !ok || v != 1500 {
		t.Errorf("expected length 1500, got %d, %t", v, ok)
	}
}

func TestApplyTicketOutOfRange(t *testing.T) {
	description, dm := describeLaserJet(t)
	description.Copies.Max = 65535

	ticket := &cdd.CloudJobTicket{Print: cdd.PrintTicketSection{
		Copies: &cdd.CopiesTicketItem{Copies: 40000},
	}}
	if err := ApplyTicket(dm, ticket, description); err != nil {
		t.Fatal(err)
	}
	if v, ok := dm.GetCopies(); !ok || v != math.MaxInt16 {
		t.Errorf("expected copies %d, got %d, %t", math.MaxInt16, v, ok)
	}

	before := dm.Settings()
	for _, size := range []cdd.MediaSizeTicketItem{
		{WidthMicrons: 914000, HeightMicrons: 5000000},
		{WidthMicrons: 5000000, HeightMicrons: 914000},
		{WidthMicrons: -100000, HeightMicrons: 150000},
	} {
		size := size
		ticket = &cdd.CloudJobTicket{Print: cdd.PrintTicketSection{MediaSize: &size}}
		if err := ApplyTicket(dm, ticket, description); err == nil {
			t.Errorf("expected an error for a %dx%d micron custom size", size.WidthMicrons, size.HeightMicrons)
		}
	}
	if diff := cmp.Diff(before, dm.Settings()); diff != "" {
		t.Errorf("a rejected media size changed the DEVMODE (-want +got):\n%s", diff)
	}
}

func TestApplyTicketWithoutCapabilities(t *testing.T) {
	_, dm := describeLaserJet(t)
	before := dm.Settings()

	ticket := &cdd.CloudJobTicket{Print: cdd.PrintTicketSection{
		VendorTicketItem: []cdd.VendorTicketItem{{ID: VendorCapabilityMediaType, Value: "1"}},
		Duplex:           &cdd.DuplexTicketItem{Type: cdd.DuplexShortEdge},
		Copies:           &cdd.CopiesTicketItem{Copies: 2},
		MediaSize:        &cdd.MediaSizeTicketItem{VendorID: "5"},
	}}
	if err := ApplyTicket(dm, ticket, nil); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, dm.Settings()); diff != "" {
		t.Errorf("expected no changes without capabilities (-want +got):\n%s", diff)
	}
}

func TestApplyTicketErrors(t *testing.T) {
	description, dm := describeLaserJet(t)

	if err := ApplyTicket(nil, &cdd.CloudJobTicket{}, description); err == nil {
		t.Error("expected an error for a nil DevMode")
	}
	if err := ApplyTicket(dm, nil, description); err == nil {
		t.Error("expected an error for a nil ticket")
	}

	bad := &cdd.CloudJobTicket{Print: cdd.PrintTicketSection{
		MediaSize: &cdd.MediaSizeTicketItem{VendorID: "letter"},
	}}
	if err := ApplyTicket(dm, bad, description); err == nil {
		t.Error("expected an error for a non-numeric media size vendor ID")
	}

	bad = &cdd.CloudJobTicket{Print: cdd.PrintTicketSection{
		VendorTicketItem: []cdd.VendorTicketItem{{ID: VendorCapabilityInputTray, Value: "upper"}},
	}}
	if err := ApplyTicket(dm, bad, description); err == nil {
		t.Error("expected an error for a non-numeric input tray")
	}
}
