/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

// Package winspool translates between a printer's DEVMODE and device
// capabilities on one side, and cloud device descriptions and job tickets on
// the other. On Windows it also queries the print spooler.
package winspool

import (
	"fmt"
	"math"
	"strconv"

	"github.com/google/cloud-print-devmode/cdd"
	"github.com/google/cloud-print-devmode/devcaps"
	"github.com/google/cloud-print-devmode/devmode"
	"github.com/google/cloud-print-devmode/log"
	"github.com/google/cloud-print-devmode/papersize"
	"github.com/pkg/errors"
)

// Vendor capability IDs for the DEVMODE members that have no CDD section.
const (
	VendorCapabilityInputTray = "input_tray"
	VendorCapabilityMediaType = "media_type"
)

// supported separates "the device does not support this" from real failures.
func supported(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Cause(err) == devcaps.ErrUnsupported {
		return false, nil
	}
	return false, err
}

// Describe builds a printer description from the device's capabilities,
// with defaults taken from dm. Sections whose capability is unsupported are
// left out.
func Describe(t *devcaps.Translator, dm *devmode.DevMode) (*cdd.PrinterDescriptionSection, error) {
	var (
		description cdd.PrinterDescriptionSection
		err         error
	)

	if description.Duplex, err = convertDuplex(t, dm); err != nil {
		return nil, err
	}
	if description.PageOrientation, err = convertPageOrientation(t, dm); err != nil {
		return nil, err
	}
	if description.Copies, err = convertCopies(t, dm); err != nil {
		return nil, err
	}
	if description.Color, err = convertColor(t, dm); err != nil {
		return nil, err
	}
	if description.DPI, err = convertDPI(t, dm); err != nil {
		return nil, err
	}
	if description.MediaSize, err = convertMediaSize(t, dm); err != nil {
		return nil, err
	}
	if description.Collate, err = convertCollate(t, dm); err != nil {
		return nil, err
	}
	if description.InputTrayUnit, err = convertInputTrays(t); err != nil {
		return nil, err
	}

	var vendorCapabilities []cdd.VendorCapability
	for _, convert := range []func(*devcaps.Translator, *devmode.DevMode) (*cdd.VendorCapability, error){
		convertInputTraySelect, convertMediaTypes,
	} {
		vc, err := convert(t, dm)
		if err != nil {
			return nil, err
		}
		if vc != nil {
			vendorCapabilities = append(vendorCapabilities, *vc)
		}
	}
	if len(vendorCapabilities) > 0 {
		description.VendorCapability = &vendorCapabilities
	}

	return &description, nil
}

func convertDuplex(t *devcaps.Translator, dm *devmode.DevMode) (*cdd.Duplex, error) {
	def, ok := dm.GetDuplex()
	if !ok {
		return nil, nil
	}
	duplex, err := t.Duplex()
	if ok, err := supported(err); !ok {
		return nil, err
	}
	if !duplex {
		return nil, nil
	}
	return &cdd.Duplex{
		Option: []cdd.DuplexOption{
			{Type: cdd.DuplexNoDuplex, IsDefault: def == devmode.DMDUP_SIMPLEX},
			{Type: cdd.DuplexLongEdge, IsDefault: def == devmode.DMDUP_VERTICAL},
			{Type: cdd.DuplexShortEdge, IsDefault: def == devmode.DMDUP_HORIZONTAL},
		},
	}, nil
}

func convertPageOrientation(t *devcaps.Translator, dm *devmode.DevMode) (*cdd.PageOrientation, error) {
	def, ok := dm.GetOrientation()
	if !ok {
		return nil, nil
	}
	orientation, err := t.Orientation()
	if ok, err := supported(err); !ok {
		return nil, err
	}
	// The answer is the rotation of landscape relative to portrait; zero
	// means there is no landscape.
	if orientation != 90 && orientation != 270 {
		return nil, nil
	}
	return &cdd.PageOrientation{
		Option: []cdd.PageOrientationOption{
			{Type: cdd.PageOrientationPortrait, IsDefault: def == devmode.DMORIENT_PORTRAIT},
			{Type: cdd.PageOrientationLandscape, IsDefault: def == devmode.DMORIENT_LANDSCAPE},
		},
	}, nil
}

func convertCopies(t *devcaps.Translator, dm *devmode.DevMode) (*cdd.Copies, error) {
	def, ok := dm.GetCopies()
	if !ok {
		return nil, nil
	}
	copies, err := t.Copies()
	if ok, err := supported(err); !ok {
		return nil, err
	}
	if copies <= 1 {
		return nil, nil
	}
	return &cdd.Copies{
		Default: int32(def),
		Max:     copies,
	}, nil
}

func convertColor(t *devcaps.Translator, dm *devmode.DevMode) (*cdd.Color, error) {
	def, ok := dm.GetColor()
	if !ok {
		return nil, nil
	}
	color, err := t.Color()
	if ok, err := supported(err); !ok {
		return nil, err
	}
	if !color {
		return nil, nil
	}
	return &cdd.Color{
		Option: []cdd.ColorOption{
			{
				VendorID:  strconv.Itoa(int(devmode.DMCOLOR_COLOR)),
				Type:      cdd.ColorTypeStandardColor,
				IsDefault: def != devmode.DMCOLOR_MONOCHROME,
			},
			{
				VendorID:  strconv.Itoa(int(devmode.DMCOLOR_MONOCHROME)),
				Type:      cdd.ColorTypeStandardMonochrome,
				IsDefault: def == devmode.DMCOLOR_MONOCHROME,
			},
		},
	}, nil
}

func resolutionVendorID(r devcaps.Resolution) string {
	return fmt.Sprintf("%dx%d", r.X, r.Y)
}

func convertDPI(t *devcaps.Translator, dm *devmode.DevMode) (*cdd.DPI, error) {
	resolutions, err := t.Resolutions()
	if ok, err := supported(err); !ok {
		return nil, err
	}
	if len(resolutions) == 0 {
		return nil, nil
	}

	// Negative print qualities are DMRES_* presets, not resolutions.
	x, xOK := dm.GetPrintQuality()
	y, yOK := dm.GetYResolution()
	if !yOK {
		y = x
	}

	dpi := cdd.DPI{
		Option:           make([]cdd.DPIOption, 0, len(resolutions)),
		MinHorizontalDPI: resolutions[0].X,
		MaxHorizontalDPI: resolutions[0].X,
		MinVerticalDPI:   resolutions[0].Y,
		MaxVerticalDPI:   resolutions[0].Y,
	}
	var foundDef bool
	for _, r := range resolutions {
		var def bool
		if !foundDef && xOK && x > 0 && int32(x) == r.X && int32(y) == r.Y {
			def = true
			foundDef = true
		}
		dpi.Option = append(dpi.Option, cdd.DPIOption{
			HorizontalDPI: r.X,
			VerticalDPI:   r.Y,
			IsDefault:     def,
			VendorID:      resolutionVendorID(r),
		})
		dpi.MinHorizontalDPI = min(dpi.MinHorizontalDPI, r.X)
		dpi.MaxHorizontalDPI = max(dpi.MaxHorizontalDPI, r.X)
		dpi.MinVerticalDPI = min(dpi.MinVerticalDPI, r.Y)
		dpi.MaxVerticalDPI = max(dpi.MaxVerticalDPI, r.Y)
	}
	if !foundDef {
		dpi.Option[0].IsDefault = true
	}
	return &dpi, nil
}

// tenthsToMicrons converts DEVMODE and capability lengths, which are in
// tenths of a millimeter.
func tenthsToMicrons(tenths int32) int32 {
	return tenths * 100
}

// micronsToTenths converts a ticket length for the DEVMODE, which holds at
// most math.MaxInt16 tenths of a millimeter.
func micronsToTenths(microns int32) (int16, error) {
	tenths := microns / 100
	if tenths < 0 || tenths > math.MaxInt16 {
		return 0, errors.Errorf("%d microns does not fit a DEVMODE paper length", microns)
	}
	return int16(tenths), nil
}

func convertMediaSize(t *devcaps.Translator, dm *devmode.DevMode) (*cdd.MediaSize, error) {
	papers, err := t.Papers()
	if ok, err := supported(err); !ok {
		return nil, err
	}
	sizes, err := t.PaperSizes()
	if ok, err := supported(err); !ok {
		return nil, err
	}
	names, err := t.PaperNames()
	if ok, err := supported(err); err != nil {
		return nil, err
	} else if !ok || len(names) == 0 {
		names = nil
	}

	if len(papers) != len(sizes) || (names != nil && len(names) != len(papers)) {
		log.WarningDevicef(t.DeviceName(), "Paper capabilities disagree: %d codes, %d sizes, %d names",
			len(papers), len(sizes), len(names))
		return nil, nil
	}

	defCode, defCodeOK := dm.GetPaperSize()
	defSize, defSizeOK := devcaps.DefaultPaperSize(dm, papers, sizes)

	ms := cdd.MediaSize{
		Option: make([]cdd.MediaSizeOption, 0, len(papers)),
	}

	var foundDef bool
	for i, code := range papers {
		var name string
		if names != nil {
			name = names[i]
		}
		if name == "" {
			neutral, ok := papersize.ToNeutralSize(code)
			if !ok {
				continue
			}
			name = neutral.String()
		}

		var def bool
		if !foundDef {
			if defCodeOK {
				def = code == defCode
			} else if defSizeOK {
				def = sizes[i] == defSize
			}
			foundDef = def
		}

		ms.Option = append(ms.Option, cdd.MediaSizeOption{
			Name:                       cdd.MediaSizeCustom,
			WidthMicrons:               tenthsToMicrons(sizes[i].Width),
			HeightMicrons:              tenthsToMicrons(sizes[i].Height),
			IsDefault:                  def,
			VendorID:                   strconv.Itoa(int(code)),
			CustomDisplayNameLocalized: cdd.NewLocalizedString(name),
		})
	}

	if !foundDef && len(ms.Option) > 0 {
		ms.Option[0].IsDefault = true
	}

	if e, err := t.MinExtent(); err == nil {
		ms.MinWidthMicrons = tenthsToMicrons(e.Width)
		ms.MinHeightMicrons = tenthsToMicrons(e.Height)
	} else if _, err := supported(err); err != nil {
		return nil, err
	}
	if e, err := t.MaxExtent(); err == nil {
		ms.MaxWidthMicrons = tenthsToMicrons(e.Width)
		ms.MaxHeightMicrons = tenthsToMicrons(e.Height)
	} else if _, err := supported(err); err != nil {
		return nil, err
	}

	return &ms, nil
}

func convertCollate(t *devcaps.Translator, dm *devmode.DevMode) (*cdd.Collate, error) {
	def, ok := dm.GetCollate()
	if !ok {
		return nil, nil
	}
	collate, err := t.Collate()
	if ok, err := supported(err); !ok {
		return nil, err
	}
	if !collate {
		return nil, nil
	}
	return &cdd.Collate{
		Default: def == devmode.DMCOLLATE_TRUE,
	}, nil
}

var inputTrayTypeByBin = map[int16]cdd.InputTrayUnitType{
	devmode.DMBIN_UPPER:         cdd.InputTrayUnitInputTray,
	devmode.DMBIN_LOWER:         cdd.InputTrayUnitInputTray,
	devmode.DMBIN_MIDDLE:        cdd.InputTrayUnitInputTray,
	devmode.DMBIN_MANUAL:        cdd.InputTrayUnitManualFeedTray,
	devmode.DMBIN_ENVELOPE:      cdd.InputTrayUnitEnvelopeTray,
	devmode.DMBIN_ENVMANUAL:     cdd.InputTrayUnitManualFeedTray,
	devmode.DMBIN_TRACTOR:       cdd.InputTrayUnitRoll,
	devmode.DMBIN_LARGECAPACITY: cdd.InputTrayUnitLCT,
	devmode.DMBIN_CASSETTE:      cdd.InputTrayUnitInputTray,
}

// bins returns the device's bin codes and names, or nils when either is
// unsupported or they disagree.
func bins(t *devcaps.Translator) ([]int16, []string, error) {
	codes, err := t.Bins()
	if ok, err := supported(err); !ok {
		return nil, nil, err
	}
	names, err := t.BinNames()
	if ok, err := supported(err); !ok {
		return nil, nil, err
	}
	if len(codes) != len(names) {
		log.WarningDevicef(t.DeviceName(), "Bin capabilities disagree: %d codes, %d names", len(codes), len(names))
		return nil, nil, nil
	}
	return codes, names, nil
}

func convertInputTrays(t *devcaps.Translator) (*[]cdd.InputTrayUnit, error) {
	codes, names, err := bins(t)
	if err != nil || len(codes) == 0 {
		return nil, err
	}

	trays := make([]cdd.InputTrayUnit, 0, len(codes))
	for i, code := range codes {
		// Automatic selection and the form source are not physical trays.
		if code == devmode.DMBIN_AUTO || code == devmode.DMBIN_FORMSOURCE {
			continue
		}
		trayType, ok := inputTrayTypeByBin[code]
		if !ok {
			trayType = cdd.InputTrayUnitCustom
		}
		trays = append(trays, cdd.InputTrayUnit{
			VendorID:                   strconv.Itoa(int(code)),
			Type:                       trayType,
			Index:                      int64(i),
			CustomDisplayNameLocalized: cdd.NewLocalizedString(names[i]),
		})
	}
	if len(trays) == 0 {
		return nil, nil
	}
	return &trays, nil
}

// selectCapability builds a SELECT vendor capability. The first option is
// the default when def matches none.
func selectCapability(id, displayName string, values, names []string, def string) *cdd.VendorCapability {
	if len(values) == 0 {
		return nil
	}
	options := make([]cdd.SelectCapabilityOption, 0, len(values))
	var foundDef bool
	for i, value := range values {
		o := cdd.SelectCapabilityOption{
			Value:       value,
			DisplayName: names[i],
		}
		if !foundDef && value == def {
			o.IsDefault = true
			foundDef = true
		}
		options = append(options, o)
	}
	if !foundDef {
		options[0].IsDefault = true
	}
	return &cdd.VendorCapability{
		ID:                   id,
		DisplayName:          displayName,
		Type:                 cdd.VendorCapabilitySelect,
		SelectCap:            &cdd.SelectCapability{Option: options},
		DisplayNameLocalized: cdd.NewLocalizedString(displayName),
	}
}

func convertInputTraySelect(t *devcaps.Translator, dm *devmode.DevMode) (*cdd.VendorCapability, error) {
	codes, names, err := bins(t)
	if err != nil {
		return nil, err
	}
	values := make([]string, len(codes))
	for i, code := range codes {
		values[i] = strconv.Itoa(int(code))
	}
	var def string
	if source, ok := dm.GetDefaultSource(); ok {
		def = strconv.Itoa(int(source))
	}
	return selectCapability(VendorCapabilityInputTray, "Paper source", values, names, def), nil
}

func convertMediaTypes(t *devcaps.Translator, dm *devmode.DevMode) (*cdd.VendorCapability, error) {
	types, err := t.MediaTypes()
	if ok, err := supported(err); !ok {
		return nil, err
	}
	names, err := t.MediaTypeNames()
	if ok, err := supported(err); !ok {
		return nil, err
	}
	if len(types) != len(names) {
		log.WarningDevicef(t.DeviceName(), "Media type capabilities disagree: %d types, %d names", len(types), len(names))
		return nil, nil
	}

	values := make([]string, len(types))
	for i, mediaType := range types {
		values[i] = strconv.FormatUint(uint64(mediaType), 10)
	}
	var def string
	if mediaType, ok := dm.GetMediaType(); ok {
		def = strconv.FormatUint(uint64(mediaType), 10)
	}
	return selectCapability(VendorCapabilityMediaType, "Media type", values, names, def), nil
}

var (
	duplexValueByType = map[cdd.DuplexType]int16{
		cdd.DuplexNoDuplex:  devmode.DMDUP_SIMPLEX,
		cdd.DuplexLongEdge:  devmode.DMDUP_VERTICAL,
		cdd.DuplexShortEdge: devmode.DMDUP_HORIZONTAL,
	}

	pageOrientationByType = map[cdd.PageOrientationType]int16{
		cdd.PageOrientationPortrait:  devmode.DMORIENT_PORTRAIT,
		cdd.PageOrientationLandscape: devmode.DMORIENT_LANDSCAPE,
		// Ignore cdd.PageOrientationAuto for ticket parsing, in order to interpret "auto".
	}

	colorValueByType = map[cdd.ColorType]int16{
		cdd.ColorTypeStandardColor:      devmode.DMCOLOR_COLOR,
		cdd.ColorTypeStandardMonochrome: devmode.DMCOLOR_MONOCHROME,
		cdd.ColorTypeCustomColor:        devmode.DMCOLOR_COLOR,
		cdd.ColorTypeCustomMonochrome:   devmode.DMCOLOR_MONOCHROME,
	}
)

func hasVendorCapability(description *cdd.PrinterDescriptionSection, id string) bool {
	if description.VendorCapability == nil {
		return false
	}
	for _, vc := range *description.VendorCapability {
		if vc.ID == id {
			return true
		}
	}
	return false
}

// ApplyTicket writes the items of ticket onto dm. Items are applied only
// when description offers the matching capability; others are ignored.
func ApplyTicket(dm *devmode.DevMode, ticket *cdd.CloudJobTicket, description *cdd.PrinterDescriptionSection) error {
	if dm == nil {
		return errors.New("ApplyTicket() called with nil DevMode")
	}
	if ticket == nil {
		return errors.New("ApplyTicket() called with nil ticket")
	}
	if description == nil {
		description = &cdd.PrinterDescriptionSection{}
	}
	p := &ticket.Print

	if p.Duplex != nil && description.Duplex != nil {
		if duplex, ok := duplexValueByType[p.Duplex.Type]; ok {
			dm.SetDuplex(duplex)
		}
	}

	if p.PageOrientation != nil && description.PageOrientation != nil {
		if pageOrientation, ok := pageOrientationByType[p.PageOrientation.Type]; ok {
			dm.SetOrientation(pageOrientation)
		}
	}

	if p.Copies != nil && description.Copies != nil {
		if p.Copies.Copies > 0 {
			copies := min(p.Copies.Copies, description.Copies.Max, math.MaxInt16)
			dm.SetCopies(int16(copies))
		}
	}

	if p.Color != nil && description.Color != nil {
		if p.Color.VendorID != "" {
			v, err := strconv.ParseInt(p.Color.VendorID, 10, 16)
			if err != nil {
				return errors.Wrapf(err, "color vendor ID %q", p.Color.VendorID)
			}
			dm.SetColor(int16(v))
		} else if color, ok := colorValueByType[p.Color.Type]; ok {
			dm.SetColor(color)
		}
	}

	if p.DPI != nil && description.DPI != nil {
		if p.DPI.HorizontalDPI > 0 && p.DPI.VerticalDPI > 0 {
			dm.SetPrintQuality(int16(p.DPI.HorizontalDPI))
			dm.SetYResolution(int16(p.DPI.VerticalDPI))
		}
	}

	if p.MediaSize != nil && description.MediaSize != nil {
		if p.MediaSize.VendorID != "" {
			v, err := strconv.ParseInt(p.MediaSize.VendorID, 10, 16)
			if err != nil {
				return errors.Wrapf(err, "media size vendor ID %q", p.MediaSize.VendorID)
			}
			dm.SetPaperSize(int16(v))
			dm.ClearFields(devmode.DM_PAPERLENGTH | devmode.DM_PAPERWIDTH)
		} else {
			length, err := micronsToTenths(p.MediaSize.HeightMicrons)
			if err != nil {
				return errors.Wrap(err, "media size height")
			}
			width, err := micronsToTenths(p.MediaSize.WidthMicrons)
			if err != nil {
				return errors.Wrap(err, "media size width")
			}
			dm.ClearFields(devmode.DM_PAPERSIZE)
			dm.SetPaperLength(length)
			dm.SetPaperWidth(width)
		}
	}

	if p.Collate != nil && description.Collate != nil {
		if p.Collate.Collate {
			dm.SetCollate(devmode.DMCOLLATE_TRUE)
		} else {
			dm.SetCollate(devmode.DMCOLLATE_FALSE)
		}
	}

	for _, item := range p.VendorTicketItem {
		if !hasVendorCapability(description, item.ID) {
			log.Debugf("Ignoring vendor ticket item %s, which the printer does not offer", item.ID)
			continue
		}
		switch item.ID {
		case VendorCapabilityInputTray:
			v, err := strconv.ParseInt(item.Value, 10, 16)
			if err != nil {
				return errors.Wrapf(err, "input tray %q", item.Value)
			}
			dm.SetDefaultSource(int16(v))
		case VendorCapabilityMediaType:
			v, err := strconv.ParseUint(item.Value, 10, 32)
			if err != nil {
				return errors.Wrapf(err, "media type %q", item.Value)
			}
			dm.SetMediaType(uint32(v))
		default:
			log.Debugf("Ignoring unknown vendor ticket item %s", item.ID)
		}
	}

	return nil
}
