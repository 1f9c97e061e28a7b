/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

// package cdd represents the parts of the Cloud Device Description format
// that a DEVMODE and its device capabilities can express:
// https://developers.google.com/cloud-print/docs/cdd
//
// Not-required fields are marked with the omitempty JSON attribute.
package cdd

type CloudDeviceDescription struct {
	Version string                    `json:"version" yaml:"version"`
	Printer PrinterDescriptionSection `json:"printer" yaml:"printer"`
}

// NewCloudDeviceDescription wraps a printer section with the current version.
func NewCloudDeviceDescription(printer *PrinterDescriptionSection) *CloudDeviceDescription {
	cdd := CloudDeviceDescription{Version: "1.0"}
	if printer != nil {
		cdd.Printer = *printer
	}
	return &cdd
}

type PrinterDescriptionSection struct {
	InputTrayUnit    *[]InputTrayUnit    `json:"input_tray_unit,omitempty" yaml:"input_tray_unit,omitempty"`
	VendorCapability *[]VendorCapability `json:"vendor_capability,omitempty" yaml:"vendor_capability,omitempty"`
	Color            *Color              `json:"color,omitempty" yaml:"color,omitempty"`
	Duplex           *Duplex             `json:"duplex,omitempty" yaml:"duplex,omitempty"`
	PageOrientation  *PageOrientation    `json:"page_orientation,omitempty" yaml:"page_orientation,omitempty"`
	Copies           *Copies             `json:"copies,omitempty" yaml:"copies,omitempty"`
	DPI              *DPI                `json:"dpi,omitempty" yaml:"dpi,omitempty"`
	MediaSize        *MediaSize          `json:"media_size,omitempty" yaml:"media_size,omitempty"`
	Collate          *Collate            `json:"collate,omitempty" yaml:"collate,omitempty"`
}

type InputTrayUnitType string

const (
	InputTrayUnitCustom         InputTrayUnitType = "CUSTOM"
	InputTrayUnitInputTray      InputTrayUnitType = "INPUT_TRAY"
	InputTrayUnitBypassTray     InputTrayUnitType = "BYPASS_TRAY"
	InputTrayUnitManualFeedTray InputTrayUnitType = "MANUAL_FEED_TRAY"
	InputTrayUnitLCT            InputTrayUnitType = "LCT" // Large capacity tray.
	InputTrayUnitEnvelopeTray   InputTrayUnitType = "ENVELOPE_TRAY"
	InputTrayUnitRoll           InputTrayUnitType = "ROLL"
)

type InputTrayUnit struct {
	VendorID                   string             `json:"vendor_id" yaml:"vendor_id"`
	Type                       InputTrayUnitType  `json:"type" yaml:"type"`
	Index                      int64              `json:"index,omitempty" yaml:"index,omitempty"`
	CustomDisplayName          string             `json:"custom_display_name,omitempty" yaml:"custom_display_name,omitempty"`
	CustomDisplayNameLocalized *[]LocalizedString `json:"custom_display_name_localized,omitempty" yaml:"custom_display_name_localized,omitempty"`
}

type VendorCapabilityType string

const (
	VendorCapabilityRange      VendorCapabilityType = "RANGE"
	VendorCapabilitySelect     VendorCapabilityType = "SELECT"
	VendorCapabilityTypedValue VendorCapabilityType = "TYPED_VALUE"
)

type VendorCapability struct {
	ID                   string               `json:"id" yaml:"id"`
	DisplayName          string               `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Type                 VendorCapabilityType `json:"type" yaml:"type"`
	SelectCap            *SelectCapability    `json:"select_cap,omitempty" yaml:"select_cap,omitempty"`
	DisplayNameLocalized *[]LocalizedString   `json:"display_name_localized,omitempty" yaml:"display_name_localized,omitempty"`
}

type SelectCapability struct {
	Option []SelectCapabilityOption `json:"option" yaml:"option"`
}

type SelectCapabilityOption struct {
	Value                string             `json:"value" yaml:"value"`
	DisplayName          string             `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	IsDefault            bool               `json:"is_default" yaml:"is_default"` // default = false
	DisplayNameLocalized *[]LocalizedString `json:"display_name_localized,omitempty" yaml:"display_name_localized,omitempty"`
}

type ColorType string

const (
	ColorTypeStandardColor      ColorType = "STANDARD_COLOR"
	ColorTypeStandardMonochrome ColorType = "STANDARD_MONOCHROME"
	ColorTypeCustomColor        ColorType = "CUSTOM_COLOR"
	ColorTypeCustomMonochrome   ColorType = "CUSTOM_MONOCHROME"
	ColorTypeAuto               ColorType = "AUTO"
)

type Color struct {
	Option []ColorOption `json:"option" yaml:"option"`
}

type ColorOption struct {
	VendorID                   string             `json:"vendor_id" yaml:"vendor_id"`
	Type                       ColorType          `json:"type" yaml:"type"`
	CustomDisplayName          string             `json:"custom_display_name,omitempty" yaml:"custom_display_name,omitempty"`
	IsDefault                  bool               `json:"is_default" yaml:"is_default"` // default = false
	CustomDisplayNameLocalized *[]LocalizedString `json:"custom_display_name_localized,omitempty" yaml:"custom_display_name_localized,omitempty"`
}

type DuplexType string

const (
	DuplexNoDuplex  DuplexType = "NO_DUPLEX"
	DuplexLongEdge  DuplexType = "LONG_EDGE"
	DuplexShortEdge DuplexType = "SHORT_EDGE"
)

type Duplex struct {
	Option []DuplexOption `json:"option" yaml:"option"`
}

type DuplexOption struct {
	Type      DuplexType `json:"type" yaml:"type"`             // default = "NO_DUPLEX"
	IsDefault bool       `json:"is_default" yaml:"is_default"` // default = false
}

type PageOrientationType string

const (
	PageOrientationPortrait  PageOrientationType = "PORTRAIT"
	PageOrientationLandscape PageOrientationType = "LANDSCAPE"
	PageOrientationAuto      PageOrientationType = "AUTO"
)

type PageOrientation struct {
	Option []PageOrientationOption `json:"option" yaml:"option"`
}

type PageOrientationOption struct {
	Type      PageOrientationType `json:"type" yaml:"type"`
	IsDefault bool                `json:"is_default" yaml:"is_default"` // default = false
}

type Copies struct {
	Default int32 `json:"default" yaml:"default"`
	Max     int32 `json:"max" yaml:"max"`
}

type DPI struct {
	Option           []DPIOption `json:"option" yaml:"option"`
	MinHorizontalDPI int32       `json:"min_horizontal_dpi,omitempty" yaml:"min_horizontal_dpi,omitempty"`
	MaxHorizontalDPI int32       `json:"max_horizontal_dpi,omitempty" yaml:"max_horizontal_dpi,omitempty"`
	MinVerticalDPI   int32       `json:"min_vertical_dpi,omitempty" yaml:"min_vertical_dpi,omitempty"`
	MaxVerticalDPI   int32       `json:"max_vertical_dpi,omitempty" yaml:"max_vertical_dpi,omitempty"`
}

type DPIOption struct {
	HorizontalDPI              int32              `json:"horizontal_dpi" yaml:"horizontal_dpi"`
	VerticalDPI                int32              `json:"vertical_dpi" yaml:"vertical_dpi"`
	IsDefault                  bool               `json:"is_default" yaml:"is_default"` // default = false
	CustomDisplayName          string             `json:"custom_display_name,omitempty" yaml:"custom_display_name,omitempty"`
	VendorID                   string             `json:"vendor_id" yaml:"vendor_id"`
	CustomDisplayNameLocalized *[]LocalizedString `json:"custom_display_name_localized,omitempty" yaml:"custom_display_name_localized,omitempty"`
}

// MediaSizeCustom is the name of every media size option that is identified
// by its vendor ID rather than by a standard name.
const MediaSizeCustom = "CUSTOM"

type MediaSize struct {
	Option           []MediaSizeOption `json:"option" yaml:"option"`
	MaxWidthMicrons  int32             `json:"max_width_microns,omitempty" yaml:"max_width_microns,omitempty"`
	MaxHeightMicrons int32             `json:"max_height_microns,omitempty" yaml:"max_height_microns,omitempty"`
	MinWidthMicrons  int32             `json:"min_width_microns,omitempty" yaml:"min_width_microns,omitempty"`
	MinHeightMicrons int32             `json:"min_height_microns,omitempty" yaml:"min_height_microns,omitempty"`
}

type MediaSizeOption struct {
	Name                       string             `json:"name" yaml:"name"` // default = "CUSTOM"
	WidthMicrons               int32              `json:"width_microns,omitempty" yaml:"width_microns,omitempty"`
	HeightMicrons              int32              `json:"height_microns,omitempty" yaml:"height_microns,omitempty"`
	IsContinuousFeed           bool               `json:"is_continuous_feed" yaml:"is_continuous_feed"` // default = false
	IsDefault                  bool               `json:"is_default" yaml:"is_default"`                 // default = false
	CustomDisplayName          string             `json:"custom_display_name,omitempty" yaml:"custom_display_name,omitempty"`
	VendorID                   string             `json:"vendor_id,omitempty" yaml:"vendor_id,omitempty"`
	CustomDisplayNameLocalized *[]LocalizedString `json:"custom_display_name_localized,omitempty" yaml:"custom_display_name_localized,omitempty"`
}

type Collate struct {
	Default bool `json:"default" yaml:"default"` // default = true
}

type LocalizedString struct {
	Locale string `json:"locale" yaml:"locale"` // enum; use "EN"
	Value  string `json:"value" yaml:"value"`
}

func NewLocalizedString(value string) *[]LocalizedString {
	return &[]LocalizedString{{"EN", value}}
}
