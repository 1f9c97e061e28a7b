/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package devmode

// Settings is the set of present DEVMODE members, for serialization.
// Absent members are nil.
type Settings struct {
	DeviceName    string  `json:"device_name,omitempty" yaml:"device_name,omitempty"`
	Orientation   *int16  `json:"orientation,omitempty" yaml:"orientation,omitempty"`
	PaperSize     *int16  `json:"paper_size,omitempty" yaml:"paper_size,omitempty"`
	PaperLength   *int16  `json:"paper_length,omitempty" yaml:"paper_length,omitempty"`
	PaperWidth    *int16  `json:"paper_width,omitempty" yaml:"paper_width,omitempty"`
	Scale         *int16  `json:"scale,omitempty" yaml:"scale,omitempty"`
	Copies        *int16  `json:"copies,omitempty" yaml:"copies,omitempty"`
	DefaultSource *int16  `json:"default_source,omitempty" yaml:"default_source,omitempty"`
	PrintQuality  *int16  `json:"print_quality,omitempty" yaml:"print_quality,omitempty"`
	Color         *int16  `json:"color,omitempty" yaml:"color,omitempty"`
	Duplex        *int16  `json:"duplex,omitempty" yaml:"duplex,omitempty"`
	YResolution   *int16  `json:"y_resolution,omitempty" yaml:"y_resolution,omitempty"`
	TTOption      *int16  `json:"tt_option,omitempty" yaml:"tt_option,omitempty"`
	Collate       *int16  `json:"collate,omitempty" yaml:"collate,omitempty"`
	FormName      *string `json:"form_name,omitempty" yaml:"form_name,omitempty"`
	Nup           *uint32 `json:"nup,omitempty" yaml:"nup,omitempty"`
	ICMMethod     *uint32 `json:"icm_method,omitempty" yaml:"icm_method,omitempty"`
	ICMIntent     *uint32 `json:"icm_intent,omitempty" yaml:"icm_intent,omitempty"`
	MediaType     *uint32 `json:"media_type,omitempty" yaml:"media_type,omitempty"`
	DitherType    *uint32 `json:"dither_type,omitempty" yaml:"dither_type,omitempty"`
}

func int16If(v int16, ok bool) *int16 {
	if !ok {
		return nil
	}
	return &v
}

func uint32If(v uint32, ok bool) *uint32 {
	if !ok {
		return nil
	}
	return &v
}

// Settings returns the members whose presence bit is set.
func (dm *DevMode) Settings() Settings {
	s := Settings{
		DeviceName:    dm.GetDeviceName(),
		Orientation:   int16If(dm.GetOrientation()),
		PaperSize:     int16If(dm.GetPaperSize()),
		PaperLength:   int16If(dm.GetPaperLength()),
		PaperWidth:    int16If(dm.GetPaperWidth()),
		Scale:         int16If(dm.GetScale()),
		Copies:        int16If(dm.GetCopies()),
		DefaultSource: int16If(dm.GetDefaultSource()),
		PrintQuality:  int16If(dm.GetPrintQuality()),
		Color:         int16If(dm.GetColor()),
		Duplex:        int16If(dm.GetDuplex()),
		YResolution:   int16If(dm.GetYResolution()),
		TTOption:      int16If(dm.GetTTOption()),
		Collate:       int16If(dm.GetCollate()),
		Nup:           uint32If(dm.GetNup()),
		ICMMethod:     uint32If(dm.GetICMMethod()),
		ICMIntent:     uint32If(dm.GetICMIntent()),
		MediaType:     uint32If(dm.GetMediaType()),
		DitherType:    uint32If(dm.GetDitherType()),
	}
	if name, ok := dm.GetFormName(); ok {
		s.FormName = &name
	}
	return s
}

// ApplySettings sets every non-nil member of s. The device name is only
// written when it is not empty.
func (dm *DevMode) ApplySettings(s Settings) error {
	if s.DeviceName != "" {
		if err := dm.SetDeviceName(s.DeviceName); err != nil {
			return err
		}
	}
	if s.FormName != nil {
		if _, err := dm.SetFormName(*s.FormName); err != nil {
			return err
		}
	}

	int16Setters := []struct {
		v   *int16
		set func(int16) Fields
	}{
		{s.Orientation, dm.SetOrientation},
		{s.PaperSize, dm.SetPaperSize},
		{s.PaperLength, dm.SetPaperLength},
		{s.PaperWidth, dm.SetPaperWidth},
		{s.Scale, dm.SetScale},
		{s.Copies, dm.SetCopies},
		{s.DefaultSource, dm.SetDefaultSource},
		{s.PrintQuality, dm.SetPrintQuality},
		{s.Color, dm.SetColor},
		{s.Duplex, dm.SetDuplex},
		{s.YResolution, dm.SetYResolution},
		{s.TTOption, dm.SetTTOption},
		{s.Collate, dm.SetCollate},
	}
	for _, setter := range int16Setters {
		if setter.v != nil {
			setter.set(*setter.v)
		}
	}

	uint32Setters := []struct {
		v   *uint32
		set func(uint32) Fields
	}{
		{s.Nup, dm.SetNup},
		{s.ICMMethod, dm.SetICMMethod},
		{s.ICMIntent, dm.SetICMIntent},
		{s.MediaType, dm.SetMediaType},
		{s.DitherType, dm.SetDitherType},
	}
	for _, setter := range uint32Setters {
		if setter.v != nil {
			setter.set(*setter.v)
		}
	}

	return nil
}
