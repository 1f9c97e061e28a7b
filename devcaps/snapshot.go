/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package devcaps

import (
	"encoding/binary"
	"os"
	"unicode/utf16"

	"github.com/google/cloud-print-devmode/devmode"
	"github.com/google/cloud-print-devmode/log"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Snapshot is a recorded set of capability answers for one device. It
// implements Provider, so a device can be examined without its driver.
type Snapshot struct {
	Device string `json:"device" yaml:"device"`
	Driver string `json:"driver,omitempty" yaml:"driver,omitempty"`
	Port   string `json:"port,omitempty" yaml:"port,omitempty"`

	// Scalars holds scalar answers keyed by Capability.String.
	Scalars map[string]int32 `json:"scalars,omitempty" yaml:"scalars,omitempty"`

	MinExtent *PaperSize `json:"min_extent,omitempty" yaml:"min_extent,omitempty"`
	MaxExtent *PaperSize `json:"max_extent,omitempty" yaml:"max_extent,omitempty"`

	Papers         []int16      `json:"papers,omitempty" yaml:"papers,omitempty"`
	PaperNames     []string     `json:"paper_names,omitempty" yaml:"paper_names,omitempty"`
	PaperSizes     []PaperSize  `json:"paper_sizes,omitempty" yaml:"paper_sizes,omitempty"`
	Bins           []int16      `json:"bins,omitempty" yaml:"bins,omitempty"`
	BinNames       []string     `json:"bin_names,omitempty" yaml:"bin_names,omitempty"`
	Resolutions    []Resolution `json:"resolutions,omitempty" yaml:"resolutions,omitempty"`
	MediaTypes     []uint32     `json:"media_types,omitempty" yaml:"media_types,omitempty"`
	MediaTypeNames []string     `json:"media_type_names,omitempty" yaml:"media_type_names,omitempty"`
	NUp            []uint32     `json:"nup,omitempty" yaml:"nup,omitempty"`

	// DevMode holds the device's default settings.
	DevMode *devmode.Settings `json:"devmode,omitempty" yaml:"devmode,omitempty"`
}

var snapshotScalars = []Capability{
	DC_FIELDS, DC_DUPLEX, DC_SIZE, DC_EXTRA, DC_VERSION, DC_DRIVER, DC_TRUETYPE,
	DC_ORIENTATION, DC_COPIES, DC_COLLATE, DC_COLORDEVICE, DC_STAPLE, DC_PRINTERMEM,
	DC_PRINTRATE, DC_PRINTRATEPPM,
}

// LoadSnapshot reads a YAML snapshot file.
func LoadSnapshot(filename string) (*Snapshot, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "read capability snapshot")
	}
	var s Snapshot
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, errors.Wrapf(err, "parse capability snapshot %s", filename)
	}
	if s.Device == "" {
		return nil, errors.Errorf("capability snapshot %s names no device", filename)
	}
	return &s, nil
}

// Save writes the snapshot as YAML.
func (s *Snapshot) Save(filename string) error {
	b, err := yaml.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "marshal capability snapshot")
	}
	return errors.Wrap(os.WriteFile(filename, b, 0644), "write capability snapshot")
}

// DefaultDevMode returns a new DevMode holding the recorded defaults, or nil
// when none were recorded.
func (s *Snapshot) DefaultDevMode() (*devmode.DevMode, error) {
	if s.DevMode == nil {
		return nil, nil
	}
	dm := devmode.NewFull()
	settings := *s.DevMode
	if settings.DeviceName == "" {
		settings.DeviceName = s.Device
	}
	if err := dm.ApplySettings(settings); err != nil {
		return nil, errors.Wrapf(err, "default DEVMODE of %s", s.Device)
	}
	return dm, nil
}

// Translator returns a Translator over the snapshot for its device.
func (s *Snapshot) Translator() (*Translator, error) {
	dm, err := s.DefaultDevMode()
	if err != nil {
		return nil, err
	}
	return NewTranslator(s, s.Device, s.Driver, s.Port, dm), nil
}

func packPoints(p *PaperSize) int32 {
	return int32(uint32(uint16(int16(p.Width))) | uint32(uint16(int16(p.Height)))<<16)
}

func encodeStrings(values []string, itemSize int) []byte {
	b := make([]byte, len(values)*itemSize)
	for i, v := range values {
		units := utf16.Encode([]rune(v))
		if limit := itemSize/2 - 1; len(units) > limit {
			units = units[:limit]
		}
		for j, u := range units {
			binary.LittleEndian.PutUint16(b[i*itemSize+j*2:], u)
		}
	}
	return b
}

func encodeInt16s(values []int16) []byte {
	b := make([]byte, len(values)*wordSize)
	for i, v := range values {
		binary.LittleEndian.PutUint16(b[i*wordSize:], uint16(v))
	}
	return b
}

func encodeUint32s(values []uint32) []byte {
	b := make([]byte, len(values)*dwordSize)
	for i, v := range values {
		binary.LittleEndian.PutUint32(b[i*dwordSize:], v)
	}
	return b
}

func encodePairs(n int, pair func(int) (int32, int32)) []byte {
	b := make([]byte, n*pointSize)
	for i := 0; i < n; i++ {
		x, y := pair(i)
		binary.LittleEndian.PutUint32(b[i*pointSize:], uint32(x))
		binary.LittleEndian.PutUint32(b[i*pointSize+4:], uint32(y))
	}
	return b
}

// array returns the encoded array answer for capability, or false when the
// capability is not an array capability.
func (s *Snapshot) array(capability Capability) ([]byte, int, bool) {
	switch capability {
	case DC_PAPERS:
		return encodeInt16s(s.Papers), wordSize, true
	case DC_PAPERNAMES:
		return encodeStrings(s.PaperNames, paperNameSize), paperNameSize, true
	case DC_PAPERSIZE:
		return encodePairs(len(s.PaperSizes), func(i int) (int32, int32) {
			return s.PaperSizes[i].Width, s.PaperSizes[i].Height
		}), pointSize, true
	case DC_BINS:
		return encodeInt16s(s.Bins), wordSize, true
	case DC_BINNAMES:
		return encodeStrings(s.BinNames, binNameSize), binNameSize, true
	case DC_ENUMRESOLUTIONS:
		return encodePairs(len(s.Resolutions), func(i int) (int32, int32) {
			return s.Resolutions[i].X, s.Resolutions[i].Y
		}), pointSize, true
	case DC_MEDIATYPES:
		return encodeUint32s(s.MediaTypes), dwordSize, true
	case DC_MEDIATYPENAMES:
		return encodeStrings(s.MediaTypeNames, mediaTypeNameSize), mediaTypeNameSize, true
	case DC_NUP:
		return encodeUint32s(s.NUp), dwordSize, true
	}
	return nil, 0, false
}

// DeviceCapabilities answers from the recorded values. Unrecorded scalars
// and unknown devices answer -1.
func (s *Snapshot) DeviceCapabilities(device, port string, capability Capability, output []byte, devMode *devmode.DevMode) (int32, error) {
	if device != s.Device {
		log.WarningDevicef(device, "capability snapshot is for %s", s.Device)
		return -1, nil
	}

	if data, itemSize, ok := s.array(capability); ok {
		count := len(data) / itemSize
		if output == nil {
			return int32(count), nil
		}
		n := copy(output, data)
		return int32(n / itemSize), nil
	}

	switch capability {
	case DC_MINEXTENT:
		if s.MinExtent != nil {
			return packPoints(s.MinExtent), nil
		}
	case DC_MAXEXTENT:
		if s.MaxExtent != nil {
			return packPoints(s.MaxExtent), nil
		}
	default:
		if v, ok := s.Scalars[capability.String()]; ok {
			return v, nil
		}
	}
	return -1, nil
}

// TakeSnapshot records every capability the translator can answer.
// Unsupported capabilities are left out.
func TakeSnapshot(t *Translator) (*Snapshot, error) {
	s := Snapshot{
		Device:  t.DeviceName(),
		Driver:  t.DriverName(),
		Port:    t.PortName(),
		Scalars: make(map[string]int32),
	}

	for _, capability := range snapshotScalars {
		v, err := t.Int(capability)
		if errors.Cause(err) == ErrUnsupported {
			continue
		} else if err != nil {
			return nil, err
		}
		s.Scalars[capability.String()] = v
	}

	if e, err := t.MinExtent(); err == nil {
		s.MinExtent = &e
	} else if errors.Cause(err) != ErrUnsupported {
		return nil, err
	}
	if e, err := t.MaxExtent(); err == nil {
		s.MaxExtent = &e
	} else if errors.Cause(err) != ErrUnsupported {
		return nil, err
	}

	var firstErr error
	keep := func(err error) {
		if firstErr == nil && err != nil && errors.Cause(err) != ErrUnsupported {
			firstErr = err
		}
	}
	var err error
	s.Papers, err = orNil(t.Papers())
	keep(err)
	s.PaperNames, err = orNil(t.PaperNames())
	keep(err)
	s.PaperSizes, err = orNil(t.PaperSizes())
	keep(err)
	s.Bins, err = orNil(t.Bins())
	keep(err)
	s.BinNames, err = orNil(t.BinNames())
	keep(err)
	s.Resolutions, err = orNil(t.Resolutions())
	keep(err)
	s.MediaTypes, err = orNil(t.MediaTypes())
	keep(err)
	s.MediaTypeNames, err = orNil(t.MediaTypeNames())
	keep(err)
	s.NUp, err = orNil(t.NUp())
	keep(err)
	if firstErr != nil {
		return nil, firstErr
	}

	if t.devMode != nil {
		settings := t.devMode.Settings()
		s.DevMode = &settings
	}
	return &s, nil
}

// orNil drops empty and failed answers so they are omitted from YAML.
func orNil[T any](values []T, err error) ([]T, error) {
	if err != nil || len(values) == 0 {
		return nil, err
	}
	return values, nil
}
