/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

// Package devcaps asks a print system what a device supports, and decodes
// the answers into Go values.
package devcaps

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/google/cloud-print-devmode/devmode"
	"github.com/google/cloud-print-devmode/log"
	"github.com/pkg/errors"
)

// ErrUnsupported is returned when the provider reports -1, which means the
// capability is not supported or the query failed.
var ErrUnsupported = errors.New("capability not supported by device")

// Provider answers DeviceCapabilities queries.
//
// With a nil output the provider returns the number of items it would
// write. With a non-nil output it fills output and returns the number of
// items written. output is always sized for the count returned by the first
// call, but a provider may report a different count the second time.
type Provider interface {
	DeviceCapabilities(device, port string, capability Capability, output []byte, devMode *devmode.DevMode) (int32, error)
}

// PaperSize is a paper's dimensions in tenths of a millimeter.
type PaperSize struct {
	Width  int32 `json:"width" yaml:"width"`
	Height int32 `json:"height" yaml:"height"`
}

// Resolution is in dots per inch.
type Resolution struct {
	X int32 `json:"x" yaml:"x"`
	Y int32 `json:"y" yaml:"y"`
}

// Translator issues capability queries for one device. The fields
// capability is cached for the life of the Translator, so a Translator must
// be recreated when the device's capabilities change.
type Translator struct {
	provider   Provider
	deviceName string
	driverName string
	portName   string
	devMode    *devmode.DevMode

	fields       devmode.Fields
	fieldsCached bool
}

// NewTranslator returns a Translator for a device. devMode is passed to the
// provider as a hint and may be nil.
func NewTranslator(p Provider, deviceName, driverName, portName string, devMode *devmode.DevMode) *Translator {
	return &Translator{
		provider:   p,
		deviceName: deviceName,
		driverName: driverName,
		portName:   portName,
		devMode:    devMode,
	}
}

func (t *Translator) DeviceName() string { return t.deviceName }
func (t *Translator) DriverName() string { return t.driverName }
func (t *Translator) PortName() string   { return t.portName }

// DevMode returns the DEVMODE passed to the provider, which may be nil.
func (t *Translator) DevMode() *devmode.DevMode { return t.devMode }

func (t *Translator) query(capability Capability, output []byte) (int32, error) {
	n, err := t.provider.DeviceCapabilities(t.deviceName, t.portName, capability, output, t.devMode)
	if err != nil {
		return 0, errors.Wrapf(err, "query %s of %s", capability, t.deviceName)
	}
	if n == -1 {
		return 0, errors.Wrapf(ErrUnsupported, "query %s of %s", capability, t.deviceName)
	}
	return n, nil
}

// Int returns a scalar capability.
func (t *Translator) Int(capability Capability) (int32, error) {
	return t.query(capability, nil)
}

// Bool returns true when a scalar capability is not zero.
func (t *Translator) Bool(capability Capability) (bool, error) {
	n, err := t.Int(capability)
	if err != nil {
		return false, err
	}
	return n != 0, nil
}

// Fields returns the DEVMODE members the driver supports. The first
// successful answer is cached.
func (t *Translator) Fields() (devmode.Fields, error) {
	if t.fieldsCached {
		return t.fields, nil
	}
	n, err := t.Int(DC_FIELDS)
	if err != nil {
		return 0, err
	}
	t.fields = devmode.Fields(uint32(n))
	t.fieldsCached = true
	return t.fields, nil
}

// queryArray runs the two-call protocol for an array capability. The second
// call's count is trusted, bounded by what the buffer can hold.
func queryArray[T any](t *Translator, capability Capability, itemSize int, read func([]byte) T) ([]T, error) {
	count, err := t.query(capability, nil)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return []T{}, nil
	}

	output := make([]byte, int(count)*itemSize)
	written, err := t.query(capability, output)
	if err != nil {
		return nil, err
	}
	if written != count {
		log.DebugDevicef(t.deviceName, "%s reported %d items, then wrote %d", capability, count, written)
	}
	n := int(written)
	if capacity := len(output) / itemSize; n > capacity {
		n = capacity
	}
	if n <= 0 {
		return []T{}, nil
	}

	values := make([]T, n)
	for i := range values {
		values[i] = read(output[i*itemSize : (i+1)*itemSize])
	}
	return values, nil
}

func readInt16(b []byte) int16   { return int16(binary.LittleEndian.Uint16(b)) }
func readUint32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

func readPaperSize(b []byte) PaperSize {
	return PaperSize{
		Width:  int32(binary.LittleEndian.Uint32(b)),
		Height: int32(binary.LittleEndian.Uint32(b[4:])),
	}
}

func readResolution(b []byte) Resolution {
	return Resolution{
		X: int32(binary.LittleEndian.Uint32(b)),
		Y: int32(binary.LittleEndian.Uint32(b[4:])),
	}
}

// readString decodes a null-terminated UTF-16 string filling at most b.
func readString(b []byte) string {
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		u := binary.LittleEndian.Uint16(b[i:])
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units))
}

// Papers returns the legacy paper codes, in the same order as PaperNames and
// PaperSizes.
func (t *Translator) Papers() ([]int16, error) {
	return queryArray(t, DC_PAPERS, wordSize, readInt16)
}

func (t *Translator) PaperNames() ([]string, error) {
	return queryArray(t, DC_PAPERNAMES, paperNameSize, readString)
}

func (t *Translator) PaperSizes() ([]PaperSize, error) {
	return queryArray(t, DC_PAPERSIZE, pointSize, readPaperSize)
}

// Bins returns the input tray codes, in the same order as BinNames.
func (t *Translator) Bins() ([]int16, error) {
	return queryArray(t, DC_BINS, wordSize, readInt16)
}

func (t *Translator) BinNames() ([]string, error) {
	return queryArray(t, DC_BINNAMES, binNameSize, readString)
}

func (t *Translator) Resolutions() ([]Resolution, error) {
	return queryArray(t, DC_ENUMRESOLUTIONS, pointSize, readResolution)
}

// MediaTypes returns the DMMEDIA values, in the same order as
// MediaTypeNames.
func (t *Translator) MediaTypes() ([]uint32, error) {
	return queryArray(t, DC_MEDIATYPES, dwordSize, readUint32)
}

func (t *Translator) MediaTypeNames() ([]string, error) {
	return queryArray(t, DC_MEDIATYPENAMES, mediaTypeNameSize, readString)
}

// NUp returns the supported pages-per-sheet counts.
func (t *Translator) NUp() ([]uint32, error) {
	return queryArray(t, DC_NUP, dwordSize, readUint32)
}

func (t *Translator) Collate() (bool, error) { return t.Bool(DC_COLLATE) }
func (t *Translator) Duplex() (bool, error)  { return t.Bool(DC_DUPLEX) }
func (t *Translator) Color() (bool, error)   { return t.Bool(DC_COLORDEVICE) }

// Copies returns the maximum number of copies.
func (t *Translator) Copies() (int32, error) { return t.Int(DC_COPIES) }

// Orientation returns the rotation of landscape relative to portrait, in
// degrees: 0, 90 or 270.
func (t *Translator) Orientation() (int32, error) { return t.Int(DC_ORIENTATION) }

func (t *Translator) DriverVersion() (int32, error) { return t.Int(DC_DRIVER) }
func (t *Translator) DevModeSize() (int32, error)   { return t.Int(DC_SIZE) }
func (t *Translator) DriverExtra() (int32, error)   { return t.Int(DC_EXTRA) }

// extent unpacks a POINTS structure returned in place of a count.
func (t *Translator) extent(capability Capability) (PaperSize, error) {
	n, err := t.Int(capability)
	if err != nil {
		return PaperSize{}, err
	}
	return PaperSize{
		Width:  int32(int16(uint32(n))),
		Height: int32(int16(uint32(n) >> 16)),
	}, nil
}

// MinExtent returns the smallest paper the device takes.
func (t *Translator) MinExtent() (PaperSize, error) { return t.extent(DC_MINEXTENT) }

// MaxExtent returns the largest paper the device takes.
func (t *Translator) MaxExtent() (PaperSize, error) { return t.extent(DC_MAXEXTENT) }

// DefaultPaperSize queries the device's paper codes and sizes, and resolves
// the default paper of the translator's DevMode against them.
func (t *Translator) DefaultPaperSize() (PaperSize, bool, error) {
	codes, err := t.Papers()
	if err != nil {
		return PaperSize{}, false, err
	}
	sizes, err := t.PaperSizes()
	if err != nil {
		return PaperSize{}, false, err
	}
	size, ok := DefaultPaperSize(t.devMode, codes, sizes)
	return size, ok, nil
}

// DefaultPaperSize resolves the paper dimensions of defaultRecord.
//
// Without a record the first known size is the default. Otherwise explicit
// paper width and length members win; a missing dimension is taken from
// knownSizes at the index of the record's paper code in knownCodes. Returns
// false unless both dimensions were found.
func DefaultPaperSize(defaultRecord *devmode.DevMode, knownCodes []int16, knownSizes []PaperSize) (PaperSize, bool) {
	if defaultRecord == nil {
		if len(knownSizes) == 0 {
			return PaperSize{}, false
		}
		return knownSizes[0], true
	}

	var size PaperSize
	width, widthOK := defaultRecord.GetPaperWidth()
	height, heightOK := defaultRecord.GetPaperLength()
	if widthOK {
		size.Width = int32(width)
	}
	if heightOK {
		size.Height = int32(height)
	}
	if widthOK && heightOK {
		return size, true
	}

	code, ok := defaultRecord.GetPaperSize()
	if !ok {
		return PaperSize{}, false
	}
	for i, known := range knownCodes {
		if known != code || i >= len(knownSizes) {
			continue
		}
		if !widthOK {
			size.Width = knownSizes[i].Width
		}
		if !heightOK {
			size.Height = knownSizes[i].Height
		}
		return size, true
	}
	return PaperSize{}, false
}
