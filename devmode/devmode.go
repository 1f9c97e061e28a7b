/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

// Package devmode reads and writes the Windows DEVMODE print settings
// structure as a plain byte buffer, in either its ANSI (narrow) or its
// Unicode (wide) form.
//
// A DevMode owns its buffer. Getters and setters never fail on a short
// buffer: members that do not fit read as zero and writes to them are
// dropped.
package devmode

import (
	"fmt"
	"strings"

	"github.com/google/cloud-print-devmode/log"
	"github.com/pkg/errors"
)

// DevMode is a DEVMODE structure held in a byte buffer.
type DevMode struct {
	buf  []byte
	wide bool
}

// New returns an initialized, empty, wide DevMode.
func New() *DevMode {
	var dm DevMode
	dm.EnsureInitialized()
	return &dm
}

// NewFull returns an initialized wide DevMode with room for every public
// member, including those past the minimum size.
func NewFull() *DevMode {
	l := wideLayout
	dm := DevMode{
		buf:  make([]byte, l.offsets[FieldPanningHeight]+l.widths[FieldPanningHeight]),
		wide: true,
	}
	a := dm.acc()
	a.writeU16(l.offsets[FieldSpecVersion], DM_SPECVERSION)
	a.writeU16(l.offsets[FieldSize], uint16(len(dm.buf)))
	return &dm
}

// Parse wraps a DEVMODE buffer returned by the print system. The buffer is
// copied. The wide encoding is tried first; if the size members do not make
// sense for it, the narrow encoding is tried. Returns nil for an empty buffer.
func Parse(b []byte) *DevMode {
	if len(b) == 0 {
		return nil
	}

	dm := DevMode{buf: append([]byte(nil), b...), wide: true}
	if dm.hasValidSize(true) {
		return &dm
	}
	if dm.hasValidSize(false) {
		dm.wide = false
		log.Debugf("DEVMODE of %d bytes is narrow", len(b))
		return &dm
	}

	log.Warningf("DEVMODE of %d bytes fails size validation as wide and as narrow", len(b))
	return &dm
}

// FromRaw wraps a buffer that the caller knows to be a wide DEVMODE, without
// validating it. The buffer is copied. Returns nil for a nil buffer.
func FromRaw(b []byte) *DevMode {
	if b == nil {
		return nil
	}
	return &DevMode{buf: append([]byte(nil), b...), wide: true}
}

// EnsureInitialized gives a DevMode without a buffer a zeroed wide buffer of
// the minimum wide size, with the version and size members stamped.
func (dm *DevMode) EnsureInitialized() {
	if dm.buf != nil {
		return
	}
	dm.wide = true
	dm.buf = make([]byte, wideLayout.minSize)
	a := dm.acc()
	a.writeU16(dm.offset(FieldSpecVersion), DM_SPECVERSION)
	a.writeU16(dm.offset(FieldSize), uint16(len(dm.buf)))
}

func (dm *DevMode) acc() accessor {
	if dm == nil {
		return nil
	}
	return accessor(dm.buf)
}

func (dm *DevMode) offset(f Field) int {
	if dm == nil {
		return wideLayout.offsets[f]
	}
	return layoutFor(dm.wide).offsets[f]
}

// hasValidSize reports whether dmSize and dmDriverExtra are consistent with
// the buffer length when it is read with the given encoding.
func (dm *DevMode) hasValidSize(wide bool) bool {
	l := layoutFor(wide)
	a := dm.acc()
	size := int(a.readU16(l.offsets[FieldSize]))
	extra := int(a.readU16(l.offsets[FieldDriverExtra]))
	return size+extra <= len(a) && size >= l.minSize
}

// Valid reports whether the size members agree with the buffer under the
// encoding currently in use.
func (dm *DevMode) Valid() bool {
	if dm == nil {
		return false
	}
	return dm.hasValidSize(dm.wide)
}

// IsWide reports whether strings are stored as UTF-16.
func (dm *DevMode) IsWide() bool {
	return dm != nil && dm.wide
}

// Bytes returns a copy of the buffer.
func (dm *DevMode) Bytes() []byte {
	if dm == nil {
		return nil
	}
	return append([]byte(nil), dm.buf...)
}

// Len returns the length of the buffer.
func (dm *DevMode) Len() int {
	return len(dm.acc())
}

// Clone returns a deep copy.
func (dm *DevMode) Clone() *DevMode {
	if dm == nil {
		return nil
	}
	return &DevMode{buf: dm.Bytes(), wide: dm.wide}
}

func (dm *DevMode) SpecVersion() uint16 {
	return dm.acc().readU16(dm.offset(FieldSpecVersion))
}

func (dm *DevMode) DriverVersion() uint16 {
	return dm.acc().readU16(dm.offset(FieldDriverVersion))
}

// Size returns dmSize, the size of the public part of the structure.
func (dm *DevMode) Size() uint16 {
	return dm.acc().readU16(dm.offset(FieldSize))
}

// DriverExtra returns dmDriverExtra, the size of the driver-private data
// that follows the public part.
func (dm *DevMode) DriverExtra() uint16 {
	return dm.acc().readU16(dm.offset(FieldDriverExtra))
}

// DriverPrivate returns a copy of the driver-private bytes, or nil if they
// are not entirely inside the buffer.
func (dm *DevMode) DriverPrivate() []byte {
	a := dm.acc()
	start := int(dm.Size())
	end := start + int(dm.DriverExtra())
	if start >= end || end > len(a) {
		return nil
	}
	return append([]byte(nil), a[start:end]...)
}

// Fields returns the dmFields presence mask.
func (dm *DevMode) Fields() Fields {
	return Fields(dm.acc().readU32(dm.offset(FieldFields)))
}

// IsFieldSet reports whether every bit of field is present.
func (dm *DevMode) IsFieldSet(field Fields) bool {
	return dm.Fields()&field == field
}

// IsAnyFieldSet reports whether at least one bit of fields is present.
func (dm *DevMode) IsAnyFieldSet(fields Fields) bool {
	return dm.Fields()&fields != 0
}

func (dm *DevMode) markSet(bit Fields) Fields {
	a := dm.acc()
	off := dm.offset(FieldFields)
	a.writeU32(off, a.readU32(off)|uint32(bit))
	return dm.Fields()
}

// ClearFields drops the presence bits in fields, leaving the member values
// in place. Returns the new mask.
func (dm *DevMode) ClearFields(fields Fields) Fields {
	a := dm.acc()
	off := dm.offset(FieldFields)
	a.writeU32(off, a.readU32(off)&^uint32(fields))
	return dm.Fields()
}

func (dm *DevMode) getInt16(f Field, bit Fields) (int16, bool) {
	return int16(dm.acc().readU16(dm.offset(f))), dm.IsFieldSet(bit)
}

func (dm *DevMode) setInt16(f Field, bit Fields, v int16) Fields {
	dm.acc().writeU16(dm.offset(f), uint16(v))
	return dm.markSet(bit)
}

func (dm *DevMode) getUint32(f Field, bit Fields) (uint32, bool) {
	return dm.acc().readU32(dm.offset(f)), dm.IsFieldSet(bit)
}

func (dm *DevMode) setUint32(f Field, bit Fields, v uint32) Fields {
	dm.acc().writeU32(dm.offset(f), v)
	return dm.markSet(bit)
}

func (dm *DevMode) GetDeviceName() string {
	return dm.acc().readFixedString(dm.offset(FieldDeviceName), CCHDEVICENAME, dm.IsWide())
}

// SetDeviceName sets dmDeviceName. There is no presence bit for it.
func (dm *DevMode) SetDeviceName(name string) error {
	return dm.acc().writeFixedString(dm.offset(FieldDeviceName), CCHDEVICENAME, dm.IsWide(), name)
}

func (dm *DevMode) GetOrientation() (int16, bool) {
	return dm.getInt16(FieldOrientation, DM_ORIENTATION)
}

func (dm *DevMode) SetOrientation(orientation int16) Fields {
	return dm.setInt16(FieldOrientation, DM_ORIENTATION, orientation)
}

func (dm *DevMode) GetPaperSize() (int16, bool) {
	return dm.getInt16(FieldPaperSize, DM_PAPERSIZE)
}

func (dm *DevMode) SetPaperSize(paperSize int16) Fields {
	return dm.setInt16(FieldPaperSize, DM_PAPERSIZE, paperSize)
}

// GetPaperLength returns dmPaperLength in tenths of a millimeter.
func (dm *DevMode) GetPaperLength() (int16, bool) {
	return dm.getInt16(FieldPaperLength, DM_PAPERLENGTH)
}

func (dm *DevMode) SetPaperLength(length int16) Fields {
	return dm.setInt16(FieldPaperLength, DM_PAPERLENGTH, length)
}

// GetPaperWidth returns dmPaperWidth in tenths of a millimeter.
func (dm *DevMode) GetPaperWidth() (int16, bool) {
	return dm.getInt16(FieldPaperWidth, DM_PAPERWIDTH)
}

func (dm *DevMode) SetPaperWidth(width int16) Fields {
	return dm.setInt16(FieldPaperWidth, DM_PAPERWIDTH, width)
}

func (dm *DevMode) GetScale() (int16, bool) {
	return dm.getInt16(FieldScale, DM_SCALE)
}

func (dm *DevMode) SetScale(scale int16) Fields {
	return dm.setInt16(FieldScale, DM_SCALE, scale)
}

func (dm *DevMode) GetCopies() (int16, bool) {
	return dm.getInt16(FieldCopies, DM_COPIES)
}

func (dm *DevMode) SetCopies(copies int16) Fields {
	return dm.setInt16(FieldCopies, DM_COPIES, copies)
}

func (dm *DevMode) GetDefaultSource() (int16, bool) {
	return dm.getInt16(FieldDefaultSource, DM_DEFAULTSOURCE)
}

func (dm *DevMode) SetDefaultSource(source int16) Fields {
	return dm.setInt16(FieldDefaultSource, DM_DEFAULTSOURCE, source)
}

// GetPrintQuality returns either a DMRES_* value or the x-resolution in DPI.
func (dm *DevMode) GetPrintQuality() (int16, bool) {
	return dm.getInt16(FieldPrintQuality, DM_PRINTQUALITY)
}

func (dm *DevMode) SetPrintQuality(quality int16) Fields {
	return dm.setInt16(FieldPrintQuality, DM_PRINTQUALITY, quality)
}

func (dm *DevMode) GetColor() (int16, bool) {
	return dm.getInt16(FieldColor, DM_COLOR)
}

func (dm *DevMode) SetColor(color int16) Fields {
	return dm.setInt16(FieldColor, DM_COLOR, color)
}

func (dm *DevMode) GetDuplex() (int16, bool) {
	return dm.getInt16(FieldDuplex, DM_DUPLEX)
}

func (dm *DevMode) SetDuplex(duplex int16) Fields {
	return dm.setInt16(FieldDuplex, DM_DUPLEX, duplex)
}

func (dm *DevMode) GetYResolution() (int16, bool) {
	return dm.getInt16(FieldYResolution, DM_YRESOLUTION)
}

func (dm *DevMode) SetYResolution(y int16) Fields {
	return dm.setInt16(FieldYResolution, DM_YRESOLUTION, y)
}

func (dm *DevMode) GetTTOption() (int16, bool) {
	return dm.getInt16(FieldTTOption, DM_TTOPTION)
}

func (dm *DevMode) SetTTOption(option int16) Fields {
	return dm.setInt16(FieldTTOption, DM_TTOPTION, option)
}

func (dm *DevMode) GetCollate() (int16, bool) {
	return dm.getInt16(FieldCollate, DM_COLLATE)
}

func (dm *DevMode) SetCollate(collate int16) Fields {
	return dm.setInt16(FieldCollate, DM_COLLATE, collate)
}

func (dm *DevMode) GetFormName() (string, bool) {
	name := dm.acc().readFixedString(dm.offset(FieldFormName), CCHFORMNAME, dm.IsWide())
	return name, dm.IsFieldSet(DM_FORMNAME)
}

// SetFormName sets dmFormName, truncating it to 31 characters. On a narrow
// DevMode a name that is not Latin-1 is rejected and nothing changes.
func (dm *DevMode) SetFormName(name string) (Fields, error) {
	if err := dm.acc().writeFixedString(dm.offset(FieldFormName), CCHFORMNAME, dm.IsWide(), name); err != nil {
		return dm.Fields(), err
	}
	return dm.markSet(DM_FORMNAME), nil
}

func (dm *DevMode) GetNup() (uint32, bool) {
	return dm.getUint32(FieldNup, DM_NUP)
}

func (dm *DevMode) SetNup(nup uint32) Fields {
	return dm.setUint32(FieldNup, DM_NUP, nup)
}

func (dm *DevMode) GetICMMethod() (uint32, bool) {
	return dm.getUint32(FieldICMMethod, DM_ICMMETHOD)
}

func (dm *DevMode) SetICMMethod(method uint32) Fields {
	return dm.setUint32(FieldICMMethod, DM_ICMMETHOD, method)
}

func (dm *DevMode) GetICMIntent() (uint32, bool) {
	return dm.getUint32(FieldICMIntent, DM_ICMINTENT)
}

func (dm *DevMode) SetICMIntent(intent uint32) Fields {
	return dm.setUint32(FieldICMIntent, DM_ICMINTENT, intent)
}

func (dm *DevMode) GetMediaType() (uint32, bool) {
	return dm.getUint32(FieldMediaType, DM_MEDIATYPE)
}

func (dm *DevMode) SetMediaType(mediaType uint32) Fields {
	return dm.setUint32(FieldMediaType, DM_MEDIATYPE, mediaType)
}

func (dm *DevMode) GetDitherType() (uint32, bool) {
	return dm.getUint32(FieldDitherType, DM_DITHERTYPE)
}

func (dm *DevMode) SetDitherType(ditherType uint32) Fields {
	return dm.setUint32(FieldDitherType, DM_DITHERTYPE, ditherType)
}

var (
	int16Members = []struct {
		field Field
		bit   Fields
	}{
		{FieldOrientation, DM_ORIENTATION},
		{FieldPaperSize, DM_PAPERSIZE},
		{FieldPaperLength, DM_PAPERLENGTH},
		{FieldPaperWidth, DM_PAPERWIDTH},
		{FieldScale, DM_SCALE},
		{FieldCopies, DM_COPIES},
		{FieldDefaultSource, DM_DEFAULTSOURCE},
		{FieldPrintQuality, DM_PRINTQUALITY},
		{FieldColor, DM_COLOR},
		{FieldDuplex, DM_DUPLEX},
		{FieldYResolution, DM_YRESOLUTION},
		{FieldTTOption, DM_TTOPTION},
		{FieldCollate, DM_COLLATE},
	}

	uint32Members = []struct {
		field Field
		bit   Fields
	}{
		{FieldNup, DM_NUP},
		{FieldICMMethod, DM_ICMMETHOD},
		{FieldICMIntent, DM_ICMINTENT},
		{FieldMediaType, DM_MEDIATYPE},
		{FieldDitherType, DM_DITHERTYPE},
	}
)

// Copy copies the members named in fields from source, marking each of them
// present on dm. The source's own presence bits are not consulted. A nil
// source is a no-op.
//
// A form name that cannot be stored in dm's encoding is skipped and reported
// in the returned error; the other members are still copied.
func (dm *DevMode) Copy(source *DevMode, fields Fields) error {
	if dm == nil || source == nil {
		return nil
	}

	for _, m := range int16Members {
		if fields&m.bit == m.bit {
			v, _ := source.getInt16(m.field, m.bit)
			dm.setInt16(m.field, m.bit, v)
		}
	}

	var err error
	if fields&DM_FORMNAME == DM_FORMNAME {
		name, _ := source.GetFormName()
		if _, e := dm.SetFormName(name); e != nil {
			err = errors.Wrap(e, "copy form name")
		}
	}

	for _, m := range uint32Members {
		if fields&m.bit == m.bit {
			v, _ := source.getUint32(m.field, m.bit)
			dm.setUint32(m.field, m.bit, v)
		}
	}

	return err
}

// AreCompatible reports whether two DevModes were produced by the same driver
// with the same layout, so that one can be copied wholesale over the other.
func AreCompatible(a, b *DevMode) bool {
	if a == nil || b == nil {
		return false
	}
	return a.DriverVersion() == b.DriverVersion() &&
		a.SpecVersion() == b.SpecVersion() &&
		a.Size() == b.Size() &&
		a.DriverExtra() == b.DriverExtra()
}

// CompatibleCopy copies every byte of source from dmFields onward, including
// the driver-private data, when the two DevModes are compatible. Returns false
// and leaves dm untouched otherwise.
func (dm *DevMode) CompatibleCopy(source *DevMode) bool {
	if !AreCompatible(dm, source) {
		return false
	}
	start := source.offset(FieldFields)
	if start < len(source.buf) && start < len(dm.buf) {
		copy(dm.buf[start:], source.buf[start:])
	}
	return true
}

func (dm *DevMode) String() string {
	if dm == nil {
		return "<nil>"
	}

	s := []string{
		fmt.Sprintf("device name: %s", dm.GetDeviceName()),
		fmt.Sprintf("spec version: %#04x", dm.SpecVersion()),
		fmt.Sprintf("driver version: %#04x", dm.DriverVersion()),
		fmt.Sprintf("size: %d+%d", dm.Size(), dm.DriverExtra()),
		fmt.Sprintf("wide: %t", dm.wide),
		fmt.Sprintf("fields: %s", dm.Fields()),
	}
	if v, ok := dm.GetOrientation(); ok {
		s = append(s, fmt.Sprintf("orientation: %d", v))
	}
	if v, ok := dm.GetPaperSize(); ok {
		s = append(s, fmt.Sprintf("paper size: %d", v))
	}
	if v, ok := dm.GetPaperLength(); ok {
		s = append(s, fmt.Sprintf("paper length: %d", v))
	}
	if v, ok := dm.GetPaperWidth(); ok {
		s = append(s, fmt.Sprintf("paper width: %d", v))
	}
	if v, ok := dm.GetScale(); ok {
		s = append(s, fmt.Sprintf("scale: %d", v))
	}
	if v, ok := dm.GetCopies(); ok {
		s = append(s, fmt.Sprintf("copies: %d", v))
	}
	if v, ok := dm.GetDefaultSource(); ok {
		s = append(s, fmt.Sprintf("default source: %d", v))
	}
	if v, ok := dm.GetPrintQuality(); ok {
		s = append(s, fmt.Sprintf("print quality: %d", v))
	}
	if v, ok := dm.GetColor(); ok {
		s = append(s, fmt.Sprintf("color: %d", v))
	}
	if v, ok := dm.GetDuplex(); ok {
		s = append(s, fmt.Sprintf("duplex: %d", v))
	}
	if v, ok := dm.GetYResolution(); ok {
		s = append(s, fmt.Sprintf("y-resolution: %d", v))
	}
	if v, ok := dm.GetTTOption(); ok {
		s = append(s, fmt.Sprintf("TT option: %d", v))
	}
	if v, ok := dm.GetCollate(); ok {
		s = append(s, fmt.Sprintf("collate: %d", v))
	}
	if v, ok := dm.GetFormName(); ok {
		s = append(s, fmt.Sprintf("form name: %s", v))
	}
	if v, ok := dm.GetNup(); ok {
		s = append(s, fmt.Sprintf("n-up: %d", v))
	}
	if v, ok := dm.GetICMMethod(); ok {
		s = append(s, fmt.Sprintf("ICM method: %d", v))
	}
	if v, ok := dm.GetICMIntent(); ok {
		s = append(s, fmt.Sprintf("ICM intent: %d", v))
	}
	if v, ok := dm.GetMediaType(); ok {
		s = append(s, fmt.Sprintf("media type: %d", v))
	}
	if v, ok := dm.GetDitherType(); ok {
		s = append(s, fmt.Sprintf("dither type: %d", v))
	}
	return strings.Join(s, ", ")
}
