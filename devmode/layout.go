/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package devmode

// Field identifies one member of the DEVMODE structure.
type Field int

const (
	FieldDeviceName Field = iota
	FieldSpecVersion
	FieldDriverVersion
	FieldSize
	FieldDriverExtra
	FieldFields
	FieldOrientation
	FieldPaperSize
	FieldPaperLength
	FieldPaperWidth
	FieldScale
	FieldCopies
	FieldDefaultSource
	FieldPrintQuality
	FieldColor
	FieldDuplex
	FieldYResolution
	FieldTTOption
	FieldCollate
	FieldFormName
	FieldLogPixels
	FieldBitsPerPel
	FieldPelsWidth
	FieldPelsHeight
	FieldNup
	FieldDisplayFrequency
	FieldICMMethod
	FieldICMIntent
	FieldMediaType
	FieldDitherType
	FieldReserved1
	FieldReserved2
	FieldPanningWidth
	FieldPanningHeight

	numFields
)

// fieldWidths holds the byte width of every fixed-size member. The two
// string members are sized by the encoding in newLayout.
var fieldWidths = [numFields]int{
	FieldSpecVersion:      2,
	FieldDriverVersion:    2,
	FieldSize:             2,
	FieldDriverExtra:      2,
	FieldFields:           4,
	FieldOrientation:      2,
	FieldPaperSize:        2,
	FieldPaperLength:      2,
	FieldPaperWidth:       2,
	FieldScale:            2,
	FieldCopies:           2,
	FieldDefaultSource:    2,
	FieldPrintQuality:     2,
	FieldColor:            2,
	FieldDuplex:           2,
	FieldYResolution:      2,
	FieldTTOption:         2,
	FieldCollate:          2,
	FieldLogPixels:        2,
	FieldBitsPerPel:       4,
	FieldPelsWidth:        4,
	FieldPelsHeight:       4,
	FieldNup:              4,
	FieldDisplayFrequency: 4,
	FieldICMMethod:        4,
	FieldICMIntent:        4,
	FieldMediaType:        4,
	FieldDitherType:       4,
	FieldReserved1:        4,
	FieldReserved2:        4,
	FieldPanningWidth:     4,
	FieldPanningHeight:    4,
}

// layout is the byte offset of every field for one encoding.
type layout struct {
	offsets [numFields]int
	widths  [numFields]int
	minSize int
}

var (
	narrowLayout = newLayout(false)
	wideLayout   = newLayout(true)
)

func newLayout(wide bool) *layout {
	l := layout{widths: fieldWidths}
	l.widths[FieldDeviceName] = CCHDEVICENAME * unitSize(wide)
	l.widths[FieldFormName] = CCHFORMNAME * unitSize(wide)

	offset := 0
	for f := Field(0); f < numFields; f++ {
		l.offsets[f] = offset
		offset += l.widths[f]
	}

	l.minSize = l.offsets[FieldDisplayFrequency]
	return &l
}

func layoutFor(wide bool) *layout {
	if wide {
		return wideLayout
	}
	return narrowLayout
}

// Offset returns the byte offset of f in a DEVMODE of the given encoding.
func Offset(f Field, wide bool) int {
	if f < 0 || f >= numFields {
		return -1
	}
	return layoutFor(wide).offsets[f]
}
