/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package devcaps

import (
	"strconv"
	"strings"
)

// Capability is a DeviceCapabilities query kind.
type Capability uint16

const (
	DC_FIELDS            Capability = 1
	DC_PAPERS            Capability = 2
	DC_PAPERSIZE         Capability = 3
	DC_MINEXTENT         Capability = 4
	DC_MAXEXTENT         Capability = 5
	DC_BINS              Capability = 6
	DC_DUPLEX            Capability = 7
	DC_SIZE              Capability = 8
	DC_EXTRA             Capability = 9
	DC_VERSION           Capability = 10
	DC_DRIVER            Capability = 11
	DC_BINNAMES          Capability = 12
	DC_ENUMRESOLUTIONS   Capability = 13
	DC_FILEDEPENDENCIES  Capability = 14
	DC_TRUETYPE          Capability = 15
	DC_PAPERNAMES        Capability = 16
	DC_ORIENTATION       Capability = 17
	DC_COPIES            Capability = 18
	DC_BINADJUST         Capability = 19
	DC_EMF_COMPLAINT     Capability = 20
	DC_DATATYPE_PRODUCED Capability = 21
	DC_COLLATE           Capability = 22
	DC_MANUFACTURER      Capability = 23
	DC_MODEL             Capability = 24
	DC_PERSONALITY       Capability = 25
	DC_PRINTRATE         Capability = 26
	DC_PRINTRATEUNIT     Capability = 27
	DC_PRINTERMEM        Capability = 28
	DC_MEDIAREADY        Capability = 29
	DC_STAPLE            Capability = 30
	DC_PRINTRATEPPM      Capability = 31
	DC_COLORDEVICE       Capability = 32
	DC_NUP               Capability = 33
	DC_MEDIATYPENAMES    Capability = 34
	DC_MEDIATYPES        Capability = 35
)

// Item sizes of array capabilities, in bytes.
const (
	wordSize          = 2
	dwordSize         = 4
	pointSize         = 8
	paperNameSize     = 64 * 2
	binNameSize       = 24 * 2
	mediaTypeNameSize = 64 * 2
)

var capabilityNames = map[Capability]string{
	DC_FIELDS:            "fields",
	DC_PAPERS:            "papers",
	DC_PAPERSIZE:         "paper-size",
	DC_MINEXTENT:         "min-extent",
	DC_MAXEXTENT:         "max-extent",
	DC_BINS:              "bins",
	DC_DUPLEX:            "duplex",
	DC_SIZE:              "size",
	DC_EXTRA:             "extra",
	DC_VERSION:           "version",
	DC_DRIVER:            "driver",
	DC_BINNAMES:          "bin-names",
	DC_ENUMRESOLUTIONS:   "resolutions",
	DC_FILEDEPENDENCIES:  "file-dependencies",
	DC_TRUETYPE:          "truetype",
	DC_PAPERNAMES:        "paper-names",
	DC_ORIENTATION:       "orientation",
	DC_COPIES:            "copies",
	DC_BINADJUST:         "bin-adjust",
	DC_EMF_COMPLAINT:     "emf-compliant",
	DC_DATATYPE_PRODUCED: "datatype-produced",
	DC_COLLATE:           "collate",
	DC_MANUFACTURER:      "manufacturer",
	DC_MODEL:             "model",
	DC_PERSONALITY:       "personality",
	DC_PRINTRATE:         "print-rate",
	DC_PRINTRATEUNIT:     "print-rate-unit",
	DC_PRINTERMEM:        "printer-mem",
	DC_MEDIAREADY:        "media-ready",
	DC_STAPLE:            "staple",
	DC_PRINTRATEPPM:      "print-rate-ppm",
	DC_COLORDEVICE:       "color-device",
	DC_NUP:               "nup",
	DC_MEDIATYPENAMES:    "media-type-names",
	DC_MEDIATYPES:        "media-types",
}

func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return "Capability(" + strconv.Itoa(int(c)) + ")"
}

// ParseCapability accepts the names printed by Capability.String.
func ParseCapability(s string) (Capability, bool) {
	s = strings.ToLower(s)
	for c, name := range capabilityNames {
		if name == s {
			return c, true
		}
	}
	return 0, false
}
