/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package devmode

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// fieldNames holds the bits Copy understands, in mask order.
var fieldNames = []struct {
	bit  Fields
	name string
}{
	{DM_ORIENTATION, "orientation"},
	{DM_PAPERSIZE, "paper-size"},
	{DM_PAPERLENGTH, "paper-length"},
	{DM_PAPERWIDTH, "paper-width"},
	{DM_SCALE, "scale"},
	{DM_NUP, "nup"},
	{DM_COPIES, "copies"},
	{DM_DEFAULTSOURCE, "default-source"},
	{DM_PRINTQUALITY, "print-quality"},
	{DM_COLOR, "color"},
	{DM_DUPLEX, "duplex"},
	{DM_YRESOLUTION, "y-resolution"},
	{DM_TTOPTION, "tt-option"},
	{DM_COLLATE, "collate"},
	{DM_FORMNAME, "form-name"},
	{DM_ICMMETHOD, "icm-method"},
	{DM_ICMINTENT, "icm-intent"},
	{DM_MEDIATYPE, "media-type"},
	{DM_DITHERTYPE, "dither-type"},
}

// DM_PRINTER is every print-related member.
const DM_PRINTER = DM_ORIENTATION | DM_PAPERSIZE | DM_PAPERLENGTH | DM_PAPERWIDTH |
	DM_SCALE | DM_NUP | DM_COPIES | DM_DEFAULTSOURCE | DM_PRINTQUALITY | DM_COLOR |
	DM_DUPLEX | DM_YRESOLUTION | DM_TTOPTION | DM_COLLATE | DM_FORMNAME |
	DM_ICMMETHOD | DM_ICMINTENT | DM_MEDIATYPE | DM_DITHERTYPE

// String lists the named bits of f joined by commas. Unnamed bits are shown
// as one hexadecimal remainder.
func (f Fields) String() string {
	var names []string
	rest := f
	for _, n := range fieldNames {
		if f&n.bit != 0 {
			names = append(names, n.name)
			rest &^= n.bit
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("%#x", uint32(rest)))
	}
	return strings.Join(names, ",")
}

// ParseFields reads a comma-separated list of member names, as written by
// Fields.String. "all" names every print-related member.
func ParseFields(s string) (Fields, error) {
	var f Fields
	for _, name := range strings.Split(s, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if name == "all" {
			f |= DM_PRINTER
			continue
		}
		found := false
		for _, n := range fieldNames {
			if n.name == name {
				f |= n.bit
				found = true
				break
			}
		}
		if !found {
			return 0, errors.Errorf("unknown DEVMODE member %q", name)
		}
	}
	return f, nil
}
