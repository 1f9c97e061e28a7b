// Copyright 2015 Google Inc. All rights reserved.

// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

package lib

const (
	// ShortName is the name of the utility binary.
	ShortName = "devmode-util"

	// ToolName is the human-readable name of the utility.
	ToolName = "DEVMODE and device capability utility"
)

// BuildDate is set at link time with -ldflags "-X ...lib.BuildDate=...".
var BuildDate = "DEV"
