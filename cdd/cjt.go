/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package cdd

type CloudJobTicket struct {
	Version string             `json:"version" yaml:"version"`
	Print   PrintTicketSection `json:"print" yaml:"print"`
}

type PrintTicketSection struct {
	VendorTicketItem []VendorTicketItem         `json:"vendor_ticket_item" yaml:"vendor_ticket_item"`
	Color            *ColorTicketItem           `json:"color" yaml:"color"`
	Duplex           *DuplexTicketItem          `json:"duplex" yaml:"duplex"`
	PageOrientation  *PageOrientationTicketItem `json:"page_orientation" yaml:"page_orientation"`
	Copies           *CopiesTicketItem          `json:"copies" yaml:"copies"`
	DPI              *DPITicketItem             `json:"dpi" yaml:"dpi"`
	MediaSize        *MediaSizeTicketItem       `json:"media_size" yaml:"media_size"`
	Collate          *CollateTicketItem         `json:"collate" yaml:"collate"`
}

type VendorTicketItem struct {
	ID    string `json:"id" yaml:"id"`
	Value string `json:"value" yaml:"value"`
}

type ColorTicketItem struct {
	VendorID string    `json:"vendor_id" yaml:"vendor_id"`
	Type     ColorType `json:"type" yaml:"type"`
}

type DuplexTicketItem struct {
	Type DuplexType `json:"type" yaml:"type"`
}

type PageOrientationTicketItem struct {
	Type PageOrientationType `json:"type" yaml:"type"`
}

type CopiesTicketItem struct {
	Copies int32 `json:"copies" yaml:"copies"`
}

type DPITicketItem struct {
	HorizontalDPI int32  `json:"horizontal_dpi" yaml:"horizontal_dpi"`
	VerticalDPI   int32  `json:"vertical_dpi" yaml:"vertical_dpi"`
	VendorID      string `json:"vendor_id" yaml:"vendor_id"`
}

type MediaSizeTicketItem struct {
	WidthMicrons     int32  `json:"width_microns" yaml:"width_microns"`
	HeightMicrons    int32  `json:"height_microns" yaml:"height_microns"`
	IsContinuousFeed bool   `json:"is_continuous_feed" yaml:"is_continuous_feed"` // default = false
	VendorID         string `json:"vendor_id" yaml:"vendor_id"`
}

type CollateTicketItem struct {
	Collate bool `json:"collate" yaml:"collate"`
}
