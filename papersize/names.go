/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package papersize

import "strings"

// Name identifies a paper size independently of any driver code.
type Name int

const (
	Unknown Name = iota
	ISOA0
	ISOA1
	ISOA10
	ISOA2
	ISOA3
	ISOA3Rotated
	ISOA3Extra
	ISOA4
	ISOA4Rotated
	ISOA4Extra
	ISOA5
	ISOA5Rotated
	ISOA5Extra
	ISOA6
	ISOA6Rotated
	ISOA7
	ISOA8
	ISOA9
	ISOB0
	ISOB1
	ISOB10
	ISOB2
	ISOB3
	ISOB4
	ISOB4Envelope
	ISOB5Envelope
	ISOB5Extra
	ISOB7
	ISOB8
	ISOB9
	ISOC0
	ISOC1
	ISOC10
	ISOC2
	ISOC3
	ISOC3Envelope
	ISOC4
	ISOC4Envelope
	ISOC5
	ISOC5Envelope
	ISOC6
	ISOC6Envelope
	ISOC6C5Envelope
	ISOC7
	ISOC8
	ISOC9
	ISODLEnvelope
	ISODLEnvelopeRotated
	ISOSRA3
	JapanQuadrupleHagakiPostcard
	JISB0
	JISB1
	JISB10
	JISB2
	JISB3
	JISB4
	JISB4Rotated
	JISB5
	JISB5Rotated
	JISB6
	JISB6Rotated
	JISB7
	JISB8
	JISB9
	JapanChou3Envelope
	JapanChou3EnvelopeRotated
	JapanChou4Envelope
	JapanChou4EnvelopeRotated
	JapanHagakiPostcard
	JapanHagakiPostcardRotated
	JapanKaku2Envelope
	JapanKaku2EnvelopeRotated
	JapanKaku3Envelope
	JapanKaku3EnvelopeRotated
	JapanYou4Envelope
	NorthAmerica10x11
	NorthAmerica10x14
	NorthAmerica11x17
	NorthAmerica9x11
	NorthAmericaArchitectureASheet
	NorthAmericaArchitectureBSheet
	NorthAmericaArchitectureCSheet
	NorthAmericaArchitectureDSheet
	NorthAmericaArchitectureESheet
	NorthAmericaCSheet
	NorthAmericaDSheet
	NorthAmericaESheet
	NorthAmericaExecutive
	NorthAmericaGermanLegalFanfold
	NorthAmericaGermanStandardFanfold
	NorthAmericaLegal
	NorthAmericaLegalExtra
	NorthAmericaLetter
	NorthAmericaLetterRotated
	NorthAmericaLetterExtra
	NorthAmericaLetterPlus
	NorthAmericaMonarchEnvelope
	NorthAmericaNote
	NorthAmericaNumber10Envelope
	NorthAmericaNumber10EnvelopeRotated
	NorthAmericaNumber9Envelope
	NorthAmericaNumber11Envelope
	NorthAmericaNumber12Envelope
	NorthAmericaNumber14Envelope
	NorthAmericaPersonalEnvelope
	NorthAmericaQuarto
	NorthAmericaStatement
	NorthAmericaSuperA
	NorthAmericaSuperB
	NorthAmericaTabloid
	NorthAmericaTabloidExtra
	OtherMetricA4Plus
	OtherMetricA3Plus
	OtherMetricFolio
	OtherMetricInviteEnvelope
	OtherMetricItalianEnvelope
	PRC1Envelope
	PRC1EnvelopeRotated
	PRC10Envelope
	PRC10EnvelopeRotated
	PRC16K
	PRC16KRotated
	PRC2Envelope
	PRC2EnvelopeRotated
	PRC32K
	PRC32KRotated
	PRC32KBig
	PRC3Envelope
	PRC3EnvelopeRotated
	PRC4Envelope
	PRC4EnvelopeRotated
	PRC5Envelope
	PRC5EnvelopeRotated
	PRC6Envelope
	PRC6EnvelopeRotated
	PRC7Envelope
	PRC7EnvelopeRotated
	PRC8Envelope
	PRC8EnvelopeRotated
	PRC9Envelope
	PRC9EnvelopeRotated
	Roll04Inch
	Roll06Inch
	Roll08Inch
	Roll12Inch
	Roll15Inch
	Roll18Inch
	Roll22Inch
	Roll24Inch
	Roll30Inch
	Roll36Inch
	Roll54Inch
	JapanDoubleHagakiPostcard
	JapanDoubleHagakiPostcardRotated
	JapanLPhoto
	Japan2LPhoto
	JapanYou1Envelope
	JapanYou2Envelope
	JapanYou3Envelope
	JapanYou4EnvelopeRotated
	JapanYou6Envelope
	JapanYou6EnvelopeRotated
	NorthAmerica4x6
	NorthAmerica4x8
	NorthAmerica5x7
	NorthAmerica8x10
	NorthAmerica10x12
	NorthAmerica14x17
	BusinessCard
	CreditCard

	numNames
)

var nameStrings = [numNames]string{
	Unknown:                             "Unknown",
	ISOA0:                               "ISOA0",
	ISOA1:                               "ISOA1",
	ISOA10:                              "ISOA10",
	ISOA2:                               "ISOA2",
	ISOA3:                               "ISOA3",
	ISOA3Rotated:                        "ISOA3Rotated",
	ISOA3Extra:                          "ISOA3Extra",
	ISOA4:                               "ISOA4",
	ISOA4Rotated:                        "ISOA4Rotated",
	ISOA4Extra:                          "ISOA4Extra",
	ISOA5:                               "ISOA5",
	ISOA5Rotated:                        "ISOA5Rotated",
	ISOA5Extra:                          "ISOA5Extra",
	ISOA6:                               "ISOA6",
	ISOA6Rotated:                        "ISOA6Rotated",
	ISOA7:                               "ISOA7",
	ISOA8:                               "ISOA8",
	ISOA9:                               "ISOA9",
	ISOB0:                               "ISOB0",
	ISOB1:                               "ISOB1",
	ISOB10:                              "ISOB10",
	ISOB2:                               "ISOB2",
	ISOB3:                               "ISOB3",
	ISOB4:                               "ISOB4",
	ISOB4Envelope:                       "ISOB4Envelope",
	ISOB5Envelope:                       "ISOB5Envelope",
	ISOB5Extra:                          "ISOB5Extra",
	ISOB7:                               "ISOB7",
	ISOB8:                               "ISOB8",
	ISOB9:                               "ISOB9",
	ISOC0:                               "ISOC0",
	ISOC1:                               "ISOC1",
	ISOC10:                              "ISOC10",
	ISOC2:                               "ISOC2",
	ISOC3:                               "ISOC3",
	ISOC3Envelope:                       "ISOC3Envelope",
	ISOC4:                               "ISOC4",
	ISOC4Envelope:                       "ISOC4Envelope",
	ISOC5:                               "ISOC5",
	ISOC5Envelope:                       "ISOC5Envelope",
	ISOC6:                               "ISOC6",
	ISOC6Envelope:                       "ISOC6Envelope",
	ISOC6C5Envelope:                     "ISOC6C5Envelope",
	ISOC7:                               "ISOC7",
	ISOC8:                               "ISOC8",
	ISOC9:                               "ISOC9",
	ISODLEnvelope:                       "ISODLEnvelope",
	ISODLEnvelopeRotated:                "ISODLEnvelopeRotated",
	ISOSRA3:                             "ISOSRA3",
	JapanQuadrupleHagakiPostcard:        "JapanQuadrupleHagakiPostcard",
	JISB0:                               "JISB0",
	JISB1:                               "JISB1",
	JISB10:                              "JISB10",
	JISB2:                               "JISB2",
	JISB3:                               "JISB3",
	JISB4:                               "JISB4",
	JISB4Rotated:                        "JISB4Rotated",
	JISB5:                               "JISB5",
	JISB5Rotated:                        "JISB5Rotated",
	JISB6:                               "JISB6",
	JISB6Rotated:                        "JISB6Rotated",
	JISB7:                               "JISB7",
	JISB8:                               "JISB8",
	JISB9:                               "JISB9",
	JapanChou3Envelope:                  "JapanChou3Envelope",
	JapanChou3EnvelopeRotated:           "JapanChou3EnvelopeRotated",
	JapanChou4Envelope:                  "JapanChou4Envelope",
	JapanChou4EnvelopeRotated:           "JapanChou4EnvelopeRotated",
	JapanHagakiPostcard:                 "JapanHagakiPostcard",
	JapanHagakiPostcardRotated:          "JapanHagakiPostcardRotated",
	JapanKaku2Envelope:                  "JapanKaku2Envelope",
	JapanKaku2EnvelopeRotated:           "JapanKaku2EnvelopeRotated",
	JapanKaku3Envelope:                  "JapanKaku3Envelope",
	JapanKaku3EnvelopeRotated:           "JapanKaku3EnvelopeRotated",
	JapanYou4Envelope:                   "JapanYou4Envelope",
	NorthAmerica10x11:                   "NorthAmerica10x11",
	NorthAmerica10x14:                   "NorthAmerica10x14",
	NorthAmerica11x17:                   "NorthAmerica11x17",
	NorthAmerica9x11:                    "NorthAmerica9x11",
	NorthAmericaArchitectureASheet:      "NorthAmericaArchitectureASheet",
	NorthAmericaArchitectureBSheet:      "NorthAmericaArchitectureBSheet",
	NorthAmericaArchitectureCSheet:      "NorthAmericaArchitectureCSheet",
	NorthAmericaArchitectureDSheet:      "NorthAmericaArchitectureDSheet",
	NorthAmericaArchitectureESheet:      "NorthAmericaArchitectureESheet",
	NorthAmericaCSheet:                  "NorthAmericaCSheet",
	NorthAmericaDSheet:                  "NorthAmericaDSheet",
	NorthAmericaESheet:                  "NorthAmericaESheet",
	NorthAmericaExecutive:               "NorthAmericaExecutive",
	NorthAmericaGermanLegalFanfold:      "NorthAmericaGermanLegalFanfold",
	NorthAmericaGermanStandardFanfold:   "NorthAmericaGermanStandardFanfold",
	NorthAmericaLegal:                   "NorthAmericaLegal",
	NorthAmericaLegalExtra:              "NorthAmericaLegalExtra",
	NorthAmericaLetter:                  "NorthAmericaLetter",
	NorthAmericaLetterRotated:           "NorthAmericaLetterRotated",
	NorthAmericaLetterExtra:             "NorthAmericaLetterExtra",
	NorthAmericaLetterPlus:              "NorthAmericaLetterPlus",
	NorthAmericaMonarchEnvelope:         "NorthAmericaMonarchEnvelope",
	NorthAmericaNote:                    "NorthAmericaNote",
	NorthAmericaNumber10Envelope:        "NorthAmericaNumber10Envelope",
	NorthAmericaNumber10EnvelopeRotated: "NorthAmericaNumber10EnvelopeRotated",
	NorthAmericaNumber9Envelope:         "NorthAmericaNumber9Envelope",
	NorthAmericaNumber11Envelope:        "NorthAmericaNumber11Envelope",
	NorthAmericaNumber12Envelope:        "NorthAmericaNumber12Envelope",
	NorthAmericaNumber14Envelope:        "NorthAmericaNumber14Envelope",
	NorthAmericaPersonalEnvelope:        "NorthAmericaPersonalEnvelope",
	NorthAmericaQuarto:                  "NorthAmericaQuarto",
	NorthAmericaStatement:               "NorthAmericaStatement",
	NorthAmericaSuperA:                  "NorthAmericaSuperA",
	NorthAmericaSuperB:                  "NorthAmericaSuperB",
	NorthAmericaTabloid:                 "NorthAmericaTabloid",
	NorthAmericaTabloidExtra:            "NorthAmericaTabloidExtra",
	OtherMetricA4Plus:                   "OtherMetricA4Plus",
	OtherMetricA3Plus:                   "OtherMetricA3Plus",
	OtherMetricFolio:                    "OtherMetricFolio",
	OtherMetricInviteEnvelope:           "OtherMetricInviteEnvelope",
	OtherMetricItalianEnvelope:          "OtherMetricItalianEnvelope",
	PRC1Envelope:                        "PRC1Envelope",
	PRC1EnvelopeRotated:                 "PRC1EnvelopeRotated",
	PRC10Envelope:                       "PRC10Envelope",
	PRC10EnvelopeRotated:                "PRC10EnvelopeRotated",
	PRC16K:                              "PRC16K",
	PRC16KRotated:                       "PRC16KRotated",
	PRC2Envelope:                        "PRC2Envelope",
	PRC2EnvelopeRotated:                 "PRC2EnvelopeRotated",
	PRC32K:                              "PRC32K",
	PRC32KRotated:                       "PRC32KRotated",
	PRC32KBig:                           "PRC32KBig",
	PRC3Envelope:                        "PRC3Envelope",
	PRC3EnvelopeRotated:                 "PRC3EnvelopeRotated",
	PRC4Envelope:                        "PRC4Envelope",
	PRC4EnvelopeRotated:                 "PRC4EnvelopeRotated",
	PRC5Envelope:                        "PRC5Envelope",
	PRC5EnvelopeRotated:                 "PRC5EnvelopeRotated",
	PRC6Envelope:                        "PRC6Envelope",
	PRC6EnvelopeRotated:                 "PRC6EnvelopeRotated",
	PRC7Envelope:                        "PRC7Envelope",
	PRC7EnvelopeRotated:                 "PRC7EnvelopeRotated",
	PRC8Envelope:                        "PRC8Envelope",
	PRC8EnvelopeRotated:                 "PRC8EnvelopeRotated",
	PRC9Envelope:                        "PRC9Envelope",
	PRC9EnvelopeRotated:                 "PRC9EnvelopeRotated",
	Roll04Inch:                          "Roll04Inch",
	Roll06Inch:                          "Roll06Inch",
	Roll08Inch:                          "Roll08Inch",
	Roll12Inch:                          "Roll12Inch",
	Roll15Inch:                          "Roll15Inch",
	Roll18Inch:                          "Roll18Inch",
	Roll22Inch:                          "Roll22Inch",
	Roll24Inch:                          "Roll24Inch",
	Roll30Inch:                          "Roll30Inch",
	Roll36Inch:                          "Roll36Inch",
	Roll54Inch:                          "Roll54Inch",
	JapanDoubleHagakiPostcard:           "JapanDoubleHagakiPostcard",
	JapanDoubleHagakiPostcardRotated:    "JapanDoubleHagakiPostcardRotated",
	JapanLPhoto:                         "JapanLPhoto",
	Japan2LPhoto:                        "Japan2LPhoto",
	JapanYou1Envelope:                   "JapanYou1Envelope",
	JapanYou2Envelope:                   "JapanYou2Envelope",
	JapanYou3Envelope:                   "JapanYou3Envelope",
	JapanYou4EnvelopeRotated:            "JapanYou4EnvelopeRotated",
	JapanYou6Envelope:                   "JapanYou6Envelope",
	JapanYou6EnvelopeRotated:            "JapanYou6EnvelopeRotated",
	NorthAmerica4x6:                     "NorthAmerica4x6",
	NorthAmerica4x8:                     "NorthAmerica4x8",
	NorthAmerica5x7:                     "NorthAmerica5x7",
	NorthAmerica8x10:                    "NorthAmerica8x10",
	NorthAmerica10x12:                   "NorthAmerica10x12",
	NorthAmerica14x17:                   "NorthAmerica14x17",
	BusinessCard:                        "BusinessCard",
	CreditCard:                          "CreditCard",
}

var namesByString map[string]Name

func init() {
	namesByString = make(map[string]Name, numNames)
	for n, s := range nameStrings {
		namesByString[strings.ToLower(s)] = Name(n)
	}
}

func (n Name) String() string {
	if n < 0 || n >= numNames {
		return "Unknown"
	}
	return nameStrings[n]
}

// ParseName looks up a Name by its String form, ignoring case.
func ParseName(s string) (Name, bool) {
	n, ok := namesByString[strings.ToLower(s)]
	return n, ok
}

// Names returns every Name except Unknown, in declaration order.
func Names() []Name {
	names := make([]Name, 0, numNames-1)
	for n := Unknown + 1; n < numNames; n++ {
		names = append(names, n)
	}
	return names
}
