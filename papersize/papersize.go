/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

// Package papersize translates between neutral paper size names and the
// legacy numeric paper codes stored in a DEVMODE.
//
// The mapping is not a bijection. Several legacy codes (small, transverse
// and "plus" variants) have no neutral name of their own and translate to
// the closest neutral name, which translates back to a different code.
package papersize

import "github.com/google/cloud-print-devmode/devmode"

// legacyCodeByName is the forward table. Names missing from it have no
// legacy code.
var legacyCodeByName = map[Name]int16{
	NorthAmericaLetter:                devmode.DMPAPER_LETTER,
	NorthAmericaTabloid:               devmode.DMPAPER_TABLOID,
	NorthAmericaLegal:                 devmode.DMPAPER_LEGAL,
	NorthAmericaStatement:             devmode.DMPAPER_STATEMENT,
	NorthAmericaExecutive:             devmode.DMPAPER_EXECUTIVE,
	ISOA3:                             devmode.DMPAPER_A3,
	ISOA4:                             devmode.DMPAPER_A4,
	ISOA5:                             devmode.DMPAPER_A5,
	JISB4:                             devmode.DMPAPER_B4,
	JISB5:                             devmode.DMPAPER_B5,
	OtherMetricFolio:                  devmode.DMPAPER_FOLIO,
	NorthAmericaQuarto:                devmode.DMPAPER_QUARTO,
	NorthAmerica10x14:                 devmode.DMPAPER_10X14,
	NorthAmerica11x17:                 devmode.DMPAPER_11X17,
	NorthAmericaNote:                  devmode.DMPAPER_NOTE,
	NorthAmericaNumber9Envelope:       devmode.DMPAPER_ENV_9,
	NorthAmericaNumber10Envelope:      devmode.DMPAPER_ENV_10,
	NorthAmericaNumber11Envelope:      devmode.DMPAPER_ENV_11,
	NorthAmericaNumber12Envelope:      devmode.DMPAPER_ENV_12,
	NorthAmericaNumber14Envelope:      devmode.DMPAPER_ENV_14,
	NorthAmericaCSheet:                devmode.DMPAPER_CSHEET,
	NorthAmericaDSheet:                devmode.DMPAPER_DSHEET,
	NorthAmericaESheet:                devmode.DMPAPER_ESHEET,
	ISODLEnvelope:                     devmode.DMPAPER_ENV_DL,
	ISOC5Envelope:                     devmode.DMPAPER_ENV_C5,
	ISOC3Envelope:                     devmode.DMPAPER_ENV_C3,
	ISOC4Envelope:                     devmode.DMPAPER_ENV_C4,
	ISOC6Envelope:                     devmode.DMPAPER_ENV_C6,
	ISOC6C5Envelope:                   devmode.DMPAPER_ENV_C65,
	ISOB4Envelope:                     devmode.DMPAPER_ENV_B4,
	ISOB5Envelope:                     devmode.DMPAPER_ENV_B5,
	OtherMetricItalianEnvelope:        devmode.DMPAPER_ENV_ITALY,
	NorthAmericaMonarchEnvelope:       devmode.DMPAPER_ENV_MONARCH,
	NorthAmericaPersonalEnvelope:      devmode.DMPAPER_ENV_PERSONAL,
	NorthAmericaGermanStandardFanfold: devmode.DMPAPER_FANFOLD_STD_GERMAN,
	NorthAmericaGermanLegalFanfold:    devmode.DMPAPER_FANFOLD_LGL_GERMAN,
	ISOB4:                             devmode.DMPAPER_ISO_B4,
	JapanHagakiPostcard:               devmode.DMPAPER_JAPANESE_POSTCARD,
	NorthAmerica9x11:                  devmode.DMPAPER_9X11,
	NorthAmerica10x11:                 devmode.DMPAPER_10X11,
	OtherMetricInviteEnvelope:         devmode.DMPAPER_ENV_INVITE,
	NorthAmericaLetterExtra:           devmode.DMPAPER_LETTER_EXTRA,
	NorthAmericaLegalExtra:            devmode.DMPAPER_LEGAL_EXTRA,
	NorthAmericaTabloidExtra:          devmode.DMPAPER_TABLOID_EXTRA,
	ISOA4Extra:                        devmode.DMPAPER_A4_EXTRA,
	NorthAmericaSuperA:                devmode.DMPAPER_A_PLUS,
	NorthAmericaSuperB:                devmode.DMPAPER_B_PLUS,
	NorthAmericaLetterPlus:            devmode.DMPAPER_LETTER_PLUS,
	OtherMetricA4Plus:                 devmode.DMPAPER_A4_PLUS,
	ISOA3Extra:                        devmode.DMPAPER_A3_EXTRA,
	ISOA5Extra:                        devmode.DMPAPER_A5_EXTRA,
	ISOB5Extra:                        devmode.DMPAPER_B5_EXTRA,
	ISOA2:                             devmode.DMPAPER_A2,
	JapanDoubleHagakiPostcard:         devmode.DMPAPER_DBL_JAPANESE_POSTCARD,
	ISOA6:                             devmode.DMPAPER_A6,
	JapanKaku2Envelope:                devmode.DMPAPER_JENV_KAKU2,
	JapanKaku3Envelope:                devmode.DMPAPER_JENV_KAKU3,
	JapanChou3Envelope:                devmode.DMPAPER_JENV_CHOU3,
	JapanChou4Envelope:                devmode.DMPAPER_JENV_CHOU4,
	NorthAmericaLetterRotated:         devmode.DMPAPER_LETTER_ROTATED,
	ISOA3Rotated:                      devmode.DMPAPER_A3_ROTATED,
	ISOA4Rotated:                      devmode.DMPAPER_A4_ROTATED,
	ISOA5Rotated:                      devmode.DMPAPER_A5_ROTATED,
	JISB4Rotated:                      devmode.DMPAPER_B4_JIS_ROTATED,
	JISB5Rotated:                      devmode.DMPAPER_B5_JIS_ROTATED,
	JapanHagakiPostcardRotated:        devmode.DMPAPER_JAPANESE_POSTCARD_ROTATED,
	JapanDoubleHagakiPostcardRotated:  devmode.DMPAPER_DBL_JAPANESE_POSTCARD_ROTATED,
	ISOA6Rotated:                      devmode.DMPAPER_A6_ROTATED,
	JapanKaku2EnvelopeRotated:         devmode.DMPAPER_JENV_KAKU2_ROTATED,
	JapanKaku3EnvelopeRotated:         devmode.DMPAPER_JENV_KAKU3_ROTATED,
	JapanChou3EnvelopeRotated:         devmode.DMPAPER_JENV_CHOU3_ROTATED,
	JapanChou4EnvelopeRotated:         devmode.DMPAPER_JENV_CHOU4_ROTATED,
	JISB6:                             devmode.DMPAPER_B6_JIS,
	JISB6Rotated:                      devmode.DMPAPER_B6_JIS_ROTATED,
	JapanYou4Envelope:                 devmode.DMPAPER_JENV_YOU4,
	JapanYou4EnvelopeRotated:          devmode.DMPAPER_JENV_YOU4_ROTATED,
	PRC16K:                            devmode.DMPAPER_P16K,
	PRC32K:                            devmode.DMPAPER_P32K,
	PRC32KBig:                         devmode.DMPAPER_P32KBIG,
	PRC1Envelope:                      devmode.DMPAPER_PENV_1,
	PRC2Envelope:                      devmode.DMPAPER_PENV_2,
	PRC3Envelope:                      devmode.DMPAPER_PENV_3,
	PRC4Envelope:                      devmode.DMPAPER_PENV_4,
	PRC5Envelope:                      devmode.DMPAPER_PENV_5,
	PRC6Envelope:                      devmode.DMPAPER_PENV_6,
	PRC7Envelope:                      devmode.DMPAPER_PENV_7,
	PRC8Envelope:                      devmode.DMPAPER_PENV_8,
	PRC9Envelope:                      devmode.DMPAPER_PENV_9,
	PRC10Envelope:                     devmode.DMPAPER_PENV_10,
	PRC16KRotated:                     devmode.DMPAPER_P16K_ROTATED,
	PRC32KRotated:                     devmode.DMPAPER_P32K_ROTATED,
	PRC1EnvelopeRotated:               devmode.DMPAPER_PENV_1_ROTATED,
	PRC2EnvelopeRotated:               devmode.DMPAPER_PENV_2_ROTATED,
	PRC3EnvelopeRotated:               devmode.DMPAPER_PENV_3_ROTATED,
	PRC4EnvelopeRotated:               devmode.DMPAPER_PENV_4_ROTATED,
	PRC5EnvelopeRotated:               devmode.DMPAPER_PENV_5_ROTATED,
	PRC6EnvelopeRotated:               devmode.DMPAPER_PENV_6_ROTATED,
	PRC7EnvelopeRotated:               devmode.DMPAPER_PENV_7_ROTATED,
	PRC8EnvelopeRotated:               devmode.DMPAPER_PENV_8_ROTATED,
	PRC9EnvelopeRotated:               devmode.DMPAPER_PENV_9_ROTATED,
	PRC10EnvelopeRotated:              devmode.DMPAPER_PENV_10_ROTATED,
}

// aliases are legacy codes with no neutral name of their own.
var aliases = map[int16]Name{
	devmode.DMPAPER_LETTERSMALL:             NorthAmericaLetter,
	devmode.DMPAPER_LEDGER:                  NorthAmericaTabloid,
	devmode.DMPAPER_A4SMALL:                 ISOA4,
	devmode.DMPAPER_LETTER_TRANSVERSE:       NorthAmericaLetterRotated,
	devmode.DMPAPER_A4_TRANSVERSE:           ISOA4Rotated,
	devmode.DMPAPER_LETTER_EXTRA_TRANSVERSE: NorthAmericaLetterExtra,
	devmode.DMPAPER_A5_TRANSVERSE:           ISOA5Rotated,
	// The driver may mean the ISO B5 here.
	devmode.DMPAPER_B5_TRANSVERSE:       JISB5Rotated,
	devmode.DMPAPER_A3_TRANSVERSE:       ISOA3Rotated,
	devmode.DMPAPER_A3_EXTRA_TRANSVERSE: ISOA3Extra,
}

var nameByLegacyCode map[int16]Name

func init() {
	nameByLegacyCode = make(map[int16]Name, len(legacyCodeByName)+len(aliases))
	for name, code := range legacyCodeByName {
		nameByLegacyCode[code] = name
	}
	for code, name := range aliases {
		nameByLegacyCode[code] = name
	}
}

// ToLegacyCode returns the legacy paper code for name, or false when name
// has none.
func ToLegacyCode(name Name) (int16, bool) {
	code, ok := legacyCodeByName[name]
	return code, ok
}

// ToNeutralSize returns the neutral name for a legacy paper code, or false
// when the code is unknown. Codes 12 and 13 are reported as JIS sizes even
// though some drivers mean ISO B4 and B5.
func ToNeutralSize(code int16) (Name, bool) {
	name, ok := nameByLegacyCode[code]
	return name, ok
}

// IsCustomCode reports whether code is in the driver defined range.
func IsCustomCode(code int16) bool {
	return code >= devmode.DMPAPER_USER
}
