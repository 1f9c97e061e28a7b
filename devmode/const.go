/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

package devmode

// Fields is the DEVMODE dmFields presence mask.
type Fields uint32

// dmFields bits.
const (
	DM_ORIENTATION        Fields = 0x00000001
	DM_PAPERSIZE          Fields = 0x00000002
	DM_PAPERLENGTH        Fields = 0x00000004
	DM_PAPERWIDTH         Fields = 0x00000008
	DM_SCALE              Fields = 0x00000010
	DM_POSITION           Fields = 0x00000020
	DM_NUP                Fields = 0x00000040
	DM_DISPLAYORIENTATION Fields = 0x00000080
	DM_COPIES             Fields = 0x00000100
	DM_DEFAULTSOURCE      Fields = 0x00000200
	DM_PRINTQUALITY       Fields = 0x00000400
	DM_COLOR              Fields = 0x00000800
	DM_DUPLEX             Fields = 0x00001000
	DM_YRESOLUTION        Fields = 0x00002000
	DM_TTOPTION           Fields = 0x00004000
	DM_COLLATE            Fields = 0x00008000
	DM_FORMNAME           Fields = 0x00010000
	DM_LOGPIXELS          Fields = 0x00020000
	DM_BITSPERPEL         Fields = 0x00040000
	DM_PELSWIDTH          Fields = 0x00080000
	DM_PELSHEIGHT         Fields = 0x00100000
	DM_DISPLAYFLAGS       Fields = 0x00200000
	DM_DISPLAYFREQUENCY   Fields = 0x00400000
	DM_ICMMETHOD          Fields = 0x00800000
	DM_ICMINTENT          Fields = 0x01000000
	DM_MEDIATYPE          Fields = 0x02000000
	DM_DITHERTYPE         Fields = 0x04000000
	DM_PANNINGWIDTH       Fields = 0x08000000
	DM_PANNINGHEIGHT      Fields = 0x10000000
	DM_DISPLAYFIXEDOUTPUT Fields = 0x20000000
)

// DEVMODE header constants.
const (
	CCHDEVICENAME = 32
	CCHFORMNAME   = 32

	DM_SPECVERSION uint16 = 0x0401

	// Sizes of a DEVMODE up to and including dmNup. Anything smaller is not
	// a DEVMODE this package understands.
	MinSizeNarrow = 120
	MinSizeWide   = 184
)

// dmOrientation values.
const (
	DMORIENT_PORTRAIT  int16 = 1
	DMORIENT_LANDSCAPE int16 = 2
)

// dmColor values.
const (
	DMCOLOR_MONOCHROME int16 = 1
	DMCOLOR_COLOR      int16 = 2
)

// dmDuplex values.
const (
	DMDUP_SIMPLEX    int16 = 1
	DMDUP_VERTICAL   int16 = 2
	DMDUP_HORIZONTAL int16 = 3
)

// dmCollate values.
const (
	DMCOLLATE_FALSE int16 = 0
	DMCOLLATE_TRUE  int16 = 1
)

// dmNup values.
const (
	DMNUP_SYSTEM uint32 = 1
	DMNUP_ONEUP  uint32 = 2
)

// dmPrintQuality values. Positive values are DPI.
const (
	DMRES_DRAFT  int16 = -1
	DMRES_LOW    int16 = -2
	DMRES_MEDIUM int16 = -3
	DMRES_HIGH   int16 = -4
)

// dmTTOption values.
const (
	DMTT_BITMAP           int16 = 1
	DMTT_DOWNLOAD         int16 = 2
	DMTT_SUBDEV           int16 = 3
	DMTT_DOWNLOAD_OUTLINE int16 = 4
)

// dmICMMethod values.
const (
	DMICMMETHOD_NONE   uint32 = 1
	DMICMMETHOD_SYSTEM uint32 = 2
	DMICMMETHOD_DRIVER uint32 = 3
	DMICMMETHOD_DEVICE uint32 = 4
	DMICMMETHOD_USER   uint32 = 256
)

// dmICMIntent values.
const (
	DMICM_SATURATE         uint32 = 1
	DMICM_CONTRAST         uint32 = 2
	DMICM_COLORIMETRIC     uint32 = 3
	DMICM_ABS_COLORIMETRIC uint32 = 4
	DMICM_USER             uint32 = 256
)

// dmMediaType values.
const (
	DMMEDIA_STANDARD     uint32 = 1
	DMMEDIA_TRANSPARENCY uint32 = 2
	DMMEDIA_GLOSSY       uint32 = 3
	DMMEDIA_USER         uint32 = 256
)

// dmDitherType values.
const (
	DMDITHER_NONE           uint32 = 1
	DMDITHER_COARSE         uint32 = 2
	DMDITHER_FINE           uint32 = 3
	DMDITHER_LINEART        uint32 = 4
	DMDITHER_ERRORDIFFUSION uint32 = 5
	DMDITHER_RESERVED6      uint32 = 6
	DMDITHER_RESERVED7      uint32 = 7
	DMDITHER_RESERVED8      uint32 = 8
	DMDITHER_RESERVED9      uint32 = 9
	DMDITHER_GRAYSCALE      uint32 = 10
	DMDITHER_USER           uint32 = 256
)

// dmDefaultSource values.
const (
	DMBIN_UPPER         int16 = 1
	DMBIN_ONLYONE       int16 = 1
	DMBIN_LOWER         int16 = 2
	DMBIN_MIDDLE        int16 = 3
	DMBIN_MANUAL        int16 = 4
	DMBIN_ENVELOPE      int16 = 5
	DMBIN_ENVMANUAL     int16 = 6
	DMBIN_AUTO          int16 = 7
	DMBIN_TRACTOR       int16 = 8
	DMBIN_SMALLFMT      int16 = 9
	DMBIN_LARGEFMT      int16 = 10
	DMBIN_LARGECAPACITY int16 = 11
	DMBIN_CASSETTE      int16 = 14
	DMBIN_FORMSOURCE    int16 = 15
	DMBIN_USER          int16 = 256
)

// dmPaperSize values.
const (
	DMPAPER_LETTER                        = 1
	DMPAPER_LETTERSMALL                   = 2
	DMPAPER_TABLOID                       = 3
	DMPAPER_LEDGER                        = 4
	DMPAPER_LEGAL                         = 5
	DMPAPER_STATEMENT                     = 6
	DMPAPER_EXECUTIVE                     = 7
	DMPAPER_A3                            = 8
	DMPAPER_A4                            = 9
	DMPAPER_A4SMALL                       = 10
	DMPAPER_A5                            = 11
	DMPAPER_B4                            = 12
	DMPAPER_B5                            = 13
	DMPAPER_FOLIO                         = 14
	DMPAPER_QUARTO                        = 15
	DMPAPER_10X14                         = 16
	DMPAPER_11X17                         = 17
	DMPAPER_NOTE                          = 18
	DMPAPER_ENV_9                         = 19
	DMPAPER_ENV_10                        = 20
	DMPAPER_ENV_11                        = 21
	DMPAPER_ENV_12                        = 22
	DMPAPER_ENV_14                        = 23
	DMPAPER_CSHEET                        = 24
	DMPAPER_DSHEET                        = 25
	DMPAPER_ESHEET                        = 26
	DMPAPER_ENV_DL                        = 27
	DMPAPER_ENV_C5                        = 28
	DMPAPER_ENV_C3                        = 29
	DMPAPER_ENV_C4                        = 30
	DMPAPER_ENV_C6                        = 31
	DMPAPER_ENV_C65                       = 32
	DMPAPER_ENV_B4                        = 33
	DMPAPER_ENV_B5                        = 34
	DMPAPER_ENV_B6                        = 35
	DMPAPER_ENV_ITALY                     = 36
	DMPAPER_ENV_MONARCH                   = 37
	DMPAPER_ENV_PERSONAL                  = 38
	DMPAPER_FANFOLD_US                    = 39
	DMPAPER_FANFOLD_STD_GERMAN            = 40
	DMPAPER_FANFOLD_LGL_GERMAN            = 41
	DMPAPER_ISO_B4                        = 42
	DMPAPER_JAPANESE_POSTCARD             = 43
	DMPAPER_9X11                          = 44
	DMPAPER_10X11                         = 45
	DMPAPER_15X11                         = 46
	DMPAPER_ENV_INVITE                    = 47
	DMPAPER_RESERVED_48                   = 48
	DMPAPER_RESERVED_49                   = 49
	DMPAPER_LETTER_EXTRA                  = 50
	DMPAPER_LEGAL_EXTRA                   = 51
	DMPAPER_TABLOID_EXTRA                 = 52
	DMPAPER_A4_EXTRA                      = 53
	DMPAPER_LETTER_TRANSVERSE             = 54
	DMPAPER_A4_TRANSVERSE                 = 55
	DMPAPER_LETTER_EXTRA_TRANSVERSE       = 56
	DMPAPER_A_PLUS                        = 57
	DMPAPER_B_PLUS                        = 58
	DMPAPER_LETTER_PLUS                   = 59
	DMPAPER_A4_PLUS                       = 60
	DMPAPER_A5_TRANSVERSE                 = 61
	DMPAPER_B5_TRANSVERSE                 = 62
	DMPAPER_A3_EXTRA                      = 63
	DMPAPER_A5_EXTRA                      = 64
	DMPAPER_B5_EXTRA                      = 65
	DMPAPER_A2                            = 66
	DMPAPER_A3_TRANSVERSE                 = 67
	DMPAPER_A3_EXTRA_TRANSVERSE           = 68
	DMPAPER_DBL_JAPANESE_POSTCARD         = 69
	DMPAPER_A6                            = 70
	DMPAPER_JENV_KAKU2                    = 71
	DMPAPER_JENV_KAKU3                    = 72
	DMPAPER_JENV_CHOU3                    = 73
	DMPAPER_JENV_CHOU4                    = 74
	DMPAPER_LETTER_ROTATED                = 75
	DMPAPER_A3_ROTATED                    = 76
	DMPAPER_A4_ROTATED                    = 77
	DMPAPER_A5_ROTATED                    = 78
	DMPAPER_B4_JIS_ROTATED                = 79
	DMPAPER_B5_JIS_ROTATED                = 80
	DMPAPER_JAPANESE_POSTCARD_ROTATED     = 81
	DMPAPER_DBL_JAPANESE_POSTCARD_ROTATED = 82
	DMPAPER_A6_ROTATED                    = 83
	DMPAPER_JENV_KAKU2_ROTATED            = 84
	DMPAPER_JENV_KAKU3_ROTATED            = 85
	DMPAPER_JENV_CHOU3_ROTATED            = 86
	DMPAPER_JENV_CHOU4_ROTATED            = 87
	DMPAPER_B6_JIS                        = 88
	DMPAPER_B6_JIS_ROTATED                = 89
	DMPAPER_12X11                         = 90
	DMPAPER_JENV_YOU4                     = 91
	DMPAPER_JENV_YOU4_ROTATED             = 92
	DMPAPER_P16K                          = 93
	DMPAPER_P32K                          = 94
	DMPAPER_P32KBIG                       = 95
	DMPAPER_PENV_1                        = 96
	DMPAPER_PENV_2                        = 97
	DMPAPER_PENV_3                        = 98
	DMPAPER_PENV_4                        = 99
	DMPAPER_PENV_5                        = 100
	DMPAPER_PENV_6                        = 101
	DMPAPER_PENV_7                        = 102
	DMPAPER_PENV_8                        = 103
	DMPAPER_PENV_9                        = 104
	DMPAPER_PENV_10                       = 105
	DMPAPER_P16K_ROTATED                  = 106
	DMPAPER_P32K_ROTATED                  = 107
	DMPAPER_P32KBIG_ROTATED               = 108
	DMPAPER_PENV_1_ROTATED                = 109
	DMPAPER_PENV_2_ROTATED                = 110
	DMPAPER_PENV_3_ROTATED                = 111
	DMPAPER_PENV_4_ROTATED                = 112
	DMPAPER_PENV_5_ROTATED                = 113
	DMPAPER_PENV_6_ROTATED                = 114
	DMPAPER_PENV_7_ROTATED                = 115
	DMPAPER_PENV_8_ROTATED                = 116
	DMPAPER_PENV_9_ROTATED                = 117
	DMPAPER_PENV_10_ROTATED               = 118

	// Driver-defined sizes start here.
	DMPAPER_USER = 256
)
