// Copyright 2015 Google Inc. All rights reserved.

// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

//go:build windows

package winspool

import (
	"encoding/binary"
	"runtime"
	"unsafe"

	"github.com/google/cloud-print-devmode/devcaps"
	"github.com/google/cloud-print-devmode/devmode"
	"github.com/google/cloud-print-devmode/log"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	winspool = windows.NewLazySystemDLL("winspool.drv")

	closePrinterProc       = winspool.NewProc("ClosePrinter")
	deviceCapabilitiesProc = winspool.NewProc("DeviceCapabilitiesW")
	documentPropertiesProc = winspool.NewProc("DocumentPropertiesW")
	enumPrintersProc       = winspool.NewProc("EnumPrintersW")
	openPrinterProc        = winspool.NewProc("OpenPrinterW")
)

// EnumPrinters flags.
const (
	PRINTER_ENUM_LOCAL       uint32 = 0x00000002
	PRINTER_ENUM_CONNECTIONS uint32 = 0x00000004
)

// DocumentProperties modes.
const (
	DM_OUT_BUFFER uint32 = 2
	DM_IN_BUFFER  uint32 = 8

	DM_COPY   = DM_OUT_BUFFER
	DM_MODIFY = DM_IN_BUFFER
)

// PRINTER_INFO_2 struct.
type printerInfo2 struct {
	pServerName         *uint16
	pPrinterName        *uint16
	pShareName          *uint16
	pPortName           *uint16
	pDriverName         *uint16
	pComment            *uint16
	pLocation           *uint16
	pDevMode            *byte
	pSepFile            *uint16
	pPrintProcessor     *uint16
	pDatatype           *uint16
	pParameters         *uint16
	pSecurityDescriptor uintptr
	attributes          uint32
	priority            uint32
	defaultPriority     uint32
	startTime           uint32
	untilTime           uint32
	status              uint32
	cJobs               uint32
	averagePPM          uint32
}

// PrinterInfo is the part of PRINTER_INFO_2 that capability queries need.
type PrinterInfo struct {
	Name     string `json:"name" yaml:"name"`
	Port     string `json:"port" yaml:"port"`
	Driver   string `json:"driver" yaml:"driver"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	Status   uint32 `json:"status" yaml:"status"`

	// DevMode is the printer's default DEVMODE, or nil.
	DevMode *devmode.DevMode `json:"-" yaml:"-"`
}

// copyDevMode copies the wide DEVMODE at p, including its driver-private
// data, out of spooler memory.
func copyDevMode(p *byte) *devmode.DevMode {
	if p == nil {
		return nil
	}
	header := unsafe.Slice(p, devmode.MinSizeWide)
	size := int(binary.LittleEndian.Uint16(header[68:]))
	extra := int(binary.LittleEndian.Uint16(header[70:]))
	if size < devmode.MinSizeWide {
		return nil
	}
	return devmode.Parse(unsafe.Slice(p, size+extra))
}

func enumPrinters(level uint32) ([]byte, uint32, error) {
	flags := uintptr(PRINTER_ENUM_LOCAL | PRINTER_ENUM_CONNECTIONS)
	var cbBuf, pcReturned uint32
	_, _, err := enumPrintersProc.Call(flags, 0, uintptr(level), 0, 0, uintptr(unsafe.Pointer(&cbBuf)), uintptr(unsafe.Pointer(&pcReturned)))
	if err != windows.ERROR_INSUFFICIENT_BUFFER {
		if cbBuf == 0 {
			// No printers.
			return nil, 0, nil
		}
		return nil, 0, errors.Wrap(err, "EnumPrinters")
	}

	pPrinterEnum := make([]byte, cbBuf)
	r1, _, err := enumPrintersProc.Call(flags, 0, uintptr(level), uintptr(unsafe.Pointer(&pPrinterEnum[0])), uintptr(cbBuf), uintptr(unsafe.Pointer(&cbBuf)), uintptr(unsafe.Pointer(&pcReturned)))
	if r1 == 0 {
		return nil, 0, errors.Wrap(err, "EnumPrinters")
	}

	return pPrinterEnum, pcReturned, nil
}

// EnumPrinters2 lists the local and connected printers.
func EnumPrinters2() ([]PrinterInfo, error) {
	pPrinterEnum, pcReturned, err := enumPrinters(2)
	if err != nil || pcReturned == 0 {
		return nil, err
	}

	pi2s := unsafe.Slice((*printerInfo2)(unsafe.Pointer(&pPrinterEnum[0])), pcReturned)
	printers := make([]PrinterInfo, 0, len(pi2s))
	for i := range pi2s {
		pi2 := &pi2s[i]
		printers = append(printers, PrinterInfo{
			Name:     windows.UTF16PtrToString(pi2.pPrinterName),
			Port:     windows.UTF16PtrToString(pi2.pPortName),
			Driver:   windows.UTF16PtrToString(pi2.pDriverName),
			Location: windows.UTF16PtrToString(pi2.pLocation),
			Status:   pi2.status,
			DevMode:  copyDevMode(pi2.pDevMode),
		})
	}
	return printers, nil
}

// FindPrinter returns the printer named printerName.
func FindPrinter(printerName string) (*PrinterInfo, error) {
	printers, err := EnumPrinters2()
	if err != nil {
		return nil, err
	}
	for i := range printers {
		if printers[i].Name == printerName {
			return &printers[i], nil
		}
	}
	return nil, errors.Errorf("printer %s not found", printerName)
}

type HANDLE uintptr

func OpenPrinter(printerName string) (HANDLE, error) {
	pPrinterName, err := windows.UTF16PtrFromString(printerName)
	if err != nil {
		return 0, err
	}

	var hPrinter HANDLE
	r1, _, err := openPrinterProc.Call(uintptr(unsafe.Pointer(pPrinterName)), uintptr(unsafe.Pointer(&hPrinter)), 0)
	if r1 == 0 {
		return 0, errors.Wrapf(err, "OpenPrinter %s", printerName)
	}
	return hPrinter, nil
}

func (hPrinter *HANDLE) ClosePrinter() error {
	r1, _, err := closePrinterProc.Call(uintptr(*hPrinter))
	if r1 == 0 {
		return errors.Wrap(err, "ClosePrinter")
	}
	*hPrinter = 0
	return nil
}

func (hPrinter HANDLE) documentProperties(deviceName string, in *devmode.DevMode) (*devmode.DevMode, error) {
	pDeviceName, err := windows.UTF16PtrFromString(deviceName)
	if err != nil {
		return nil, err
	}

	r1, _, err := documentPropertiesProc.Call(0, uintptr(hPrinter), uintptr(unsafe.Pointer(pDeviceName)), 0, 0, 0)
	cbBuf := int32(r1)
	if cbBuf <= 0 {
		return nil, errors.Wrapf(err, "DocumentProperties size of %s", deviceName)
	}

	out := make([]byte, cbBuf)
	mode := DM_COPY
	var inBytes []byte
	var pIn uintptr
	if in != nil {
		inBytes = in.Bytes()
		if len(inBytes) > 0 {
			pIn = uintptr(unsafe.Pointer(&inBytes[0]))
			mode |= DM_MODIFY
		}
	}

	r1, _, err = documentPropertiesProc.Call(0, uintptr(hPrinter), uintptr(unsafe.Pointer(pDeviceName)), uintptr(unsafe.Pointer(&out[0])), pIn, uintptr(mode))
	runtime.KeepAlive(inBytes)
	if int32(r1) < 0 {
		return nil, errors.Wrapf(err, "DocumentProperties of %s", deviceName)
	}

	dm := devmode.Parse(out)
	if !dm.Valid() {
		log.WarningDevicef(deviceName, "Driver returned an inconsistent DEVMODE of %d bytes", len(out))
	}
	return dm, nil
}

// DocumentPropertiesGet returns the driver's default DEVMODE.
func (hPrinter HANDLE) DocumentPropertiesGet(deviceName string) (*devmode.DevMode, error) {
	return hPrinter.documentProperties(deviceName, nil)
}

// DocumentPropertiesSet has the driver merge devMode into its defaults and
// returns the merged DEVMODE. The printer's defaults are not changed.
func (hPrinter HANDLE) DocumentPropertiesSet(deviceName string, devMode *devmode.DevMode) (*devmode.DevMode, error) {
	return hPrinter.documentProperties(deviceName, devMode)
}

// Spooler answers capability queries from the installed printer drivers.
type Spooler struct{}

func (Spooler) DeviceCapabilities(device, port string, capability devcaps.Capability, output []byte, devMode *devmode.DevMode) (int32, error) {
	pDevice, err := windows.UTF16PtrFromString(device)
	if err != nil {
		return 0, err
	}
	pPort, err := windows.UTF16PtrFromString(port)
	if err != nil {
		return 0, err
	}

	var pOutput, pDevMode uintptr
	if len(output) > 0 {
		pOutput = uintptr(unsafe.Pointer(&output[0]))
	}
	var dmBytes []byte
	if devMode != nil {
		dmBytes = devMode.Bytes()
		if len(dmBytes) > 0 {
			pDevMode = uintptr(unsafe.Pointer(&dmBytes[0]))
		}
	}

	r1, _, _ := deviceCapabilitiesProc.Call(uintptr(unsafe.Pointer(pDevice)), uintptr(unsafe.Pointer(pPort)), uintptr(capability), pOutput, pDevMode)
	runtime.KeepAlive(output)
	runtime.KeepAlive(dmBytes)
	return int32(r1), nil
}

// NewTranslator returns a Translator over the spooler for printerName, with
// the driver's default DEVMODE.
func NewTranslator(printerName string) (*devcaps.Translator, error) {
	printer, err := FindPrinter(printerName)
	if err != nil {
		return nil, err
	}

	hPrinter, err := OpenPrinter(printerName)
	if err != nil {
		return nil, err
	}
	defer hPrinter.ClosePrinter()

	dm, err := hPrinter.DocumentPropertiesGet(printerName)
	if err != nil {
		log.WarningDevicef(printerName, "Falling back to the printer's DEVMODE: %s", err)
		dm = printer.DevMode
	}

	return devcaps.NewTranslator(Spooler{}, printer.Name, printer.Driver, printer.Port, dm), nil
}
