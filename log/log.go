/*
Copyright 2015 Google Inc. All rights reserved.

Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file or at
https://developers.google.com/open-source/licenses/bsd
*/

// The log package logs to an io.Writer in the format that CUPS uses, and
// optionally to the systemd journal.
package log

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/coreos/go-systemd/v22/journal"
)

const (
	logFormat       = "%c [%s] %s\n"
	logDeviceFormat = "%c [%s] [Device %s] %s\n"

	dateTimeFormat = "02/Jan/2006:15:04:05 -0700"

	journalDeviceFormat = "[Device %s] %s"
)

var (
	levelToInitial = map[LogLevel]rune{
		FATAL:   'X', // "EMERG" in CUPS.
		ERROR:   'E',
		WARNING: 'W',
		INFO:    'I',
		DEBUG:   'D',
	}

	logger struct {
		m              sync.Mutex
		writer         io.Writer
		level          LogLevel
		journalEnabled bool
	}
)

// LogLevel represents a subset of the severity levels named by CUPS.
type LogLevel uint8

const (
	FATAL LogLevel = iota
	ERROR
	WARNING
	INFO
	DEBUG
)

func LevelFromString(level string) (LogLevel, bool) {
	switch strings.ToLower(level) {
	case "fatal":
		return FATAL, true
	case "error":
		return ERROR, true
	case "warning":
		return WARNING, true
	case "info":
		return INFO, true
	case "debug":
		return DEBUG, true
	default:
		return 0, false
	}
}

func (l LogLevel) String() string {
	switch l {
	case FATAL:
		return "FATAL"
	case ERROR:
		return "ERROR"
	case WARNING:
		return "WARNING"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	default:
		return "LogLevel(" + strconv.Itoa(int(l)) + ")"
	}
}

func (l LogLevel) priority() journal.Priority {
	switch l {
	case FATAL:
		return journal.PriCrit
	case ERROR:
		return journal.PriErr
	case WARNING:
		return journal.PriWarning
	case INFO:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}

func init() {
	logger.writer = os.Stderr
	logger.level = INFO
}

// SetWriter sets the io.Writer to log to. Default is os.Stderr.
func SetWriter(w io.Writer) {
	logger.m.Lock()
	defer logger.m.Unlock()
	logger.writer = w
}

// SetLevel sets the minimum severity level to log. Default is INFO.
func SetLevel(l LogLevel) {
	logger.m.Lock()
	defer logger.m.Unlock()
	logger.level = l
}

// SetJournalEnabled enables or disables writing to the systemd journal.
// Default is false. Returns false when the journal is not reachable, in
// which case it stays disabled.
func SetJournalEnabled(b bool) bool {
	logger.m.Lock()
	defer logger.m.Unlock()
	if b && !journal.Enabled() {
		logger.journalEnabled = false
		return false
	}
	logger.journalEnabled = b
	return true
}

func log(level LogLevel, deviceName, format string, args ...interface{}) {
	logger.m.Lock()
	defer logger.m.Unlock()

	if level > logger.level {
		return
	}

	levelInitial := levelToInitial[level]
	dateTime := time.Now().Format(dateTimeFormat)
	var message string
	if format == "" {
		message = fmt.Sprint(args...)
	} else {
		message = fmt.Sprintf(format, args...)
	}

	journalVars := make(map[string]string)
	journalMessage := message
	if deviceName != "" {
		fmt.Fprintf(logger.writer, logDeviceFormat, levelInitial, dateTime, deviceName, message)
		journalVars["DEVICE_NAME"] = deviceName
		journalMessage = fmt.Sprintf(journalDeviceFormat, deviceName, message)
	} else {
		fmt.Fprintf(logger.writer, logFormat, levelInitial, dateTime, message)
	}

	if logger.journalEnabled {
		pc := make([]uintptr, 1)
		runtime.Callers(3, pc)
		if f := runtime.FuncForPC(pc[0]); f != nil {
			journalVars["CODE_FUNC"] = f.Name()
			file, line := f.FileLine(pc[0])
			journalVars["CODE_FILE"] = file
			journalVars["CODE_LINE"] = strconv.Itoa(line)
		}
		journal.Send(journalMessage, level.priority(), journalVars)
	}
}

// Fatal logs at FATAL. Unlike the standard log package, it does not exit.
func Fatal(args ...interface{})                 { log(FATAL, "", "", args...) }
func Fatalf(format string, args ...interface{}) { log(FATAL, "", format, args...) }

func Error(args ...interface{})                 { log(ERROR, "", "", args...) }
func Errorf(format string, args ...interface{}) { log(ERROR, "", format, args...) }
func ErrorDevice(deviceName string, args ...interface{}) {
	log(ERROR, deviceName, "", args...)
}
func ErrorDevicef(deviceName, format string, args ...interface{}) {
	log(ERROR, deviceName, format, args...)
}

func Warning(args ...interface{})                 { log(WARNING, "", "", args...) }
func Warningf(format string, args ...interface{}) { log(WARNING, "", format, args...) }
func WarningDevice(deviceName string, args ...interface{}) {
	log(WARNING, deviceName, "", args...)
}
func WarningDevicef(deviceName, format string, args ...interface{}) {
	log(WARNING, deviceName, format, args...)
}

func Info(args ...interface{})                 { log(INFO, "", "", args...) }
func Infof(format string, args ...interface{}) { log(INFO, "", format, args...) }
func InfoDevice(deviceName string, args ...interface{}) {
	log(INFO, deviceName, "", args...)
}
func InfoDevicef(deviceName, format string, args ...interface{}) {
	log(INFO, deviceName, format, args...)
}

func Debug(args ...interface{})                 { log(DEBUG, "", "", args...) }
func Debugf(format string, args ...interface{}) { log(DEBUG, "", format, args...) }
func DebugDevice(deviceName string, args ...interface{}) {
	log(DEBUG, deviceName, "", args...)
}
func DebugDevicef(deviceName, format string, args ...interface{}) {
	log(DEBUG, deviceName, format, args...)
}
