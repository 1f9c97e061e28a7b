// Copyright 2015 Google Inc. All rights reserved.

// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd

package lib

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/google/cloud-print-devmode/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const defaultConfigFilename = "devmode-util.config.json"

var ConfigFilenameFlag = cli.StringFlag{
	Name:  "config-filename",
	Usage: "Config filename",
	Value: defaultConfigFilename,
}

// Output formats for commands that print records.
const (
	OutputTable = "table"
	OutputYAML  = "yaml"
	OutputJSON  = "json"
)

type Config struct {
	// Log level, which is one of: fatal, error, warning, info, debug
	LogLevel string `json:"log_level,omitempty"`

	// Log to the systemd journal instead of to files?
	LogToJournal *bool `json:"log_to_journal,omitempty"`

	// Log file name. Empty logs to stderr.
	LogFileName string `json:"log_file_name,omitempty"`

	// Log file maximum size, in megabytes.
	LogFileMaxMegabytes uint `json:"log_file_max_megabytes,omitempty"`

	// Maximum quantity of rolled log files.
	LogMaxFiles uint `json:"log_max_files,omitempty"`

	// Printer queried when a command names none.
	DefaultPrinter string `json:"default_printer,omitempty"`

	// YAML capability snapshot used instead of a native printer.
	CapabilitySnapshot string `json:"capability_snapshot,omitempty"`

	// Output format, which is one of: table, yaml, json
	OutputFormat string `json:"output_format,omitempty"`
}

// DefaultConfig represents reasonable default values for Config fields.
// Omitted Config fields are omitted on purpose; they are unique per
// installation.
var DefaultConfig = Config{
	LogLevel:            "INFO",
	LogToJournal:        PointerToBool(false),
	LogFileMaxMegabytes: 1,
	LogMaxFiles:         3,
	OutputFormat:        OutputTable,
}

// PointerToBool converts a boolean value (constant) to a pointer-to-bool.
func PointerToBool(b bool) *bool {
	return &b
}

// getConfigFilename gets the absolute filename of the config file specified by
// the ConfigFilename flag, and whether it exists.
//
// If the (relative or absolute) ConfigFilename exists, then it is returned.
// If the ConfigFilename exists in a valid XDG path, then it is returned.
// If neither of those exist, the (relative or absolute) ConfigFilename is returned.
func getConfigFilename(context *cli.Context) (string, bool) {
	cf := context.GlobalString("config-filename")
	if cf == "" {
		cf = defaultConfigFilename
	}

	if filepath.IsAbs(cf) {
		// Absolute path specified; user knows what they want.
		_, err := os.Stat(cf)
		return cf, err == nil
	}

	absCF, err := filepath.Abs(cf)
	if err != nil {
		// syscall failure; treat as if file doesn't exist.
		return cf, false
	}
	if _, err := os.Stat(absCF); err == nil {
		// File exists on relative path.
		return absCF, true
	}

	if xdgCF, err := xdg.SearchConfigFile(cf); err == nil {
		// File exists in an XDG directory.
		return xdgCF, true
	}

	// Default to relative path. This is probably what the user expects if
	// it wasn't found anywhere else.
	return absCF, false
}

// GetConfig reads a Config object from the config file indicated by the config
// filename flag. If no such file exists, then DefaultConfig is returned.
func GetConfig(context *cli.Context) (*Config, string, error) {
	cf, exists := getConfigFilename(context)
	if !exists {
		return &DefaultConfig, "", nil
	}

	b, err := os.ReadFile(cf)
	if err != nil {
		return nil, "", errors.Wrap(err, "read config file")
	}

	config := new(Config)
	if err = json.Unmarshal(b, config); err != nil {
		return nil, "", errors.Wrapf(err, "parse config file %s", cf)
	}

	// Same config in []byte format, to learn which keys are missing.
	configMap := make(map[string]interface{})
	if err = json.Unmarshal(b, &configMap); err != nil {
		return nil, "", errors.Wrapf(err, "parse config file %s", cf)
	}
	config = config.Backfill(configMap)

	return config, cf, nil
}

// ToFile writes this Config object to the config file indicated by ConfigFile.
func (c *Config) ToFile(context *cli.Context) (string, error) {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}

	cf, _ := getConfigFilename(context)
	if err = os.WriteFile(cf, b, 0600); err != nil {
		return "", errors.Wrap(err, "write config file")
	}
	return cf, nil
}

// Backfill returns a copy of this config with all missing keys set to default values.
func (c *Config) Backfill(configMap map[string]interface{}) *Config {
	b := *c

	if _, exists := configMap["log_level"]; !exists {
		b.LogLevel = DefaultConfig.LogLevel
	}
	if _, exists := configMap["log_to_journal"]; !exists {
		b.LogToJournal = DefaultConfig.LogToJournal
	}
	if _, exists := configMap["log_file_max_megabytes"]; !exists {
		b.LogFileMaxMegabytes = DefaultConfig.LogFileMaxMegabytes
	}
	if _, exists := configMap["log_max_files"]; !exists {
		b.LogMaxFiles = DefaultConfig.LogMaxFiles
	}
	if _, exists := configMap["output_format"]; !exists {
		b.OutputFormat = DefaultConfig.OutputFormat
	}

	return &b
}

// Sparse returns a copy of this config with obvious values removed.
func (c *Config) Sparse(context *cli.Context) *Config {
	s := *c

	if !context.IsSet("log-level") && s.LogLevel == DefaultConfig.LogLevel {
		s.LogLevel = ""
	}
	if !context.IsSet("log-to-journal") &&
		reflect.DeepEqual(s.LogToJournal, DefaultConfig.LogToJournal) {
		s.LogToJournal = nil
	}
	if !context.IsSet("log-file-max-megabytes") &&
		s.LogFileMaxMegabytes == DefaultConfig.LogFileMaxMegabytes {
		s.LogFileMaxMegabytes = 0
	}
	if !context.IsSet("log-max-files") &&
		s.LogMaxFiles == DefaultConfig.LogMaxFiles {
		s.LogMaxFiles = 0
	}
	if !context.IsSet("output-format") && s.OutputFormat == DefaultConfig.OutputFormat {
		s.OutputFormat = ""
	}

	return &s
}

// Validate checks the values that have a closed set of choices.
func (c *Config) Validate() error {
	if _, ok := log.LevelFromString(c.LogLevel); !ok {
		return errors.Errorf("log_level %q is not one of fatal, error, warning, info, debug", c.LogLevel)
	}
	switch strings.ToLower(c.OutputFormat) {
	case OutputTable, OutputYAML, OutputJSON:
	default:
		return errors.Errorf("output_format %q is not one of table, yaml, json", c.OutputFormat)
	}
	return nil
}

// SetupLogging applies the logging settings of c, returning a function that
// releases the log file, if any.
func (c *Config) SetupLogging() (func(), error) {
	level, ok := log.LevelFromString(c.LogLevel)
	if !ok {
		return nil, errors.Errorf("unknown log level %q", c.LogLevel)
	}
	log.SetLevel(level)

	if c.LogToJournal != nil && *c.LogToJournal {
		if log.SetJournalEnabled(true) {
			return func() {}, nil
		}
		log.Warning("systemd journal is not available; logging to files instead")
	}

	if c.LogFileName == "" {
		return func() {}, nil
	}
	roller := log.NewLogRoller(c.LogFileName, c.LogFileMaxMegabytes*1024*1024, c.LogMaxFiles)
	log.SetWriter(roller)
	return func() {
		log.SetWriter(os.Stderr)
		roller.Close()
	}, nil
}
