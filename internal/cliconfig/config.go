package cliconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bft-labs/fraglen/internal/adapters/fs"
	"github.com/bft-labs/fraglen/internal/adapters/names"
	"github.com/bft-labs/fraglen/internal/domain"
	"github.com/bft-labs/fraglen/internal/watch"
	"github.com/bft-labs/fraglen/pkg/fraglen"
)

// Config holds CLI configuration for fraglen.
type Config struct {
	InputDirs []string
	OutDir    string

	DataFormat string
	Plot       bool

	IgnoreSamples []string
	CleanExts     []string
	PrependDirs   bool

	MaxFileSizeMB int
	SkipMalformed bool

	LogLevel string

	Watch    bool
	Debounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		OutDir:        fraglen.DefaultOutDir,
		DataFormat:    fs.FormatTSV,
		Plot:          true,
		CleanExts:     append([]string(nil), names.DefaultCleanExts...),
		MaxFileSizeMB: int(fs.DefaultMaxFileSize >> 20),
		LogLevel:      "info",
		Debounce:      watch.DefaultDebounceDelay,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if len(c.InputDirs) == 0 {
		c.InputDirs = []string{"."}
	}
	if c.OutDir == "" {
		return fmt.Errorf("%w: out-dir is required", domain.ErrInvalidConfig)
	}

	c.DataFormat = strings.ToLower(c.DataFormat)
	switch c.DataFormat {
	case fs.FormatTSV, fs.FormatCSV, fs.FormatJSON:
	default:
		return fmt.Errorf("%w: data-format must be tsv, csv or json, got %q", domain.ErrInvalidConfig, c.DataFormat)
	}

	if c.MaxFileSizeMB <= 0 {
		return fmt.Errorf("%w: max-file-size must be positive", domain.ErrInvalidConfig)
	}
	if c.Watch && c.Debounce <= 0 {
		return fmt.Errorf("%w: debounce must be positive", domain.ErrInvalidConfig)
	}
	return nil
}

// Library converts the CLI configuration to the library configuration.
func (c Config) Library() fraglen.Config {
	return fraglen.Config{
		InputDirs:     c.InputDirs,
		OutDir:        c.OutDir,
		DataFormat:    c.DataFormat,
		Plot:          c.Plot,
		IgnoreSamples: c.IgnoreSamples,
		CleanExts:     c.CleanExts,
		PrependDirs:   c.PrependDirs,
		MaxFileSize:   int64(c.MaxFileSizeMB) << 20,
		SkipMalformed: c.SkipMalformed,
	}
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a list value if not nil and flag not changed.
// An explicitly empty list clears the destination.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if value == nil || s.changed[flag] {
		return
	}
	out := make([]string, len(value))
	copy(out, value)
	*dst = out
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setStringsFromString splits a comma separated list and sets the destination.
// Used for environment variables that come as strings.
func (s *configSetter) setStringsFromString(flag, value string, dst *[]string) {
	if value == "" || s.changed[flag] {
		return
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*dst = out
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
