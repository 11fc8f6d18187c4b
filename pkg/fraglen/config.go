package fraglen

import (
	"fmt"

	"github.com/bft-labs/fraglen/internal/adapters/fs"
	"github.com/bft-labs/fraglen/internal/adapters/names"
	"github.com/bft-labs/fraglen/internal/domain"
)

// DefaultOutDir is where data files and sections go when OutDir is empty.
const DefaultOutDir = "fraglen_data"

// Config configures a Module.
type Config struct {
	// InputDirs are searched recursively for histogram files. Required unless
	// a custom finder is supplied with WithFinder.
	InputDirs []string

	// OutDir receives the data file and the section output.
	OutDir string

	// DataFormat is "tsv", "csv" or "json".
	DataFormat string

	// Plot renders the section to PNG next to its JSON.
	Plot bool

	// IgnoreSamples are glob patterns of sample names to exclude.
	IgnoreSamples []string

	// CleanExts are truncated from sample names.
	CleanExts []string

	// PrependDirs prefixes each sample with the directory it came from.
	PrependDirs bool

	// MaxFileSize is the largest input file read, in bytes.
	MaxFileSize int64

	// SkipMalformed skips files that fail to parse instead of failing the run.
	SkipMalformed bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		OutDir:      DefaultOutDir,
		DataFormat:  fs.FormatTSV,
		Plot:        true,
		CleanExts:   append([]string(nil), names.DefaultCleanExts...),
		MaxFileSize: fs.DefaultMaxFileSize,
	}
}

// SetDefaults fills zero-valued fields with defaults.
func (c *Config) SetDefaults() {
	if c.OutDir == "" {
		c.OutDir = DefaultOutDir
	}
	if c.DataFormat == "" {
		c.DataFormat = fs.FormatTSV
	}
	if c.CleanExts == nil {
		c.CleanExts = append([]string(nil), names.DefaultCleanExts...)
	}
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = fs.DefaultMaxFileSize
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.DataFormat {
	case fs.FormatTSV, fs.FormatCSV, fs.FormatJSON:
	default:
		return fmt.Errorf("%w: data format %q", domain.ErrInvalidConfig, c.DataFormat)
	}
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("%w: max file size must be positive", domain.ErrInvalidConfig)
	}
	return nil
}
