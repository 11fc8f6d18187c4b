package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	InputDirs     []string `toml:"input_dirs"`
	OutDir        string   `toml:"out_dir"`
	DataFormat    string   `toml:"data_format"`
	Plot          *bool    `toml:"plot"`
	IgnoreSamples []string `toml:"ignore_samples"`
	CleanExts     []string `toml:"clean_ext"`
	PrependDirs   *bool    `toml:"prepend_dirs"`
	MaxFileSizeMB int      `toml:"max_file_size_mb"`
	SkipMalformed *bool    `toml:"skip_malformed"`
	LogLevel      string   `toml:"log_level"`
	Watch         *bool    `toml:"watch"`
	Debounce      string   `toml:"debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.fraglen/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".fraglen", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map). Input
// directories given as arguments are tracked under the "input" key.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setStrings("input", fc.InputDirs, &cfg.InputDirs)
	s.setString("out-dir", fc.OutDir, &cfg.OutDir)
	s.setString("data-format", fc.DataFormat, &cfg.DataFormat)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setStrings("ignore-samples", fc.IgnoreSamples, &cfg.IgnoreSamples)
	s.setStrings("clean-ext", fc.CleanExts, &cfg.CleanExts)

	s.setInt("max-file-size", fc.MaxFileSizeMB, &cfg.MaxFileSizeMB)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}

	s.setBool("plot", fc.Plot, &cfg.Plot)
	s.setBool("prepend-dirs", fc.PrependDirs, &cfg.PrependDirs)
	s.setBool("skip-malformed", fc.SkipMalformed, &cfg.SkipMalformed)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
