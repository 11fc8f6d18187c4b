package cliconfig

import "os"

// ApplyEnvConfig applies FRAGLEN_* environment variables to cfg. They
// override file configuration but not explicitly set flags. List values
// are comma separated.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setStringsFromString("input", os.Getenv("FRAGLEN_INPUT_DIRS"), &cfg.InputDirs)
	s.setString("out-dir", os.Getenv("FRAGLEN_OUT_DIR"), &cfg.OutDir)
	s.setString("data-format", os.Getenv("FRAGLEN_DATA_FORMAT"), &cfg.DataFormat)
	s.setString("log-level", os.Getenv("FRAGLEN_LOG_LEVEL"), &cfg.LogLevel)

	s.setStringsFromString("ignore-samples", os.Getenv("FRAGLEN_IGNORE_SAMPLES"), &cfg.IgnoreSamples)
	s.setStringsFromString("clean-ext", os.Getenv("FRAGLEN_CLEAN_EXT"), &cfg.CleanExts)

	if err := s.setIntFromString("max-file-size", os.Getenv("FRAGLEN_MAX_FILE_SIZE_MB"), &cfg.MaxFileSizeMB); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("FRAGLEN_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("plot", os.Getenv("FRAGLEN_PLOT"), &cfg.Plot)
	s.setBoolFromString("prepend-dirs", os.Getenv("FRAGLEN_PREPEND_DIRS"), &cfg.PrependDirs)
	s.setBoolFromString("skip-malformed", os.Getenv("FRAGLEN_SKIP_MALFORMED"), &cfg.SkipMalformed)
	s.setBoolFromString("watch", os.Getenv("FRAGLEN_WATCH"), &cfg.Watch)

	return nil
}
