package cliconfig

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/bft-labs/fraglen/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.OutDir != "fraglen_data" {
		t.Errorf("OutDir = %v, want fraglen_data", cfg.OutDir)
	}
	if cfg.DataFormat != "tsv" {
		t.Errorf("DataFormat = %v, want tsv", cfg.DataFormat)
	}
	if !cfg.Plot {
		t.Error("Plot = false, want true")
	}
	if cfg.MaxFileSizeMB != 50 {
		t.Errorf("MaxFileSizeMB = %v, want 50", cfg.MaxFileSizeMB)
	}
	if cfg.Debounce != 500*time.Millisecond {
		t.Errorf("Debounce = %v, want 500ms", cfg.Debounce)
	}
	if len(cfg.CleanExts) == 0 {
		t.Error("CleanExts is empty")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name       string
		config     Config
		wantErr    bool
		wantInputs []string
		wantFormat string
	}{
		{
			name:       "valid minimal config",
			config:     Config{InputDirs: []string{"/data"}, OutDir: "out", DataFormat: "tsv", MaxFileSizeMB: 1},
			wantInputs: []string{"/data"},
			wantFormat: "tsv",
		},
		{
			name:       "defaults input to working directory",
			config:     Config{OutDir: "out", DataFormat: "csv", MaxFileSizeMB: 1},
			wantInputs: []string{"."},
			wantFormat: "csv",
		},
		{
			name:       "normalizes format case",
			config:     Config{OutDir: "out", DataFormat: "JSON", MaxFileSizeMB: 1},
			wantInputs: []string{"."},
			wantFormat: "json",
		},
		{
			name:    "unknown format",
			config:  Config{OutDir: "out", DataFormat: "xlsx", MaxFileSizeMB: 1},
			wantErr: true,
		},
		{
			name:    "missing out dir",
			config:  Config{DataFormat: "tsv", MaxFileSizeMB: 1},
			wantErr: true,
		},
		{
			name:    "non-positive max file size",
			config:  Config{OutDir: "out", DataFormat: "tsv"},
			wantErr: true,
		},
		{
			name:    "watch without debounce",
			config:  Config{OutDir: "out", DataFormat: "tsv", MaxFileSizeMB: 1, Watch: true},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidConfig) {
					t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(cfg.InputDirs, tt.wantInputs) {
				t.Errorf("InputDirs = %v, want %v", cfg.InputDirs, tt.wantInputs)
			}
			if cfg.DataFormat != tt.wantFormat {
				t.Errorf("DataFormat = %v, want %v", cfg.DataFormat, tt.wantFormat)
			}
		})
	}
}

func TestConfig_Library(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDirs = []string{"/a", "/b"}
	cfg.IgnoreSamples = []string{"NTC*"}
	cfg.MaxFileSizeMB = 2
	cfg.SkipMalformed = true

	lib := cfg.Library()

	if !reflect.DeepEqual(lib.InputDirs, cfg.InputDirs) {
		t.Errorf("InputDirs = %v, want %v", lib.InputDirs, cfg.InputDirs)
	}
	if lib.MaxFileSize != 2<<20 {
		t.Errorf("MaxFileSize = %v, want %v", lib.MaxFileSize, 2<<20)
	}
	if !lib.SkipMalformed {
		t.Error("SkipMalformed = false, want true")
	}
	if !reflect.DeepEqual(lib.IgnoreSamples, []string{"NTC*"}) {
		t.Errorf("IgnoreSamples = %v", lib.IgnoreSamples)
	}
	if err := lib.Validate(); err != nil {
		t.Errorf("library Validate() error = %v", err)
	}
}

func TestConfigSetter_SetStringsFromString(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		changed map[string]bool
		initial []string
		want    []string
	}{
		{name: "splits and trims", value: " a, b ,,c ", changed: map[string]bool{}, want: []string{"a", "b", "c"}},
		{name: "empty leaves value", value: "", changed: map[string]bool{}, initial: []string{"x"}, want: []string{"x"}},
		{name: "changed flag wins", value: "a", changed: map[string]bool{"list": true}, initial: []string{"x"}, want: []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := tt.initial
			newConfigSetter(tt.changed).setStringsFromString("list", tt.value, &dst)
			if !reflect.DeepEqual(dst, tt.want) {
				t.Errorf("got %v, want %v", dst, tt.want)
			}
		})
	}
}
