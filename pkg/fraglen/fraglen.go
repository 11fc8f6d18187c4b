package fraglen

import (
	"context"
	"fmt"

	"github.com/bft-labs/fraglen/internal/adapters/fs"
	"github.com/bft-labs/fraglen/internal/adapters/names"
	reportAdapter "github.com/bft-labs/fraglen/internal/adapters/report"
	"github.com/bft-labs/fraglen/internal/app"
	"github.com/bft-labs/fraglen/internal/domain"
	"github.com/bft-labs/fraglen/pkg/log"
)

// Result is the outcome of one Run.
type Result struct {
	// Samples are the names present in the section, sorted. Empty when no
	// data was found.
	Samples []string
}

// Module produces the fragment length section. Create it with New.
type Module struct {
	config Config
	module *app.Module
}

// New creates a Module, filling unset collaborators with the file-based
// defaults described by cfg.
func New(cfg Config, opts ...Option) (*Module, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.NewNoopLogger()
	}

	if o.finder == nil {
		if len(cfg.InputDirs) == 0 {
			return nil, fmt.Errorf("%w: at least one input directory is required", domain.ErrInvalidConfig)
		}
		o.finder = fs.NewFinder(cfg.InputDirs, cfg.MaxFileSize, o.logger)
	}
	if o.cleaner == nil {
		o.cleaner = names.NewCleaner(cfg.CleanExts, cfg.PrependDirs)
	}
	if o.filter == nil {
		filter, err := names.NewIgnoreFilter(cfg.IgnoreSamples)
		if err != nil {
			return nil, err
		}
		o.filter = filter
	}
	if o.writer == nil {
		writer, err := fs.NewDataFileWriter(cfg.OutDir, cfg.DataFormat)
		if err != nil {
			return nil, err
		}
		o.writer = writer
	}
	if o.sections == nil {
		o.sections = reportAdapter.NewRegistry(cfg.OutDir, cfg.Plot, o.logger)
	}

	module := app.NewModule(
		app.ModuleConfig{SkipMalformed: cfg.SkipMalformed},
		o.finder, o.cleaner, o.filter, o.writer, o.sections, o.logger,
	)
	return &Module{config: cfg, module: module}, nil
}

// Config returns the effective configuration.
func (m *Module) Config() Config {
	return m.config
}

// Run discovers, parses and reduces the input files and registers the
// section. Malformed input fails the run unless Config.SkipMalformed is set.
func (m *Module) Run(ctx context.Context) (Result, error) {
	samples, err := m.module.AddFragmentLengthHist(ctx)
	if err != nil {
		return Result{}, err
	}
	return Result{Samples: samples}, nil
}
