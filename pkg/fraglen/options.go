package fraglen

import (
	"github.com/bft-labs/fraglen/internal/domain"
	"github.com/bft-labs/fraglen/internal/ports"
)

// Re-exported collaborator types so hosts can implement them.
type (
	// LogFile is one discovered input file.
	LogFile = domain.LogFile

	// LogFileFinder discovers input files.
	LogFileFinder = ports.LogFileFinder

	// SampleNameCleaner maps raw sample names to display names.
	SampleNameCleaner = ports.SampleNameCleaner

	// SampleFilter removes excluded samples.
	SampleFilter = ports.SampleFilter

	// DataFileWriter persists the combined dataset.
	DataFileWriter = ports.DataFileWriter

	// SectionRegistry receives the finished report section.
	SectionRegistry = ports.SectionRegistry

	// Logger is the structured logging interface.
	Logger = ports.Logger
)

// Option configures optional behavior of a Module.
type Option func(*options)

type options struct {
	logger   Logger
	finder   LogFileFinder
	cleaner  SampleNameCleaner
	filter   SampleFilter
	writer   DataFileWriter
	sections SectionRegistry
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFinder replaces file discovery. Config.InputDirs is then ignored.
func WithFinder(finder LogFileFinder) Option {
	return func(o *options) {
		o.finder = finder
	}
}

// WithNameCleaner replaces the sample name cleaning policy.
func WithNameCleaner(cleaner SampleNameCleaner) Option {
	return func(o *options) {
		o.cleaner = cleaner
	}
}

// WithSampleFilter replaces the sample exclusion policy.
func WithSampleFilter(filter SampleFilter) Option {
	return func(o *options) {
		o.filter = filter
	}
}

// WithDataFileWriter replaces where the combined dataset is persisted.
func WithDataFileWriter(writer DataFileWriter) Option {
	return func(o *options) {
		o.writer = writer
	}
}

// WithSectionRegistry replaces the report the section is added to.
func WithSectionRegistry(sections SectionRegistry) Option {
	return func(o *options) {
		o.sections = sections
	}
}
