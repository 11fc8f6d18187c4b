package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/bft-labs/fraglen/internal/domain"
	"github.com/bft-labs/fraglen/internal/ports"
	"github.com/bft-labs/fraglen/pkg/histogram"
	"github.com/bft-labs/fraglen/pkg/log"
	"github.com/bft-labs/fraglen/pkg/report"
)

// Fixed identifiers of the fragment length section.
const (
	DataFileBase  = "dragen_frag_len"
	SectionName   = "Fragment length hist"
	SectionAnchor = "dragen-fragment-length-histogram"
	PlotID        = "dragen_fragment_length"
	PlotTitle     = "Dragen: Fragment length hist"
	PlotYLabel    = "Number of reads"
	PlotXLabel    = "Fragment length (bp)"
)

const descriptionFormat = `Distribution of estimated fragment lengths of mapped reads per sample.
Only points supported by at least %d reads are shown to prevent long flat tail.
The plot is also smoothed down to showing %d points on the X axis to reduce noise.`

// ModuleConfig contains host policy for the module.
type ModuleConfig struct {
	// SkipMalformed logs and skips a file that fails to parse instead of
	// aborting the whole run.
	SkipMalformed bool
}

// Module builds the fragment length report section from discovered files.
type Module struct {
	config   ModuleConfig
	finder   ports.LogFileFinder
	cleaner  ports.SampleNameCleaner
	filter   ports.SampleFilter
	writer   ports.DataFileWriter
	sections ports.SectionRegistry
	logger   ports.Logger
}

// NewModule creates a module with the given collaborators.
func NewModule(
	config ModuleConfig,
	finder ports.LogFileFinder,
	cleaner ports.SampleNameCleaner,
	filter ports.SampleFilter,
	writer ports.DataFileWriter,
	sections ports.SectionRegistry,
	logger ports.Logger,
) *Module {
	return &Module{
		config:   config,
		finder:   finder,
		cleaner:  cleaner,
		filter:   filter,
		writer:   writer,
		sections: sections,
		logger:   logger,
	}
}

// AddFragmentLengthHist collects every fragment length histogram, writes the
// combined dataset and registers the chart section. It returns the names of
// the samples in the section, sorted. When no sample survives discovery and
// filtering it returns an empty slice and nothing is written or registered.
func (m *Module) AddFragmentLengthHist(ctx context.Context) ([]string, error) {
	files, err := m.finder.FindLogFiles(ctx, domain.FragmentLengthPattern)
	if err != nil {
		return nil, fmt.Errorf("find fragment length files: %w", err)
	}

	ds := make(histogram.Dataset)
	for _, f := range files {
		if ds, err = m.collect(ds, f); err != nil {
			if !m.config.SkipMalformed {
				return nil, err
			}
			m.logger.Warn("skipping malformed fragment length file",
				log.String("file", f.Path),
				log.Err(err))
		}
	}

	ds = m.filter.IgnoreSamples(ds)
	if len(ds) == 0 {
		m.logger.Debug("no fragment length data found", log.Int("files", len(files)))
		return []string{}, nil
	}

	if err := m.writer.WriteDataFile(ctx, ds, DataFileBase); err != nil {
		return nil, fmt.Errorf("write data file: %w", err)
	}
	if err := m.sections.AddSection(ctx, NewSection(ds)); err != nil {
		return nil, fmt.Errorf("add section: %w", err)
	}

	names := ds.Names()
	m.logger.Info("fragment length section added",
		log.Int("files", len(files)),
		log.Int("samples", len(names)))
	return names, nil
}

// collect parses one file and merges its samples into ds under their cleaned
// names. Nothing from f is merged when it fails to parse.
func (m *Module) collect(ds histogram.Dataset, f domain.LogFile) (histogram.Dataset, error) {
	p := histogram.NewParser()
	if err := p.Consume(strings.NewReader(f.Content)); err != nil {
		return ds, fmt.Errorf("parse %s: %w", f.Path, err)
	}

	parsed := p.Dataset()
	for _, raw := range p.Samples() {
		name := m.cleaner.CleanSampleName(raw, f)

		var replaced bool
		ds, replaced = histogram.MergeSample(ds, name, parsed[raw])
		if replaced {
			m.logger.Debug("duplicate sample name found, overwriting",
				log.String("sample", name),
				log.String("file", f.Path))
		}
	}
	return ds, nil
}

// NewSection builds the fragment length chart section for ds.
func NewSection(ds histogram.Dataset) report.Section {
	cfg := report.DefaultLineGraphConfig()
	cfg.ID = PlotID
	cfg.Title = PlotTitle
	cfg.YLabel = PlotYLabel
	cfg.XLabel = PlotXLabel

	return report.Section{
		Name:        SectionName,
		Anchor:      SectionAnchor,
		Description: fmt.Sprintf(descriptionFormat, histogram.MinCountToShow, cfg.SmoothPoints),
		Plot: report.LineGraph{
			Data:   ds,
			Config: cfg,
		},
		Stats: Summarize(ds),
	}
}
