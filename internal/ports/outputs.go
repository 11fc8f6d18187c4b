package ports

import (
	"context"

	"github.com/bft-labs/fraglen/pkg/histogram"
	"github.com/bft-labs/fraglen/pkg/report"
)

// DataFileWriter persists a dataset in tabular form for reproducibility.
type DataFileWriter interface {
	// WriteDataFile writes ds under baseName; the extension is chosen by the
	// implementation.
	WriteDataFile(ctx context.Context, ds histogram.Dataset, baseName string) error
}

// SectionRegistry collects the sections that make up a report.
type SectionRegistry interface {
	AddSection(ctx context.Context, section report.Section) error
}
