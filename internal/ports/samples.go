package ports

import (
	"github.com/bft-labs/fraglen/internal/domain"
	"github.com/bft-labs/fraglen/pkg/histogram"
)

// SampleNameCleaner maps a raw sample name, as written in a file, to the
// canonical name shown in the report.
type SampleNameCleaner interface {
	CleanSampleName(raw string, f domain.LogFile) string
}

// SampleFilter removes samples the user asked to exclude.
type SampleFilter interface {
	// IgnoreSamples returns ds without the excluded samples. It may return
	// ds itself or a new dataset.
	IgnoreSamples(ds histogram.Dataset) histogram.Dataset
}
