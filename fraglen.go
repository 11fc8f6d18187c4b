// Package fraglen collects DRAGEN fragment length histograms into a report
// section.
//
// Example usage:
//
//	cfg := fraglen.DefaultConfig()
//	cfg.InputDirs = []string{"/path/to/dragen/output"}
//	samples, err := fraglen.Run(context.Background(), cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For collaborators such as a custom logger or report, use
// github.com/bft-labs/fraglen/pkg/fraglen directly.
package fraglen

import (
	"context"

	core "github.com/bft-labs/fraglen/pkg/fraglen"
	"github.com/bft-labs/fraglen/pkg/histogram"
)

// Config holds the configuration for a run.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = core.Config

// Dataset maps sample names to their fragment length distributions.
type Dataset = histogram.Dataset

// DefaultConfig returns a Config with sensible default values.
// At minimum, you must set InputDirs before calling Run.
func DefaultConfig() Config {
	return core.DefaultConfig()
}

// Run discovers and reduces the histogram files under cfg.InputDirs, writes
// the data file and section to cfg.OutDir and returns the sample names.
// An empty result with a nil error means no data was found.
func Run(ctx context.Context, cfg Config) ([]string, error) {
	m, err := core.New(cfg)
	if err != nil {
		return nil, err
	}
	res, err := m.Run(ctx)
	if err != nil {
		return nil, err
	}
	return res.Samples, nil
}

// Parse reads the text of one fragment_length_hist.csv file.
func Parse(text string) (Dataset, error) {
	return histogram.Parse(text)
}
