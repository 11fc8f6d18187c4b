package names

import (
	"fmt"
	"path"

	"github.com/bft-labs/fraglen/internal/domain"
	"github.com/bft-labs/fraglen/pkg/histogram"
)

// IgnoreFilter implements ports.SampleFilter with shell glob patterns.
type IgnoreFilter struct {
	patterns []string
}

// NewIgnoreFilter validates patterns and returns a filter dropping every
// sample whose name matches at least one of them.
func NewIgnoreFilter(patterns []string) (*IgnoreFilter, error) {
	for _, p := range patterns {
		if _, err := path.Match(p, ""); err != nil {
			return nil, fmt.Errorf("%w: ignore pattern %q: %v", domain.ErrInvalidConfig, p, err)
		}
	}
	return &IgnoreFilter{patterns: patterns}, nil
}

// IgnoreSamples returns a new dataset without the matching samples. With no
// patterns ds is returned as is.
func (f *IgnoreFilter) IgnoreSamples(ds histogram.Dataset) histogram.Dataset {
	if len(f.patterns) == 0 {
		return ds
	}
	out := make(histogram.Dataset, len(ds))
	for name, d := range ds {
		if !f.ignored(name) {
			out[name] = d
		}
	}
	return out
}

func (f *IgnoreFilter) ignored(name string) bool {
	for _, p := range f.patterns {
		// Patterns were validated in NewIgnoreFilter.
		if ok, _ := path.Match(p, name); ok {
			return true
		}
	}
	return false
}
