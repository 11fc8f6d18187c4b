package ports

import (
	"context"

	"github.com/bft-labs/fraglen/internal/domain"
)

// LogFileFinder discovers input files.
type LogFileFinder interface {
	// FindLogFiles returns the files matching the search pattern patternID,
	// in the order they should be processed.
	FindLogFiles(ctx context.Context, patternID string) ([]domain.LogFile, error)
}
