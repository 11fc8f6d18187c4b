package domain

import "errors"

// Domain errors represent error conditions in fraglen.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("fraglen: invalid configuration")

	// ErrUnknownPattern is returned when a file finder is asked for a search
	// pattern it has no definition for.
	ErrUnknownPattern = errors.New("fraglen: unknown search pattern")

	// ErrUnknownFormat is returned for an unsupported data file format.
	ErrUnknownFormat = errors.New("fraglen: unknown data format")
)
