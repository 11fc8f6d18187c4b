package histogram

import (
	"errors"
	"fmt"
)

// Parse errors. They are wrapped with the offending line number and can be
// checked with errors.Is.
var (
	// ErrMalformedRecord is returned when a data row is not two non-negative
	// integers or a sample marker has no name.
	ErrMalformedRecord = errors.New("histogram: malformed record")

	// ErrDuplicateSample is returned when a sample is declared twice in one input.
	ErrDuplicateSample = errors.New("histogram: duplicate sample")

	// ErrRowOutsideSample is returned for a data row that precedes every
	// sample marker. It wraps ErrMalformedRecord.
	ErrRowOutsideSample = fmt.Errorf("%w: row before any %s marker", ErrMalformedRecord, SampleMarker)
)
