package ports

import "github.com/bft-labs/fraglen/pkg/log"

// Logger is the structured logger used by the application layer.
type Logger = log.Logger

// Field represents a structured log field.
type Field = log.Field
