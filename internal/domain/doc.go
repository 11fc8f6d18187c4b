// Package domain contains the entities shared between the fraglen
// application layer and its adapters.
//
// The histogram data model itself lives in pkg/histogram so that it can be
// imported by embedding hosts. This package holds what only the application
// needs:
//
//   - [LogFile]: one discovered input file with its raw content
//   - the errors returned by configuration and discovery
//
// Nothing here depends on the file system, logging, or rendering.
package domain
