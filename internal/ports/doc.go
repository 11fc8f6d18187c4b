// Package ports defines the interfaces (ports) that connect the fraglen
// application layer to its host collaborators.
//
// The fragment-length module only parses and reduces data. Finding files,
// canonicalising sample names, excluding samples, persisting the dataset and
// assembling the report belong to the host. They are consumed through the
// narrow interfaces below.
//
// # Port Interfaces
//
//   - [LogFileFinder]: discovers input files for a search pattern
//   - [SampleNameCleaner]: maps a raw sample name to its display name
//   - [SampleFilter]: drops user-excluded samples from a dataset
//   - [DataFileWriter]: persists a dataset for inspection
//   - [SectionRegistry]: registers a finished report section
//   - [Logger]: structured logging abstraction
//
// Default implementations live in internal/adapters.
package ports
