// Package log provides the logging abstraction used across fraglen.
//
// Components log through the [Logger] interface so that an embedding host
// can route messages into its own logging system. A zerolog adapter and a
// no-op logger are provided.
//
// # Usage
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	logger.Debug("duplicate sample name found, overwriting",
//	    log.String("sample", name))
//
// Tests typically use the no-op logger:
//
//	logger := log.NewNoopLogger()
package log
