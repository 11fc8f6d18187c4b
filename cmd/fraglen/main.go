package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/fraglen/internal/adapters/fs"
	"github.com/bft-labs/fraglen/internal/cliconfig"
	"github.com/bft-labs/fraglen/internal/domain"
	"github.com/bft-labs/fraglen/internal/watch"
	"github.com/bft-labs/fraglen/pkg/fraglen"
	"github.com/bft-labs/fraglen/pkg/log"
)

const helpDescription = `
Collect DRAGEN fragment length histograms into a single report section.

Highlights:
  - Finds *.fragment_length_hist.csv files under the given directories.
  - Keeps points supported by at least 5 reads and merges samples across files.
  - Writes a tidy data file plus a line graph section (JSON, optional PNG).
  - Configure via file, env (FRAGLEN_*), or flags; --watch re-runs on change.
`

var longHelp = strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  fraglen ./dragen_output --out-dir report_data
  fraglen run1/ run2/ --ignore-samples 'NTC*' --data-format csv
  fraglen --config $HOME/.fraglen/config.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	root := newRootCmd(&cfg)

	// Setup signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		logger := cliconfig.Logger(cfg.LogLevel)
		logger.Error().Err(err).Msg("fraglen")
		stop()
		os.Exit(1)
	}
}

// newRootCmd builds the fraglen command. Flags are bound to cfg, which holds
// the effective configuration once the command has run.
func newRootCmd(cfg *cliconfig.Config) *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "fraglen [input-dir...]",
		Short:         "Collect DRAGEN fragment length histograms into a report section",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.fraglen/config.toml), then apply flag overrides
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
			if len(args) > 0 {
				cfg.InputDirs = args
				changed["input"] = true
			}

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
					return err
				}
			}

			// Apply environment variables (FRAGLEN_*)
			// These override file config but are overridden by flags (checked via changed map)
			if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := cliconfig.Logger(cfg.LogLevel)
			logger.Debug().Interface("config", cfg).Msg("configuration")

			return run(cmd.Context(), *cfg, logger)
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.fraglen/config.toml)")
	root.Flags().StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "directory for the data file and report section")
	root.Flags().StringVar(&cfg.DataFormat, "data-format", cfg.DataFormat, "data file format: tsv, csv or json")
	root.Flags().BoolVar(&cfg.Plot, "plot", cfg.Plot, "render the line graph to PNG")

	root.Flags().StringSliceVar(&cfg.IgnoreSamples, "ignore-samples", cfg.IgnoreSamples, "glob patterns of sample names to exclude")
	root.Flags().StringSliceVar(&cfg.CleanExts, "clean-ext", cfg.CleanExts, "extensions truncated from sample names")
	root.Flags().BoolVar(&cfg.PrependDirs, "prepend-dirs", cfg.PrependDirs, "prefix sample names with their input directory")

	root.Flags().IntVar(&cfg.MaxFileSizeMB, "max-file-size", cfg.MaxFileSizeMB, "skip input files larger than this many MB")
	root.Flags().BoolVar(&cfg.SkipMalformed, "skip-malformed", cfg.SkipMalformed, "skip files that fail to parse instead of failing")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")

	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-run whenever input files change")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period before a watch re-run")

	return root
}

func run(ctx context.Context, cfg cliconfig.Config, logger zerolog.Logger) error {
	adapter := log.NewZerologAdapterWithLogger(logger)

	m, err := fraglen.New(cfg.Library(), fraglen.WithLogger(adapter))
	if err != nil {
		return fmt.Errorf("create module: %w", err)
	}

	once := func(ctx context.Context) error {
		res, err := m.Run(ctx)
		if err != nil {
			return err
		}
		if len(res.Samples) == 0 {
			logger.Info().Strs("inputs", cfg.InputDirs).Msg("no fragment length data found")
			return nil
		}
		logger.Info().Int("samples", len(res.Samples)).Str("out_dir", cfg.OutDir).Msg("fragment length section written")
		return nil
	}

	if err := once(ctx); err != nil {
		if !cfg.Watch {
			return err
		}
		logger.Error().Err(err).Msg("initial run failed")
	}
	if !cfg.Watch {
		return nil
	}

	glob, ok := fs.DefaultPatterns[domain.FragmentLengthPattern]
	if !ok {
		return domain.ErrUnknownPattern
	}
	w := watch.New(watch.Config{
		Dirs:          cfg.InputDirs,
		Glob:          glob,
		DebounceDelay: cfg.Debounce,
	}, once, adapter)

	logger.Info().Strs("dirs", cfg.InputDirs).Msg("watching for changes")
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info().Msg("stopped watching")
	return nil
}
