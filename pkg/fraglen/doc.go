// Package fraglen builds a fragment-length histogram report section.
//
// It discovers *.fragment_length_hist.csv files, parses every sample's
// fragment length distribution, drops points supported by fewer than five
// reads, combines the samples across files and hands the result to a line
// chart. It can be used through the fraglen command or embedded in a larger
// reporting tool.
//
// # Basic Usage
//
//	cfg := fraglen.DefaultConfig()
//	cfg.InputDirs = []string{"/path/to/dragen/output"}
//	cfg.OutDir = "/path/to/report_data"
//
//	m, err := fraglen.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := m.Run(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Samples)
//
// # Host Collaborators
//
// An embedding host replaces any of the defaults with its own policy:
//
//	m, err := fraglen.New(cfg,
//	    fraglen.WithLogger(myLogger),
//	    fraglen.WithNameCleaner(myCleaner),
//	    fraglen.WithSectionRegistry(myReport),
//	)
//
// # Empty Results
//
// When no sample remains after discovery and exclusion, Run returns an empty
// Result and writes nothing. This is not an error.
package fraglen
