// Package histogram parses per-sample fragment-length histograms.
//
// The input is the text emitted by the sequencing pipeline as
// *.fragment_length_hist.csv. It holds one section per sample:
//
//	#Sample: N_SRR7890889
//	FragmentLength,Count
//	36,1
//	41,6
//	#Sample: T_SRR7890936_50pc
//	FragmentLength,Count
//	53,2
//	54,10
//
// Rows supported by fewer than [MinCountToShow] reads are dropped while
// parsing so that the long flat tail never reaches the plot.
//
// # Usage
//
//	ds, err := histogram.Parse(text)
//	if err != nil {
//	    return err
//	}
//	for _, name := range ds.Names() {
//	    fmt.Println(name, ds[name].Total())
//	}
//
// Results from several files are combined with [MergeSample], which replaces
// an existing sample instead of merging the two distributions.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package histogram
