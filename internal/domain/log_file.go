package domain

// FragmentLengthPattern is the search pattern ID for fragment-length
// histogram files.
const FragmentLengthPattern = "dragen/fragment_length_hist"

// LogFile is one input file handed to a module by file discovery.
type LogFile struct {
	// Name is the base file name, e.g. "T_SRR7890936.fragment_length_hist.csv".
	Name string

	// Root is the directory containing the file.
	Root string

	// Path is the full path to the file.
	Path string

	// Content is the raw text of the file.
	Content string
}
