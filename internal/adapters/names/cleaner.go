// Package names provides the default sample name policies: cleaning raw
// names into display names and excluding samples by pattern.
package names

import (
	"path/filepath"
	"strings"

	"github.com/bft-labs/fraglen/internal/domain"
)

// DefaultCleanExts are truncated from sample names, along with everything
// after them.
var DefaultCleanExts = []string{
	".fragment_length_hist",
	".csv",
	".bam",
	".cram",
	".fastq",
	".fq",
	".gz",
}

// dirSeparator joins a prepended directory and the sample name.
const dirSeparator = " | "

// Cleaner implements ports.SampleNameCleaner.
type Cleaner struct {
	exts        []string
	prependDirs bool
}

// NewCleaner creates a cleaner. When prependDirs is set the name of the
// directory holding the file is prefixed to every sample.
func NewCleaner(exts []string, prependDirs bool) *Cleaner {
	return &Cleaner{exts: exts, prependDirs: prependDirs}
}

// CleanSampleName truncates raw at the first configured extension and trims
// surrounding whitespace and trailing separators. If nothing is left the
// raw name is used unchanged.
func (c *Cleaner) CleanSampleName(raw string, f domain.LogFile) string {
	name := raw
	for _, ext := range c.exts {
		if ext == "" {
			continue
		}
		if i := strings.Index(name, ext); i >= 0 {
			name = name[:i]
		}
	}
	name = strings.TrimRight(strings.TrimSpace(name), "_.-")
	if name == "" {
		name = raw
	}

	if c.prependDirs {
		if dir := filepath.Base(f.Root); dir != "." && dir != string(filepath.Separator) && dir != "" {
			name = dir + dirSeparator + name
		}
	}
	return name
}
