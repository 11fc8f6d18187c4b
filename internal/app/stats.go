package app

import (
	"gonum.org/v1/gonum/stat"

	"github.com/bft-labs/fraglen/pkg/histogram"
	"github.com/bft-labs/fraglen/pkg/report"
)

// Summarize computes read-weighted statistics for every sample with at least
// one retained fragment length. Samples with an empty distribution are left
// out.
func Summarize(ds histogram.Dataset) map[string]report.SampleStats {
	out := make(map[string]report.SampleStats, len(ds))
	for name, d := range ds {
		if len(d) == 0 {
			continue
		}
		out[name] = summarize(d)
	}
	return out
}

func summarize(d histogram.Distribution) report.SampleStats {
	lengths := d.Lengths()
	x := make([]float64, len(lengths))
	w := make([]float64, len(lengths))

	var s report.SampleStats
	best := -1
	for i, l := range lengths {
		c := d[l]
		x[i] = float64(l)
		w[i] = float64(c)
		s.Reads += c
		// Ties resolve to the shortest length.
		if c > best {
			best = c
			s.Mode = l
		}
	}

	s.Mean = stat.Mean(x, w)
	s.Median = stat.Quantile(0.5, stat.Empirical, x, w)
	return s
}
