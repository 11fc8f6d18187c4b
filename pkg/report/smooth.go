package report

import "github.com/bft-labs/fraglen/pkg/histogram"

// Point is one (x, y) pair on a line chart.
type Point struct {
	X float64
	Y float64
}

// Smooth returns d as points in ascending x order, reduced to at most points
// entries. Consecutive lengths are grouped into equal-sized bins; each bin
// is drawn at its first length with the mean count of its members. A
// distribution that already fits, or points <= 0, is returned unreduced.
func Smooth(d histogram.Distribution, points int) []Point {
	lengths := d.Lengths()
	if points <= 0 || len(lengths) <= points {
		out := make([]Point, 0, len(lengths))
		for _, l := range lengths {
			out = append(out, Point{X: float64(l), Y: float64(d[l])})
		}
		return out
	}

	out := make([]Point, 0, points)
	for b := 0; b < points; b++ {
		lo := b * len(lengths) / points
		hi := (b + 1) * len(lengths) / points
		if lo == hi {
			continue
		}
		sum := 0
		for _, l := range lengths[lo:hi] {
			sum += d[l]
		}
		out = append(out, Point{
			X: float64(lengths[lo]),
			Y: float64(sum) / float64(hi-lo),
		})
	}
	return out
}
