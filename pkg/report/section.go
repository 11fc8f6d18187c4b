package report

import "github.com/bft-labs/fraglen/pkg/histogram"

// DefaultSmoothPoints is the target number of points along the x axis.
const DefaultSmoothPoints = 300

// DefaultTooltipTemplate shows the exact x (bp) and y (reads) of a point.
const DefaultTooltipTemplate = "<b>{point.x} bp</b>: {point.y} reads"

// LineGraphConfig holds the fixed parameters of a line chart.
type LineGraphConfig struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	YLabel          string  `json:"ylab"`
	XLabel          string  `json:"xlab"`
	YMin            float64 `json:"ymin"`
	XMin            float64 `json:"xmin"`
	TooltipTemplate string  `json:"tt_label"`
	SmoothPoints    int     `json:"smooth_points"`
}

// DefaultLineGraphConfig returns a config with both axis minima at zero, the
// default tooltip and 300 smoothing points. ID, Title and the axis labels are
// left for the caller.
func DefaultLineGraphConfig() LineGraphConfig {
	return LineGraphConfig{
		YMin:            0,
		XMin:            0,
		TooltipTemplate: DefaultTooltipTemplate,
		SmoothPoints:    DefaultSmoothPoints,
	}
}

// LineGraph is a dataset together with the config used to draw it.
type LineGraph struct {
	Data   histogram.Dataset `json:"data"`
	Config LineGraphConfig   `json:"config"`
}

// SampleStats summarises one sample's retained fragment lengths.
type SampleStats struct {
	Reads  int     `json:"reads"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Mode   int     `json:"mode"`
}

// Section is one chart plus its descriptive text, registered with a report.
type Section struct {
	Name        string                 `json:"name"`
	Anchor      string                 `json:"anchor"`
	Description string                 `json:"description"`
	Plot        LineGraph              `json:"plot"`
	Stats       map[string]SampleStats `json:"stats,omitempty"`
}
