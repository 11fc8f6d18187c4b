package report

import (
	"errors"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/bft-labs/fraglen/pkg/report"
)

// ErrNothingToPlot is returned when no sample has a point to draw.
var ErrNothingToPlot = errors.New("report: nothing to plot")

// Default chart size in pixels.
const (
	DefaultWidth  = 1024
	DefaultHeight = 512
)

// RenderLineGraph draws g as a PNG to w. Each sample becomes one series,
// smoothed down to the configured number of points. Axes start at the
// configured minima.
func RenderLineGraph(w io.Writer, g report.LineGraph, width, height int) error {
	cfg := g.Config
	xMax, yMax := cfg.XMin, cfg.YMin

	var series []chart.Series
	for _, name := range g.Data.Names() {
		points := report.Smooth(g.Data[name], cfg.SmoothPoints)
		if len(points) == 0 {
			continue
		}

		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i], ys[i] = p.X, p.Y
			if p.X > xMax {
				xMax = p.X
			}
			if p.Y > yMax {
				yMax = p.Y
			}
		}
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
		})
	}
	if len(series) == 0 {
		return ErrNothingToPlot
	}

	if xMax <= cfg.XMin {
		xMax = cfg.XMin + 1
	}
	if yMax <= cfg.YMin {
		yMax = cfg.YMin + 1
	}

	graph := chart.Chart{
		Title:  cfg.Title,
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:  cfg.XLabel,
			Range: &chart.ContinuousRange{Min: cfg.XMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  cfg.YLabel,
			Range: &chart.ContinuousRange{Min: cfg.YMin, Max: yMax},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}
