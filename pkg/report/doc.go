// Package report describes the plot-ready output handed to a report host.
//
// A [Section] carries descriptive text and a [LineGraph]: the dataset plus an
// explicit [LineGraphConfig]. The config replaces a loose bag of plotting
// options with named fields and fixed defaults (see [DefaultLineGraphConfig]).
//
// [Smooth] reduces a dense distribution to a bounded number of display
// points. Renderers call it with LineGraphConfig.SmoothPoints.
package report
