// Package engine provides the visualization session used by the plot
// orchestration layer. Session is an explicit object passed to every call
// so tests can substitute a stub implementation.
package engine

import (
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
)

// Dataset is a loaded simulation output: one point table per time step.
type Dataset interface {
	// NumTimeSteps returns the number of loaded time steps.
	NumTimeSteps() int
	// TimeValue returns the simulation time of step i.
	TimeValue(i int) (float64, error)
	// Table returns the point table of step i.
	Table(i int) (*models.PointTable, error)
	// FieldNames returns the field names of the loaded data.
	FieldNames() []string
}

// LineSpec describes a line-sampling filter over a point cloud.
type LineSpec struct {
	// Point1 and Point2 are the line end points.
	Point1 [3]float64
	Point2 [3]float64
	// Resolution is the number of segments to sample; the sampled table
	// holds Resolution+1 rows. Zero selects a default.
	Resolution int
}

// SeriesStyle describes how one series column is drawn in a line chart.
type SeriesStyle struct {
	// Name is the column name in the sampled series.
	Name string
	// Label is the legend label.
	Label string
	// Color is the line color as RGB in [0,1].
	Color [3]float64
	// Dashed draws the line dashed instead of solid.
	Dashed bool
}

// ChartSpec describes a line chart render.
type ChartSpec struct {
	Title  string
	XLabel string
	YLabel string
	// Width and Height are the image size in pixels.
	Width  int
	Height int

	TitleFontSize     float64
	AxisTitleFontSize float64
	AxisLabelFontSize float64
	LegendFontSize    float64
	// LegendSymbolWidth is the width of the legend line sample in points.
	LegendSymbolWidth float64

	// LogY selects a logarithmic left axis. Non-positive values are dropped.
	LogY bool
	// YMin and YMax fix the left axis range; nil leaves it data-driven.
	YMin *float64
	YMax *float64

	// Series lists the columns to draw, in draw order.
	Series []SeriesStyle
}

// ColorBarSpec describes the color legend of a 2D field render.
type ColorBarSpec struct {
	Show       bool
	Title      string
	Horizontal bool
}

// FieldSpec describes a 2D pseudocolor render of one field.
type FieldSpec struct {
	// Width and Height are the image size in pixels.
	Width  int
	Height int

	XLabel string
	YLabel string

	// ColorMap names the color map ("kindlmann", "extended-kindlmann",
	// "black-body", "extended-black-body", "blue-red").
	ColorMap string
	// ValueMin and ValueMax fix the color range; nil uses the data range.
	ValueMin *float64
	ValueMax *float64
	// LogScale maps colors in log10 space. Non-positive values clamp to the
	// smallest positive value.
	LogScale bool

	// Background is the background color as RGB in [0,1].
	Background [3]float64
	// Transparent renders onto a transparent background.
	Transparent bool

	ColorBar ColorBarSpec

	// Annotation is optional text drawn in the upper left corner,
	// e.g. the simulation time.
	Annotation string
}

// Session is the engine entry point. All orchestration functions take an
// explicit Session; there is no ambient global state.
type Session interface {
	// LoadPointData loads a file series matching the glob pattern into a
	// dataset. The format is selected by file extension.
	LoadPointData(pattern string) (Dataset, error)
	// SampleOverLine samples the table along a line, producing a table of
	// sample points carrying the interpolated fields plus an "arc_length"
	// column.
	SampleOverLine(table *models.PointTable, line LineSpec) (*models.PointTable, error)
	// RenderLineChart renders the series as a line chart PNG at path.
	RenderLineChart(spec ChartSpec, series *models.SampledSeries, path string) error
	// RenderField2D renders the named field of the table as a 2D
	// pseudocolor PNG at path.
	RenderField2D(spec FieldSpec, table *models.PointTable, field, path string) error
}
