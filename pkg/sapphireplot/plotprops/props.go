// Package plotprops collects typed styling configuration for plots.
// Properties values are immutable by convention: derive variants with
// Clone and mutate the copy, never a shared value.
package plotprops

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
)

// DataType specifies whether the solution carries point or cell data.
type DataType string

const (
	// PointData marks DG-style point data.
	PointData DataType = "POINTS"
	// CellData marks FV-style cell data.
	CellData DataType = "CELLS"
)

// LineStyle selects how a series line is drawn.
type LineStyle int

const (
	// LineSolid draws a solid line.
	LineSolid LineStyle = iota + 1
	// LineDashed draws a dashed line.
	LineDashed
)

// SamplingPattern selects where a line-out samples the data.
type SamplingPattern string

const (
	// SampleUniform samples uniformly along the line.
	SampleUniform SamplingPattern = "uniform"
	// SampleSegmentCenters samples at segment centers.
	SampleSegmentCenters SamplingPattern = "center"
	// SampleCellBoundaries samples at cell boundaries.
	SampleCellBoundaries SamplingPattern = "boundary"
)

// Orientation places a color bar vertically or horizontally.
type Orientation int

const (
	// Vertical places the color bar at the right edge.
	Vertical Orientation = iota
	// Horizontal places the color bar at the bottom edge.
	Horizontal
)

// RGB is a color with components in [0,1].
type RGB [3]float64

// defaultLineColors is the palette cycled through for series without a
// configured color.
var defaultLineColors = []RGB{
	{0.30, 0.69, 0.29},
	{0.22, 0.49, 0.72},
	{0.60, 0.31, 0.64},
	{0.89, 0.10, 0.11},
	{1.00, 0.50, 0.00},
	{0.00, 0.00, 0.00},
}

// Properties collects styling for plotting.
type Properties struct {
	// SeriesNames lists the series to load and show.
	SeriesNames []string
	// DataType specifies if the solution has point or cell data.
	DataType DataType
	// Labels maps series names to chart labels.
	Labels map[string]string
	// LineColors maps series names to line colors.
	LineColors map[string]RGB
	// LineStyles maps series names to line styles.
	LineStyles map[string]LineStyle
	// ColorMap names the color map for 2D renders.
	ColorMap string

	// Font sizes in points.
	TitleFontSize     float64
	AxisTitleFontSize float64
	AxisLabelFontSize float64
	LegendFontSize    float64
	// LegendSymbolWidth is the width of the legend line sample in points.
	LegendSymbolWidth float64
	// TextColor colors annotations; gray reads well on light and dark
	// backgrounds.
	TextColor RGB

	// ColorBarPosition optionally fixes the color bar position in
	// normalized view coordinates.
	ColorBarPosition *[2]float64
	// ColorBarOrientation places the color bar.
	ColorBarOrientation Orientation

	// PreviewSize1D and PreviewSize2D are the image sizes in pixels.
	PreviewSize1D [2]int
	PreviewSize2D [2]int

	// SamplingPattern and SamplingResolution control line-outs.
	SamplingPattern    SamplingPattern
	SamplingResolution int

	// AnimationTransparentBackground renders animation frames onto a
	// transparent background.
	AnimationTransparentBackground bool

	// GridLabels are the axis titles per spatial direction.
	GridLabels [3]string
}

// Default returns the default plot properties.
func Default() Properties {
	return Properties{
		DataType:          PointData,
		Labels:            make(map[string]string),
		LineColors:        make(map[string]RGB),
		LineStyles:        make(map[string]LineStyle),
		ColorMap:          "kindlmann",
		TitleFontSize:     30,
		AxisTitleFontSize: 24,
		AxisLabelFontSize: 18,
		LegendFontSize:    18,
		LegendSymbolWidth: 18,
		TextColor:         RGB{0.5, 0.5, 0.5},
		PreviewSize1D:     [2]int{1280, 720},
		PreviewSize2D:     [2]int{1280, 1280},
		SamplingPattern:   SampleUniform,
		GridLabels:        [3]string{"$x$", "$y$", "$z$"},
	}
}

// Clone returns a deep, independent copy. Mutating the clone never affects
// the original.
func (p *Properties) Clone() *Properties {
	dst := &Properties{}
	if err := deepcopy.Copy(dst, p); err != nil {
		// Properties contains only copyable fields; a failure here is a
		// programming error.
		panic(fmt.Sprintf("plotprops: clone failed: %v", err))
	}
	return dst
}

// Label returns the chart label of a series, defaulting to its name.
func (p *Properties) Label(name string) string {
	if label, ok := p.Labels[name]; ok {
		return label
	}
	return name
}

// LineColor returns the configured color of a series. Unconfigured series
// cycle through a default palette by their position i.
func (p *Properties) LineColor(name string, i int) RGB {
	if c, ok := p.LineColors[name]; ok {
		return c
	}
	return defaultLineColors[i%len(defaultLineColors)]
}

// LineStyleOf returns the configured line style of a series, defaulting to
// solid.
func (p *Properties) LineStyleOf(name string) LineStyle {
	if s, ok := p.LineStyles[name]; ok {
		return s
	}
	return LineSolid
}

// SetSeries registers a series with label, color and style in one call.
func (p *Properties) SetSeries(name, label string, color RGB, style LineStyle) {
	p.SeriesNames = append(p.SeriesNames, name)
	p.Labels[name] = label
	p.LineColors[name] = color
	p.LineStyles[name] = style
}

// validDimension checks a dimensionality parameter.
func validDimension(dimension int) error {
	if dimension < 1 || dimension > 3 {
		return fmt.Errorf("dimension %d outside {1,2,3}: %w",
			dimension, models.ErrInvalidArgument)
	}
	return nil
}
