// Package plot orchestrates rendering: it turns loaded solutions and plot
// properties into line charts, 2D field renders and animations, and writes
// the extracted data alongside the images.
package plot

import (
	"fmt"
	"path/filepath"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/engine"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/output"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/plotprops"
)

// Direction selects the sampling line of a line-out.
type Direction string

const (
	// DirX samples along the x axis.
	DirX Direction = "x"
	// DirY samples along the y axis.
	DirY Direction = "y"
	// DirZ samples along the z axis.
	DirZ Direction = "z"
	// DirDiagonal samples along the domain diagonal; the abscissa is the
	// arc length along the line.
	DirDiagonal Direction = "d"
)

// axis returns the coordinate axis of an axis-aligned direction.
func (d Direction) axis() (int, error) {
	switch d {
	case DirX:
		return 0, nil
	case DirY:
		return 1, nil
	case DirZ:
		return 2, nil
	}
	return 0, fmt.Errorf("direction %q: %w", string(d), models.ErrInvalidArgument)
}

// ChartOptions configures a single line chart.
type ChartOptions struct {
	Title  string
	XLabel string
	YLabel string
	// LogY selects a logarithmic ordinate.
	LogY bool
	// YMin and YMax fix the ordinate range; nil leaves it data-driven.
	YMin *float64
	YMax *float64
	// WriteXLSX additionally writes the data as an xlsx workbook.
	WriteXLSX bool
}

// chartSpec translates properties and options into an engine chart spec.
func chartSpec(props *plotprops.Properties, o ChartOptions, names []string) engine.ChartSpec {
	spec := engine.ChartSpec{
		Title:             o.Title,
		XLabel:            o.XLabel,
		YLabel:            o.YLabel,
		Width:             props.PreviewSize1D[0],
		Height:            props.PreviewSize1D[1],
		TitleFontSize:     props.TitleFontSize,
		AxisTitleFontSize: props.AxisTitleFontSize,
		AxisLabelFontSize: props.AxisLabelFontSize,
		LegendFontSize:    props.LegendFontSize,
		LegendSymbolWidth: props.LegendSymbolWidth,
		LogY:              o.LogY,
		YMin:              o.YMin,
		YMax:              o.YMax,
	}
	for i, name := range names {
		spec.Series = append(spec.Series, engine.SeriesStyle{
			Name:   name,
			Label:  props.Label(name),
			Color:  props.LineColor(name, i),
			Dashed: props.LineStyleOf(name) == plotprops.LineDashed,
		})
	}
	return spec
}

// LineChart renders a sampled series as `<name>.png` in dir and writes the
// data as `<name>.csv` next to it.
func LineChart(session engine.Session, series *models.SampledSeries,
	props *plotprops.Properties, o ChartOptions, dir, name string) error {
	spec := chartSpec(props, o, series.Names)
	if err := session.RenderLineChart(spec, series, filepath.Join(dir, name+".png")); err != nil {
		return err
	}
	if err := output.WriteSeriesCSV(series, filepath.Join(dir, name+".csv")); err != nil {
		return err
	}
	if o.WriteXLSX {
		return output.WriteSeriesXLSX(series, name, filepath.Join(dir, name+".xlsx"))
	}
	return nil
}

// LineOut samples the table along a line through the domain and extracts
// the configured series. Axis-aligned directions pass through offset in the
// remaining coordinates and use the coordinate as abscissa; the diagonal
// runs between the domain corners and uses the arc length.
func LineOut(session engine.Session, table *models.PointTable,
	props *plotprops.Properties, direction Direction, offset [3]float64) (*models.SampledSeries, error) {
	bounds := table.Bounds()

	var line engine.LineSpec
	if direction == DirDiagonal {
		line = engine.LineSpec{
			Point1: [3]float64{bounds[0] + offset[0], bounds[2] + offset[1], bounds[4] + offset[2]},
			Point2: [3]float64{bounds[1] + offset[0], bounds[3] + offset[1], bounds[5] + offset[2]},
		}
	} else {
		axis, err := direction.axis()
		if err != nil {
			return nil, err
		}
		line.Point1 = offset
		line.Point2 = offset
		line.Point1[axis] = bounds[2*axis]
		line.Point2[axis] = bounds[2*axis+1]
	}
	line.Resolution = props.SamplingResolution

	sampled, err := session.SampleOverLine(table, line)
	if err != nil {
		return nil, err
	}
	if direction == DirDiagonal {
		return sapphireplot.ExtractByField(sampled, props.SeriesNames,
			"arc_length", sapphireplot.Unbounded)
	}
	axis, err := direction.axis()
	if err != nil {
		return nil, err
	}
	return sapphireplot.Extract(sampled, props.SeriesNames, axis, sapphireplot.Unbounded)
}

// AxisLabel returns the abscissa title of a line-out direction.
func AxisLabel(props *plotprops.Properties, direction Direction) string {
	if direction == DirDiagonal {
		return "$d$"
	}
	axis, err := direction.axis()
	if err != nil {
		return string(direction)
	}
	return props.GridLabels[axis]
}

// FieldOptions configures a single 2D field render.
type FieldOptions struct {
	// ValueMin and ValueMax fix the color range; nil uses the data range.
	ValueMin *float64
	ValueMax *float64
	// LogScale maps colors in log10 space.
	LogScale bool
	// ColorBarTitle labels the color legend; empty hides the bar.
	ColorBarTitle string
	// Annotation is optional text drawn into the image.
	Annotation string
}

// NewFieldSpec translates properties and options into an engine field spec.
func NewFieldSpec(props *plotprops.Properties, o FieldOptions) engine.FieldSpec {
	return engine.FieldSpec{
		Width:       props.PreviewSize2D[0],
		Height:      props.PreviewSize2D[1],
		XLabel:      props.GridLabels[0],
		YLabel:      props.GridLabels[1],
		ColorMap:    props.ColorMap,
		ValueMin:    o.ValueMin,
		ValueMax:    o.ValueMax,
		LogScale:    o.LogScale,
		Background:  [3]float64{1, 1, 1},
		Transparent: props.AnimationTransparentBackground,
		Annotation:  o.Annotation,
		ColorBar: engine.ColorBarSpec{
			Show:       o.ColorBarTitle != "",
			Title:      o.ColorBarTitle,
			Horizontal: props.ColorBarOrientation == plotprops.Horizontal,
		},
	}
}

// RenderField2D renders one field of the table as `<name>.png` in dir.
func RenderField2D(session engine.Session, table *models.PointTable,
	props *plotprops.Properties, field string, o FieldOptions, dir, name string) error {
	spec := NewFieldSpec(props, o)
	return session.RenderField2D(spec, table, field, filepath.Join(dir, name+".png"))
}

// FramePath names the PNG of animation frame i: `<name>.<frame>.png` with a
// zero-padded frame number, so frames sort correctly.
func FramePath(dir, name string, i int) string {
	return filepath.Join(dir, fmt.Sprintf("%s.%04d.png", name, i))
}

// TimeAnnotation formats a simulation time for display in a plot.
func TimeAnnotation(t float64) string {
	return fmt.Sprintf("$t = %.3g$", t)
}

// SaveAnimation renders one frame per time step of the handle. The render
// callback receives the step's table, its simulation time and the frame's
// output path.
func SaveAnimation(handle *sapphireplot.SolutionHandle, dir, name string,
	render func(table *models.PointTable, t float64, path string) error) error {
	if handle.NumTimeSteps() == 0 {
		return fmt.Errorf("no time steps to animate: %w", models.ErrEmpty)
	}
	for i := 0; i < handle.NumTimeSteps(); i++ {
		table, err := handle.TableAt(i)
		if err != nil {
			return err
		}
		t, err := timeAt(handle, i)
		if err != nil {
			return err
		}
		if err := render(table, t, FramePath(dir, name, i)); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

// timeAt reads a step's time without moving the handle's active index.
func timeAt(handle *sapphireplot.SolutionHandle, i int) (float64, error) {
	prev := handle.TimeIndex()
	if err := handle.SetTimeIndex(i); err != nil {
		return 0, err
	}
	t := handle.TimeValue()
	return t, handle.SetTimeIndex(prev)
}
