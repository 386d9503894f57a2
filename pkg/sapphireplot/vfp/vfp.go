// Package vfp plots Vlasov-Fokker-Planck results: the spherical-harmonic
// coefficients f_lms of the distribution function over configuration space
// and momentum.
package vfp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/engine"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/plot"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/plotprops"
)

// ScaleDistributionFunction derives a solution whose coefficient fields are
// rescaled by p^s for a spectral index s. The momentum p of each row comes
// from the momentum coordinate, exponentiated when the coordinate is ln p.
// The input handle and properties stay untouched; the returned properties
// are a clone configured for the rescaled series.
func ScaleDistributionFunction(handle *sapphireplot.SolutionHandle,
	props *plotprops.VFP, s float64) (*sapphireplot.SolutionHandle, *plotprops.VFP, error) {
	if !props.Momentum {
		return nil, nil, fmt.Errorf("rescaling needs a momentum coordinate: %w",
			models.ErrInvalidArgument)
	}
	axis := props.MomentumAxis()

	scaled := props.Clone()
	scaled.ScaleBySpectralIndex(s)

	derived, err := handle.Derive(func(table *models.PointTable) (*models.PointTable, error) {
		c := table.Clone()
		for _, index := range props.Indices {
			for _, prefix := range props.Prefixes {
				plain := plotprops.FLMSName(prefix, index)
				if !c.HasField(plain) {
					continue
				}
				f, err := c.Field(plain)
				if err != nil {
					return nil, err
				}
				values := make([]float64, len(f))
				for i, v := range f {
					p := c.Coordinate(i, axis)
					if props.LogarithmicP {
						p = math.Exp(p)
					}
					values[i] = math.Pow(p, s) * v
				}
				if err := c.AddField(plotprops.ScaledFLMSName(prefix, index), values); err != nil {
					return nil, err
				}
			}
		}
		return c, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return derived, scaled, nil
}

// PlotFLMSOverX renders the configured coefficients along a spatial
// direction of the active time step and writes the line-out data next to
// the image.
func PlotFLMSOverX(session engine.Session, handle *sapphireplot.SolutionHandle,
	props *plotprops.VFP, direction plot.Direction, offset [3]float64,
	o plot.ChartOptions, dir, name string) (*models.SampledSeries, error) {
	table, err := handle.Table()
	if err != nil {
		return nil, err
	}
	series, err := plot.LineOut(session, table, &props.Properties, direction, offset)
	if err != nil {
		return nil, err
	}
	if o.XLabel == "" {
		o.XLabel = plot.AxisLabel(&props.Properties, direction)
	}
	if err := plot.LineChart(session, series, &props.Properties, o, dir, name); err != nil {
		return nil, err
	}
	return series, nil
}

// PlotFLMSOverP renders the configured coefficients along the momentum
// coordinate.
func PlotFLMSOverP(session engine.Session, handle *sapphireplot.SolutionHandle,
	props *plotprops.VFP, offset [3]float64,
	o plot.ChartOptions, dir, name string) (*models.SampledSeries, error) {
	if !props.Momentum {
		return nil, fmt.Errorf("momentum line-out needs a momentum coordinate: %w",
			models.ErrInvalidArgument)
	}
	direction := [3]plot.Direction{plot.DirX, plot.DirY, plot.DirZ}[props.MomentumAxis()]
	if o.XLabel == "" {
		o.XLabel = props.MomentumLabel()
	}
	return PlotFLMSOverX(session, handle, props, direction, offset, o, dir, name)
}

// Field2DOptions configures PlotFLMS2D.
type Field2DOptions struct {
	// ValueMin and ValueMax fix the color range; nil uses the data range.
	ValueMin *float64
	ValueMax *float64
	// LinearScale switches off the default logarithmic color scale.
	LinearScale bool
	// ShowTime annotates each image with the simulation time.
	ShowTime bool
	// Animate renders every time step as `<name>_<field>.<frame>.png`
	// instead of only the active step.
	Animate bool
}

// PlotFLMS2D renders each configured coefficient of the active time step as
// a 2D pseudocolor image `<name>_<field>.png`. Distribution functions span
// orders of magnitude, so the color scale is logarithmic unless disabled.
func PlotFLMS2D(session engine.Session, handle *sapphireplot.SolutionHandle,
	props *plotprops.VFP, o Field2DOptions, dir, name string) error {
	table, err := handle.Table()
	if err != nil {
		return err
	}
	for _, field := range props.SeriesNames {
		fo := plot.FieldOptions{
			ValueMin:      o.ValueMin,
			ValueMax:      o.ValueMax,
			LogScale:      !o.LinearScale,
			ColorBarTitle: props.Label(field),
		}
		if o.ShowTime {
			fo.Annotation = plot.TimeAnnotation(handle.TimeValue())
		}
		imageName := name + "_" + field

		if o.Animate {
			err = plot.SaveAnimation(handle, dir, imageName,
				func(frame *models.PointTable, t float64, path string) error {
					if o.ShowTime {
						fo.Annotation = plot.TimeAnnotation(t)
					}
					return session.RenderField2D(plot.NewFieldSpec(&props.Properties, fo), frame, field, path)
				})
		} else {
			err = plot.RenderField2D(session, table, &props.Properties, field, fo, dir, imageName)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// FitCutoff converts a lower momentum bound into the abscissa cutoff of a
// spectral fit: ln(pMin) when the momentum coordinate is ln p, pMin itself
// otherwise. Non-positive bounds have no logarithm and would mask nothing,
// so they are rejected.
func FitCutoff(pMin float64, logarithmicP bool) (float64, error) {
	if pMin <= 0 {
		return 0, fmt.Errorf("momentum bound %g is not positive: %w",
			pMin, models.ErrInvalidArgument)
	}
	if logarithmicP {
		return math.Log(pMin), nil
	}
	return pMin, nil
}

// SpectralIndex fits the spectral index of a coefficient: the slope of
// ln f over ln p for samples with p-coordinate >= pMin. The series'
// abscissa must be ln p. Only samples with positive f enter the fit; fewer
// than two fit points are an error.
func SpectralIndex(series *models.SampledSeries, field string, pMin float64) (float64, error) {
	f, err := series.Column(field)
	if err != nil {
		return 0, err
	}
	var lnP, lnF []float64
	for i, x := range series.X {
		if x < pMin || f[i] <= 0 {
			continue
		}
		lnP = append(lnP, x)
		lnF = append(lnF, math.Log(f[i]))
	}
	if len(lnP) < 2 {
		return 0, fmt.Errorf("%d usable samples for spectral fit: %w",
			len(lnP), models.ErrEmpty)
	}
	_, slope := stat.LinearRegression(lnP, lnF, nil, false)
	return slope, nil
}
