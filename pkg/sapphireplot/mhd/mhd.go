// Package mhd plots ideal-MHD results: the conserved quantities of the
// solver plus derived velocity and pressure, for both native output and
// Athena++ reference data.
package mhd

import (
	"fmt"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/engine"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/plot"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/plotprops"
)

// PlotQuantities1D renders a line-out of the configured quantities of the
// active time step, one chart per quantity, named `<name>_<quantity>.png`.
// MHD quantities live on very different scales, so unlike the distribution
// function they do not share a single chart.
func PlotQuantities1D(session engine.Session, handle *sapphireplot.SolutionHandle,
	props *plotprops.MHD, direction plot.Direction, offset [3]float64,
	o plot.ChartOptions, dir, name string) error {
	table, err := handle.Table()
	if err != nil {
		return err
	}
	if o.XLabel == "" {
		o.XLabel = plot.AxisLabel(&props.Properties, direction)
	}

	for _, quantity := range props.SeriesNames {
		single := props.Clone()
		single.SeriesNames = []string{quantity}

		series, err := plot.LineOut(session, table, single, direction, offset)
		if err != nil {
			return fmt.Errorf("quantity %q: %w", quantity, err)
		}
		qo := o
		if qo.YLabel == "" {
			qo.YLabel = props.Label(quantity)
		}
		if err := plot.LineChart(session, series, single, qo, dir, name+"_"+quantity); err != nil {
			return fmt.Errorf("quantity %q: %w", quantity, err)
		}
	}
	return nil
}

// PlotQuantity2D renders one quantity of the active time step as a 2D
// pseudocolor image `<name>_<quantity>.png`.
func PlotQuantity2D(session engine.Session, handle *sapphireplot.SolutionHandle,
	props *plotprops.MHD, quantity string, o plot.FieldOptions, dir, name string) error {
	table, err := handle.Table()
	if err != nil {
		return err
	}
	if !table.HasField(quantity) {
		return fmt.Errorf("quantity %q: %w", quantity, models.ErrNotFound)
	}
	if o.ColorBarTitle == "" {
		o.ColorBarTitle = props.Label(quantity)
	}
	return plot.RenderField2D(session, table, &props.Properties, quantity, o, dir, name+"_"+quantity)
}
