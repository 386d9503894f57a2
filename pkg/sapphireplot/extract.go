// Package sapphireplot converts simulation output into plot-ready data.
package sapphireplot

import (
	"fmt"
	"sort"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
)

// Bounds restricts an extraction to coordinates within [Min, Max],
// inclusive. A nil bound is unbounded on that side.
type Bounds struct {
	Min *float64
	Max *float64
}

// Unbounded is the zero Bounds, restricting nothing.
var Unbounded = Bounds{}

// BoundsFrom builds inclusive bounds from literal values.
func BoundsFrom(min, max float64) Bounds {
	return Bounds{Min: &min, Max: &max}
}

// axisNames maps the coordinate axis selector to a series column name.
var axisNames = [3]string{"Points_X", "Points_Y", "Points_Z"}

// Extract converts a point table into a sampled series: the coordinate
// along the selected axis (0, 1 or 2) paired with the requested field
// columns, masked to bounds and sorted ascending by coordinate. The sort is
// stable, so rows with equal coordinates keep their original order.
//
// Masking away every row yields an empty, valid series rather than an
// error; inverted bounds (min > max) behave the same way.
func Extract(table *models.PointTable, fieldNames []string, axis int, bounds Bounds) (*models.SampledSeries, error) {
	if axis < 0 || axis > 2 {
		return nil, fmt.Errorf("axis %d outside {0,1,2}: %w", axis, ErrInvalidArgument)
	}

	columns := make([][]float64, len(fieldNames))
	for i, name := range fieldNames {
		values, err := table.Field(name)
		if err != nil {
			return nil, err
		}
		columns[i] = values
	}

	// Mask rows by the coordinate bounds, inclusive on both sides.
	var rows []int
	for i := 0; i < table.NumRows(); i++ {
		x := table.Point(i)[axis]
		if bounds.Min != nil && x < *bounds.Min {
			continue
		}
		if bounds.Max != nil && x > *bounds.Max {
			continue
		}
		rows = append(rows, i)
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return table.Point(rows[a])[axis] < table.Point(rows[b])[axis]
	})

	series := &models.SampledSeries{
		XName:  axisNames[axis],
		X:      make([]float64, len(rows)),
		Names:  make([]string, len(fieldNames)),
		Values: make([][]float64, len(fieldNames)),
	}
	copy(series.Names, fieldNames)
	for j, row := range rows {
		series.X[j] = table.Point(row)[axis]
	}
	for i, column := range columns {
		values := make([]float64, len(rows))
		for j, row := range rows {
			values[j] = column[row]
		}
		series.Values[i] = values
	}
	return series, nil
}

// ExtractByField behaves like Extract but uses a field column (e.g.
// "arc_length") as the coordinate instead of a spatial axis.
func ExtractByField(table *models.PointTable, fieldNames []string, xField string, bounds Bounds) (*models.SampledSeries, error) {
	x, err := table.Field(xField)
	if err != nil {
		return nil, err
	}
	columns := make([][]float64, len(fieldNames))
	for i, name := range fieldNames {
		values, err := table.Field(name)
		if err != nil {
			return nil, err
		}
		columns[i] = values
	}

	var rows []int
	for i := range x {
		if bounds.Min != nil && x[i] < *bounds.Min {
			continue
		}
		if bounds.Max != nil && x[i] > *bounds.Max {
			continue
		}
		rows = append(rows, i)
	}
	sort.SliceStable(rows, func(a, b int) bool { return x[rows[a]] < x[rows[b]] })

	series := &models.SampledSeries{
		XName:  xField,
		X:      make([]float64, len(rows)),
		Names:  make([]string, len(fieldNames)),
		Values: make([][]float64, len(fieldNames)),
	}
	copy(series.Names, fieldNames)
	for j, row := range rows {
		series.X[j] = x[row]
	}
	for i, column := range columns {
		values := make([]float64, len(rows))
		for j, row := range rows {
			values[j] = column[row]
		}
		series.Values[i] = values
	}
	return series, nil
}
