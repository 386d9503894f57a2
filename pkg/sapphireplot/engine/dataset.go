package engine

import (
	"fmt"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
)

// memDataset is an in-memory dataset holding one table per time step.
type memDataset struct {
	tables []*models.PointTable
	times  []float64
}

// NewDataset builds a dataset from pre-loaded tables and their time values.
// times may be nil, in which case step indices are used as time values.
func NewDataset(tables []*models.PointTable, times []float64) (Dataset, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("dataset without time steps: %w", models.ErrEmpty)
	}
	if times == nil {
		times = make([]float64, len(tables))
		for i := range times {
			times[i] = float64(i)
		}
	}
	if len(times) != len(tables) {
		return nil, fmt.Errorf("%d time values for %d tables: %w",
			len(times), len(tables), models.ErrInvalidArgument)
	}
	return &memDataset{tables: tables, times: times}, nil
}

func (d *memDataset) NumTimeSteps() int {
	return len(d.tables)
}

func (d *memDataset) TimeValue(i int) (float64, error) {
	if i < 0 || i >= len(d.times) {
		return 0, fmt.Errorf("time step %d outside [0,%d): %w",
			i, len(d.times), models.ErrInvalidArgument)
	}
	return d.times[i], nil
}

func (d *memDataset) Table(i int) (*models.PointTable, error) {
	if i < 0 || i >= len(d.tables) {
		return nil, fmt.Errorf("time step %d outside [0,%d): %w",
			i, len(d.tables), models.ErrInvalidArgument)
	}
	return d.tables[i], nil
}

func (d *memDataset) FieldNames() []string {
	return d.tables[0].FieldNames()
}
