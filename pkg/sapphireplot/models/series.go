package models

import "fmt"

// SampledSeries is the result of a coordinate-direction extraction: an
// ordered coordinate sequence paired with one or more equally long field
// value sequences, sorted ascending by coordinate.
type SampledSeries struct {
	// XName is the name of the coordinate column (e.g. "Points_X").
	XName string
	// X holds the coordinate values, non-decreasing.
	X []float64
	// Names holds the field names, parallel to Values.
	Names []string
	// Values holds one column per entry in Names; Values[i][j] is the value
	// of field Names[i] at coordinate X[j].
	Values [][]float64
}

// Len returns the number of sampled points.
func (s *SampledSeries) Len() int {
	return len(s.X)
}

// Empty reports whether the series holds no points.
func (s *SampledSeries) Empty() bool {
	return len(s.X) == 0
}

// Column returns the values of the named field column.
func (s *SampledSeries) Column(name string) ([]float64, error) {
	for i, n := range s.Names {
		if n == name {
			return s.Values[i], nil
		}
	}
	return nil, fmt.Errorf("series column %q: %w", name, ErrNotFound)
}
