// Package models defines data structures for simulation plot data.
package models

import "fmt"

// PointTable represents a row-oriented pipeline result: a point cloud where
// every row holds a coordinate triple plus named scalar field values.
type PointTable struct {
	points [][3]float64
	names  []string
	fields map[string][]float64
}

// NewPointTable creates a table over the given point coordinates.
func NewPointTable(points [][3]float64) *PointTable {
	return &PointTable{
		points: points,
		fields: make(map[string][]float64),
	}
}

// NumRows returns the number of rows (points) in the table.
func (t *PointTable) NumRows() int {
	return len(t.points)
}

// Point returns the coordinate triple of row i.
func (t *PointTable) Point(i int) [3]float64 {
	return t.points[i]
}

// Coordinate returns the coordinate component of row i along axis, which
// must be 0, 1 or 2.
func (t *PointTable) Coordinate(i, axis int) float64 {
	return t.points[i][axis]
}

// FieldNames returns the field names in insertion order.
func (t *PointTable) FieldNames() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// HasField reports whether the table holds a field with the given name.
func (t *PointTable) HasField(name string) bool {
	_, ok := t.fields[name]
	return ok
}

// Field returns the values of the named field, one per row.
func (t *PointTable) Field(name string) ([]float64, error) {
	values, ok := t.fields[name]
	if !ok {
		return nil, fmt.Errorf("field %q: %w", name, ErrNotFound)
	}
	return values, nil
}

// AddField adds a field column to the table. The number of values must match
// the number of rows. An existing field with the same name is replaced.
func (t *PointTable) AddField(name string, values []float64) error {
	if len(values) != len(t.points) {
		return fmt.Errorf("field %q has %d values for %d rows: %w",
			name, len(values), len(t.points), ErrInvalidArgument)
	}
	if _, ok := t.fields[name]; !ok {
		t.names = append(t.names, name)
	}
	t.fields[name] = values
	return nil
}

// Clone returns a deep, independent copy of the table.
func (t *PointTable) Clone() *PointTable {
	points := make([][3]float64, len(t.points))
	copy(points, t.points)
	c := NewPointTable(points)
	for _, name := range t.names {
		values := make([]float64, len(t.fields[name]))
		copy(values, t.fields[name])
		c.names = append(c.names, name)
		c.fields[name] = values
	}
	return c
}

// Bounds returns the coordinate bounds of the point cloud as
// [minX, maxX, minY, maxY, minZ, maxZ]. Zero bounds for an empty table.
func (t *PointTable) Bounds() [6]float64 {
	var b [6]float64
	if len(t.points) == 0 {
		return b
	}
	for axis := range 3 {
		b[2*axis] = t.points[0][axis]
		b[2*axis+1] = t.points[0][axis]
	}
	for _, p := range t.points {
		for axis := range 3 {
			if p[axis] < b[2*axis] {
				b[2*axis] = p[axis]
			}
			if p[axis] > b[2*axis+1] {
				b[2*axis+1] = p[axis]
			}
		}
	}
	return b
}
