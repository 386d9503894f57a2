package engine

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
)

// VTK XML layout for unstructured grids. Only ascii data arrays are
// supported; binary and appended encodings are not.
type vtkFile struct {
	XMLName xml.Name `xml:"VTKFile"`
	Type    string   `xml:"type,attr"`
	Grid    vtkGrid  `xml:"UnstructuredGrid"`
}

type vtkGrid struct {
	FieldData vtkArrayList `xml:"FieldData"`
	Pieces    []vtkPiece   `xml:"Piece"`
}

type vtkArrayList struct {
	Arrays []vtkDataArray `xml:"DataArray"`
}

type vtkPiece struct {
	NumberOfPoints int          `xml:"NumberOfPoints,attr"`
	PointData      vtkArrayList `xml:"PointData"`
	Points         vtkArrayList `xml:"Points"`
}

type vtkDataArray struct {
	Name               string `xml:"Name,attr"`
	NumberOfComponents int    `xml:"NumberOfComponents,attr"`
	Format             string `xml:"format,attr"`
	Data               string `xml:",chardata"`
}

type pvtuFile struct {
	XMLName xml.Name `xml:"VTKFile"`
	Grid    struct {
		Pieces []struct {
			Source string `xml:"Source,attr"`
		} `xml:"Piece"`
	} `xml:"PUnstructuredGrid"`
}

// componentSuffixes names the components of vector-valued point data,
// matching the naming used by downstream series ("b_X", "u_Y", ...).
var componentSuffixes = [3]string{"_X", "_Y", "_Z"}

func (a *vtkDataArray) floats(path string) ([]float64, error) {
	if a.Format != "" && a.Format != "ascii" {
		return nil, fmt.Errorf("file %q: data array %q has format %q, only ascii is supported: %w",
			path, a.Name, a.Format, models.ErrParse)
	}
	fields := strings.Fields(a.Data)
	values := make([]float64, len(fields))
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("file %q: data array %q: bad value %q: %w",
				path, a.Name, s, models.ErrParse)
		}
		values[i] = v
	}
	return values, nil
}

// readVTUTable reads a single .vtu file into a point table. The returned
// bool reports whether a TIME value was present in the field data.
func readVTUTable(path string) (*models.PointTable, float64, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, false, fmt.Errorf("data file %q: %w", path, models.ErrNotFound)
		}
		return nil, 0, false, err
	}

	var file vtkFile
	if err := xml.Unmarshal(data, &file); err != nil {
		return nil, 0, false, fmt.Errorf("data file %q: %v: %w", path, err, models.ErrParse)
	}
	if len(file.Grid.Pieces) == 0 {
		return nil, 0, false, fmt.Errorf("data file %q has no pieces: %w", path, models.ErrParse)
	}

	var tables []*models.PointTable
	for i := range file.Grid.Pieces {
		table, err := pieceTable(path, &file.Grid.Pieces[i])
		if err != nil {
			return nil, 0, false, err
		}
		tables = append(tables, table)
	}
	table, err := mergeTables(tables)
	if err != nil {
		return nil, 0, false, fmt.Errorf("data file %q: %w", path, err)
	}

	t, hasTime, err := fieldTime(path, file.Grid.FieldData)
	if err != nil {
		return nil, 0, false, err
	}
	return table, t, hasTime, nil
}

// readPVTUTable reads a partitioned .pvtu index and merges its pieces.
func readPVTUTable(path string) (*models.PointTable, float64, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, false, fmt.Errorf("data file %q: %w", path, models.ErrNotFound)
		}
		return nil, 0, false, err
	}

	var file pvtuFile
	if err := xml.Unmarshal(data, &file); err != nil {
		return nil, 0, false, fmt.Errorf("data file %q: %v: %w", path, err, models.ErrParse)
	}
	if len(file.Grid.Pieces) == 0 {
		return nil, 0, false, fmt.Errorf("data file %q references no pieces: %w",
			path, models.ErrParse)
	}

	dir := filepath.Dir(path)
	var tables []*models.PointTable
	t := 0.0
	hasTime := false
	for _, piece := range file.Grid.Pieces {
		table, pt, pht, err := readVTUTable(filepath.Join(dir, piece.Source))
		if err != nil {
			return nil, 0, false, err
		}
		tables = append(tables, table)
		if pht {
			t, hasTime = pt, true
		}
	}
	table, err := mergeTables(tables)
	if err != nil {
		return nil, 0, false, fmt.Errorf("data file %q: %w", path, err)
	}
	return table, t, hasTime, nil
}

// pieceTable converts one VTK piece into a point table.
func pieceTable(path string, piece *vtkPiece) (*models.PointTable, error) {
	if len(piece.Points.Arrays) == 0 {
		return nil, fmt.Errorf("data file %q: piece without points: %w", path, models.ErrParse)
	}
	coords, err := piece.Points.Arrays[0].floats(path)
	if err != nil {
		return nil, err
	}
	if len(coords)%3 != 0 {
		return nil, fmt.Errorf("data file %q: %d point coordinates, not a multiple of 3: %w",
			path, len(coords), models.ErrParse)
	}

	n := len(coords) / 3
	points := make([][3]float64, n)
	for i := range points {
		points[i] = [3]float64{coords[3*i], coords[3*i+1], coords[3*i+2]}
	}
	table := models.NewPointTable(points)

	for i := range piece.PointData.Arrays {
		array := &piece.PointData.Arrays[i]
		values, err := array.floats(path)
		if err != nil {
			return nil, err
		}
		comps := array.NumberOfComponents
		if comps <= 1 {
			if err := table.AddField(array.Name, values); err != nil {
				return nil, fmt.Errorf("data file %q: field %q: %w", path, array.Name, err)
			}
			continue
		}
		if comps > 3 {
			return nil, fmt.Errorf("data file %q: field %q has %d components, at most 3 supported: %w",
				path, array.Name, comps, models.ErrParse)
		}
		if len(values) != n*comps {
			return nil, fmt.Errorf("data file %q: field %q has %d values for %d points: %w",
				path, array.Name, len(values), n, models.ErrParse)
		}
		for c := 0; c < comps; c++ {
			column := make([]float64, n)
			for i := range column {
				column[i] = values[i*comps+c]
			}
			name := array.Name + componentSuffixes[c]
			if err := table.AddField(name, column); err != nil {
				return nil, fmt.Errorf("data file %q: field %q: %w", path, name, err)
			}
		}
	}
	return table, nil
}

// fieldTime extracts the TIME value from VTK field data, if present.
func fieldTime(path string, fieldData vtkArrayList) (float64, bool, error) {
	for i := range fieldData.Arrays {
		array := &fieldData.Arrays[i]
		if array.Name != "TIME" {
			continue
		}
		values, err := array.floats(path)
		if err != nil {
			return 0, false, err
		}
		if len(values) == 0 {
			return 0, false, nil
		}
		return values[0], true, nil
	}
	return 0, false, nil
}

// mergeTables concatenates piece tables into one. All pieces must carry the
// same fields.
func mergeTables(tables []*models.PointTable) (*models.PointTable, error) {
	if len(tables) == 1 {
		return tables[0], nil
	}
	var points [][3]float64
	for _, t := range tables {
		for i := 0; i < t.NumRows(); i++ {
			points = append(points, t.Point(i))
		}
	}
	merged := models.NewPointTable(points)
	for _, name := range tables[0].FieldNames() {
		var column []float64
		for _, t := range tables {
			values, err := t.Field(name)
			if err != nil {
				return nil, fmt.Errorf("piece missing field %q: %w", name, err)
			}
			column = append(column, values...)
		}
		if err := merged.AddField(name, column); err != nil {
			return nil, err
		}
	}
	return merged, nil
}
