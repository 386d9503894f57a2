package engine

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
)

// coordinateColumn maps recognized coordinate header names to an axis.
// Both plain x/y/z headers and ParaView-style "Points:i" headers work.
func coordinateColumn(header string) (int, bool) {
	switch strings.ToLower(strings.TrimSpace(header)) {
	case "x", "points:0", "points_x":
		return 0, true
	case "y", "points:1", "points_y":
		return 1, true
	case "z", "points:2", "points_z":
		return 2, true
	}
	return -1, false
}

// readCSVTable reads one columnar point-data file. The header row names the
// columns; coordinate columns are recognized by name, every other numeric
// column becomes a field.
func readCSVTable(path string) (*models.PointTable, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("data file %q: %w", path, models.ErrNotFound)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comment = '#'
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("data file %q: %v: %w", path, err, models.ErrParse)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("data file %q has no header row: %w", path, models.ErrParse)
	}

	header := records[0]
	rows := records[1:]

	points := make([][3]float64, len(rows))
	table := models.NewPointTable(points)

	for col, name := range header {
		axis, isCoord := coordinateColumn(name)
		values := make([]float64, len(rows))
		numeric := true
		for i, row := range rows {
			if col >= len(row) {
				return nil, fmt.Errorf("data file %q row %d has %d columns, header has %d: %w",
					path, i+2, len(row), len(header), models.ErrParse)
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
			if err != nil {
				numeric = false
				break
			}
			values[i] = v
		}
		if !numeric {
			if isCoord {
				return nil, fmt.Errorf("data file %q: non-numeric coordinate column %q: %w",
					path, name, models.ErrParse)
			}
			Logger().Debug("skip non-numeric column", "file", path, "column", name)
			continue
		}
		if isCoord {
			for i := range points {
				points[i][axis] = values[i]
			}
			continue
		}
		if err := table.AddField(strings.TrimSpace(name), values); err != nil {
			return nil, err
		}
	}
	return table, nil
}
