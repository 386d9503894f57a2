package engine

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
)

// defaultLineResolution is the number of line segments sampled when a
// LineSpec does not set a resolution.
const defaultLineResolution = 100

// Local is a Session that loads data from the local filesystem and renders
// plots in-process.
type Local struct{}

// NewLocal creates a local engine session.
func NewLocal() *Local {
	return &Local{}
}

// LoadPointData loads a file series matching the glob pattern. Supported
// extensions: .csv, .vtu and .pvtu. Files are ordered by name; each file is
// one time step.
func (l *Local) LoadPointData(pattern string) (Dataset, error) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, models.ErrInvalidArgument)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files matching %q: %w", pattern, models.ErrNotFound)
	}
	sort.Strings(files)
	Logger().Info("load results", "pattern", pattern, "files", len(files))

	var tables []*models.PointTable
	var times []float64
	haveTimes := true
	for i, file := range files {
		var table *models.PointTable
		var t float64
		var hasTime bool

		switch strings.ToLower(filepath.Ext(file)) {
		case ".csv":
			table, err = readCSVTable(file)
		case ".vtu":
			table, t, hasTime, err = readVTUTable(file)
		case ".pvtu":
			table, t, hasTime, err = readPVTUTable(file)
		default:
			return nil, fmt.Errorf("unsupported file format %q: %w",
				filepath.Ext(file), models.ErrInvalidArgument)
		}
		if err != nil {
			return nil, err
		}
		if !hasTime {
			haveTimes = false
			t = float64(i)
		}
		tables = append(tables, table)
		times = append(times, t)
	}
	if !haveTimes {
		// Mixed or absent TIME metadata: fall back to step indices.
		times = nil
	}
	return NewDataset(tables, times)
}

// SampleOverLine samples the table along the line with nearest-neighbor
// interpolation from the point cloud. The result carries the sample
// coordinates, all fields of the input table, and an "arc_length" column.
func (l *Local) SampleOverLine(table *models.PointTable, line LineSpec) (*models.PointTable, error) {
	if table.NumRows() == 0 {
		return nil, fmt.Errorf("line sample over empty table: %w", models.ErrEmpty)
	}
	res := line.Resolution
	if res <= 0 {
		res = defaultLineResolution
	}

	length := math.Sqrt(
		sq(line.Point2[0]-line.Point1[0]) +
			sq(line.Point2[1]-line.Point1[1]) +
			sq(line.Point2[2]-line.Point1[2]))

	n := res + 1
	points := make([][3]float64, n)
	nearest := make([]int, n)
	arcLength := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(res)
		var p [3]float64
		for axis := range 3 {
			p[axis] = line.Point1[axis] + t*(line.Point2[axis]-line.Point1[axis])
		}
		points[i] = p
		nearest[i] = nearestRow(table, p)
		arcLength[i] = t * length
	}

	sampled := models.NewPointTable(points)
	for _, name := range table.FieldNames() {
		values, err := table.Field(name)
		if err != nil {
			return nil, err
		}
		column := make([]float64, n)
		for i, row := range nearest {
			column[i] = values[row]
		}
		if err := sampled.AddField(name, column); err != nil {
			return nil, err
		}
	}
	if err := sampled.AddField("arc_length", arcLength); err != nil {
		return nil, err
	}
	return sampled, nil
}

// nearestRow returns the index of the table point closest to p.
func nearestRow(table *models.PointTable, p [3]float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i := 0; i < table.NumRows(); i++ {
		q := table.Point(i)
		d := sq(q[0]-p[0]) + sq(q[1]-p[1]) + sq(q[2]-p[2])
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func sq(x float64) float64 { return x * x }
