package plot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/engine"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/plotprops"
)

// stubSession records engine calls instead of rendering.
type stubSession struct {
	lines       []engine.LineSpec
	chartSpecs  []engine.ChartSpec
	chartPaths  []string
	fieldSpecs  []engine.FieldSpec
	fieldPaths  []string
	sampleTable *models.PointTable
}

func (s *stubSession) LoadPointData(pattern string) (engine.Dataset, error) {
	return nil, errors.New("not implemented")
}

func (s *stubSession) SampleOverLine(table *models.PointTable, line engine.LineSpec) (*models.PointTable, error) {
	s.lines = append(s.lines, line)
	return s.sampleTable, nil
}

func (s *stubSession) RenderLineChart(spec engine.ChartSpec, series *models.SampledSeries, path string) error {
	s.chartSpecs = append(s.chartSpecs, spec)
	s.chartPaths = append(s.chartPaths, path)
	return nil
}

func (s *stubSession) RenderField2D(spec engine.FieldSpec, table *models.PointTable, field, path string) error {
	s.fieldSpecs = append(s.fieldSpecs, spec)
	s.fieldPaths = append(s.fieldPaths, path)
	return nil
}

// sampledTable builds a table resembling a line-out result: points along x
// with a field and an arc_length column.
func sampledTable(t *testing.T) *models.PointTable {
	t.Helper()
	points := [][3]float64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	table := models.NewPointTable(points)
	if err := table.AddField("f_000", []float64{1, 2, 3}); err != nil {
		t.Fatalf("AddField failed: %v", err)
	}
	if err := table.AddField("arc_length", []float64{0, 1, 2}); err != nil {
		t.Fatalf("AddField failed: %v", err)
	}
	return table
}

func lineOutProps() *plotprops.Properties {
	props := plotprops.Default()
	props.SeriesNames = []string{"f_000"}
	props.SamplingResolution = 64
	return &props
}

func TestLineOutAxisAligned(t *testing.T) {
	session := &stubSession{sampleTable: sampledTable(t)}
	// Domain x in [0,2], y in [0,4].
	domain := models.NewPointTable([][3]float64{{0, 0, 0}, {2, 4, 0}})

	series, err := LineOut(session, domain, lineOutProps(), DirX, [3]float64{0, 1.5, 0})
	if err != nil {
		t.Fatalf("LineOut failed: %v", err)
	}

	if len(session.lines) != 1 {
		t.Fatalf("Expected one SampleOverLine call, got %d", len(session.lines))
	}
	line := session.lines[0]
	if line.Point1 != [3]float64{0, 1.5, 0} || line.Point2 != [3]float64{2, 1.5, 0} {
		t.Errorf("Line = %v -> %v, expected x span at y=1.5", line.Point1, line.Point2)
	}
	if line.Resolution != 64 {
		t.Errorf("Resolution = %d, expected 64", line.Resolution)
	}
	if series.XName != "Points_X" {
		t.Errorf("XName = %q, expected Points_X", series.XName)
	}
	if series.Names[0] != "f_000" || series.Values[0][2] != 3 {
		t.Errorf("Unexpected series: %v %v", series.Names, series.Values)
	}
}

func TestLineOutDiagonal(t *testing.T) {
	session := &stubSession{sampleTable: sampledTable(t)}
	domain := models.NewPointTable([][3]float64{{0, 0, 0}, {2, 4, 0}})

	series, err := LineOut(session, domain, lineOutProps(), DirDiagonal, [3]float64{})
	if err != nil {
		t.Fatalf("LineOut failed: %v", err)
	}

	line := session.lines[0]
	if line.Point1 != [3]float64{0, 0, 0} || line.Point2 != [3]float64{2, 4, 0} {
		t.Errorf("Line = %v -> %v, expected domain diagonal", line.Point1, line.Point2)
	}
	if series.XName != "arc_length" {
		t.Errorf("XName = %q, expected arc_length", series.XName)
	}
}

func TestLineOutBadDirection(t *testing.T) {
	session := &stubSession{sampleTable: sampledTable(t)}
	domain := models.NewPointTable([][3]float64{{0, 0, 0}})
	_, err := LineOut(session, domain, lineOutProps(), Direction("q"), [3]float64{})
	if !errors.Is(err, models.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
}

func TestAxisLabel(t *testing.T) {
	props := plotprops.Default()
	if AxisLabel(&props, DirY) != "$y$" {
		t.Errorf("AxisLabel(y) = %q", AxisLabel(&props, DirY))
	}
	if AxisLabel(&props, DirDiagonal) != "$d$" {
		t.Errorf("AxisLabel(d) = %q", AxisLabel(&props, DirDiagonal))
	}
}

func TestLineChartWritesImageAndCSV(t *testing.T) {
	session := &stubSession{}
	props := lineOutProps()
	series := &models.SampledSeries{
		XName:  "Points_X",
		X:      []float64{0, 1},
		Names:  []string{"f_000"},
		Values: [][]float64{{1, 2}},
	}
	dir := t.TempDir()

	o := ChartOptions{Title: "run", XLabel: "$x$", YLabel: "$f$", LogY: true}
	if err := LineChart(session, series, props, o, dir, "lineout"); err != nil {
		t.Fatalf("LineChart failed: %v", err)
	}

	if session.chartPaths[0] != filepath.Join(dir, "lineout.png") {
		t.Errorf("PNG path = %q", session.chartPaths[0])
	}
	spec := session.chartSpecs[0]
	if !spec.LogY || spec.Title != "run" {
		t.Errorf("Unexpected spec: %+v", spec)
	}
	if spec.Width != 1280 || spec.Height != 720 {
		t.Errorf("Size = %dx%d, expected 1280x720", spec.Width, spec.Height)
	}
	// Series without configured labels fall back to their names.
	if spec.Series[0].Label != "f_000" {
		t.Errorf("Label = %q, expected f_000", spec.Series[0].Label)
	}
	if _, err := os.Stat(filepath.Join(dir, "lineout.csv")); err != nil {
		t.Errorf("Expected CSV next to the image: %v", err)
	}
}

func TestRenderField2D(t *testing.T) {
	session := &stubSession{}
	props := plotprops.Default()
	table := sampledTable(t)

	o := FieldOptions{LogScale: true, ColorBarTitle: "$f_{000}$", Annotation: TimeAnnotation(0.5)}
	if err := RenderField2D(session, table, &props, "f_000", o, "/tmp/out", "field"); err != nil {
		t.Fatalf("RenderField2D failed: %v", err)
	}

	spec := session.fieldSpecs[0]
	if !spec.ColorBar.Show || spec.ColorBar.Title != "$f_{000}$" {
		t.Errorf("ColorBar = %+v", spec.ColorBar)
	}
	if !spec.LogScale {
		t.Error("Expected log scale")
	}
	if spec.Annotation != "$t = 0.5$" {
		t.Errorf("Annotation = %q", spec.Annotation)
	}
	if session.fieldPaths[0] != filepath.Join("/tmp/out", "field.png") {
		t.Errorf("Path = %q", session.fieldPaths[0])
	}
}

func TestFramePath(t *testing.T) {
	got := FramePath("/out", "field", 7)
	if got != filepath.Join("/out", "field.0007.png") {
		t.Errorf("FramePath = %q", got)
	}
}

func TestSaveAnimation(t *testing.T) {
	tables := []*models.PointTable{sampledTable(t), sampledTable(t), sampledTable(t)}
	dataset, err := engine.NewDataset(tables, []float64{0, 0.5, 1})
	if err != nil {
		t.Fatalf("NewDataset failed: %v", err)
	}
	handle, err := sapphireplot.NewSolutionHandle(dataset, nil, nil)
	if err != nil {
		t.Fatalf("NewSolutionHandle failed: %v", err)
	}
	handle.GoToLast()

	var paths []string
	var times []float64
	err = SaveAnimation(handle, "/out", "field",
		func(table *models.PointTable, tv float64, path string) error {
			paths = append(paths, path)
			times = append(times, tv)
			return nil
		})
	if err != nil {
		t.Fatalf("SaveAnimation failed: %v", err)
	}

	if len(paths) != 3 {
		t.Fatalf("Expected 3 frames, got %d", len(paths))
	}
	if paths[1] != filepath.Join("/out", "field.0001.png") {
		t.Errorf("Frame path = %q", paths[1])
	}
	if times[1] != 0.5 {
		t.Errorf("Frame time = %v, expected 0.5", times[1])
	}
	// The active index is restored after rendering all frames.
	if handle.TimeIndex() != 2 {
		t.Errorf("TimeIndex = %d, expected 2", handle.TimeIndex())
	}
}
