package engine

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
)

func chartSeries() *models.SampledSeries {
	return &models.SampledSeries{
		XName:  "Points_X",
		X:      []float64{0, 1, 2, 3},
		Names:  []string{"f_000"},
		Values: [][]float64{{1, 10, 50, 100}},
	}
}

func chartSpec() ChartSpec {
	return ChartSpec{
		Width:  320,
		Height: 240,
		Series: []SeriesStyle{{Name: "f_000", Label: "$f_{000}$", Color: [3]float64{0, 0, 1}}},
	}
}

func TestRenderLineChartFixedYRange(t *testing.T) {
	local := NewLocal()
	dir := t.TempDir()

	unbounded := filepath.Join(dir, "unbounded.png")
	if err := local.RenderLineChart(chartSpec(), chartSeries(), unbounded); err != nil {
		t.Fatalf("RenderLineChart failed: %v", err)
	}

	// The data reaches y=100; a fixed range must clamp the axis even so.
	capped := filepath.Join(dir, "capped.png")
	spec := chartSpec()
	yMax := 2.0
	spec.YMax = &yMax
	if err := local.RenderLineChart(spec, chartSeries(), capped); err != nil {
		t.Fatalf("RenderLineChart failed: %v", err)
	}

	a, err := os.ReadFile(unbounded)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	b, err := os.ReadFile(capped)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("YMax had no effect: capped render is identical to the unbounded one")
	}
}

func TestRenderLineChartEmptySeries(t *testing.T) {
	local := NewLocal()
	series := &models.SampledSeries{XName: "Points_X", Names: []string{"f_000"}, Values: [][]float64{{}}}
	err := local.RenderLineChart(chartSpec(), series, filepath.Join(t.TempDir(), "empty.png"))
	if !errors.Is(err, models.ErrEmpty) {
		t.Errorf("Expected ErrEmpty, got %v", err)
	}
}
