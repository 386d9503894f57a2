package sapphireplot

import (
	"errors"
	"testing"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
)

// testTable builds a table with x coordinates and a field "f" of 10*x,
// deliberately out of order to exercise sorting.
func testTable(t *testing.T, xs []float64) *models.PointTable {
	t.Helper()
	points := make([][3]float64, len(xs))
	f := make([]float64, len(xs))
	for i, x := range xs {
		points[i] = [3]float64{x, 0, 0}
		f[i] = 10 * x
	}
	table := models.NewPointTable(points)
	if err := table.AddField("f", f); err != nil {
		t.Fatalf("AddField failed: %v", err)
	}
	return table
}

func TestExtractInclusiveBounds(t *testing.T) {
	table := testTable(t, []float64{1, 2, 3, 4, 5, 6})

	series, err := Extract(table, []string{"f"}, 0, BoundsFrom(2.0, 5.0))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	want := []float64{2, 3, 4, 5}
	if len(series.X) != len(want) {
		t.Fatalf("Expected %d points, got %d", len(want), len(series.X))
	}
	for i, x := range want {
		if series.X[i] != x {
			t.Errorf("X[%d] = %v, expected %v", i, series.X[i], x)
		}
		if series.Values[0][i] != 10*x {
			t.Errorf("f[%d] = %v, expected %v", i, series.Values[0][i], 10*x)
		}
	}
}

func TestExtractSortsByCoordinate(t *testing.T) {
	table := testTable(t, []float64{3, 1, 6, 2, 5, 4})

	series, err := Extract(table, []string{"f"}, 0, Unbounded)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	for i := 1; i < len(series.X); i++ {
		if series.X[i] < series.X[i-1] {
			t.Fatalf("X not non-decreasing: %v", series.X)
		}
	}
	// Field values follow their rows through the sort.
	for i, x := range series.X {
		if series.Values[0][i] != 10*x {
			t.Errorf("f[%d] = %v, expected %v", i, series.Values[0][i], 10*x)
		}
	}
}

func TestExtractInvertedBoundsEmpty(t *testing.T) {
	table := testTable(t, []float64{1, 2, 3, 4, 5, 6})

	series, err := Extract(table, []string{"f"}, 0, BoundsFrom(5.0, 2.0))
	if err != nil {
		t.Fatalf("Expected empty result, got error: %v", err)
	}
	if !series.Empty() {
		t.Errorf("Expected empty series, got %d points", series.Len())
	}
	if len(series.Values[0]) != 0 {
		t.Errorf("Expected empty field column, got %v", series.Values[0])
	}
}

func TestExtractColumnLengths(t *testing.T) {
	table := testTable(t, []float64{1, 2, 3, 4, 5, 6})
	g := []float64{0, 0, 1, 1, 0, 0}
	if err := table.AddField("g", g); err != nil {
		t.Fatalf("AddField failed: %v", err)
	}

	min := 2.5
	series, err := Extract(table, []string{"g", "f"}, 0, Bounds{Min: &min})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if series.Len() != 4 {
		t.Fatalf("Expected 4 rows after masking, got %d", series.Len())
	}
	for i, column := range series.Values {
		if len(column) != series.Len() {
			t.Errorf("Column %q has %d values, expected %d",
				series.Names[i], len(column), series.Len())
		}
	}
	// Requested order is preserved.
	if series.Names[0] != "g" || series.Names[1] != "f" {
		t.Errorf("Column order = %v, expected [g f]", series.Names)
	}
}

func TestExtractUnknownField(t *testing.T) {
	table := testTable(t, []float64{1, 2})
	_, err := Extract(table, []string{"missing"}, 0, Unbounded)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestExtractBadAxis(t *testing.T) {
	table := testTable(t, []float64{1, 2})
	for _, axis := range []int{-1, 3, 7} {
		if _, err := Extract(table, []string{"f"}, axis, Unbounded); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("axis %d: expected ErrInvalidArgument, got %v", axis, err)
		}
	}
}

func TestExtractStableTies(t *testing.T) {
	// Two rows share x=1; their field values must keep insertion order.
	points := [][3]float64{{1, 0, 0}, {0, 0, 0}, {1, 0, 0}}
	table := models.NewPointTable(points)
	if err := table.AddField("f", []float64{100, 0, 200}); err != nil {
		t.Fatalf("AddField failed: %v", err)
	}

	series, err := Extract(table, []string{"f"}, 0, Unbounded)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	got := series.Values[0]
	want := []float64{0, 100, 200}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("f = %v, expected %v", got, want)
		}
	}
}

func TestExtractByField(t *testing.T) {
	points := [][3]float64{{0, 0, 0}, {1, 1, 0}, {2, 2, 0}}
	table := models.NewPointTable(points)
	if err := table.AddField("arc_length", []float64{0, 1.41, 2.83}); err != nil {
		t.Fatalf("AddField failed: %v", err)
	}
	if err := table.AddField("f", []float64{5, 6, 7}); err != nil {
		t.Fatalf("AddField failed: %v", err)
	}

	series, err := ExtractByField(table, []string{"f"}, "arc_length", Unbounded)
	if err != nil {
		t.Fatalf("ExtractByField failed: %v", err)
	}
	if series.XName != "arc_length" {
		t.Errorf("XName = %q, expected arc_length", series.XName)
	}
	if series.X[2] != 2.83 || series.Values[0][2] != 7 {
		t.Errorf("Unexpected series: X=%v f=%v", series.X, series.Values[0])
	}
}
