// Package output writes extracted series to files for downstream analysis.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
)

// WriteSeriesCSV writes a sampled series as CSV: a header row with the
// x-axis name and the field names, then one row per sample point in
// scientific notation.
func WriteSeriesCSV(series *models.SampledSeries, path string) error {
	if series.Empty() {
		return fmt.Errorf("series has no points: %w", models.ErrEmpty)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append([]string{series.XName}, series.Names...)
	if err := w.Write(header); err != nil {
		return err
	}
	record := make([]string, len(header))
	for i := range series.X {
		record[0] = formatValue(series.X[i])
		for j, column := range series.Values {
			record[j+1] = formatValue(column[i])
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'e', 15, 64)
}
