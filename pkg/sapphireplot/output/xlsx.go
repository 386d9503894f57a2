package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
)

// WriteSeriesXLSX writes a sampled series as an xlsx workbook with a
// single sheet, one column per field. Numbers stay numeric so the workbook
// charts without conversion.
func WriteSeriesXLSX(series *models.SampledSeries, sheetName, path string) error {
	if series.Empty() {
		return fmt.Errorf("series has no points: %w", models.ErrEmpty)
	}
	if sheetName == "" {
		sheetName = "Sheet1"
	}

	f := excelize.NewFile()
	defer f.Close()
	if sheetName != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheetName); err != nil {
			return err
		}
	}

	header := make([]interface{}, 0, len(series.Names)+1)
	header = append(header, series.XName)
	for _, name := range series.Names {
		header = append(header, name)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}
	for i := range series.X {
		row := make([]interface{}, 0, len(series.Names)+1)
		row = append(row, series.X[i])
		for _, column := range series.Values {
			row = append(row, column[i])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
