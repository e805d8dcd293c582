package results

import (
	"github.com/xuri/excelize/v2"
)

const SheetName = "results"

// WriteXLSX writes the same table WriteCSV would to a single sheet workbook.
func WriteXLSX(path string, header []string, records []Record) error {
	f := excelize.NewFile()
	defer f.Close()

	err := f.SetSheetName(f.GetSheetName(0), SheetName)
	if err != nil {
		return err
	}

	writeRow := func(rowIdx int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(values))
		for i, v := range values {
			row[i] = v
		}
		return f.SetSheetRow(SheetName, cell, &row)
	}

	err = writeRow(1, header)
	if err != nil {
		return err
	}
	for i, rec := range records {
		err = writeRow(i+2, rec.Row(header))
		if err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
