package export

import (
	"fmt"

	"github.com/FAMH/Collection-Gateway/src/models"
	excelize "github.com/xuri/excelize/v2"
)

const sheetName = "Report"

// Excel renders the table as a single-sheet workbook with the same header
// styling as the PDF.
func Excel(table models.ReportTable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"428BCA"}},
	})
	if err != nil {
		return nil, err
	}
	footerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}

	if err := f.SetCellValue(sheetName, "A1", table.Title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", titleStyle); err != nil {
		return nil, err
	}

	writeRow := func(rowIdx int, cells []string, style int) error {
		for col, cell := range cells {
			ref, err := excelize.CoordinatesToCellName(col+1, rowIdx)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, ref, cell); err != nil {
				return err
			}
			if style != 0 {
				if err := f.SetCellStyle(sheetName, ref, ref, style); err != nil {
					return err
				}
			}
		}
		return nil
	}

	row := 3
	if err := writeRow(row, table.Columns, headerStyle); err != nil {
		return nil, err
	}
	for _, cells := range table.Rows {
		row++
		if err := writeRow(row, cells, 0); err != nil {
			return nil, err
		}
	}
	if len(table.Footer) > 0 {
		row++
		if err := writeRow(row, table.Footer, footerStyle); err != nil {
			return nil, err
		}
	}

	// Widen columns enough for timestamps and item blocks.
	last, err := excelize.ColumnNumberToName(len(table.Columns))
	if err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "A", last, 22); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
