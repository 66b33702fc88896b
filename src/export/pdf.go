// Package export renders a generated report table as a downloadable
// document. Both formats consume the same table, so the exported file always
// matches what the caller saw on screen.
package export

import (
	"bytes"

	"github.com/FAMH/Collection-Gateway/src/models"
	"github.com/go-pdf/fpdf"
)

// Filename names the download: {report_type}_report.{ext}.
func Filename(reportType, ext string) string {
	return reportType + "_report." + ext
}

const (
	pdfLineHeight = 5.0
	pdfCellPad    = 1.5
)

// PDF renders the table with a filled header row and zebra striping. Tables
// wider than four columns go landscape.
func PDF(table models.ReportTable) ([]byte, error) {
	orientation := "P"
	if len(table.Columns) > 4 {
		orientation = "L"
	}
	doc := fpdf.New(orientation, "mm", "A4", "")
	doc.SetAutoPageBreak(false, 15)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 14)
	doc.Text(14, 20, table.Title)

	pageWidth, pageHeight := doc.GetPageSize()
	left, _, right, bottom := doc.GetMargins()
	usable := pageWidth - left - right
	colWidth := usable / float64(len(table.Columns))

	y := 26.0
	drawRow := func(cells []string, fill [3]int, textStyle string, textColor [3]int) {
		doc.SetFont("Helvetica", textStyle, 8)
		doc.SetTextColor(textColor[0], textColor[1], textColor[2])
		doc.SetFillColor(fill[0], fill[1], fill[2])

		// Row height follows the tallest wrapped cell.
		height := pdfLineHeight
		wrapped := make([][]string, len(cells))
		for i, cell := range cells {
			lines := doc.SplitText(cell, colWidth-2*pdfCellPad)
			if len(lines) == 0 {
				lines = []string{""}
			}
			wrapped[i] = lines
			if h := float64(len(lines)) * pdfLineHeight; h > height {
				height = h
			}
		}
		rowHeight := height + 2*pdfCellPad

		if y+rowHeight > pageHeight-bottom {
			doc.AddPage()
			y = 15
		}

		x := left
		for i := range cells {
			doc.Rect(x, y, colWidth, rowHeight, "F")
			lineY := y + pdfCellPad + pdfLineHeight*0.75
			for _, line := range wrapped[i] {
				doc.Text(x+pdfCellPad, lineY, line)
				lineY += pdfLineHeight
			}
			x += colWidth
		}
		y += rowHeight
	}

	drawRow(table.Columns, [3]int{66, 139, 202}, "B", [3]int{255, 255, 255})
	for i, row := range table.Rows {
		fill := [3]int{255, 255, 255}
		if i%2 == 1 {
			fill = [3]int{245, 245, 245}
		}
		drawRow(row, fill, "", [3]int{0, 0, 0})
	}
	if len(table.Footer) > 0 {
		drawRow(table.Footer, [3]int{255, 255, 255}, "B", [3]int{0, 0, 0})
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
