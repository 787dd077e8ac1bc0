package exports

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Financial Report"

type ExcelWriter struct {
	Creator string
}

func NewExcelWriter(creator string) *ExcelWriter { return &ExcelWriter{Creator: creator} }

func (*ExcelWriter) Format() Format    { return FormatExcel }
func (*ExcelWriter) Extension() string { return "xlsx" }
func (*ExcelWriter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// ColumnWidth: max(len(header) × 1.5, 12).
func ColumnWidth(header string) float64 {
	return math.Max(float64(len(header))*1.5, 12)
}

func (x *ExcelWriter) Write(w io.Writer, doc *Document) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := doc.Sheet
	if sheet == "" {
		sheet = defaultSheet
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   doc.Title,
		Subject: "Financial Report",
		Creator: x.Creator,
		Created: doc.generatedAt().UTC().Format(time.RFC3339),
	}); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#006A4E"}},
	})
	if err != nil {
		return err
	}
	moneyFmt := "#,##0.00"
	if doc.Currency != "" {
		moneyFmt = fmt.Sprintf(`"%s "#,##0.00`, doc.Currency)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return err
	}

	for j, col := range doc.Table.Columns {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
			return err
		}
		name, _ := excelize.ColumnNumberToName(j + 1)
		if err := f.SetColWidth(sheet, name, name, ColumnWidth(col.Header)); err != nil {
			return err
		}
	}
	if n := len(doc.Table.Columns); n > 0 {
		last, _ := excelize.CoordinatesToCellName(n, 1)
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return err
		}
	}

	for i, row := range doc.Table.Rows {
		for j, col := range doc.Table.Columns {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			var v any = row[j].Text
			if col.Kind.Numeric() {
				v = row[j].Number
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	if len(doc.Table.Rows) > 0 {
		for j, col := range doc.Table.Columns {
			if col.Kind != KindMoney {
				continue
			}
			top, _ := excelize.CoordinatesToCellName(j+1, 2)
			bottom, _ := excelize.CoordinatesToCellName(j+1, len(doc.Table.Rows)+1)
			if err := f.SetCellStyle(sheet, top, bottom, moneyStyle); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}
