package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"promob/internal"
)

const (
	reportSheet  = "Relatório"
	unknownSheet = "Desconhecidos"
)

// ExportReportToXLSX writes the report, one value per row in report order,
// and the unknown items on a second sheet.
func ExportReportToXLSX(report Report, unknown []internal.UnknownItem, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), reportSheet); err != nil {
		return err
	}
	writeRow(f, reportSheet, 1, "secao", "subcategoria", "valor")
	r := 2
	for _, section := range report.Sections {
		for _, group := range section.Groups {
			for _, line := range group.Lines {
				writeRow(f, reportSheet, r, section.Title, group.Heading, line)
				r++
			}
		}
	}

	if _, err := f.NewSheet(unknownSheet); err != nil {
		return err
	}
	writeRow(f, unknownSheet, 1, "campo", "valor", "secao")
	for i, item := range unknown {
		writeRow(f, unknownSheet, i+2, item.Field, item.Value, item.Section)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func writeRow(f *excelize.File, sheet string, row int, values ...any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}
