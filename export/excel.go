// Package export serializes accumulated project records to a spreadsheet
// and renders them to the console.
package export

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/odisha-tools/rerascan/config"
	"github.com/odisha-tools/rerascan/models"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Projects"

// WriteExcel writes one row per record into a timestamped .xlsx file and
// returns the file path. With no records it writes nothing and returns "".
func WriteExcel(records []models.ProjectRecord, cfg config.ExportConfig) (string, error) {
	if len(records) == 0 {
		slog.Warn("no records to export")
		return "", nil
	}

	filename := filepath.Join(cfg.Dir,
		fmt.Sprintf("%s_%s.xlsx", cfg.FilePrefix, time.Now().Format("20060102_150405")))

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", fmt.Errorf("export: rename sheet: %w", err)
	}

	columns := models.Columns()
	if err := f.SetSheetRow(sheetName, "A1", &columns); err != nil {
		return "", fmt.Errorf("export: write header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastCol, _ := excelize.ColumnNumberToName(len(columns))
		_ = f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle)
		_ = f.SetColWidth(sheetName, "A", lastCol, 28)
	}

	for i, rec := range records {
		row := rec.Row()
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return "", fmt.Errorf("export: write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return "", fmt.Errorf("export: save %s: %w", filename, err)
	}
	slog.Info("records exported", "file", filename, "rows", len(records))
	return filename, nil
}
