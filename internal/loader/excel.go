package loader

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"langtab/pkg/contracts/domain"
)

// ParseExcelFile reads a language dataset from an Excel workbook and
// extracts the (year, language) records.
func ParseExcelFile(filePath string) ([]domain.Record, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	rows, sheetName, err := findDataSheet(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filePath, err)
	}

	slog.Info("Found language data in sheet",
		slog.String("file_path", filePath),
		slog.String("sheet_name", sheetName),
		slog.Int("total_rows", len(rows)))

	yearCol, langCol, err := locateColumns(rows[0])
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filePath, err)
	}

	var records []domain.Record
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		if len(row) <= yearCol || len(row) <= langCol {
			return nil, fmt.Errorf("parse %s: row %d has %d cells", filePath, i+2, len(row))
		}
		rec, err := recordFromCells(row[yearCol], row[langCol])
		if err != nil {
			return nil, fmt.Errorf("parse %s: row %d: %w", filePath, i+2, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// findDataSheet returns the rows of the sheet carrying the dataset. It tries
// common sheet names first, then probes every sheet for a year/language
// header row.
func findDataSheet(f *excelize.File) ([][]string, string, error) {
	possibleNames := []string{"languages", "Languages", "data", "Data", "Sheet1"}

	for _, name := range possibleNames {
		if rows, err := f.GetRows(name); err == nil && hasLanguageHeader(rows) {
			return rows, name, nil
		}
	}

	for _, name := range f.GetSheetList() {
		if rows, err := f.GetRows(name); err == nil && hasLanguageHeader(rows) {
			return rows, name, nil
		}
	}

	return nil, "", fmt.Errorf("could not find language data sheet in workbook")
}

// hasLanguageHeader reports whether the sheet's first row looks like a
// year/language header.
func hasLanguageHeader(rows [][]string) bool {
	if len(rows) < 1 {
		return false
	}
	headerText := strings.ToLower(strings.Join(rows[0], " "))
	return strings.Contains(headerText, "year") &&
		(strings.Contains(headerText, "language") || strings.Contains(headerText, "name"))
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
