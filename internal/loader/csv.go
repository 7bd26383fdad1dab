package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"langtab/pkg/contracts/domain"
)

// ParseCSVFile reads a CSV dataset from disk.
func ParseCSVFile(filePath string) ([]domain.Record, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	records, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filePath, err)
	}

	slog.Info("Loaded CSV dataset",
		slog.String("file_path", filePath),
		slog.Int("record_count", len(records)))

	return records, nil
}

// ParseCSV reads a CSV dataset from r. The first row must be a header
// containing "year" and "language" columns, in any order.
func ParseCSV(r io.Reader) ([]domain.Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	// Strip a UTF-8 BOM left by spreadsheet exports.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	yearCol, langCol, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	var records []domain.Record
	rowNum := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", rowNum, err)
		}
		rowNum++

		rec, err := recordFromCells(row[yearCol], row[langCol])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// locateColumns finds the year and language column indices in a header row.
func locateColumns(header []string) (yearCol, langCol int, err error) {
	yearCol, langCol = -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "year":
			yearCol = i
		case "language", "name":
			langCol = i
		}
	}
	if yearCol == -1 || langCol == -1 {
		return 0, 0, fmt.Errorf("header %v: need year and language columns", header)
	}
	return yearCol, langCol, nil
}

// recordFromCells converts one raw (year, language) cell pair to a Record.
func recordFromCells(yearCell, langCell string) (domain.Record, error) {
	year, err := strconv.Atoi(strings.TrimSpace(yearCell))
	if err != nil {
		return domain.Record{}, fmt.Errorf("invalid year %q: %w", yearCell, err)
	}
	language := strings.TrimSpace(langCell)
	if language == "" {
		return domain.Record{}, fmt.Errorf("empty language name")
	}
	return domain.Record{Year: year, Language: language}, nil
}
