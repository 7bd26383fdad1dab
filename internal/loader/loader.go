package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"langtab/pkg/contracts/domain"
)

// ParseDatasetFile reads a dataset file, dispatching on the file extension.
func ParseDatasetFile(filePath string) ([]domain.Record, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv":
		return ParseCSVFile(filePath)
	case ".xlsx", ".xlsm":
		return ParseExcelFile(filePath)
	default:
		return nil, fmt.Errorf("unsupported dataset format: %s", filePath)
	}
}
