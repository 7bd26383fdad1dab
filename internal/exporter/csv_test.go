package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langtab/internal/dataset"
	"langtab/pkg/contracts/domain"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(content)), "\n")
}

func TestCSVWriter_WriteCSV(t *testing.T) {
	tempDir := t.TempDir()
	writer := NewCSVWriter(tempDir)

	tests := []struct {
		name     string
		filePath string
		options  WriteOptions
		validate func(t *testing.T, path string)
	}{
		{
			name:     "basic write with headers",
			filePath: "basic.csv",
			options: WriteOptions{
				Headers: []string{"year", "language"},
				Rows: [][]string{
					{"1991", "Python"},
					{"1995", "Java"},
				},
			},
			validate: func(t *testing.T, path string) {
				lines := readLines(t, path)
				assert.Len(t, lines, 3)
				assert.Equal(t, "year,language", lines[0])
				assert.Equal(t, "1991,Python", lines[1])
				assert.Equal(t, "1995,Java", lines[2])
			},
		},
		{
			name:     "write with BOM prefix",
			filePath: "bom.csv",
			options: WriteOptions{
				Headers:   []string{"year", "language"},
				Rows:      [][]string{{"2012", "Crystal"}},
				BOMPrefix: true,
			},
			validate: func(t *testing.T, path string) {
				content, err := os.ReadFile(path)
				require.NoError(t, err)
				assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, content[:3])
			},
		},
		{
			name:     "write into missing subdirectory",
			filePath: filepath.Join("reports", "nested.csv"),
			options: WriteOptions{
				Headers: []string{"year", "language"},
				Rows:    [][]string{{"1972", "C"}},
			},
			validate: func(t *testing.T, path string) {
				assert.FileExists(t, path)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, writer.WriteCSV(tt.filePath, tt.options))
			tt.validate(t, filepath.Join(tempDir, tt.filePath))
		})
	}
}

func TestCSVWriter_AppendRows(t *testing.T) {
	tempDir := t.TempDir()
	writer := NewCSVWriter(tempDir)

	require.NoError(t, writer.WriteCSV("append.csv", WriteOptions{
		Headers: []string{"year", "language"},
		Rows:    [][]string{{"2011", "Elixir"}},
	}))
	require.NoError(t, writer.AppendRows("append.csv", [][]string{{"2011", "Red"}}))

	lines := readLines(t, filepath.Join(tempDir, "append.csv"))
	assert.Equal(t, []string{"year,language", "2011,Elixir", "2011,Red"}, lines)
}

func TestCSVWriter_WriteRecords(t *testing.T) {
	tempDir := t.TempDir()
	writer := NewCSVWriter(tempDir)

	records := []domain.Record{
		{Year: 2011, Language: "Elixir"},
		{Year: 1991, Language: "Python"},
	}
	require.NoError(t, writer.WriteRecords("records.csv", records))

	lines := readLines(t, filepath.Join(tempDir, "records.csv"))
	assert.Equal(t, []string{"year,language", "2011,Elixir", "1991,Python"}, lines)
}

func TestCSVWriter_WriteGrouped(t *testing.T) {
	tempDir := t.TempDir()
	writer := NewCSVWriter(tempDir)

	grouped := dataset.GroupByYear([]domain.Record{
		{Year: 2011, Language: "Elixir"},
		{Year: 2011, Language: "Red"},
		{Year: 2012, Language: "Crystal"},
	})
	require.NoError(t, writer.WriteGrouped("grouped.csv", grouped))

	lines := readLines(t, filepath.Join(tempDir, "grouped.csv"))
	assert.Equal(t, []string{"year,count,languages", "2011,2,Elixir;Red", "2012,1,Crystal"}, lines)
}

func TestCSVWriter_AbsolutePathBypassesBaseDir(t *testing.T) {
	writer := NewCSVWriter(filepath.Join(t.TempDir(), "unused"))
	target := filepath.Join(t.TempDir(), "abs.csv")

	require.NoError(t, writer.WriteRecords(target, []domain.Record{{Year: 1987, Language: "Perl"}}))
	assert.FileExists(t, target)
}
