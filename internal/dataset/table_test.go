package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langtab/pkg/contracts/domain"
)

func sampleRecords() []domain.Record {
	return []domain.Record{
		{Year: 2011, Language: "Elixir"},
		{Year: 2011, Language: "Red"},
		{Year: 2012, Language: "Crystal"},
		{Year: 1991, Language: "Python"},
	}
}

func TestNewTable_CopiesInput(t *testing.T) {
	records := sampleRecords()
	table := NewTable(records)

	records[0] = domain.Record{Year: 1900, Language: "Mutated"}

	row, err := table.Row(0)
	require.NoError(t, err)
	assert.Equal(t, domain.Record{Year: 2011, Language: "Elixir"}, row)
}

func TestTable_Row(t *testing.T) {
	table := NewTable(sampleRecords())

	tests := []struct {
		name    string
		index   int
		want    domain.Record
		wantErr error
	}{
		{
			name:  "first row",
			index: 0,
			want:  domain.Record{Year: 2011, Language: "Elixir"},
		},
		{
			name:  "last row",
			index: 3,
			want:  domain.Record{Year: 1991, Language: "Python"},
		},
		{
			name:    "negative index",
			index:   -1,
			wantErr: ErrRowOutOfRange,
		},
		{
			name:    "index past end",
			index:   4,
			wantErr: ErrRowOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := table.Row(tt.index)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, row)
		})
	}
}

func TestTable_Column(t *testing.T) {
	table := NewTable(sampleRecords())

	tests := []struct {
		name    string
		column  string
		want    any
		wantErr error
	}{
		{
			name:   "year column",
			column: ColumnYear,
			want:   []int{2011, 2011, 2012, 1991},
		},
		{
			name:   "language column",
			column: ColumnLanguage,
			want:   []string{"Elixir", "Red", "Crystal", "Python"},
		},
		{
			name:    "unknown column",
			column:  "created_at",
			wantErr: ErrUnknownColumn,
		},
		{
			name:    "empty column name",
			column:  "",
			wantErr: ErrUnknownColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Column(tt.column)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTable_ColumnLengthsMatchRecordCount(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.Record
	}{
		{name: "empty", records: nil},
		{name: "single record", records: []domain.Record{{Year: 1972, Language: "C"}}},
		{name: "sample dataset", records: sampleRecords()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable(tt.records)
			assert.Len(t, table.Years(), table.Len())
			assert.Len(t, table.Languages(), table.Len())
			assert.Equal(t, len(tt.records), table.Len())
		})
	}
}

func TestTable_RecordsReturnsCopy(t *testing.T) {
	table := NewTable(sampleRecords())

	records := table.Records()
	records[0].Language = "changed"

	row, err := table.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "Elixir", row.Language)
}
