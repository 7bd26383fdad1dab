package dataset

import (
	"fmt"

	"langtab/pkg/contracts/domain"
)

// Column names accepted by Table.Column.
const (
	ColumnYear     = "year"
	ColumnLanguage = "language"
)

// Table is the tabular view over a record sequence: the same records
// addressable by row index and by column name. It copies the input once at
// construction and is never mutated afterwards.
type Table struct {
	records []domain.Record
}

// NewTable creates a tabular view from a record sequence. The input slice is
// copied so later changes to it cannot alias into the view.
func NewTable(records []domain.Record) *Table {
	t := &Table{records: make([]domain.Record, len(records))}
	copy(t.records, records)
	return t
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	return len(t.records)
}

// Row returns the record at position i in source order.
func (t *Table) Row(i int) (domain.Record, error) {
	if i < 0 || i >= len(t.records) {
		return domain.Record{}, fmt.Errorf("row %d of %d: %w", i, len(t.records), ErrRowOutOfRange)
	}
	return t.records[i], nil
}

// Records returns the full record sequence in source order. The returned
// slice is a copy; callers may reorder it freely.
func (t *Table) Records() []domain.Record {
	out := make([]domain.Record, len(t.records))
	copy(out, t.records)
	return out
}

// Years returns the projection of the year column, in source order.
// Its length always equals Len.
func (t *Table) Years() []int {
	years := make([]int, len(t.records))
	for i, r := range t.records {
		years[i] = r.Year
	}
	return years
}

// Languages returns the projection of the language column, in source order.
// Its length always equals Len.
func (t *Table) Languages() []string {
	langs := make([]string, len(t.records))
	for i, r := range t.records {
		langs[i] = r.Language
	}
	return langs
}

// Column returns the full ordered projection of the named column: a []int
// for "year" and a []string for "language". Any other name fails with
// ErrUnknownColumn.
func (t *Table) Column(name string) (any, error) {
	switch name {
	case ColumnYear:
		return t.Years(), nil
	case ColumnLanguage:
		return t.Languages(), nil
	default:
		return nil, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
	}
}
