package dataset

import (
	"fmt"

	"langtab/pkg/contracts/domain"
)

// Grouped is the year-keyed view: each distinct creation year maps to the
// languages first released that year, in the order they were encountered in
// the source scan. A language→year reverse index is maintained alongside the
// mapping so strict lookups stay O(1) instead of re-walking every group.
type Grouped struct {
	groups map[int][]string
	years  []int // distinct years in first-encountered order

	// byLanguage records the year of each language's first occurrence.
	// Survives Remove so the round-trip property with the tabular view holds.
	byLanguage map[string]int
}

// GroupByYear builds the grouped view from a record sequence in a single
// linear pass with amortized-constant append per record.
func GroupByYear(records []domain.Record) *Grouped {
	g := &Grouped{
		groups:     make(map[int][]string),
		byLanguage: make(map[string]int, len(records)),
	}
	for _, r := range records {
		if _, ok := g.groups[r.Year]; !ok {
			g.years = append(g.years, r.Year)
		}
		g.groups[r.Year] = append(g.groups[r.Year], r.Language)
		if _, ok := g.byLanguage[r.Language]; !ok {
			g.byLanguage[r.Language] = r.Year
		}
	}
	return g
}

// Len returns the number of distinct year keys.
func (g *Grouped) Len() int {
	return len(g.groups)
}

// Size returns the total language count across all year groups. For a
// freshly built view this equals the input record count.
func (g *Grouped) Size() int {
	n := 0
	for _, langs := range g.groups {
		n += len(langs)
	}
	return n
}

// Years returns the distinct years in first-encountered order. Years removed
// with Remove are excluded.
func (g *Grouped) Years() []int {
	out := make([]int, 0, len(g.groups))
	for _, y := range g.years {
		if _, ok := g.groups[y]; ok {
			out = append(out, y)
		}
	}
	return out
}

// Languages returns the languages first released in the given year, in
// source order. An absent year fails with ErrYearNotFound.
func (g *Grouped) Languages(year int) ([]string, error) {
	langs, ok := g.groups[year]
	if !ok {
		return nil, fmt.Errorf("year %d: %w", year, ErrYearNotFound)
	}
	out := make([]string, len(langs))
	copy(out, langs)
	return out, nil
}

// Remove deletes a year key and its language sequence entirely. Removing an
// absent year fails with ErrYearNotFound; this strict behavior is the
// documented contract, consistent with CountForYear on the grouped view.
func (g *Grouped) Remove(year int) error {
	if _, ok := g.groups[year]; !ok {
		return fmt.Errorf("remove year %d: %w", year, ErrYearNotFound)
	}
	delete(g.groups, year)
	return nil
}

// Summaries returns one YearSummary per remaining year key, in
// first-encountered order.
func (g *Grouped) Summaries() []domain.YearSummary {
	out := make([]domain.YearSummary, 0, len(g.groups))
	for _, y := range g.Years() {
		langs := g.groups[y]
		copied := make([]string, len(langs))
		copy(copied, langs)
		out = append(out, domain.YearSummary{Year: y, Count: len(langs), Languages: copied})
	}
	return out
}
