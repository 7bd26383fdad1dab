package dataset

import "fmt"

// YearCreated returns the year of the language's first occurrence in source
// order. A language absent from the dataset fails with ErrLanguageNotFound.
func (t *Table) YearCreated(language string) (int, error) {
	for _, r := range t.records {
		if r.Language == language {
			return r.Year, nil
		}
	}
	return 0, fmt.Errorf("language %q: %w", language, ErrLanguageNotFound)
}

// LookupYearCreated is the lenient variant of YearCreated: it reports
// (0, false) for an absent language instead of failing.
func (t *Table) LookupYearCreated(language string) (int, bool) {
	for _, r := range t.records {
		if r.Language == language {
			return r.Year, true
		}
	}
	return 0, false
}

// CountForYear returns how many languages were created in the given year.
// A year with no matching records simply counts to 0; unlike the grouped
// view this never fails.
func (t *Table) CountForYear(year int) int {
	n := 0
	for _, r := range t.records {
		if r.Year == year {
			n++
		}
	}
	return n
}

// YearCreated returns the year of the language's first occurrence via the
// reverse index built during grouping. A language absent from the dataset
// fails with ErrLanguageNotFound.
func (g *Grouped) YearCreated(language string) (int, error) {
	year, ok := g.byLanguage[language]
	if !ok {
		return 0, fmt.Errorf("language %q: %w", language, ErrLanguageNotFound)
	}
	return year, nil
}

// LookupYearCreated is the lenient variant of YearCreated: it reports
// (0, false) for an absent language instead of failing.
func (g *Grouped) LookupYearCreated(language string) (int, bool) {
	year, ok := g.byLanguage[language]
	return year, ok
}

// CountForYear returns the number of languages stored under the year key.
// An absent year fails with ErrYearNotFound; the tabular view's count
// returns 0 for the same input. The asymmetry is part of the contract.
func (g *Grouped) CountForYear(year int) (int, error) {
	langs, ok := g.groups[year]
	if !ok {
		return 0, fmt.Errorf("year %d: %w", year, ErrYearNotFound)
	}
	return len(langs), nil
}
