package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"langtab/internal/dataset"
	"langtab/pkg/contracts/domain"
)

// View names accepted by CountForYear.
const (
	ViewTable   = "table"
	ViewGrouped = "grouped"
)

// DataService owns the two derived views of the language dataset and
// answers queries against them. Both views are rebuilt together whenever the
// record sequence is replaced. RemoveYear mutates the grouped view in place,
// so every query holds the read lock for its full duration, not just while
// fetching the view pointers.
type DataService struct {
	logger *slog.Logger

	mu      sync.RWMutex
	table   *dataset.Table
	grouped *dataset.Grouped
}

// NewDataService builds a service over the given record sequence.
func NewDataService(records []domain.Record, logger *slog.Logger) *DataService {
	s := &DataService{
		logger: logger.With(slog.String("component", "data_service")),
	}
	s.rebuild(records)
	return s
}

// rebuild derives both views from a record sequence.
func (s *DataService) rebuild(records []domain.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = dataset.NewTable(records)
	s.grouped = dataset.GroupByYear(records)
}

// Replace swaps in a new record sequence, rebuilding both views.
func (s *DataService) Replace(ctx context.Context, records []domain.Record) {
	s.rebuild(records)
	s.logger.InfoContext(ctx, "dataset replaced",
		slog.Int("record_count", len(records)))
}

// Records returns the full record sequence in source order.
func (s *DataService) Records(ctx context.Context) []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Records()
}

// Languages returns the language column of the tabular view.
func (s *DataService) Languages(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Languages()
}

// YearCreated returns the year of the language's first occurrence. The
// tabular and grouped views agree on this answer for any present language;
// the grouped view's reverse index makes it the cheaper one to ask.
func (s *DataService) YearCreated(ctx context.Context, language string) (int, error) {
	s.mu.RLock()
	year, err := s.grouped.YearCreated(language)
	s.mu.RUnlock()
	if err != nil {
		s.logger.DebugContext(ctx, "language lookup miss",
			slog.String("language", language))
		return 0, err
	}
	return year, nil
}

// LookupYearCreated is the lenient lookup: no error on a miss.
func (s *DataService) LookupYearCreated(ctx context.Context, language string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grouped.LookupYearCreated(language)
}

// CountForYear answers the count query against the named view. The two views
// disagree on absent years on purpose: the tabular count is 0, the grouped
// count fails with dataset.ErrYearNotFound.
func (s *DataService) CountForYear(ctx context.Context, year int, view string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch view {
	case ViewTable:
		return s.table.CountForYear(year), nil
	case ViewGrouped:
		return s.grouped.CountForYear(year)
	default:
		return 0, fmt.Errorf("view %q: %w", view, ErrUnknownView)
	}
}

// YearSummaries returns one summary per remaining grouped-view key.
func (s *DataService) YearSummaries(ctx context.Context) []domain.YearSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grouped.Summaries()
}

// LanguagesForYear returns the grouped view's language sequence for a year.
func (s *DataService) LanguagesForYear(ctx context.Context, year int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grouped.Languages(year)
}

// RemoveYear deletes a year key from the grouped view. The tabular view is
// untouched; remove is a grouped-view operation only.
func (s *DataService) RemoveYear(ctx context.Context, year int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.grouped.Remove(year); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "year removed from grouped view",
		slog.Int("year", year))
	return nil
}
