package http

import (
	"context"

	"langtab/pkg/contracts/domain"
)

// DataServiceInterface defines the service surface the handlers depend on.
// Satisfied by services.DataService; tests may substitute a stub.
type DataServiceInterface interface {
	Records(ctx context.Context) []domain.Record
	Languages(ctx context.Context) []string
	YearCreated(ctx context.Context, language string) (int, error)
	LookupYearCreated(ctx context.Context, language string) (int, bool)
	CountForYear(ctx context.Context, year int, view string) (int, error)
	YearSummaries(ctx context.Context) []domain.YearSummary
	LanguagesForYear(ctx context.Context, year int) ([]string, error)
	RemoveYear(ctx context.Context, year int) error
	Replace(ctx context.Context, records []domain.Record)
}
