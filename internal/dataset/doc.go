// Package dataset provides the in-memory representations of a language
// creation-year dataset and the query operations over them.
//
// # Architecture
//
// The package is organized around two derived views of one record sequence:
//
// 1. Table: row/column indexed access over the records, in source order
// 2. Grouped: a year-keyed mapping to the languages first released that year
//
// Both views are built once from an immutable []domain.Record and are never
// mutated by queries. The only mutating operation is Grouped.Remove, which
// deletes a single year key and carries no concurrent-access guarantee.
//
// # Queries
//
// Each view answers the same two questions:
//
//	table.YearCreated("Python")   // year of first occurrence, strict
//	table.LookupYearCreated("Python") // lenient comma-ok variant
//	table.CountForYear(2011)      // 0 when the year is absent
//	grouped.CountForYear(2011)    // ErrYearNotFound when the year is absent
//
// The count asymmetry between the two views is deliberate and part of the
// contract: the tabular count is a plain scan and an absent year is simply a
// zero tally, while the grouped count addresses a key that must exist.
//
// # Error Handling
//
// All failures are sentinel errors surfaced immediately to the caller and
// wrapped with context where useful:
//
//   - ErrRowOutOfRange for row access outside [0, Len)
//   - ErrUnknownColumn for column names other than "year" and "language"
//   - ErrLanguageNotFound for strict lookup misses
//   - ErrYearNotFound for grouped-view operations on an absent year
//
// Nothing is retried; all operations are pure in-memory computation.
package dataset
