package dataset

import "errors"

// Sentinel errors for view access and queries.
var (
	// ErrRowOutOfRange is returned by Table.Row for an index outside [0, Len).
	ErrRowOutOfRange = errors.New("row index out of range")

	// ErrUnknownColumn is returned by Table.Column for any name other than
	// "year" or "language".
	ErrUnknownColumn = errors.New("unknown column")

	// ErrLanguageNotFound is returned by the strict YearCreated queries when
	// the language does not occur in the dataset.
	ErrLanguageNotFound = errors.New("language not found")

	// ErrYearNotFound is returned by grouped-view operations addressing a
	// year that has no key in the mapping.
	ErrYearNotFound = errors.New("year not found")
)
