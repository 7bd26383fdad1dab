package domain

// Record represents one programming language together with the year it
// first appeared. This is the primary data structure the whole module
// operates on; records are never mutated after creation.
type Record struct {
	Year     int    `json:"year" csv:"year" validate:"required,gte=1940,lte=2100"`
	Language string `json:"language" csv:"language" validate:"required"`
}

// RecordSet represents a complete ordered dataset of language records
// as produced by one of the file loaders.
type RecordSet struct {
	Records []Record `json:"records" validate:"required,dive"`
}

// YearSummary represents aggregated information for a single creation year.
// This is used for providing overview information about the grouped view.
type YearSummary struct {
	Year      int      `json:"year"`
	Count     int      `json:"count"`
	Languages []string `json:"languages"`
}
