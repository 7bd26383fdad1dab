// Command langtab loads a language creation-year dataset from a CSV or
// Excel file, builds the tabular and grouped views, and answers lookup
// queries from the command line.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"langtab/internal/config"
	"langtab/internal/dataset"
	"langtab/internal/exporter"
	"langtab/internal/infrastructure"
	"langtab/internal/loader"
)

func main() {
	file := flag.String("file", "", "dataset file (.csv or .xlsx); defaults to the configured dataset file")
	language := flag.String("language", "", "print the creation year of this language")
	year := flag.Int("year", 0, "print the number of languages created in this year")
	summary := flag.Bool("summary", false, "print the grouped year summary")
	export := flag.String("export", "", "write the grouped summary to this CSV file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{Level: "warn", Output: "console"},
			Paths:   config.PathsConfig{DatasetFile: "data/languages.csv"},
		}
	}
	// Keep CLI output readable: log noise goes up to warn unless overridden.
	if os.Getenv("LANGTAB_LOGGING_LEVEL") == "" {
		cfg.Logging.Level = "warn"
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	path := *file
	if path == "" {
		path = cfg.Paths.DatasetFile
	}

	records, err := loader.ParseDatasetFile(path)
	if err != nil {
		logger.Error("Failed to load dataset", "path", path, "error", err)
		os.Exit(1)
	}

	table := dataset.NewTable(records)
	grouped := dataset.GroupByYear(records)

	fmt.Printf("%d records, %d distinct years\n", table.Len(), grouped.Len())

	if *language != "" {
		created, err := table.YearCreated(*language)
		if err != nil {
			logger.Error("Lookup failed", "language", *language, "error", err)
			os.Exit(1)
		}
		fmt.Printf("%s first appeared in %d\n", *language, created)
	}

	if *year != 0 {
		fmt.Printf("%d languages created in %d\n", table.CountForYear(*year), *year)
	}

	if *summary {
		for _, s := range grouped.Summaries() {
			fmt.Printf("%d: %d\n", s.Year, s.Count)
		}
	}

	if *export != "" {
		writer := exporter.NewCSVWriter(cfg.Paths.ReportsDir)
		if err := writer.WriteGrouped(*export, grouped); err != nil {
			logger.Error("Export failed", "path", *export, "error", err)
			os.Exit(1)
		}
		fmt.Printf("grouped summary written to %s\n", *export)
	}
}
