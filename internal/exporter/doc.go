// Package exporter writes language datasets and grouped summaries back to
// CSV files. It is the write-side counterpart of the loader package.
package exporter
