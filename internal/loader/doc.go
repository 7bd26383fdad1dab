// Package loader reads language creation-year datasets from CSV and Excel
// files and turns them into []domain.Record for the dataset package.
//
// Both loaders expect two columns, "year" and "language", matched by header
// name rather than position. The Excel loader probes the workbook for the
// sheet that actually carries the data, since exported workbooks rarely agree
// on sheet naming.
package loader
