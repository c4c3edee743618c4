// Package ddr defines the record types, identifier conventions, and field
// encodings used by DDR (Densho Digital Repository) CSV exports, along with
// the standard errors shared across the conversion pipeline.
package ddr
