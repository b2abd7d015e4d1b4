package ingest

import "fmt"

// MissingColumnError indicates a required column is absent from an input
// source. It is fatal to the pipeline run; the caller must re-supply the
// input.
type MissingColumnError struct {
	Source string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: required column %q not found", e.Source, e.Column)
}

// SchemaMismatchError indicates an identifier collision or a cell that
// could not be parsed as the schema requires.
type SchemaMismatchError struct {
	Source string
	Column string
	Err    error
}

func (e *SchemaMismatchError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s: column %q: %v", e.Source, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *SchemaMismatchError) Unwrap() error { return e.Err }
