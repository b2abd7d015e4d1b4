// Package export serializes gradebook tables as CSV and as XLSX
// workbooks for spreadsheet hand-off.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/abhisek/gradebook/internal/table"
)

// WriteCSV serializes a table as comma-separated text: header row with
// the identifier first, then one row per student in index order.
// Numbers render in their shortest exact form, so re-parsing the output
// reproduces the derived score columns bit for bit.
func WriteCSV(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)

	header := append([]string{t.IndexName()}, t.Columns()...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, key := range t.Keys() {
		rec := make([]string, 0, len(header))
		rec = append(rec, key)
		for _, c := range t.Columns() {
			rec = append(rec, t.Get(key, c).String())
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %q: %w", key, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a table previously produced by WriteCSV. The first
// header cell names the index; cell types are inferred the same way
// ingest does.
func ReadCSV(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	all, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 || len(all[0]) == 0 {
		return nil, fmt.Errorf("empty table")
	}

	header := all[0]
	t := table.New(header[0], header[1:]...)
	for _, rec := range all[1:] {
		cells := make([]table.Value, len(rec)-1)
		for i, raw := range rec[1:] {
			cells[i] = table.Parse(raw)
		}
		if err := t.AppendRow(rec[0], cells); err != nil {
			return nil, err
		}
	}
	return t, nil
}
