// Package table provides the in-memory tabular structure the gradebook
// pipeline is built on: a string-indexed table with ordered columns and
// cells that distinguish missing values from zeros.
package table

import "fmt"

// Table is a row-indexed table with a named index and ordered columns.
// Index keys are unique; appending a duplicate key is an error.
type Table struct {
	indexName string
	keys      []string
	rowidx    map[string]int
	cols      []string
	colidx    map[string]int
	cells     [][]Value
}

// New creates an empty table with the given index name and columns.
func New(indexName string, columns ...string) *Table {
	t := &Table{
		indexName: indexName,
		rowidx:    make(map[string]int),
		colidx:    make(map[string]int),
	}
	for _, c := range columns {
		t.AddColumn(c)
	}
	return t
}

// IndexName returns the name of the index column.
func (t *Table) IndexName() string { return t.indexName }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.keys) }

// Keys returns the index keys in insertion order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)
	return out
}

// HasKey reports whether the index contains key.
func (t *Table) HasKey(key string) bool {
	_, ok := t.rowidx[key]
	return ok
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.colidx[name]
	return ok
}

// AddColumn appends a column filled with missing cells. Adding an
// existing column is a no-op.
func (t *Table) AddColumn(name string) {
	if t.HasColumn(name) {
		return
	}
	t.colidx[name] = len(t.cols)
	t.cols = append(t.cols, name)
	for i := range t.cells {
		t.cells[i] = append(t.cells[i], Missing())
	}
}

// AppendRow adds a row under key. The cells must match the current
// column count. Duplicate keys are rejected.
func (t *Table) AppendRow(key string, cells []Value) error {
	if _, ok := t.rowidx[key]; ok {
		return fmt.Errorf("duplicate key %q in %s index", key, t.indexName)
	}
	if len(cells) != len(t.cols) {
		return fmt.Errorf("row %q has %d cells, table has %d columns", key, len(cells), len(t.cols))
	}
	row := make([]Value, len(cells))
	copy(row, cells)
	t.rowidx[key] = len(t.keys)
	t.keys = append(t.keys, key)
	t.cells = append(t.cells, row)
	return nil
}

// Get returns the cell at (key, column), or a missing value when either
// does not exist.
func (t *Table) Get(key, col string) Value {
	ri, ok := t.rowidx[key]
	if !ok {
		return Missing()
	}
	ci, ok := t.colidx[col]
	if !ok {
		return Missing()
	}
	return t.cells[ri][ci]
}

// Set writes the cell at (key, column), creating the column on demand.
// Unknown keys are ignored.
func (t *Table) Set(key, col string, v Value) {
	ri, ok := t.rowidx[key]
	if !ok {
		return
	}
	if !t.HasColumn(col) {
		t.AddColumn(col)
	}
	t.cells[ri][t.colidx[col]] = v
}

// ColumnMax returns the maximum over the numeric cells of a column,
// skipping missing and text cells. ok is false when the column has no
// numeric cells at all.
func (t *Table) ColumnMax(col string) (max float64, ok bool) {
	ci, exists := t.colidx[col]
	if !exists {
		return 0, false
	}
	for _, row := range t.cells {
		v := row[ci]
		if !v.IsNumber() {
			continue
		}
		if !ok || v.Float() > max {
			max = v.Float()
			ok = true
		}
	}
	return max, ok
}
