// Package ports defines the contracts between the order engine and the
// stores it reads from and writes to. Adapters under internal/adapters/out
// implement them; tests substitute mocks.
package ports

import (
	"context"
)

// HeaderRow is the 1-based row that holds the column names. Data rows start
// right after it.
const HeaderRow = 1

// Row is one loaded record keyed by column name. Missing columns are absent
// from the map.
type Row map[string]string

// SourceHandle identifies the table a load came from and its column order.
// Writes must use the handle of the load that produced the row indexes.
type SourceHandle struct {
	Table   string
	Headers []string
}

// ColumnIndex returns the 0-based position of a column, or -1.
func (h SourceHandle) ColumnIndex(column string) int {
	for i, name := range h.Headers {
		if name == column {
			return i
		}
	}
	return -1
}

// Table is the result of a full load.
//
// RowIndexes holds the absolute row of each entry of Rows for stores whose
// rows keep their own address (a table keyed by row number may have gaps).
// When it is nil rows are addressed by position.
type Table struct {
	Headers    []string
	Rows       []Row
	RowIndexes []int `json:",omitempty"`
	Handle     SourceHandle
}

// RowIndex returns the absolute row of the i-th data row.
func (t Table) RowIndex(i int) int {
	if len(t.RowIndexes) == len(t.Rows) && i < len(t.RowIndexes) {
		return t.RowIndexes[i]
	}
	return i + HeaderRow + 1
}

// FieldUpdate writes one cell. RowIndex is the absolute 1-based row, so the
// first data row is HeaderRow+1.
type FieldUpdate struct {
	RowIndex int
	Column   string
	Value    string
}

// RecordStore is the tabular backing store of orders.
//
// Every failure is returned as an error wrapping errs.AdapterError, or
// errs.ObjectNotFoundError when the table itself is missing. Nothing is
// retried.
type RecordStore interface {
	// LoadAll reads the header and every data row.
	LoadAll(ctx context.Context) (Table, error)

	// UpdateField writes one cell.
	UpdateField(ctx context.Context, handle SourceHandle, update FieldUpdate) error

	// BatchUpdateFields writes every cell in one request. When it fails none
	// of the updates is considered applied.
	BatchUpdateFields(ctx context.Context, handle SourceHandle, updates []FieldUpdate) error

	// AppendRow adds a row whose values follow handle.Headers.
	AppendRow(ctx context.Context, handle SourceHandle, values []string) error
}
