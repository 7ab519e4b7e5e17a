// Package memory provides an in-process RecordStore for local runs and tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// RecordStore keeps one table in memory. It is safe for concurrent use.
//
// Batches are validated in full before any cell is written, so a failed
// batch leaves the table unchanged.
type RecordStore struct {
	mu      sync.RWMutex
	table   string
	headers []string
	rows    [][]string
}

// NewRecordStore creates a table named table with the given header.
func NewRecordStore(table string, headers []string) *RecordStore {
	return &RecordStore{table: table, headers: slices.Clone(headers)}
}

// Seed appends rows whose values follow the header order.
func (s *RecordStore) Seed(rows ...[]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rows {
		s.rows = append(s.rows, s.fit(r))
	}
}

// Cell returns the value at a 1-based row and a column name.
func (s *RecordStore) Cell(rowIndex int, column string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, c, err := s.locate(rowIndex, column)
	if err != nil {
		return "", false
	}
	return s.rows[r][c], true
}

func (s *RecordStore) LoadAll(_ context.Context) (ports.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	headers := slices.Clone(s.headers)
	rows := make([]ports.Row, 0, len(s.rows))
	for _, values := range s.rows {
		row := make(ports.Row, len(headers))
		for i, h := range headers {
			row[h] = values[i]
		}
		rows = append(rows, row)
	}
	return ports.Table{
		Headers: headers,
		Rows:    rows,
		Handle:  ports.SourceHandle{Table: s.table, Headers: headers},
	}, nil
}

func (s *RecordStore) UpdateField(ctx context.Context, handle ports.SourceHandle, update ports.FieldUpdate) error {
	return s.BatchUpdateFields(ctx, handle, []ports.FieldUpdate{update})
}

func (s *RecordStore) BatchUpdateFields(_ context.Context, handle ports.SourceHandle, updates []ports.FieldUpdate) error {
	if err := s.checkHandle(handle); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	type cell struct{ r, c int }
	cells := make([]cell, 0, len(updates))
	for _, u := range updates {
		r, c, err := s.locate(u.RowIndex, u.Column)
		if err != nil {
			return errs.NewAdapterError("batch update", err)
		}
		cells = append(cells, cell{r, c})
	}
	for i, u := range updates {
		s.rows[cells[i].r][cells[i].c] = u.Value
	}
	return nil
}

func (s *RecordStore) AppendRow(_ context.Context, handle ports.SourceHandle, values []string) error {
	if err := s.checkHandle(handle); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row := make([]string, len(s.headers))
	for i, h := range handle.Headers {
		if i >= len(values) {
			break
		}
		if c := slices.Index(s.headers, h); c >= 0 {
			row[c] = values[i]
		}
	}
	s.rows = append(s.rows, row)
	return nil
}

func (s *RecordStore) checkHandle(handle ports.SourceHandle) error {
	if handle.Table != "" && handle.Table != s.table {
		return errs.NewObjectNotFoundError("table", handle.Table)
	}
	return nil
}

func (s *RecordStore) locate(rowIndex int, column string) (int, int, error) {
	r := rowIndex - ports.HeaderRow - 1
	if r < 0 || r >= len(s.rows) {
		return 0, 0, fmt.Errorf("row %d is outside the table", rowIndex)
	}
	c := slices.Index(s.headers, column)
	if c < 0 {
		return 0, 0, fmt.Errorf("column %q does not exist", column)
	}
	return r, c, nil
}

func (s *RecordStore) fit(values []string) []string {
	row := make([]string, len(s.headers))
	copy(row, values)
	return row
}
