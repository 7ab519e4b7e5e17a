// Package sheets implements the order RecordStore on a Google Sheets
// worksheet. The first row holds the column names; every following row is
// one order.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

const (
	DefaultWorksheet = "datos_pedidos"

	valueInputOption = "USER_ENTERED"
	insertDataOption = "INSERT_ROWS"
)

// Config selects the spreadsheet and the service account. CredentialsJSON
// takes precedence over CredentialsFile.
type Config struct {
	SpreadsheetID   string
	Worksheet       string
	CredentialsJSON string
	CredentialsFile string
}

// RecordStore reads and writes one worksheet through the Sheets values API.
type RecordStore struct {
	values        *gsheets.SpreadsheetsValuesService
	spreadsheetID string
	worksheet     string
	logger        *slog.Logger
}

// NewRecordStore authenticates with the service account in cfg.
func NewRecordStore(ctx context.Context, cfg Config, logger *slog.Logger, opts ...option.ClientOption) (*RecordStore, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, errs.NewConfigurationError("GOOGLE_SHEET_ID", "set the id of the orders spreadsheet")
	}

	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	opts = append(opts, option.WithScopes(gsheets.SpreadsheetsScope))

	service, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errs.NewConfigurationErrorWithCause("GOOGLE_CREDENTIALS",
			"provide a service account JSON with access to the spreadsheet", err)
	}
	return NewRecordStoreWithService(service, cfg.SpreadsheetID, cfg.Worksheet, logger), nil
}

// NewRecordStoreWithService uses an already configured service.
func NewRecordStoreWithService(service *gsheets.Service, spreadsheetID, worksheet string, logger *slog.Logger) *RecordStore {
	if strings.TrimSpace(worksheet) == "" {
		worksheet = DefaultWorksheet
	}
	return &RecordStore{
		values:        service.Spreadsheets.Values,
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
		logger:        logger.With("component", "sheets_store", "worksheet", worksheet),
	}
}

func (s *RecordStore) LoadAll(ctx context.Context) (ports.Table, error) {
	resp, err := s.values.Get(s.spreadsheetID, quoteSheet(s.worksheet)).Context(ctx).Do()
	if err != nil {
		return ports.Table{}, s.classify("load", err)
	}

	var headers []string
	if len(resp.Values) > 0 {
		for _, cell := range resp.Values[0] {
			headers = append(headers, strings.TrimSpace(fmt.Sprint(cell)))
		}
	}

	rows := make([]ports.Row, 0, max(len(resp.Values)-1, 0))
	for _, values := range resp.Values[min(1, len(resp.Values)):] {
		row := make(ports.Row, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(values) {
				row[h] = fmt.Sprint(values[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	s.logger.DebugContext(ctx, "worksheet loaded", "rows", len(rows))
	return ports.Table{
		Headers: headers,
		Rows:    rows,
		Handle:  ports.SourceHandle{Table: s.worksheet, Headers: headers},
	}, nil
}

func (s *RecordStore) UpdateField(ctx context.Context, handle ports.SourceHandle, update ports.FieldUpdate) error {
	vr, err := s.valueRange(handle, update)
	if err != nil {
		return err
	}

	_, err = s.values.Update(s.spreadsheetID, vr.Range, vr).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return s.classify("update field", err)
	}
	return nil
}

func (s *RecordStore) BatchUpdateFields(ctx context.Context, handle ports.SourceHandle, updates []ports.FieldUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	data := make([]*gsheets.ValueRange, 0, len(updates))
	for _, u := range updates {
		vr, err := s.valueRange(handle, u)
		if err != nil {
			return err
		}
		data = append(data, vr)
	}

	_, err := s.values.BatchUpdate(s.spreadsheetID, &gsheets.BatchUpdateValuesRequest{
		ValueInputOption: valueInputOption,
		Data:             data,
	}).Context(ctx).Do()
	if err != nil {
		return s.classify("batch update", err)
	}
	return nil
}

func (s *RecordStore) AppendRow(ctx context.Context, handle ports.SourceHandle, values []string) error {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}

	_, err := s.values.Append(s.spreadsheetID, quoteSheet(s.sheetOf(handle)), &gsheets.ValueRange{
		Values: [][]interface{}{row},
	}).
		ValueInputOption(valueInputOption).
		InsertDataOption(insertDataOption).
		Context(ctx).
		Do()
	if err != nil {
		return s.classify("append row", err)
	}
	return nil
}

func (s *RecordStore) valueRange(handle ports.SourceHandle, u ports.FieldUpdate) (*gsheets.ValueRange, error) {
	column := handle.ColumnIndex(u.Column)
	if column < 0 {
		return nil, errs.NewObjectNotFoundError("column", u.Column)
	}
	if u.RowIndex <= ports.HeaderRow {
		return nil, errs.NewValueIsOutOfRangeError("row index", u.RowIndex, ports.HeaderRow+1, "last row")
	}
	return &gsheets.ValueRange{
		Range:  cellRange(s.sheetOf(handle), column, u.RowIndex),
		Values: [][]interface{}{{u.Value}},
	}, nil
}

func (s *RecordStore) sheetOf(handle ports.SourceHandle) string {
	if handle.Table != "" {
		return handle.Table
	}
	return s.worksheet
}

// classify maps API failures: a missing spreadsheet or worksheet is
// ObjectNotFound, anything else an AdapterError.
func (s *RecordStore) classify(operation string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusNotFound:
			return errs.NewObjectNotFoundErrorWithCause("spreadsheet", s.spreadsheetID, err)
		case apiErr.Code == http.StatusBadRequest && strings.Contains(apiErr.Message, "Unable to parse range"):
			return errs.NewObjectNotFoundErrorWithCause("worksheet", s.worksheet, err)
		}
	}
	return errs.NewAdapterError(operation, err)
}
