package records

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	// TimestampLayout is written for Hora_Registro, Hora_Proceso and Fecha_Completado.
	TimestampLayout = "2006-01-02 15:04:05"
	// DateLayout is written for Fecha_Entrega.
	DateLayout = "2006-01-02"
)

// TimeCodec reads and writes the date cells in one location.
type TimeCodec struct {
	loc *time.Location
}

// NewTimeCodec creates a codec. A nil location means UTC.
func NewTimeCodec(loc *time.Location) TimeCodec {
	if loc == nil {
		loc = time.UTC
	}
	return TimeCodec{loc: loc}
}

// Location returns the codec location.
func (c TimeCodec) Location() *time.Location {
	return c.loc
}

// Parse reads a date or timestamp cell leniently. Ambiguous numeric dates are
// read day first. Blank or unparseable cells give nil.
func (c TimeCodec) Parse(cell string) *time.Time {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	t, err := dateparse.ParseIn(cell, c.loc, dateparse.PreferMonthFirst(false), dateparse.RetryAmbiguousDateWithSwap(true))
	if err != nil {
		return nil
	}
	return &t
}

// ParseDate is Parse truncated to the calendar day.
func (c TimeCodec) ParseDate(cell string) *time.Time {
	t := c.Parse(cell)
	if t == nil {
		return nil
	}
	local := t.In(c.loc)
	d := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
	return &d
}

// FormatTimestamp writes a full timestamp, or "" for nil.
func (c TimeCodec) FormatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(c.loc).Format(TimestampLayout)
}

// FormatDate writes a calendar day, or "" for nil.
func (c TimeCodec) FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
