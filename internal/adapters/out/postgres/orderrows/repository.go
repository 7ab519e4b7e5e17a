package orderrows

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"orderdesk/internal/core/application/records"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// GormRowRepository reads and writes order rows. It runs on whatever handle
// it is given, so inside a unit of work every call joins the transaction.
type GormRowRepository struct {
	db *gorm.DB
}

func NewGormRowRepository(db *gorm.DB) *GormRowRepository {
	return &GormRowRepository{db: db}
}

// LoadAll returns every row ordered by row index. Each row keeps its stored
// index, so gaps left by deleted rows do not shift later rows.
func (r *GormRowRepository) LoadAll(ctx context.Context) (ports.Table, error) {
	var dtos []OrderRowDTO
	if err := r.db.WithContext(ctx).Order("row_index").Find(&dtos).Error; err != nil {
		return ports.Table{}, errs.NewAdapterError("load rows", err)
	}

	headers := records.Columns()
	rows := make([]ports.Row, 0, len(dtos))
	indexes := make([]int, 0, len(dtos))
	for _, dto := range dtos {
		rows = append(rows, toRow(dto))
		indexes = append(indexes, dto.RowIndex)
	}
	return ports.Table{
		Headers:    headers,
		Rows:       rows,
		RowIndexes: indexes,
		Handle:     ports.SourceHandle{Table: TableName, Headers: headers},
	}, nil
}

// UpdateField writes one cell. A row that does not exist is ObjectNotFound.
func (r *GormRowRepository) UpdateField(ctx context.Context, update ports.FieldUpdate) error {
	if !isColumn(update.Column) {
		return errs.NewObjectNotFoundError("column", update.Column)
	}

	result := r.db.WithContext(ctx).
		Model(&OrderRowDTO{}).
		Where("row_index = ?", update.RowIndex).
		Update(update.Column, update.Value)
	if result.Error != nil {
		return errs.NewAdapterError("update field", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("row", update.RowIndex)
	}
	return nil
}

// Append adds a row after the last one.
func (r *GormRowRepository) Append(ctx context.Context, headers, values []string) error {
	var last OrderRowDTO
	next := ports.HeaderRow + 1
	err := r.db.WithContext(ctx).Order("row_index desc").Take(&last).Error
	switch {
	case err == nil:
		next = last.RowIndex + 1
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewAdapterError("append row", err)
	}

	dto := fromValues(next, headers, values)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewAdapterError("append row", err)
	}
	return nil
}
