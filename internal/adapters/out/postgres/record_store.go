package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"orderdesk/internal/adapters/out/postgres/orderrows"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// RecordStore implements ports.RecordStore on the order table. Batches run in
// one unit of work, so either every cell is written or none is.
type RecordStore struct {
	factory *GormUnitOfWorkFactory
	logger  *slog.Logger
}

func NewRecordStore(factory *GormUnitOfWorkFactory, logger *slog.Logger) *RecordStore {
	return &RecordStore{factory: factory, logger: logger.With("component", "postgres_store")}
}

// Migrate creates or updates the order table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&orderrows.OrderRowDTO{}); err != nil {
		return errs.NewAdapterError("migrate", err)
	}
	return nil
}

func (s *RecordStore) LoadAll(ctx context.Context) (ports.Table, error) {
	return s.factory.Create().RowRepository().LoadAll(ctx)
}

func (s *RecordStore) UpdateField(ctx context.Context, handle ports.SourceHandle, update ports.FieldUpdate) error {
	if err := checkTable(handle); err != nil {
		return err
	}
	return s.factory.Create().RowRepository().UpdateField(ctx, update)
}

func (s *RecordStore) BatchUpdateFields(ctx context.Context, handle ports.SourceHandle, updates []ports.FieldUpdate) error {
	if err := checkTable(handle); err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}

	uow := s.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errs.NewAdapterError("begin batch", err)
	}

	repo := uow.RowRepository()
	for _, u := range updates {
		if err := repo.UpdateField(ctx, u); err != nil {
			if rbErr := uow.Rollback(ctx); rbErr != nil {
				s.logger.ErrorContext(ctx, "rollback failed", "error", rbErr)
			}
			return fmt.Errorf("row %d column %s: %w", u.RowIndex, u.Column, err)
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return errs.NewAdapterError("commit batch", err)
	}
	s.logger.DebugContext(ctx, "batch committed", "cells", len(updates))
	return nil
}

func (s *RecordStore) AppendRow(ctx context.Context, handle ports.SourceHandle, values []string) error {
	if err := checkTable(handle); err != nil {
		return err
	}
	return s.factory.Create().RowRepository().Append(ctx, handle.Headers, values)
}

func checkTable(handle ports.SourceHandle) error {
	if handle.Table != "" && handle.Table != orderrows.TableName {
		return errs.NewObjectNotFoundError("table", handle.Table)
	}
	return nil
}
