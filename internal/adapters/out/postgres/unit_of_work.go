// Package postgres stores the order table in PostgreSQL through GORM.
//
// Writes that must land together run inside a unit of work: one database
// transaction that every repository obtained from it joins.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	for _, u := range updates {
//	    if err := uow.RowRepository().UpdateField(ctx, u); err != nil {
//	        _ = uow.Rollback(ctx)
//	        return err
//	    }
//	}
//	return uow.Commit(ctx)
//
// Each UnitOfWork holds its own transaction; concurrent callers create their
// own instance.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"orderdesk/internal/adapters/out/postgres/orderrows"
)

// GormUnitOfWorkFactory creates UnitOfWork instances on one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a unit of work with no transaction started.
func (f *GormUnitOfWorkFactory) Create() *GormUnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork wraps one GORM transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling it again while one is open does
// nothing.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx
	return nil
}

// Commit makes the changes permanent and closes the transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the changes and closes the transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// InTransaction reports whether Begin has been called without a matching
// Commit or Rollback.
func (uow *GormUnitOfWork) InTransaction() bool {
	return uow.tx != nil
}

// RowRepository returns a repository bound to the open transaction, or to the
// pool when none is open.
func (uow *GormUnitOfWork) RowRepository() *orderrows.GormRowRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrows.NewGormRowRepository(db)
}
