package unitofwork

import (
	"context"
	"errors"

	"sales-assistant-bot/internal/repository/contract"
	"sales-assistant-bot/internal/repository/implementation"

	"gorm.io/gorm"
)

var (
	ErrTxActive = errors.New("transaction already started")
	ErrNoTx     = errors.New("no active transaction")
)

type gormFactory struct {
	db *gorm.DB
}

func NewRepositoryFactory(db *gorm.DB) RepositoryFactory {
	return &gormFactory{db: db}
}

func (f *gormFactory) NewUnitOfWork(_ context.Context) UnitOfWork {
	return &gormUnitOfWork{db: f.db}
}

type gormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

func (u *gormUnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return ErrTxActive
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.tx = tx
	return nil
}

func (u *gormUnitOfWork) Commit() error {
	if u.tx == nil {
		return ErrNoTx
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *gormUnitOfWork) Rollback() error {
	if u.tx == nil {
		return ErrNoTx
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

func (u *gormUnitOfWork) ProductRepository() contract.ProductRepository {
	if u.tx != nil {
		return implementation.NewProductRepository(u.tx)
	}
	return implementation.NewProductRepository(u.db)
}
