package unitofwork

import (
	"context"
	"fmt"

	"sales-assistant-bot/internal/repository/contract"
)

// UnitOfWork scopes repositories to one transaction. Repositories obtained
// before Begin run outside it.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProductRepository() contract.ProductRepository
}

type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}

// WithinTransaction runs fn in a fresh unit of work, committing when fn
// returns nil and rolling back otherwise.
func WithinTransaction(ctx context.Context, factory RepositoryFactory, fn func(uow UnitOfWork) error) error {
	uow := factory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(uow); err != nil {
		if rbErr := uow.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
