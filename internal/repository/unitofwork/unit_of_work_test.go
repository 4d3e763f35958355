package unitofwork

import (
	"context"
	"errors"
	"testing"

	"sales-assistant-bot/internal/entity"
	"sales-assistant-bot/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newFactory(t *testing.T, name string) (RepositoryFactory, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Product{}))
	return NewRepositoryFactory(db), db
}

func TestWithinTransaction_CommitsAndRollsBack(t *testing.T) {
	ctx := context.Background()
	factory, db := newFactory(t, "uow_commit_rollback")

	err := WithinTransaction(ctx, factory, func(uow UnitOfWork) error {
		return uow.ProductRepository().Create(ctx, &entity.Product{Code: "OK-1", Name: "Mouse", Price: 10, Category: "mouse"})
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = WithinTransaction(ctx, factory, func(uow UnitOfWork) error {
		if err := uow.ProductRepository().Create(ctx, &entity.Product{Code: "KO-1", Name: "Teclado", Price: 20, Category: "teclado"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, db.Model(&model.Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUnitOfWork_StateErrors(t *testing.T) {
	ctx := context.Background()
	factory, _ := newFactory(t, "uow_state_errors")
	uow := factory.NewUnitOfWork(ctx)

	assert.ErrorIs(t, uow.Commit(), ErrNoTx)
	assert.ErrorIs(t, uow.Rollback(), ErrNoTx)

	require.NoError(t, uow.Begin(ctx))
	assert.ErrorIs(t, uow.Begin(ctx), ErrTxActive)
	require.NoError(t, uow.Rollback())
}
