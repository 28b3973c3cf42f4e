package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockTransactionManager(t *testing.T) (*GormTransactionManager, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormTransactionManager(gormDB), mock
}

func TestGormTransactionManager_WithinTx(t *testing.T) {
	t.Run("commits and injects the transaction handle", func(t *testing.T) {
		tm, mock := newMockTransactionManager(t)

		mock.ExpectBegin()
		mock.ExpectCommit()

		var sawTx bool
		err := tm.WithinTx(context.Background(), func(txCtx context.Context) error {
			_, sawTx = txCtx.Value(txKey{}).(*gorm.DB)
			return nil
		})

		assert.NoError(t, err)
		assert.True(t, sawTx)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		tm, mock := newMockTransactionManager(t)

		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := tm.WithinTx(context.Background(), func(txCtx context.Context) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nested call reuses the open transaction", func(t *testing.T) {
		tm, mock := newMockTransactionManager(t)

		mock.ExpectBegin()
		mock.ExpectCommit()

		err := tm.WithinTx(context.Background(), func(outer context.Context) error {
			return tm.WithinTx(outer, func(inner context.Context) error {
				assert.Equal(t, outer, inner)
				return nil
			})
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDBFromContext(t *testing.T) {
	tm, _ := newMockTransactionManager(t)

	base := tm.db
	assert.Same(t, base, dbFromContext(context.Background(), base))

	other := &gorm.DB{}
	ctx := withTx(context.Background(), other)
	assert.Same(t, other, dbFromContext(ctx, base))
}
