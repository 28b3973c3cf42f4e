package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/inventorypro/backend/internal/domain/shared"
)

// txKey is the context key carrying an open transaction handle
type txKey struct{}

// withTx returns a context carrying the transaction handle
func withTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// dbFromContext returns the transaction handle from the context when a
// unit of work is in flight, or the given base connection otherwise.
// All repositories route their queries through this so that work done
// inside TransactionManager.WithinTx shares one transaction.
func dbFromContext(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return base
}

// GormTransactionManager implements shared.TransactionManager on a GORM
// connection. Nested calls reuse the already open transaction.
type GormTransactionManager struct {
	db *gorm.DB
}

// NewGormTransactionManager creates a new GormTransactionManager
func NewGormTransactionManager(db *gorm.DB) *GormTransactionManager {
	return &GormTransactionManager{db: db}
}

// WithinTx runs fn inside a single database transaction. The context
// passed to fn carries the transaction handle; repositories called with
// it participate in the same transaction.
func (m *GormTransactionManager) WithinTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}

// Ensure GormTransactionManager implements TransactionManager
var _ shared.TransactionManager = (*GormTransactionManager)(nil)
