package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inventorypro/backend/internal/domain/shared"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	shared.Repository[Product]
	// FindByIDs returns the products matching the given IDs. Missing
	// IDs are simply absent from the result; callers that care about
	// unresolved references must check for themselves.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	FindLowStock(ctx context.Context, threshold int64) ([]Product, error)
	// SumValueOnHand returns the total inventory valuation across all
	// products, recomputed from the stored rows on every call.
	SumValueOnHand(ctx context.Context) (decimal.Decimal, error)
}
