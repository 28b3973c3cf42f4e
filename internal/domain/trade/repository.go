package trade

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/inventorypro/backend/internal/domain/shared"
)

// PurchaseOrderRepository defines persistence operations for purchase orders
type PurchaseOrderRepository interface {
	shared.Repository[PurchaseOrder]
	// SumRealizedAmount returns the total amount over received
	// purchases within [from, to). Zero times mean unbounded.
	SumRealizedAmount(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}

// SalesOrderRepository defines persistence operations for sales orders
type SalesOrderRepository interface {
	shared.Repository[SalesOrder]
	// SumRealizedAmount returns the total amount over completed sales
	// within [from, to). Zero times mean unbounded.
	SumRealizedAmount(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// FindRecent returns the most recently created sales orders.
	FindRecent(ctx context.Context, limit int) ([]SalesOrder, error)
}
