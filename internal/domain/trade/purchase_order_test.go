package trade

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPurchaseOrderComputesTotal(t *testing.T) {
	order, err := NewPurchaseOrder(uuid.New(), uuid.New(), 4, decimal.RequireFromString("2.50"), time.Now(), PurchaseOrderStatusPending)

	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("10.00")))
	assert.False(t, order.IsRealized())
}

func TestNewPurchaseOrderValidation(t *testing.T) {
	supplierID := uuid.New()
	productID := uuid.New()
	now := time.Now()

	tests := []struct {
		name  string
		build func() (*PurchaseOrder, error)
	}{
		{"nil supplier", func() (*PurchaseOrder, error) {
			return NewPurchaseOrder(uuid.Nil, productID, 1, decimal.Zero, now, PurchaseOrderStatusPending)
		}},
		{"nil product", func() (*PurchaseOrder, error) {
			return NewPurchaseOrder(supplierID, uuid.Nil, 1, decimal.Zero, now, PurchaseOrderStatusPending)
		}},
		{"zero quantity", func() (*PurchaseOrder, error) {
			return NewPurchaseOrder(supplierID, productID, 0, decimal.Zero, now, PurchaseOrderStatusPending)
		}},
		{"negative price", func() (*PurchaseOrder, error) {
			return NewPurchaseOrder(supplierID, productID, 1, decimal.NewFromInt(-1), now, PurchaseOrderStatusPending)
		}},
		{"unknown status", func() (*PurchaseOrder, error) {
			return NewPurchaseOrder(supplierID, productID, 1, decimal.Zero, now, PurchaseOrderStatus("shipped"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			assert.Error(t, err)
		})
	}
}

func TestPurchaseOrderTotalFixedAfterEdits(t *testing.T) {
	order, err := NewPurchaseOrder(uuid.New(), uuid.New(), 4, decimal.RequireFromString("2.50"), time.Now(), PurchaseOrderStatusPending)
	require.NoError(t, err)

	require.NoError(t, order.SetQuantity(100))
	require.NoError(t, order.SetUnitPrice(decimal.RequireFromString("9.99")))

	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("10.00")))
}

func TestPurchaseOrderStatusRealized(t *testing.T) {
	assert.False(t, PurchaseOrderStatusPending.Realized())
	assert.True(t, PurchaseOrderStatusReceived.Realized())
	assert.False(t, PurchaseOrderStatusCancelled.Realized())
}

func TestPurchaseOrderSetStatusRejectsUnknown(t *testing.T) {
	order, err := NewPurchaseOrder(uuid.New(), uuid.New(), 1, decimal.Zero, time.Now(), PurchaseOrderStatusPending)
	require.NoError(t, err)

	assert.Error(t, order.SetStatus("shipped"))
	assert.Equal(t, PurchaseOrderStatusPending, order.Status)

	require.NoError(t, order.SetStatus(PurchaseOrderStatusReceived))
	assert.True(t, order.IsRealized())
}
