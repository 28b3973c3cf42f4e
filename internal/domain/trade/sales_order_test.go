package trade

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLines() []SalesLine {
	return []SalesLine{
		{ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.RequireFromString("4.99")},
		{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.RequireFromString("10.00")},
	}
}

func TestNewSalesOrderComputesTotal(t *testing.T) {
	order, err := NewSalesOrder(uuid.New(), testLines(), time.Now(), SalesOrderStatusPending)

	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("19.98")))
	for _, item := range order.Items {
		assert.Equal(t, order.ID, item.OrderID)
	}
}

func TestNewSalesOrderRequiresItems(t *testing.T) {
	_, err := NewSalesOrder(uuid.New(), nil, time.Now(), SalesOrderStatusPending)
	assert.Error(t, err)
}

func TestNewSalesOrderRequiresCustomer(t *testing.T) {
	_, err := NewSalesOrder(uuid.Nil, testLines(), time.Now(), SalesOrderStatusPending)
	assert.Error(t, err)
}

func TestReplaceItemsRecomputesTotal(t *testing.T) {
	order, err := NewSalesOrder(uuid.New(), testLines(), time.Now(), SalesOrderStatusPending)
	require.NoError(t, err)

	err = order.ReplaceItems([]SalesLine{
		{ProductID: uuid.New(), Quantity: 3, UnitPrice: decimal.RequireFromString("2.00")},
	})

	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("6.00")))
}

func TestReplaceItemsRejectsEmpty(t *testing.T) {
	order, err := NewSalesOrder(uuid.New(), testLines(), time.Now(), SalesOrderStatusPending)
	require.NoError(t, err)

	err = order.ReplaceItems(nil)

	assert.Error(t, err)
	assert.Len(t, order.Items, 2)
}

func TestReplaceItemsRejectsInvalidLine(t *testing.T) {
	order, err := NewSalesOrder(uuid.New(), testLines(), time.Now(), SalesOrderStatusPending)
	require.NoError(t, err)

	err = order.ReplaceItems([]SalesLine{
		{ProductID: uuid.New(), Quantity: 0, UnitPrice: decimal.Zero},
	})

	assert.Error(t, err)
}

func TestSalesOrderStatusRealized(t *testing.T) {
	assert.False(t, SalesOrderStatusPending.Realized())
	assert.True(t, SalesOrderStatusCompleted.Realized())
	assert.False(t, SalesOrderStatusCancelled.Realized())
}

func TestSalesOrderLines(t *testing.T) {
	input := testLines()
	order, err := NewSalesOrder(uuid.New(), input, time.Now(), SalesOrderStatusCompleted)
	require.NoError(t, err)

	lines := order.Lines()

	require.Len(t, lines, 2)
	assert.Equal(t, input[0].ProductID, lines[0].ProductID)
	assert.Equal(t, input[0].Quantity, lines[0].Quantity)
	assert.True(t, order.IsRealized())
}
