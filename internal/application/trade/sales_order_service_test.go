package trade

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/inventorypro/backend/internal/domain/catalog"
	"github.com/inventorypro/backend/internal/domain/inventory"
	"github.com/inventorypro/backend/internal/domain/shared"
	"github.com/inventorypro/backend/internal/domain/trade"
)

func newSalesFixture() (*SalesOrderService, *mockSalesOrderRepo, *mockProductRepo) {
	orderRepo := new(mockSalesOrderRepo)
	productRepo := new(mockProductRepo)
	svc := NewSalesOrderService(orderRepo, productRepo, passthroughTx{}, zap.NewNop())
	return svc, orderRepo, productRepo
}

func TestSalesCreatePendingMovesNoStock(t *testing.T) {
	svc, orderRepo, productRepo := newSalesFixture()
	orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*trade.SalesOrder")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateSalesOrderRequest{
		CustomerID: uuid.New(),
		Items: []SalesLineRequest{
			{ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.RequireFromString("4.99")},
		},
		OrderDate: time.Now(),
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Empty(t, resp.Adjustments)
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("9.98")))
	productRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
}

func TestSalesCreateCompletedDecrementsEachLine(t *testing.T) {
	svc, orderRepo, productRepo := newSalesFixture()
	first := fixtureProduct(t, 10)
	second := fixtureProduct(t, 10)

	orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*trade.SalesOrder")).Return(nil)
	productRepo.On("FindByIDs", mock.Anything, mock.AnythingOfType("[]uuid.UUID")).Return([]catalog.Product{*first, *second}, nil)
	productRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateSalesOrderRequest{
		CustomerID: uuid.New(),
		Items: []SalesLineRequest{
			{ProductID: first.ID, Quantity: 3, UnitPrice: decimal.RequireFromString("3.00")},
			{ProductID: second.ID, Quantity: 4, UnitPrice: decimal.RequireFromString("3.00")},
		},
		OrderDate: time.Now(),
		Status:    trade.SalesOrderStatusCompleted,
	})

	require.NoError(t, err)
	require.Len(t, resp.Adjustments, 2)
	assert.Equal(t, inventory.OutcomeApplied, resp.Adjustments[0].Outcome)
	assert.Equal(t, inventory.OutcomeApplied, resp.Adjustments[1].Outcome)
	productRepo.AssertNumberOfCalls(t, "Save", 2)
}

func TestSalesCreateCompletedSaturatesAtFloor(t *testing.T) {
	svc, orderRepo, productRepo := newSalesFixture()
	product := fixtureProduct(t, 2)

	orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*trade.SalesOrder")).Return(nil)
	productRepo.On("FindByIDs", mock.Anything, mock.AnythingOfType("[]uuid.UUID")).Return([]catalog.Product{*product}, nil)
	productRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateSalesOrderRequest{
		CustomerID: uuid.New(),
		Items: []SalesLineRequest{
			{ProductID: product.ID, Quantity: 9, UnitPrice: decimal.RequireFromString("3.00")},
		},
		OrderDate: time.Now(),
		Status:    trade.SalesOrderStatusCompleted,
	})

	require.NoError(t, err)
	require.Len(t, resp.Adjustments, 1)
	assert.Equal(t, inventory.OutcomeAppliedWithFloor, resp.Adjustments[0].Outcome)
}

func TestSalesCreateSkipsDeletedProducts(t *testing.T) {
	svc, orderRepo, productRepo := newSalesFixture()
	kept := fixtureProduct(t, 10)
	deletedID := uuid.New()

	orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*trade.SalesOrder")).Return(nil)
	productRepo.On("FindByIDs", mock.Anything, mock.AnythingOfType("[]uuid.UUID")).Return([]catalog.Product{*kept}, nil)
	productRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateSalesOrderRequest{
		CustomerID: uuid.New(),
		Items: []SalesLineRequest{
			{ProductID: deletedID, Quantity: 5, UnitPrice: decimal.RequireFromString("1.00")},
			{ProductID: kept.ID, Quantity: 2, UnitPrice: decimal.RequireFromString("1.00")},
		},
		OrderDate: time.Now(),
		Status:    trade.SalesOrderStatusCompleted,
	})

	require.NoError(t, err)
	require.Len(t, resp.Adjustments, 2)
	assert.Equal(t, inventory.OutcomeSkippedMissingReference, resp.Adjustments[0].Outcome)
	assert.Equal(t, inventory.OutcomeApplied, resp.Adjustments[1].Outcome)
	productRepo.AssertNumberOfCalls(t, "Save", 1)
}

func TestSalesUpdateCancelRestoresStock(t *testing.T) {
	svc, orderRepo, productRepo := newSalesFixture()
	product := fixtureProduct(t, 4)
	order, err := trade.NewSalesOrder(uuid.New(), []trade.SalesLine{
		{ProductID: product.ID, Quantity: 6, UnitPrice: decimal.RequireFromString("3.00")},
	}, time.Now(), trade.SalesOrderStatusCompleted)
	require.NoError(t, err)

	orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	orderRepo.On("Save", mock.Anything, order).Return(nil)
	productRepo.On("FindByIDs", mock.Anything, mock.AnythingOfType("[]uuid.UUID")).Return([]catalog.Product{*product}, nil)
	productRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	cancelled := trade.SalesOrderStatusCancelled
	resp, err := svc.Update(context.Background(), order.ID, UpdateSalesOrderRequest{Status: &cancelled})

	require.NoError(t, err)
	require.Len(t, resp.Adjustments, 1)
	assert.Equal(t, inventory.OutcomeApplied, resp.Adjustments[0].Outcome)
	productRepo.AssertCalled(t, "Save", mock.Anything, mock.MatchedBy(func(p *catalog.Product) bool {
		return p.ID == product.ID && p.InStock == 10
	}))
}

func TestSalesUpdateItemsWhileCompletedMovesNoStock(t *testing.T) {
	svc, orderRepo, productRepo := newSalesFixture()
	product := fixtureProduct(t, 10)
	order, err := trade.NewSalesOrder(uuid.New(), []trade.SalesLine{
		{ProductID: product.ID, Quantity: 2, UnitPrice: decimal.RequireFromString("3.00")},
	}, time.Now(), trade.SalesOrderStatusCompleted)
	require.NoError(t, err)

	orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	orderRepo.On("Save", mock.Anything, order).Return(nil)

	resp, err := svc.Update(context.Background(), order.ID, UpdateSalesOrderRequest{
		Items: []SalesLineRequest{
			{ProductID: product.ID, Quantity: 50, UnitPrice: decimal.RequireFromString("3.00")},
		},
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Adjustments)
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("150.00")))
	productRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
	productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSalesUpdatePropagatesLookupError(t *testing.T) {
	svc, orderRepo, productRepo := newSalesFixture()
	order, err := trade.NewSalesOrder(uuid.New(), []trade.SalesLine{
		{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.Zero},
	}, time.Now(), trade.SalesOrderStatusPending)
	require.NoError(t, err)
	boom := errors.New("read failed")

	orderRepo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
	orderRepo.On("Save", mock.Anything, order).Return(nil)
	productRepo.On("FindByIDs", mock.Anything, mock.AnythingOfType("[]uuid.UUID")).Return(nil, boom)

	completed := trade.SalesOrderStatusCompleted
	_, err = svc.Update(context.Background(), order.ID, UpdateSalesOrderRequest{Status: &completed})

	assert.ErrorIs(t, err, boom)
}

func TestSalesGetByIDNotFound(t *testing.T) {
	svc, orderRepo, _ := newSalesFixture()
	id := uuid.New()
	orderRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := svc.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}
