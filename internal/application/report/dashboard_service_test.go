package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/inventorypro/backend/internal/domain/catalog"
	"github.com/inventorypro/backend/internal/domain/partner"
	"github.com/inventorypro/backend/internal/domain/shared"
	"github.com/inventorypro/backend/internal/domain/trade"
)

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepo) Save(ctx context.Context, product *catalog.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindLowStock(ctx context.Context, threshold int64) ([]catalog.Product, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepo) SumValueOnHand(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *mockCustomerRepo) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *mockCustomerRepo) Save(ctx context.Context, customer *partner.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCustomerRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type mockSupplierRepo struct {
	mock.Mock
}

func (m *mockSupplierRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *mockSupplierRepo) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *mockSupplierRepo) Save(ctx context.Context, supplier *partner.Supplier) error {
	return m.Called(ctx, supplier).Error(0)
}

func (m *mockSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSupplierRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type mockPurchaseOrderRepo struct {
	mock.Mock
}

func (m *mockPurchaseOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*trade.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.PurchaseOrder), args.Error(1)
}

func (m *mockPurchaseOrderRepo) FindAll(ctx context.Context, filter shared.Filter) ([]trade.PurchaseOrder, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]trade.PurchaseOrder), args.Error(1)
}

func (m *mockPurchaseOrderRepo) Save(ctx context.Context, order *trade.PurchaseOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockPurchaseOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPurchaseOrderRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPurchaseOrderRepo) SumRealizedAmount(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type mockSalesOrderRepo struct {
	mock.Mock
}

func (m *mockSalesOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*trade.SalesOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.SalesOrder), args.Error(1)
}

func (m *mockSalesOrderRepo) FindAll(ctx context.Context, filter shared.Filter) ([]trade.SalesOrder, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]trade.SalesOrder), args.Error(1)
}

func (m *mockSalesOrderRepo) Save(ctx context.Context, order *trade.SalesOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockSalesOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSalesOrderRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSalesOrderRepo) SumRealizedAmount(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockSalesOrderRepo) FindRecent(ctx context.Context, limit int) ([]trade.SalesOrder, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]trade.SalesOrder), args.Error(1)
}

func TestDashboardSummary(t *testing.T) {
	productRepo := new(mockProductRepo)
	customerRepo := new(mockCustomerRepo)
	supplierRepo := new(mockSupplierRepo)
	purchaseRepo := new(mockPurchaseOrderRepo)
	salesRepo := new(mockSalesOrderRepo)

	svc := NewDashboardService(productRepo, customerRepo, supplierRepo, purchaseRepo, salesRepo)
	fixed := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	lowStock, err := catalog.NewProduct("UPC-9", "Nearly Gone", "", "", decimal.RequireFromString("1.00"), decimal.RequireFromString("2.00"), 3, nil)
	require.NoError(t, err)
	recent, err := trade.NewSalesOrder(uuid.New(), []trade.SalesLine{
		{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
	}, fixed, trade.SalesOrderStatusCompleted)
	require.NoError(t, err)

	monthStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	var unbounded time.Time

	productRepo.On("Count", mock.Anything, shared.Filter{}).Return(int64(12), nil)
	customerRepo.On("Count", mock.Anything, shared.Filter{}).Return(int64(4), nil)
	supplierRepo.On("Count", mock.Anything, shared.Filter{}).Return(int64(2), nil)
	productRepo.On("SumValueOnHand", mock.Anything).Return(decimal.RequireFromString("250.00"), nil)
	salesRepo.On("SumRealizedAmount", mock.Anything, unbounded, unbounded).Return(decimal.RequireFromString("200.00"), nil)
	purchaseRepo.On("SumRealizedAmount", mock.Anything, unbounded, unbounded).Return(decimal.RequireFromString("120.00"), nil)
	salesRepo.On("SumRealizedAmount", mock.Anything, monthStart, monthEnd).Return(decimal.RequireFromString("50.00"), nil)
	purchaseRepo.On("SumRealizedAmount", mock.Anything, monthStart, monthEnd).Return(decimal.RequireFromString("30.00"), nil)
	productRepo.On("FindLowStock", mock.Anything, int64(LowStockThreshold)).Return([]catalog.Product{*lowStock}, nil)
	salesRepo.On("FindRecent", mock.Anything, 5).Return([]trade.SalesOrder{*recent}, nil)

	resp, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.TotalProducts)
	assert.Equal(t, int64(4), resp.TotalCustomers)
	assert.Equal(t, int64(2), resp.TotalSuppliers)
	assert.True(t, resp.TotalInventoryValue.Equal(decimal.RequireFromString("250.00")))
	assert.True(t, resp.GrossProfit.Equal(decimal.RequireFromString("80.00")))
	assert.True(t, resp.ProfitMargin.Equal(decimal.RequireFromString("40.00")))
	assert.True(t, resp.MonthlyProfit.Equal(decimal.RequireFromString("20.00")))
	require.Len(t, resp.LowStockProducts, 1)
	assert.Equal(t, "Nearly Gone", resp.LowStockProducts[0].Name)
	require.Len(t, resp.RecentSales, 1)
	assert.Equal(t, recent.ID, resp.RecentSales[0].ID)
}

func TestDashboardSummaryZeroRevenue(t *testing.T) {
	productRepo := new(mockProductRepo)
	customerRepo := new(mockCustomerRepo)
	supplierRepo := new(mockSupplierRepo)
	purchaseRepo := new(mockPurchaseOrderRepo)
	salesRepo := new(mockSalesOrderRepo)

	svc := NewDashboardService(productRepo, customerRepo, supplierRepo, purchaseRepo, salesRepo)

	productRepo.On("Count", mock.Anything, shared.Filter{}).Return(int64(0), nil)
	customerRepo.On("Count", mock.Anything, shared.Filter{}).Return(int64(0), nil)
	supplierRepo.On("Count", mock.Anything, shared.Filter{}).Return(int64(0), nil)
	productRepo.On("SumValueOnHand", mock.Anything).Return(decimal.Zero, nil)
	salesRepo.On("SumRealizedAmount", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(decimal.Zero, nil)
	purchaseRepo.On("SumRealizedAmount", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(decimal.Zero, nil)
	productRepo.On("FindLowStock", mock.Anything, int64(LowStockThreshold)).Return([]catalog.Product{}, nil)
	salesRepo.On("FindRecent", mock.Anything, 5).Return([]trade.SalesOrder{}, nil)

	resp, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.True(t, resp.ProfitMargin.IsZero())
	assert.True(t, resp.GrossProfit.IsZero())
	assert.Empty(t, resp.LowStockProducts)
	assert.Empty(t, resp.RecentSales)
}
