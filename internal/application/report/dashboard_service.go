package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inventorypro/backend/internal/domain/catalog"
	"github.com/inventorypro/backend/internal/domain/partner"
	"github.com/inventorypro/backend/internal/domain/shared"
	"github.com/inventorypro/backend/internal/domain/trade"
)

// LowStockThreshold marks products whose stock level warrants a
// restock warning on the dashboard.
const LowStockThreshold = 10

// LowStockItem is a product flagged for restocking
type LowStockItem struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Code    string    `json:"code"`
	InStock int64     `json:"in_stock"`
}

// RecentSaleItem is a recent sales order on the dashboard
type RecentSaleItem struct {
	ID          uuid.UUID       `json:"id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	OrderDate   time.Time       `json:"order_date"`
	Status      string          `json:"status"`
}

// DashboardResponse aggregates the financial metrics shown on the
// dashboard. Everything here is a pure projection over the stored
// collections, recomputed fully on every read.
type DashboardResponse struct {
	TotalProducts       int64            `json:"total_products"`
	TotalCustomers      int64            `json:"total_customers"`
	TotalSuppliers      int64            `json:"total_suppliers"`
	TotalInventoryValue decimal.Decimal  `json:"total_inventory_value"`
	TotalRevenue        decimal.Decimal  `json:"total_revenue"`
	TotalCost           decimal.Decimal  `json:"total_cost"`
	GrossProfit         decimal.Decimal  `json:"gross_profit"`
	ProfitMargin        decimal.Decimal  `json:"profit_margin"` // percent, zero when revenue is zero
	MonthlyRevenue      decimal.Decimal  `json:"monthly_revenue"`
	MonthlyCost         decimal.Decimal  `json:"monthly_cost"`
	MonthlyProfit       decimal.Decimal  `json:"monthly_profit"`
	LowStockProducts    []LowStockItem   `json:"low_stock_products"`
	RecentSales         []RecentSaleItem `json:"recent_sales"`
}

// DashboardService computes the derived financial aggregates.
// Revenue only counts completed sales; cost only counts received
// purchases. Monthly figures are bounded by the calendar month of the
// current date at read time.
type DashboardService struct {
	productRepo  catalog.ProductRepository
	customerRepo partner.CustomerRepository
	supplierRepo partner.SupplierRepository
	purchaseRepo trade.PurchaseOrderRepository
	salesRepo    trade.SalesOrderRepository
	now          func() time.Time
	recentLimit  int
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	productRepo catalog.ProductRepository,
	customerRepo partner.CustomerRepository,
	supplierRepo partner.SupplierRepository,
	purchaseRepo trade.PurchaseOrderRepository,
	salesRepo trade.SalesOrderRepository,
) *DashboardService {
	return &DashboardService{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
		purchaseRepo: purchaseRepo,
		salesRepo:    salesRepo,
		now:          time.Now,
		recentLimit:  5,
	}
}

// Summary computes the full dashboard projection
func (s *DashboardService) Summary(ctx context.Context) (*DashboardResponse, error) {
	filter := shared.Filter{}

	totalProducts, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	totalCustomers, err := s.customerRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	totalSuppliers, err := s.supplierRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	inventoryValue, err := s.productRepo.SumValueOnHand(ctx)
	if err != nil {
		return nil, err
	}

	var unbounded time.Time
	revenue, err := s.salesRepo.SumRealizedAmount(ctx, unbounded, unbounded)
	if err != nil {
		return nil, err
	}
	cost, err := s.purchaseRepo.SumRealizedAmount(ctx, unbounded, unbounded)
	if err != nil {
		return nil, err
	}

	monthStart, monthEnd := currentMonthBounds(s.now())
	monthlyRevenue, err := s.salesRepo.SumRealizedAmount(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	monthlyCost, err := s.purchaseRepo.SumRealizedAmount(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.FindLowStock(ctx, LowStockThreshold)
	if err != nil {
		return nil, err
	}
	recentSales, err := s.salesRepo.FindRecent(ctx, s.recentLimit)
	if err != nil {
		return nil, err
	}

	grossProfit := revenue.Sub(cost)
	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = grossProfit.Div(revenue).Mul(decimal.NewFromInt(100)).Round(2)
	}

	response := &DashboardResponse{
		TotalProducts:       totalProducts,
		TotalCustomers:      totalCustomers,
		TotalSuppliers:      totalSuppliers,
		TotalInventoryValue: inventoryValue,
		TotalRevenue:        revenue,
		TotalCost:           cost,
		GrossProfit:         grossProfit,
		ProfitMargin:        margin,
		MonthlyRevenue:      monthlyRevenue,
		MonthlyCost:         monthlyCost,
		MonthlyProfit:       monthlyRevenue.Sub(monthlyCost),
		LowStockProducts:    make([]LowStockItem, 0, len(lowStock)),
		RecentSales:         make([]RecentSaleItem, 0, len(recentSales)),
	}

	for _, product := range lowStock {
		response.LowStockProducts = append(response.LowStockProducts, LowStockItem{
			ID:      product.ID,
			Name:    product.Name,
			Code:    product.Code,
			InStock: product.InStock,
		})
	}
	for _, sale := range recentSales {
		response.RecentSales = append(response.RecentSales, RecentSaleItem{
			ID:          sale.ID,
			CustomerID:  sale.CustomerID,
			TotalAmount: sale.TotalAmount,
			OrderDate:   sale.OrderDate,
			Status:      sale.Status.String(),
		})
	}

	return response, nil
}

// currentMonthBounds returns [start, end) of the calendar month
// containing t.
func currentMonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}
