package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inventorypro/backend/internal/domain/inventory"
	"github.com/inventorypro/backend/internal/domain/trade"
)

// CreatePurchaseOrderRequest represents a request to create a purchase order
type CreatePurchaseOrderRequest struct {
	SupplierID uuid.UUID
	ProductID  uuid.UUID
	Quantity   int64
	UnitPrice  decimal.Decimal
	OrderDate  time.Time
	Status     trade.PurchaseOrderStatus
}

// UpdatePurchaseOrderRequest represents a partial update of a purchase
// order. Nil fields are left untouched.
type UpdatePurchaseOrderRequest struct {
	SupplierID *uuid.UUID
	ProductID  *uuid.UUID
	Quantity   *int64
	UnitPrice  *decimal.Decimal
	OrderDate  *time.Time
	Status     *trade.PurchaseOrderStatus
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID          uuid.UUID              `json:"id"`
	SupplierID  uuid.UUID              `json:"supplier_id"`
	ProductID   uuid.UUID              `json:"product_id"`
	Quantity    int64                  `json:"quantity"`
	UnitPrice   decimal.Decimal        `json:"unit_price"`
	TotalAmount decimal.Decimal        `json:"total_amount"`
	OrderDate   time.Time              `json:"order_date"`
	Status      string                 `json:"status"`
	Adjustments []inventory.Adjustment `json:"stock_adjustments,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// ToPurchaseOrderResponse converts a domain purchase order to a response
func ToPurchaseOrderResponse(order *trade.PurchaseOrder, adjustments []inventory.Adjustment) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		ID:          order.ID,
		SupplierID:  order.SupplierID,
		ProductID:   order.ProductID,
		Quantity:    order.Quantity,
		UnitPrice:   order.UnitPrice,
		TotalAmount: order.TotalAmount,
		OrderDate:   order.OrderDate,
		Status:      order.Status.String(),
		Adjustments: adjustments,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

// SalesLineRequest represents one line of a sales order request
type SalesLineRequest struct {
	ProductID uuid.UUID
	Quantity  int64
	UnitPrice decimal.Decimal
}

// CreateSalesOrderRequest represents a request to create a sales order
type CreateSalesOrderRequest struct {
	CustomerID uuid.UUID
	Items      []SalesLineRequest
	OrderDate  time.Time
	Status     trade.SalesOrderStatus
}

// UpdateSalesOrderRequest represents a partial update of a sales order.
// Nil fields are left untouched; a non-nil Items replaces the whole
// line list and recomputes the total.
type UpdateSalesOrderRequest struct {
	CustomerID *uuid.UUID
	Items      []SalesLineRequest
	OrderDate  *time.Time
	Status     *trade.SalesOrderStatus
}

// SalesOrderItemResponse represents a line item in API responses
type SalesOrderItemResponse struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SalesOrderResponse represents a sales order in API responses
type SalesOrderResponse struct {
	ID          uuid.UUID                `json:"id"`
	CustomerID  uuid.UUID                `json:"customer_id"`
	Items       []SalesOrderItemResponse `json:"items"`
	TotalAmount decimal.Decimal          `json:"total_amount"`
	OrderDate   time.Time                `json:"order_date"`
	Status      string                   `json:"status"`
	Adjustments []inventory.Adjustment   `json:"stock_adjustments,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// ToSalesOrderResponse converts a domain sales order to a response
func ToSalesOrderResponse(order *trade.SalesOrder, adjustments []inventory.Adjustment) SalesOrderResponse {
	items := make([]SalesOrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, SalesOrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal(),
		})
	}
	return SalesOrderResponse{
		ID:          order.ID,
		CustomerID:  order.CustomerID,
		Items:       items,
		TotalAmount: order.TotalAmount,
		OrderDate:   order.OrderDate,
		Status:      order.Status.String(),
		Adjustments: adjustments,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

// toLines converts request lines to domain lines
func toLines(items []SalesLineRequest) []trade.SalesLine {
	lines := make([]trade.SalesLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, trade.SalesLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return lines
}

// toStockLines converts domain sales lines to ledger stock lines
func toStockLines(lines []trade.SalesLine) []inventory.StockLine {
	stockLines := make([]inventory.StockLine, 0, len(lines))
	for _, line := range lines {
		stockLines = append(stockLines, inventory.StockLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	return stockLines
}
