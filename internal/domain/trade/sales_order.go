package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inventorypro/backend/internal/domain/shared"
)

// SalesOrderStatus represents the status of a sales order
type SalesOrderStatus string

const (
	SalesOrderStatusPending   SalesOrderStatus = "pending"
	SalesOrderStatusCompleted SalesOrderStatus = "completed"
	SalesOrderStatusCancelled SalesOrderStatus = "cancelled"
)

// IsValid checks if the status is a valid SalesOrderStatus
func (s SalesOrderStatus) IsValid() bool {
	switch s {
	case SalesOrderStatusPending, SalesOrderStatusCompleted, SalesOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of SalesOrderStatus
func (s SalesOrderStatus) String() string {
	return string(s)
}

// Realized reports whether this status denotes a physical movement of
// goods out of stock.
func (s SalesOrderStatus) Realized() bool {
	return s == SalesOrderStatusCompleted
}

// SalesOrderItem represents a line item in a sales order
type SalesOrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int64           `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (SalesOrderItem) TableName() string {
	return "sales_order_items"
}

// Subtotal returns quantity * unit price for the line
func (i SalesOrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// NewSalesOrderItem creates a new sales order line item
func NewSalesOrderItem(orderID, productID uuid.UUID, quantity int64, unitPrice decimal.Decimal) (*SalesOrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &SalesOrderItem{
		ID:        uuid.New(),
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}, nil
}

// SalesOrder represents an order of one or more products to a customer.
// TotalAmount is the sum of line subtotals, recomputed whenever the
// item list is replaced; it is not maintained against out-of-band item
// mutation.
type SalesOrder struct {
	shared.BaseEntity
	CustomerID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	Items       []SalesOrderItem `gorm:"foreignKey:OrderID;references:ID"`
	TotalAmount decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	OrderDate   time.Time        `gorm:"not null;index"`
	Status      SalesOrderStatus `gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for GORM
func (SalesOrder) TableName() string {
	return "sales_orders"
}

// SalesLine is the input shape for one order line
type SalesLine struct {
	ProductID uuid.UUID
	Quantity  int64
	UnitPrice decimal.Decimal
}

// NewSalesOrder creates a new sales order with the given lines and
// computes its total amount
func NewSalesOrder(customerID uuid.UUID, lines []SalesLine, orderDate time.Time, status SalesOrderStatus) (*SalesOrder, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("NO_ITEMS", "Sales order must have at least one item")
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown sales order status")
	}

	order := &SalesOrder{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		Items:      make([]SalesOrderItem, 0, len(lines)),
		OrderDate:  orderDate,
		Status:     status,
	}

	if err := order.ReplaceItems(lines); err != nil {
		return nil, err
	}

	return order, nil
}

// ReplaceItems replaces all line items and recomputes the total amount
func (o *SalesOrder) ReplaceItems(lines []SalesLine) error {
	if len(lines) == 0 {
		return shared.NewDomainError("NO_ITEMS", "Sales order must have at least one item")
	}

	items := make([]SalesOrderItem, 0, len(lines))
	for _, line := range lines {
		item, err := NewSalesOrderItem(o.ID, line.ProductID, line.Quantity, line.UnitPrice)
		if err != nil {
			return err
		}
		items = append(items, *item)
	}

	o.Items = items
	o.recalculateTotal()
	o.UpdatedAt = time.Now()

	return nil
}

// SetCustomer changes the customer reference
func (o *SalesOrder) SetCustomer(customerID uuid.UUID) error {
	if customerID == uuid.Nil {
		return shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	o.CustomerID = customerID
	o.UpdatedAt = time.Now()
	return nil
}

// SetOrderDate changes the order date
func (o *SalesOrder) SetOrderDate(orderDate time.Time) {
	o.OrderDate = orderDate
	o.UpdatedAt = time.Now()
}

// SetStatus changes the order status
func (o *SalesOrder) SetStatus(status SalesOrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown sales order status")
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}

// IsRealized reports whether the order's goods have left stock
func (o *SalesOrder) IsRealized() bool {
	return o.Status.Realized()
}

// Lines returns the order items in input shape, for ledger evaluation
func (o *SalesOrder) Lines() []SalesLine {
	lines := make([]SalesLine, 0, len(o.Items))
	for _, item := range o.Items {
		lines = append(lines, SalesLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return lines
}

// recalculateTotal recomputes the order total from line subtotals
func (o *SalesOrder) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	o.TotalAmount = total
}
