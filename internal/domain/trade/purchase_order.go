package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inventorypro/backend/internal/domain/shared"
)

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusPending   PurchaseOrderStatus = "pending"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "received"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "cancelled"
)

// IsValid checks if the status is a valid PurchaseOrderStatus
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusPending, PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PurchaseOrderStatus
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// Realized reports whether this status denotes a physical movement of
// goods into stock.
func (s PurchaseOrderStatus) Realized() bool {
	return s == PurchaseOrderStatusReceived
}

// PurchaseOrder represents an order for goods from a supplier.
// Exactly one product per order. TotalAmount is fixed at creation and
// deliberately not recomputed when quantity or unit price are edited
// afterwards.
type PurchaseOrder struct {
	shared.BaseEntity
	SupplierID  uuid.UUID           `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	Quantity    int64               `gorm:"not null"`
	UnitPrice   decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	TotalAmount decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	OrderDate   time.Time           `gorm:"not null;index"`
	Status      PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates a new purchase order and computes its total amount
func NewPurchaseOrder(supplierID, productID uuid.UUID, quantity int64, unitPrice decimal.Decimal, orderDate time.Time, status PurchaseOrderStatus) (*PurchaseOrder, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown purchase order status")
	}

	return &PurchaseOrder{
		BaseEntity:  shared.NewBaseEntity(),
		SupplierID:  supplierID,
		ProductID:   productID,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalAmount: unitPrice.Mul(decimal.NewFromInt(quantity)),
		OrderDate:   orderDate,
		Status:      status,
	}, nil
}

// SetSupplier changes the supplier reference
func (o *PurchaseOrder) SetSupplier(supplierID uuid.UUID) error {
	if supplierID == uuid.Nil {
		return shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	o.SupplierID = supplierID
	o.UpdatedAt = time.Now()
	return nil
}

// SetProduct changes the product reference
func (o *PurchaseOrder) SetProduct(productID uuid.UUID) error {
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	o.ProductID = productID
	o.UpdatedAt = time.Now()
	return nil
}

// SetQuantity changes the ordered quantity. TotalAmount stays as
// computed at creation.
func (o *PurchaseOrder) SetQuantity(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	o.Quantity = quantity
	o.UpdatedAt = time.Now()
	return nil
}

// SetUnitPrice changes the unit price. TotalAmount stays as computed
// at creation.
func (o *PurchaseOrder) SetUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	o.UnitPrice = unitPrice
	o.UpdatedAt = time.Now()
	return nil
}

// SetOrderDate changes the order date
func (o *PurchaseOrder) SetOrderDate(orderDate time.Time) {
	o.OrderDate = orderDate
	o.UpdatedAt = time.Now()
}

// SetStatus changes the order status
func (o *PurchaseOrder) SetStatus(status PurchaseOrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown purchase order status")
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}

// IsRealized reports whether the order's goods are counted in stock
func (o *PurchaseOrder) IsRealized() bool {
	return o.Status.Realized()
}
