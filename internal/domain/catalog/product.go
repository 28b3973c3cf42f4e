package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inventorypro/backend/internal/domain/shared"
)

// Product represents a product/SKU in the catalog.
// ValueOnHand is derived (PurchasePrice * InStock) and is recomputed
// inside every mutator that touches either factor; it is never set
// directly from the outside.
type Product struct {
	shared.BaseEntity
	Code          string          `gorm:"type:varchar(50);not null;index"` // UPC / external code
	Name          string          `gorm:"type:varchar(200);not null"`
	Description   string          `gorm:"type:text"`
	Picture       string          `gorm:"type:varchar(500)"` // image URL reference
	PurchasePrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	SalesPrice    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	InStock       int64           `gorm:"not null;default:0"`
	ValueOnHand   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	SupplierID    *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product and computes its initial value on hand
func NewProduct(code, name, description, picture string, purchasePrice, salesPrice decimal.Decimal, inStock int64, supplierID *uuid.UUID) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	if purchasePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Purchase price cannot be negative")
	}
	if salesPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Sales price cannot be negative")
	}
	if inStock < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Stock cannot be negative")
	}

	product := &Product{
		BaseEntity:    shared.NewBaseEntity(),
		Code:          code,
		Name:          name,
		Description:   description,
		Picture:       picture,
		PurchasePrice: purchasePrice,
		SalesPrice:    salesPrice,
		InStock:       inStock,
		SupplierID:    supplierID,
	}
	product.recalculateValueOnHand()

	return product, nil
}

// UpdateDetails updates the product's catalog fields
func (p *Product) UpdateDetails(code, name, description, picture string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}

	p.Code = code
	p.Name = name
	p.Description = description
	p.Picture = picture
	p.UpdatedAt = time.Now()

	return nil
}

// SetPrices sets the purchase and sales prices and recomputes the valuation
func (p *Product) SetPrices(purchasePrice, salesPrice decimal.Decimal) error {
	if purchasePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Purchase price cannot be negative")
	}
	if salesPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Sales price cannot be negative")
	}

	p.PurchasePrice = purchasePrice
	p.SalesPrice = salesPrice
	p.recalculateValueOnHand()
	p.UpdatedAt = time.Now()

	return nil
}

// SetSupplier sets the default supplier reference
func (p *Product) SetSupplier(supplierID *uuid.UUID) {
	p.SupplierID = supplierID
	p.UpdatedAt = time.Now()
}

// SetStock replaces the stock level directly (catalog edit, not a ledger movement)
func (p *Product) SetStock(quantity int64) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Stock cannot be negative")
	}

	p.InStock = quantity
	p.recalculateValueOnHand()
	p.UpdatedAt = time.Now()

	return nil
}

// IncreaseStock adds quantity to the stock level
func (p *Product) IncreaseStock(quantity int64) {
	p.InStock += quantity
	p.recalculateValueOnHand()
	p.UpdatedAt = time.Now()
}

// DecreaseStockSaturating subtracts quantity from the stock level,
// flooring the result at zero. It returns true when the floor was hit,
// meaning the recorded movement no longer matches the requested one.
func (p *Product) DecreaseStockSaturating(quantity int64) bool {
	floored := quantity > p.InStock
	if floored {
		p.InStock = 0
	} else {
		p.InStock -= quantity
	}
	p.recalculateValueOnHand()
	p.UpdatedAt = time.Now()

	return floored
}

// recalculateValueOnHand keeps the valuation invariant:
// ValueOnHand == PurchasePrice * InStock after every mutation.
func (p *Product) recalculateValueOnHand() {
	p.ValueOnHand = p.PurchasePrice.Mul(decimal.NewFromInt(p.InStock))
}

// IsLowStock reports whether the stock level is below the threshold
func (p *Product) IsLowStock(threshold int64) bool {
	return p.InStock < threshold
}
