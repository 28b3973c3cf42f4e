package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inventorypro/backend/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a product.
// The identifier and value on hand are never accepted from callers.
type CreateProductRequest struct {
	Code          string
	Name          string
	Description   string
	Picture       string
	PurchasePrice decimal.Decimal
	SalesPrice    decimal.Decimal
	InStock       int64
	SupplierID    *uuid.UUID
}

// UpdateProductRequest represents a partial update of a product.
// Nil fields are left untouched; value on hand is always recomputed.
type UpdateProductRequest struct {
	Code          *string
	Name          *string
	Description   *string
	Picture       *string
	PurchasePrice *decimal.Decimal
	SalesPrice    *decimal.Decimal
	InStock       *int64
	SupplierID    *uuid.UUID
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Picture       string          `json:"picture"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalesPrice    decimal.Decimal `json:"sales_price"`
	InStock       int64           `json:"in_stock"`
	ValueOnHand   decimal.Decimal `json:"value_on_hand"`
	SupplierID    *uuid.UUID      `json:"supplier_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain product to a response
func ToProductResponse(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            product.ID,
		Code:          product.Code,
		Name:          product.Name,
		Description:   product.Description,
		Picture:       product.Picture,
		PurchasePrice: product.PurchasePrice,
		SalesPrice:    product.SalesPrice,
		InStock:       product.InStock,
		ValueOnHand:   product.ValueOnHand,
		SupplierID:    product.SupplierID,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}
