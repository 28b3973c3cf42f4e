package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogapp "github.com/inventorypro/backend/internal/application/catalog"
)

// ProductHandler handles product-related API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProductRequest represents a request to create a new product.
// Value on hand is derived server-side and never accepted here.
type CreateProductRequest struct {
	Code          string          `json:"code" binding:"max=50"`
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	Description   string          `json:"description"`
	Picture       string          `json:"picture" binding:"omitempty,max=500"`
	PurchasePrice decimal.Decimal `json:"purchase_price" binding:"gte=0"`
	SalesPrice    decimal.Decimal `json:"sales_price" binding:"gte=0"`
	InStock       int64           `json:"in_stock" binding:"min=0"`
	SupplierID    *uuid.UUID      `json:"supplier_id"`
}

// UpdateProductRequest represents a partial update of a product
type UpdateProductRequest struct {
	Code          *string          `json:"code" binding:"omitempty,max=50"`
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	Picture       *string          `json:"picture" binding:"omitempty,max=500"`
	PurchasePrice *decimal.Decimal `json:"purchase_price" binding:"omitempty,gte=0"`
	SalesPrice    *decimal.Decimal `json:"sales_price" binding:"omitempty,gte=0"`
	InStock       *int64           `json:"in_stock" binding:"omitempty,min=0"`
	SupplierID    *uuid.UUID       `json:"supplier_id"`
}

// Create creates a new product
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), catalogapp.CreateProductRequest{
		Code:          req.Code,
		Name:          req.Name,
		Description:   req.Description,
		Picture:       req.Picture,
		PurchasePrice: req.PurchasePrice,
		SalesPrice:    req.SalesPrice,
		InStock:       req.InStock,
		SupplierID:    req.SupplierID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// GetByID retrieves a product by its ID
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// List lists products with pagination and search
func (h *ProductHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	products, total, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, products, total, filter.Page, filter.PageSize)
}

// Update applies a partial update to a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, catalogapp.UpdateProductRequest{
		Code:          req.Code,
		Name:          req.Name,
		Description:   req.Description,
		Picture:       req.Picture,
		PurchasePrice: req.PurchasePrice,
		SalesPrice:    req.SalesPrice,
		InStock:       req.InStock,
		SupplierID:    req.SupplierID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete deletes a product. Orders referencing it keep their stored
// amounts; their product lines degrade to unknown references.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/catalog/products")
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/:id", h.GetByID)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}
