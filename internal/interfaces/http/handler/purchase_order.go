package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	tradeapp "github.com/inventorypro/backend/internal/application/trade"
	"github.com/inventorypro/backend/internal/domain/trade"
)

// PurchaseOrderHandler handles purchase order API endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	orderService *tradeapp.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(orderService *tradeapp.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{orderService: orderService}
}

// CreatePurchaseOrderRequest represents a request to create a purchase order.
// The total amount is computed once at creation and never accepted from
// callers. An omitted status defaults to pending.
type CreatePurchaseOrderRequest struct {
	SupplierID uuid.UUID       `json:"supplier_id" binding:"required"`
	ProductID  uuid.UUID       `json:"product_id" binding:"required"`
	Quantity   int64           `json:"quantity" binding:"required,min=1"`
	UnitPrice  decimal.Decimal `json:"unit_price" binding:"gte=0"`
	OrderDate  time.Time       `json:"order_date"`
	Status     string          `json:"status" binding:"omitempty,oneof=pending received cancelled"`
}

// UpdatePurchaseOrderRequest represents a partial update of a purchase order
type UpdatePurchaseOrderRequest struct {
	SupplierID *uuid.UUID       `json:"supplier_id"`
	ProductID  *uuid.UUID       `json:"product_id"`
	Quantity   *int64           `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice  *decimal.Decimal `json:"unit_price" binding:"omitempty,gte=0"`
	OrderDate  *time.Time       `json:"order_date"`
	Status     *string          `json:"status" binding:"omitempty,oneof=pending received cancelled"`
}

// Create creates a purchase order; a received status moves stock in
// the same transaction
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), tradeapp.CreatePurchaseOrderRequest{
		SupplierID: req.SupplierID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		OrderDate:  req.OrderDate,
		Status:     trade.PurchaseOrderStatus(req.Status),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// GetByID retrieves a purchase order by its ID
func (h *PurchaseOrderHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid purchase order ID")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// List lists purchase orders with pagination
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	orders, total, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, orders, total, filter.Page, filter.PageSize)
}

// Update applies a partial update; status transitions across the
// received boundary move stock, reported in stock_adjustments
func (h *PurchaseOrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid purchase order ID")
		return
	}

	var req UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	appReq := tradeapp.UpdatePurchaseOrderRequest{
		SupplierID: req.SupplierID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		OrderDate:  req.OrderDate,
	}
	if req.Status != nil {
		status := trade.PurchaseOrderStatus(*req.Status)
		appReq.Status = &status
	}

	order, err := h.orderService.Update(c.Request.Context(), id, appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// RegisterRoutes registers all purchase order routes
func (h *PurchaseOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	purchases := rg.Group("/trade/purchases")
	{
		purchases.POST("", h.Create)
		purchases.GET("", h.List)
		purchases.GET("/:id", h.GetByID)
		purchases.PUT("/:id", h.Update)
	}
}
