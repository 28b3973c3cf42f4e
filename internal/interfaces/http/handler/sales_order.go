package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	tradeapp "github.com/inventorypro/backend/internal/application/trade"
	"github.com/inventorypro/backend/internal/domain/trade"
)

// SalesOrderHandler handles sales order API endpoints
type SalesOrderHandler struct {
	BaseHandler
	orderService   *tradeapp.SalesOrderService
	invoiceService *tradeapp.InvoiceService
}

// NewSalesOrderHandler creates a new SalesOrderHandler
func NewSalesOrderHandler(orderService *tradeapp.SalesOrderService, invoiceService *tradeapp.InvoiceService) *SalesOrderHandler {
	return &SalesOrderHandler{
		orderService:   orderService,
		invoiceService: invoiceService,
	}
}

// SalesLineRequest represents one line of a sales order
type SalesLineRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"gte=0"`
}

// CreateSalesOrderRequest represents a request to create a sales order.
// An omitted status defaults to pending.
type CreateSalesOrderRequest struct {
	CustomerID uuid.UUID          `json:"customer_id" binding:"required"`
	Items      []SalesLineRequest `json:"items" binding:"required,min=1,dive"`
	OrderDate  time.Time          `json:"order_date"`
	Status     string             `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
}

// UpdateSalesOrderRequest represents a partial update of a sales order.
// A non-nil items list replaces all lines and recomputes the total.
type UpdateSalesOrderRequest struct {
	CustomerID *uuid.UUID         `json:"customer_id"`
	Items      []SalesLineRequest `json:"items" binding:"omitempty,min=1,dive"`
	OrderDate  *time.Time         `json:"order_date"`
	Status     *string            `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
}

func toAppLines(items []SalesLineRequest) []tradeapp.SalesLineRequest {
	lines := make([]tradeapp.SalesLineRequest, 0, len(items))
	for _, item := range items {
		lines = append(lines, tradeapp.SalesLineRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return lines
}

// Create creates a sales order; a completed status decrements stock
// per line in the same transaction
func (h *SalesOrderHandler) Create(c *gin.Context) {
	var req CreateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), tradeapp.CreateSalesOrderRequest{
		CustomerID: req.CustomerID,
		Items:      toAppLines(req.Items),
		OrderDate:  req.OrderDate,
		Status:     trade.SalesOrderStatus(req.Status),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// GetByID retrieves a sales order by its ID
func (h *SalesOrderHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid sales order ID")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// List lists sales orders with pagination
func (h *SalesOrderHandler) List(c *gin.Context) {
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
// completed boundary move stock per line, reported in stock_adjustments
func (h *SalesOrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid sales order ID")
		return
	}

	var req UpdateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	appReq := tradeapp.UpdateSalesOrderRequest{
		CustomerID: req.CustomerID,
		OrderDate:  req.OrderDate,
	}
	if req.Items != nil {
		appReq.Items = toAppLines(req.Items)
	}
	if req.Status != nil {
		status := trade.SalesOrderStatus(*req.Status)
		appReq.Status = &status
	}

	order, err := h.orderService.Update(c.Request.Context(), id, appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Invoice assembles the invoice document for a sales order
func (h *SalesOrderHandler) Invoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid sales order ID")
		return
	}

	invoice, err := h.invoiceService.Build(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// RegisterRoutes registers all sales order routes
func (h *SalesOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/trade/sales")
	{
		sales.POST("", h.Create)
		sales.GET("", h.List)
		sales.GET("/:id", h.GetByID)
		sales.PUT("/:id", h.Update)
		sales.GET("/:id/invoice", h.Invoice)
	}
}
