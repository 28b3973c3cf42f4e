package trade

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inventorypro/backend/internal/domain/catalog"
	"github.com/inventorypro/backend/internal/domain/company"
	"github.com/inventorypro/backend/internal/domain/partner"
	"github.com/inventorypro/backend/internal/domain/shared"
	"github.com/inventorypro/backend/internal/domain/trade"
)

const unknownReference = "Unknown"

// InvoiceService assembles invoice documents for sales orders.
// It only gathers the data; rendering is a client concern.
type InvoiceService struct {
	orderRepo    trade.SalesOrderRepository
	customerRepo partner.CustomerRepository
	productRepo  catalog.ProductRepository
	businessRepo company.BusinessInfoRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	orderRepo trade.SalesOrderRepository,
	customerRepo partner.CustomerRepository,
	productRepo catalog.ProductRepository,
	businessRepo company.BusinessInfoRepository,
) *InvoiceService {
	return &InvoiceService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		businessRepo: businessRepo,
	}
}

// InvoiceParty is one side of the invoice (issuer or recipient)
type InvoiceParty struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	TaxID   string `json:"tax_id,omitempty"`
	Logo    string `json:"logo,omitempty"`
}

// InvoiceLine is one billed line on the invoice. Lines referencing a
// deleted product keep their stored amounts and render as Unknown.
type InvoiceLine struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductCode string          `json:"product_code,omitempty"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Invoice is the assembled invoice document
type Invoice struct {
	OrderID     uuid.UUID       `json:"order_id"`
	OrderDate   time.Time       `json:"order_date"`
	Status      string          `json:"status"`
	Business    InvoiceParty    `json:"business"`
	Customer    InvoiceParty    `json:"customer"`
	Lines       []InvoiceLine   `json:"lines"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// Build assembles the invoice for a sales order. Deleted customers and
// products degrade to Unknown placeholders; the stored totals are
// reported unchanged.
func (s *InvoiceService) Build(ctx context.Context, orderID uuid.UUID) (*Invoice, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	inv := &Invoice{
		OrderID:     order.ID,
		OrderDate:   order.OrderDate,
		Status:      order.Status.String(),
		TotalAmount: order.TotalAmount,
	}

	info, err := s.businessRepo.Get(ctx)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if info != nil {
		inv.Business = InvoiceParty{
			Name:    info.Name,
			Address: info.Address,
			City:    info.City,
			State:   info.State,
			ZipCode: info.ZipCode,
			Phone:   info.Phone,
			Email:   info.Email,
			TaxID:   info.TaxID,
			Logo:    info.Logo,
		}
	}

	customer, err := s.customerRepo.FindByID(ctx, order.CustomerID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if customer != nil {
		inv.Customer = InvoiceParty{
			Name:    customer.Name,
			Address: customer.Address,
			City:    customer.City,
			State:   customer.State,
			ZipCode: customer.ZipCode,
			Phone:   customer.Phone,
			Email:   customer.Email,
		}
	} else {
		inv.Customer = InvoiceParty{Name: unknownReference}
	}

	ids := make([]uuid.UUID, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for idx := range products {
		byID[products[idx].ID] = &products[idx]
	}

	inv.Lines = make([]InvoiceLine, 0, len(order.Items))
	for _, item := range order.Items {
		line := InvoiceLine{
			ProductID:   item.ProductID,
			ProductName: unknownReference,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal(),
		}
		if product, ok := byID[item.ProductID]; ok {
			line.ProductName = product.Name
			line.ProductCode = product.Code
		}
		inv.Lines = append(inv.Lines, line)
	}

	return inv, nil
}
