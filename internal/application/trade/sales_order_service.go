package trade

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inventorypro/backend/internal/domain/catalog"
	"github.com/inventorypro/backend/internal/domain/inventory"
	"github.com/inventorypro/backend/internal/domain/shared"
	"github.com/inventorypro/backend/internal/domain/trade"
)

// SalesOrderService handles sales order operations. Line items are
// resolved against the catalog independently; a line whose product was
// deleted is skipped and surfaced in the adjustment outcomes.
type SalesOrderService struct {
	orderRepo   trade.SalesOrderRepository
	productRepo catalog.ProductRepository
	ledger      *inventory.Ledger
	tx          shared.TransactionManager
	logger      *zap.Logger
}

// NewSalesOrderService creates a new SalesOrderService
func NewSalesOrderService(
	orderRepo trade.SalesOrderRepository,
	productRepo catalog.ProductRepository,
	tx shared.TransactionManager,
	logger *zap.Logger,
) *SalesOrderService {
	return &SalesOrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		ledger:      inventory.NewLedger(),
		tx:          tx,
		logger:      logger.Named("sales_order_service"),
	}
}

// Create creates a new sales order. An order created directly in
// completed status decrements stock per line immediately.
func (s *SalesOrderService) Create(ctx context.Context, req CreateSalesOrderRequest) (*SalesOrderResponse, error) {
	status := req.Status
	if status == "" {
		status = trade.SalesOrderStatusPending
	}

	order, err := trade.NewSalesOrder(req.CustomerID, toLines(req.Items), req.OrderDate, status)
	if err != nil {
		return nil, err
	}

	movement := inventory.MovementBetween(false, order.IsRealized())

	adjustments, err := s.commit(ctx, order, movement)
	if err != nil {
		return nil, err
	}

	response := ToSalesOrderResponse(order, adjustments)
	return &response, nil
}

// Update merges the given fields into an existing order and evaluates
// exactly one ledger row from the old-versus-new status comparison.
// Editing quantities of an order that stays realized moves no stock;
// the recorded removal is not re-synced.
func (s *SalesOrderService) Update(ctx context.Context, orderID uuid.UUID, req UpdateSalesOrderRequest) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	wasRealized := order.IsRealized()

	if req.CustomerID != nil {
		if err := order.SetCustomer(*req.CustomerID); err != nil {
			return nil, err
		}
	}
	if req.Items != nil {
		if err := order.ReplaceItems(toLines(req.Items)); err != nil {
			return nil, err
		}
	}
	if req.OrderDate != nil {
		order.SetOrderDate(*req.OrderDate)
	}
	if req.Status != nil {
		if err := order.SetStatus(*req.Status); err != nil {
			return nil, err
		}
	}

	movement := inventory.MovementBetween(wasRealized, order.IsRealized())

	adjustments, err := s.commit(ctx, order, movement)
	if err != nil {
		return nil, err
	}

	response := ToSalesOrderResponse(order, adjustments)
	return &response, nil
}

// GetByID retrieves a sales order by ID
func (s *SalesOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToSalesOrderResponse(order, nil)
	return &response, nil
}

// List retrieves sales orders with pagination
func (s *SalesOrderService) List(ctx context.Context, filter shared.Filter) ([]SalesOrderResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SalesOrderResponse, 0, len(orders))
	for idx := range orders {
		responses = append(responses, ToSalesOrderResponse(&orders[idx], nil))
	}
	return responses, total, nil
}

// commit saves the order and every adjusted product inside a single
// transaction.
func (s *SalesOrderService) commit(ctx context.Context, order *trade.SalesOrder, movement inventory.Movement) ([]inventory.Adjustment, error) {
	var adjustments []inventory.Adjustment

	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.orderRepo.Save(txCtx, order); err != nil {
			return err
		}
		if movement == inventory.MovementNone {
			return nil
		}

		lines := order.Lines()
		ids := make([]uuid.UUID, 0, len(lines))
		for _, line := range lines {
			ids = append(ids, line.ProductID)
		}
		products, err := s.productRepo.FindByIDs(txCtx, ids)
		if err != nil {
			return err
		}
		byID := make(map[uuid.UUID]*catalog.Product, len(products))
		for idx := range products {
			byID[products[idx].ID] = &products[idx]
		}
		lookup := func(id uuid.UUID) (*catalog.Product, bool) {
			product, ok := byID[id]
			return product, ok
		}

		adjustments = s.ledger.ApplySale(movement, toStockLines(lines), lookup)

		for _, adj := range adjustments {
			switch adj.Outcome {
			case inventory.OutcomeSkippedMissingReference:
				s.logger.Warn("sales line references a missing product",
					zap.String("order_id", order.ID.String()),
					zap.String("product_id", adj.ProductID.String()),
				)
			case inventory.OutcomeAppliedWithFloor:
				s.logger.Warn("stock decrement hit the zero floor",
					zap.String("order_id", order.ID.String()),
					zap.String("product_id", adj.ProductID.String()),
					zap.Int64("quantity", adj.Quantity),
				)
			}
		}

		for _, id := range inventory.TouchedProductIDs(adjustments) {
			if err := s.productRepo.Save(txCtx, byID[id]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return adjustments, nil
}
