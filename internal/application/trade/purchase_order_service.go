package trade

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inventorypro/backend/internal/domain/catalog"
	"github.com/inventorypro/backend/internal/domain/inventory"
	"github.com/inventorypro/backend/internal/domain/shared"
	"github.com/inventorypro/backend/internal/domain/trade"
)

// PurchaseOrderService handles purchase order operations. Every
// mutation that moves stock commits the order write and the product
// write in one transaction.
type PurchaseOrderService struct {
	orderRepo   trade.PurchaseOrderRepository
	productRepo catalog.ProductRepository
	ledger      *inventory.Ledger
	tx          shared.TransactionManager
	logger      *zap.Logger
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(
	orderRepo trade.PurchaseOrderRepository,
	productRepo catalog.ProductRepository,
	tx shared.TransactionManager,
	logger *zap.Logger,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		ledger:      inventory.NewLedger(),
		tx:          tx,
		logger:      logger.Named("purchase_order_service"),
	}
}

// Create creates a new purchase order. An order created directly in
// received status applies its stock effect immediately.
func (s *PurchaseOrderService) Create(ctx context.Context, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	status := req.Status
	if status == "" {
		status = trade.PurchaseOrderStatusPending
	}

	order, err := trade.NewPurchaseOrder(req.SupplierID, req.ProductID, req.Quantity, req.UnitPrice, req.OrderDate, status)
	if err != nil {
		return nil, err
	}

	// Creation has no prior status: only the unrealized->realized row applies.
	movement := inventory.MovementBetween(false, order.IsRealized())

	adjustments, err := s.commit(ctx, order, movement)
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order, adjustments)
	return &response, nil
}

// Update merges the given fields into an existing order and evaluates
// exactly one ledger row from the old-versus-new status comparison.
// The merged quantity is what moves; the total amount stays as
// computed at creation.
func (s *PurchaseOrderService) Update(ctx context.Context, orderID uuid.UUID, req UpdatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	wasRealized := order.IsRealized()

	if req.SupplierID != nil {
		if err := order.SetSupplier(*req.SupplierID); err != nil {
			return nil, err
		}
	}
	if req.ProductID != nil {
		if err := order.SetProduct(*req.ProductID); err != nil {
			return nil, err
		}
	}
	if req.Quantity != nil {
		if err := order.SetQuantity(*req.Quantity); err != nil {
			return nil, err
		}
	}
	if req.UnitPrice != nil {
		if err := order.SetUnitPrice(*req.UnitPrice); err != nil {
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

	response := ToPurchaseOrderResponse(order, adjustments)
	return &response, nil
}

// GetByID retrieves a purchase order by ID
func (s *PurchaseOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order, nil)
	return &response, nil
}

// List retrieves purchase orders with pagination
func (s *PurchaseOrderService) List(ctx context.Context, filter shared.Filter) ([]PurchaseOrderResponse, int64, error) {
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

	responses := make([]PurchaseOrderResponse, 0, len(orders))
	for idx := range orders {
		responses = append(responses, ToPurchaseOrderResponse(&orders[idx], nil))
	}
	return responses, total, nil
}

// commit saves the order and, when the movement requires it, the
// adjusted product, inside a single transaction.
func (s *PurchaseOrderService) commit(ctx context.Context, order *trade.PurchaseOrder, movement inventory.Movement) ([]inventory.Adjustment, error) {
	var adjustments []inventory.Adjustment

	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.orderRepo.Save(txCtx, order); err != nil {
			return err
		}
		if movement == inventory.MovementNone {
			return nil
		}

		product, err := s.productRepo.FindByID(txCtx, order.ProductID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		lookup := func(id uuid.UUID) (*catalog.Product, bool) {
			if product == nil || product.ID != id {
				return nil, false
			}
			return product, true
		}

		adj := s.ledger.ApplyPurchase(movement, inventory.StockLine{ProductID: order.ProductID, Quantity: order.Quantity}, lookup)
		adjustments = []inventory.Adjustment{adj}

		switch adj.Outcome {
		case inventory.OutcomeSkippedMissingReference:
			s.logger.Warn("purchase order references a missing product",
				zap.String("order_id", order.ID.String()),
				zap.String("product_id", order.ProductID.String()),
			)
			return nil
		case inventory.OutcomeAppliedWithFloor:
			s.logger.Warn("stock reversal hit the zero floor",
				zap.String("order_id", order.ID.String()),
				zap.String("product_id", order.ProductID.String()),
				zap.Int64("quantity", adj.Quantity),
			)
		}

		return s.productRepo.Save(txCtx, product)
	})
	if err != nil {
		return nil, err
	}
	return adjustments, nil
}
