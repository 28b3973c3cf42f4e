package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/inventorypro/backend/internal/domain/shared"
	"github.com/inventorypro/backend/internal/domain/trade"
)

var orderSortColumns = map[string]bool{
	"order_date":   true,
	"status":       true,
	"total_amount": true,
	"created_at":   true,
	"updated_at":   true,
}

// GormPurchaseOrderRepository implements PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

func (r *GormPurchaseOrderRepository) conn(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db).WithContext(ctx)
}

// FindByID finds a purchase order by its ID
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.PurchaseOrder, error) {
	var order trade.PurchaseOrder
	if err := r.conn(ctx).First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds all purchase orders matching the filter
func (r *GormPurchaseOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.PurchaseOrder, error) {
	var orders []trade.PurchaseOrder
	query := r.conn(ctx).Model(&trade.PurchaseOrder{})
	query = applySort(query, filter, orderSortColumns, "order_date DESC, created_at DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// SumRealizedAmount sums the total amount of received purchase orders
// within [from, to). Zero times mean unbounded.
func (r *GormPurchaseOrderRepository) SumRealizedAmount(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := r.conn(ctx).
		Model(&trade.PurchaseOrder{}).
		Where("status = ?", trade.PurchaseOrderStatusReceived)
	if !from.IsZero() {
		query = query.Where("order_date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("order_date < ?", to)
	}

	var total decimal.Decimal
	if err := query.Select("COALESCE(SUM(total_amount), 0)").Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// Save creates or updates a purchase order
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, order *trade.PurchaseOrder) error {
	return r.conn(ctx).Save(order).Error
}

// Delete deletes a purchase order
func (r *GormPurchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.conn(ctx).Delete(&trade.PurchaseOrder{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts purchase orders matching the filter
func (r *GormPurchaseOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.conn(ctx).Model(&trade.PurchaseOrder{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormPurchaseOrderRepository implements PurchaseOrderRepository
var _ trade.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)
