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

// GormSalesOrderRepository implements SalesOrderRepository using GORM
type GormSalesOrderRepository struct {
	db *gorm.DB
}

// NewGormSalesOrderRepository creates a new GormSalesOrderRepository
func NewGormSalesOrderRepository(db *gorm.DB) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{db: db}
}

func (r *GormSalesOrderRepository) conn(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db).WithContext(ctx)
}

// FindByID finds a sales order with its line items by ID
func (r *GormSalesOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SalesOrder, error) {
	var order trade.SalesOrder
	if err := r.conn(ctx).Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds all sales orders matching the filter
func (r *GormSalesOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.SalesOrder, error) {
	var orders []trade.SalesOrder
	query := r.conn(ctx).Model(&trade.SalesOrder{}).Preload("Items")
	query = applySort(query, filter, orderSortColumns, "order_date DESC, created_at DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindRecent returns the most recently created sales orders
func (r *GormSalesOrderRepository) FindRecent(ctx context.Context, limit int) ([]trade.SalesOrder, error) {
	var orders []trade.SalesOrder
	if err := r.conn(ctx).
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// SumRealizedAmount sums the total amount of completed sales orders
// within [from, to). Zero times mean unbounded.
func (r *GormSalesOrderRepository) SumRealizedAmount(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := r.conn(ctx).
		Model(&trade.SalesOrder{}).
		Where("status = ?", trade.SalesOrderStatusCompleted)
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

// Save creates or updates a sales order and reconciles its line items.
// Items removed by a replacement are deleted, current ones upserted.
// Callers that need atomicity with other writes run this inside
// TransactionManager.WithinTx.
func (r *GormSalesOrderRepository) Save(ctx context.Context, order *trade.SalesOrder) error {
	db := r.conn(ctx)

	if err := db.Omit("Items").Save(order).Error; err != nil {
		return err
	}

	ids := make([]uuid.UUID, len(order.Items))
	for i := range order.Items {
		ids[i] = order.Items[i].ID
	}

	del := db.Where("order_id = ?", order.ID)
	if len(ids) > 0 {
		del = del.Where("id NOT IN ?", ids)
	}
	if err := del.Delete(&trade.SalesOrderItem{}).Error; err != nil {
		return err
	}

	for i := range order.Items {
		if err := db.Save(&order.Items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete deletes a sales order and its line items
func (r *GormSalesOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.conn(ctx)

	if err := db.Where("order_id = ?", id).Delete(&trade.SalesOrderItem{}).Error; err != nil {
		return err
	}

	result := db.Delete(&trade.SalesOrder{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts sales orders matching the filter
func (r *GormSalesOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.conn(ctx).Model(&trade.SalesOrder{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormSalesOrderRepository implements SalesOrderRepository
var _ trade.SalesOrderRepository = (*GormSalesOrderRepository)(nil)
