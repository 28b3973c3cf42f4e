package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/inventorypro/backend/internal/domain/company"
	"github.com/inventorypro/backend/internal/domain/shared"
)

// GormBusinessInfoRepository implements BusinessInfoRepository using GORM
type GormBusinessInfoRepository struct {
	db *gorm.DB
}

// NewGormBusinessInfoRepository creates a new GormBusinessInfoRepository
func NewGormBusinessInfoRepository(db *gorm.DB) *GormBusinessInfoRepository {
	return &GormBusinessInfoRepository{db: db}
}

func (r *GormBusinessInfoRepository) conn(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db).WithContext(ctx)
}

// Get returns the singleton record, or shared.ErrNotFound when it was never set
func (r *GormBusinessInfoRepository) Get(ctx context.Context) (*company.BusinessInfo, error) {
	var info company.BusinessInfo
	if err := r.conn(ctx).Order("created_at ASC").First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &info, nil
}

// Save inserts or replaces the singleton record
func (r *GormBusinessInfoRepository) Save(ctx context.Context, info *company.BusinessInfo) error {
	return r.conn(ctx).Save(info).Error
}

// Ensure GormBusinessInfoRepository implements BusinessInfoRepository
var _ company.BusinessInfoRepository = (*GormBusinessInfoRepository)(nil)
