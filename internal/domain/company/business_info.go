package company

import (
	"context"
	"time"

	"github.com/inventorypro/backend/internal/domain/shared"
)

// BusinessInfo is the single process-wide business configuration
// record. It is used for document rendering only and never touches the
// ledger. Replaced wholesale on update.
type BusinessInfo struct {
	shared.BaseEntity
	Name    string `gorm:"type:varchar(200);not null"`
	Address string `gorm:"type:varchar(500)"`
	City    string `gorm:"type:varchar(100)"`
	State   string `gorm:"type:varchar(100)"`
	ZipCode string `gorm:"type:varchar(20)"`
	Phone   string `gorm:"type:varchar(50)"`
	Email   string `gorm:"type:varchar(200)"`
	Website string `gorm:"type:varchar(200)"`
	TaxID   string `gorm:"type:varchar(50)"`
	Logo    string `gorm:"type:varchar(500)"` // logo URL reference
}

// TableName returns the table name for GORM
func (BusinessInfo) TableName() string {
	return "business_info"
}

// NewBusinessInfo creates the business info record
func NewBusinessInfo(name, address, city, state, zipCode, phone, email, website, taxID, logo string) (*BusinessInfo, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Business name cannot be empty")
	}

	return &BusinessInfo{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Address:    address,
		City:       city,
		State:      state,
		ZipCode:    zipCode,
		Phone:      phone,
		Email:      email,
		Website:    website,
		TaxID:      taxID,
		Logo:       logo,
	}, nil
}

// Replace overwrites every field with the given values
func (b *BusinessInfo) Replace(name, address, city, state, zipCode, phone, email, website, taxID, logo string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Business name cannot be empty")
	}

	b.Name = name
	b.Address = address
	b.City = city
	b.State = state
	b.ZipCode = zipCode
	b.Phone = phone
	b.Email = email
	b.Website = website
	b.TaxID = taxID
	b.Logo = logo
	b.UpdatedAt = time.Now()

	return nil
}

// BusinessInfoRepository persists the singleton business info record
type BusinessInfoRepository interface {
	// Get returns the record, or shared.ErrNotFound when it was never set
	Get(ctx context.Context) (*BusinessInfo, error)
	// Save inserts or replaces the singleton record
	Save(ctx context.Context, info *BusinessInfo) error
}
