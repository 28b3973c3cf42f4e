package partner

import (
	"time"

	"github.com/inventorypro/backend/internal/domain/shared"
)

// Supplier is a flat contact record for a goods source
type Supplier struct {
	shared.BaseEntity
	Name    string `gorm:"type:varchar(200);not null"`
	Email   string `gorm:"type:varchar(200)"`
	Phone   string `gorm:"type:varchar(50)"`
	Address string `gorm:"type:varchar(500)"`
	City    string `gorm:"type:varchar(100)"`
	State   string `gorm:"type:varchar(100)"`
	ZipCode string `gorm:"type:varchar(20)"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier
func NewSupplier(name, email, phone, address, city, state, zipCode string) (*Supplier, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 200 characters")
	}

	return &Supplier{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		Address:    address,
		City:       city,
		State:      state,
		ZipCode:    zipCode,
	}, nil
}

// Update replaces the supplier's contact fields
func (s *Supplier) Update(name, email, phone, address, city, state, zipCode string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 200 characters")
	}

	s.Name = name
	s.Email = email
	s.Phone = phone
	s.Address = address
	s.City = city
	s.State = state
	s.ZipCode = zipCode
	s.UpdatedAt = time.Now()

	return nil
}
