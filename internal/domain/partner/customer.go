package partner

import (
	"time"

	"github.com/inventorypro/backend/internal/domain/shared"
)

// Customer is a flat contact record for a buyer
type Customer struct {
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
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer
func NewCustomer(name, email, phone, address, city, state, zipCode string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}

	return &Customer{
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

// Update replaces the customer's contact fields
func (c *Customer) Update(name, email, phone, address, city, state, zipCode string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}

	c.Name = name
	c.Email = email
	c.Phone = phone
	c.Address = address
	c.City = city
	c.State = state
	c.ZipCode = zipCode
	c.UpdatedAt = time.Now()

	return nil
}
