package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/inventorypro/backend/internal/domain/partner"
)

// CreateContactRequest represents a request to create a customer or supplier
type CreateContactRequest struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	State   string
	ZipCode string
}

// UpdateContactRequest represents a partial update of a contact record.
// Nil fields are left untouched.
type UpdateContactRequest struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	City    *string
	State   *string
	ZipCode *string
}

// ContactResponse represents a customer or supplier in API responses
type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCustomerResponse converts a domain customer to a response
func ToCustomerResponse(customer *partner.Customer) ContactResponse {
	return ContactResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Address:   customer.Address,
		City:      customer.City,
		State:     customer.State,
		ZipCode:   customer.ZipCode,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

// ToSupplierResponse converts a domain supplier to a response
func ToSupplierResponse(supplier *partner.Supplier) ContactResponse {
	return ContactResponse{
		ID:        supplier.ID,
		Name:      supplier.Name,
		Email:     supplier.Email,
		Phone:     supplier.Phone,
		Address:   supplier.Address,
		City:      supplier.City,
		State:     supplier.State,
		ZipCode:   supplier.ZipCode,
		CreatedAt: supplier.CreatedAt,
		UpdatedAt: supplier.UpdatedAt,
	}
}

// merged returns the contact fields with non-nil updates applied
func (r UpdateContactRequest) merged(name, email, phone, address, city, state, zipCode string) (string, string, string, string, string, string, string) {
	if r.Name != nil {
		name = *r.Name
	}
	if r.Email != nil {
		email = *r.Email
	}
	if r.Phone != nil {
		phone = *r.Phone
	}
	if r.Address != nil {
		address = *r.Address
	}
	if r.City != nil {
		city = *r.City
	}
	if r.State != nil {
		state = *r.State
	}
	if r.ZipCode != nil {
		zipCode = *r.ZipCode
	}
	return name, email, phone, address, city, state, zipCode
}
