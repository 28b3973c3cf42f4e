package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/inventorypro/backend/internal/domain/partner"
	"github.com/inventorypro/backend/internal/domain/shared"
)

// CustomerService handles customer CRUD. Deleting a customer does not
// touch the orders that reference it.
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateContactRequest) (*ContactResponse, error) {
	customer, err := partner.NewCustomer(req.Name, req.Email, req.Phone, req.Address, req.City, req.State, req.ZipCode)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// Update merges the given fields into an existing customer
func (s *CustomerService) Update(ctx context.Context, customerID uuid.UUID, req UpdateContactRequest) (*ContactResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	name, email, phone, address, city, state, zipCode := req.merged(
		customer.Name, customer.Email, customer.Phone, customer.Address, customer.City, customer.State, customer.ZipCode)
	if err := customer.Update(name, email, phone, address, city, state, zipCode); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete removes a customer
func (s *CustomerService) Delete(ctx context.Context, customerID uuid.UUID) error {
	return s.customerRepo.Delete(ctx, customerID)
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, customerID uuid.UUID) (*ContactResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves customers with pagination
func (s *CustomerService) List(ctx context.Context, filter shared.Filter) ([]ContactResponse, int64, error) {
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

	customers, err := s.customerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.customerRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ContactResponse, 0, len(customers))
	for idx := range customers {
		responses = append(responses, ToCustomerResponse(&customers[idx]))
	}
	return responses, total, nil
}
