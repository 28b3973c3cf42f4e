package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/inventorypro/backend/internal/domain/partner"
	"github.com/inventorypro/backend/internal/domain/shared"
)

// SupplierService handles supplier CRUD. Deleting a supplier does not
// touch the orders or products that reference it.
type SupplierService struct {
	supplierRepo partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, req CreateContactRequest) (*ContactResponse, error) {
	supplier, err := partner.NewSupplier(req.Name, req.Email, req.Phone, req.Address, req.City, req.State, req.ZipCode)
	if err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Update merges the given fields into an existing supplier
func (s *SupplierService) Update(ctx context.Context, supplierID uuid.UUID, req UpdateContactRequest) (*ContactResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	name, email, phone, address, city, state, zipCode := req.merged(
		supplier.Name, supplier.Email, supplier.Phone, supplier.Address, supplier.City, supplier.State, supplier.ZipCode)
	if err := supplier.Update(name, email, phone, address, city, state, zipCode); err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Delete removes a supplier
func (s *SupplierService) Delete(ctx context.Context, supplierID uuid.UUID) error {
	return s.supplierRepo.Delete(ctx, supplierID)
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, supplierID uuid.UUID) (*ContactResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves suppliers with pagination
func (s *SupplierService) List(ctx context.Context, filter shared.Filter) ([]ContactResponse, int64, error) {
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

	suppliers, err := s.supplierRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.supplierRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ContactResponse, 0, len(suppliers))
	for idx := range suppliers {
		responses = append(responses, ToSupplierResponse(&suppliers[idx]))
	}
	return responses, total, nil
}
