package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/inventorypro/backend/internal/domain/catalog"
	"github.com/inventorypro/backend/internal/domain/shared"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create creates a new product with its value on hand computed from
// the given cost and stock
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Code, req.Name, req.Description, req.Picture, req.PurchasePrice, req.SalesPrice, req.InStock, req.SupplierID)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Update merges the given fields into an existing product and
// recomputes its value on hand
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	code := product.Code
	if req.Code != nil {
		code = *req.Code
	}
	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := product.Description
	if req.Description != nil {
		description = *req.Description
	}
	picture := product.Picture
	if req.Picture != nil {
		picture = *req.Picture
	}
	if err := product.UpdateDetails(code, name, description, picture); err != nil {
		return nil, err
	}

	if req.PurchasePrice != nil || req.SalesPrice != nil {
		purchasePrice := product.PurchasePrice
		if req.PurchasePrice != nil {
			purchasePrice = *req.PurchasePrice
		}
		salesPrice := product.SalesPrice
		if req.SalesPrice != nil {
			salesPrice = *req.SalesPrice
		}
		if err := product.SetPrices(purchasePrice, salesPrice); err != nil {
			return nil, err
		}
	}
	if req.InStock != nil {
		if err := product.SetStock(*req.InStock); err != nil {
			return nil, err
		}
	}
	if req.SupplierID != nil {
		product.SetSupplier(req.SupplierID)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product. Orders that reference it keep their stored
// amounts; their lines simply stop resolving.
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	return s.productRepo.Delete(ctx, productID)
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with pagination
func (s *ProductService) List(ctx context.Context, filter shared.Filter) ([]ProductResponse, int64, error) {
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

	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for idx := range products {
		responses = append(responses, ToProductResponse(&products[idx]))
	}
	return responses, total, nil
}
