package partner

import (
	"github.com/inventorypro/backend/internal/domain/shared"
)

// CustomerRepository defines persistence operations for customers
type CustomerRepository interface {
	shared.Repository[Customer]
}

// SupplierRepository defines persistence operations for suppliers
type SupplierRepository interface {
	shared.Repository[Supplier]
}
