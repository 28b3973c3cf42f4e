package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/inventorypro/backend/internal/domain/shared"
)

// newMockProductRepository creates a GormProductRepository with a mocked SQL connection
func newMockProductRepository(t *testing.T) (*GormProductRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormProductRepository(gormDB), mock, mockDB
}

func TestGormProductRepository_FindByID(t *testing.T) {
	t.Run("finds existing product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "code", "name", "purchase_price", "sales_price", "in_stock", "value_on_hand"}).
			AddRow(productID, "SKU001", "Widget", "4.50", "9.99", 12, "54.00")

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(productID, 1).
			WillReturnRows(rows)

		product, err := repo.FindByID(context.Background(), productID)

		assert.NoError(t, err)
		assert.NotNil(t, product)
		assert.Equal(t, productID, product.ID)
		assert.Equal(t, "Widget", product.Name)
		assert.Equal(t, int64(12), product.InStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(productID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		product, err := repo.FindByID(context.Background(), productID)

		assert.Error(t, err)
		assert.Nil(t, product)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindByIDs(t *testing.T) {
	t.Run("returns empty slice for no IDs", func(t *testing.T) {
		repo, _, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		products, err := repo.FindByIDs(context.Background(), nil)

		assert.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("missing IDs are absent from the result", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		existing := uuid.New()
		missing := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "code", "name", "in_stock"}).
			AddRow(existing, "SKU001", "Widget", 3)

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id IN .*`).
			WithArgs(existing, missing).
			WillReturnRows(rows)

		products, err := repo.FindByIDs(context.Background(), []uuid.UUID{existing, missing})

		assert.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, existing, products[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_SumValueOnHand(t *testing.T) {
	repo, mock, mockDB := newMockProductRepository(t)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"coalesce"}).AddRow("1234.56")

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(value_on_hand\), 0\) FROM "products"`).
		WillReturnRows(rows)

	total, err := repo.SumValueOnHand(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "1234.56", total.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProductRepository_FindLowStock(t *testing.T) {
	repo, mock, mockDB := newMockProductRepository(t)
	defer mockDB.Close()

	lowID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "code", "name", "in_stock"}).
		AddRow(lowID, "SKU002", "Scarce", 2)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE in_stock < \$1 ORDER BY in_stock ASC, name ASC`).
		WithArgs(int64(10)).
		WillReturnRows(rows)

	products, err := repo.FindLowStock(context.Background(), 10)

	assert.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(2), products[0].InStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProductRepository_Delete(t *testing.T) {
	t.Run("returns ErrNotFound when nothing deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()

		mock.ExpectExec(`DELETE FROM "products" WHERE id = \$1`).
			WithArgs(productID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), productID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
