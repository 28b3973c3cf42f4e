package persistence

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/inventorypro/backend/internal/domain/catalog"
	"github.com/inventorypro/backend/internal/domain/company"
	"github.com/inventorypro/backend/internal/domain/partner"
	"github.com/inventorypro/backend/internal/domain/shared"
	"github.com/inventorypro/backend/internal/domain/trade"
	"github.com/inventorypro/backend/internal/infrastructure/config"
)

// Database holds the database connection and provides methods for
// database operations. Fallback reports whether the connection runs
// against the local SQLite file instead of Postgres.
type Database struct {
	DB       *gorm.DB
	Fallback bool
}

// Connect opens the primary Postgres connection. When the server cannot
// be reached and the fallback is enabled, it falls back exactly once to
// a local SQLite file so the application stays usable offline.
func Connect(cfg *config.DatabaseConfig, log *zap.Logger, gl gormlogger.Interface) (*Database, error) {
	db, err := openPostgres(cfg, gl)
	if err == nil {
		return &Database{DB: db}, nil
	}

	if !cfg.FallbackEnabled {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Warn("postgres unreachable, falling back to local sqlite file",
		zap.String("host", cfg.Host),
		zap.String("path", cfg.FallbackPath),
		zap.Error(err),
	)

	db, err = openSQLite(cfg.FallbackPath, gl)
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite fallback failed: %v", shared.ErrPersistenceUnavailable, err)
	}

	d := &Database{DB: db, Fallback: true}
	// The fallback file starts empty; the schema is a prerequisite.
	if err := d.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite fallback: %w", err)
	}

	return d, nil
}

func openPostgres(cfg *config.DatabaseConfig, gl gormlogger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                 gl,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func openSQLite(path string, gl gormlogger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 gl,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// AutoMigrate creates or updates the schema for all persisted entities.
// Used for the SQLite fallback; the Postgres schema is managed by
// versioned migrations.
func (d *Database) AutoMigrate() error {
	return d.DB.AutoMigrate(
		&catalog.Product{},
		&partner.Customer{},
		&partner.Supplier{},
		&trade.PurchaseOrder{},
		&trade.SalesOrder{},
		&trade.SalesOrderItem{},
		&company.BusinessInfo{},
	)
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Ping checks if the database connection is alive
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Ping()
}
