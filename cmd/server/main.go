package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/inventorypro/backend/internal/application/catalog"
	companyapp "github.com/inventorypro/backend/internal/application/company"
	partnerapp "github.com/inventorypro/backend/internal/application/partner"
	reportapp "github.com/inventorypro/backend/internal/application/report"
	tradeapp "github.com/inventorypro/backend/internal/application/trade"
	"github.com/inventorypro/backend/internal/infrastructure/config"
	"github.com/inventorypro/backend/internal/infrastructure/logger"
	"github.com/inventorypro/backend/internal/infrastructure/persistence"
	"github.com/inventorypro/backend/internal/interfaces/http/handler"
	"github.com/inventorypro/backend/internal/interfaces/http/middleware"
	"github.com/inventorypro/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting inventory backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Connect to storage; falls back once to the local SQLite file when
	// Postgres is unreachable
	db, err := persistence.Connect(&cfg.Database, log, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to storage", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if db.Fallback {
		log.Warn("Running on local sqlite fallback", zap.String("path", cfg.Database.FallbackPath))
	} else {
		log.Info("Database connected successfully")
	}

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	salesOrderRepo := persistence.NewGormSalesOrderRepository(db.DB)
	businessInfoRepo := persistence.NewGormBusinessInfoRepository(db.DB)
	txManager := persistence.NewGormTransactionManager(db.DB)

	// Initialize application services
	productService := catalogapp.NewProductService(productRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	purchaseOrderService := tradeapp.NewPurchaseOrderService(purchaseOrderRepo, productRepo, txManager, log)
	salesOrderService := tradeapp.NewSalesOrderService(salesOrderRepo, productRepo, txManager, log)
	invoiceService := tradeapp.NewInvoiceService(salesOrderRepo, customerRepo, productRepo, businessInfoRepo)
	businessInfoService := companyapp.NewBusinessInfoService(businessInfoRepo)
	dashboardService := reportapp.NewDashboardService(productRepo, customerRepo, supplierRepo, purchaseOrderRepo, salesOrderRepo)

	// Set up the HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := handler.RegisterValidators(); err != nil {
		log.Fatal("Failed to register binding validators", zap.Error(err))
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.CORS(&cfg.HTTP))

	// Register routes
	r := router.NewRouter(engine)
	r.Register(handler.NewProductHandler(productService))
	r.Register(handler.NewCustomerHandler(customerService))
	r.Register(handler.NewSupplierHandler(supplierService))
	r.Register(handler.NewPurchaseOrderHandler(purchaseOrderService))
	r.Register(handler.NewSalesOrderHandler(salesOrderService, invoiceService))
	r.Register(handler.NewBusinessInfoHandler(businessInfoService))
	r.Register(handler.NewReportHandler(dashboardService))
	r.Register(handler.NewSystemHandler(db, db.Fallback))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()
	log.Info("HTTP server listening", zap.String("addr", srv.Addr))

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
