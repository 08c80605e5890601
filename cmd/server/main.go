package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cleanupapp "github.com/atelier/backend/internal/application/cleanup"
	ledgerapp "github.com/atelier/backend/internal/application/ledger"
	partnerapp "github.com/atelier/backend/internal/application/partner"
	projectapp "github.com/atelier/backend/internal/application/project"
	"github.com/atelier/backend/internal/domain/cleanup"
	"github.com/atelier/backend/internal/infrastructure/config"
	"github.com/atelier/backend/internal/infrastructure/logger"
	"github.com/atelier/backend/internal/infrastructure/persistence"
	"github.com/atelier/backend/internal/interfaces/http/handler"
	"github.com/atelier/backend/internal/interfaces/http/middleware"
	"github.com/atelier/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Atelier Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	walletRepo := persistence.NewGormWalletRepository(db.DB)
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)
	adjustmentRepo := persistence.NewGormAdjustmentRepository(db.DB)
	incomeCategoryRepo := persistence.NewGormIncomeCategoryRepository(db.DB)
	expenseCategoryRepo := persistence.NewGormExpenseCategoryRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	followUpRepo := persistence.NewGormFollowUpRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	workshopRepo := persistence.NewGormWorkshopRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	orderItemRepo := persistence.NewGormOrderItemRepository(db.DB)
	workshopJobRepo := persistence.NewGormWorkshopJobRepository(db.DB)
	workshopJobItemRepo := persistence.NewGormWorkshopJobItemRepository(db.DB)
	balanceReader := persistence.NewGormBalanceReader(db.DB)
	cascadeStore := persistence.NewGormCascadeStore(db.DB)

	// Initialize application services
	walletService := ledgerapp.NewWalletService(walletRepo)
	transactionService := ledgerapp.NewTransactionService(
		transactionRepo, walletRepo, incomeCategoryRepo, expenseCategoryRepo, projectRepo, workshopJobRepo,
	)
	adjustmentService := ledgerapp.NewAdjustmentService(adjustmentRepo, walletRepo)
	categoryService := ledgerapp.NewCategoryService(incomeCategoryRepo, expenseCategoryRepo)
	balanceService := ledgerapp.NewBalanceService(balanceReader, walletRepo, transactionRepo, adjustmentRepo)
	customerService := partnerapp.NewCustomerService(customerRepo, followUpRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo, workshopRepo)
	projectService := projectapp.NewProjectService(
		projectRepo, orderItemRepo, workshopJobRepo, workshopJobItemRepo, customerRepo, workshopRepo,
	)
	cascadeService := cleanupapp.NewCascadeService(cascadeStore, log)

	// Initialize handlers
	walletHandler := handler.NewWalletHandler(walletService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	adjustmentHandler := handler.NewAdjustmentHandler(adjustmentService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	balanceHandler := handler.NewBalanceHandler(balanceService)
	customerHandler := handler.NewCustomerHandler(customerService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	projectHandler := handler.NewProjectHandler(projectService)
	cleanupHandler := handler.NewCleanupHandler(cascadeService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging, security
	// headers, CORS, body limit, then optional rate limiting
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Ledger domain (wallets, transactions, adjustments, categories)
	ledgerRoutes := router.NewDomainGroup("ledger", "/ledger")
	ledgerRoutes.POST("/wallets", walletHandler.Create)
	ledgerRoutes.GET("/wallets", walletHandler.List)
	ledgerRoutes.GET("/wallets/:id", walletHandler.GetByID)
	ledgerRoutes.GET("/wallets/code/:code", walletHandler.GetByCode)
	ledgerRoutes.PUT("/wallets/:id", walletHandler.Update)
	ledgerRoutes.DELETE("/wallets/:id", cleanupHandler.SoftDelete(cleanup.EntityWallet))
	ledgerRoutes.POST("/wallets/:id/restore", cleanupHandler.Restore(cleanup.EntityWallet))
	ledgerRoutes.GET("/wallets/:id/balance", balanceHandler.GetBalance)
	ledgerRoutes.GET("/wallets/:id/reconciliation", balanceHandler.Reconcile)

	ledgerRoutes.POST("/transactions", transactionHandler.Create)
	ledgerRoutes.GET("/transactions", transactionHandler.List)
	ledgerRoutes.GET("/transactions/:id", transactionHandler.GetByID)
	ledgerRoutes.PUT("/transactions/:id", transactionHandler.Update)
	ledgerRoutes.DELETE("/transactions/:id", cleanupHandler.SoftDelete(cleanup.EntityTransaction))
	ledgerRoutes.POST("/transactions/:id/restore", cleanupHandler.Restore(cleanup.EntityTransaction))

	ledgerRoutes.POST("/adjustments", adjustmentHandler.Create)
	ledgerRoutes.GET("/adjustments", adjustmentHandler.List)
	ledgerRoutes.GET("/adjustments/:id", adjustmentHandler.GetByID)
	ledgerRoutes.DELETE("/adjustments/:id", cleanupHandler.SoftDelete(cleanup.EntityAdjustment))
	ledgerRoutes.POST("/adjustments/:id/restore", cleanupHandler.Restore(cleanup.EntityAdjustment))

	ledgerRoutes.POST("/categories/income", categoryHandler.CreateIncome)
	ledgerRoutes.GET("/categories/income", categoryHandler.ListIncome)
	ledgerRoutes.DELETE("/categories/income/:id", categoryHandler.DeleteIncome)
	ledgerRoutes.POST("/categories/expense", categoryHandler.CreateExpense)
	ledgerRoutes.GET("/categories/expense", categoryHandler.ListExpense)
	ledgerRoutes.DELETE("/categories/expense/:id", categoryHandler.DeleteExpense)

	// Partner domain (customers, suppliers, workshops)
	partnerRoutes := router.NewDomainGroup("partner", "/partner")
	partnerRoutes.POST("/customers", customerHandler.Create)
	partnerRoutes.GET("/customers", customerHandler.List)
	partnerRoutes.GET("/customers/:id", customerHandler.GetByID)
	partnerRoutes.PUT("/customers/:id", customerHandler.Update)
	partnerRoutes.DELETE("/customers/:id", cleanupHandler.SoftDelete(cleanup.EntityCustomer))
	partnerRoutes.POST("/customers/:id/restore", cleanupHandler.Restore(cleanup.EntityCustomer))
	partnerRoutes.POST("/customers/:id/follow-ups", customerHandler.AddFollowUp)
	partnerRoutes.GET("/customers/:id/follow-ups", customerHandler.ListFollowUps)
	partnerRoutes.DELETE("/follow-ups/:id", cleanupHandler.SoftDelete(cleanup.EntityCustomerFollowUp))

	partnerRoutes.POST("/suppliers", supplierHandler.CreateSupplier)
	partnerRoutes.GET("/suppliers", supplierHandler.ListSuppliers)
	partnerRoutes.GET("/suppliers/:id", supplierHandler.GetSupplier)
	partnerRoutes.DELETE("/suppliers/:id", cleanupHandler.SoftDelete(cleanup.EntitySupplier))
	partnerRoutes.POST("/suppliers/:id/restore", cleanupHandler.Restore(cleanup.EntitySupplier))

	partnerRoutes.POST("/workshops", supplierHandler.CreateWorkshop)
	partnerRoutes.GET("/workshops", supplierHandler.ListWorkshops)
	partnerRoutes.GET("/workshops/:id", supplierHandler.GetWorkshop)
	partnerRoutes.DELETE("/workshops/:id", cleanupHandler.SoftDelete(cleanup.EntityWorkshop))
	partnerRoutes.POST("/workshops/:id/restore", cleanupHandler.Restore(cleanup.EntityWorkshop))

	// Project domain (projects, order items, workshop jobs)
	projectRoutes := router.NewDomainGroup("project", "/project")
	projectRoutes.POST("/projects", projectHandler.Create)
	projectRoutes.GET("/projects", projectHandler.List)
	projectRoutes.GET("/projects/:id", projectHandler.GetByID)
	projectRoutes.PUT("/projects/:id", projectHandler.Update)
	projectRoutes.DELETE("/projects/:id", cleanupHandler.SoftDelete(cleanup.EntityProject))
	projectRoutes.POST("/projects/:id/restore", cleanupHandler.Restore(cleanup.EntityProject))
	projectRoutes.POST("/projects/:id/order-items", projectHandler.AddOrderItem)
	projectRoutes.GET("/projects/:id/order-items", projectHandler.ListOrderItems)
	projectRoutes.POST("/projects/:id/workshop-jobs", projectHandler.AddWorkshopJob)
	projectRoutes.GET("/projects/:id/workshop-jobs", projectHandler.ListWorkshopJobs)
	projectRoutes.POST("/workshop-jobs/:id/items", projectHandler.AddJobItem)
	projectRoutes.GET("/workshop-jobs/:id/items", projectHandler.ListJobItems)
	projectRoutes.DELETE("/workshop-jobs/:id", cleanupHandler.SoftDelete(cleanup.EntityWorkshopJob))
	projectRoutes.POST("/workshop-jobs/:id/restore", cleanupHandler.Restore(cleanup.EntityWorkshopJob))
	projectRoutes.DELETE("/order-items/:id", cleanupHandler.SoftDelete(cleanup.EntityOrderItem))
	projectRoutes.DELETE("/job-items/:id", cleanupHandler.SoftDelete(cleanup.EntityWorkshopJobItem))

	// Admin routes (purging)
	adminRoutes := router.NewDomainGroup("admin", "/admin")
	adminRoutes.DELETE("/records/:entity/:id", cleanupHandler.Purge)
	adminRoutes.POST("/sample-data/purge", cleanupHandler.PurgeSampleData)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(ledgerRoutes).
		Register(partnerRoutes).
		Register(projectRoutes).
		Register(adminRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
