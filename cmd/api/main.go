package main

import (
	"fmt"
	"net/http"
	"os"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
	"fintrack/internal/storage"
	"fintrack/internal/validator"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Open the database and apply migrations
	dbManager, err := database.NewManager(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize the ledger from persisted snapshots (or seed data on first run)
	slotStore := storage.NewSlotStore(dbManager.DB())
	ledger, err := services.NewLedgerService(slotStore, !cfg.SeedDisabled)
	if err != nil {
		return fmt.Errorf("failed to initialize ledger: %w", err)
	}

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(ledger)
	budgetHandler := handlers.NewBudgetHandler(ledger)
	categoryHandler := handlers.NewCategoryHandler()
	reportHandler := handlers.NewReportHandler(ledger)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Budget routes
	budgets := v1.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Category routes
	v1.GET("/categories", categoryHandler.GetCategories)

	// Report routes
	reportRoutes := v1.Group("/reports")
	reportRoutes.GET("", reportHandler.GetReport)
	reportRoutes.GET("/monthly", reportHandler.GetMonthlySummary)
	reportRoutes.GET("/spending", reportHandler.GetSpendingByCategory)
	reportRoutes.GET("/trend", reportHandler.GetTrendSeries)

	log.Infof("Starting fintrack server on port %s", cfg.Port)
	return router.Run(":" + cfg.Port)
}
