package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/manikandans/billbook-api/internal/application/service"
	"github.com/manikandans/billbook-api/internal/config"
	"github.com/manikandans/billbook-api/internal/infrastructure/database"
	"github.com/manikandans/billbook-api/internal/infrastructure/repository"
	"github.com/manikandans/billbook-api/internal/presentation/http/handler"
	"github.com/manikandans/billbook-api/internal/presentation/http/routes"
	"github.com/manikandans/billbook-api/pkg/printer"
	"github.com/manikandans/billbook-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the admin account and company profile
	if err := database.SeedDefaultData(db, &cfg.Company); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	transactor := repository.NewTransactor(db)
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	productRepo := repository.NewProductRepository(db)
	stockRepo := repository.NewStockRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	billRepo := repository.NewBillRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	companyService := service.NewCompanyService(companyRepo)
	productService := service.NewProductService(productRepo)
	inventoryService := service.NewInventoryService(productRepo, stockRepo, vendorRepo, paymentRepo, transactor)
	customerService := service.NewCustomerService(customerRepo)
	vendorService := service.NewVendorService(vendorRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, customerRepo)
	billingService := service.NewBillingService(billRepo, productRepo, customerRepo, orderRepo, paymentRepo, transactor)
	paymentService := service.NewPaymentService(paymentRepo, billRepo, customerRepo, vendorRepo, transactor)
	documentService := service.NewDocumentService(billRepo, companyRepo, thermalPrinter, cfg.Printer.CharWidth)
	dashboardService := service.NewDashboardService(billRepo, productRepo, customerRepo, paymentRepo, stockRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Product:   handler.NewProductHandler(productService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Customer:  handler.NewCustomerHandler(customerService),
		Vendor:    handler.NewVendorHandler(vendorService),
		Order:     handler.NewOrderHandler(orderService),
		Bill:      handler.NewBillHandler(billingService, documentService),
		Payment:   handler.NewPaymentHandler(paymentService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Company:   handler.NewCompanyHandler(companyService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
