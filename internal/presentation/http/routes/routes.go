package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/manikandans/billbook-api/internal/config"
	"github.com/manikandans/billbook-api/internal/domain/enum"
	"github.com/manikandans/billbook-api/internal/presentation/http/handler"
	"github.com/manikandans/billbook-api/internal/presentation/http/middleware"
	"github.com/manikandans/billbook-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Inventory *handler.InventoryHandler
	Customer  *handler.CustomerHandler
	Vendor    *handler.VendorHandler
	Order     *handler.OrderHandler
	Bill      *handler.BillHandler
	Payment   *handler.PaymentHandler
	Dashboard *handler.DashboardHandler
	Company   *handler.CompanyHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile
	protected.GET("/profile", h.Auth.Me)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Staff accounts, admin only
	users := protected.Group("/users", middleware.RequireRole(enum.RoleAdmin))
	{
		users.GET("", h.Auth.ListUsers)
		users.POST("", h.Auth.CreateUser)
		users.PUT("/:id", h.Auth.UpdateUser)
	}

	// Company profile
	protected.GET("/company", h.Company.Get)
	protected.PUT("/company", middleware.RequireRole(enum.RoleAdmin), h.Company.Update)

	// Catalog. Every role can read; writes are for inventory staff and
	// managers.
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/catalog", h.Product.Catalog)
		products.GET("/:id", h.Product.Get)

		writes := products.Group("", middleware.RequireRole(enum.RoleInventory, enum.RoleManager))
		{
			writes.POST("", h.Product.Create)
			writes.PUT("/:id", h.Product.Update)
			writes.DELETE("/:id", h.Product.Delete)
		}
	}

	// Inventory
	inventory := protected.Group("/inventory", middleware.RequireRole(enum.RoleInventory, enum.RoleManager))
	{
		inventory.POST("/stock-in", h.Inventory.StockIn)
		inventory.GET("/stock-entries", h.Inventory.ListStockEntries)
		inventory.POST("/damage", h.Inventory.RecordDamage)
		inventory.GET("/damage", h.Inventory.ListDamage)
		inventory.GET("/low-stock", h.Inventory.LowStock)
	}

	// Customers
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.POST("", h.Customer.Create)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", middleware.RequireRole(enum.RoleManager), h.Customer.Delete)
	}

	// Vendors
	vendors := protected.Group("/vendors", middleware.RequireRole(enum.RoleInventory, enum.RoleManager))
	{
		vendors.GET("", h.Vendor.List)
		vendors.GET("/:id", h.Vendor.Get)
		vendors.POST("", h.Vendor.Create)
		vendors.PUT("/:id", h.Vendor.Update)
		vendors.DELETE("/:id", middleware.RequireRole(enum.RoleManager), h.Vendor.Delete)
	}

	// Orders
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.POST("", h.Order.Create)
		orders.POST("/:id/cancel", h.Order.Cancel)
	}

	// Bills: draft editing, submission and printable outputs
	bills := protected.Group("/bills", middleware.RequireRole(enum.RoleBiller, enum.RoleManager))
	{
		bills.POST("/draft/add-item", h.Bill.AddDraftItem)
		bills.POST("/draft/update-item", h.Bill.UpdateDraftItem)
		bills.POST("/draft/remove-item", h.Bill.RemoveDraftItem)
		bills.POST("/draft/preview", h.Bill.PreviewDraft)

		bills.GET("", h.Bill.List)
		bills.GET("/:id", h.Bill.Get)
		bills.POST("", h.Bill.Create)
		bills.DELETE("/:id", middleware.RequireRole(enum.RoleManager), h.Bill.Delete)

		bills.GET("/:id/render", h.Bill.Render)
		bills.POST("/:id/print", h.Bill.Print)
		bills.GET("/printer/status", h.Bill.PrinterStatus)
	}

	// Payments and expenses
	payments := protected.Group("/payments", middleware.RequireRole(enum.RoleBiller, enum.RoleManager))
	{
		payments.GET("", h.Payment.ListPayments)
		payments.POST("", h.Payment.RecordPayment)
	}
	expenses := protected.Group("/expenses", middleware.RequireRole(enum.RoleManager))
	{
		expenses.GET("", h.Payment.ListExpenses)
		expenses.POST("", h.Payment.RecordExpense)
	}

	// Dashboards, one per role
	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/biller", middleware.RequireRole(enum.RoleBiller, enum.RoleManager), h.Dashboard.Biller)
		dashboard.GET("/inventory", middleware.RequireRole(enum.RoleInventory, enum.RoleManager), h.Dashboard.Inventory)
		dashboard.GET("/admin", middleware.RequireRole(enum.RoleManager), h.Dashboard.Admin)
	}
}
