package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	handler "invoicing-backend/internal/handlers"
	"invoicing-backend/internal/repository"
	"invoicing-backend/internal/services/billing"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log *zap.Logger) {
	orgRepo := repository.NewOrganizationRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	billingService := billing.NewService(orgRepo, invoiceRepo, customerRepo, log)

	orgHandler := handler.NewOrganizationHandler(billingService)
	customerHandler := handler.NewCustomerHandler(billingService)
	invoiceHandler := handler.NewInvoiceHandler(billingService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Organization routes
	orgs := api.Group("/organizations")
	orgs.POST("", orgHandler.Create)
	orgs.GET("/:id", orgHandler.Get)
	orgs.PUT("/:id/defaults", orgHandler.UpdateDefaults)
	orgs.POST("/:id/customers", customerHandler.Create)
	orgs.GET("/:id/customers", customerHandler.List)
	orgs.POST("/:id/invoices", invoiceHandler.Create)
	orgs.GET("/:id/invoices", invoiceHandler.List)
	orgs.GET("/:id/dashboard", invoiceHandler.Dashboard)

	// Invoice routes
	invoices := api.Group("/invoices")
	{
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
		invoices.POST("/:id/status", invoiceHandler.SetStatus)
	}

	// Customer routes
	customers := api.Group("/customers")
	{
		customers.GET("/:id", customerHandler.Get)
		customers.PUT("/:id", customerHandler.Update)
	}
}
