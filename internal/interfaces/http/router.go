package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lojaviva/varejo-api/internal/application/auth"
	"github.com/lojaviva/varejo-api/internal/application/sales"
	"github.com/lojaviva/varejo-api/internal/application/storefront"
	"github.com/lojaviva/varejo-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CustomerUC     *usecase.CustomerUseCase
	SupplierUC     *usecase.SupplierUseCase
	ProductUC      *usecase.ProductUseCase
	CampaignUC     *usecase.CampaignUseCase
	RecordSale     *sales.RecordSaleUseCase
	SalesQuery     *sales.CustomerSalesQuery
	PayInstallment *sales.PayInstallmentUseCase
	StorefrontUC   *storefront.StorefrontUseCase
	JWTSecret      string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	// Vitrine pública (sem autenticação)
	storefrontHandler := NewStorefrontHandler(deps.StorefrontUC)
	store := app.Group("/store")
	store.Get("/:slug", storefrontHandler.GetStore)
	store.Get("/:slug/catalog.pdf", storefrontHandler.CatalogPDF)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	salesHandler := NewSalesHandler(deps.RecordSale, deps.SalesQuery)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Get("/:id/sales", salesHandler.CustomerSales)
	customers.Get("/:id/installments", salesHandler.CustomerInstallments)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Campaigns
	campaigns := protected.Group("/campaigns")
	campaignHandler := NewCampaignHandler(deps.CampaignUC)
	campaigns.Post("/", campaignHandler.Create)
	campaigns.Get("/", campaignHandler.List)

	// Sales (checkout e movimentos)
	protected.Post("/sales", salesHandler.RecordSale)
	movements := protected.Group("/movements")
	movements.Get("/available", salesHandler.AvailableMovements)
	movements.Post("/:id/assign", salesHandler.AssignMovement)

	// Installments
	installments := protected.Group("/installments")
	installmentHandler := NewInstallmentHandler(deps.PayInstallment)
	installments.Post("/pay", installmentHandler.Pay)
	installments.Post("/pay-bulk", installmentHandler.PayBulk)
}
