package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lojaviva/varejo-api/internal/application/auth"
	"github.com/lojaviva/varejo-api/internal/application/sales"
	"github.com/lojaviva/varejo-api/internal/application/storefront"
	"github.com/lojaviva/varejo-api/internal/application/usecase"
	"github.com/lojaviva/varejo-api/internal/infrastructure/cache"
	infrapdf "github.com/lojaviva/varejo-api/internal/infrastructure/pdf"
	"github.com/lojaviva/varejo-api/internal/infrastructure/postgres"
	httpRouter "github.com/lojaviva/varejo-api/internal/interfaces/http"
	"github.com/lojaviva/varejo-api/pkg/config"
	"github.com/lojaviva/varejo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	installmentRepo := postgres.NewInstallmentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cache da visão de vendas por cliente. Sem Redis a app continua
	// funcionando, só recalcula a cada leitura.
	viewCache, err := cache.NewCustomerViewCache(cfg.Cache)
	if err != nil {
		log.Warn().Err(err).Msg("Redis indisponível, usando cache noop")
		viewCache = cache.NewNoopCustomerViewCache()
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	campaignUC := usecase.NewCampaignUseCase(campaignRepo)

	recordSaleUC := sales.NewRecordSaleUseCase(txRunner, customerRepo, productRepo, viewCache)
	salesQuery := sales.NewCustomerSalesQuery(movementRepo, installmentRepo, customerRepo, viewCache, log)
	payInstallmentUC := sales.NewPayInstallmentUseCase(txRunner, installmentRepo, viewCache)

	pdfGenerator := infrapdf.NewMarotoCatalogGenerator()
	storefrontUC := storefront.NewStorefrontUseCase(userRepo, productRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Varejo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CustomerUC:     customerUC,
		SupplierUC:     supplierUC,
		ProductUC:      productUC,
		CampaignUC:     campaignUC,
		RecordSale:     recordSaleUC,
		SalesQuery:     salesQuery,
		PayInstallment: payInstallmentUC,
		StorefrontUC:   storefrontUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
