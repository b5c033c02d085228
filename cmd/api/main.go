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
	"github.com/tu-usuario/commerce-pro/internal/application/auth"
	"github.com/tu-usuario/commerce-pro/internal/application/catalog"
	"github.com/tu-usuario/commerce-pro/internal/application/inventory"
	"github.com/tu-usuario/commerce-pro/internal/application/logistics"
	"github.com/tu-usuario/commerce-pro/internal/application/sales"
	infrapdf "github.com/tu-usuario/commerce-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/commerce-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/commerce-pro/internal/interfaces/http"
	"github.com/tu-usuario/commerce-pro/pkg/config"
	"github.com/tu-usuario/commerce-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Service: cfg.App.Name,
		Level:   cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	couponRepo := postgres.NewCouponRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)

	inventoryTx := postgres.NewTxRunner(pool)
	salesTx := postgres.NewSalesTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, branchRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	branchUC := inventory.NewBranchUseCase(branchRepo)
	recordMovementUC := inventory.NewRecordMovementUseCase(inventoryTx, branchRepo)
	inventoryQueryUC := inventory.NewQueryUseCase(stockRepo, movementRepo)
	categoryUC := catalog.NewCategoryUseCase(categoryRepo)
	productUC := catalog.NewProductUseCase(productRepo, categoryRepo)
	createOrderUC := sales.NewCreateOrderUseCase(salesTx, orderRepo, branchRepo)
	orderUC := sales.NewOrderUseCase(orderRepo)
	applyCouponUC := sales.NewApplyCouponUseCase(salesTx)
	couponUC := sales.NewCouponUseCase(couponRepo)
	shipmentUC := logistics.NewShipmentUseCase(shipmentRepo, orderRepo, branchRepo)

	// PDF: comprobante de pedido descargable
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := sales.NewReceiptUseCase(orderRepo, branchRepo, productRepo, userRepo, receiptGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Commerce Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		BranchUC:       branchUC,
		RecordMovement: recordMovementUC,
		InventoryQuery: inventoryQueryUC,
		CategoryUC:     categoryUC,
		ProductUC:      productUC,
		CreateOrder:    createOrderUC,
		OrderUC:        orderUC,
		ApplyCoupon:    applyCouponUC,
		ReceiptUC:      receiptUC,
		CouponUC:       couponUC,
		ShipmentUC:     shipmentUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	httpLog := log.Component("http")
	go func() {
		httpLog.Info().Str("addr", cfg.HTTP.Addr()).Msg("escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			httpLog.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
