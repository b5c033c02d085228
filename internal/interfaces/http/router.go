package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/commerce-pro/internal/application/auth"
	"github.com/tu-usuario/commerce-pro/internal/application/catalog"
	"github.com/tu-usuario/commerce-pro/internal/application/inventory"
	"github.com/tu-usuario/commerce-pro/internal/application/logistics"
	"github.com/tu-usuario/commerce-pro/internal/application/sales"
	"github.com/tu-usuario/commerce-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	BranchUC       *inventory.BranchUseCase
	RecordMovement *inventory.RecordMovementUseCase
	InventoryQuery *inventory.QueryUseCase
	CategoryUC     *catalog.CategoryUseCase
	ProductUC      *catalog.ProductUseCase
	CreateOrder    *sales.CreateOrderUseCase
	OrderUC        *sales.OrderUseCase
	ApplyCoupon    *sales.ApplyCouponUseCase
	ReceiptUC      *sales.ReceiptUseCase
	CouponUC       *sales.CouponUseCase
	ShipmentUC     *logistics.ShipmentUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleSuperAdmin, entity.RoleBranchManager)

	// Branches (protegido; escritura solo administración)
	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Post("/", adminOnly, branchHandler.Create)
	branches.Put("/:id", adminOnly, branchHandler.Update)
	branches.Delete("/:id", adminOnly, branchHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Put("/:id", adminOnly, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Post("/:id/images", adminOnly, productHandler.AddImage)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Inventory: libro de movimientos + saldos (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RecordMovement, deps.InventoryQuery)
	invGroup.Post("/movements", inventoryHandler.RecordMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/movements/:id", inventoryHandler.GetMovement)
	invGroup.Delete("/movements/:id", adminOnly, inventoryHandler.DeleteMovement)
	invGroup.Get("/stock", inventoryHandler.ListBalances)
	invGroup.Get("/stock/:branch_id/:product_id", inventoryHandler.GetBalance)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.CreateOrder, deps.OrderUC, deps.ApplyCoupon, deps.ReceiptUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/tracking/:tracking", orderHandler.GetByTracking)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", adminOnly, orderHandler.Delete)
	orders.Post("/:id/apply-coupon", orderHandler.ApplyCoupon)
	orders.Get("/:id/receipt", orderHandler.DownloadReceipt)

	// Coupons (protegido; escritura solo administración)
	coupons := protected.Group("/coupons")
	couponHandler := NewCouponHandler(deps.CouponUC)
	coupons.Get("/", couponHandler.List)
	coupons.Get("/:id", couponHandler.GetByID)
	coupons.Post("/", adminOnly, couponHandler.Create)
	coupons.Put("/:id", adminOnly, couponHandler.Update)
	coupons.Delete("/:id", adminOnly, couponHandler.Delete)

	// Shipments (protegido)
	shipments := protected.Group("/shipments")
	shipmentHandler := NewShipmentHandler(deps.ShipmentUC)
	shipments.Post("/", shipmentHandler.Create)
	shipments.Get("/", shipmentHandler.List)
	shipments.Get("/order/:order_id", shipmentHandler.GetByOrderID)
	shipments.Get("/:id", shipmentHandler.GetByID)
	shipments.Put("/:id", shipmentHandler.Update)
	shipments.Delete("/:id", adminOnly, shipmentHandler.Delete)
}
