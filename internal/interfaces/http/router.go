package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dakny/ventafacil-api/internal/application/analytics"
	"github.com/dakny/ventafacil-api/internal/application/auth"
	"github.com/dakny/ventafacil-api/internal/application/cart"
	"github.com/dakny/ventafacil-api/internal/application/inventory"
	"github.com/dakny/ventafacil-api/internal/application/receipt"
	"github.com/dakny/ventafacil-api/internal/application/settlement"
	"github.com/dakny/ventafacil-api/internal/application/usecase"
	"github.com/dakny/ventafacil-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	RegisterEntry *inventory.RegisterEntryUseCase
	CartUC        *cart.CartUseCase
	SettlementUC  *settlement.SettlementUseCase
	DashboardUC   *analytics.DashboardUseCase
	Orders        repository.OrderRepository
	Movements     repository.MovementRepository
	ReceiptPDF    receipt.PDFGenerator
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido; las escrituras son solo del administrador)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.RegisterEntry)
	products.Get("/", productHandler.List)
	products.Get("/:code", productHandler.GetByCode)
	products.Post("/", RequireRole(auth.RoleAdmin), productHandler.Create)
	products.Put("/:code", RequireRole(auth.RoleAdmin), productHandler.Update)
	products.Delete("/:code", RequireRole(auth.RoleAdmin), productHandler.Delete)
	products.Post("/:code/entries", RequireRole(auth.RoleAdmin), productHandler.RegisterEntry)

	// Cart (protegido; cada sesión tiene su carrito)
	carts := protected.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	carts.Get("/", cartHandler.Get)
	carts.Post("/lines", cartHandler.AddLine)
	carts.Put("/lines/:code", cartHandler.SetLineQuantity)
	carts.Delete("/lines/:code", cartHandler.RemoveLine)
	carts.Post("/submit", cartHandler.Submit)

	// Pedidos (protegido; liquidar y cancelar son del administrador)
	pedidos := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.SettlementUC, deps.Orders, deps.ReceiptPDF)
	pedidos.Get("/", pedidoHandler.List)
	pedidos.Get("/:id", pedidoHandler.GetByID)
	pedidos.Post("/:id/settle", RequireRole(auth.RoleAdmin), pedidoHandler.Settle)
	pedidos.Post("/:id/cancel", RequireRole(auth.RoleAdmin), pedidoHandler.Cancel)

	// Movements (protegido, solo lectura)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.Movements)
	movements.Get("/", movementHandler.List)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
