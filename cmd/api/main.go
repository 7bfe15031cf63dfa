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
	"golang.org/x/crypto/bcrypt"

	"github.com/dakny/ventafacil-api/internal/application/analytics"
	"github.com/dakny/ventafacil-api/internal/application/auth"
	"github.com/dakny/ventafacil-api/internal/application/cart"
	"github.com/dakny/ventafacil-api/internal/application/inventory"
	"github.com/dakny/ventafacil-api/internal/application/settlement"
	"github.com/dakny/ventafacil-api/internal/application/usecase"
	"github.com/dakny/ventafacil-api/internal/infrastructure/localstore"
	infrapdf "github.com/dakny/ventafacil-api/internal/infrastructure/pdf"
	httpRouter "github.com/dakny/ventafacil-api/internal/interfaces/http"
	"github.com/dakny/ventafacil-api/pkg/config"
	"github.com/dakny/ventafacil-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_dir", cfg.Store.DataDir).
		Msg("iniciando aplicación")

	store, err := localstore.Open(cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}

	productRepo, err := localstore.NewProductRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo")
	}
	orderRepo, err := localstore.NewOrderRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar libro de pedidos")
	}
	movementRepo, err := localstore.NewMovementRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar log de movimientos")
	}
	txRunner := localstore.NewTxRunner(productRepo, orderRepo, movementRepo)

	productUC := usecase.NewProductUseCase(productRepo)
	registerEntryUC := inventory.NewRegisterEntryUseCase(productRepo, movementRepo)
	cartUC := cart.NewCartUseCase(productRepo, orderRepo)
	settlementUC := settlement.NewSettlementUseCase(txRunner, orderRepo)
	dashboardUC := analytics.NewDashboardUseCase(productRepo, orderRepo)
	pdfGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)

	// La contraseña del administrador puede venir ya hasheada
	// (ADMIN_PASSWORD_HASH) o en claro (ADMIN_PASSWORD); en el segundo caso
	// se hashea al arrancar y nunca se guarda en claro.
	adminHash := cfg.Auth.AdminPasswordHash
	if adminHash == "" && cfg.Auth.AdminPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear contraseña de administrador")
		}
		adminHash = string(hashed)
	}
	if adminHash == "" {
		log.Warn().Msg("sin contraseña de administrador: el login de admin quedará deshabilitado")
	}

	authUC := auth.NewAuthUseCase(
		auth.Config{
			AdminUser:         cfg.Auth.AdminUser,
			AdminPasswordHash: adminHash,
			MinPhoneLength:    cfg.Auth.MinPhoneLength,
		},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)

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
		Title:    "VentaFacil API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		RegisterEntry: registerEntryUC,
		CartUC:        cartUC,
		SettlementUC:  settlementUC,
		DashboardUC:   dashboardUC,
		Orders:        orderRepo,
		Movements:     movementRepo,
		ReceiptPDF:    pdfGenerator,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
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
