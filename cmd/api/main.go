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
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/Compras-api/internal/application/auth"
	"github.com/jhoicas/Compras-api/internal/application/lists"
	"github.com/jhoicas/Compras-api/internal/application/reports"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Compras-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Compras-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Compras-api/internal/interfaces/http"
	"github.com/jhoicas/Compras-api/pkg/config"
	"github.com/jhoicas/Compras-api/pkg/logger"
)

// runMigrations aplica las migraciones goose pendientes antes de arrancar.
func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	log.Info().Msg("migraciones aplicadas")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	restaurantRepo := postgres.NewRestaurantRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	listRepo := postgres.NewPurchaseListRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	unitUC := usecase.NewUnitUseCase(unitRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	restaurantUC := usecase.NewRestaurantUseCase(restaurantRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, unitRepo)
	configUC := usecase.NewConfigUseCase(unitUC, categoryUC, restaurantUC, productUC)
	listUC := lists.NewUseCase(txRunner, listRepo, restaurantRepo, unitRepo, productRepo)
	reportUC := reports.NewUseCase(reportRepo)
	pdfGenerator := infrapdf.NewOrderSheetGenerator()

	// El catálogo público sirve el catálogo de la cuenta configurada.
	publicOwnerID := ""
	if cfg.App.PublicOwnerEmail != "" {
		owner, err := userRepo.GetByEmail(ctx, cfg.App.PublicOwnerEmail)
		if err != nil {
			log.Fatal().Err(err).Msg("resolver propietario público")
		}
		if owner == nil {
			log.Warn().Str("email", cfg.App.PublicOwnerEmail).Msg("propietario público no encontrado; /api/public/config responderá 503")
		} else {
			publicOwnerID = owner.ID
		}
	}

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
		Title:    "Compras API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UnitUC:        unitUC,
		CategoryUC:    categoryUC,
		RestaurantUC:  restaurantUC,
		ProductUC:     productUC,
		ConfigUC:      configUC,
		ListUC:        listUC,
		ReportUC:      reportUC,
		PDF:           pdfGenerator,
		PublicOwnerID: publicOwnerID,
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
