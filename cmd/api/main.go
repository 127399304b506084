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

	"github.com/avillareal/farmastock-api/internal/application/inventorycheck"
	infrapdf "github.com/avillareal/farmastock-api/internal/infrastructure/pdf"
	"github.com/avillareal/farmastock-api/internal/infrastructure/postgres"
	httpRouter "github.com/avillareal/farmastock-api/internal/interfaces/http"
	"github.com/avillareal/farmastock-api/pkg/config"
	"github.com/avillareal/farmastock-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	orderRepo := postgres.NewOrderRepository(pool)
	inspectionRepo := postgres.NewInspectionRepository(pool)
	packageRepo := postgres.NewPackageRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	logRepo := postgres.NewLocationLogRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sheetGen := infrapdf.NewMarotoCountSheetGenerator()

	checkOrderUC := inventorycheck.NewCheckOrderUseCase(txRunner, orderRepo, inspectionRepo)
	inspectionUC := inventorycheck.NewInspectionUseCase(inspectionRepo, packageRepo, locationRepo, batchRepo, sheetGen)
	auditUC := inventorycheck.NewAuditUseCase(locationRepo, logRepo)

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
		Title:    "FarmaStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CheckOrderUC: checkOrderUC,
		InspectionUC: inspectionUC,
		AuditUC:      auditUC,
		JWTSecret:    cfg.JWT.Secret,
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
