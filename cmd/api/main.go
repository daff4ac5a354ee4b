// @title        Stockmanager API
// @version      1.0
// @description  API de inventario de ingredientes con alertas de stock y vencimiento.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/stockmanager/docs"
	"github.com/jhoicas/stockmanager/internal/application/panel"
	"github.com/jhoicas/stockmanager/internal/application/usecase"
	"github.com/jhoicas/stockmanager/internal/domain/repository"
	"github.com/jhoicas/stockmanager/internal/domain/stock"
	"github.com/jhoicas/stockmanager/internal/infrastructure/cache"
	"github.com/jhoicas/stockmanager/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/stockmanager/internal/infrastructure/pdf"
	"github.com/jhoicas/stockmanager/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stockmanager/internal/interfaces/http"
	"github.com/jhoicas/stockmanager/internal/interfaces/web"
	"github.com/jhoicas/stockmanager/pkg/config"
	"github.com/jhoicas/stockmanager/pkg/logger"
)

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

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		migrator, err := postgres.NewMigrator(pool)
		if err != nil {
			log.Fatal().Err(err).Msg("preparar migraciones")
		}
		applied, err := migrator.Up(ctx)
		_ = migrator.Close()
		if err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		log.Info().Int("applied", applied).Msg("migraciones al día")
	}

	var ingredientRepo repository.IngredientRepository = postgres.NewIngredientRepository(pool)

	// Caché opcional: sin REDIS_ADDR, o si Redis no responde, se lee directo de la base.
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, se continúa sin caché")
		} else {
			defer redisClient.Close()
			ingredientRepo = cache.NewIngredientRepository(ingredientRepo, redisClient, cfg.Redis.TTL, log)
			log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.TTL).Msg("caché redis activa")
		}
	}

	appMetrics := metrics.New(cfg.Metrics.Prefix)

	ingredientUC := usecase.NewIngredientUseCase(ingredientRepo)
	panelUC := panel.NewPanelUseCase(
		ingredientRepo,
		stock.Policy{ExpiryWindowDays: cfg.Alerts.ExpiryWindowDays},
		appMetrics,
	)
	reportUC := panel.NewReportUseCase(panelUC, infrapdf.NewMarotoReportGenerator(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(httpRouter.RequestID())
	app.Use(appMetrics.Middleware())
	app.Use(httpRouter.AccessLog(log.Named("http")))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.HTTP.AllowOrigins}))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Docs.FilePath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.FilePath,
			Path:     "docs",
			Title:    "Stockmanager API",
		}))
	} else {
		log.Warn().Str("path", cfg.Docs.FilePath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		IngredientUC: ingredientUC,
		PanelUC:      panelUC,
		ReportUC:     reportUC,
		Health:       httpRouter.NewHealthHandler(cfg.App.Name, pool),
		Metrics:      appMetrics.Handler(),
		Operations:   appMetrics,
		APIPrefix:    cfg.HTTP.APIPrefix,
	})
	if err := web.Register(app, cfg.HTTP.APIPrefix); err != nil {
		log.Fatal().Err(err).Msg("montar página web")
	}

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
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
