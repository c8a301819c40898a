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
	"github.com/jhoicas/canastillas-api/internal/application/analytics"
	"github.com/jhoicas/canastillas-api/internal/application/tracking"
	"github.com/jhoicas/canastillas-api/internal/application/usecase"
	"github.com/jhoicas/canastillas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/canastillas-api/internal/interfaces/http"
	"github.com/jhoicas/canastillas-api/pkg/config"
	"github.com/jhoicas/canastillas-api/pkg/digest"
	"github.com/jhoicas/canastillas-api/pkg/logger"
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

	canastillaRepo := postgres.NewCanastillaRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	metricsRepo := postgres.NewMetricsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	digester, err := digest.New(cfg.Auth.HashAlgo)
	if err != nil {
		log.Fatal().Err(err).Str("hash_algo", cfg.Auth.HashAlgo).Msg("algoritmo de hash no soportado")
	}

	canastillaUC := usecase.NewCanastillaUseCase(txRunner, canastillaRepo)
	usuarioUC := usecase.NewUsuarioUseCase(txRunner, usuarioRepo, digester)
	movimientoUC := tracking.NewMovimientoUseCase(txRunner, movimientoRepo)
	dashboardUC := analytics.NewDashboardUseCase(metricsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.CORS())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Canastillas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Frontend estático del dashboard (mismas rutas que servía el sistema anterior)
	app.Static("/html", "./web/html")
	app.Static("/css", "./web/css")
	app.Static("/js", "./web/js")

	httpRouter.Router(app, httpRouter.RouterDeps{
		CanastillaUC: canastillaUC,
		UsuarioUC:    usuarioUC,
		MovimientoUC: movimientoUC,
		DashboardUC:  dashboardUC,
		Log:          log,
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
