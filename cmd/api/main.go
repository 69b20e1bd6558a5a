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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-api/internal/application/auth"
	"github.com/jhoicas/reportes-api/internal/application/report"
	"github.com/jhoicas/reportes-api/internal/infrastructure/export"
	"github.com/jhoicas/reportes-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/reportes-api/internal/interfaces/http"
	"github.com/jhoicas/reportes-api/pkg/config"
	"github.com/jhoicas/reportes-api/pkg/logger"

	_ "github.com/jhoicas/reportes-api/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	// Los montos del reporte se serializan como números JSON planos; el
	// formato de moneda es responsabilidad de la vista y los exportadores.
	decimal.MarshalJSONWithoutQuotes = true

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

	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	heuristics := report.Heuristics{
		CostRatio:       decimal.NewFromFloat(cfg.Report.CostRatio),
		ProfitMarginPct: decimal.NewFromFloat(cfg.Report.ProfitMarginPct),
		ConversionPct:   decimal.NewFromFloat(cfg.Report.ConversionPct),
		NewCustomerPct:  decimal.NewFromFloat(cfg.Report.NewCustomerPct),
	}
	composer := report.NewComposer(reportRepo, heuristics, log)

	exporters := map[string]export.ReportExporter{
		"excel": export.NewExcelExporter(),
		"pdf":   export.NewPDFExporter(),
		"html":  export.NewHTMLExporter(),
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los exports pueden tardar más que un JSON
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Reportes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		Composer:  composer,
		Exporters: exporters,
		JWTSecret: cfg.JWT.Secret,
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
