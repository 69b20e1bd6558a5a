package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reportes-api/internal/application/auth"
	"github.com/jhoicas/reportes-api/internal/application/report"
	"github.com/jhoicas/reportes-api/internal/infrastructure/export"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	Composer  *report.Composer
	Exporters map[string]export.ReportExporter
	JWTSecret string
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

	// Reportes (protegido)
	reportes := protected.Group("/reportes")
	reportHandler := NewReportHandler(deps.Composer)
	exportHandler := NewExportHandler(deps.Composer, deps.Exporters)
	reportes.Get("/", reportHandler.GetReport)
	reportes.Get("/export", exportHandler.Export)
}
