package handler

import (
	"github.com/gofiber/fiber/v2"

	"pdflight/internal/config"
	"pdflight/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic; the pipeline lives in
// the service layer.
func RegisterRoutes(app *fiber.App, cfg config.PipelineConfig, svc service.LightenService) {
	// Upload form
	app.Get("/", Index(cfg))

	// Health endpoint: checks that the external tool binaries resolve
	app.Get("/health", HealthCheck(cfg.GSBin, cfg.QPDFBin, cfg.OCRmyPDFBin))

	// Simple liveness probe
	app.Get("/healthz", LivenessProbe())

	// Core operation: compress (+ optional OCR or structural optimize)
	app.Post("/api/lighten", LightenPDF(svc))
}
