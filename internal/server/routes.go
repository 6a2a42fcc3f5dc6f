package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"healthbot/internal/engine"
	"healthbot/internal/handlers"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(e *engine.Engine) {
	// Initialize handlers
	chatHandler := handlers.NewChatHandler(e)
	statusHandler := handlers.NewStatusHandler(e)
	probeHandler := handlers.NewProbeHandler(e)

	// API routes
	s.App.Get("/", statusHandler.Home)
	s.App.Get("/api/health", statusHandler.Health)
	s.App.Post("/api/chat", chatHandler.Chat)

	// Kubernetes probes
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	// Prometheus exposition
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Catch-all 404 - must be last
	s.App.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error",
			"error":  "Endpoint not found",
		})
	})
}
