package handlers

import (
	"github.com/gofiber/fiber/v3"

	"healthbot/internal/engine"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	engine *engine.Engine
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(e *engine.Engine) *ProbeHandler {
	return &ProbeHandler{engine: e}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the engine is constructed; an empty knowledge base
// still counts as ready because the engine serves default responses.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.engine == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "engine not initialized",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
