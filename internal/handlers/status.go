package handlers

import (
	"github.com/gofiber/fiber/v3"

	"healthbot/internal/engine"
	"healthbot/internal/models"
)

// Version is the API version reported by the status endpoint.
const Version = "1.0"

// StatusHandler serves the API index and health endpoints.
type StatusHandler struct {
	engine *engine.Engine
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(e *engine.Engine) *StatusHandler {
	return &StatusHandler{engine: e}
}

// Home handles GET / with an API status summary.
func (h *StatusHandler) Home(c fiber.Ctx) error {
	return c.JSON(models.StatusResponse{
		Status:  "online",
		Message: "HealthBot API is running",
		Version: Version,
		Endpoints: map[string]string{
			"/":           "API status",
			"/api/chat":   "Chat endpoint (POST)",
			"/api/health": "Health check",
		},
	})
}

// Health handles GET /api/health, reporting engine state and topic count.
func (h *StatusHandler) Health(c fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:        "healthy",
		ChatbotLoaded: h.engine != nil,
		TotalTopics:   h.topicCount(),
	})
}

func (h *StatusHandler) topicCount() int {
	if h.engine == nil {
		return 0
	}
	return h.engine.TopicCount()
}
