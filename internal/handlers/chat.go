package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"healthbot/internal/engine"
	"healthbot/internal/metrics"
	"healthbot/internal/models"
	"healthbot/internal/validation"
)

// ChatHandler answers chat messages using the matching engine.
type ChatHandler struct {
	engine *engine.Engine
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(e *engine.Engine) *ChatHandler {
	return &ChatHandler{engine: e}
}

// Chat handles POST /api/chat. Accepts {"message": "..."} and returns
// the matched response with its confidence.
func (h *ChatHandler) Chat(c fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.Bind().Body(&req); err != nil {
		metrics.RecordChat(models.OutcomeInvalid)
		return jsonError(c, fiber.StatusBadRequest,
			"No message provided",
			`Please send a message in the format: {"message": "your question"}`)
	}

	if valid, reason := validation.ValidateMessage(req.Message); !valid {
		metrics.RecordChat(models.OutcomeInvalid)
		return jsonError(c, fiber.StatusBadRequest, reason, "Please type a valid question.")
	}

	result := h.engine.GetResponse(req.Message)

	outcome := models.OutcomeDefault
	if result.Matched() {
		outcome = models.OutcomeMatched
	}
	metrics.RecordChat(outcome)

	slog.Info("chat message answered",
		"request_id", requestid.FromContext(c),
		"outcome", outcome,
		"confidence", result.Confidence,
	)

	return c.JSON(models.ChatResponse{
		Response:   result.Response,
		Confidence: result.Confidence,
		Status:     "success",
	})
}
