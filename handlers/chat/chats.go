package chat

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/uniscope/uniscope-api/model"
	"github.com/uniscope/uniscope-api/services"
	"github.com/uniscope/uniscope-api/utils/response"
	"github.com/uniscope/uniscope-api/utils/validation"
)

// ChatHandler handles AI advisor chat requests
type ChatHandler struct {
	advisor   *services.AdvisorService
	validator *validation.Validator
}

// NewChatHandler creates a new chat handler
func NewChatHandler(advisor *services.AdvisorService) *ChatHandler {
	return &ChatHandler{
		advisor:   advisor,
		validator: validation.NewValidator(),
	}
}

// ChatRequest represents the request body for a chat turn. History is
// the full prior conversation, replayed by the client on every turn.
type ChatRequest struct {
	Message string              `json:"message" validate:"required"`
	History []model.ChatMessage `json:"history" validate:"omitempty,dive"`
}

// ChatResponse represents the assistant reply
type ChatResponse struct {
	Message string `json:"message"`
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Message is required")
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.BadRequest(c, "Message is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		return response.BadRequest(c, "Message is required")
	}

	history := make([]model.ChatMessage, 0, len(req.History))
	for _, msg := range req.History {
		if msg.IsValidRole() {
			history = append(history, msg)
		}
	}

	reply, err := h.advisor.GenerateResponse(c.UserContext(), req.Message, history)
	if err != nil {
		var advErr *services.AdvisorError
		if errors.As(err, &advErr) {
			return response.InternalServerErrorWithCode(c, advErr.Message, errorCode(advErr.Kind))
		}
		return response.InternalServerError(c, "Failed to generate response")
	}

	return response.JSON(c, ChatResponse{Message: reply})
}

func errorCode(kind services.ErrorKind) string {
	switch kind {
	case services.ErrNotConfigured:
		return response.CodeNotConfigured
	case services.ErrTimeout:
		return response.CodeTimeout
	case services.ErrUpstream:
		return response.CodeUpstream
	default:
		return response.CodeInternal
	}
}
