package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/saathi-labs/saarthi/internal/domain"
	"github.com/saathi-labs/saarthi/internal/ports"
)

type AssistHandler struct {
	dialog ports.DialogService
	log    *zap.Logger
}

func NewAssistHandler(dialog ports.DialogService, log *zap.Logger) *AssistHandler {
	return &AssistHandler{
		dialog: dialog,
		log:    log,
	}
}

type StartFormRequest struct {
	FormID   string `json:"form_id"`
	DriverID string `json:"driver_id"`
}

// ProcessTurn handles one assistant turn. A missing or unparsable body is
// treated as an empty transcript, which the classifier resolves to
// small_talk; user input is never a 4xx here.
func (h *AssistHandler) ProcessTurn(c *fiber.Ctx) error {
	var req domain.TurnRequest
	if err := c.BodyParser(&req); err != nil {
		h.log.Debug("Unparsable assist body, treating as empty transcript", zap.Error(err))
		req = domain.TurnRequest{}
	}

	resp, err := h.dialog.ProcessTurn(c.Context(), req)
	if err != nil {
		h.log.Error("Failed to process turn", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process turn"})
	}

	return c.JSON(resp)
}

// StartForm creates a fresh session bound to the named form and returns the
// first prompt, mirroring the start_form intent.
func (h *AssistHandler) StartForm(c *fiber.Ctx) error {
	var req StartFormRequest
	if err := c.BodyParser(&req); err != nil {
		req = StartFormRequest{}
	}

	resp, err := h.dialog.StartForm(c.Context(), req.FormID, req.DriverID)
	if err != nil {
		h.log.Error("Failed to start form", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to start form"})
	}

	return c.JSON(resp)
}
