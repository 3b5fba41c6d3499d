package websocket

import (
	"context"
	"encoding/json"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/saathi-labs/saarthi/internal/domain"
	"github.com/saathi-labs/saarthi/internal/ports"
)

// ChatStreamHandler runs the assistant over a websocket: each text frame is
// one transcript, each reply frame is the turn's response envelope. The
// session is pinned to the connection after the first turn.
type ChatStreamHandler struct {
	dialog ports.DialogService
	log    *zap.Logger
}

func NewChatStreamHandler(dialog ports.DialogService, log *zap.Logger) *ChatStreamHandler {
	return &ChatStreamHandler{
		dialog: dialog,
		log:    log,
	}
}

type chatFrame struct {
	Transcript string `json:"transcript"`
	DriverID   string `json:"driver_id,omitempty"`
}

func (h *ChatStreamHandler) HandleChatStream(c *websocket.Conn) {
	ctx := context.Background()
	sessionID := ""

	for {
		messageType, data, err := c.ReadMessage()
		if err != nil {
			h.log.Debug("Chat stream closed", zap.Error(err))
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var frame chatFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			// Treat a bare text frame as the transcript itself.
			frame = chatFrame{Transcript: string(data)}
		}

		resp, err := h.dialog.ProcessTurn(ctx, domain.TurnRequest{
			Transcript: frame.Transcript,
			SessionID:  sessionID,
			DriverID:   frame.DriverID,
		})
		if err != nil {
			h.log.Error("Failed to process chat turn", zap.Error(err))
			continue
		}
		sessionID = resp.SessionID

		payload, err := json.Marshal(resp)
		if err != nil {
			h.log.Error("Failed to encode chat response", zap.Error(err))
			continue
		}
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.log.Error("Failed to send chat response", zap.Error(err))
			break
		}
	}
}
