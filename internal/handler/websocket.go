package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/restaurante-digital/agente-ia/backend/internal/domain"
	"github.com/restaurante-digital/agente-ia/backend/internal/responder"
)

const (
	previewTypeText   = "text"
	previewTypeStatus = "status"
	previewTypeError  = "error"
)

type previewClientMessage struct {
	Message string `json:"message"`
}

type previewServerMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId,omitempty"`
	Payload   string `json:"payload"`
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range h.config.WebSocket.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// PreviewWebSocket é a versão em tempo real do /api/test-agent. Cada mensagem
// recarrega a configuração, como uma requisição HTTP isolada.
func (h *Handler) PreviewWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("falha no upgrade do websocket", "error", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	cfg := h.repository.LoadAgentConfig()

	greeting := fmt.Sprintf("Olá! Bem-vindo ao %s! Sou %s e estou aqui para ajudar. O que vai querer hoje?",
		cfg.Restaurant.Name, cfg.Personality.Name)
	if err := conn.WriteJSON(previewServerMessage{Type: previewTypeStatus, SessionID: sessionID, Payload: greeting}); err != nil {
		return
	}

	for {
		var msg previewClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("conexão de pré-visualização encerrada", "session", sessionID, "error", err)
			}
			return
		}

		if msg.Message == "" {
			if err := conn.WriteJSON(previewServerMessage{Type: previewTypeError, SessionID: sessionID, Payload: "Mensagem vazia"}); err != nil {
				return
			}
			continue
		}

		cfg := h.repository.LoadAgentConfig()
		now := h.now()
		reply := responder.Respond(msg.Message, cfg, now)

		if h.repository.TranscriptsEnabled() {
			h.recordExchange(sessionID, &domain.PreviewExchange{
				Message:   msg.Message,
				Response:  reply,
				CreatedAt: now,
			})
		}

		if err := conn.WriteJSON(previewServerMessage{Type: previewTypeText, SessionID: sessionID, Payload: reply}); err != nil {
			return
		}
	}
}
