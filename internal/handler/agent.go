package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/restaurante-digital/agente-ia/backend/internal/domain"
	"github.com/restaurante-digital/agente-ia/backend/internal/hours"
	"github.com/restaurante-digital/agente-ia/backend/internal/repository"
	"github.com/restaurante-digital/agente-ia/backend/internal/responder"
	"github.com/restaurante-digital/agente-ia/backend/internal/utils"
)

type testAgentRequest struct {
	Message   string `json:"message" validate:"max=1000" label:"Mensagem"`
	SessionID string `json:"session_id" validate:"omitempty,uuid" label:"Sessão"`
}

type testAgentResponse struct {
	Success   bool   `json:"success"`
	Response  string `json:"response"`
	SessionID string `json:"session_id,omitempty"`
}

func (h *Handler) TestAgent(w http.ResponseWriter, r *http.Request) {
	cfg := r.Context().Value(AgentConfigCtx).(*domain.AgentConfig)

	var body json.RawMessage
	if err := h.readJSON(w, r, &body); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "Dados não recebidos")
		return
	}

	// null e {} contam como corpo ausente
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		h.errorResponse(w, r, http.StatusBadRequest, "Dados não recebidos")
		return
	}

	var req testAgentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "Dados não recebidos")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	now := h.now()
	reply := responder.Respond(req.Message, cfg, now)

	sessionID := ""
	if h.repository.TranscriptsEnabled() {
		sessionID = req.SessionID
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		h.recordExchange(sessionID, &domain.PreviewExchange{
			Message:   req.Message,
			Response:  reply,
			CreatedAt: now,
		})
	}

	h.writeJSON(w, r, http.StatusOK, testAgentResponse{
		Success:   true,
		Response:  reply,
		SessionID: sessionID,
	})
}

// recordExchange não interrompe a conversa se o redis falhar.
func (h *Handler) recordExchange(sessionID string, exchange *domain.PreviewExchange) {
	if err := h.repository.AppendTranscript(sessionID, exchange); err != nil {
		slog.Warn("não foi possível salvar o histórico da pré-visualização", "session", sessionID, "error", err)
	}
}

func (h *Handler) GetPreviewHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if _, err := uuid.Parse(sessionID); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "Sessão inválida")
		return
	}

	exchanges, err := h.repository.GetTranscript(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTranscriptsDisabled):
			h.errorResponse(w, r, http.StatusNotFound, "Histórico desativado")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Histórico carregado", exchanges)
}

type statusResponse struct {
	CurrentTime    string              `json:"current_time"`
	CurrentDay     string              `json:"current_day"`
	Status         domain.StatusResult `json:"status"`
	RestaurantInfo domain.Restaurant   `json:"restaurant_info"`
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	cfg := r.Context().Value(AgentConfigCtx).(*domain.AgentConfig)

	now := h.now()
	h.writeJSON(w, r, http.StatusOK, statusResponse{
		CurrentTime:    now.Format(utils.ClockLayout),
		CurrentDay:     domain.WeekdayKey(now.Weekday()),
		Status:         hours.Evaluate(&cfg.Schedule, now),
		RestaurantInfo: cfg.Restaurant,
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
