package handler

import (
	"errors"
	"net/http"

	"github.com/restaurante-digital/agente-ia/backend/internal/domain"
	"github.com/restaurante-digital/agente-ia/backend/internal/repository"
)

func (h *Handler) GetAgentConfig(w http.ResponseWriter, r *http.Request) {
	cfg := r.Context().Value(AgentConfigCtx).(*domain.AgentConfig)

	h.successResponse(w, r, "Configuração carregada", cfg)
}

func (h *Handler) SaveAgentConfig(w http.ResponseWriter, r *http.Request) {
	current := r.Context().Value(AgentConfigCtx).(*domain.AgentConfig)

	// restaurante e personalidade precisam vir no corpo; as demais seções
	// ausentes mantêm o valor atual
	fallback := *current
	fallback.Restaurant = domain.Restaurant{}
	fallback.Personality = domain.Personality{}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	cfg, err := repository.DecodeAgentConfig(r.Body, &fallback)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.errorResponse(w, r, http.StatusRequestEntityTooLarge, "Configuração grande demais")
			return
		}
		h.errorResponse(w, r, http.StatusBadRequest, "Dados não recebidos")
		return
	}
	if err := h.validate.Struct(cfg); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.SaveAgentConfig(cfg); err != nil {
		h.logInternalServerError(r, err)
		h.errorResponse(w, r, http.StatusInternalServerError, "Erro ao salvar")
		return
	}

	h.notifyConfigUpdated(r, cfg)

	h.writeJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: "Configuração salva!",
	})
}
