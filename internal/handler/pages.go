package handler

import (
	"bytes"
	"net/http"

	"github.com/restaurante-digital/agente-ia/backend/internal/domain"
)

type scheduleDayView struct {
	Key   string
	Label string
	Day   domain.DaySchedule
}

type toneOption struct {
	Value    string
	Label    string
	Selected bool
}

type configPageData struct {
	Config *domain.AgentConfig
	Days   []scheduleDayView
	Tones  []toneOption
}

var tones = []toneOption{
	{Value: "amigavel", Label: "Amigável"},
	{Value: "profissional", Label: "Profissional"},
	{Value: "casual", Label: "Casual"},
	{Value: "energetico", Label: "Energético"},
}

// renderPage renderiza num buffer para que um erro no template vire 500 em vez de HTML pela metade.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, name, data); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logInternalServerError(r, err)
	}
}

func (h *Handler) IndexPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "index.html", nil)
}

func (h *Handler) ConfigPage(w http.ResponseWriter, r *http.Request) {
	cfg := r.Context().Value(AgentConfigCtx).(*domain.AgentConfig)

	data := configPageData{
		Config: cfg,
		Days:   make([]scheduleDayView, 0, len(domain.Weekdays)),
		Tones:  make([]toneOption, 0, len(tones)),
	}

	for _, weekday := range domain.Weekdays {
		view := scheduleDayView{
			Key:   domain.WeekdayKey(weekday),
			Label: domain.WeekdayLabel(weekday),
		}
		if day := cfg.Schedule.Day(weekday); day != nil {
			view.Day = *day
		}
		data.Days = append(data.Days, view)
	}

	for _, tone := range tones {
		tone.Selected = tone.Value == cfg.Personality.Tone
		data.Tones = append(data.Tones, tone)
	}

	h.renderPage(w, r, "config.html", data)
}

func (h *Handler) TestPage(w http.ResponseWriter, r *http.Request) {
	cfg := r.Context().Value(AgentConfigCtx).(*domain.AgentConfig)

	h.renderPage(w, r, "teste.html", cfg)
}
