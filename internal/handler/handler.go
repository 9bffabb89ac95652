package handler

import (
	"embed"
	"html/template"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pt_BR_translations "github.com/go-playground/validator/v10/translations/pt_BR"
	"github.com/gorilla/websocket"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/restaurante-digital/agente-ia/backend/internal/config"
	"github.com/restaurante-digital/agente-ia/backend/internal/repository"
	"github.com/restaurante-digital/agente-ia/backend/internal/utils"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel mailPublisher
	pages       *template.Template
	upgrader    websocket.Upgrader
	location    *time.Location

	// now é substituído nos testes
	now func() time.Time

	Mux *chi.Mux
}

// NewHandler aceita mailCh nil: nesse caso as notificações por e-mail ficam desativadas.
func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel) (*Handler, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Agent.Timezone)
	if err != nil {
		return nil, err
	}

	pages, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	h := &Handler{
		validate:   validate,
		config:     cfg,
		repository: repo,
		translator: trans,
		pages:      pages,
		location:   loc,

		Mux: chi.NewRouter(),
	}
	if mailCh != nil {
		h.mailChannel = mailCh
	}
	h.now = func() time.Time { return time.Now().In(h.location) }
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  4 * 1024,
		WriteBufferSize: 4 * 1024,
		CheckOrigin:     h.checkOrigin,
	}

	return h, nil
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// mensagens de erro usam o rótulo do campo, ou o nome no JSON
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return utils.IsValidClock(fl.Field().String())
	}); err != nil {
		return nil, nil, err
	}

	ptBR := pt_BR.New()
	uni := ut.New(ptBR, ptBR)
	trans, _ := uni.GetTranslator("pt_BR")
	if err := pt_BR_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, err
	}

	if err := validate.RegisterTranslation("clock", trans, func(ut ut.Translator) error {
		return ut.Add("clock", "{0} deve estar no formato HH:MM", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("clock", fe.Field())
		return t
	}); err != nil {
		return nil, nil, err
	}

	// required_if só é usado nos horários de DaySchedule
	if err := validate.RegisterTranslation("required_if", trans, func(ut ut.Translator) error {
		return ut.Add("required_if", "{0} é obrigatório para dias ativos", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("required_if", fe.Field())
		return t
	}); err != nil {
		return nil, nil, err
	}

	return validate, trans, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Get("/health", h.Health)
	h.Mux.Get("/", h.IndexPage)

	// a pré-visualização via websocket recarrega a configuração a cada mensagem
	h.Mux.Get("/ws/test-agent", h.PreviewWebSocket)

	// rotas abaixo recebem a configuração carregada no início da requisição
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.agentConfig)

		r.Get("/config", h.ConfigPage)
		r.Get("/teste", h.TestPage)

		r.Route("/api", func(r chi.Router) {
			r.Get("/config", h.GetAgentConfig)
			r.Post("/save-config", h.SaveAgentConfig)
			r.Get("/status", h.GetStatus)
			r.Route("/test-agent", func(r chi.Router) {
				r.Post("/", h.TestAgent)
				r.Get("/{sessionID}/history", h.GetPreviewHistory)
			})
		})
	})
}
