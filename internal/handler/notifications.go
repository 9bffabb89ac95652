package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/restaurante-digital/agente-ia/backend/internal/domain"
)

const mailQueue = "email_queue"

// mailPublisher é satisfeito por *amqp.Channel.
type mailPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// notifyConfigUpdated avisa o operador por e-mail. A configuração já foi
// gravada, então falhas aqui só são registradas no log.
func (h *Handler) notifyConfigUpdated(r *http.Request, cfg *domain.AgentConfig) {
	if h.mailChannel == nil || h.config.Email.NotifyTo == "" {
		return
	}

	mailMessage := domain.MailMessage{
		Type: domain.MailTypeConfigUpdated,
		To:   h.config.Email.NotifyTo,
		Data: domain.ConfigUpdatedMailData{
			RestaurantName: cfg.Restaurant.Name,
			AgentName:      cfg.Personality.Name,
			UpdatedAt:      h.now().Format("02/01/2006 15:04"),
		},
	}

	emailData, err := json.Marshal(mailMessage)
	if err != nil {
		slog.Error("não foi possível serializar a notificação", "path", r.URL.Path, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		mailQueue,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        emailData,
		},
	); err != nil {
		slog.Error("não foi possível enfileirar a notificação", "path", r.URL.Path, "error", err)
	}
}
