package main

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/restaurante-digital/agente-ia/backend/internal/domain"
	"github.com/wneessen/go-mail"
)

const testTemplatesDir = "../../templates"

// decodeQueued reproduz o caminho da fila: o worker recebe o JSON publicado pela API.
func decodeQueued(t *testing.T, msg domain.MailMessage) *domain.MailMessage {
	t.Helper()

	body, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded := &domain.MailMessage{}
	if err := json.Unmarshal(body, decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return decoded
}

func configUpdatedMessage(to string) domain.MailMessage {
	return domain.MailMessage{
		Type: domain.MailTypeConfigUpdated,
		To:   to,
		Data: domain.ConfigUpdatedMailData{
			RestaurantName: "Pizzaria do Zé",
			AgentName:      "João",
			UpdatedAt:      "03/01/2024 20:00",
		},
	}
}

func TestBuildMessage_ConfigUpdated(t *testing.T) {
	queued := decodeQueued(t, configUpdatedMessage("dono@pizzaria.com"))

	m, err := buildMessage("agente@pizzaria.com", queued, testTemplatesDir)
	if err != nil {
		t.Fatalf("buildMessage: %v", err)
	}

	if subject := m.GetGenHeader(mail.HeaderSubject); len(subject) != 1 || subject[0] != "Agente IA - Configuração atualizada" {
		t.Errorf("subject = %v", subject)
	}
	recipients, err := m.GetRecipients()
	if err != nil || len(recipients) != 1 || recipients[0] != "dono@pizzaria.com" {
		t.Errorf("recipients = %v, err = %v", recipients, err)
	}

	parts := m.GetParts()
	if len(parts) != 1 {
		t.Fatalf("expected 1 body part, got %d", len(parts))
	}
	content, err := parts[0].GetContent()
	if err != nil {
		t.Fatalf("GetContent: %v", err)
	}
	for _, want := range []string{"Pizzaria do Zé", "João", "03/01/2024 20:00"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("body does not contain %q", want)
		}
	}
}

func TestBuildMessage_UnsupportedType(t *testing.T) {
	queued := decodeQueued(t, domain.MailMessage{Type: "reset_password", To: "dono@pizzaria.com"})

	_, err := buildMessage("agente@pizzaria.com", queued, testTemplatesDir)
	var unsupported *unsupportedTypeError
	if !errors.As(err, &unsupported) || unsupported.mailType != "reset_password" {
		t.Errorf("expected unsupportedTypeError, got %v", err)
	}
}

func TestBuildMessage_Errors(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		dir  string
	}{
		{"invalid sender", "não é e-mail", "dono@pizzaria.com", testTemplatesDir},
		{"invalid recipient", "agente@pizzaria.com", "não é e-mail", testTemplatesDir},
		{"missing template", "agente@pizzaria.com", "dono@pizzaria.com", t.TempDir()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queued := decodeQueued(t, configUpdatedMessage(tt.to))
			if _, err := buildMessage(tt.from, queued, tt.dir); err == nil {
				t.Error("expected error")
			}
		})
	}
}
