package responder

import (
	"fmt"
	"strings"
	"time"

	"github.com/restaurante-digital/agente-ia/backend/internal/domain"
	"github.com/restaurante-digital/agente-ia/backend/internal/hours"
)

type Rule struct {
	Keyword string
	Reply   func(cfg *domain.AgentConfig, now time.Time) string
}

func menuReply(cfg *domain.AgentConfig, _ time.Time) string {
	return fmt.Sprintf("Menu completo: %s 🍕 O que te interessa?", cfg.Restaurant.MenuLink)
}

func promotionsReply(cfg *domain.AgentConfig, _ time.Time) string {
	return fmt.Sprintf("Promoções: %s 🎉", strings.Join(cfg.Restaurant.ActivePromotions, " | "))
}

func addressReply(cfg *domain.AgentConfig, _ time.Time) string {
	return fmt.Sprintf("Endereço: %s 📍", cfg.Restaurant.Address)
}

func todayHoursReply(cfg *domain.AgentConfig, now time.Time) string {
	day := cfg.Schedule.Day(now.Weekday())
	if day == nil {
		return "Hoje não temos horário cadastrado ⏰"
	}
	return fmt.Sprintf("Hoje: %s às %s ⏰", day.Open, day.Close)
}

// Rules é avaliada em ordem e a primeira palavra-chave contida na mensagem vence.
// "oi" aparece dentro de outras palavras ("noite", "dois"), por isso a ordem importa.
var Rules = []Rule{
	{"oi", func(cfg *domain.AgentConfig, _ time.Time) string {
		return fmt.Sprintf("Oi! Sou %s do %s! Como posso ajudar?", cfg.Personality.Name, cfg.Restaurant.Name)
	}},
	{"olá", func(cfg *domain.AgentConfig, _ time.Time) string {
		return fmt.Sprintf("Olá! Bem-vindo ao %s! Em que posso ajudar?", cfg.Restaurant.Name)
	}},
	{"cardápio", func(cfg *domain.AgentConfig, _ time.Time) string {
		return fmt.Sprintf("Nosso cardápio: %s 📋 Posso sugerir algo?", cfg.Restaurant.MenuLink)
	}},
	{"cardapio", menuReply},
	{"menu", menuReply},
	{"pizza", func(cfg *domain.AgentConfig, _ time.Time) string {
		return fmt.Sprintf("Temos pizzas deliciosas! Veja: %s Qual sabor?", cfg.Restaurant.MenuLink)
	}},
	{"promoção", promotionsReply},
	{"promocao", promotionsReply},
	{"entrega", func(cfg *domain.AgentConfig, _ time.Time) string {
		r := cfg.Restaurant
		return fmt.Sprintf("Entregamos em: %s. Taxa: R$ %.2f. Tempo: %s", r.DeliveryZone, r.DeliveryFee, r.DeliveryTime)
	}},
	{"telefone", func(cfg *domain.AgentConfig, _ time.Time) string {
		return fmt.Sprintf("Telefone: %s 📞", cfg.Restaurant.Phone)
	}},
	{"endereço", addressReply},
	{"endereco", addressReply},
	{"horário", todayHoursReply},
	{"horario", todayHoursReply},
	{"pagamento", func(cfg *domain.AgentConfig, _ time.Time) string {
		return fmt.Sprintf("Aceitamos: %s 💳", cfg.Restaurant.PaymentMethods)
	}},
}

// Respond gera a resposta de pré-visualização do agente. Fora do horário a
// mensagem de status é devolvida sem consultar as palavras-chave.
func Respond(message string, cfg *domain.AgentConfig, now time.Time) string {
	status := hours.Evaluate(&cfg.Schedule, now)
	if !status.IsOpen {
		return status.Message
	}

	lowered := strings.ToLower(message)
	for _, rule := range Rules {
		if strings.Contains(lowered, rule.Keyword) {
			return rule.Reply(cfg, now)
		}
	}

	return fmt.Sprintf("Veja nosso cardápio: %s 📋 Como posso ajudar?", cfg.Restaurant.MenuLink)
}
