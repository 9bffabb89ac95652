package responder

import (
	"strings"
	"testing"
	"time"

	"github.com/restaurante-digital/agente-ia/backend/internal/domain"
)

// quarta-feira, 20:00, dentro do horário padrão
var openNow = time.Date(2024, time.January, 3, 20, 0, 0, 0, time.UTC)

func TestRespond_MenuKeyword(t *testing.T) {
	cfg := domain.DefaultAgentConfig()

	got := Respond("qual o cardápio?", cfg, openNow)

	want := "Nosso cardápio: https://cardapio.meurestaurante.com 📋 Posso sugerir algo?"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRespond_Keywords(t *testing.T) {
	cfg := domain.DefaultAgentConfig()

	tests := []struct {
		message string
		want    string
	}{
		{"Oi", "Oi! Sou Maria do Meu Restaurante! Como posso ajudar?"},
		{"OLÁ, tudo bem?", "Olá! Bem-vindo ao Meu Restaurante! Em que posso ajudar?"},
		{"CARDÁPIO", "Nosso cardápio: https://cardapio.meurestaurante.com 📋 Posso sugerir algo?"},
		{"manda o cardapio", "Menu completo: https://cardapio.meurestaurante.com 🍕 O que te interessa?"},
		{"quero ver o menu", "Menu completo: https://cardapio.meurestaurante.com 🍕 O que te interessa?"},
		{"tem pizza de calabresa?", "Temos pizzas deliciosas! Veja: https://cardapio.meurestaurante.com Qual sabor?"},
		{"alguma promoção?", "Promoções: Terças: 2 pizzas pelo preço de 1 | Combo Família: Pizza + Refri 2L por R$ 45 🎉"},
		{"vocês fazem entrega?", "Entregamos em: Centro, Vila Madalena, Pinheiros. Taxa: R$ 5.00. Tempo: 45-60 minutos"},
		{"qual o telefone", "Telefone: (11) 99999-9999 📞"},
		{"qual o endereço", "Endereço: Rua Principal, 123 - Centro 📍"},
		{"qual o horário?", "Hoje: 18:00 às 23:30 ⏰"},
		{"formas de pagamento", "Aceitamos: Dinheiro, Cartão, PIX 💳"},
	}

	for _, tt := range tests {
		if got := Respond(tt.message, cfg, openNow); got != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.message, tt.want, got)
		}
	}
}

func TestRespond_FirstMatchWins(t *testing.T) {
	cfg := domain.DefaultAgentConfig()

	// "boa noite" contém "oi", que vem antes de "pizza" na lista
	got := Respond("boa noite, quero pizza", cfg, openNow)
	if !strings.HasPrefix(got, "Oi! Sou Maria") {
		t.Errorf("expected greeting reply, got %q", got)
	}

	// "menu" vem antes de "pizza"
	got = Respond("pizza do menu", cfg, openNow)
	if !strings.HasPrefix(got, "Menu completo") {
		t.Errorf("expected menu reply, got %q", got)
	}
}

func TestRespond_Fallback(t *testing.T) {
	cfg := domain.DefaultAgentConfig()

	got := Respond("quero um hambúrguer", cfg, openNow)

	want := "Veja nosso cardápio: https://cardapio.meurestaurante.com 📋 Como posso ajudar?"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRespond_ClosedReturnsStatusMessage(t *testing.T) {
	cfg := domain.DefaultAgentConfig()
	afternoon := time.Date(2024, time.January, 3, 15, 0, 0, 0, time.UTC)

	got := Respond("qual o cardápio?", cfg, afternoon)

	want := "Ops! Estamos fechados agora 😴 Abrimos hoje às 18:00!"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRespond_InactiveDay(t *testing.T) {
	cfg := domain.DefaultAgentConfig()
	cfg.Schedule.Wednesday.Active = false

	got := Respond("oi", cfg, openNow)

	want := "Hoje não estamos funcionando 😔 Voltamos amanhã (quinta-feira) às 18:00!"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
