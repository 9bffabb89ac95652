package domain

import "time"

type Restaurant struct {
	Name             string   `json:"nome" validate:"required" label:"Nome do restaurante"`
	Phone            string   `json:"telefone"`
	Address          string   `json:"endereco"`
	City             string   `json:"cidade"`
	State            string   `json:"estado"`
	MenuLink         string   `json:"link_cardapio"`
	Delivery         bool     `json:"delivery"`
	Pickup           bool     `json:"retirada"`
	DeliveryZone     string   `json:"zona_entrega"`
	DeliveryFee      float64  `json:"taxa_entrega" validate:"gte=0" label:"Taxa de entrega"`
	DeliveryTime     string   `json:"tempo_entrega"`
	PaymentMethods   string   `json:"formas_pagamento"`
	ActivePromotions []string `json:"promocoes_ativas"`
}

type Personality struct {
	Name         string `json:"nome" validate:"required" label:"Nome do agente"`
	Tone         string `json:"tom" validate:"omitempty,oneof=amigavel profissional casual energetico" label:"Tom de voz"`
	CustomPrompt string `json:"prompt_personalizado"`
	UseEmojis    bool   `json:"usar_emojis"`
}

type Specialties struct {
	Suggestions       bool `json:"sugestoes"`
	Combos            bool `json:"combos"`
	Promotions        bool `json:"promocoes"`
	Ingredients       bool `json:"ingredientes"`
	Nutritional       bool `json:"nutricional"`
	Allergies         bool `json:"alergias"`
	RestaurantDetails bool `json:"informacoes_restaurante"`
}

type Behavior struct {
	Specialties      Specialties `json:"especialidades"`
	ResponseDelay    int         `json:"tempo_resposta" validate:"gte=0" label:"Tempo de resposta"`
	AutoSendMenuLink bool        `json:"enviar_cardapio_automatico"`
}

// DaySchedule guarda horários de relógio sem data ("15:04"). Fim menor que
// início significa que o expediente atravessa a meia-noite. Dias inativos
// podem ter horários em branco.
type DaySchedule struct {
	Active bool   `json:"ativo"`
	Open   string `json:"inicio" validate:"required_if=Active true,omitempty,clock" label:"Horário de abertura"`
	Close  string `json:"fim" validate:"required_if=Active true,omitempty,clock" label:"Horário de fechamento"`
}

// WeeklySchedule tem uma entrada por dia da semana. Entradas nil representam
// dias ausentes do arquivo de configuração.
type WeeklySchedule struct {
	Monday    *DaySchedule `json:"segunda"`
	Tuesday   *DaySchedule `json:"terca"`
	Wednesday *DaySchedule `json:"quarta"`
	Thursday  *DaySchedule `json:"quinta"`
	Friday    *DaySchedule `json:"sexta"`
	Saturday  *DaySchedule `json:"sabado"`
	Sunday    *DaySchedule `json:"domingo"`

	ClosedMessage   string `json:"mensagem_fechado"`
	InactiveMessage string `json:"mensagem_nao_funciona"`
}

type AgentConfig struct {
	Restaurant  Restaurant     `json:"restaurante"`
	Personality Personality    `json:"personalidade"`
	Behavior    Behavior       `json:"comportamento"`
	Schedule    WeeklySchedule `json:"horario"`
}

// Weekdays lista os dias na ordem do calendário usada pelo painel (segunda a domingo).
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

var weekdayKeys = map[time.Weekday]string{
	time.Monday:    "segunda",
	time.Tuesday:   "terca",
	time.Wednesday: "quarta",
	time.Thursday:  "quinta",
	time.Friday:    "sexta",
	time.Saturday:  "sabado",
	time.Sunday:    "domingo",
}

var weekdayDisplayNames = map[time.Weekday]string{
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
	time.Sunday:    "domingo",
}

var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "Segunda",
	time.Tuesday:   "Terça",
	time.Wednesday: "Quarta",
	time.Thursday:  "Quinta",
	time.Friday:    "Sexta",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// WeekdayKey devolve a chave usada no arquivo de configuração ("segunda", "terca", ...).
func WeekdayKey(d time.Weekday) string {
	return weekdayKeys[d]
}

// ParseWeekdayKey é o inverso de WeekdayKey.
func ParseWeekdayKey(key string) (time.Weekday, bool) {
	for d, k := range weekdayKeys {
		if k == key {
			return d, true
		}
	}
	return 0, false
}

// WeekdayDisplayName devolve o nome usado nas mensagens ao cliente ("terça-feira").
func WeekdayDisplayName(d time.Weekday) string {
	return weekdayDisplayNames[d]
}

func WeekdayLabel(d time.Weekday) string {
	return weekdayLabels[d]
}

func (s *WeeklySchedule) dayField(d time.Weekday) **DaySchedule {
	switch d {
	case time.Monday:
		return &s.Monday
	case time.Tuesday:
		return &s.Tuesday
	case time.Wednesday:
		return &s.Wednesday
	case time.Thursday:
		return &s.Thursday
	case time.Friday:
		return &s.Friday
	case time.Saturday:
		return &s.Saturday
	case time.Sunday:
		return &s.Sunday
	}
	return nil
}

// Day devolve o horário do dia ou nil se o dia não estiver configurado.
func (s *WeeklySchedule) Day(d time.Weekday) *DaySchedule {
	if s == nil {
		return nil
	}
	field := s.dayField(d)
	if field == nil {
		return nil
	}
	return *field
}

func (s *WeeklySchedule) SetDay(d time.Weekday, day *DaySchedule) {
	if field := s.dayField(d); field != nil {
		*field = day
	}
}

// DefaultAgentConfig devolve uma cópia nova da configuração padrão a cada chamada.
func DefaultAgentConfig() *AgentConfig {
	return &AgentConfig{
		Restaurant: Restaurant{
			Name:           "Meu Restaurante",
			Phone:          "(11) 99999-9999",
			Address:        "Rua Principal, 123 - Centro",
			City:           "São Paulo",
			State:          "SP",
			MenuLink:       "https://cardapio.meurestaurante.com",
			Delivery:       true,
			Pickup:         true,
			DeliveryZone:   "Centro, Vila Madalena, Pinheiros",
			DeliveryFee:    5.00,
			DeliveryTime:   "45-60 minutos",
			PaymentMethods: "Dinheiro, Cartão, PIX",
			ActivePromotions: []string{
				"Terças: 2 pizzas pelo preço de 1",
				"Combo Família: Pizza + Refri 2L por R$ 45",
			},
		},
		Personality: Personality{
			Name:      "Maria",
			Tone:      "amigavel",
			UseEmojis: true,
		},
		Behavior: Behavior{
			Specialties: Specialties{
				Suggestions:       true,
				Combos:            true,
				Promotions:        true,
				Allergies:         true,
				RestaurantDetails: true,
			},
			ResponseDelay:    3,
			AutoSendMenuLink: true,
		},
		Schedule: DefaultWeeklySchedule(),
	}
}

func DefaultWeeklySchedule() WeeklySchedule {
	return WeeklySchedule{
		Monday:          &DaySchedule{Active: true, Open: "18:00", Close: "23:30"},
		Tuesday:         &DaySchedule{Active: true, Open: "18:00", Close: "23:30"},
		Wednesday:       &DaySchedule{Active: true, Open: "18:00", Close: "23:30"},
		Thursday:        &DaySchedule{Active: true, Open: "18:00", Close: "23:30"},
		Friday:          &DaySchedule{Active: true, Open: "18:00", Close: "23:30"},
		Saturday:        &DaySchedule{Active: true, Open: "18:00", Close: "00:00"},
		Sunday:          &DaySchedule{Active: true, Open: "18:00", Close: "23:00"},
		ClosedMessage:   "Ops! Estamos fechados agora 😴",
		InactiveMessage: "Hoje não estamos funcionando 😔",
	}
}
