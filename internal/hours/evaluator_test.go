package hours

import (
	"strings"
	"testing"
	"time"

	"github.com/restaurante-digital/agente-ia/backend/internal/domain"
)

// 2024-01-01 foi uma segunda-feira.
func at(weekday time.Weekday, clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		panic(err)
	}
	offset := (int(weekday) + 6) % 7
	return time.Date(2024, time.January, 1+offset, t.Hour(), t.Minute(), 0, 0, time.UTC)
}

func mondayOnly() *domain.WeeklySchedule {
	s := &domain.WeeklySchedule{
		ClosedMessage:   "Fechado.",
		InactiveMessage: "Hoje não abrimos.",
	}
	for _, d := range domain.Weekdays {
		s.SetDay(d, &domain.DaySchedule{Active: false, Open: "18:00", Close: "23:30"})
	}
	s.Monday.Active = true
	return s
}

func TestAtHelper(t *testing.T) {
	for _, d := range domain.Weekdays {
		if got := at(d, "10:00").Weekday(); got != d {
			t.Fatalf("at(%v) gave %v", d, got)
		}
	}
}

func TestEvaluate_InactiveDay(t *testing.T) {
	s := mondayOnly()

	for _, d := range domain.Weekdays {
		if d == time.Monday {
			continue
		}
		for _, clock := range []string{"00:00", "10:00", "19:00", "23:59"} {
			got := Evaluate(s, at(d, clock))
			if got.Reason != domain.ReasonClosedTodayInactive {
				t.Errorf("%v %s: expected %s, got %s", d, clock, domain.ReasonClosedTodayInactive, got.Reason)
			}
			if got.IsOpen {
				t.Errorf("%v %s: expected closed", d, clock)
			}
		}
	}
}

func TestEvaluate_InactiveDayMentionsNextMonday(t *testing.T) {
	got := Evaluate(mondayOnly(), at(time.Tuesday, "10:00"))

	if got.Reason != domain.ReasonClosedTodayInactive {
		t.Fatalf("expected %s, got %s", domain.ReasonClosedTodayInactive, got.Reason)
	}
	want := "Hoje não abrimos. Voltamos segunda-feira às 18:00!"
	if got.Message != want {
		t.Errorf("expected %q, got %q", want, got.Message)
	}
}

func TestEvaluate_OpenReportsClosingTime(t *testing.T) {
	got := Evaluate(mondayOnly(), at(time.Monday, "19:00"))

	if !got.IsOpen || got.Reason != domain.ReasonOpen {
		t.Fatalf("expected open, got %+v", got)
	}
	if !strings.Contains(got.Message, "23:30") {
		t.Errorf("expected closing time in %q", got.Message)
	}
}

func TestEvaluate_SameDayWindow(t *testing.T) {
	s := mondayOnly()

	tests := []struct {
		clock  string
		reason domain.Reason
	}{
		{"00:00", domain.ReasonNotYetOpen},
		{"17:59", domain.ReasonNotYetOpen},
		{"18:00", domain.ReasonOpen},
		{"21:15", domain.ReasonOpen},
		{"23:30", domain.ReasonOpen},
		{"23:31", domain.ReasonClosedAfterHours},
		{"23:59", domain.ReasonClosedAfterHours},
	}

	for _, tt := range tests {
		got := Evaluate(s, at(time.Monday, tt.clock))
		if got.Reason != tt.reason {
			t.Errorf("%s: expected %s, got %s", tt.clock, tt.reason, got.Reason)
		}
		if got.IsOpen != (tt.reason == domain.ReasonOpen) {
			t.Errorf("%s: IsOpen=%v does not match reason %s", tt.clock, got.IsOpen, got.Reason)
		}
	}
}

func TestEvaluate_SecondsAfterClose(t *testing.T) {
	now := at(time.Monday, "23:30").Add(30 * time.Second)

	got := Evaluate(mondayOnly(), now)
	if got.Reason != domain.ReasonClosedAfterHours {
		t.Errorf("expected %s, got %s", domain.ReasonClosedAfterHours, got.Reason)
	}
}

func TestEvaluate_NotYetOpenMessage(t *testing.T) {
	got := Evaluate(mondayOnly(), at(time.Monday, "10:00"))

	want := "Fechado. Abrimos hoje às 18:00!"
	if got.Message != want {
		t.Errorf("expected %q, got %q", want, got.Message)
	}
}

func TestEvaluate_AfterHoursMessage(t *testing.T) {
	s := mondayOnly()
	s.Saturday.Active = true

	got := Evaluate(s, at(time.Monday, "23:45"))
	want := "Fechado. Voltamos sábado às 18:00!"
	if got.Message != want {
		t.Errorf("expected %q, got %q", want, got.Message)
	}

	// segunda não volta a ser candidata: só terça a domingo são inspecionados
	got = Evaluate(mondayOnly(), at(time.Monday, "23:45"))
	want = "Fechado. Voltamos em breve!"
	if got.Message != want {
		t.Errorf("expected %q, got %q", want, got.Message)
	}
}

func TestEvaluate_MidnightWindow(t *testing.T) {
	s := mondayOnly()
	s.Saturday = &domain.DaySchedule{Active: true, Open: "18:00", Close: "00:00"}
	s.Sunday = &domain.DaySchedule{Active: true, Open: "18:00", Close: "02:00"}

	tests := []struct {
		name    string
		weekday time.Weekday
		clock   string
		open    bool
	}{
		{"close at midnight, evening", time.Saturday, "23:00", true},
		{"close at midnight, exactly midnight", time.Saturday, "00:00", true},
		{"close at midnight, noon", time.Saturday, "12:00", false},
		{"close at midnight, one am", time.Saturday, "01:00", false},
		{"close at two, evening", time.Sunday, "23:00", true},
		{"close at two, one am", time.Sunday, "01:00", true},
		{"close at two, noon", time.Sunday, "12:00", false},
	}

	for _, tt := range tests {
		got := Evaluate(s, at(tt.weekday, tt.clock))
		if got.IsOpen != tt.open {
			t.Errorf("%s: expected open=%v, got %+v", tt.name, tt.open, got)
		}
	}
}

func TestEvaluate_MidnightWindowClosedIsNotYetOpen(t *testing.T) {
	s := mondayOnly()
	s.Sunday = &domain.DaySchedule{Active: true, Open: "18:00", Close: "02:00"}

	got := Evaluate(s, at(time.Sunday, "12:00"))
	if got.Reason != domain.ReasonNotYetOpen {
		t.Errorf("expected %s, got %s", domain.ReasonNotYetOpen, got.Reason)
	}
}

func TestEvaluate_MissingDayIsInactive(t *testing.T) {
	s := mondayOnly()
	s.Wednesday = nil

	got := Evaluate(s, at(time.Wednesday, "19:00"))
	if got.Reason != domain.ReasonClosedTodayInactive {
		t.Errorf("expected %s, got %s", domain.ReasonClosedTodayInactive, got.Reason)
	}
}

func TestEvaluate_MalformedTimeIsInactive(t *testing.T) {
	s := mondayOnly()
	s.Monday.Close = "meia-noite"

	got := Evaluate(s, at(time.Monday, "19:00"))
	if got.Reason != domain.ReasonClosedTodayInactive {
		t.Errorf("expected %s, got %s", domain.ReasonClosedTodayInactive, got.Reason)
	}
}

func TestEvaluate_NilSchedule(t *testing.T) {
	got := Evaluate(nil, at(time.Friday, "20:00"))
	if got.IsOpen || got.Reason != domain.ReasonClosedTodayInactive {
		t.Errorf("expected closed today, got %+v", got)
	}
}

func TestNextOpening(t *testing.T) {
	s := mondayOnly()
	s.Thursday.Active = true
	s.Thursday.Open = "11:30"

	tests := []struct {
		from time.Weekday
		want string
	}{
		{time.Sunday, "amanhã (segunda-feira) às 18:00"},
		{time.Monday, "quinta-feira às 11:30"},
		{time.Wednesday, "amanhã (quinta-feira) às 11:30"},
		{time.Thursday, "segunda-feira às 18:00"},
		{time.Friday, "segunda-feira às 18:00"},
	}

	for _, tt := range tests {
		if got := NextOpening(s, tt.from); got != tt.want {
			t.Errorf("from %v: expected %q, got %q", tt.from, tt.want, got)
		}
	}
}

func TestNextOpening_OnlyTodayActive(t *testing.T) {
	// o próprio dia não é candidato: só os seis seguintes são inspecionados
	if got := NextOpening(mondayOnly(), time.Monday); got != NextOpeningPlaceholder {
		t.Errorf("expected placeholder, got %q", got)
	}
}

// Semana inteira inativa devolve o texto genérico em vez de sinalizar
// "fechado permanentemente". Comportamento mantido de propósito até decisão de produto.
func TestNextOpening_AllInactive(t *testing.T) {
	s := mondayOnly()
	s.Monday.Active = false

	for _, d := range domain.Weekdays {
		if got := NextOpening(s, d); got != NextOpeningPlaceholder {
			t.Errorf("from %v: expected placeholder, got %q", d, got)
		}
	}

	got := Evaluate(s, at(time.Tuesday, "19:00"))
	if got.Message != "Hoje não abrimos. Voltamos em breve!" {
		t.Errorf("unexpected message %q", got.Message)
	}
}

func TestEvaluate_DefaultSchedule(t *testing.T) {
	cfg := domain.DefaultAgentConfig()

	got := Evaluate(&cfg.Schedule, at(time.Wednesday, "20:00"))
	if !got.IsOpen {
		t.Errorf("expected default schedule to be open on wednesday evening, got %+v", got)
	}

	got = Evaluate(&cfg.Schedule, at(time.Wednesday, "12:00"))
	if got.Reason != domain.ReasonNotYetOpen {
		t.Errorf("expected %s, got %s", domain.ReasonNotYetOpen, got.Reason)
	}
}
