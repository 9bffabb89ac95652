package utils

import (
	"fmt"
	"time"

	"github.com/restaurante-digital/agente-ia/backend/internal/domain"
)

const ClockLayout = "15:04"

// ParseClock converte "HH:MM" na duração desde a meia-noite.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("horário inválido %q: %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// ClockOf devolve a hora do relógio de t, com segundos, como duração desde a meia-noite.
func ClockOf(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

func IsValidClock(s string) bool {
	_, err := ParseClock(s)
	return err == nil
}

// RepairWeeklySchedule preenche dias ausentes e substitui horários inválidos
// pelos do dia correspondente em fallback. Devolve as chaves dos dias alterados.
func RepairWeeklySchedule(schedule *domain.WeeklySchedule, fallback domain.WeeklySchedule) []string {
	repaired := make([]string, 0)

	for _, weekday := range domain.Weekdays {
		day := schedule.Day(weekday)
		def := fallback.Day(weekday)

		if day == nil {
			if def != nil {
				copied := *def
				schedule.SetDay(weekday, &copied)
			}
			repaired = append(repaired, domain.WeekdayKey(weekday))
			continue
		}

		changed := false
		if needsRepair(day, day.Open) && def != nil {
			day.Open = def.Open
			changed = true
		}
		if needsRepair(day, day.Close) && def != nil {
			day.Close = def.Close
			changed = true
		}
		if changed {
			repaired = append(repaired, domain.WeekdayKey(weekday))
		}
	}

	return repaired
}

// needsRepair aceita horário em branco em dia inativo, que o painel grava
// quando os campos ficam vazios.
func needsRepair(day *domain.DaySchedule, clock string) bool {
	if !day.Active && clock == "" {
		return false
	}
	return !IsValidClock(clock)
}
