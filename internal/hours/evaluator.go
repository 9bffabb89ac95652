package hours

import (
	"fmt"
	"time"

	"github.com/restaurante-digital/agente-ia/backend/internal/domain"
	"github.com/restaurante-digital/agente-ia/backend/internal/utils"
)

// NextOpeningPlaceholder é usado quando nenhum dos próximos seis dias está ativo.
const NextOpeningPlaceholder = "em breve"

// Evaluate calcula se o restaurante está aberto no instante now. Dias ausentes
// ou com horário inválido contam como dias sem funcionamento.
func Evaluate(schedule *domain.WeeklySchedule, now time.Time) domain.StatusResult {
	if schedule == nil {
		schedule = &domain.WeeklySchedule{}
	}

	today := now.Weekday()
	day := schedule.Day(today)

	var openAt, closeAt time.Duration
	active := day != nil && day.Active
	if active {
		var err error
		if openAt, err = utils.ParseClock(day.Open); err != nil {
			active = false
		} else if closeAt, err = utils.ParseClock(day.Close); err != nil {
			active = false
		}
	}

	if !active {
		return domain.StatusResult{
			IsOpen:  false,
			Reason:  domain.ReasonClosedTodayInactive,
			Message: fmt.Sprintf("%s Voltamos %s!", schedule.InactiveMessage, NextOpening(schedule, today)),
		}
	}

	current := utils.ClockOf(now)

	var isOpen bool
	if closeAt < openAt {
		// atravessa a meia-noite
		isOpen = current >= openAt || current <= closeAt
	} else {
		isOpen = openAt <= current && current <= closeAt
	}

	switch {
	case isOpen:
		return domain.StatusResult{
			IsOpen:  true,
			Reason:  domain.ReasonOpen,
			Message: fmt.Sprintf("Estamos abertos até às %s! 😊", day.Close),
		}
	case current < openAt:
		return domain.StatusResult{
			IsOpen:  false,
			Reason:  domain.ReasonNotYetOpen,
			Message: fmt.Sprintf("%s Abrimos hoje às %s!", schedule.ClosedMessage, day.Open),
		}
	default:
		return domain.StatusResult{
			IsOpen:  false,
			Reason:  domain.ReasonClosedAfterHours,
			Message: fmt.Sprintf("%s Voltamos %s!", schedule.ClosedMessage, NextOpening(schedule, today)),
		}
	}
}

// NextOpening procura, nos seis dias seguintes a from, o primeiro dia ativo.
func NextOpening(schedule *domain.WeeklySchedule, from time.Weekday) string {
	for offset := 1; offset <= 6; offset++ {
		weekday := time.Weekday((int(from) + offset) % 7)
		day := schedule.Day(weekday)
		if day == nil || !day.Active {
			continue
		}
		if !utils.IsValidClock(day.Open) || !utils.IsValidClock(day.Close) {
			continue
		}

		if offset == 1 {
			return fmt.Sprintf("amanhã (%s) às %s", domain.WeekdayDisplayName(weekday), day.Open)
		}
		return fmt.Sprintf("%s às %s", domain.WeekdayDisplayName(weekday), day.Open)
	}

	return NextOpeningPlaceholder
}
