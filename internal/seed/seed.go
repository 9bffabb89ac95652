package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/restaurante-digital/agente-ia/backend/internal/domain"
	"github.com/restaurante-digital/agente-ia/backend/internal/repository"
	"github.com/restaurante-digital/agente-ia/backend/internal/utils"
)

var ErrConfigExists = errors.New("o arquivo de configuração já existe")

// ScheduleHeaders são as colunas obrigatórias do CSV de horários.
var ScheduleHeaders = []string{"dia", "ativo", "inicio", "fim"}

// Seed grava a configuração padrão. Sem force, um arquivo existente não é tocado.
func Seed(r *repository.Repository, force bool) error {
	exists, err := r.AgentConfigExists()
	if err != nil {
		return err
	}
	if exists && !force {
		return ErrConfigExists
	}

	return r.SaveAgentConfig(domain.DefaultAgentConfig())
}

// ImportSchedule substitui os dias presentes no CSV e grava a configuração.
// Dias que não aparecem no arquivo mantêm o horário atual.
func ImportSchedule(r *repository.Repository, src io.Reader) (int, error) {
	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("ler cabeçalho: %w", err)
	}
	columns := make(map[string]int, len(headers))
	for i, header := range headers {
		columns[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, required := range ScheduleHeaders {
		if _, ok := columns[required]; !ok {
			return 0, fmt.Errorf("coluna %q não encontrada", required)
		}
	}

	cfg := r.LoadAgentConfig()
	seen := make([]string, 0, len(domain.Weekdays))

	for line := 2; ; line++ {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("linha %d: %w", line, err)
		}

		key := strings.ToLower(strings.TrimSpace(row[columns["dia"]]))
		weekday, ok := domain.ParseWeekdayKey(key)
		if !ok {
			return 0, fmt.Errorf("linha %d: dia desconhecido %q", line, key)
		}
		if slices.Contains(seen, key) {
			return 0, fmt.Errorf("linha %d: dia %q repetido", line, key)
		}

		active, err := strconv.ParseBool(strings.TrimSpace(row[columns["ativo"]]))
		if err != nil {
			return 0, fmt.Errorf("linha %d: ativo: %w", line, err)
		}

		day := &domain.DaySchedule{
			Active: active,
			Open:   strings.TrimSpace(row[columns["inicio"]]),
			Close:  strings.TrimSpace(row[columns["fim"]]),
		}
		if !utils.IsValidClock(day.Open) || !utils.IsValidClock(day.Close) {
			return 0, fmt.Errorf("linha %d: horário deve estar no formato HH:MM", line)
		}

		cfg.Schedule.SetDay(weekday, day)
		seen = append(seen, key)
	}

	if len(seen) == 0 {
		return 0, errors.New("nenhum dia encontrado no arquivo")
	}

	if err := r.SaveAgentConfig(cfg); err != nil {
		return 0, err
	}

	slog.Info("horários importados", "days", seen)
	return len(seen), nil
}
