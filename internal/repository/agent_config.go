package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/restaurante-digital/agente-ia/backend/internal/domain"
	"github.com/restaurante-digital/agente-ia/backend/internal/utils"
)

const (
	sectionRestaurant  = "restaurante"
	sectionPersonality = "personalidade"
	sectionBehavior    = "comportamento"
	sectionSchedule    = "horario"
)

// DecodeAgentConfig lê um documento de configuração. Seções de primeiro nível
// ausentes são copiadas de fallback sem mesclar campos internos; dias da
// semana ausentes vêm da agenda padrão.
func DecodeAgentConfig(r io.Reader, fallback *domain.AgentConfig) (*domain.AgentConfig, error) {
	dec := json.NewDecoder(r)

	var sections map[string]json.RawMessage
	if err := dec.Decode(&sections); err != nil {
		return nil, err
	}
	// um arquivo editado pela metade costuma deixar lixo depois do objeto
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("conteúdo após o documento de configuração")
	}
	if sections == nil {
		return nil, errors.New("documento de configuração vazio")
	}

	cfg := *fallback
	cfg.Restaurant.ActivePromotions = append([]string(nil), fallback.Restaurant.ActivePromotions...)
	cfg.Schedule = cloneSchedule(fallback.Schedule)

	for key, raw := range sections {
		var err error
		switch key {
		case sectionRestaurant:
			cfg.Restaurant = domain.Restaurant{}
			err = json.Unmarshal(raw, &cfg.Restaurant)
		case sectionPersonality:
			cfg.Personality = domain.Personality{}
			err = json.Unmarshal(raw, &cfg.Personality)
		case sectionBehavior:
			cfg.Behavior = domain.Behavior{}
			err = json.Unmarshal(raw, &cfg.Behavior)
		case sectionSchedule:
			cfg.Schedule = domain.WeeklySchedule{}
			err = json.Unmarshal(raw, &cfg.Schedule)
		default:
			slog.Warn("seção desconhecida ignorada", "section", key)
		}
		if err != nil {
			return nil, fmt.Errorf("seção %s: %w", key, err)
		}
	}

	defaults := domain.DefaultWeeklySchedule()
	for _, weekday := range domain.Weekdays {
		if cfg.Schedule.Day(weekday) == nil {
			cfg.Schedule.SetDay(weekday, defaults.Day(weekday))
		}
	}

	if cfg.Restaurant.ActivePromotions == nil {
		cfg.Restaurant.ActivePromotions = []string{}
	}

	return &cfg, nil
}

func cloneSchedule(s domain.WeeklySchedule) domain.WeeklySchedule {
	cloned := s
	for _, weekday := range domain.Weekdays {
		if day := s.Day(weekday); day != nil {
			copied := *day
			cloned.SetDay(weekday, &copied)
		}
	}
	return cloned
}

// LoadAgentConfig nunca falha: arquivo ausente ou corrompido resulta na configuração padrão.
func (r *Repository) LoadAgentConfig() *domain.AgentConfig {
	f, err := os.Open(r.configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("não foi possível abrir o arquivo de configuração, usando padrão", "file", r.configFile, "error", err)
		}
		return domain.DefaultAgentConfig()
	}
	defer f.Close()

	cfg, err := DecodeAgentConfig(f, domain.DefaultAgentConfig())
	if err != nil {
		slog.Warn("arquivo de configuração inválido, usando padrão", "file", r.configFile, "error", err)
		return domain.DefaultAgentConfig()
	}

	if repaired := utils.RepairWeeklySchedule(&cfg.Schedule, domain.DefaultWeeklySchedule()); len(repaired) > 0 {
		slog.Warn("horários inválidos substituídos pelo padrão", "file", r.configFile, "days", repaired)
	}

	return cfg
}

// SaveAgentConfig grava num arquivo temporário e renomeia, para que uma falha
// no meio da escrita nunca deixe um arquivo pela metade.
func (r *Repository) SaveAgentConfig(cfg *domain.AgentConfig) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return err
	}

	dir := filepath.Dir(r.configFile)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.configFile)+".*.tmp")
	if err != nil {
		return fmt.Errorf("criar arquivo temporário: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("gravar configuração: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sincronizar configuração: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("fechar arquivo temporário: %w", err)
	}

	if err := os.Rename(tmpName, r.configFile); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("substituir configuração: %w", err)
	}

	return nil
}

// AgentConfigExists é usado pelo seed para não sobrescrever uma configuração existente.
func (r *Repository) AgentConfigExists() (bool, error) {
	_, err := os.Stat(r.configFile)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
