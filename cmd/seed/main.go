package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/restaurante-digital/agente-ia/backend/internal/config"
	"github.com/restaurante-digital/agente-ia/backend/internal/repository"
	"github.com/restaurante-digital/agente-ia/backend/internal/seed"
)

func main() {
	var force bool
	var hoursFile string

	flag.BoolVar(&force, "force", false, "sobrescreve o arquivo de configuração existente com os valores padrão")
	flag.StringVar(&hoursFile, "hours", "", "CSV com os horários (colunas: dia,ativo,inicio,fim) a importar")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("não foi possível carregar a configuração", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// o seed não usa o histórico de pré-visualização
	repo := repository.NewRepository(cfg, nil)

	if err := seed.Seed(repo, force); err != nil {
		switch {
		case errors.Is(err, seed.ErrConfigExists):
			logger.Info("configuração existente mantida (use -force para sobrescrever)", slog.String("file", cfg.Agent.ConfigFile))
		default:
			logger.Error("não foi possível gravar a configuração padrão", slog.String("error", err.Error()))
			os.Exit(1)
		}
	} else {
		logger.Info("configuração padrão gravada", slog.String("file", cfg.Agent.ConfigFile))
	}

	if hoursFile == "" {
		return
	}

	file, err := os.Open(hoursFile)
	if err != nil {
		logger.Error("não foi possível abrir o arquivo de horários", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer file.Close()

	n, err := seed.ImportSchedule(repo, file)
	if err != nil {
		logger.Error("não foi possível importar os horários", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("importação concluída", slog.Int("count", n))
}
