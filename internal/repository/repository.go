package repository

import (
	"github.com/redis/go-redis/v9"
	"github.com/restaurante-digital/agente-ia/backend/internal/config"
)

type Repository struct {
	cfg         *config.Config
	configFile  string
	redisClient *redis.Client
}

// NewRepository aceita rdb nil: nesse caso o histórico de pré-visualização fica desativado.
func NewRepository(cfg *config.Config, rdb *redis.Client) *Repository {
	return &Repository{
		cfg:         cfg,
		configFile:  cfg.Agent.ConfigFile,
		redisClient: rdb,
	}
}
