package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"5000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Agent struct {
		ConfigFile string `env:"CONFIG_FILE" envDefault:"agent_config.json"`
		Timezone   string `env:"TIMEZONE" envDefault:"America/Sao_Paulo"`
	} `envPrefix:"AGENT_"`
	Redis struct {
		Host                 string `env:"HOST"` // vazio desativa o histórico de pré-visualização
		Port                 int    `env:"PORT" envDefault:"6379"`
		Password             string `env:"PASSWORD"`
		ConnectTimeout       int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		OperationTimeout     int    `env:"OPERATION_TIMEOUT" envDefault:"5"`
		TranscriptExpiration int    `env:"TRANSCRIPT_EXPIRATION" envDefault:"60"` // minutos
		TranscriptMaxLength  int64  `env:"TRANSCRIPT_MAX_LENGTH" envDefault:"50"`
	} `envPrefix:"REDIS_"`
	RabbitMQ struct {
		DSN            string `env:"DSN"` // vazio desativa as notificações
		PublishTimeout int    `env:"PUBLISH_TIMEOUT" envDefault:"10"`
	} `envPrefix:"RABBITMQ_"`
	Email struct {
		NotifyTo string `env:"NOTIFY_TO"`
		SMTP     struct {
			Username    string `env:"USERNAME"`
			Password    string `env:"PASSWORD"`
			Host        string `env:"HOST"`
			Port        int    `env:"PORT" envDefault:"465"`
			DialTimeout int    `env:"DIAL_TIMEOUT" envDefault:"10"`
		} `envPrefix:"SMTP_"`
	} `envPrefix:"EMAIL_"`
	WebSocket struct {
		AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	} `envPrefix:"WEBSOCKET_"`
}

func LoadConfig() (*Config, error) {
	// o .env é opcional
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// só o primeiro erro, para o log ficar legível
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
