package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/restaurante-digital/agente-ia/backend/internal/config"
	"github.com/restaurante-digital/agente-ia/backend/internal/handler"
	"github.com/restaurante-digital/agente-ia/backend/internal/repository"

	// o fuso do agente não pode depender do tzdata da máquina
	_ "time/tzdata"
)

func main() {
	/**********************************************
	 * Criar logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * Carregar configuração
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("não foi possível carregar a configuração", "error", err)
		return
	}

	/**********************************************
	 * Conectar ao redis (opcional)
	 **********************************************/
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password:     cfg.Redis.Password,
			DB:           0,
			ReadTimeout:  time.Duration(cfg.Redis.OperationTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Redis.OperationTimeout) * time.Second,
		})
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Redis.ConnectTimeout)*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			logger.Error("não foi possível conectar ao redis", "error", err)
			return
		}
	} else {
		logger.Info("REDIS_HOST vazio, histórico de pré-visualização desativado")
	}

	/**********************************************
	 * Conectar ao rabbitmq (opcional)
	 **********************************************/
	var ch *amqp.Channel
	if cfg.RabbitMQ.DSN != "" {
		conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
		if err != nil {
			logger.Error("não foi possível conectar ao rabbitmq", "error", err)
			return
		}
		defer conn.Close()

		ch, err = conn.Channel()
		if err != nil {
			logger.Error("não foi possível abrir o canal", "error", err)
			return
		}
		defer ch.Close()

		_, err = ch.QueueDeclare(
			"email_queue",
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			logger.Error("não foi possível declarar a fila", "error", err)
			return
		}
	} else {
		logger.Info("RABBITMQ_DSN vazio, notificações por e-mail desativadas")
	}

	/**********************************************
	 * Criar repository
	 **********************************************/
	repo := repository.NewRepository(cfg, rdb)

	/**********************************************
	 * Criar handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, repo, ch)
	if err != nil {
		logger.Error("não foi possível criar o handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * Iniciar servidor HTTP
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("iniciando servidor...", "port", cfg.Server.Port, "config_file", cfg.Agent.ConfigFile)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("não foi possível iniciar o servidor", slog.String("error", err.Error()))
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	logger.Info("encerrando servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("não foi possível encerrar o servidor", slog.String("error", err.Error()))
		return
	}

	logger.Info("servidor encerrado")
}
