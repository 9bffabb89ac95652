package main

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/restaurante-digital/agente-ia/backend/internal/config"
	"github.com/restaurante-digital/agente-ia/backend/internal/domain"
	"github.com/wneessen/go-mail"
)

type mailTemplate struct {
	file    string
	subject string
}

const templatesDir = "./templates"

var mailTemplates = map[string]mailTemplate{
	domain.MailTypeConfigUpdated: {
		file:    "config_updated_email.html",
		subject: "Agente IA - Configuração atualizada",
	},
}

func main() {
	/**********************************************
	 * Criar logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * Carregar configuração
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("não foi possível carregar a configuração", slog.String("error", err.Error()))
		return
	}
	if cfg.RabbitMQ.DSN == "" {
		logger.Error("RABBITMQ_DSN é obrigatório para o worker de e-mail")
		return
	}

	/**********************************************
	 * Criar cliente de e-mail
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("não foi possível criar o cliente de e-mail", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("não foi possível conectar ao servidor SMTP", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * Conectar ao RabbitMQ
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("não foi possível conectar ao RabbitMQ", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("não foi possível abrir o canal", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"email_queue", // nome
		true,          // durável
		false,         // não apagar sem consumidores
		false,         // não exclusiva
		false,         // aguardar confirmação
		nil,
	)
	if err != nil {
		logger.Error("não foi possível declarar a fila", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",    // nome do consumidor gerado pelo RabbitMQ
		false, // ack manual
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("não foi possível consumir a fila", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Error("canal de mensagens fechado")
					return
				}
				logger.Info("mensagem recebida", slog.String("message", string(msg.Body)))

				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("não foi possível decodificar a mensagem", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				m, err := buildMessage(cfg.Email.SMTP.Username, &mailMessage, templatesDir)
				if err != nil {
					logger.Error("não foi possível montar o e-mail", slog.String("type", mailMessage.Type), slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				if err := client.DialAndSend(m); err != nil {
					logger.Error("falha no envio do e-mail", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // devolve para a fila
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("aguardando mensagens... (CTRL+C para sair)")
	<-sigChan

	slog.Info("encerrando o worker de e-mail...")
	cancel()
	wg.Wait()
	slog.Info("worker de e-mail encerrado")
}

func buildMessage(from string, mailMessage *domain.MailMessage, dir string) (*mail.Msg, error) {
	tmplInfo, ok := mailTemplates[mailMessage.Type]
	if !ok {
		return nil, &unsupportedTypeError{mailType: mailMessage.Type}
	}

	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, err
	}
	if err := m.To(mailMessage.To); err != nil {
		return nil, err
	}

	tmpl, err := template.ParseFiles(filepath.Join(dir, tmplInfo.file))
	if err != nil {
		return nil, err
	}
	if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
		return nil, err
	}
	m.Subject(tmplInfo.subject)

	return m, nil
}

type unsupportedTypeError struct {
	mailType string
}

func (e *unsupportedTypeError) Error() string {
	return "tipo de e-mail não suportado: " + e.mailType
}
