package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/restaurante-digital/agente-ia/backend/internal/domain"
)

var ErrTranscriptsDisabled = errors.New("histórico de pré-visualização desativado")

func transcriptKey(sessionID string) string {
	return fmt.Sprintf("preview_%s_transcript", sessionID)
}

func (r *Repository) TranscriptsEnabled() bool {
	return r.redisClient != nil
}

// AppendTranscript guarda uma troca de mensagens da pré-visualização. A lista
// é limitada às últimas TranscriptMaxLength trocas e expira após inatividade.
func (r *Repository) AppendTranscript(sessionID string, exchange *domain.PreviewExchange) error {
	if r.redisClient == nil {
		return ErrTranscriptsDisabled
	}

	data, err := json.Marshal(exchange)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Redis.OperationTimeout)*time.Second)
	defer cancel()

	key := transcriptKey(sessionID)
	pipe := r.redisClient.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, -r.cfg.Redis.TranscriptMaxLength, -1)
	pipe.Expire(ctx, key, time.Duration(r.cfg.Redis.TranscriptExpiration)*time.Minute)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *Repository) GetTranscript(sessionID string) ([]*domain.PreviewExchange, error) {
	if r.redisClient == nil {
		return nil, ErrTranscriptsDisabled
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Redis.OperationTimeout)*time.Second)
	defer cancel()

	items, err := r.redisClient.LRange(ctx, transcriptKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	exchanges := make([]*domain.PreviewExchange, 0, len(items))
	for _, item := range items {
		exchange := &domain.PreviewExchange{}
		if err := json.Unmarshal([]byte(item), exchange); err != nil {
			return nil, err
		}
		exchanges = append(exchanges, exchange)
	}

	return exchanges, nil
}
