package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const cartTTL = 30 * 24 * time.Hour

// Store persiste carrinhos no Redis como um blob JSON por sessão.
type Store struct {
	redis *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{redis: rdb}
}

func cartKey(sessionID string) string {
	return "carrinho:" + sessionID
}

// Get carrega o carrinho da sessão. Chave ausente ou blob corrompido
// resulta em carrinho vazio; corrupção é registrada e engolida para a
// sessão não ficar travada num carrinho ilegível.
func (s *Store) Get(ctx context.Context, sessionID string) (*Cart, error) {
	data, err := s.redis.Get(ctx, cartKey(sessionID)).Bytes()
	if err == redis.Nil {
		return &Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro na leitura do carrinho: %w", err)
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		log.Printf("⚠️  Carrinho corrompido para a sessão %s, descartado: %v", sessionID, err)
		return &Cart{}, nil
	}
	return &c, nil
}

// Save grava o carrinho e renova o TTL de 30 dias.
func (s *Store) Save(ctx context.Context, sessionID string, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("erro na serialização do carrinho: %w", err)
	}
	if err := s.redis.Set(ctx, cartKey(sessionID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("erro na gravação do carrinho: %w", err)
	}
	return nil
}

// Clear apaga o carrinho da sessão.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("erro na limpeza do carrinho: %w", err)
	}
	return nil
}
