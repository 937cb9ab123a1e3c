package store

import (
	"context"
	"fmt"
	"time"

	"github.com/gocql/gocql"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
)

// ScyllaTokenStore implementa TokenStore sobre a tabela push_tokens.
type ScyllaTokenStore struct {
	session *gocql.Session
}

func NewScyllaTokenStore(session *gocql.Session) *ScyllaTokenStore {
	return &ScyllaTokenStore{session: session}
}

func (s *ScyllaTokenStore) Put(ctx context.Context, t models.PushToken) error {
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = time.Now()
	}
	err := s.session.Query(
		"INSERT INTO push_tokens (token, email, platform, updated_at) VALUES (?, ?, ?, ?)",
		t.Token, t.Email, t.Platform, t.UpdatedAt).
		WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("erro no registro do token de push: %w", err)
	}
	return nil
}

func (s *ScyllaTokenStore) ListAll(ctx context.Context) ([]models.PushToken, error) {
	iter := s.session.Query("SELECT token, email, platform, updated_at FROM push_tokens").
		WithContext(ctx).Iter()

	var tokens []models.PushToken
	var t models.PushToken
	for iter.Scan(&t.Token, &t.Email, &t.Platform, &t.UpdatedAt) {
		tokens = append(tokens, t)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("erro na listagem de tokens de push: %w", err)
	}
	return tokens, nil
}

func (s *ScyllaTokenStore) DeleteByToken(ctx context.Context, token string) error {
	if err := s.session.Query("DELETE FROM push_tokens WHERE token = ?", token).
		WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("erro na remoção do token de push: %w", err)
	}
	return nil
}
