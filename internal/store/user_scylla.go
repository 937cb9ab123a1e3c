package store

import (
	"context"
	"fmt"

	"github.com/gocql/gocql"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
)

// ScyllaUserStore implementa UserStore sobre a tabela users do keyspace
// de usuários.
type ScyllaUserStore struct {
	session *gocql.Session
}

func NewScyllaUserStore(session *gocql.Session) *ScyllaUserStore {
	return &ScyllaUserStore{session: session}
}

func (s *ScyllaUserStore) Get(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.session.Query(
		"SELECT email, name, password_hash, created_at FROM users WHERE email = ?", email).
		WithContext(ctx).Scan(&u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err == gocql.ErrNotFound {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("erro na busca do usuário %s: %w", email, err)
	}
	return u, nil
}

func (s *ScyllaUserStore) Create(ctx context.Context, u models.User) error {
	err := s.session.Query(
		"INSERT INTO users (email, name, password_hash, created_at) VALUES (?, ?, ?, ?)",
		u.Email, u.Name, u.PasswordHash, u.CreatedAt).
		WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("erro na criação do usuário %s: %w", u.Email, err)
	}
	return nil
}

func (s *ScyllaUserStore) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	err := s.session.Query("UPDATE users SET password_hash = ? WHERE email = ?", passwordHash, email).
		WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("erro na troca de senha de %s: %w", email, err)
	}
	return nil
}
