package store

import (
	"context"
	"fmt"

	"github.com/gocql/gocql"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
)

// ScyllaInviteStore implementa InviteStore sobre a tabela admin_invites.
type ScyllaInviteStore struct {
	session *gocql.Session
}

func NewScyllaInviteStore(session *gocql.Session) *ScyllaInviteStore {
	return &ScyllaInviteStore{session: session}
}

func (s *ScyllaInviteStore) Get(ctx context.Context, email string) (models.AdminInvite, error) {
	var inv models.AdminInvite
	err := s.session.Query(
		"SELECT email, role, created_at, created_by FROM admin_invites WHERE email = ?", email).
		WithContext(ctx).Scan(&inv.Email, &inv.Role, &inv.CreatedAt, &inv.CreatedBy)
	if err == gocql.ErrNotFound {
		return models.AdminInvite{}, ErrNotFound
	}
	if err != nil {
		return models.AdminInvite{}, fmt.Errorf("erro na busca do convite de %s: %w", email, err)
	}
	return inv, nil
}

func (s *ScyllaInviteStore) List(ctx context.Context) ([]models.AdminInvite, error) {
	iter := s.session.Query("SELECT email, role, created_at, created_by FROM admin_invites").
		WithContext(ctx).Iter()

	var invites []models.AdminInvite
	var inv models.AdminInvite
	for iter.Scan(&inv.Email, &inv.Role, &inv.CreatedAt, &inv.CreatedBy) {
		invites = append(invites, inv)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("erro na listagem de convites: %w", err)
	}
	return invites, nil
}

func (s *ScyllaInviteStore) Put(ctx context.Context, invite models.AdminInvite) error {
	err := s.session.Query(
		"INSERT INTO admin_invites (email, role, created_at, created_by) VALUES (?, ?, ?, ?)",
		invite.Email, invite.Role, invite.CreatedAt, invite.CreatedBy).
		WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("erro na gravação do convite de %s: %w", invite.Email, err)
	}
	return nil
}

func (s *ScyllaInviteStore) Delete(ctx context.Context, email string) error {
	if err := s.session.Query("DELETE FROM admin_invites WHERE email = ?", email).
		WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("erro na remoção do convite de %s: %w", email, err)
	}
	return nil
}
