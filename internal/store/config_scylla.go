package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gocql/gocql"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
)

const siteConfigID = "config"

// ScyllaConfigStore guarda a configuração do site numa linha única
// da tabela site_config, serializada como JSON.
type ScyllaConfigStore struct {
	session *gocql.Session
}

func NewScyllaConfigStore(session *gocql.Session) *ScyllaConfigStore {
	return &ScyllaConfigStore{session: session}
}

func (s *ScyllaConfigStore) Get(ctx context.Context) (models.SiteConfig, error) {
	var data []byte
	err := s.session.Query("SELECT payload FROM site_config WHERE id = ?", siteConfigID).
		WithContext(ctx).Scan(&data)
	if err == gocql.ErrNotFound {
		return models.SiteConfig{}, ErrNotFound
	}
	if err != nil {
		return models.SiteConfig{}, fmt.Errorf("erro na leitura da configuração do site: %w", err)
	}

	var cfg models.SiteConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return models.SiteConfig{}, fmt.Errorf("configuração do site ilegível: %w", err)
	}
	return cfg, nil
}

func (s *ScyllaConfigStore) Put(ctx context.Context, cfg models.SiteConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("erro na serialização da configuração: %w", err)
	}
	if err := s.session.Query("INSERT INTO site_config (id, payload) VALUES (?, ?)", siteConfigID, data).
		WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("erro na gravação da configuração do site: %w", err)
	}
	return nil
}
