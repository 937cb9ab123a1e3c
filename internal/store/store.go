package store

import (
	"context"
	"errors"

	"github.com/gocql/gocql"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
)

// ErrNotFound é devolvido quando o registro pedido não existe.
var ErrNotFound = errors.New("registro não encontrado")

// ProductStore persiste o catálogo de produtos.
type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id gocql.UUID) (models.Product, error)
	GetBySKU(ctx context.Context, sku string) (models.Product, error)
	GetByPostingCode(ctx context.Context, code string) (models.Product, error)
	Create(ctx context.Context, p models.Product) error
	Update(ctx context.Context, p models.Product) error
	Delete(ctx context.Context, id gocql.UUID) error
	IncrementViews(ctx context.Context, id gocql.UUID) error
}

// InviteStore persiste os convites administrativos, chaveados por e-mail.
type InviteStore interface {
	Get(ctx context.Context, email string) (models.AdminInvite, error)
	List(ctx context.Context) ([]models.AdminInvite, error)
	Put(ctx context.Context, invite models.AdminInvite) error
	Delete(ctx context.Context, email string) error
}

// ConfigStore persiste o documento singleton de configuração do site.
type ConfigStore interface {
	Get(ctx context.Context) (models.SiteConfig, error)
	Put(ctx context.Context, cfg models.SiteConfig) error
}

// UserStore persiste as contas de acesso, chaveadas por e-mail.
type UserStore interface {
	Get(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, u models.User) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// TokenStore persiste os tokens de push dos dispositivos.
type TokenStore interface {
	Put(ctx context.Context, t models.PushToken) error
	ListAll(ctx context.Context) ([]models.PushToken, error)
	DeleteByToken(ctx context.Context, token string) error
}
