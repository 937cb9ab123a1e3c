package store

import (
	"context"
	"fmt"
	"time"

	"github.com/gocql/gocql"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
)

const productColumns = `id, sku, ean_gtin, name, marca, price, preco_de, preco_por,
	store, category, subcategoria, url, description, images, video, peso,
	dimensoes, garantia, characteristics, atributos, published, active,
	stock, views, codigo_postagem, created_at, updated_at, created_by`

// ScyllaProductStore implementa ProductStore sobre a tabela products
// do keyspace de catálogo.
type ScyllaProductStore struct {
	session *gocql.Session
}

func NewScyllaProductStore(session *gocql.Session) *ScyllaProductStore {
	return &ScyllaProductStore{session: session}
}

func productDest(p *models.Product) []interface{} {
	return []interface{}{
		&p.ID, &p.SKU, &p.EANGTIN, &p.Name, &p.Marca, &p.Price, &p.PrecoDe,
		&p.PrecoPor, &p.Store, &p.Category, &p.Subcategoria, &p.URL,
		&p.Description, &p.Images, &p.Video, &p.Peso, &p.Dimensoes,
		&p.Garantia, &p.Characteristics, &p.Atributos, &p.Published,
		&p.Active, &p.Stock, &p.Views, &p.CodigoPostagem, &p.CreatedAt,
		&p.UpdatedAt, &p.CreatedBy,
	}
}

func productValues(p models.Product) []interface{} {
	return []interface{}{
		p.ID, p.SKU, p.EANGTIN, p.Name, p.Marca, p.Price, p.PrecoDe,
		p.PrecoPor, p.Store, p.Category, p.Subcategoria, p.URL,
		p.Description, p.Images, p.Video, p.Peso, p.Dimensoes,
		p.Garantia, p.Characteristics, p.Atributos, p.Published,
		p.Active, p.Stock, p.Views, p.CodigoPostagem, p.CreatedAt,
		p.UpdatedAt, p.CreatedBy,
	}
}

func (s *ScyllaProductStore) List(ctx context.Context) ([]models.Product, error) {
	iter := s.session.Query("SELECT " + productColumns + " FROM products").
		WithContext(ctx).Iter()

	var products []models.Product
	var p models.Product
	for iter.Scan(productDest(&p)...) {
		products = append(products, p)
		p = models.Product{}
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("erro na listagem de produtos: %w", err)
	}
	return products, nil
}

func (s *ScyllaProductStore) GetByID(ctx context.Context, id gocql.UUID) (models.Product, error) {
	var p models.Product
	err := s.session.Query("SELECT "+productColumns+" FROM products WHERE id = ?", id).
		WithContext(ctx).Scan(productDest(&p)...)
	if err == gocql.ErrNotFound {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("erro na busca do produto %s: %w", id, err)
	}
	return p, nil
}

func (s *ScyllaProductStore) GetBySKU(ctx context.Context, sku string) (models.Product, error) {
	var p models.Product
	err := s.session.Query("SELECT "+productColumns+" FROM products WHERE sku = ? ALLOW FILTERING", sku).
		WithContext(ctx).Scan(productDest(&p)...)
	if err == gocql.ErrNotFound {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("erro na busca do produto por SKU %s: %w", sku, err)
	}
	return p, nil
}

func (s *ScyllaProductStore) GetByPostingCode(ctx context.Context, code string) (models.Product, error) {
	var p models.Product
	err := s.session.Query("SELECT "+productColumns+" FROM products WHERE codigo_postagem = ? ALLOW FILTERING", code).
		WithContext(ctx).Scan(productDest(&p)...)
	if err == gocql.ErrNotFound {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("erro na busca do produto pelo código %s: %w", code, err)
	}
	return p, nil
}

func (s *ScyllaProductStore) Create(ctx context.Context, p models.Product) error {
	query := "INSERT INTO products (" + productColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	if err := s.session.Query(query, productValues(p)...).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("erro na criação do produto: %w", err)
	}
	return nil
}

func (s *ScyllaProductStore) Update(ctx context.Context, p models.Product) error {
	p.UpdatedAt = time.Now()
	query := `UPDATE products SET sku = ?, ean_gtin = ?, name = ?, marca = ?,
		price = ?, preco_de = ?, preco_por = ?, store = ?, category = ?,
		subcategoria = ?, url = ?, description = ?, images = ?, video = ?,
		peso = ?, dimensoes = ?, garantia = ?, characteristics = ?,
		atributos = ?, published = ?, active = ?, stock = ?, views = ?,
		codigo_postagem = ?, created_at = ?, updated_at = ?, created_by = ?
		WHERE id = ?`
	err := s.session.Query(query,
		p.SKU, p.EANGTIN, p.Name, p.Marca, p.Price, p.PrecoDe, p.PrecoPor,
		p.Store, p.Category, p.Subcategoria, p.URL, p.Description, p.Images,
		p.Video, p.Peso, p.Dimensoes, p.Garantia, p.Characteristics,
		p.Atributos, p.Published, p.Active, p.Stock, p.Views,
		p.CodigoPostagem, p.CreatedAt, p.UpdatedAt, p.CreatedBy, p.ID,
	).WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("erro na atualização do produto %s: %w", p.ID, err)
	}
	return nil
}

func (s *ScyllaProductStore) Delete(ctx context.Context, id gocql.UUID) error {
	if err := s.session.Query("DELETE FROM products WHERE id = ?", id).
		WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("erro na remoção do produto %s: %w", id, err)
	}
	return nil
}

// IncrementViews faz read-modify-write do contador de visualizações.
// Incrementos concorrentes podem se perder; visualizações toleram isso.
func (s *ScyllaProductStore) IncrementViews(ctx context.Context, id gocql.UUID) error {
	var views int
	err := s.session.Query("SELECT views FROM products WHERE id = ?", id).
		WithContext(ctx).Scan(&views)
	if err == gocql.ErrNotFound {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("erro na leitura de views do produto %s: %w", id, err)
	}
	if err := s.session.Query("UPDATE products SET views = ? WHERE id = ?", views+1, id).
		WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("erro no incremento de views do produto %s: %w", id, err)
	}
	return nil
}
