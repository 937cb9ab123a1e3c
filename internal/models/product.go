package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Product é uma oferta do catálogo. published controla a visibilidade na
// vitrine e active a disponibilidade de venda; a vitrine só exibe o produto
// quando os dois são true.
type Product struct {
	ID             gocql.UUID        `json:"id"`
	SKU            string            `json:"sku"`
	EANGTIN        string            `json:"ean_gtin,omitempty"`
	Name           string            `json:"name"`
	Marca          string            `json:"marca,omitempty"`
	Price          float64           `json:"price"`
	PrecoDe        *float64          `json:"preco_de,omitempty"`
	PrecoPor       *float64          `json:"preco_por,omitempty"`
	Store          string            `json:"store"`
	Category       string            `json:"category"`
	Subcategoria   string            `json:"subcategoria,omitempty"`
	URL            string            `json:"url"`
	Description    string            `json:"description"`
	Images         []string          `json:"images"`
	Video          string            `json:"video,omitempty"`
	Peso           string            `json:"peso,omitempty"`
	Dimensoes      string            `json:"dimensoes,omitempty"`
	Garantia       string            `json:"garantia,omitempty"`
	Characteristics map[string]string `json:"characteristics"`
	Atributos      map[string]string `json:"atributos_especificos,omitempty"`
	Published      bool              `json:"published"`
	Active         bool              `json:"active"`
	Stock          int               `json:"stock"`
	Views          int               `json:"views"`
	CodigoPostagem string            `json:"codigoPostagem,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
	CreatedBy      string            `json:"createdBy"`
}
