package catalog

import (
	"testing"
	"time"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
)

func produto(name, store, category string, price float64, views int, createdAt time.Time) models.Product {
	return models.Product{
		Name:      name,
		Store:     store,
		Category:  category,
		Price:     price,
		Views:     views,
		CreatedAt: createdAt,
		Published: true,
		Active:    true,
	}
}

func TestApplyFiltraOcultosEInativos(t *testing.T) {
	now := time.Now()
	products := []models.Product{
		produto("Tênis", "Shopee", "footwear", 99, 0, now),
		{Name: "Rascunho", Store: "Shopee", Published: false, Active: true, CreatedAt: now},
		{Name: "Esgotado", Store: "Shopee", Published: true, Active: false, CreatedAt: now},
	}

	res := Apply(products, Query{})
	if res.Total != 1 {
		t.Fatalf("total = %d, esperado 1", res.Total)
	}
	if res.Products[0].Name != "Tênis" {
		t.Errorf("produto = %q, esperado Tênis", res.Products[0].Name)
	}
}

func TestApplyFiltrosCombinados(t *testing.T) {
	now := time.Now()
	products := []models.Product{
		produto("Vestido floral", "Shein", "fashion", 79, 0, now),
		produto("Vestido longo", "Renner", "fashion", 159, 0, now),
		produto("Fone bluetooth", "Shein", "electronics", 49, 0, now),
	}

	res := Apply(products, Query{Stores: []string{"Shein"}, Categories: []string{"fashion"}})
	if res.Total != 1 {
		t.Fatalf("total = %d, esperado 1", res.Total)
	}
	if res.Products[0].Name != "Vestido floral" {
		t.Errorf("produto = %q", res.Products[0].Name)
	}

	res = Apply(products, Query{Stores: []string{"Shein", "Renner"}})
	if res.Total != 3 {
		t.Errorf("conjunto com duas lojas: total = %d, esperado 3", res.Total)
	}
}

func TestApplyBuscaPorSubstring(t *testing.T) {
	now := time.Now()
	products := []models.Product{
		produto("Tênis de corrida", "Amazon", "sports", 200, 0, now),
		produto("Relógio", "Vivara", "jewelry", 500, 0, now),
	}
	products[1].Description = "pulseira de corrida em silicone"

	res := Apply(products, Query{Search: "CORRIDA"})
	if res.Total != 2 {
		t.Fatalf("total = %d, esperado 2 (nome e descrição)", res.Total)
	}
}

func TestApplyOrdenacoes(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	products := []models.Product{
		produto("A", "Shopee", "home", 30, 5, base.Add(1*time.Hour)),
		produto("B", "Shopee", "home", 10, 50, base.Add(3*time.Hour)),
		produto("C", "Shopee", "home", 20, 0, base.Add(2*time.Hour)),
	}

	cases := []struct {
		sort  string
		first string
	}{
		{SortRecent, "B"},
		{SortPriceAsc, "B"},
		{SortPriceDesc, "A"},
		{SortViews, "B"},
		{"qualquer-coisa", "B"},
	}
	for _, tc := range cases {
		res := Apply(products, Query{Sort: tc.sort})
		if res.Products[0].Name != tc.first {
			t.Errorf("sort %q: primeiro = %q, esperado %q", tc.sort, res.Products[0].Name, tc.first)
		}
	}
}

func TestApplyOrdenacaoPorViewsZeroAusente(t *testing.T) {
	now := time.Now()
	products := []models.Product{
		produto("Sem views", "Shopee", "home", 10, 0, now),
		produto("Popular", "Shopee", "home", 10, 3, now),
	}

	res := Apply(products, Query{Sort: SortViews})
	if res.Products[0].Name != "Popular" {
		t.Errorf("primeiro = %q, esperado Popular", res.Products[0].Name)
	}
}

func TestApplyPaginacao(t *testing.T) {
	now := time.Now()
	var products []models.Product
	for i := 0; i < 25; i++ {
		products = append(products, produto("p", "Shopee", "home", 10, 0, now))
	}

	res := Apply(products, Query{Page: 3, Mobile: true})
	if res.TotalPages != 3 {
		t.Errorf("totalPages = %d, esperado 3", res.TotalPages)
	}
	if len(res.Products) != 5 {
		t.Errorf("len(page 3) = %d, esperado 5", len(res.Products))
	}

	res = Apply(products, Query{Page: 1})
	if res.TotalPages != 1 {
		t.Errorf("desktop totalPages = %d, esperado 1", res.TotalPages)
	}
	if len(res.Products) != 25 {
		t.Errorf("len(desktop page) = %d, esperado 25", len(res.Products))
	}
}

func TestApplyPaginaAlemDoFimVemVazia(t *testing.T) {
	now := time.Now()
	products := []models.Product{produto("p", "Shopee", "home", 10, 0, now)}

	res := Apply(products, Query{Page: 99, Mobile: true})
	if len(res.Products) != 0 {
		t.Errorf("len = %d, esperado página vazia", len(res.Products))
	}
	if res.Page != 99 {
		t.Errorf("page = %d, a página pedida é ecoada sem clamp", res.Page)
	}
	if res.TotalPages != 1 {
		t.Errorf("totalPages = %d, esperado 1", res.TotalPages)
	}
}
