package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/services"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/store"
)

type memProductStore struct {
	products map[gocql.UUID]models.Product
}

func newMemProductStore() *memProductStore {
	return &memProductStore{products: make(map[gocql.UUID]models.Product)}
}

func (m *memProductStore) List(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *memProductStore) GetByID(ctx context.Context, id gocql.UUID) (models.Product, error) {
	if p, ok := m.products[id]; ok {
		return p, nil
	}
	return models.Product{}, store.ErrNotFound
}

func (m *memProductStore) GetBySKU(ctx context.Context, sku string) (models.Product, error) {
	for _, p := range m.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return models.Product{}, store.ErrNotFound
}

func (m *memProductStore) GetByPostingCode(ctx context.Context, code string) (models.Product, error) {
	for _, p := range m.products {
		if p.CodigoPostagem == code {
			return p, nil
		}
	}
	return models.Product{}, store.ErrNotFound
}

func (m *memProductStore) Create(ctx context.Context, p models.Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *memProductStore) Update(ctx context.Context, p models.Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *memProductStore) Delete(ctx context.Context, id gocql.UUID) error {
	delete(m.products, id)
	return nil
}

func (m *memProductStore) IncrementViews(ctx context.Context, id gocql.UUID) error {
	return nil
}

func setup(t *testing.T) (*gin.Engine, *memProductStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products := newMemProductStore()
	h := NewHandler(products, services.NewPostingCodeService(products))

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("email", "adm@achadinhos.com") })
	r.POST("/produtos", h.Create)
	r.POST("/produtos/:id/publicar", h.TogglePublished)
	r.POST("/produtos/:id/estoque", h.AdjustStock)
	return r, products
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateExigeCamposDaCategoria(t *testing.T) {
	r, _ := setup(t)

	// Categoria fashion sem material nem gender.
	w := post(r, "/produtos",
		`{"name":"Vestido","price":79.9,"store":"Shein","category":"fashion","characteristics":{"brand":"Shein","size":"M","color":"Azul"}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400: %s", w.Code, w.Body.String())
	}
	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	msg, _ := body["error"].(string)
	if !strings.Contains(msg, "Material Principal") || !strings.Contains(msg, "Gênero") {
		t.Errorf("mensagem = %q, deve listar os rótulos ausentes", msg)
	}
}

func TestCreateEntraComoRascunho(t *testing.T) {
	r, products := setup(t)

	w := post(r, "/produtos",
		`{"name":"Vestido","price":79.9,"store":"Shein","category":"fashion","characteristics":{"brand":"Shein","size":"M","color":"Azul","material":"Algodão","gender":"Feminino"},"published":true}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, esperado 201: %s", w.Code, w.Body.String())
	}

	if len(products.products) != 1 {
		t.Fatalf("produtos = %d", len(products.products))
	}
	for _, p := range products.products {
		if p.Published {
			t.Errorf("produto novo entra como rascunho mesmo se o corpo pedir published")
		}
		if len(p.CodigoPostagem) != 8 {
			t.Errorf("codigoPostagem = %q, esperado 8 dígitos", p.CodigoPostagem)
		}
		if p.CreatedBy != "adm@achadinhos.com" {
			t.Errorf("createdBy = %q", p.CreatedBy)
		}
	}
}

func TestCreateRejeitaLojaForaDaLista(t *testing.T) {
	r, _ := setup(t)

	w := post(r, "/produtos",
		`{"name":"Item","price":10,"store":"Loja Fantasma","category":"categoria-livre"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400", w.Code)
	}
}

func TestTogglePublished(t *testing.T) {
	r, products := setup(t)

	id := gocql.TimeUUID()
	products.products[id] = models.Product{ID: id, Name: "X", Published: false}

	w := post(r, "/produtos/"+id.String()+"/publicar", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if !products.products[id].Published {
		t.Errorf("toggle deve publicar o rascunho")
	}
}

func TestAdjustStockComPisoEmZero(t *testing.T) {
	r, products := setup(t)

	id := gocql.TimeUUID()
	products.products[id] = models.Product{ID: id, Name: "X", Stock: 3}

	w := post(r, "/produtos/"+id.String()+"/estoque", `{"change":-10}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if got := products.products[id].Stock; got != 0 {
		t.Errorf("stock = %d, esperado piso em 0", got)
	}

	post(r, "/produtos/"+id.String()+"/estoque", `{"change":5}`)
	if got := products.products[id].Stock; got != 5 {
		t.Errorf("stock = %d, esperado 5", got)
	}
}
