package botapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/middleware"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/services"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/store"
)

type memProductStore struct {
	products map[string]models.Product // por SKU
}

func newMemProductStore() *memProductStore {
	return &memProductStore{products: make(map[string]models.Product)}
}

func (m *memProductStore) List(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *memProductStore) GetByID(ctx context.Context, id gocql.UUID) (models.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, store.ErrNotFound
}

func (m *memProductStore) GetBySKU(ctx context.Context, sku string) (models.Product, error) {
	if p, ok := m.products[sku]; ok {
		return p, nil
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
	m.products[p.SKU] = p
	return nil
}

func (m *memProductStore) Update(ctx context.Context, p models.Product) error {
	m.products[p.SKU] = p
	return nil
}

func (m *memProductStore) Delete(ctx context.Context, id gocql.UUID) error {
	for sku, p := range m.products {
		if p.ID == id {
			delete(m.products, sku)
			return nil
		}
	}
	return nil
}

func (m *memProductStore) IncrementViews(ctx context.Context, id gocql.UUID) error {
	return nil
}

const testSecret = "segredo-do-bot"

func setupRouter(t *testing.T) (*gin.Engine, *memProductStore) {
	t.Helper()
	t.Setenv("BOT_API_SECRET", testSecret)
	gin.SetMode(gin.TestMode)

	products := newMemProductStore()
	h := NewHandler(products, services.NewPostingCodeService(products))

	r := gin.New()
	grupo := r.Group("/api/produtos", middleware.BotAuthRequired())
	grupo.POST("", h.Create)
	grupo.GET("", h.Get)
	grupo.PUT("/:sku", h.Update)
	grupo.POST("/bloquear", h.Block)
	return r, products
}

func doRequest(r *gin.Engine, method, path, body string, auth bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.Header.Set("Authorization", "Bearer "+testSecret)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("resposta não é JSON: %v", err)
	}
	return body
}

func TestBotSemTokenDevolve401(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/api/produtos?sku=TV001", "", false)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, esperado 401", w.Code)
	}
	body := decode(t, w)
	if body["ok"] != false {
		t.Errorf("ok = %v, esperado false", body["ok"])
	}
	if body["mensagem"] != "Não autorizado. Token inválido ou ausente." {
		t.Errorf("mensagem = %q", body["mensagem"])
	}
}

func TestBotCriaProduto(t *testing.T) {
	r, products := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/produtos",
		`{"sku":"TV001","nome":"Smart TV 50","preco":1999.9,"loja":"Amazon","categoria":"electronics","url_afiliado":"https://amzn.to/x"}`, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, esperado 201: %s", w.Code, w.Body.String())
	}

	body := decode(t, w)
	if body["ok"] != true {
		t.Errorf("ok = %v", body["ok"])
	}
	code, _ := body["codigoPostagem"].(string)
	if len(code) != 8 {
		t.Errorf("codigoPostagem = %q, esperado 8 dígitos", code)
	}

	p := products.products["TV001"]
	if !p.Published || !p.Active {
		t.Errorf("produto do bot deve entrar publicado e ativo")
	}
	if p.CreatedBy != "bot" {
		t.Errorf("createdBy = %q, esperado bot", p.CreatedBy)
	}
}

func TestBotNormalizaAliasesLegados(t *testing.T) {
	r, products := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/produtos",
		`{"sku":"AL001","titulo":"Fone Bluetooth","preco":49.9,"loja":"AliExpress","categoria":"electronics","afiliado_url":"https://s.click.aliexpress.com/y"}`, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, esperado 201: %s", w.Code, w.Body.String())
	}

	p := products.products["AL001"]
	if p.Name != "Fone Bluetooth" {
		t.Errorf("name = %q, titulo legado deve virar nome", p.Name)
	}
	if p.URL != "https://s.click.aliexpress.com/y" {
		t.Errorf("url = %q, afiliado_url legado deve virar url_afiliado", p.URL)
	}
}

func TestBotCamposObrigatoriosAusentes(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/produtos", `{"sku":"X1","preco":10}`, true)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400", w.Code)
	}
	body := decode(t, w)
	msg, _ := body["mensagem"].(string)
	for _, campo := range []string{"nome", "url_afiliado"} {
		if !strings.Contains(msg, campo) {
			t.Errorf("mensagem %q não cita o campo %s", msg, campo)
		}
	}
}

func TestBotSKUDuplicadoDevolve409(t *testing.T) {
	r, _ := setupRouter(t)

	payload := `{"sku":"TV001","nome":"Smart TV 50","preco":1999.9,"loja":"Amazon","categoria":"electronics","url_afiliado":"https://amzn.to/x"}`
	if w := doRequest(r, http.MethodPost, "/api/produtos", payload, true); w.Code != http.StatusCreated {
		t.Fatalf("primeira criação: status = %d", w.Code)
	}

	w := doRequest(r, http.MethodPost, "/api/produtos", payload, true)
	if w.Code != http.StatusConflict {
		t.Fatalf("segunda criação: status = %d, esperado 409", w.Code)
	}
	body := decode(t, w)
	if msg, _ := body["mensagem"].(string); !strings.Contains(msg, "TV001") {
		t.Errorf("mensagem = %q, deve citar o SKU", msg)
	}
}

func TestBotChecagemDeExistencia(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/api/produtos?sku=NADA", "", true)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200 mesmo para SKU desconhecido", w.Code)
	}
	body := decode(t, w)
	if body["existe"] != false {
		t.Errorf("existe = %v, esperado false", body["existe"])
	}

	doRequest(r, http.MethodPost, "/api/produtos",
		`{"sku":"TV001","nome":"Smart TV 50","preco":1999.9,"url_afiliado":"https://amzn.to/x"}`, true)

	w = doRequest(r, http.MethodGet, "/api/produtos?sku=TV001", "", true)
	body = decode(t, w)
	if body["existe"] != true {
		t.Fatalf("existe = %v, esperado true", body["existe"])
	}
	if body["preco"] != 1999.9 {
		t.Errorf("preco = %v, esperado 1999.9", body["preco"])
	}
	if body["status"] != "ativo" {
		t.Errorf("status = %v, esperado ativo", body["status"])
	}
}

func TestBotAtualizaSomenteCamposPresentes(t *testing.T) {
	r, products := setupRouter(t)

	doRequest(r, http.MethodPost, "/api/produtos",
		`{"sku":"TV001","nome":"Smart TV 50","preco":1999.9,"loja":"Amazon","categoria":"electronics","url_afiliado":"https://amzn.to/x"}`, true)

	w := doRequest(r, http.MethodPut, "/api/produtos/TV001", `{"preco":1499.0}`, true)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", w.Code, w.Body.String())
	}

	p := products.products["TV001"]
	if p.Price != 1499.0 {
		t.Errorf("price = %v, esperado 1499", p.Price)
	}
	if p.Name != "Smart TV 50" {
		t.Errorf("name = %q, campos ausentes não mudam", p.Name)
	}
}

func TestBotBloqueiaProduto(t *testing.T) {
	r, products := setupRouter(t)

	doRequest(r, http.MethodPost, "/api/produtos",
		`{"sku":"TV001","nome":"Smart TV 50","preco":1999.9,"loja":"Amazon","categoria":"electronics","url_afiliado":"https://amzn.to/x"}`, true)

	w := doRequest(r, http.MethodPost, "/api/produtos/bloquear", `{"sku":"TV001"}`, true)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", w.Code)
	}

	p := products.products["TV001"]
	if p.Active || p.Published {
		t.Errorf("bloqueio deve despublicar e desativar (published=%v active=%v)", p.Published, p.Active)
	}

	w = doRequest(r, http.MethodPost, "/api/produtos/bloquear", `{}`, true)
	if w.Code != http.StatusBadRequest {
		t.Errorf("sem sku: status = %d, esperado 400", w.Code)
	}

	w = doRequest(r, http.MethodPost, "/api/produtos/bloquear", `{"sku":"NADA"}`, true)
	if w.Code != http.StatusNotFound {
		t.Errorf("sku inexistente: status = %d, esperado 404", w.Code)
	}
}
