package botapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/services"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/store"
)

// Handler é a API de integração do bot de ofertas. Todas as respostas
// seguem o envelope {ok, mensagem}.
type Handler struct {
	products store.ProductStore
	codes    *services.PostingCodeService
}

func NewHandler(products store.ProductStore, codes *services.PostingCodeService) *Handler {
	return &Handler{products: products, codes: codes}
}

// produtoInput é o corpo aceito pelo bot. Os campos legados titulo e
// afiliado_url são normalizados aqui, uma única vez, na borda; o resto
// do código só conhece nome e url_afiliado.
type produtoInput struct {
	SKU         string   `json:"sku"`
	Nome        string   `json:"nome"`
	Titulo      string   `json:"titulo"` // alias legado de nome
	Preco       float64  `json:"preco"`
	Loja        string   `json:"loja"`
	Categoria   string   `json:"categoria"`
	URLAfiliado string   `json:"url_afiliado"`
	AfiliadoURL string   `json:"afiliado_url"` // alias legado de url_afiliado
	Descricao   string   `json:"descricao"`
	Imagens     []string `json:"imagens"`
}

func (in *produtoInput) normalize() {
	if in.Nome == "" {
		in.Nome = in.Titulo
	}
	if in.URLAfiliado == "" {
		in.URLAfiliado = in.AfiliadoURL
	}
	in.SKU = strings.TrimSpace(in.SKU)
}

func (in *produtoInput) missingFields() []string {
	var missing []string
	if in.SKU == "" {
		missing = append(missing, "sku")
	}
	if in.Nome == "" {
		missing = append(missing, "nome")
	}
	if in.Preco <= 0 {
		missing = append(missing, "preco")
	}
	if in.URLAfiliado == "" {
		missing = append(missing, "url_afiliado")
	}
	return missing
}

func respond(c *gin.Context, status int, ok bool, mensagem string, extra gin.H) {
	body := gin.H{"ok": ok, "mensagem": mensagem}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

// Create é o POST /api/produtos. SKU duplicado devolve 409;
// o produto entra publicado e ativo, já com código de postagem.
func (h *Handler) Create(c *gin.Context) {
	var in produtoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond(c, http.StatusBadRequest, false, "Corpo da requisição inválido.", nil)
		return
	}
	in.normalize()

	if missing := in.missingFields(); len(missing) > 0 {
		respond(c, http.StatusBadRequest, false,
			fmt.Sprintf("Campos obrigatórios ausentes: %s.", strings.Join(missing, ", ")), nil)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.products.GetBySKU(ctx, in.SKU); err == nil {
		respond(c, http.StatusConflict, false,
			fmt.Sprintf("Produto com SKU %s já existe.", in.SKU), nil)
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		respond(c, http.StatusInternalServerError, false, "Erro na verificação do SKU.", nil)
		return
	}

	code, err := h.codes.Generate(ctx)
	if err != nil {
		respond(c, http.StatusInternalServerError, false, "Erro na geração do código de postagem.", nil)
		return
	}

	now := time.Now()
	p := models.Product{
		ID:             gocql.TimeUUID(),
		SKU:            in.SKU,
		Name:           in.Nome,
		Price:          in.Preco,
		Store:          in.Loja,
		Category:       in.Categoria,
		URL:            in.URLAfiliado,
		Description:    in.Descricao,
		Images:         in.Imagens,
		Published:      true,
		Active:         true,
		CodigoPostagem: code,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      "bot",
	}
	if err := h.products.Create(ctx, p); err != nil {
		respond(c, http.StatusInternalServerError, false, "Erro na criação do produto.", nil)
		return
	}

	respond(c, http.StatusCreated, true, "Produto criado com sucesso.", gin.H{
		"id":             p.ID.String(),
		"sku":            p.SKU,
		"codigoPostagem": p.CodigoPostagem,
	})
}

// Get é o GET /api/produtos?sku=...: checagem de existência e status.
// SKU ausente do catálogo responde 200 com existe=false, não 404.
func (h *Handler) Get(c *gin.Context) {
	sku := strings.TrimSpace(c.Query("sku"))
	if sku == "" {
		respond(c, http.StatusBadRequest, false, "Parâmetro sku obrigatório.", nil)
		return
	}

	p, err := h.products.GetBySKU(c.Request.Context(), sku)
	if errors.Is(err, store.ErrNotFound) {
		respond(c, http.StatusOK, true, "Produto não cadastrado.", gin.H{"existe": false})
		return
	}
	if err != nil {
		respond(c, http.StatusInternalServerError, false, "Erro na busca do produto.", nil)
		return
	}

	status := "inativo"
	if p.Active {
		status = "ativo"
	}
	respond(c, http.StatusOK, true, "Produto encontrado.", gin.H{
		"existe": true,
		"preco":  p.Price,
		"status": status,
	})
}

// Update é o PUT /api/produtos/:sku. Só os campos presentes no corpo
// são alterados; o SKU não muda.
func (h *Handler) Update(c *gin.Context) {
	sku := c.Param("sku")

	ctx := c.Request.Context()
	p, err := h.products.GetBySKU(ctx, sku)
	if errors.Is(err, store.ErrNotFound) {
		respond(c, http.StatusNotFound, false,
			fmt.Sprintf("Produto com SKU %s não encontrado.", sku), nil)
		return
	}
	if err != nil {
		respond(c, http.StatusInternalServerError, false, "Erro na busca do produto.", nil)
		return
	}

	var in produtoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond(c, http.StatusBadRequest, false, "Corpo da requisição inválido.", nil)
		return
	}
	in.normalize()

	if in.Nome != "" {
		p.Name = in.Nome
	}
	if in.Preco > 0 {
		p.Price = in.Preco
	}
	if in.Loja != "" {
		p.Store = in.Loja
	}
	if in.Categoria != "" {
		p.Category = in.Categoria
	}
	if in.URLAfiliado != "" {
		p.URL = in.URLAfiliado
	}
	if in.Descricao != "" {
		p.Description = in.Descricao
	}
	if len(in.Imagens) > 0 {
		p.Images = in.Imagens
	}

	if err := h.products.Update(ctx, p); err != nil {
		respond(c, http.StatusInternalServerError, false, "Erro na atualização do produto.", nil)
		return
	}

	respond(c, http.StatusOK, true, "Produto atualizado com sucesso.", nil)
}

// Block é o POST /api/produtos/bloquear: despublica e desativa o produto
// do SKU informado no corpo, sem apagar o cadastro.
func (h *Handler) Block(c *gin.Context) {
	var input struct {
		SKU string `json:"sku"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.SKU) == "" {
		respond(c, http.StatusBadRequest, false, "Campo sku obrigatório.", nil)
		return
	}
	sku := strings.TrimSpace(input.SKU)

	ctx := c.Request.Context()
	p, err := h.products.GetBySKU(ctx, sku)
	if errors.Is(err, store.ErrNotFound) {
		respond(c, http.StatusNotFound, false,
			fmt.Sprintf("Produto com SKU %s não encontrado.", sku), nil)
		return
	}
	if err != nil {
		respond(c, http.StatusInternalServerError, false, "Erro na busca do produto.", nil)
		return
	}

	p.Published = false
	p.Active = false
	if err := h.products.Update(ctx, p); err != nil {
		respond(c, http.StatusInternalServerError, false, "Erro no bloqueio do produto.", nil)
		return
	}

	respond(c, http.StatusOK, true, "Produto bloqueado com sucesso.", nil)
}
