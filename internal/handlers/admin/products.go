package admin

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/catalog"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/services"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/store"
)

// Handler é o painel administrativo de produtos.
type Handler struct {
	products store.ProductStore
	codes    *services.PostingCodeService
}

func NewHandler(products store.ProductStore, codes *services.PostingCodeService) *Handler {
	return &Handler{products: products, codes: codes}
}

// List devolve o catálogo completo, incluindo rascunhos e inativos.
func (h *Handler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na listagem de produtos"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func validateProduct(p *models.Product) (string, bool) {
	if strings.TrimSpace(p.Name) == "" || p.Price <= 0 || p.Store == "" || p.Category == "" {
		return "Nome, preço, loja e categoria são obrigatórios", false
	}
	if !models.ValidStore(p.Store) {
		return fmt.Sprintf("Loja desconhecida: %s", p.Store), false
	}
	if missing := catalog.MissingRequired(p.Category, p.Characteristics); len(missing) > 0 {
		return fmt.Sprintf("Campos obrigatórios da categoria ausentes: %s", strings.Join(missing, ", ")), false
	}
	return "", true
}

// Create cadastra um produto. Entra como rascunho (published=false) até
// ser publicado explicitamente.
func (h *Handler) Create(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
		return
	}
	if msg, ok := validateProduct(&p); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	ctx := c.Request.Context()
	code, err := h.codes.Generate(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na geração do código de postagem"})
		return
	}

	now := time.Now()
	p.ID = gocql.TimeUUID()
	p.CodigoPostagem = code
	p.Published = false
	p.Active = true
	p.Views = 0
	p.CreatedAt = now
	p.UpdatedAt = now
	p.CreatedBy = c.GetString("email")

	if err := h.products.Create(ctx, p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na criação do produto"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) getByParamID(c *gin.Context) (models.Product, bool) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return models.Product{}, false
	}
	p, err := h.products.GetByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return models.Product{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na busca do produto"})
		return models.Product{}, false
	}
	return p, true
}

// Update substitui os dados editáveis do produto, mantendo id, código de
// postagem, views e autoria.
func (h *Handler) Update(c *gin.Context) {
	existing, ok := h.getByParamID(c)
	if !ok {
		return
	}

	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
		return
	}
	if msg, ok := validateProduct(&p); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	p.ID = existing.ID
	p.CodigoPostagem = existing.CodigoPostagem
	p.Views = existing.Views
	p.CreatedAt = existing.CreatedAt
	p.CreatedBy = existing.CreatedBy
	p.UpdatedAt = time.Now()

	if err := h.products.Update(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na atualização do produto"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete remove o produto definitivamente.
func (h *Handler) Delete(c *gin.Context) {
	p, ok := h.getByParamID(c)
	if !ok {
		return
	}
	if err := h.products.Delete(c.Request.Context(), p.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na remoção do produto"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produto removido"})
}

// TogglePublished alterna a visibilidade do produto na vitrine.
func (h *Handler) TogglePublished(c *gin.Context) {
	p, ok := h.getByParamID(c)
	if !ok {
		return
	}
	p.Published = !p.Published
	if err := h.products.Update(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na publicação do produto"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"published": p.Published})
}

// ToggleActive alterna a disponibilidade de venda.
func (h *Handler) ToggleActive(c *gin.Context) {
	p, ok := h.getByParamID(c)
	if !ok {
		return
	}
	p.Active = !p.Active
	if err := h.products.Update(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na ativação do produto"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": p.Active})
}

// AdjustStock aplica um delta ao estoque, com piso em zero. A leitura e
// a gravação não são atômicas; ajustes simultâneos podem se sobrepor.
func (h *Handler) AdjustStock(c *gin.Context) {
	var input struct {
		Change int `json:"change"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
		return
	}

	p, ok := h.getByParamID(c)
	if !ok {
		return
	}

	p.Stock += input.Change
	if p.Stock < 0 {
		p.Stock = 0
	}
	if err := h.products.Update(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro no ajuste de estoque"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stock": p.Stock})
}
