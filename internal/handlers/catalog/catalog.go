package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/redis/go-redis/v9"

	catalogpipe "github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/catalog"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/pricing"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/store"
)

const (
	catalogCacheKey = "produtos:todos"
	catalogCacheTTL = 60 * time.Second
)

// Handler serve a vitrine pública.
type Handler struct {
	products store.ProductStore
	config   store.ConfigStore
	redis    *redis.Client
}

func NewHandler(products store.ProductStore, config store.ConfigStore, rdb *redis.Client) *Handler {
	return &Handler{products: products, config: config, redis: rdb}
}

// loadProducts lê o catálogo completo, com cache curto no Redis para
// aliviar as listagens da vitrine.
func (h *Handler) loadProducts(c *gin.Context) ([]models.Product, error) {
	ctx := c.Request.Context()

	if val, err := h.redis.Get(ctx, catalogCacheKey).Result(); err == nil && val != "" {
		var cached []models.Product
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
	}

	products, err := h.products.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(products); err == nil {
		h.redis.Set(ctx, catalogCacheKey, data, catalogCacheTTL)
	}
	return products, nil
}

type vitrineProduto struct {
	models.Product
	PrecoFormatado string `json:"precoFormatado"`
}

// List é o GET /api/produtos da vitrine: filtros, ordenação e paginação.
func (h *Handler) List(c *gin.Context) {
	products, err := h.loadProducts(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na listagem de produtos"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	q := catalogpipe.Query{
		Stores:     c.QueryArray("loja"),
		Categories: c.QueryArray("categoria"),
		Search:     c.Query("search"),
		Sort:       c.Query("sort"),
		Page:       page,
		Mobile:     c.Query("mobile") == "1",
	}

	res := catalogpipe.Apply(products, q)

	lang := c.DefaultQuery("lang", "pt")
	items := make([]vitrineProduto, 0, len(res.Products))
	for _, p := range res.Products {
		items = append(items, vitrineProduto{
			Product:        p,
			PrecoFormatado: pricing.Format(p.Price, lang),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   items,
		"total":      res.Total,
		"page":       res.Page,
		"totalPages": res.TotalPages,
	})
}

// Detail é o GET /api/produtos/:id. Produtos ocultos ou inativos não
// aparecem na vitrine. A visualização é contabilizada em segundo plano.
func (h *Handler) Detail(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	p, err := h.products.GetByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na busca do produto"})
		return
	}
	if !p.Published || !p.Active {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return
	}

	go func() {
		if err := h.products.IncrementViews(context.Background(), id); err != nil {
			log.Printf("⚠️  Falha no incremento de views do produto %s: %v", id, err)
		}
	}()

	lang := c.DefaultQuery("lang", "pt")
	c.JSON(http.StatusOK, vitrineProduto{
		Product:        p,
		PrecoFormatado: pricing.Format(p.Price, lang),
	})
}

// SiteConfig é o GET /api/site-config. Falha de leitura cai nos padrões
// sem devolver erro, para o site nunca quebrar por configuração.
func (h *Handler) SiteConfig(c *gin.Context) {
	cfg, err := h.config.Get(c.Request.Context())
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("⚠️  Falha na leitura da configuração do site, usando padrões: %v", err)
		}
		c.JSON(http.StatusOK, models.DefaultSiteConfig())
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// Categories expõe a tabela estática de categorias com seus campos.
func (h *Handler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Categories)
}

// Stores expõe a lista fixa de lojas parceiras.
func (h *Handler) Stores(c *gin.Context) {
	c.JSON(http.StatusOK, models.Stores)
}
