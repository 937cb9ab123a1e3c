package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/cart"
)

// Handler expõe o carrinho por sessão. A sessão é identificada pelo
// header X-Session-ID, gerado e guardado pelo cliente.
type Handler struct {
	carts *cart.Store
}

func NewHandler(carts *cart.Store) *Handler {
	return &Handler{carts: carts}
}

func sessionID(c *gin.Context) string {
	return c.GetHeader("X-Session-ID")
}

func (h *Handler) load(c *gin.Context) (*cart.Cart, string, bool) {
	sid := sessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Header X-Session-ID obrigatório"})
		return nil, "", false
	}
	ct, err := h.carts.Get(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na leitura do carrinho"})
		return nil, "", false
	}
	return ct, sid, true
}

func (h *Handler) save(c *gin.Context, sid string, ct *cart.Cart) bool {
	if err := h.carts.Save(c.Request.Context(), sid, ct); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na gravação do carrinho"})
		return false
	}
	return true
}

func respond(c *gin.Context, ct *cart.Cart) {
	c.JSON(http.StatusOK, gin.H{
		"items": ct.Items,
		"total": ct.Total(),
		"count": ct.Count(),
	})
}

// Get devolve o carrinho da sessão.
func (h *Handler) Get(c *gin.Context) {
	ct, _, ok := h.load(c)
	if !ok {
		return
	}
	respond(c, ct)
}

// Add insere (ou mescla) um item no carrinho.
func (h *Handler) Add(c *gin.Context) {
	var item cart.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item inválido"})
		return
	}
	if item.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId obrigatório"})
		return
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	ct, sid, ok := h.load(c)
	if !ok {
		return
	}
	ct.Add(item)
	if !h.save(c, sid, ct) {
		return
	}
	respond(c, ct)
}

// UpdateQuantity troca a quantidade de um item; zero ou negativo remove.
func (h *Handler) UpdateQuantity(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId obrigatório"})
		return
	}

	ct, sid, ok := h.load(c)
	if !ok {
		return
	}
	ct.UpdateQuantity(input.ProductID, input.Quantity)
	if !h.save(c, sid, ct) {
		return
	}
	respond(c, ct)
}

// Remove tira um item do carrinho.
func (h *Handler) Remove(c *gin.Context) {
	productID := c.Param("productId")

	ct, sid, ok := h.load(c)
	if !ok {
		return
	}
	ct.Remove(productID)
	if !h.save(c, sid, ct) {
		return
	}
	respond(c, ct)
}

// Clear esvazia o carrinho da sessão.
func (h *Handler) Clear(c *gin.Context) {
	sid := sessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Header X-Session-ID obrigatório"})
		return
	}
	if err := h.carts.Clear(c.Request.Context(), sid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na limpeza do carrinho"})
		return
	}
	respond(c, &cart.Cart{})
}

// ClearStore remove do carrinho todos os itens de uma loja.
func (h *Handler) ClearStore(c *gin.Context) {
	store := c.Param("store")

	ct, sid, ok := h.load(c)
	if !ok {
		return
	}
	ct.ClearStore(store)
	if !h.save(c, sid, ct) {
		return
	}
	respond(c, ct)
}

// Grouped devolve o carrinho agrupado por loja, na ordem de inserção,
// para o checkout por loja parceira.
func (h *Handler) Grouped(c *gin.Context) {
	ct, _, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"groups": ct.GroupByStore(),
		"total":  ct.Total(),
	})
}
