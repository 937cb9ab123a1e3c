package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/store"
)

// ConfigHandler edita o documento singleton de configuração do site.
type ConfigHandler struct {
	config store.ConfigStore
}

func NewConfigHandler(config store.ConfigStore) *ConfigHandler {
	return &ConfigHandler{config: config}
}

// Get devolve a configuração atual, com os padrões quando ainda não há linha.
func (h *ConfigHandler) Get(c *gin.Context) {
	cfg, err := h.config.Get(c.Request.Context())
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, models.DefaultSiteConfig())
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na leitura da configuração"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// Put substitui a configuração inteira.
func (h *ConfigHandler) Put(c *gin.Context) {
	var cfg models.SiteConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
		return
	}
	if cfg.SiteName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "siteName obrigatório"})
		return
	}
	if err := h.config.Put(c.Request.Context(), cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na gravação da configuração"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}
