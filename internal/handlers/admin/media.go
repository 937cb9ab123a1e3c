package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/services"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/utils"
)

// MediaHandler cuida dos uploads de mídia e do QR code de postagem.
type MediaHandler struct {
	media *services.MediaService
}

func NewMediaHandler(media *services.MediaService) *MediaHandler {
	return &MediaHandler{media: media}
}

// Upload é o POST /api/admin/media: multipart com o campo "file".
// Imagens até 10MB, vídeos até 100MB.
func (h *MediaHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Arquivo ausente no campo 'file'"})
		return
	}

	url, err := h.media.Upload(c.Request.Context(), header, "produtos")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// PostingQR devolve o PNG do QR code do código de postagem informado.
func (h *MediaHandler) PostingQR(c *gin.Context) {
	code := c.Param("codigo")
	if len(code) != 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Código de postagem inválido"})
		return
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", "256"))
	png, err := utils.GeneratePostingQRCode(code, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na geração do QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
