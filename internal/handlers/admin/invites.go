package admin

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/store"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/utils"
)

// InviteHandler gerencia os convites administrativos.
type InviteHandler struct {
	invites store.InviteStore
}

func NewInviteHandler(invites store.InviteStore) *InviteHandler {
	return &InviteHandler{invites: invites}
}

// List devolve todos os convites.
func (h *InviteHandler) List(c *gin.Context) {
	invites, err := h.invites.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na listagem de convites"})
		return
	}
	c.JSON(http.StatusOK, invites)
}

// Create registra o convite e avisa o convidado por e-mail.
// Convite repetido para o mesmo e-mail devolve 409.
func (h *InviteHandler) Create(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "E-mail e papel são obrigatórios"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	ctx := c.Request.Context()
	if _, err := h.invites.Get(ctx, email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Este e-mail já tem um convite"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na verificação do convite"})
		return
	}

	invitedBy := c.GetString("email")
	invite := models.AdminInvite{
		Email:     email,
		Role:      input.Role,
		CreatedAt: time.Now(),
		CreatedBy: invitedBy,
	}
	if err := h.invites.Put(ctx, invite); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na criação do convite"})
		return
	}

	go func() {
		if err := utils.SendInviteEmail(email, invite.Role, invitedBy); err != nil {
			log.Printf("⚠️  Falha no envio do e-mail de convite para %s: %v", email, err)
		}
	}()

	c.JSON(http.StatusCreated, invite)
}

// Delete revoga o convite; o e-mail perde o acesso administrativo.
func (h *InviteHandler) Delete(c *gin.Context) {
	email := strings.ToLower(c.Param("email"))
	if err := h.invites.Delete(c.Request.Context(), email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na revogação do convite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Convite revogado"})
}
