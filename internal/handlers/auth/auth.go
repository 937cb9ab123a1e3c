package auth

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/store"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/utils"
)

// Handler cuida de cadastro, login e redefinição de senha.
type Handler struct {
	users   store.UserStore
	invites store.InviteStore
}

func NewHandler(users store.UserStore, invites store.InviteStore) *Handler {
	return &Handler{users: users, invites: invites}
}

// Register é o POST /api/auth/cadastro.
func (h *Handler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil ||
		input.Name == "" || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nome, e-mail e senha são obrigatórios"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := h.users.Get(c.Request.Context(), email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "E-mail já cadastrado"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na verificação do e-mail"})
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro no processamento da senha"})
		return
	}

	u := models.User{
		Email:        email,
		Name:         input.Name,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := h.users.Create(c.Request.Context(), u); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na criação da conta"})
		return
	}

	token, err := utils.GenerateJWT(u.Email, u.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na emissão do token"})
		return
	}

	log.Println("✅ Nova conta criada:", email)
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": u})
}

// Login é o POST /api/auth/login. O papel vem do convite do e-mail,
// quando existir; a falha dessa consulta não impede o login.
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "E-mail e senha são obrigatórios"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	u, err := h.users.Get(c.Request.Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "E-mail ou senha incorretos"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na busca da conta"})
		return
	}

	okPass, err := utils.VerifyPassword(input.Password, u.PasswordHash)
	if err != nil || !okPass {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "E-mail ou senha incorretos"})
		return
	}

	token, err := utils.GenerateJWT(u.Email, u.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na emissão do token"})
		return
	}

	role := ""
	if invite, err := h.invites.Get(c.Request.Context(), email); err == nil {
		role = invite.Role
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("⚠️  Consulta de papel falhou no login de %s: %v", email, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  u,
		"role":  role,
		"admin": models.IsAdminRole(role),
	})
}

// ForgotPassword é o POST /api/auth/esqueci-senha. A resposta é sempre
// 200 para não revelar quais e-mails existem.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "E-mail obrigatório"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := h.users.Get(c.Request.Context(), email); err == nil {
		token, err := utils.GenerateJWT(email, "")
		if err == nil {
			link := fmt.Sprintf("%s/redefinir-senha?token=%s", os.Getenv("SITE_URL"), token)
			go func() {
				if err := utils.SendPasswordResetEmail(email, link); err != nil {
					log.Printf("⚠️  Falha no envio do e-mail de redefinição para %s: %v", email, err)
				}
			}()
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Se o e-mail existir, você receberá as instruções"})
}

// ResetPassword é o POST /api/auth/redefinir-senha.
func (h *Handler) ResetPassword(c *gin.Context) {
	var input struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Token == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token e nova senha são obrigatórios"})
		return
	}

	email, err := utils.ParseJWT(input.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido ou expirado"})
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro no processamento da senha"})
		return
	}
	if err := h.users.UpdatePassword(c.Request.Context(), email, hash); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na troca de senha"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Senha redefinida com sucesso"})
}
