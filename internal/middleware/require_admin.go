package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/cache"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/store"
)

const roleLookupTimeout = 5 * time.Second

// RequireAdmin resolve o papel do usuário pelos convites e bloqueia quem
// não for admin. A consulta tem timeout de 5s; em lentidão ou falha o
// papel em cache é usado como fallback para não derrubar o painel.
func RequireAdmin(invites store.InviteStore, roles *cache.RoleCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token ausente"})
			c.Abort()
			return
		}

		role, ok := lookupRole(c.Request.Context(), invites, roles, email)
		if !ok {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Verificação de permissão indisponível. Tente novamente."})
			c.Abort()
			return
		}

		if !models.IsAdminRole(role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Acesso restrito aos administradores"})
			c.Abort()
			return
		}

		c.Set("role", role)
		c.Next()
	}
}

func lookupRole(ctx context.Context, invites store.InviteStore, roles *cache.RoleCache, email string) (string, bool) {
	lookupCtx, cancel := context.WithTimeout(ctx, roleLookupTimeout)
	defer cancel()

	invite, err := invites.Get(lookupCtx, email)
	switch {
	case err == nil:
		roles.Set(ctx, email, invite.Role)
		return invite.Role, true
	case errors.Is(err, store.ErrNotFound):
		// Sem convite não há papel; não é indisponibilidade.
		roles.Set(ctx, email, "")
		return "", true
	default:
		log.Printf("⚠️  Consulta de papel falhou para %s, tentando cache: %v", email, err)
		if cached, ok := roles.Get(ctx, email); ok {
			return cached, true
		}
		return "", false
	}
}
