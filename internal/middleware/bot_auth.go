package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// BotAuthRequired protege a API do bot com o segredo compartilhado
// BOT_API_SECRET. A resposta de falha segue o envelope {ok, mensagem}.
func BotAuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := os.Getenv("BOT_API_SECRET")

		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if secret == "" || len(parts) != 2 || parts[0] != "Bearer" ||
			subtle.ConstantTimeCompare([]byte(parts[1]), []byte(secret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"ok":       false,
				"mensagem": "Não autorizado. Token inválido ou ausente.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
