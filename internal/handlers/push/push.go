package push

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/models"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/store"
)

const notifyChannel = "notificacoes"

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Aberto a todas as origens; as notificações são públicas.
		return true
	},
}

// Handler cuida do registro de dispositivos e do canal de notificações
// em tempo real (Redis pubsub → WebSocket).
type Handler struct {
	tokens store.TokenStore
	redis  *redis.Client
}

func NewHandler(tokens store.TokenStore, rdb *redis.Client) *Handler {
	return &Handler{tokens: tokens, redis: rdb}
}

// RegisterToken é o POST /api/push/token: associa o dispositivo ao usuário.
func (h *Handler) RegisterToken(c *gin.Context) {
	var input struct {
		Token    string `json:"token"`
		Platform string `json:"platform"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token obrigatório"})
		return
	}

	t := models.PushToken{
		Email:     c.GetString("email"),
		Token:     input.Token,
		Platform:  input.Platform,
		UpdatedAt: time.Now(),
	}
	if err := h.tokens.Put(c.Request.Context(), t); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro no registro do token"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Token registrado"})
}

// UnregisterToken é o DELETE /api/push/token/:token.
func (h *Handler) UnregisterToken(c *gin.Context) {
	if err := h.tokens.DeleteByToken(c.Request.Context(), c.Param("token")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na remoção do token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token removido"})
}

// Broadcast é o POST /api/admin/notificacoes: publica a notificação no
// canal Redis, de onde as conexões WebSocket abertas a recebem.
func (h *Handler) Broadcast(c *gin.Context) {
	var input struct {
		Title string `json:"title"`
		Body  string `json:"body"`
		URL   string `json:"url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Título obrigatório"})
		return
	}

	payload, err := json.Marshal(gin.H{
		"type":  "notification",
		"title": input.Title,
		"body":  input.Body,
		"url":   input.URL,
		"at":    time.Now().Format(time.RFC3339),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na montagem da notificação"})
		return
	}

	if err := h.redis.Publish(c.Request.Context(), notifyChannel, payload).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na publicação da notificação"})
		return
	}

	tokens, err := h.tokens.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("⚠️  Falha na contagem de dispositivos: %v", err)
	}

	log.Printf("📣 Notificação publicada: %s (%d dispositivos registrados)", input.Title, len(tokens))
	c.JSON(http.StatusOK, gin.H{"message": "Notificação publicada", "devices": len(tokens)})
}

// Stream é o GET /api/push/stream: mantém um WebSocket aberto e repassa
// as notificações publicadas no canal Redis.
func (h *Handler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erro no upgrade do WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	pubsub := h.redis.Subscribe(ctx, notifyChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()

	conn.WriteJSON(gin.H{"type": "connected", "message": "Canal de notificações ativo"})

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		case <-time.After(30 * time.Second):
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
