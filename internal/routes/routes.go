package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	adminhandler "github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/handlers/admin"
	authhandler "github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/handlers/auth"
	bothandler "github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/handlers/botapi"
	carthandler "github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/handlers/cart"
	cataloghandler "github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/handlers/catalog"
	pushhandler "github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/handlers/push"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/middleware"
)

// Handlers agrupa todos os handlers já construídos para o registro de rotas.
type Handlers struct {
	Catalog *cataloghandler.Handler
	Cart    *carthandler.Handler
	Auth    *authhandler.Handler
	Bot     *bothandler.Handler
	Admin   *adminhandler.Handler
	Media   *adminhandler.MediaHandler
	Invites *adminhandler.InviteHandler
	Config  *adminhandler.ConfigHandler
	Push    *pushhandler.Handler

	Limiter      *middleware.RateLimiter
	RequireAdmin gin.HandlerFunc
}

// RegisterRoutes monta a árvore de rotas do serviço.
func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "X-Session-ID"},
	}))

	api := r.Group("/api", h.Limiter.API())

	// Vitrine pública
	api.GET("/catalogo/produtos", h.Limiter.Search(), h.Catalog.List)
	api.GET("/catalogo/produtos/:id", h.Catalog.Detail)
	api.GET("/categorias", h.Catalog.Categories)
	api.GET("/lojas", h.Catalog.Stores)
	api.GET("/site-config", h.Catalog.SiteConfig)

	// Carrinho por sessão
	carrinho := api.Group("/carrinho")
	carrinho.GET("", h.Cart.Get)
	carrinho.GET("/agrupado", h.Cart.Grouped)
	carrinho.POST("/itens", h.Cart.Add)
	carrinho.PUT("/itens", h.Cart.UpdateQuantity)
	carrinho.DELETE("/itens/:productId", h.Cart.Remove)
	carrinho.DELETE("/lojas/:store", h.Cart.ClearStore)
	carrinho.DELETE("", h.Cart.Clear)

	// Autenticação
	auth := api.Group("/auth")
	auth.POST("/cadastro", h.Auth.Register)
	auth.POST("/login", h.Limiter.Login(), h.Auth.Login)
	auth.POST("/esqueci-senha", h.Auth.ForgotPassword)
	auth.POST("/redefinir-senha", h.Auth.ResetPassword)

	// Notificações
	api.GET("/push/stream", h.Push.Stream)
	pushAuth := api.Group("/push", middleware.AuthRequired())
	pushAuth.POST("/token", h.Push.RegisterToken)
	pushAuth.DELETE("/token/:token", h.Push.UnregisterToken)

	// API do bot de ofertas (segredo compartilhado)
	bot := api.Group("/produtos", h.Limiter.Bot(), middleware.BotAuthRequired())
	bot.POST("", h.Bot.Create)
	bot.GET("", h.Bot.Get)
	bot.PUT("/:sku", h.Bot.Update)
	bot.POST("/bloquear", h.Bot.Block)

	// Painel administrativo
	admin := api.Group("/admin", middleware.AuthRequired(), h.RequireAdmin)
	admin.GET("/produtos", h.Admin.List)
	admin.POST("/produtos", h.Admin.Create)
	admin.PUT("/produtos/:id", h.Admin.Update)
	admin.DELETE("/produtos/:id", h.Admin.Delete)
	admin.POST("/produtos/:id/publicar", h.Admin.TogglePublished)
	admin.POST("/produtos/:id/ativar", h.Admin.ToggleActive)
	admin.POST("/produtos/:id/estoque", h.Admin.AdjustStock)
	admin.POST("/media", h.Media.Upload)
	admin.GET("/postagem/:codigo/qrcode", h.Media.PostingQR)
	admin.GET("/convites", h.Invites.List)
	admin.POST("/convites", h.Invites.Create)
	admin.DELETE("/convites/:email", h.Invites.Delete)
	admin.GET("/site-config", h.Config.Get)
	admin.PUT("/site-config", h.Config.Put)
	admin.POST("/notificacoes", h.Push.Broadcast)
}
