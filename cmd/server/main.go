package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/cache"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/cart"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/config"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/database"
	adminhandler "github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/handlers/admin"
	authhandler "github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/handlers/auth"
	bothandler "github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/handlers/botapi"
	carthandler "github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/handlers/cart"
	cataloghandler "github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/handlers/catalog"
	pushhandler "github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/handlers/push"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/middleware"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/routes"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/services"
	"github.com/Phelip-Rhuan-Site/v0-achadinhosxpress/internal/store"
)

func main() {
	config.Load()

	dbs, err := database.Connect()
	if err != nil {
		log.Fatal("❌ Falha na conexão com as bases de dados: ", err)
	}
	defer dbs.Scylla.Close()

	catalogSession, err := dbs.CatalogSession()
	if err != nil {
		log.Fatal("❌ Sessão do keyspace de catálogo indisponível: ", err)
	}
	usersSession, err := dbs.UsersSession()
	if err != nil {
		log.Fatal("❌ Sessão do keyspace de usuários indisponível: ", err)
	}

	products := store.NewScyllaProductStore(catalogSession)
	invites := store.NewScyllaInviteStore(catalogSession)
	siteConfig := store.NewScyllaConfigStore(catalogSession)
	users := store.NewScyllaUserStore(usersSession)
	tokens := store.NewScyllaTokenStore(usersSession)

	codes := services.NewPostingCodeService(products)
	media := services.NewMediaService(dbs.MinIO)
	roles := cache.NewRoleCache(dbs.Redis)
	carts := cart.NewStore(dbs.Redis)

	h := routes.Handlers{
		Catalog: cataloghandler.NewHandler(products, siteConfig, dbs.Redis),
		Cart:    carthandler.NewHandler(carts),
		Auth:    authhandler.NewHandler(users, invites),
		Bot:     bothandler.NewHandler(products, codes),
		Admin:   adminhandler.NewHandler(products, codes),
		Media:   adminhandler.NewMediaHandler(media),
		Invites: adminhandler.NewInviteHandler(invites),
		Config:  adminhandler.NewConfigHandler(siteConfig),
		Push:    pushhandler.NewHandler(tokens, dbs.Redis),

		Limiter:      middleware.NewRateLimiter(dbs.Redis),
		RequireAdmin: middleware.RequireAdmin(invites, roles),
	}

	r := gin.Default()
	routes.RegisterRoutes(r, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Achadinhos Xpress no ar na porta", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Servidor encerrado com erro: ", err)
	}
}
