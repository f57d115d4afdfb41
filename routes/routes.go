package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"postboard/middleware"
	"postboard/repository"
	"postboard/search"
	"postboard/utils"
)

type Deps struct {
	Store       repository.Store
	Indexer     search.Indexer
	Blacklist   utils.TokenBlacklist
	JWTSecret   string
	CORSOrigins []string
}

// NewRouter создаёт gin.Engine и регистрирует все маршруты
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestIDMiddleware(),
		gin.Logger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler(),
	)

	// CORS middleware ДО роутов
	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
		}))
	}

	auth := middleware.JWTAuthMiddleware(d.JWTSecret, d.Blacklist)

	SetupHealthRoutes(r, d.Store)
	SetupAuthRoutes(r, auth, d.JWTSecret, d.Blacklist)
	SetupPostRoutes(r, auth, d.Store, d.Indexer)

	return r
}
