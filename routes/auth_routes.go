package routes

import (
	"github.com/gin-gonic/gin"

	"postboard/controllers"
	"postboard/repository"
	"postboard/utils"
)

func SetupAuthRoutes(r *gin.Engine, auth gin.HandlerFunc, secret string, blacklist utils.TokenBlacklist) {
	authController := controllers.NewAuthController(secret, blacklist)
	r.POST("/auth/logout", auth, authController.Logout)
}

func SetupHealthRoutes(r *gin.Engine, store repository.Store) {
	healthController := controllers.NewHealthController(store)
	r.GET("/healthz", healthController.Live)
	r.GET("/db/health", healthController.DB)
}
