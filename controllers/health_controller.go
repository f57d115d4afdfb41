package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"postboard/repository"
	"postboard/utils"
)

type HealthController struct {
	Store repository.Store
}

func NewHealthController(store repository.Store) *HealthController {
	return &HealthController{Store: store}
}

func (hc *HealthController) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now()})
}

func (hc *HealthController) DB(c *gin.Context) {
	if err := hc.Store.Ping(c.Request.Context()); err != nil {
		// текст ошибки драйвера клиенту не отдаём
		utils.LogError(err, "db health")
		c.JSON(http.StatusServiceUnavailable, gin.H{"db_ok": false, "error": "Database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"db_ok": true})
}
