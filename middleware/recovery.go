package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postboard/utils"
)

func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.LogPanic(recovered, c.Request.Method+" "+c.Request.URL.Path+" request_id="+RequestID(c))

		c.AbortWithStatusJSON(http.StatusInternalServerError, utils.CreateError(http.StatusInternalServerError, "Internal server error"))
	})
}
