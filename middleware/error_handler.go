package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"postboard/utils"
)

// ErrorHandler отдаёт последнюю ошибку из c.Errors как {status, message}.
// Всё, что не *utils.HTTPError, логируется и превращается в 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var httpErr *utils.HTTPError
		if errors.As(err, &httpErr) {
			c.JSON(httpErr.Status, httpErr)
			return
		}

		utils.LogError(err, fmt.Sprintf("%s %s request_id=%s", c.Request.Method, c.Request.URL.Path, RequestID(c)))
		c.JSON(http.StatusInternalServerError, utils.CreateError(http.StatusInternalServerError, "Internal server error"))
	}
}
