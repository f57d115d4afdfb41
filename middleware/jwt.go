package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"postboard/utils"
)

const (
	userIDKey = "user_id"
	tokenKey  = "token"
)

// JWTAuthMiddleware проверяет Bearer-токен и кладёт id пользователя в контекст.
// blacklist может быть nil, тогда отзыв токенов не проверяется.
func JWTAuthMiddleware(secret string, blacklist utils.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abort(c, http.StatusUnauthorized, "Missing or invalid Authorization header")
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		if blacklist != nil {
			revoked, err := blacklist.IsRevoked(c.Request.Context(), token)
			if err != nil {
				c.Error(err)
				c.Abort()
				return
			}
			if revoked {
				abort(c, http.StatusUnauthorized, "Token has been revoked")
				return
			}
		}

		claims, err := utils.ParseJWT(token, secret)
		if err != nil {
			abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		userID, ok := claims["user_id"].(float64)
		if !ok || userID < 1 {
			abort(c, http.StatusUnauthorized, "Invalid token payload")
			return
		}
		c.Set(userIDKey, uint(userID))
		c.Set(tokenKey, token)
		c.Next()
	}
}

// UserID - id аутентифицированного пользователя текущего запроса
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func Token(c *gin.Context) string {
	return c.GetString(tokenKey)
}

func abort(c *gin.Context, status int, message string) {
	c.Error(utils.CreateError(status, message))
	c.Abort()
}
