package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postboard/middleware"
	"postboard/utils"
)

type AuthController struct {
	Secret    string
	Blacklist utils.TokenBlacklist
}

func NewAuthController(secret string, blacklist utils.TokenBlacklist) *AuthController {
	return &AuthController{Secret: secret, Blacklist: blacklist}
}

// POST /auth/logout
// Токен попадает в чёрный список до истечения срока действия.
func (ac *AuthController) Logout(c *gin.Context) {
	if ac.Blacklist == nil {
		c.Error(utils.CreateError(http.StatusServiceUnavailable, "Token revocation is not configured"))
		return
	}
	token := middleware.Token(c)
	claims, err := utils.ParseJWT(token, ac.Secret)
	if err != nil {
		c.Error(utils.CreateError(http.StatusBadRequest, "Invalid token"))
		return
	}
	ttl, ok := utils.TokenExpiry(claims)
	if !ok {
		c.Error(utils.CreateError(http.StatusBadRequest, "Invalid token exp"))
		return
	}
	if err := ac.Blacklist.Revoke(c.Request.Context(), token, ttl); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
