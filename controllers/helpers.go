package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"postboard/middleware"
	"postboard/repository"
	"postboard/utils"
)

// bindJSON разбирает тело запроса; ошибки типа поля превращаются в 400 с именем поля
func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return utils.CreateError(http.StatusBadRequest, invalidTypeMessage(typeErr.Field))
		}
		return utils.CreateError(http.StatusBadRequest, "Invalid request body")
	}
	return nil
}

func invalidTypeMessage(field string) string {
	switch {
	case field == "title" || field == "content":
		return "Invalid title or content type"
	case field == "category":
		return "Category should be string"
	case strings.HasPrefix(field, "tags"):
		return "Tags should be array of strings"
	default:
		return "Invalid type for " + field
	}
}

func currentUser(c *gin.Context) (uint, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.Error(utils.CreateError(http.StatusUnauthorized, "Unauthorized"))
	}
	return id, ok
}

// storeError переводит ошибки репозитория в ответы клиенту
func storeError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.Error(utils.CreateError(http.StatusNotFound, notFound))
	case errors.Is(err, repository.ErrForbidden):
		c.Error(utils.CreateError(http.StatusForbidden, "Forbidden"))
	case errors.Is(err, repository.ErrCategoryNotFound):
		c.Error(utils.CreateError(http.StatusBadRequest, "Category not found"))
	case errors.Is(err, repository.ErrUnknownAuthor):
		c.Error(utils.CreateError(http.StatusUnauthorized, "User not found"))
	default:
		c.Error(err)
	}
}

func badRequest(c *gin.Context, message string) {
	c.Error(utils.CreateError(http.StatusBadRequest, message))
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}

// blankTag: тег из одних пробелов после нормализации стал бы пустым именем
func blankTag(tags []string) bool {
	for _, t := range tags {
		if strings.TrimSpace(t) == "" {
			return true
		}
	}
	return false
}
