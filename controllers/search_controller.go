package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"postboard/search"
	"postboard/services"
	"postboard/utils"
)

type SearchController struct {
	Posts *services.PostService
}

func NewSearchController(ps *services.PostService) *SearchController {
	return &SearchController{Posts: ps}
}

// GET /search/posts?q=lego&limit=20
func (sc *SearchController) SearchPosts(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		badRequest(c, "q is required")
		return
	}
	_, limit, err := utils.ParsePagination("", c.Query("limit"))
	if err != nil {
		badRequest(c, "Invalid type for page or limit")
		return
	}
	docs, err := sc.Posts.Search(c.Request.Context(), q, limit)
	if errors.Is(err, search.ErrDisabled) {
		c.Error(utils.CreateError(http.StatusServiceUnavailable, "Search is not configured"))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": docs})
}
