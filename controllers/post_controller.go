package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postboard/services"
	"postboard/utils"
)

type PostController struct {
	Posts *services.PostService
}

func NewPostController(ps *services.PostService) *PostController {
	return &PostController{Posts: ps}
}

type createPostRequest struct {
	Title    *string  `json:"title"`
	Content  *string  `json:"content"`
	Category *string  `json:"category"`
	Tags     []string `json:"tags"`
}

type updatePostRequest struct {
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	Tags    []string `json:"tags"`
}

// GET /posts/:ref
// Числовой ref - это id поста, иначе имя категории для списка.
func (pc *PostController) Show(c *gin.Context) {
	ref := c.Param("ref")
	if utils.IsNumeric(ref) {
		pc.get(c, ref)
		return
	}
	pc.list(c, ref)
}

// Query: ?page=1&limit=25
func (pc *PostController) list(c *gin.Context, category string) {
	if category == "" {
		badRequest(c, "Category to be provided")
		return
	}
	page, limit, err := utils.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		badRequest(c, "Invalid type for page or limit")
		return
	}

	posts, err := pc.Posts.ListByCategory(c.Request.Context(), category, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (pc *PostController) get(c *gin.Context, rawID string) {
	id, err := utils.ParseID(rawID)
	if err != nil {
		badRequest(c, "Invalid id")
		return
	}
	post, err := pc.Posts.GetPostByID(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// POST /posts
func (pc *PostController) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req createPostRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}
	switch {
	case !nonEmpty(req.Title):
		badRequest(c, "Title to be provided")
		return
	case !nonEmpty(req.Content):
		badRequest(c, "Content to be provided")
		return
	case !nonEmpty(req.Category):
		badRequest(c, "Category to be provided")
		return
	case req.Tags == nil:
		badRequest(c, "Tags should be array")
		return
	case blankTag(req.Tags):
		badRequest(c, "Tag should be non-empty string")
		return
	}

	post, err := pc.Posts.Create(c.Request.Context(), userID, services.CreatePostInput{
		Title:    *req.Title,
		Content:  *req.Content,
		Category: *req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		storeError(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// PUT /posts/:id
func (pc *PostController) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid id")
		return
	}
	var req updatePostRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}
	switch {
	case !nonEmpty(req.Title):
		badRequest(c, "Title to be provided")
		return
	case !nonEmpty(req.Content):
		badRequest(c, "Content to be provided")
		return
	case req.Tags == nil:
		badRequest(c, "Tags should be array")
		return
	case blankTag(req.Tags):
		badRequest(c, "Tag should be non-empty string")
		return
	}

	post, err := pc.Posts.Update(c.Request.Context(), userID, id, services.UpdatePostInput{
		Title:   *req.Title,
		Content: *req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		storeError(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// DELETE /posts/:id
func (pc *PostController) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid id")
		return
	}
	if err := pc.Posts.Delete(c.Request.Context(), userID, id); err != nil {
		storeError(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delete post"})
}
