package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postboard/services"
	"postboard/utils"
)

type CommentController struct {
	Comments *services.CommentService
}

func NewCommentController(cs *services.CommentService) *CommentController {
	return &CommentController{Comments: cs}
}

type commentRequest struct {
	Content *string `json:"content"`
}

func (cc *CommentController) bindContent(c *gin.Context) (string, bool) {
	var req commentRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return "", false
	}
	if !nonEmpty(req.Content) {
		badRequest(c, "Content to be provided")
		return "", false
	}
	return *req.Content, true
}

// POST /posts/:id/comments
func (cc *CommentController) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	postID, err := utils.ParseID(c.Param("id"))
	if err != nil {
		badRequest(c, "Post id to be provided")
		return
	}
	content, ok := cc.bindContent(c)
	if !ok {
		return
	}

	comment, err := cc.Comments.Create(c.Request.Context(), userID, postID, content)
	if err != nil {
		storeError(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// PUT /comments/:commentId
func (cc *CommentController) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := utils.ParseID(c.Param("commentId"))
	if err != nil {
		badRequest(c, "Comment id to be provided")
		return
	}
	content, ok := cc.bindContent(c)
	if !ok {
		return
	}

	comment, err := cc.Comments.Update(c.Request.Context(), userID, id, content)
	if err != nil {
		storeError(c, err, "Comment not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// DELETE /comments/:commentId
func (cc *CommentController) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := utils.ParseID(c.Param("commentId"))
	if err != nil {
		badRequest(c, "Comment id to be provided")
		return
	}
	if err := cc.Comments.Delete(c.Request.Context(), userID, id); err != nil {
		storeError(c, err, "Comment not found")
		return
	}
	c.Status(http.StatusNoContent)
}
