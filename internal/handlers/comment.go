package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crudboard/internal/services"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// List returns a page of the post's comments.
func (h *CommentHandler) List(c *gin.Context) {
	postID, err := pathID(c, "id")
	if err != nil {
		Error(c, err)
		return
	}

	page, err := h.comments.List(c.Request.Context(), postID, pageRequest(c))
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Create attaches a comment to the post. 201 with the projection, or 404
// when the parent post is absent.
func (h *CommentHandler) Create(c *gin.Context) {
	postID, err := pathID(c, "id")
	if err != nil {
		Error(c, err)
		return
	}

	var req services.CommentCreateRequest
	if err := bindJSON(c, &req); err != nil {
		Error(c, err)
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), postID, req)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// Update mutates a comment addressed by its (postId, commentId) compound
// key. A mismatched post id reads as 404, same as absence.
func (h *CommentHandler) Update(c *gin.Context) {
	postID, err := pathID(c, "id")
	if err != nil {
		Error(c, err)
		return
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		Error(c, err)
		return
	}

	var req services.CommentUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		Error(c, err)
		return
	}

	comment, err := h.comments.Update(c.Request.Context(), postID, commentID, req)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// Delete removes a comment by compound key. 204 or 404.
func (h *CommentHandler) Delete(c *gin.Context) {
	postID, err := pathID(c, "id")
	if err != nil {
		Error(c, err)
		return
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		Error(c, err)
		return
	}

	if err := h.comments.Delete(c.Request.Context(), postID, commentID); err != nil {
		Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
