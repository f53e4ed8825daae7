package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"crudboard/internal/models"
	"crudboard/internal/services"
)

type PostHandler struct {
	posts *services.PostService
}

func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// Create persists a new post. 201 with a Location header, empty body.
func (h *PostHandler) Create(c *gin.Context) {
	var req services.PostCreateRequest
	if err := bindJSON(c, &req); err != nil {
		Error(c, err)
		return
	}

	id, err := h.posts.Create(c.Request.Context(), req)
	if err != nil {
		Error(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/posts/%d", id))
	c.Status(http.StatusCreated)
}

// Get returns one post or 404.
func (h *PostHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		Error(c, err)
		return
	}

	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// List runs the keyword/date-range search with pagination.
func (h *PostHandler) List(c *gin.Context) {
	searchType, err := models.ParsePostSearchType(c.Query("type"))
	if err != nil {
		Error(c, validationFailure("type", "must be one of TITLE, CONTENT, TITLE_CONTENT"))
		return
	}
	createdFrom, err := queryTime(c, "createdFrom")
	if err != nil {
		Error(c, err)
		return
	}
	createdTo, err := queryTime(c, "createdTo")
	if err != nil {
		Error(c, err)
		return
	}

	cond := models.PostSearchCondition{
		Keyword:     c.Query("keyword"),
		Type:        searchType,
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
	}

	page, err := h.posts.List(c.Request.Context(), cond, pageRequest(c))
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Update mutates title/content. 204 or 404.
func (h *PostHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		Error(c, err)
		return
	}

	var req services.PostUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		Error(c, err)
		return
	}

	if err := h.posts.Update(c.Request.Context(), id, req); err != nil {
		Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete removes the post. 204 or 404; deleting twice stays a clean 404.
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		Error(c, err)
		return
	}

	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
