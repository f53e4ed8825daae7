package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the view stubs. Template rendering is out of scope;
// each page answers with its static identifier.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Home(c *gin.Context) {
	c.String(http.StatusOK, "home")
}

func (h *PageHandler) PostList(c *gin.Context) {
	c.String(http.StatusOK, "posts/list")
}

// PostDetail also answers the new-post page: gin's router cannot register
// the static /posts/new next to /posts/:id, so "new" arrives here.
func (h *PageHandler) PostDetail(c *gin.Context) {
	if c.Param("id") == "new" {
		c.String(http.StatusOK, "posts/new")
		return
	}
	c.String(http.StatusOK, "posts/detail")
}

func (h *PageHandler) PostEdit(c *gin.Context) {
	c.String(http.StatusOK, "posts/edit")
}

func (h *PageHandler) MePage(c *gin.Context) {
	c.String(http.StatusOK, "auth/me")
}
