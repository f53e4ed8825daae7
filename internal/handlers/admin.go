package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crudboard/internal/services"
)

// AdminHandler serves the admin-only surface. The role gate runs in
// middleware; handlers assume an ADMIN capability is already present.
type AdminHandler struct {
	auth *services.AuthService
}

func NewAdminHandler(auth *services.AuthService) *AdminHandler {
	return &AdminHandler{auth: auth}
}

// ListUsers returns a page of registered users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, err := h.auth.ListUsers(c.Request.Context(), pageRequest(c))
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
