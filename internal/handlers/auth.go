package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crudboard/internal/apperror"
	"crudboard/internal/middleware"
	"crudboard/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup registers a new user. 201 with an empty body on success.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req services.SignupRequest
	if err := bindJSON(c, &req); err != nil {
		Error(c, err)
		return
	}

	if _, err := h.auth.Signup(c.Request.Context(), req); err != nil {
		Error(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// Login checks the credentials and binds the identity to the session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		Error(c, err)
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		Error(c, err)
		return
	}

	if err := middleware.BindSession(c, user); err != nil {
		Error(c, apperror.Internal(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Logout invalidates the session. Always 204, even without a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.ClearSession(c); err != nil {
		Error(c, apperror.Internal(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Me returns the session owner. A request with no session, or a session
// whose user no longer exists, gets 401.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		Error(c, apperror.Unauthorized())
		return
	}

	me, err := h.auth.Me(c.Request.Context(), userID)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, me)
}
