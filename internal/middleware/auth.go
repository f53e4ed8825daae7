// Package middleware wires the session-bound identity into the request
// lifecycle: one middleware resolves it, the gates enforce it.
package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"crudboard/internal/apperror"
	"crudboard/internal/models"
)

// Keys under which the resolved identity is exposed on the gin context.
const (
	UserIDKey   = "user_id"
	UserRoleKey = "user_role"
)

// Session attribute names. The session stores only the id and the
// role-derived capability, never the user record itself.
const (
	sessionUserID   = "user_id"
	sessionUserRole = "user_role"
)

// BindSession binds the authenticated user's identity to the session.
func BindSession(c *gin.Context, user *models.User) error {
	session := sessions.Default(c)
	session.Set(sessionUserID, user.ID)
	session.Set(sessionUserRole, user.Role)
	return session.Save()
}

// ClearSession invalidates the current session. Clearing an empty session
// is a no-op, which makes logout idempotent.
func ClearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}

// ResolveIdentity extracts the user id bound to the request's session, if
// any, and exposes it to downstream handlers. Requests without a session
// pass through anonymously.
func ResolveIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if id, ok := session.Get(sessionUserID).(uint); ok {
			c.Set(UserIDKey, id)
			if role, ok := session.Get(sessionUserRole).(string); ok {
				c.Set(UserRoleKey, role)
			}
		}
		c.Next()
	}
}

// CurrentUserID returns the resolved user id, if the request carries one.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// CurrentRole returns the session-bound role, if any.
func CurrentRole(c *gin.Context) (string, bool) {
	v, ok := c.Get(UserRoleKey)
	if !ok {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}

// AuthRequired rejects requests that carry no session identity.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			abortWithError(c, apperror.Unauthorized())
			return
		}
		c.Next()
	}
}

// RequireRole rejects requests whose session identity lacks the role.
// Missing identity is an authentication failure; a present identity with
// the wrong role is an authorization failure.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			abortWithError(c, apperror.Unauthorized())
			return
		}
		if current, _ := CurrentRole(c); current != role {
			abortWithError(c, apperror.Forbidden())
			return
		}
		c.Next()
	}
}

func abortWithError(c *gin.Context, err *apperror.AppError) {
	c.AbortWithStatusJSON(err.Status(), apperror.NewErrorResponse(err, c.Request.URL.Path))
}
