// Package handlers exposes the board's HTTP surface. Handlers stay thin:
// bind, call a service, serialize. Every failure funnels through Error so
// all clients see the same envelope.
package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"crudboard/internal/apperror"
)

// Error renders any failure into the uniform error envelope. Uncategorized
// errors become a generic 500; their cause is logged, not leaked.
func Error(c *gin.Context, err error) {
	appErr := apperror.From(err)
	if appErr.Code == apperror.CodeInternalError {
		log.Printf("internal error path=%s err=%v", c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(appErr.Status(), apperror.NewErrorResponse(appErr, c.Request.URL.Path))
}

// NoRoute is the fallback for unknown paths.
func NoRoute(c *gin.Context) {
	Error(c, apperror.New(apperror.CodeNotFound))
}

// Recovery converts panics into the 500 envelope instead of a bare status.
func Recovery(c *gin.Context, recovered any) {
	log.Printf("panic recovered path=%s err=%v", c.Request.URL.Path, recovered)
	c.AbortWithStatusJSON(500, apperror.NewErrorResponse(
		apperror.New(apperror.CodeInternalError), c.Request.URL.Path))
}
