package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"crudboard/internal/middleware"
	"crudboard/internal/models"
)

// SessionName is the session cookie's name.
const SessionName = "crudboard_session"

// NewRouter assembles the full HTTP surface: session store, identity
// resolution, public reads, auth-gated writes, the admin group and the view
// stubs. Used by main and by the handler tests so both exercise the same
// wiring.
func NewRouter(sessionSecret string, auth *AuthHandler, posts *PostHandler, comments *CommentHandler, admin *AdminHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(Recovery))

	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions(SessionName, store))
	r.Use(middleware.ResolveIdentity())

	RegisterValidators()

	r.NoRoute(NoRoute)

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", auth.Signup)
			authGroup.POST("/login", auth.Login)
			authGroup.POST("/logout", auth.Logout)
			authGroup.GET("/me", auth.Me)
		}

		// Posts are publicly readable; mutations need a session.
		postGroup := api.Group("/posts")
		{
			postGroup.GET("", posts.List)
			postGroup.GET("/:id", posts.Get)
			postGroup.GET("/:id/comments", comments.List)

			authorized := postGroup.Group("")
			authorized.Use(middleware.AuthRequired())
			{
				authorized.POST("", posts.Create)
				authorized.PUT("/:id", posts.Update)
				authorized.DELETE("/:id", posts.Delete)

				authorized.POST("/:id/comments", comments.Create)
				authorized.PUT("/:id/comments/:commentId", comments.Update)
				authorized.DELETE("/:id/comments/:commentId", comments.Delete)
			}
		}

		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.RequireRole(models.RoleAdmin))
		{
			adminGroup.GET("/users", admin.ListUsers)
		}
	}

	// View stubs
	pages := NewPageHandler()
	r.GET("/", pages.Home)
	r.GET("/posts", pages.PostList)
	r.GET("/posts/:id", pages.PostDetail)
	r.GET("/posts/:id/edit", pages.PostEdit)
	r.GET("/auth/me", pages.MePage)

	return r
}
