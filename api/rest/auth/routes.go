package auth

import (
	"codeberg.org/creatorkit/server/creatorkit/profiles"
	"codeberg.org/creatorkit/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers all authentication routes
func RegisterRoutes(router *gin.RouterGroup, profileRepo *profiles.Repository, events EventSender) {
	authGroup := router.Group("/auth")
	{
		// post-signup is called by the external auth system before the
		// user holds a token, so it stays outside the auth middleware
		authGroup.POST("/post-signup", PostSignupHandler(profileRepo, events))

		authGroup.GET("/:provider", BeginAuthHandler())
		authGroup.GET("/:provider/callback", CallbackHandler(profileRepo, events))
		authGroup.POST("/logout", LogoutHandler())
		authGroup.GET("/me", auth.AuthMiddleware(), GetCurrentUserHandler(profileRepo))
	}
}
