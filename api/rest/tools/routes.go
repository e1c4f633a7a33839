package tools

import (
	"codeberg.org/creatorkit/server/internal/auth"
	"codeberg.org/creatorkit/server/internal/toolkit"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	router *gin.RouterGroup,
	registry *toolkit.Registry,
	policy Admitter,
	profileStore ProfileStore,
	runRecorder RunRecorder,
	events EventSender,
	rateLimit gin.HandlerFunc,
) {
	toolsGroup := router.Group("/tools")
	{
		toolsGroup.GET("", ListToolsHandler(registry))
		toolsGroup.GET("/:slug", GetToolHandler(registry))

		// generation is open to anonymous callers, so the per-IP rate
		// limit fronts the optional auth middleware
		toolsGroup.POST("/:slug/generate",
			rateLimit,
			auth.OptionalAuthMiddleware(),
			GenerateHandler(registry, policy, profileStore, runRecorder, events),
		)
	}
}
