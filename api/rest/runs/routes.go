package runs

import (
	"codeberg.org/creatorkit/server/creatorkit/runs"
	"codeberg.org/creatorkit/server/internal/auth"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, runRepo *runs.Repository) {
	runsGroup := router.Group("/runs")
	runsGroup.Use(auth.AuthMiddleware()) // history is always user-scoped

	runsGroup.GET("", ListRunsHandler(runRepo))
	runsGroup.GET("/:id", GetRunHandler(runRepo))
}
