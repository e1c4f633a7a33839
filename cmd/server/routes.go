package main

import (
	"codeberg.org/creatorkit/server/api/rest/account"
	"codeberg.org/creatorkit/server/api/rest/auth"
	"codeberg.org/creatorkit/server/api/rest/health"
	"codeberg.org/creatorkit/server/api/rest/runs"
	"codeberg.org/creatorkit/server/api/rest/tools"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.profileRepo, server.services.Events)
		tools.RegisterRoutes(v1,
			server.services.Registry,
			server.services.Policy,
			server.profileRepo,
			server.runRepo,
			server.services.Events,
			GenerateRateLimitMiddleware(),
		)
		account.RegisterRoutes(v1, server.profileRepo, server.ledger, server.services.Policy, server.services.Events)
		runs.RegisterRoutes(v1, server.runRepo)
	}
}
