package account

import (
	"codeberg.org/creatorkit/server/creatorkit/profiles"
	"codeberg.org/creatorkit/server/creatorkit/usage"
	"codeberg.org/creatorkit/server/internal/auth"
	"codeberg.org/creatorkit/server/internal/quota"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, profileRepo *profiles.Repository, ledger *usage.Ledger, policy *quota.Policy, events EventSender) {
	accountGroup := rg.Group("/account")
	accountGroup.Use(auth.AuthMiddleware()) // all account routes require authentication

	accountGroup.GET("/usage", GetUsage(profileRepo, ledger, policy))
	accountGroup.PUT("/plan", UpdatePlan(profileRepo, events))
}
