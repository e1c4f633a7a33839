package account

import (
	"context"
	"net/http"
	"time"

	"codeberg.org/creatorkit/server/creatorkit/profiles"
	"codeberg.org/creatorkit/server/creatorkit/usage"
	"codeberg.org/creatorkit/server/internal/errors"
	"codeberg.org/creatorkit/server/internal/logger"
	"codeberg.org/creatorkit/server/internal/quota"
	"github.com/gin-gonic/gin"
)

// fires best-effort workflow events
type EventSender interface {
	UserUpgradedPro(ctx context.Context, userID, email string) error
}

// GetUsage godoc
// @Summary Get the caller's usage statistics
// @Description Returns the authenticated user's plan, today's generation count, the daily limit and remainder (-1 for unlimited plans), and a 30-day history
// @Tags account
// @Produce json
// @Success 200 {object} UsageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/account/usage [get]
// @Security BearerAuth
func GetUsage(profileRepo *profiles.Repository, ledger *usage.Ledger, policy *quota.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if userID == "" {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		profile, err := profileRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to fetch profile", err)
			return
		}

		today, err := ledger.Count(c.Request.Context(), userID, quota.Day(time.Now()))
		if err != nil {
			errors.InternalError(c, "failed to fetch usage data", err)
			return
		}

		history, err := ledger.History(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to fetch usage history", err)
			return
		}

		limit := policy.Limit()
		remaining := limit - today

		if remaining < 0 {
			remaining = 0
		}

		if profile.Plan == quota.PlanPro {
			limit = quota.Unlimited
			remaining = quota.Unlimited
		}

		c.JSON(http.StatusOK, UsageResponse{
			Plan:      profile.Plan,
			Today:     today,
			Limit:     limit,
			Remaining: remaining,
			History:   history,
		})
	}
}

// UpdatePlan godoc
// @Summary Update the caller's plan
// @Description Switches the authenticated user between the free and pro plans
// @Tags account
// @Accept json
// @Produce json
// @Param request body UpdatePlanRequest true "Plan data"
// @Success 200 {object} profiles.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/account/plan [put]
// @Security BearerAuth
func UpdatePlan(profileRepo *profiles.Repository, events EventSender) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if userID == "" {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		var req UpdatePlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, "plan must be one of: free, pro")
			return
		}

		profile, err := profileRepo.UpdatePlan(c.Request.Context(), userID, req.Plan)
		if err != nil {
			errors.InternalError(c, "failed to update plan", err)
			return
		}

		if req.Plan == quota.PlanPro {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := events.UserUpgradedPro(ctx, profile.ID, profile.Email); err != nil {
					logger.Warn("user_upgraded_pro event not delivered", "user_id", profile.ID, "error", err)
				}
			}()
		}

		c.JSON(http.StatusOK, profile)
	}
}
