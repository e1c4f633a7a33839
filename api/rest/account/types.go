package account

import (
	"codeberg.org/creatorkit/server/creatorkit/usage"
)

type UsageResponse struct {
	Plan      string             `json:"plan"`      // "free" or "pro"
	Today     int                `json:"today"`     // Generations used today
	Limit     int                `json:"limit"`     // Daily limit (-1 for unlimited)
	Remaining int                `json:"remaining"` // Remaining generations today (-1 for unlimited)
	History   []usage.DailyUsage `json:"history"`   // Last 30 days
}

type UpdatePlanRequest struct {
	Plan string `json:"plan" binding:"required,oneof=free pro"`
}
