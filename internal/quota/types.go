package quota

import "context"

// plan tiers
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// free-tier generations per UTC calendar day
const FreeDailyLimit = 3

// remaining-uses sentinel for unlimited plans
const Unlimited = -1

// the per-(user, day) counter consulted and advanced by the policy; the
// postgres ledger implements it for production, an in-memory ledger for
// tests
type Ledger interface {
	Count(ctx context.Context, userID, day string) (int, error)
	TryIncrement(ctx context.Context, userID, day string, limit int) (int, bool, error)
}

// outcome of an admission check
type Decision struct {
	Allowed   bool
	Remaining int // uses left today; Unlimited for pro
	Unlimited bool
}

// reports whether a plan string is one the policy understands
func ValidPlan(plan string) bool {
	return plan == PlanFree || plan == PlanPro
}
