package quota

import (
	"context"
	"fmt"
	"time"
)

// Policy decides, per user per UTC calendar day, whether a generation
// request is admitted. Admission for free-tier users both checks and
// records usage in one atomic ledger operation, so concurrent requests
// for the last remaining slot cannot both succeed.
type Policy struct {
	ledger Ledger
	limit  int
}

// creates a policy with the standard free-tier daily limit
func New(ledger Ledger) *Policy {
	return &Policy{ledger: ledger, limit: FreeDailyLimit}
}

// returns the quota bucket key for an instant: the UTC calendar date
func Day(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// decides admission for one generation request. Pro always admits with
// the unlimited sentinel and touches no counters. Free admits while the
// pre-increment count is below the daily limit; the increment happens
// inside the same ledger call. A ledger failure fails closed - no
// admission without a consulted counter.
func (p *Policy) Decide(ctx context.Context, userID, plan string, now time.Time) (Decision, error) {
	if plan == PlanPro {
		return Decision{Allowed: true, Remaining: Unlimited, Unlimited: true}, nil
	}

	newCount, admitted, err := p.ledger.TryIncrement(ctx, userID, Day(now), p.limit)
	if err != nil {
		return Decision{}, fmt.Errorf("consult usage ledger: %w", err)
	}

	if !admitted {
		return Decision{Allowed: false, Remaining: 0}, nil
	}

	return Decision{Allowed: true, Remaining: p.limit - newCount}, nil
}

// returns the free-tier daily limit
func (p *Policy) Limit() int {
	return p.limit
}
