package quota

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay_UTCBoundary(t *testing.T) {
	// 23:30 UTC-5 is 04:30 UTC the next day
	est := time.FixedZone("EST", -5*3600)
	local := time.Date(2025, 6, 14, 23, 30, 0, 0, est)

	assert.Equal(t, "2025-06-15", Day(local))
	assert.Equal(t, "2025-06-15", Day(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
}

func TestDecide_FreeAdmitsUpToLimit(t *testing.T) {
	policy := New(NewMemoryLedger())
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < FreeDailyLimit; i++ {
		decision, err := policy.Decide(context.Background(), "user-1", PlanFree, now)

		require.NoError(t, err)
		assert.True(t, decision.Allowed, "request %d should be admitted", i+1)
		assert.Equal(t, FreeDailyLimit-i-1, decision.Remaining)
	}
}

func TestDecide_FreeDeniedPastLimit(t *testing.T) {
	ledger := NewMemoryLedger()
	policy := New(ledger)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < FreeDailyLimit; i++ {
		_, err := policy.Decide(context.Background(), "user-1", PlanFree, now)
		require.NoError(t, err)
	}

	decision, err := policy.Decide(context.Background(), "user-1", PlanFree, now)

	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, 0, decision.Remaining)

	// denial must not advance the counter
	count, err := ledger.Count(context.Background(), "user-1", Day(now))
	require.NoError(t, err)
	assert.Equal(t, FreeDailyLimit, count)
}

func TestDecide_ProUnlimitedAndUncounted(t *testing.T) {
	ledger := NewMemoryLedger()
	policy := New(ledger)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 20; i++ {
		decision, err := policy.Decide(context.Background(), "user-1", PlanPro, now)

		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.True(t, decision.Unlimited)
		assert.Equal(t, Unlimited, decision.Remaining)
	}

	count, err := ledger.Count(context.Background(), "user-1", Day(now))
	require.NoError(t, err)
	assert.Equal(t, 0, count, "pro requests must not touch the counter")
}

func TestDecide_CountersIsolatedPerDay(t *testing.T) {
	policy := New(NewMemoryLedger())
	day1 := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 16, 0, 1, 0, 0, time.UTC)

	for i := 0; i < FreeDailyLimit; i++ {
		_, err := policy.Decide(context.Background(), "user-1", PlanFree, day1)
		require.NoError(t, err)
	}

	denied, err := policy.Decide(context.Background(), "user-1", PlanFree, day1)
	require.NoError(t, err)
	assert.False(t, denied.Allowed)

	// a fresh day starts a fresh counter
	fresh, err := policy.Decide(context.Background(), "user-1", PlanFree, day2)
	require.NoError(t, err)
	assert.True(t, fresh.Allowed)
	assert.Equal(t, FreeDailyLimit-1, fresh.Remaining)
}

func TestDecide_CountersIsolatedPerUser(t *testing.T) {
	policy := New(NewMemoryLedger())
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < FreeDailyLimit; i++ {
		_, err := policy.Decide(context.Background(), "user-1", PlanFree, now)
		require.NoError(t, err)
	}

	decision, err := policy.Decide(context.Background(), "user-2", PlanFree, now)

	require.NoError(t, err)
	assert.True(t, decision.Allowed, "one user's exhaustion must not affect another")
}

func TestDecide_ConcurrentRequestsNeverExceedLimit(t *testing.T) {
	ledger := NewMemoryLedger()
	policy := New(ledger)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	const requests = 10

	var wg sync.WaitGroup
	results := make([]bool, requests)

	for i := 0; i < requests; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			decision, err := policy.Decide(context.Background(), "user-1", PlanFree, now)
			assert.NoError(t, err)
			results[i] = decision.Allowed
		}(i)
	}

	wg.Wait()

	admitted := 0
	for _, allowed := range results {
		if allowed {
			admitted++
		}
	}

	assert.Equal(t, FreeDailyLimit, admitted, "exactly the daily limit should be admitted")

	count, err := ledger.Count(context.Background(), "user-1", Day(now))
	require.NoError(t, err)
	assert.Equal(t, FreeDailyLimit, count)
}

type failingLedger struct{}

func (failingLedger) Count(context.Context, string, string) (int, error) {
	return 0, errors.New("connection refused")
}

func (failingLedger) TryIncrement(context.Context, string, string, int) (int, bool, error) {
	return 0, false, errors.New("connection refused")
}

func TestDecide_LedgerFailureFailsClosed(t *testing.T) {
	policy := New(failingLedger{})
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	decision, err := policy.Decide(context.Background(), "user-1", PlanFree, now)

	require.Error(t, err)
	assert.False(t, decision.Allowed)
}

func TestDecide_LedgerFailureDoesNotAffectPro(t *testing.T) {
	policy := New(failingLedger{})
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	decision, err := policy.Decide(context.Background(), "user-1", PlanPro, now)

	require.NoError(t, err, "pro admission never consults the ledger")
	assert.True(t, decision.Allowed)
}

func TestValidPlan(t *testing.T) {
	assert.True(t, ValidPlan(PlanFree))
	assert.True(t, ValidPlan(PlanPro))
	assert.False(t, ValidPlan("enterprise"))
	assert.False(t, ValidPlan(""))
}
