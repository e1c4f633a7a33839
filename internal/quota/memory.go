package quota

import (
	"context"
	"sync"
)

// mutex-guarded in-memory ledger with the same compare-and-increment
// semantics as the postgres implementation; used by tests, including the
// concurrent-admission properties
type MemoryLedger struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{counts: make(map[string]int)}
}

func ledgerKey(userID, day string) string {
	return userID + "|" + day
}

func (m *MemoryLedger) Count(_ context.Context, userID, day string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.counts[ledgerKey(userID, day)], nil
}

func (m *MemoryLedger) TryIncrement(_ context.Context, userID, day string, limit int) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := ledgerKey(userID, day)

	if m.counts[key] >= limit {
		return 0, false, nil
	}

	m.counts[key]++

	return m.counts[key], true, nil
}
