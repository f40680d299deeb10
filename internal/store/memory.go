// internal/store/memory.go
//
// In-memory implementation of Store.
// Used when no DB_PATH is configured and in tests.
//
// Characteristics:
//   - Keeps only counters per day, not individual records.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/guessnum/internal/game"
)

// memory is a map-based Store implementation.
type memory struct {
	mu   sync.RWMutex                    // guards days
	days map[string]map[game.Outcome]int // DateKey → outcome → count
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{days: make(map[string]map[game.Outcome]int)}
}

// Record bumps the counter for e.Outcome on e's day.
func (m *memory) Record(ctx context.Context, e Evaluation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	day := DateKey(e.CreatedAt)
	counts, ok := m.days[day]
	if !ok {
		counts = make(map[game.Outcome]int)
		m.days[day] = counts
	}
	counts[e.Outcome]++
	return nil
}

// Tally copies the counters for date, or sums every day when date is "".
func (m *memory) Tally(ctx context.Context, date string) (Tally, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t := newTally(date)
	for day, counts := range m.days {
		if date != "" && day != date {
			continue
		}
		for o, n := range counts {
			t.Counts[o] += n
			t.Total += n
		}
	}
	return t, nil
}

// Close is a no-op.
func (m *memory) Close() error { return nil }
