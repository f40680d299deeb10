// internal/store/store.go
//
// Outcome tally for evaluated guesses.
// This is operational bookkeeping only: it never feeds back into what a
// player sees, and it records no guess text and no target.

package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/guessnum/internal/game"
)

// Store records evaluations and reports outcome counts.
// Implementations may be backed by memory or SQLite.
type Store interface {
	// Record persists a single evaluation.
	Record(ctx context.Context, e Evaluation) error

	// Tally returns counts per outcome for one UTC day (DateKey format),
	// or across all days when date is empty.
	Tally(ctx context.Context, date string) (Tally, error)

	// Close releases any underlying resources.
	Close() error
}

// Evaluation is one recorded call of the evaluator.
type Evaluation struct {
	ID        string       // UUIDv4
	Outcome   game.Outcome // classification of the guess
	CreatedAt time.Time    // UTC
}

// NewEvaluation stamps an outcome with a fresh ID and the current time.
func NewEvaluation(o game.Outcome) Evaluation {
	return Evaluation{ID: uuid.NewString(), Outcome: o, CreatedAt: time.Now().UTC()}
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// ValidDateKey reports whether s is a YYYY-MM-DD date.
func ValidDateKey(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

const dateLayout = "2006-01-02"

// Tally is the response shape for outcome counts.
type Tally struct {
	Date   string               `json:"date,omitempty"` // "" for all-time
	Counts map[game.Outcome]int `json:"counts"`
	Total  int                  `json:"total"`
}

// newTally returns a Tally with every known outcome present at zero.
func newTally(date string) Tally {
	t := Tally{Date: date, Counts: make(map[game.Outcome]int, len(game.Outcomes))}
	for _, o := range game.Outcomes {
		t.Counts[o] = 0
	}
	return t
}
