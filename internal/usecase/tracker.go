package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wellnest/backend/internal/domain"
)

// DefaultAmountGrams is the serving applied when a caller logs a food without
// an explicit amount.
const DefaultAmountGrams = 100

// DayLog is one session's consumption log. All mutation and reads are
// serialized by the mutex, so Totals never observes a partially updated
// entry slice. The log is in-memory only and lives as long as its session.
type DayLog struct {
	mutex   sync.Mutex
	entries []domain.LogEntry
	goals   domain.DailyGoals
}

// NewDayLog creates an empty log with the given daily goals.
func NewDayLog(goals domain.DailyGoals) *DayLog {
	return &DayLog{goals: goals}
}

// AddEntry appends a new log entry for amountGrams of food, stamped now.
// The amount must be positive: a zero or negative consumption is meaningless
// and is rejected rather than clamped. There is deliberately no upper bound;
// self-reported amounts are not second-guessed.
func (l *DayLog) AddEntry(food domain.FoodRecord, amountGrams float64) (*domain.LogEntry, error) {
	if amountGrams <= 0 {
		return nil, fmt.Errorf("%w: amountGrams must be positive, got %v", domain.ErrInvalidRequest, amountGrams)
	}

	entry := domain.LogEntry{
		ID:          uuid.NewString(),
		Food:        food,
		AmountGrams: amountGrams,
		LoggedAt:    time.Now(),
	}

	l.mutex.Lock()
	l.entries = append(l.entries, entry)
	l.mutex.Unlock()

	return &entry, nil
}

// RemoveEntry removes the entry with the given id. Removing an id that is
// absent is a no-op, not an error: a duplicated remove (double click) must
// be safe.
func (l *DayLog) RemoveEntry(id string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	for i, entry := range l.entries {
		if entry.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// Entries returns a snapshot copy of the current log in insertion order.
func (l *DayLog) Entries() []domain.LogEntry {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	snapshot := make([]domain.LogEntry, len(l.entries))
	copy(snapshot, l.entries)
	return snapshot
}

// Totals recomputes the day's totals as a pure fold over the current
// entries. It is never cached incrementally, so removals in any order are
// always reflected. Each present nutrient is scaled from the 100 g basis to
// the logged amount; an absent nutrient contributes 0. This is the only
// place unknown values are coalesced to zero.
func (l *DayLog) Totals() domain.DailyTotals {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	var totals domain.DailyTotals
	for _, entry := range l.entries {
		multiplier := entry.AmountGrams / 100
		totals.Calories += coalesce(entry.Food.Calories) * multiplier
		totals.Protein += coalesce(entry.Food.Protein) * multiplier
		totals.Carbs += coalesce(entry.Food.Carbohydrates) * multiplier
		totals.Fat += coalesce(entry.Food.Fat) * multiplier
	}
	return totals
}

// Goals returns the daily targets this log is compared against.
func (l *DayLog) Goals() domain.DailyGoals {
	return l.goals
}

func coalesce(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// ProgressPercentage reports current against target as a percentage clamped
// at 100: over-goal reads as "done", not "over 100%". A non-positive target
// has no meaningful progress and reports 0.
func ProgressPercentage(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	pct := current / target * 100
	if pct > 100 {
		return 100
	}
	return pct
}
