package domain

import "time"

// LogEntry is one "I ate N grams of record R at time T" event. Entries are
// never mutated in place; an amount edit replaces the entry. The record is a
// snapshot taken at selection time, so later upstream changes never alter
// historical entries.
type LogEntry struct {
	ID          string     `json:"id"`
	Food        FoodRecord `json:"food"`
	AmountGrams float64    `json:"amountGrams"`
	LoggedAt    time.Time  `json:"loggedAt"`
}

// DailyTotals is derived, never stored: a pure fold over the current log.
type DailyTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailyGoals holds the fixed daily targets the totals are compared against.
type DailyGoals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}
