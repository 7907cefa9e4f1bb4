package usecase

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellnest/backend/internal/domain"
)

func fval(v float64) *float64 { return &v }

var testGoals = domain.DailyGoals{Calories: 2000, Protein: 150, Carbs: 250, Fat: 65}

func appleRecord() domain.FoodRecord {
	return domain.FoodRecord{
		FdcID:         168462,
		Description:   "Apple, raw",
		Calories:      fval(52),
		Protein:       fval(0.26),
		Carbohydrates: fval(13.8),
		Fat:           fval(0.17),
	}
}

func TestAddEntry(t *testing.T) {
	log := NewDayLog(testGoals)

	entry, err := log.AddEntry(appleRecord(), 150)

	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, 150.0, entry.AmountGrams)
	assert.False(t, entry.LoggedAt.IsZero())
	assert.Len(t, log.Entries(), 1)
}

func TestAddEntry_RejectsNonPositiveAmount(t *testing.T) {
	log := NewDayLog(testGoals)

	for _, amount := range []float64{0, -1, -100} {
		entry, err := log.AddEntry(appleRecord(), amount)
		assert.Nil(t, entry)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	}
	assert.Empty(t, log.Entries())
}

func TestAddEntry_NoUpperBound(t *testing.T) {
	log := NewDayLog(testGoals)

	_, err := log.AddEntry(appleRecord(), 1e6)

	require.NoError(t, err)
}

func TestTotals_ScalesFromPer100gBasis(t *testing.T) {
	log := NewDayLog(testGoals)

	record := domain.FoodRecord{FdcID: 1, Description: "Test food", Calories: fval(200)}
	_, err := log.AddEntry(record, 150)
	require.NoError(t, err)

	totals := log.Totals()

	// 200 kcal per 100 g at 150 g is 300 kcal.
	assert.Equal(t, 300.0, totals.Calories)
}

func TestTotals_AbsentNutrientsContributeZero(t *testing.T) {
	log := NewDayLog(testGoals)

	record := domain.FoodRecord{FdcID: 2, Description: "Calories only", Calories: fval(100)}
	_, err := log.AddEntry(record, 100)
	require.NoError(t, err)

	totals := log.Totals()

	assert.Equal(t, 100.0, totals.Calories)
	assert.Zero(t, totals.Protein)
	assert.Zero(t, totals.Carbs)
	assert.Zero(t, totals.Fat)
}

func TestTotals_AddThenRemoveRoundTrip(t *testing.T) {
	log := NewDayLog(testGoals)

	_, err := log.AddEntry(appleRecord(), 100)
	require.NoError(t, err)
	before := log.Totals()

	entry, err := log.AddEntry(appleRecord(), 250)
	require.NoError(t, err)
	log.RemoveEntry(entry.ID)

	assert.Equal(t, before, log.Totals())
}

func TestTotals_SumsMultipleEntries(t *testing.T) {
	log := NewDayLog(testGoals)

	log.AddEntry(domain.FoodRecord{FdcID: 1, Description: "A", Calories: fval(100), Protein: fval(10)}, 100)
	log.AddEntry(domain.FoodRecord{FdcID: 2, Description: "B", Calories: fval(50), Fat: fval(4)}, 200)

	totals := log.Totals()

	assert.Equal(t, 200.0, totals.Calories) // 100 + 50*2
	assert.Equal(t, 10.0, totals.Protein)
	assert.Equal(t, 8.0, totals.Fat)
}

func TestRemoveEntry_AbsentIDIsNoOp(t *testing.T) {
	log := NewDayLog(testGoals)

	entry, err := log.AddEntry(appleRecord(), 100)
	require.NoError(t, err)

	log.RemoveEntry("no-such-id")
	assert.Len(t, log.Entries(), 1)

	// Double removal (duplicate click) is safe.
	log.RemoveEntry(entry.ID)
	log.RemoveEntry(entry.ID)
	assert.Empty(t, log.Entries())
}

func TestSameFoodLoggedTwiceIsIndependent(t *testing.T) {
	log := NewDayLog(testGoals)

	first, err := log.AddEntry(appleRecord(), 100)
	require.NoError(t, err)
	second, err := log.AddEntry(appleRecord(), 50)
	require.NoError(t, err)

	// Same fdcId, distinct entries with distinct ids.
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 78.0, log.Totals().Calories) // 52 + 26

	log.RemoveEntry(first.ID)

	require.Len(t, log.Entries(), 1)
	assert.Equal(t, second.ID, log.Entries()[0].ID)
	assert.Equal(t, 26.0, log.Totals().Calories)
}

func TestEntriesSnapshotIsACopy(t *testing.T) {
	log := NewDayLog(testGoals)
	log.AddEntry(appleRecord(), 100)

	snapshot := log.Entries()
	snapshot[0].AmountGrams = 999

	assert.Equal(t, 100.0, log.Entries()[0].AmountGrams)
}

func TestConcurrentAddRemoveCompute(t *testing.T) {
	log := NewDayLog(testGoals)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entry, err := log.AddEntry(appleRecord(), 100)
			if err != nil {
				t.Error(err)
				return
			}
			log.Totals()
			log.RemoveEntry(entry.ID)
		}()
	}
	wg.Wait()

	assert.Empty(t, log.Entries())
	assert.Zero(t, log.Totals().Calories)
}

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		want    float64
	}{
		{"zero progress", 0, 2000, 0},
		{"half way", 1000, 2000, 50},
		{"exactly at goal", 2000, 2000, 100},
		{"over goal clamps to 100", 3500, 2000, 100},
		{"zero target reports zero", 500, 0, 0},
		{"negative target reports zero", 500, -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressPercentage(tt.current, tt.target))
		})
	}
}

func TestProgressPercentage_MonotonicInCurrent(t *testing.T) {
	prev := -1.0
	for current := 0.0; current <= 3000; current += 100 {
		pct := ProgressPercentage(current, 2000)
		assert.GreaterOrEqual(t, pct, prev)
		prev = pct
	}
}
