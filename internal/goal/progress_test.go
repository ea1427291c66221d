package goal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stakeit-app/stakeit-api/internal/goal"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalDays(t *testing.T) {
	t.Run("WholeDays", func(t *testing.T) {
		assert.Equal(t, 10, goal.TotalDays(day(1), day(11)))
	})

	t.Run("PartialDayRoundsUp", func(t *testing.T) {
		start := day(1)
		end := day(3).Add(6 * time.Hour)
		assert.Equal(t, 3, goal.TotalDays(start, end))
	})

	t.Run("SameInstantIsZero", func(t *testing.T) {
		assert.Equal(t, 0, goal.TotalDays(day(1), day(1)))
	})

	t.Run("EndBeforeStartIsZero", func(t *testing.T) {
		assert.Equal(t, 0, goal.TotalDays(day(5), day(1)))
	})
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 100, goal.Percentage(10, 10))
	assert.Equal(t, 80, goal.Percentage(8, 10))
	assert.Equal(t, 50, goal.Percentage(5, 10))
	assert.Equal(t, 0, goal.Percentage(0, 10))
	assert.Equal(t, 0, goal.Percentage(0, 0))
	// 2/3 rounds to 67, not truncates to 66
	assert.Equal(t, 67, goal.Percentage(2, 3))
}

func TestDaysRemaining(t *testing.T) {
	now := day(10)

	assert.Equal(t, 5, goal.DaysRemaining(now, day(15)))
	assert.Equal(t, 0, goal.DaysRemaining(now, day(10)))
	assert.Equal(t, 0, goal.DaysRemaining(now, day(5)))
	assert.Equal(t, 1, goal.DaysRemaining(now, now.Add(2*time.Hour)))
}
