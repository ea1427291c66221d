package settlement

import (
	"github.com/shopspring/decimal"
	"github.com/stakeit-app/stakeit-api/internal/goal"
)

const (
	completionThreshold = 70
	fullRefundThreshold = 100
)

// SuccessRate is completed days over total days as a rounded percent.
// A zero-day goal can never earn a rate above 0.
func SuccessRate(completedDays, totalDays int) int {
	return goal.Percentage(completedDays, totalDays)
}

func StatusFor(successRate int) goal.GoalStatus {
	if successRate >= completionThreshold {
		return goal.GoalStatusCompleted
	}
	return goal.GoalStatusFailed
}

// RefundFor keeps thresholds separate from StatusFor on purpose: the
// 70–99% band completes the goal but earns only half the stake back.
func RefundFor(stakeAmount decimal.Decimal, successRate int) decimal.Decimal {
	switch {
	case successRate >= fullRefundThreshold:
		return stakeAmount
	case successRate >= completionThreshold:
		return stakeAmount.Div(decimal.NewFromInt(2))
	default:
		return decimal.Zero
	}
}
