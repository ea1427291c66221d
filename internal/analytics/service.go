package analytics

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stakeit-app/stakeit-api/internal/config"
	"github.com/stakeit-app/stakeit-api/internal/goal"
	"github.com/stakeit-app/stakeit-api/internal/ledger"
)

type GoalSource interface {
	FindAllByUser(userID uuid.UUID, category string, status goal.GoalStatus) ([]goal.Goal, error)
}

type TransactionSource interface {
	ListByUser(userID uuid.UUID, txType ledger.TransactionType) ([]ledger.Transaction, error)
}

type Service interface {
	GetAnalytics(ctx context.Context, userID uuid.UUID) (*Summary, error)
}

type service struct {
	goals GoalSource
	txns  TransactionSource
}

func NewService(goals GoalSource, txns TransactionSource) Service {
	return &service{goals: goals, txns: txns}
}

// GetAnalytics is a pure read: it folds the user's goals and ledger rows
// into one summary and writes nothing.
func (s *service) GetAnalytics(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	log := config.WithContext(ctx)

	goals, err := s.goals.FindAllByUser(userID, "", "")
	if err != nil {
		log.WithError(err).Error("Failed to load goals for analytics")
		return nil, err
	}

	txns, err := s.txns.ListByUser(userID, "")
	if err != nil {
		log.WithError(err).Error("Failed to load transactions for analytics")
		return nil, err
	}

	summary := Summary{
		TotalGoals:     len(goals),
		TotalStaked:    decimal.Zero,
		TotalRefunded:  decimal.Zero,
		TotalForfeited: decimal.Zero,
	}

	for i := range goals {
		switch goals[i].Status {
		case goal.GoalStatusActive:
			summary.ActiveGoals++
		case goal.GoalStatusCompleted:
			summary.CompletedGoals++
		case goal.GoalStatusFailed:
			summary.FailedGoals++
		}
		summary.TotalStaked = summary.TotalStaked.Add(goals[i].StakeAmount)
	}

	for i := range txns {
		switch txns[i].Type {
		case ledger.TransactionTypeRefund:
			summary.TotalRefunded = summary.TotalRefunded.Add(txns[i].Amount)
		case ledger.TransactionTypeForfeit:
			summary.TotalForfeited = summary.TotalForfeited.Add(txns[i].Amount)
		}
	}

	summary.SuccessRate = goal.Percentage(summary.CompletedGoals, summary.TotalGoals)
	summary.NetAmount = summary.TotalRefunded.Sub(summary.TotalStaked)

	return &summary, nil
}
