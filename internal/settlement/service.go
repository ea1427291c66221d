package settlement

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stakeit-app/stakeit-api/internal/config"
	"github.com/stakeit-app/stakeit-api/internal/goal"
	"github.com/stakeit-app/stakeit-api/internal/ledger"
)

// GoalStore is the slice of the goal store settlement needs.
type GoalStore interface {
	FindByID(id uuid.UUID) (*goal.Goal, error)
	FindExpiredActive(now time.Time) ([]goal.Goal, error)
	SettleWithTransaction(goalID uuid.UUID, status goal.GoalStatus, txn *ledger.Transaction) error
}

type ProgressCounter interface {
	CountByGoal(goalID uuid.UUID) (int, error)
}

type Result struct {
	GoalID        uuid.UUID       `json:"goal_id"`
	SuccessRate   int             `json:"success_rate"`
	Status        goal.GoalStatus `json:"status"`
	RefundAmount  decimal.Decimal `json:"refund_amount"`
	TotalDays     int             `json:"total_days"`
	CompletedDays int             `json:"completed_days"`
}

type Service interface {
	// SettleGoal settles a single expired goal. It returns (nil, nil) when
	// there is nothing to do: the goal is not due yet or is already terminal.
	SettleGoal(ctx context.Context, goalID uuid.UUID, now time.Time) (*Result, error)

	// RunSweep settles every expired, still-active goal. One goal's failure
	// is logged and skipped; it never aborts the batch.
	RunSweep(ctx context.Context, now time.Time) ([]Result, error)
}

type service struct {
	goals    GoalStore
	progress ProgressCounter
}

func NewService(goals GoalStore, progress ProgressCounter) Service {
	return &service{goals: goals, progress: progress}
}

func (s *service) SettleGoal(ctx context.Context, goalID uuid.UUID, now time.Time) (*Result, error) {
	log := config.WithContext(ctx)

	g, err := s.goals.FindByID(goalID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, goal.ErrGoalNotFound
	}

	if g.Status != goal.GoalStatusActive {
		return nil, nil
	}
	if now.Before(g.EndDate) {
		return nil, nil
	}

	completedDays, err := s.progress.CountByGoal(g.ID)
	if err != nil {
		return nil, err
	}

	totalDays := goal.TotalDays(g.StartDate, g.EndDate)
	successRate := SuccessRate(completedDays, totalDays)
	newStatus := StatusFor(successRate)
	refundAmount := RefundFor(g.StakeAmount, successRate)

	txn := ledger.Transaction{
		ID:     uuid.New(),
		UserID: g.UserID,
		GoalID: g.ID,
		Status: ledger.TransactionStatusCompleted,
	}
	if refundAmount.IsPositive() {
		txn.Type = ledger.TransactionTypeRefund
		txn.Amount = refundAmount
	} else {
		txn.Type = ledger.TransactionTypeForfeit
		txn.Amount = g.StakeAmount
	}

	if err := s.goals.SettleWithTransaction(g.ID, newStatus, &txn); err != nil {
		if errors.Is(err, goal.ErrAlreadySettled) {
			// A concurrent sweep won the conditional update; nothing written.
			log.WithField("goal_id", g.ID).Info("Goal settled by a concurrent sweep, skipping")
			return nil, nil
		}
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"goal_id":       g.ID,
		"status":        newStatus,
		"success_rate":  successRate,
		"refund_amount": refundAmount,
	}).Info("Goal settled")

	return &Result{
		GoalID:        g.ID,
		SuccessRate:   successRate,
		Status:        newStatus,
		RefundAmount:  refundAmount,
		TotalDays:     totalDays,
		CompletedDays: completedDays,
	}, nil
}

func (s *service) RunSweep(ctx context.Context, now time.Time) ([]Result, error) {
	log := config.WithContext(ctx)

	expired, err := s.goals.FindExpiredActive(now)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(expired))
	for i := range expired {
		result, err := s.SettleGoal(ctx, expired[i].ID, now)
		if err != nil {
			// The goal stays ACTIVE and is retried on the next sweep.
			log.WithError(err).WithField("goal_id", expired[i].ID).Error("Failed to settle goal")
			continue
		}
		if result != nil {
			results = append(results, *result)
		}
	}

	return results, nil
}
