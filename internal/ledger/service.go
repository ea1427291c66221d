package ledger

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stakeit-app/stakeit-api/internal/config"
)

var ErrInvalidType = errors.New("invalid transaction type")

type Service interface {
	ListByUser(ctx context.Context, userID uuid.UUID, txType string) ([]Transaction, error)
	ListByGoal(ctx context.Context, goalID uuid.UUID) ([]Transaction, error)
}

type service struct {
	repo TransactionRepository
}

func NewService(repo TransactionRepository) Service {
	return &service{repo: repo}
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID, txType string) ([]Transaction, error) {
	log := config.WithContext(ctx)

	filter := TransactionType(txType)
	if txType != "" && !filter.IsValid() {
		return nil, ErrInvalidType
	}

	txns, err := s.repo.ListByUser(userID, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list transactions")
		return nil, err
	}
	return txns, nil
}

func (s *service) ListByGoal(ctx context.Context, goalID uuid.UUID) ([]Transaction, error) {
	log := config.WithContext(ctx)

	txns, err := s.repo.ListByGoal(goalID)
	if err != nil {
		log.WithError(err).Error("Failed to list goal transactions")
		return nil, err
	}
	return txns, nil
}
