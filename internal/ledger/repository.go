package ledger

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionRepository deliberately exposes no update or delete: the
// ledger is append-only and aggregation is purely additive over its rows.
type TransactionRepository interface {
	Create(t *Transaction) error
	ListByUser(userID uuid.UUID, txType TransactionType) ([]Transaction, error)
	ListByGoal(goalID uuid.UUID) ([]Transaction, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TransactionRepository {
	return &repository{db: db}
}

func (r *repository) Create(t *Transaction) error {
	return r.db.Create(t).Error
}

func (r *repository) ListByUser(userID uuid.UUID, txType TransactionType) ([]Transaction, error) {
	q := r.db.Where("user_id = ?", userID)
	if txType != "" {
		q = q.Where("type = ?", txType)
	}

	var txns []Transaction
	if err := q.Order("created_at DESC").Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *repository) ListByGoal(goalID uuid.UUID) ([]Transaction, error) {
	var txns []Transaction
	if err := r.db.
		Where("goal_id = ?", goalID).
		Order("created_at DESC").
		Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}
