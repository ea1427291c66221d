package goal

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stakeit-app/stakeit-api/internal/ledger"
	"gorm.io/gorm"
)

// ErrAlreadySettled means another sweep settled the goal first. The caller
// must treat it as a clean skip, not a failure.
var ErrAlreadySettled = errors.New("goal already settled")

type GoalRepository interface {
	// Create inserts the goal and its DEPOSIT transaction as one atomic unit.
	Create(g *Goal, deposit *ledger.Transaction) error
	FindByID(id uuid.UUID) (*Goal, error)
	FindByIDAndUser(id, userID uuid.UUID) (*Goal, error)
	FindAllByUser(userID uuid.UUID, category string, status GoalStatus) ([]Goal, error)
	FindExpiredActive(now time.Time) ([]Goal, error)
	Update(g *Goal) error
	Delete(id uuid.UUID) error
	CategoriesByUser(userID uuid.UUID) ([]string, error)

	// SettleWithTransaction writes the terminal status and the settlement
	// transaction in a single store transaction. The status update is
	// conditional on the goal still being ACTIVE; if a concurrent sweep got
	// there first, nothing is written and ErrAlreadySettled is returned.
	SettleWithTransaction(goalID uuid.UUID, status GoalStatus, txn *ledger.Transaction) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) GoalRepository {
	return &repository{db: db}
}

func (r *repository) Create(g *Goal, deposit *ledger.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(g).Error; err != nil {
			return err
		}
		deposit.GoalID = g.ID
		return tx.Create(deposit).Error
	})
}

func (r *repository) FindByID(id uuid.UUID) (*Goal, error) {
	var g Goal
	if err := r.db.First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *repository) FindByIDAndUser(id, userID uuid.UUID) (*Goal, error) {
	var g Goal
	if err := r.db.First(&g, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *repository) FindAllByUser(userID uuid.UUID, category string, status GoalStatus) ([]Goal, error) {
	q := r.db.Where("user_id = ?", userID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var goals []Goal
	if err := q.Order("created_at DESC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) FindExpiredActive(now time.Time) ([]Goal, error) {
	var goals []Goal
	if err := r.db.
		Where("status = ? AND end_date <= ?", GoalStatusActive, now).
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) Update(g *Goal) error {
	return r.db.Save(g).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Goal{}, "id = ?", id).Error
}

func (r *repository) CategoriesByUser(userID uuid.UUID) ([]string, error) {
	var categories []string
	if err := r.db.Model(&Goal{}).
		Where("user_id = ? AND category <> ''", userID).
		Distinct().
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *repository) SettleWithTransaction(goalID uuid.UUID, status GoalStatus, txn *ledger.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Goal{}).
			Where("id = ? AND status = ?", goalID, GoalStatusActive).
			Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadySettled
		}
		return tx.Create(txn).Error
	})
}
