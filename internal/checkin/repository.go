package checkin

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAlreadyCheckedIn = errors.New("already checked in for this goal today")

type ProgressRepository interface {
	Create(l *ProgressLog) error
	ListByGoal(goalID uuid.UUID) ([]ProgressLog, error)
	CountByGoal(goalID uuid.UUID) (int, error)
	CountByGoals(goalIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ProgressRepository {
	return &repository{db: db}
}

func (r *repository) Create(l *ProgressLog) error {
	if err := r.db.Create(l).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyCheckedIn
		}
		return err
	}
	return nil
}

func (r *repository) ListByGoal(goalID uuid.UUID) ([]ProgressLog, error) {
	var logs []ProgressLog
	if err := r.db.
		Where("goal_id = ?", goalID).
		Order("date DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *repository) CountByGoal(goalID uuid.UUID) (int, error) {
	var count int64
	if err := r.db.Model(&ProgressLog{}).
		Where("goal_id = ?", goalID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *repository) CountByGoals(goalIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(goalIDs))
	if len(goalIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		GoalID uuid.UUID
		Count  int
	}
	if err := r.db.Model(&ProgressLog{}).
		Select("goal_id, COUNT(*) AS count").
		Where("goal_id IN ?", goalIDs).
		Group("goal_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.GoalID] = row.Count
	}
	return counts, nil
}
