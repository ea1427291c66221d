package checkin

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stakeit-app/stakeit-api/internal/config"
	"github.com/stakeit-app/stakeit-api/internal/goal"
)

var (
	ErrGoalNotActive = errors.New("cannot check in for a goal that is not active")

	// ErrGoalExpired applies as soon as the deadline passes, even while the
	// stored status is still ACTIVE waiting for the next sweep.
	ErrGoalExpired = errors.New("cannot check in for a goal that has already ended")
)

// GoalFinder is the slice of the goal store the check-in flow needs.
type GoalFinder interface {
	FindByIDAndUser(id, userID uuid.UUID) (*goal.Goal, error)
}

type ProgressResponse struct {
	TotalDays          int           `json:"total_days"`
	CompletedDays      int           `json:"completed_days"`
	ProgressPercentage int           `json:"progress_percentage"`
	DaysRemaining      int           `json:"days_remaining"`
	Checkins           []ProgressLog `json:"checkins"`
}

type Service interface {
	CheckIn(ctx context.Context, goalID, userID uuid.UUID, notes string) (*ProgressLog, error)
	GetProgress(ctx context.Context, goalID, userID uuid.UUID) (*ProgressResponse, error)
}

type service struct {
	repo  ProgressRepository
	goals GoalFinder
}

func NewService(repo ProgressRepository, goals GoalFinder) Service {
	return &service{repo: repo, goals: goals}
}

func (s *service) CheckIn(ctx context.Context, goalID, userID uuid.UUID, notes string) (*ProgressLog, error) {
	log := config.WithContext(ctx)

	g, err := s.findOwned(goalID, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if g.Status != goal.GoalStatusActive {
		return nil, ErrGoalNotActive
	}
	if now.After(g.EndDate) {
		return nil, ErrGoalExpired
	}

	entry := ProgressLog{
		ID:        uuid.New(),
		GoalID:    g.ID,
		Date:      DayOf(now),
		CheckedIn: true,
		Notes:     notes,
	}

	// No pre-read for an existing check-in: the insert itself settles the
	// race through the (goal_id, date) unique constraint.
	if err := s.repo.Create(&entry); err != nil {
		if errors.Is(err, ErrAlreadyCheckedIn) {
			return nil, ErrAlreadyCheckedIn
		}
		log.WithError(err).Error("Failed to create check-in")
		return nil, err
	}

	log.WithField("goal_id", g.ID).Info("Check-in recorded")
	return &entry, nil
}

func (s *service) GetProgress(ctx context.Context, goalID, userID uuid.UUID) (*ProgressResponse, error) {
	log := config.WithContext(ctx)

	g, err := s.findOwned(goalID, userID)
	if err != nil {
		return nil, err
	}

	logs, err := s.repo.ListByGoal(g.ID)
	if err != nil {
		log.WithError(err).Error("Failed to list check-ins")
		return nil, err
	}

	totalDays := goal.TotalDays(g.StartDate, g.EndDate)
	completedDays := len(logs)

	return &ProgressResponse{
		TotalDays:          totalDays,
		CompletedDays:      completedDays,
		ProgressPercentage: goal.Percentage(completedDays, totalDays),
		DaysRemaining:      goal.DaysRemaining(time.Now(), g.EndDate),
		Checkins:           logs,
	}, nil
}

func (s *service) findOwned(goalID, userID uuid.UUID) (*goal.Goal, error) {
	g, err := s.goals.FindByIDAndUser(goalID, userID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, goal.ErrGoalNotFound
	}
	return g, nil
}
