package goal

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stakeit-app/stakeit-api/internal/config"
	"github.com/stakeit-app/stakeit-api/internal/ledger"
	"gorm.io/datatypes"
)

var (
	// ErrGoalNotFound covers both a missing goal and a goal owned by someone
	// else, so callers cannot probe for other users' goals.
	ErrGoalNotFound = errors.New("goal not found")

	ErrTitleRequired    = errors.New("title is required")
	ErrEndDateNotFuture = errors.New("end date must be in the future")
	ErrInvalidStake     = errors.New("stake amount must be greater than 0")
	ErrInvalidStatus    = errors.New("invalid goal status")
)

// ProgressCounter is the slice of the check-in store the goal views need.
type ProgressCounter interface {
	CountByGoal(goalID uuid.UUID) (int, error)
	CountByGoals(goalIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateGoalDTO) (*GoalResponse, error)
	List(ctx context.Context, userID uuid.UUID, category, status string) ([]GoalResponse, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*GoalResponse, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateGoalDTO) (*GoalResponse, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	Categories(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type service struct {
	repo     GoalRepository
	progress ProgressCounter
}

func NewService(repo GoalRepository, progress ProgressCounter) Service {
	return &service{repo: repo, progress: progress}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateGoalDTO) (*GoalResponse, error) {
	log := config.WithContext(ctx)
	now := time.Now()

	if strings.TrimSpace(dto.Title) == "" {
		return nil, ErrTitleRequired
	}
	if !dto.StakeAmount.IsPositive() {
		return nil, ErrInvalidStake
	}
	if !dto.EndDate.After(now) {
		return nil, ErrEndDateNotFuture
	}

	g := Goal{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(dto.Title),
		Description: dto.Description,
		Category:    dto.Category,
		Tags:        datatypes.JSONSlice[string](splitTags(dto.Tags)),
		StartDate:   now,
		EndDate:     dto.EndDate,
		StakeAmount: dto.StakeAmount,
		Status:      GoalStatusActive,
	}

	deposit := ledger.Transaction{
		ID:     uuid.New(),
		UserID: userID,
		Amount: dto.StakeAmount,
		Type:   ledger.TransactionTypeDeposit,
		Status: ledger.TransactionStatusCompleted,
	}

	if err := s.repo.Create(&g, &deposit); err != nil {
		log.WithError(err).Error("Failed to create goal with deposit")
		return nil, err
	}

	log.WithField("goal_id", g.ID).Info("Goal created")
	return s.toResponse(&g, 0), nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, category, status string) ([]GoalResponse, error) {
	log := config.WithContext(ctx)

	statusFilter := GoalStatus(status)
	if status != "" && !statusFilter.IsValid() {
		return nil, ErrInvalidStatus
	}

	goals, err := s.repo.FindAllByUser(userID, category, statusFilter)
	if err != nil {
		log.WithError(err).Error("Failed to list goals")
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(goals))
	for _, g := range goals {
		ids = append(ids, g.ID)
	}

	counts, err := s.progress.CountByGoals(ids)
	if err != nil {
		log.WithError(err).Error("Failed to count check-ins")
		return nil, err
	}

	responses := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, *s.toResponse(&goals[i], counts[goals[i].ID]))
	}
	return responses, nil
}

func (s *service) Get(ctx context.Context, id, userID uuid.UUID) (*GoalResponse, error) {
	g, err := s.findOwned(id, userID)
	if err != nil {
		return nil, err
	}

	completed, err := s.progress.CountByGoal(g.ID)
	if err != nil {
		return nil, err
	}

	return s.toResponse(g, completed), nil
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateGoalDTO) (*GoalResponse, error) {
	log := config.WithContext(ctx)

	g, err := s.findOwned(id, userID)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		if strings.TrimSpace(*dto.Title) == "" {
			return nil, ErrTitleRequired
		}
		g.Title = strings.TrimSpace(*dto.Title)
	}
	if dto.Description != nil {
		g.Description = *dto.Description
	}
	if dto.EndDate != nil {
		if !dto.EndDate.After(time.Now()) {
			return nil, ErrEndDateNotFuture
		}
		g.EndDate = *dto.EndDate
	}

	if err := s.repo.Update(g); err != nil {
		log.WithError(err).Error("Failed to update goal")
		return nil, err
	}

	completed, err := s.progress.CountByGoal(g.ID)
	if err != nil {
		return nil, err
	}

	return s.toResponse(g, completed), nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.findOwned(id, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete goal")
		return err
	}

	log.WithField("goal_id", id).Info("Goal deleted")
	return nil
}

func (s *service) Categories(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return s.repo.CategoriesByUser(userID)
}

func (s *service) findOwned(id, userID uuid.UUID) (*Goal, error) {
	g, err := s.repo.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGoalNotFound
	}
	return g, nil
}

func (s *service) toResponse(g *Goal, completedDays int) *GoalResponse {
	totalDays := TotalDays(g.StartDate, g.EndDate)

	return &GoalResponse{
		ID:                 g.ID,
		Title:              g.Title,
		Description:        g.Description,
		Category:           g.Category,
		Tags:               []string(g.Tags),
		StartDate:          g.StartDate,
		EndDate:            g.EndDate,
		StakeAmount:        g.StakeAmount,
		Status:             g.Status,
		UserID:             g.UserID,
		TotalDays:          totalDays,
		CompletedDays:      completedDays,
		ProgressPercentage: Percentage(completedDays, totalDays),
		CreatedAt:          g.CreatedAt,
		UpdatedAt:          g.UpdatedAt,
	}
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
