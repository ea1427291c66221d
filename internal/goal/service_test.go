package goal_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/stakeit-app/stakeit-api/internal/goal"
	"github.com/stakeit-app/stakeit-api/internal/ledger"
)

type createdPair struct {
	goal    goal.Goal
	deposit ledger.Transaction
}

type fakeGoalRepo struct {
	goals   map[uuid.UUID]*goal.Goal
	created []createdPair
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[uuid.UUID]*goal.Goal)}
}

func (f *fakeGoalRepo) Create(g *goal.Goal, deposit *ledger.Transaction) error {
	deposit.GoalID = g.ID
	f.goals[g.ID] = g
	f.created = append(f.created, createdPair{goal: *g, deposit: *deposit})
	return nil
}

func (f *fakeGoalRepo) FindByID(id uuid.UUID) (*goal.Goal, error) {
	g, ok := f.goals[id]
	if !ok {
		return nil, nil
	}
	copied := *g
	return &copied, nil
}

func (f *fakeGoalRepo) FindByIDAndUser(id, userID uuid.UUID) (*goal.Goal, error) {
	g, ok := f.goals[id]
	if !ok || g.UserID != userID {
		return nil, nil
	}
	copied := *g
	return &copied, nil
}

func (f *fakeGoalRepo) FindAllByUser(userID uuid.UUID, category string, status goal.GoalStatus) ([]goal.Goal, error) {
	var out []goal.Goal
	for _, g := range f.goals {
		if g.UserID != userID {
			continue
		}
		if category != "" && g.Category != category {
			continue
		}
		if status != "" && g.Status != status {
			continue
		}
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeGoalRepo) FindExpiredActive(now time.Time) ([]goal.Goal, error) {
	return nil, nil
}

func (f *fakeGoalRepo) Update(g *goal.Goal) error {
	f.goals[g.ID] = g
	return nil
}

func (f *fakeGoalRepo) Delete(id uuid.UUID) error {
	delete(f.goals, id)
	return nil
}

func (f *fakeGoalRepo) CategoriesByUser(userID uuid.UUID) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, g := range f.goals {
		if g.UserID == userID && g.Category != "" && !seen[g.Category] {
			seen[g.Category] = true
			out = append(out, g.Category)
		}
	}
	return out, nil
}

func (f *fakeGoalRepo) SettleWithTransaction(goalID uuid.UUID, status goal.GoalStatus, txn *ledger.Transaction) error {
	return nil
}

type staticCounter struct {
	counts map[uuid.UUID]int
}

func (c *staticCounter) CountByGoal(goalID uuid.UUID) (int, error) {
	return c.counts[goalID], nil
}

func (c *staticCounter) CountByGoals(goalIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int, len(goalIDs))
	for _, id := range goalIDs {
		out[id] = c.counts[id]
	}
	return out, nil
}

func newTestService(repo *fakeGoalRepo) goal.Service {
	return goal.NewService(repo, &staticCounter{counts: map[uuid.UUID]int{}})
}

func validDTO() goal.CreateGoalDTO {
	return goal.CreateGoalDTO{
		Title:       "meditate daily",
		Description: "10 minutes each morning",
		Category:    "health",
		Tags:        "mindfulness, morning , ",
		EndDate:     time.Now().AddDate(0, 0, 30),
		StakeAmount: decimal.NewFromInt(100),
	}
}

func TestCreateGoal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("CreatesGoalWithDeposit", func(t *testing.T) {
		repo := newFakeGoalRepo()
		svc := newTestService(repo)

		response, err := svc.Create(ctx, userID, validDTO())
		require.NoError(t, err)

		require.Equal(t, goal.GoalStatusActive, response.Status)
		require.Equal(t, []string{"mindfulness", "morning"}, response.Tags)
		require.Equal(t, 0, response.CompletedDays)

		require.Len(t, repo.created, 1)
		pair := repo.created[0]
		require.Equal(t, ledger.TransactionTypeDeposit, pair.deposit.Type)
		require.Equal(t, ledger.TransactionStatusCompleted, pair.deposit.Status)
		require.True(t, pair.deposit.Amount.Equal(pair.goal.StakeAmount))
		require.Equal(t, pair.goal.ID, pair.deposit.GoalID)
		require.Equal(t, userID, pair.deposit.UserID)
	})

	t.Run("RejectsEmptyTitle", func(t *testing.T) {
		dto := validDTO()
		dto.Title = "   "

		_, err := newTestService(newFakeGoalRepo()).Create(ctx, userID, dto)
		require.ErrorIs(t, err, goal.ErrTitleRequired)
	})

	t.Run("RejectsNonPositiveStake", func(t *testing.T) {
		svc := newTestService(newFakeGoalRepo())

		dto := validDTO()
		dto.StakeAmount = decimal.Zero
		_, err := svc.Create(ctx, userID, dto)
		require.ErrorIs(t, err, goal.ErrInvalidStake)

		dto.StakeAmount = decimal.NewFromInt(-10)
		_, err = svc.Create(ctx, userID, dto)
		require.ErrorIs(t, err, goal.ErrInvalidStake)
	})

	t.Run("RejectsPastEndDate", func(t *testing.T) {
		dto := validDTO()
		dto.EndDate = time.Now().Add(-time.Hour)

		_, err := newTestService(newFakeGoalRepo()).Create(ctx, userID, dto)
		require.ErrorIs(t, err, goal.ErrEndDateNotFuture)
	})
}

func TestUpdateGoal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	setup := func(t *testing.T) (*fakeGoalRepo, goal.Service, uuid.UUID) {
		repo := newFakeGoalRepo()
		svc := newTestService(repo)
		response, err := svc.Create(ctx, userID, validDTO())
		require.NoError(t, err)
		return repo, svc, response.ID
	}

	t.Run("UpdatesFields", func(t *testing.T) {
		_, svc, id := setup(t)

		title := "meditate twice daily"
		newEnd := time.Now().AddDate(0, 0, 60)
		response, err := svc.Update(ctx, id, userID, goal.UpdateGoalDTO{
			Title:   &title,
			EndDate: &newEnd,
		})
		require.NoError(t, err)
		require.Equal(t, title, response.Title)
		require.True(t, response.EndDate.Equal(newEnd))
		// Status is engine-owned and untouched by updates.
		require.Equal(t, goal.GoalStatusActive, response.Status)
	})

	t.Run("RejectsPastEndDate", func(t *testing.T) {
		_, svc, id := setup(t)

		past := time.Now().Add(-time.Hour)
		_, err := svc.Update(ctx, id, userID, goal.UpdateGoalDTO{EndDate: &past})
		require.ErrorIs(t, err, goal.ErrEndDateNotFuture)
	})

	t.Run("OtherUsersGoalLooksMissing", func(t *testing.T) {
		_, svc, id := setup(t)

		title := "hijack"
		_, err := svc.Update(ctx, id, uuid.New(), goal.UpdateGoalDTO{Title: &title})
		require.ErrorIs(t, err, goal.ErrGoalNotFound)
	})
}

func TestListGoals(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := newFakeGoalRepo()
	svc := newTestService(repo)

	dto := validDTO()
	dto.Category = "health"
	_, err := svc.Create(ctx, userID, dto)
	require.NoError(t, err)

	dto = validDTO()
	dto.Title = "save money"
	dto.Category = "finance"
	_, err = svc.Create(ctx, userID, dto)
	require.NoError(t, err)

	t.Run("All", func(t *testing.T) {
		goals, err := svc.List(ctx, userID, "", "")
		require.NoError(t, err)
		require.Len(t, goals, 2)
	})

	t.Run("ByCategory", func(t *testing.T) {
		goals, err := svc.List(ctx, userID, "finance", "")
		require.NoError(t, err)
		require.Len(t, goals, 1)
		require.Equal(t, "save money", goals[0].Title)
	})

	t.Run("InvalidStatusFilter", func(t *testing.T) {
		_, err := svc.List(ctx, userID, "", "BOGUS")
		require.ErrorIs(t, err, goal.ErrInvalidStatus)
	})

	t.Run("OtherUserSeesNothing", func(t *testing.T) {
		goals, err := svc.List(ctx, uuid.New(), "", "")
		require.NoError(t, err)
		require.Empty(t, goals)
	})
}

func TestDeleteGoal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := newFakeGoalRepo()
	svc := newTestService(repo)
	response, err := svc.Create(ctx, userID, validDTO())
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, response.ID, uuid.New()), goal.ErrGoalNotFound)
	require.NoError(t, svc.Delete(ctx, response.ID, userID))
	require.ErrorIs(t, svc.Delete(ctx, response.ID, userID), goal.ErrGoalNotFound)
}
