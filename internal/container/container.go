package container

import (
	"context"
	"log"
	"os"

	"github.com/stakeit-app/stakeit-api/internal/analytics"
	"github.com/stakeit-app/stakeit-api/internal/auth"
	"github.com/stakeit-app/stakeit-api/internal/checkin"
	"github.com/stakeit-app/stakeit-api/internal/config"
	"github.com/stakeit-app/stakeit-api/internal/goal"
	"github.com/stakeit-app/stakeit-api/internal/ledger"
	"github.com/stakeit-app/stakeit-api/internal/settlement"
	"github.com/stakeit-app/stakeit-api/internal/user"
)

type Container struct {
	UserContainer       *user.UserContainer
	GoalContainer       *goal.GoalContainer
	CheckinContainer    *checkin.Container
	LedgerContainer     *ledger.Container
	SettlementContainer *settlement.Container
	AnalyticsContainer  *analytics.Container
}

func New() *Container {
	config.Init()
	auth.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&goal.Goal{},
		&checkin.ProgressLog{},
		&ledger.Transaction{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	ledgerContainer := ledger.NewContainer(config.DB)

	// goal and checkin cross-wire: goal views count check-ins, check-ins
	// validate against the goal store.
	goalRepo := goal.NewRepository(config.DB)
	checkinContainer := checkin.NewContainer(config.DB, goalRepo)
	goalContainer := goal.NewGoalContainer(config.DB, checkinContainer.Repo)

	settlementContainer := settlement.NewContainer(goalRepo, checkinContainer.Repo)
	analyticsContainer := analytics.NewContainer(goalRepo, ledgerContainer.Repo)

	return &Container{
		UserContainer:       userContainer,
		GoalContainer:       goalContainer,
		CheckinContainer:    checkinContainer,
		LedgerContainer:     ledgerContainer,
		SettlementContainer: settlementContainer,
		AnalyticsContainer:  analyticsContainer,
	}
}
