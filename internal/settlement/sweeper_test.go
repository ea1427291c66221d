package settlement_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/stakeit-app/stakeit-api/internal/settlement"
)

type countingService struct {
	sweeps atomic.Int64
}

func (c *countingService) SettleGoal(ctx context.Context, goalID uuid.UUID, now time.Time) (*settlement.Result, error) {
	return nil, nil
}

func (c *countingService) RunSweep(ctx context.Context, now time.Time) ([]settlement.Result, error) {
	c.sweeps.Add(1)
	return nil, nil
}

func TestSweeperRunsImmediatelyOnStart(t *testing.T) {
	svc := &countingService{}
	sweeper := settlement.NewSweeper(svc, time.Hour)

	require.NoError(t, sweeper.Start(context.Background()))
	defer sweeper.Stop()

	require.Eventually(t, func() bool {
		return svc.sweeps.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestSweeperTicks(t *testing.T) {
	svc := &countingService{}
	sweeper := settlement.NewSweeper(svc, 20*time.Millisecond)

	require.NoError(t, sweeper.Start(context.Background()))
	defer sweeper.Stop()

	require.Eventually(t, func() bool {
		return svc.sweeps.Load() >= 3
	}, time.Second, 10*time.Millisecond)
}

func TestSweeperRejectsDoubleStart(t *testing.T) {
	svc := &countingService{}
	sweeper := settlement.NewSweeper(svc, time.Hour)

	require.NoError(t, sweeper.Start(context.Background()))
	defer sweeper.Stop()

	require.Error(t, sweeper.Start(context.Background()))
}

func TestSweeperStops(t *testing.T) {
	svc := &countingService{}
	sweeper := settlement.NewSweeper(svc, 20*time.Millisecond)

	require.NoError(t, sweeper.Start(context.Background()))

	require.Eventually(t, func() bool {
		return svc.sweeps.Load() >= 1
	}, time.Second, 10*time.Millisecond)

	sweeper.Stop()

	// A tick racing the stop signal may run one last sweep; after that the
	// count must hold steady.
	time.Sleep(50 * time.Millisecond)
	count := svc.sweeps.Load()

	time.Sleep(100 * time.Millisecond)
	require.Equal(t, count, svc.sweeps.Load())

	// Stop is idempotent.
	sweeper.Stop()
}

func TestSweeperStopsOnContextCancel(t *testing.T) {
	svc := &countingService{}
	sweeper := settlement.NewSweeper(svc, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, sweeper.Start(ctx))
	defer sweeper.Stop()

	require.Eventually(t, func() bool {
		return svc.sweeps.Load() >= 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	time.Sleep(50 * time.Millisecond)
	count := svc.sweeps.Load()

	time.Sleep(100 * time.Millisecond)
	require.Equal(t, count, svc.sweeps.Load())
}
