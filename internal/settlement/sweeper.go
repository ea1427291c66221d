package settlement

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const DefaultSweepInterval = time.Hour

// Sweeper runs the settlement sweep once on start and then on a fixed
// interval, on its own goroutine, for the lifetime of the process.
type Sweeper struct {
	service  Service
	interval time.Duration

	mu      sync.Mutex
	running bool
	done    chan struct{}
}

func NewSweeper(service Service, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Sweeper{
		service:  service,
		interval: interval,
	}
}

func (s *Sweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("sweeper is already running")
	}
	s.running = true
	s.done = make(chan struct{})
	s.mu.Unlock()

	logrus.WithField("interval", s.interval.String()).Info("Settlement sweeper starting")

	go s.runLoop(ctx)
	return nil
}

// Stop signals the loop to exit. Safe to call more than once; it does not
// interrupt a sweep already in flight.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	logrus.Info("Settlement sweeper stopping")
	close(s.done)
	s.running = false
}

func (s *Sweeper) runLoop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Goals that expired while the process was down are settled right away.
	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Settlement sweeper stopped (context cancelled)")
			return
		case <-s.done:
			logrus.Info("Settlement sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	results, err := s.service.RunSweep(ctx, time.Now())
	if err != nil {
		// A failed cycle is never fatal; the next tick retries.
		logrus.WithError(err).Error("Settlement sweep failed")
		return
	}

	if len(results) > 0 {
		logrus.WithField("settled", len(results)).Info("Settlement sweep completed")
	} else {
		logrus.Debug("Settlement sweep completed (no expired goals)")
	}
}
