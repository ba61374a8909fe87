package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Sweeper periodically removes expired sessions in the background.
type Sweeper struct {
	manager  *Manager
	interval time.Duration
	logger   zerolog.Logger

	stopCh    chan struct{}
	stoppedCh chan struct{}

	mutex   sync.Mutex
	running bool
}

// NewSweeper creates a sweeper for the given manager.
func NewSweeper(manager *Manager, interval time.Duration, logger zerolog.Logger) *Sweeper {
	return &Sweeper{
		manager:  manager,
		interval: interval,
		logger:   logger.With().Str("component", "session_sweeper").Logger(),
	}
}

// Start begins the background sweep loop. Starting a running sweeper is a
// no-op.
func (s *Sweeper) Start(ctx context.Context) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.running {
		s.logger.Warn().Msg("Sweeper is already running")
		return
	}

	s.logger.Info().
		Dur("interval", s.interval).
		Msg("Starting session sweeper")

	s.stopCh = make(chan struct{})
	s.stoppedCh = make(chan struct{})
	s.running = true

	go s.run(ctx, s.stopCh, s.stoppedCh)
}

// Stop halts the sweep loop and waits for it to finish. Stopping a stopped
// sweeper is a no-op.
func (s *Sweeper) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.running {
		return
	}

	close(s.stopCh)
	<-s.stoppedCh
	s.running = false

	s.logger.Info().Msg("Session sweeper stopped")
}

// IsRunning reports whether the sweep loop is active.
func (s *Sweeper) IsRunning() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.running
}

func (s *Sweeper) run(ctx context.Context, stopCh, stoppedCh chan struct{}) {
	defer close(stoppedCh)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Sweeper stopping due to context cancellation")
			return
		case <-stopCh:
			return
		case <-ticker.C:
			s.manager.Sweep(ctx)
		}
	}
}
