// Package scheduler runs the deposit authorization loop: a single long-lived
// poller that finds deposits due inside the forward-looking pickup window and
// drives each through one authorization attempt.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/fleetrent/deposit-engine/pkg/models"
	"github.com/fleetrent/deposit-engine/pkg/storage"
)

// Authorizer is the slice of the deposit engine the scheduler drives.
type Authorizer interface {
	Authorize(ctx context.Context, payment *models.Payment) (*models.Payment, error)
}

// Config holds the scheduler's operational knobs. All of them are
// env-overridable; see cmd/app.
type Config struct {
	// PollInterval is the pause between ticks.
	PollInterval time.Duration

	// Window is how far ahead of pickup a deposit becomes due.
	Window time.Duration

	// BatchSize bounds how many deposits one tick may process.
	BatchSize int32

	// InterCallDelay is the fixed pause between items within a tick, to
	// respect processor rate limits. Distinct from failure backoff.
	InterCallDelay time.Duration

	// StuckAfter is how long a deposit may sit in PROCESSING before a tick
	// reclaims it as crashed work.
	StuckAfter time.Duration
}

// DefaultConfig matches the documented operational defaults.
var DefaultConfig = Config{
	PollInterval:   time.Minute,
	Window:         14 * 24 * time.Hour,
	BatchSize:      25,
	InterCallDelay: 500 * time.Millisecond,
	StuckAfter:     30 * time.Minute,
}

// Scheduler owns all its mutable state; construct one per process and run it
// on a single goroutine.
type Scheduler struct {
	Store  storage.PaymentReader
	Engine Authorizer
	Config Config
	Logger *slog.Logger

	// Now is injected for tests; defaults to time.Now.
	Now func() time.Time
}

// New creates a Scheduler.
func New(store storage.PaymentReader, engine Authorizer, cfg Config, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		Store:  store,
		Engine: engine,
		Config: cfg,
		Logger: logger,
		Now:    time.Now,
	}
}

// Run polls until the context is cancelled. The loop itself never fails: a
// broken tick is logged and the next tick starts on schedule.
func (s *Scheduler) Run(ctx context.Context) {
	s.Logger.Info("deposit scheduler started",
		slog.Duration("poll_interval", s.Config.PollInterval),
		slog.Duration("window", s.Config.Window),
	)

	ticker := time.NewTicker(s.Config.PollInterval)
	defer ticker.Stop()

	for {
		if err := s.Tick(ctx); err != nil && ctx.Err() == nil {
			s.Logger.Error("scheduler tick failed", slog.String("error", err.Error()))
		}

		select {
		case <-ctx.Done():
			s.Logger.Info("deposit scheduler stopped")
			return
		case <-ticker.C:
		}
	}
}

// Tick processes one batch of due deposits sequentially, most urgent pickup
// first. One failing item never aborts the rest of the batch.
func (s *Scheduler) Tick(ctx context.Context) error {
	windowEnd := s.Now().Add(s.Config.Window)
	due, err := s.Store.ListDueDeposits(ctx, windowEnd, s.Config.StuckAfter, s.Config.BatchSize)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return nil
	}

	s.Logger.Info("processing due deposits", slog.Int("count", len(due)))

	for i := range due {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		s.processItem(ctx, &due[i])

		// Fixed pause between processor calls within a tick.
		if i < len(due)-1 && s.Config.InterCallDelay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.Config.InterCallDelay):
			}
		}
	}
	return nil
}

// processItem is the per-item failure boundary: nothing escapes it, not even
// a panic, so the scheduler survives indefinitely across ticks.
func (s *Scheduler) processItem(ctx context.Context, payment *models.Payment) {
	defer func() {
		if r := recover(); r != nil {
			s.Logger.Error("panic while processing deposit",
				slog.String("payment_id", payment.Id),
				slog.Any("panic", r),
			)
		}
	}()

	if _, err := s.Engine.Authorize(ctx, payment); err != nil {
		// Persistence failed; the row stays SCHEDULED or PROCESSING and the
		// next tick will see it again. The gateway-side idempotency key
		// keeps the reprocessing from double-charging.
		s.Logger.Error("failed to settle deposit attempt",
			slog.String("payment_id", payment.Id),
			slog.String("error", err.Error()),
		)
	}
}
