package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/fleetrent/deposit-engine/pkg/models"
	storagemocks "github.com/fleetrent/deposit-engine/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeAuthorizer records the order deposits were attempted in.
type fakeAuthorizer struct {
	attempted []string
	fn        func(payment *models.Payment) (*models.Payment, error)
}

func (f *fakeAuthorizer) Authorize(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	f.attempted = append(f.attempted, payment.Id)
	if f.fn != nil {
		return f.fn(payment)
	}
	return payment, nil
}

func newTestScheduler(t *testing.T, auth *fakeAuthorizer) (*Scheduler, *storagemocks.PaymentStore) {
	store := storagemocks.NewPaymentStore(t)
	cfg := DefaultConfig
	cfg.InterCallDelay = 0
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(store, auth, cfg, logger)
	s.Now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return s, store
}

func duePayments(ids ...string) []models.Payment {
	out := make([]models.Payment, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Payment{
			Id:      id,
			Deposit: models.Deposit{Amount: 500, Status: models.DepositScheduled},
		})
	}
	return out
}

func TestTick(t *testing.T) {
	t.Run("Processes The Batch In Order", func(t *testing.T) {
		auth := &fakeAuthorizer{}
		s, store := newTestScheduler(t, auth)

		windowEnd := s.Now().Add(s.Config.Window)
		store.On("ListDueDeposits", mock.Anything, windowEnd, s.Config.StuckAfter, s.Config.BatchSize).
			Return(duePayments("pay_1", "pay_2", "pay_3"), nil)

		require.NoError(t, s.Tick(context.Background()))
		assert.Equal(t, []string{"pay_1", "pay_2", "pay_3"}, auth.attempted)
	})

	t.Run("One Failing Item Does Not Abort The Batch", func(t *testing.T) {
		auth := &fakeAuthorizer{fn: func(payment *models.Payment) (*models.Payment, error) {
			if payment.Id == "pay_2" {
				return nil, errors.New("conditional write failed")
			}
			return payment, nil
		}}
		s, store := newTestScheduler(t, auth)

		store.On("ListDueDeposits", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(duePayments("pay_1", "pay_2", "pay_3"), nil)

		require.NoError(t, s.Tick(context.Background()))
		assert.Equal(t, []string{"pay_1", "pay_2", "pay_3"}, auth.attempted)
	})

	t.Run("A Panicking Item Is Contained", func(t *testing.T) {
		auth := &fakeAuthorizer{fn: func(payment *models.Payment) (*models.Payment, error) {
			if payment.Id == "pay_1" {
				panic("nil dereference in gateway response")
			}
			return payment, nil
		}}
		s, store := newTestScheduler(t, auth)

		store.On("ListDueDeposits", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(duePayments("pay_1", "pay_2"), nil)

		require.NoError(t, s.Tick(context.Background()))
		assert.Equal(t, []string{"pay_1", "pay_2"}, auth.attempted)
	})

	t.Run("Empty Batch Is A No Op", func(t *testing.T) {
		auth := &fakeAuthorizer{}
		s, store := newTestScheduler(t, auth)

		store.On("ListDueDeposits", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]models.Payment{}, nil)

		require.NoError(t, s.Tick(context.Background()))
		assert.Empty(t, auth.attempted)
	})

	t.Run("Query Failure Surfaces", func(t *testing.T) {
		auth := &fakeAuthorizer{}
		s, store := newTestScheduler(t, auth)

		store.On("ListDueDeposits", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("throttled"))

		assert.Error(t, s.Tick(context.Background()))
	})

	t.Run("Cancellation Stops The Batch", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		auth := &fakeAuthorizer{fn: func(payment *models.Payment) (*models.Payment, error) {
			cancel()
			return payment, nil
		}}
		s, store := newTestScheduler(t, auth)

		store.On("ListDueDeposits", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(duePayments("pay_1", "pay_2", "pay_3"), nil)

		err := s.Tick(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, []string{"pay_1"}, auth.attempted)
	})
}

func TestRun(t *testing.T) {
	t.Run("Stops On Context Cancel", func(t *testing.T) {
		auth := &fakeAuthorizer{}
		s, store := newTestScheduler(t, auth)
		s.Config.PollInterval = 5 * time.Millisecond

		ctx, cancel := context.WithCancel(context.Background())
		store.On("ListDueDeposits", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]models.Payment{}, nil).
			Run(func(args mock.Arguments) { cancel() })

		done := make(chan struct{})
		go func() {
			s.Run(ctx)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop after cancellation")
		}
	})
}
