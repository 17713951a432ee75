package webhooks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetrent/deposit-engine/pkg/models"
	"github.com/fleetrent/deposit-engine/pkg/storage"
)

// Reconciler applies asynchronous processor notifications to the ledger. It
// uses the same transition table as the scheduler-driven engine, so an event
// racing the scheduler on the same row is serialized by the guarded deposit
// write: whichever side loses re-reads or no-ops, never overwrites.
type Reconciler struct {
	Payments storage.PaymentStore
	Tenants  storage.TenantManager
	Events   storage.EventStore
	Logger   *slog.Logger

	// Now is injected for tests; defaults to time.Now.
	Now func() time.Time
}

// NewReconciler creates a Reconciler.
func NewReconciler(payments storage.PaymentStore, tenants storage.TenantManager, events storage.EventStore, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		Payments: payments,
		Tenants:  tenants,
		Events:   events,
		Logger:   logger,
		Now:      time.Now,
	}
}

// Apply reconciles one processor event against the ledger. Replays of an
// already-applied event id are no-ops; a transition the ledger has already
// moved past (the scheduler won the race) is also a no-op.
//
// The event id is recorded only after the ledger write succeeds. A transient
// ledger failure therefore leaves the event unrecorded and the redelivered
// message retries the whole application; the guarded deposit write and the
// transition table make re-application of a half-applied event a no-op.
func (r *Reconciler) Apply(ctx context.Context, ev *Event) error {
	logger := r.Logger.With(
		slog.String("event_id", ev.ID),
		slog.String("event_type", ev.Type),
	)

	processed, err := r.Events.IsEventProcessed(ctx, ev.ID)
	if err != nil {
		return fmt.Errorf("failed to check event: %w", err)
	}
	if processed {
		logger.Info("event already applied, skipping")
		return nil
	}

	switch ev.Type {
	case EventHoldConfirmed, EventHoldCaptured, EventHoldCanceled, EventHoldFailed:
		err = r.applyDepositEvent(ctx, ev, logger)
	case EventChargeRefunded:
		err = r.applyRefund(ctx, ev, logger)
	case EventAccountUpdated:
		err = r.Tenants.UpdateTenantCapabilities(ctx, ev.AccountID, ev.ChargesEnabled, ev.PayoutsEnabled)
	default:
		logger.Warn("unhandled event type reached reconciler")
	}
	if err != nil {
		return err
	}

	err = r.Events.MarkEventProcessed(ctx, models.ProcessedEvent{
		EventID:   ev.ID,
		EventType: ev.Type,
		ObjectID:  ev.ObjectID,
	})
	if errors.Is(err, storage.ErrEventAlreadyProcessed) {
		// A concurrent delivery recorded it first; its ledger write and ours
		// were serialized by the guarded deposit update.
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}

// applyDepositEvent maps a payment-intent event onto a deposit transition.
func (r *Reconciler) applyDepositEvent(ctx context.Context, ev *Event, logger *slog.Logger) error {
	payment, err := r.Payments.GetPaymentByIntent(ctx, ev.ObjectID)
	if err != nil {
		if errors.Is(err, storage.ErrPaymentNotFound) {
			// Not a deposit this ledger tracks; likely a payment created
			// outside this subsystem on the same account.
			logger.Info("no ledger row for processor reference", slog.String("object_id", ev.ObjectID))
			return nil
		}
		return err
	}

	now := r.Now()
	deposit := payment.Deposit
	from := deposit.Status

	switch ev.Type {
	case EventHoldConfirmed:
		deposit.Status = models.DepositAuthorized
		deposit.AuthorizedAt = &now
		deposit.FailureReason = nil
	case EventHoldCaptured:
		deposit.Status = models.DepositCaptured
		deposit.CapturedAt = &now
		deposit.ChargedAmount = deposit.Amount
		if ev.Amount > 0 && ev.Amount < deposit.Amount {
			deposit.Status = models.DepositPartiallyCaptured
			deposit.ChargedAmount = ev.Amount
		}
		deposit.FailureReason = nil
	case EventHoldCanceled:
		deposit.Status = models.DepositReleased
		deposit.ReleasedAt = &now
	case EventHoldFailed:
		reason := ev.FailureMessage
		if reason == "" {
			reason = "Processor reported the deposit hold failed"
		}
		deposit.Status = models.DepositFailed
		deposit.FailureReason = &reason
	}
	if ev.ChargeID != "" {
		deposit.ChargeID = ev.ChargeID
	}

	if from == deposit.Status {
		logger.Info("ledger already reflects event outcome", slog.String("status", string(from)))
		return nil
	}
	if !models.CanTransition(from, deposit.Status) {
		// The ledger moved past this state already; an out-of-order or
		// superseded notification changes nothing.
		logger.Info("event outcome superseded by newer ledger state",
			slog.String("from", string(from)),
			slog.String("to", string(deposit.Status)),
		)
		return nil
	}

	_, err = r.Payments.UpdateDeposit(ctx, payment.Id, storage.DepositWrite{
		From:    from,
		Deposit: deposit,
		Version: payment.Version,
	})
	if errors.Is(err, storage.ErrStaleDeposit) || errors.Is(err, storage.ErrIllegalTransition) {
		logger.Info("concurrent writer settled the deposit first")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to apply event to ledger: %w", err)
	}

	logger.Info("applied processor event",
		slog.String("payment_id", payment.Id),
		slog.String("from", string(from)),
		slog.String("to", string(deposit.Status)),
	)
	return nil
}

// applyRefund records a processor-side refund against the owning payment.
func (r *Reconciler) applyRefund(ctx context.Context, ev *Event, logger *slog.Logger) error {
	payment, err := r.Payments.GetPaymentByIntent(ctx, ev.ObjectID)
	if err != nil {
		if errors.Is(err, storage.ErrPaymentNotFound) {
			logger.Info("no ledger row for refunded charge", slog.String("charge_id", ev.ChargeID))
			return nil
		}
		return err
	}

	if err := r.Payments.RecordRefund(ctx, payment.Id, ev.RefundID, ev.Amount); err != nil {
		return fmt.Errorf("failed to record refund from event: %w", err)
	}
	logger.Info("recorded processor refund",
		slog.String("payment_id", payment.Id),
		slog.String("refund_id", ev.RefundID),
	)
	return nil
}
