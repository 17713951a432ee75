package deposits

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetrent/deposit-engine/pkg/gateway"
	"github.com/fleetrent/deposit-engine/pkg/models"
	"github.com/fleetrent/deposit-engine/pkg/storage"
)

// Engine drives a booking's security deposit through its lifecycle against
// the payment processor. All ledger writes go through the guarded deposit
// write, so the invariants on the payment record hold after every commit.
type Engine struct {
	Store     storage.PaymentStore
	Bookings  storage.BookingReader
	Customers storage.CustomerReader
	Tenants   storage.TenantReader
	Gateway   gateway.Gateway
	Retry     RetryPolicy
	Logger    *slog.Logger

	// Now is injected for tests; defaults to time.Now.
	Now func() time.Time
}

// NewEngine creates an Engine with the default retry policy.
func NewEngine(store storage.PaymentStore, bookings storage.BookingReader, customers storage.CustomerReader, tenants storage.TenantReader, gw gateway.Gateway, logger *slog.Logger) *Engine {
	return &Engine{
		Store:     store,
		Bookings:  bookings,
		Customers: customers,
		Tenants:   tenants,
		Gateway:   gw,
		Retry:     DefaultRetryPolicy,
		Logger:    logger,
		Now:       time.Now,
	}
}

// Authorize runs one authorization attempt for a due deposit and persists the
// outcome unconditionally: after it returns, the deposit is AUTHORIZED,
// CAPTURED, FAILED, or re-SCHEDULED for a later attempt, never left dangling
// in memory. The returned error reports persistence problems only; a
// processor rejection is an outcome, not an error.
func (e *Engine) Authorize(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	logger := e.Logger.With(
		slog.String("payment_id", payment.Id),
		slog.String("booking_id", payment.BookingID),
		slog.String("tenant_id", payment.TenantID),
	)

	// Precondition checks happen before anything is persisted; their
	// failures are terminal for the attempt and skip the retry counter.
	booking, customer, tenant, precondErr := e.checkPreconditions(ctx, payment)
	if precondErr != nil {
		logger.Warn("deposit precondition failed", slog.String("reason", precondErr.Reason))
		return e.persistFailure(ctx, payment, payment.Deposit.Status, precondErr.Reason, false)
	}

	// Create a processor customer if the payment has none yet. A failure
	// here stops the attempt before any hold exists.
	if payment.CustomerRef == "" {
		ref, err := e.Gateway.CreateCustomer(ctx, tenant.AccountID, gateway.CustomerProfile{
			Name:  customer.Name,
			Email: customer.Email,
			Phone: customer.Phone,
		})
		if err != nil {
			reason := fmt.Sprintf("Unable to create processor customer: %s", gatewayMessage(err))
			logger.Warn("processor customer creation failed", slog.String("reason", reason))
			return e.persistFailure(ctx, payment, payment.Deposit.Status, reason, false)
		}
		if err := e.Store.SetCustomerRef(ctx, payment.Id, ref); err != nil {
			return nil, fmt.Errorf("failed to persist customer ref: %w", err)
		}
		payment.CustomerRef = ref
		payment.Version++
	}

	// Persist PROCESSING before the network call: a crash after this point
	// is observable as stuck-in-processing rather than silently lost.
	from := payment.Deposit.Status
	processing := payment.Deposit
	processing.Status = models.DepositProcessing
	current, err := e.Store.UpdateDeposit(ctx, payment.Id, storage.DepositWrite{
		From:    from,
		Deposit: processing,
		Version: payment.Version,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mark deposit processing: %w", err)
	}

	result, attemptErr := e.placeHold(ctx, current, booking, tenant)
	if attemptErr != nil {
		reason := gatewayMessage(attemptErr)
		logger.Warn("deposit authorization failed", slog.String("reason", reason))
		return e.persistFailure(ctx, current, models.DepositProcessing, reason, true)
	}

	return e.persistHoldOutcome(ctx, current, result, logger)
}

// checkPreconditions loads the collaborating records and reports the first
// missing one as a typed precondition failure.
func (e *Engine) checkPreconditions(ctx context.Context, payment *models.Payment) (*models.Booking, *models.Customer, *models.Tenant, *PreconditionError) {
	booking, err := e.Bookings.GetBooking(ctx, payment.BookingID)
	if err != nil {
		return nil, nil, nil, &PreconditionError{Reason: ReasonBookingMissing}
	}
	if booking.Cancelled {
		return nil, nil, nil, &PreconditionError{Reason: ReasonBookingCancelled}
	}
	if payment.PaymentMethodRef == "" && booking.PaymentMethodRef == "" {
		return nil, nil, nil, &PreconditionError{Reason: ReasonPaymentMethodMissing}
	}

	customer, err := e.Customers.GetCustomer(ctx, payment.CustomerID)
	if err != nil {
		return nil, nil, nil, &PreconditionError{Reason: ReasonCustomerMissing}
	}

	tenant, err := e.Tenants.GetTenant(ctx, payment.TenantID)
	if err != nil {
		return nil, nil, nil, &PreconditionError{Reason: fmt.Sprintf("Tenant connected account is missing: %s", payment.TenantID)}
	}

	return booking, customer, tenant, nil
}

// placeHold creates and confirms the authorization-only hold.
func (e *Engine) placeHold(ctx context.Context, payment *models.Payment, booking *models.Booking, tenant *models.Tenant) (*gateway.HoldResult, error) {
	paymentMethod := payment.PaymentMethodRef
	if paymentMethod == "" {
		paymentMethod = booking.PaymentMethodRef
	}

	result, err := e.Gateway.CreateHold(ctx, tenant.AccountID, gateway.HoldRequest{
		Amount:           payment.Deposit.Amount,
		Currency:         payment.Currency,
		CustomerRef:      payment.CustomerRef,
		PaymentMethodRef: paymentMethod,
		Metadata: map[string]string{
			"payment_type":   "security_deposit",
			"booking_id":     booking.Id,
			"booking_number": booking.BookingNumber,
			"tenant_id":      payment.TenantID,
			"customer_id":    payment.CustomerID,
			"pickup_date":    booking.PickupAt.Format(time.RFC3339),
		},
		CaptureImmediately: false,
		ExtendedAuth:       true,
		// Stable across re-runs of the same attempt: a crash between the
		// processor call and the outcome persist cannot double-authorize.
		IdempotencyKey: fmt.Sprintf("deposit-%s-attempt-%d", booking.Id, payment.Deposit.RetryCount),
	})
	if err != nil {
		return nil, err
	}

	confirmed, err := e.Gateway.ConfirmHold(ctx, tenant.AccountID, result.HoldRef)
	if err != nil {
		return nil, err
	}
	return confirmed, nil
}

// persistHoldOutcome maps the confirmed hold status onto the deposit state
// and persists it.
func (e *Engine) persistHoldOutcome(ctx context.Context, payment *models.Payment, result *gateway.HoldResult, logger *slog.Logger) (*models.Payment, error) {
	now := e.Now()
	deposit := payment.Deposit
	deposit.PaymentIntentID = result.HoldRef
	deposit.ChargeID = result.ChargeID

	switch result.Status {
	case gateway.HoldRequiresCapture:
		deposit.Status = models.DepositAuthorized
		deposit.AuthorizedAt = &now
		deposit.FailureReason = nil
	case gateway.HoldSucceeded:
		// The processor captured synchronously.
		deposit.Status = models.DepositCaptured
		deposit.AuthorizedAt = &now
		deposit.CapturedAt = &now
		deposit.ChargedAmount = deposit.Amount
		deposit.FailureReason = nil
	default:
		reason := fmt.Sprintf("Deposit hold confirmation returned status %q", result.Status)
		logger.Warn("deposit hold not authorized", slog.String("reason", reason))
		return e.persistFailure(ctx, payment, models.DepositProcessing, reason, true)
	}

	updated, err := e.Store.UpdateDeposit(ctx, payment.Id, storage.DepositWrite{
		From:    models.DepositProcessing,
		Deposit: deposit,
		Version: payment.Version,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist authorization outcome: %w", err)
	}

	logger.Info("deposit authorization settled",
		slog.String("status", string(deposit.Status)),
		slog.String("payment_intent_id", deposit.PaymentIntentID),
	)
	return updated, nil
}

// persistFailure records the failed attempt and, when the failure class is
// retryable and the cap allows, re-queues the deposit with a geometrically
// backed-off due time. The failure reason overwrites the previous one.
func (e *Engine) persistFailure(ctx context.Context, payment *models.Payment, from models.DepositStatus, reason string, retryable bool) (*models.Payment, error) {
	deposit := payment.Deposit
	deposit.Status = models.DepositFailed
	deposit.FailureReason = &reason
	if retryable {
		deposit.RetryCount++
	}

	failed, err := e.Store.UpdateDeposit(ctx, payment.Id, storage.DepositWrite{
		From:    from,
		Deposit: deposit,
		Version: payment.Version,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist deposit failure: %w", err)
	}

	if !retryable {
		return failed, nil
	}
	delay, ok := e.Retry.Next(deposit.RetryCount)
	if !ok {
		e.Logger.Warn("deposit failed terminally",
			slog.String("payment_id", payment.Id),
			slog.Int("retry_count", deposit.RetryCount),
		)
		return failed, nil
	}

	requeued := failed.Deposit
	requeued.Status = models.DepositScheduled
	requeued.ScheduledFor = e.Now().Add(delay)
	updated, err := e.Store.UpdateDeposit(ctx, payment.Id, storage.DepositWrite{
		From:    models.DepositFailed,
		Deposit: requeued,
		Version: failed.Version,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to re-queue deposit: %w", err)
	}
	return updated, nil
}

// gatewayMessage extracts the processor's own message when the error is a
// typed gateway failure, otherwise the plain error text.
func gatewayMessage(err error) string {
	var gwErr *gateway.GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.Message
	}
	return err.Error()
}
