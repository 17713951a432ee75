package deposits

import (
	"context"
	"fmt"

	"github.com/fleetrent/deposit-engine/pkg/models"
	"github.com/fleetrent/deposit-engine/pkg/storage"
)

// Capture converts part or all of an authorized hold into a charge. The
// requested amount must not exceed the authorized deposit amount; capturing
// less leaves the processor to release the remainder and the deposit ends in
// PARTIALLY_CAPTURED. The reason is free text, kept for audit.
func (e *Engine) Capture(ctx context.Context, paymentID string, amount int64, reason string) (*models.Payment, error) {
	payment, err := e.Store.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Deposit.Status != models.DepositAuthorized {
		return nil, ErrDepositNotAuthorized
	}
	if amount <= 0 || amount > payment.Deposit.Amount {
		return nil, ErrCaptureExceedsHold
	}

	tenant, err := e.Tenants.GetTenant(ctx, payment.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant account: %w", err)
	}

	result, err := e.Gateway.CaptureHold(ctx, tenant.AccountID, payment.Deposit.PaymentIntentID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to capture deposit hold: %w", err)
	}

	now := e.Now()
	deposit := payment.Deposit
	if amount < deposit.Amount {
		deposit.Status = models.DepositPartiallyCaptured
	} else {
		deposit.Status = models.DepositCaptured
	}
	deposit.ChargedAmount = amount
	deposit.CaptureReason = reason
	deposit.CapturedAt = &now
	if result.ChargeID != "" {
		deposit.ChargeID = result.ChargeID
	}

	updated, err := e.Store.UpdateDeposit(ctx, payment.Id, storage.DepositWrite{
		From:    models.DepositAuthorized,
		Deposit: deposit,
		Version: payment.Version,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist deposit capture: %w", err)
	}
	return updated, nil
}

// Release voids the remaining authorized amount of the hold. The charged
// amount is untouched: a release only affects what was never captured.
func (e *Engine) Release(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment, err := e.Store.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Deposit.Status != models.DepositAuthorized {
		return nil, ErrDepositNotAuthorized
	}

	tenant, err := e.Tenants.GetTenant(ctx, payment.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant account: %w", err)
	}

	if _, err := e.Gateway.ReleaseHold(ctx, tenant.AccountID, payment.Deposit.PaymentIntentID); err != nil {
		return nil, fmt.Errorf("failed to release deposit hold: %w", err)
	}

	now := e.Now()
	deposit := payment.Deposit
	deposit.Status = models.DepositReleased
	deposit.ReleasedAt = &now

	updated, err := e.Store.UpdateDeposit(ctx, payment.Id, storage.DepositWrite{
		From:    models.DepositAuthorized,
		Deposit: deposit,
		Version: payment.Version,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist deposit release: %w", err)
	}
	return updated, nil
}

// RefundDeposit returns part or all of a captured deposit charge to the
// customer and records the refund reference on the payment.
func (e *Engine) RefundDeposit(ctx context.Context, paymentID string, amount int64) (*models.Payment, error) {
	payment, err := e.Store.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Deposit.ChargeID == "" || amount <= 0 || amount > payment.Deposit.ChargedAmount {
		return nil, ErrNothingToRefund
	}

	tenant, err := e.Tenants.GetTenant(ctx, payment.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant account: %w", err)
	}

	refundID, err := e.Gateway.Refund(ctx, tenant.AccountID, payment.Deposit.ChargeID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to refund deposit charge: %w", err)
	}

	if err := e.Store.RecordRefund(ctx, payment.Id, refundID, amount); err != nil {
		return nil, fmt.Errorf("failed to record refund: %w", err)
	}
	payment.RefundID = refundID
	return payment, nil
}
