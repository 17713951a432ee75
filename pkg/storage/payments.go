package storage

import (
	"context"
	"time"

	"github.com/fleetrent/deposit-engine/pkg/models"
)

// DepositWrite is a guarded write of the deposit sub-state. From and Version
// must match the persisted row or the write fails with ErrStaleDeposit; a
// status move not in the transition table fails with ErrIllegalTransition.
type DepositWrite struct {
	// From is the status the caller last observed.
	From models.DepositStatus

	// Deposit is the complete new sub-state to persist.
	Deposit models.Deposit

	// Version is the payment record version the caller last observed.
	Version int64
}

// PaymentReader defines the interface for reading payment records.
type PaymentReader interface {
	// GetPayment retrieves a payment record by its ID.
	GetPayment(ctx context.Context, paymentID string) (*models.Payment, error)

	// GetPaymentByIntent retrieves the payment owning a processor
	// payment-intent reference (payment or deposit side).
	GetPaymentByIntent(ctx context.Context, intentID string) (*models.Payment, error)

	// ListDueDeposits retrieves payments whose deposit is SCHEDULED, due at or
	// before the window end, and whose booking pickup falls within the window,
	// ordered by ascending pickup date. Rows stuck in PROCESSING longer than
	// stuckAfter are included so a crashed attempt is retried.
	ListDueDeposits(ctx context.Context, windowEnd time.Time, stuckAfter time.Duration, limit int32) ([]models.Payment, error)

	// ListPaymentsByBooking retrieves all payment records for a booking.
	ListPaymentsByBooking(ctx context.Context, bookingID string) ([]models.Payment, error)
}

// PaymentManager defines the interface for mutating payment records. All
// deposit status changes go through UpdateDeposit; there is no ad hoc field
// write path.
type PaymentManager interface {
	// CreatePayment creates a new payment record and returns it.
	CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)

	// UpdateDeposit applies a guarded deposit sub-state write and returns the
	// refreshed record.
	UpdateDeposit(ctx context.Context, paymentID string, write DepositWrite) (*models.Payment, error)

	// SetCustomerRef persists a newly created processor customer reference.
	SetCustomerRef(ctx context.Context, paymentID, customerRef string) error

	// RecordRefund persists a refund reference and the refunded amount.
	RecordRefund(ctx context.Context, paymentID, refundID string, amount int64) error
}

// PaymentStore combines the reader and manager interfaces.
type PaymentStore interface {
	PaymentReader
	PaymentManager
}
