package deposits

import "errors"

// PreconditionError marks a failure that is terminal for the attempt and not
// retried: the deposit cannot be authorized until an operator fixes the data.
// The reason string is persisted verbatim as the deposit's failure reason.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string { return e.Reason }

// Precondition reason strings. Kept distinguishable so reporting can tell
// the failure classes apart.
const (
	ReasonBookingMissing       = "Booking reference is missing"
	ReasonBookingCancelled     = "Booking has been cancelled"
	ReasonPaymentMethodMissing = "Saved payment method is missing"
	ReasonCustomerMissing      = "Customer record is missing"
)

// ErrDepositNotAuthorized is returned when a capture or release is requested
// against a deposit that holds no active authorization.
var ErrDepositNotAuthorized = errors.New("deposit is not in an authorized state")

// ErrCaptureExceedsHold is returned when the requested capture amount is
// larger than the authorized deposit amount.
var ErrCaptureExceedsHold = errors.New("capture amount exceeds authorized deposit amount")

// ErrNothingToRefund is returned when a refund is requested but no charge
// exists or the amount exceeds what was charged.
var ErrNothingToRefund = errors.New("refund amount exceeds charged amount")
