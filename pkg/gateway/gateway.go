package gateway

import (
	"context"
	"fmt"
)

// HoldStatus is the processor-reported state of an authorization hold.
type HoldStatus string

const (
	HoldRequiresCapture HoldStatus = "requires_capture"
	HoldSucceeded       HoldStatus = "succeeded"
	HoldRequiresAction  HoldStatus = "requires_action"
	HoldCanceled        HoldStatus = "canceled"
	HoldFailed          HoldStatus = "failed"
)

// GatewayError is a typed failure surfaced verbatim from the processor.
// The adapter never retries and never swallows one; callers decide.
type GatewayError struct {
	Code    string
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("gateway error %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("gateway error: %s", e.Message)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// CustomerProfile is the minimum the processor needs to create a customer.
type CustomerProfile struct {
	Name  string
	Email string
	Phone string
}

// HoldRequest describes an authorization-only charge against a saved payment
// method. Metadata is attached to the processor object for audit. The
// IdempotencyKey must be stable across retries of the same attempt so a
// crashed attempt cannot double-authorize.
type HoldRequest struct {
	Amount             int64
	Currency           string
	CustomerRef        string
	PaymentMethodRef   string
	Metadata           map[string]string
	CaptureImmediately bool
	ExtendedAuth       bool
	IdempotencyKey     string
}

// HoldResult is the outcome of creating or confirming a hold.
type HoldResult struct {
	HoldRef  string
	ChargeID string
	Status   HoldStatus
}

// Gateway is the port to the payment processor. All operations are
// synchronous per-tenant network calls routed by connected-account id; no
// retry logic lives behind this interface.
type Gateway interface {
	// CreateCustomer registers a customer on the tenant's connected account.
	CreateCustomer(ctx context.Context, accountID string, profile CustomerProfile) (string, error)

	// CreateHold places an authorization against the customer's payment
	// method. With CaptureImmediately false the funds are only reserved.
	CreateHold(ctx context.Context, accountID string, req HoldRequest) (*HoldResult, error)

	// ConfirmHold drives a pending hold to a terminal or semi-terminal state.
	ConfirmHold(ctx context.Context, accountID, holdRef string) (*HoldResult, error)

	// CaptureHold converts up to the authorized amount into a charge.
	// Partial capture is supported; the remainder is released by the processor.
	CaptureHold(ctx context.Context, accountID, holdRef string, amount int64) (*HoldResult, error)

	// ReleaseHold voids the remaining authorized amount.
	ReleaseHold(ctx context.Context, accountID, holdRef string) (*HoldResult, error)

	// Refund returns amount from a settled charge and yields the refund ref.
	Refund(ctx context.Context, accountID, chargeRef string, amount int64) (string, error)

	// CreateTransfer moves funds from the platform to the connected account.
	CreateTransfer(ctx context.Context, accountID string, amount int64, currency, groupID string) (string, error)
}
