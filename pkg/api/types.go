// Package api holds the wire types served by the HTTP layer. They are kept
// separate from the domain models so storage tags and internal fields never
// leak into responses.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// DepositStatus mirrors the ledger's deposit status vocabulary.
type DepositStatus string

// Deposit is the security-deposit view of a payment record.
type Deposit struct {
	Amount          int64         `json:"amount"`
	Status          DepositStatus `json:"status"`
	PaymentIntentId string        `json:"payment_intent_id,omitempty"`
	ChargeId        string        `json:"charge_id,omitempty"`
	ChargedAmount   int64         `json:"charged_amount"`
	CaptureReason   string        `json:"capture_reason,omitempty"`
	FailureReason   *string       `json:"failure_reason,omitempty"`
	RetryCount      int           `json:"retry_count"`
	ScheduledFor    time.Time     `json:"scheduled_for"`
	AuthorizedAt    *time.Time    `json:"authorized_at,omitempty"`
	CapturedAt      *time.Time    `json:"captured_at,omitempty"`
	ReleasedAt      *time.Time    `json:"released_at,omitempty"`
}

// Payment is the booking-level payment record served to reporting consumers.
type Payment struct {
	Id               openapi_types.UUID `json:"id"`
	TenantId         string             `json:"tenant_id"`
	BookingId        string             `json:"booking_id"`
	CustomerId       string             `json:"customer_id"`
	Currency         string             `json:"currency"`
	AuthorizedAmount int64              `json:"authorized_amount"`
	ChargedAmount    int64              `json:"charged_amount"`
	RefundId         string             `json:"refund_id,omitempty"`
	FailureReason    *string            `json:"failure_reason,omitempty"`
	Deposit          Deposit            `json:"deposit"`
	PickupDate       openapi_types.Date `json:"pickup_date"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// NewPayment is the request body for creating a payment record for a booking.
type NewPayment struct {
	BookingId     string `json:"booking_id"`
	DepositAmount int64  `json:"deposit_amount"`
}

// CaptureDeposit is the request body for a manual deposit capture.
type CaptureDeposit struct {
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

// RefundDeposit is the request body for refunding a captured deposit charge.
type RefundDeposit struct {
	Amount int64 `json:"amount"`
}

// Tenant is the connected-account view served to operators.
type Tenant struct {
	Id             string `json:"id"`
	AccountId      string `json:"account_id"`
	ChargesEnabled bool   `json:"charges_enabled"`
	PayoutsEnabled bool   `json:"payouts_enabled"`
	PayoutSchedule string `json:"payout_schedule,omitempty"`
}
