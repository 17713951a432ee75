package models

import (
	"time"
)

// DepositStatus defines the possible states of a booking's security deposit.
type DepositStatus string

const (
	DepositScheduled         DepositStatus = "SCHEDULED"
	DepositProcessing        DepositStatus = "PROCESSING"
	DepositAuthorized        DepositStatus = "AUTHORIZED"
	DepositCaptured          DepositStatus = "CAPTURED"
	DepositPartiallyCaptured DepositStatus = "PARTIALLY_CAPTURED"
	DepositReleased          DepositStatus = "RELEASED"
	DepositFailed            DepositStatus = "FAILED"
)

// Deposit is the security-deposit sub-state embedded in a payment record.
// Status only moves through the transition table in transitions.go.
type Deposit struct {
	Amount          int64         `dynamodbav:"amount"`
	Status          DepositStatus `dynamodbav:"status"`
	PaymentIntentID string        `dynamodbav:"payment_intent_id,omitempty"`
	ChargeID        string        `dynamodbav:"charge_id,omitempty"`
	ChargedAmount   int64         `dynamodbav:"charged_amount"`
	CaptureReason   string        `dynamodbav:"capture_reason,omitempty"`
	FailureReason   *string       `dynamodbav:"failure_reason,omitempty"`
	RetryCount      int           `dynamodbav:"retry_count"`
	ScheduledFor    time.Time     `dynamodbav:"scheduled_for"`
	AuthorizedAt    *time.Time    `dynamodbav:"authorized_at,omitempty"`
	CapturedAt      *time.Time    `dynamodbav:"captured_at,omitempty"`
	ReleasedAt      *time.Time    `dynamodbav:"released_at,omitempty"`
}

// Payment represents the internal domain model for a booking's monetary
// record, including the embedded security deposit. The Version attribute is
// bumped on every write and checked by conditional updates so the scheduler
// and the webhook reconciler never overwrite each other.
type Payment struct {
	Id               string    `dynamodbav:"id"`
	TenantID         string    `dynamodbav:"tenant_id"`
	BookingID        string    `dynamodbav:"booking_id"`
	CustomerID       string    `dynamodbav:"customer_id"`
	Currency         string    `dynamodbav:"currency"`
	AuthorizedAmount int64     `dynamodbav:"authorized_amount"`
	ChargedAmount    int64     `dynamodbav:"charged_amount"`
	CustomerRef      string    `dynamodbav:"customer_ref,omitempty"`
	PaymentMethodRef string    `dynamodbav:"payment_method_ref,omitempty"`
	PaymentIntentID  string    `dynamodbav:"payment_intent_id,omitempty"`
	ChargeID         string    `dynamodbav:"charge_id,omitempty"`
	RefundID         string    `dynamodbav:"refund_id,omitempty"`
	RefundedAmount   int64     `dynamodbav:"refunded_amount,omitempty"`
	FailureReason    *string   `dynamodbav:"failure_reason,omitempty"`
	Deposit          Deposit   `dynamodbav:"deposit"`
	// DepositStatusKey mirrors Deposit.Status at the top level; it is the
	// partition key of the due-deposit index and is maintained by every
	// deposit write.
	DepositStatusKey DepositStatus `dynamodbav:"deposit_status"`
	// PickupAt is denormalized from the booking at creation and is the sort
	// key of the due-deposit index.
	PickupAt time.Time `dynamodbav:"pickup_at"`
	// IntentLookup mirrors the most recent processor payment-intent id so the
	// webhook reconciler can find the row by processor reference.
	IntentLookup string `dynamodbav:"intent_lookup,omitempty"`
	Version          int64     `dynamodbav:"version"`
	CreatedAt        time.Time `dynamodbav:"created_at"`
	UpdatedAt        time.Time `dynamodbav:"updated_at"`
}

// Booking is the read-only slice of the booking record this engine consumes.
// The booking subsystem owns it; nothing here ever writes it back.
type Booking struct {
	Id               string    `dynamodbav:"id"`
	TenantID         string    `dynamodbav:"tenant_id"`
	BookingNumber    string    `dynamodbav:"booking_number"`
	CustomerID       string    `dynamodbav:"customer_id"`
	Currency         string    `dynamodbav:"currency"`
	PaymentMethodRef string    `dynamodbav:"payment_method_ref,omitempty"`
	PickupAt         time.Time `dynamodbav:"pickup_at"`
	Cancelled        bool      `dynamodbav:"cancelled"`
}

// Customer is the read-only slice of the customer record this engine
// consumes: the profile sent to the processor when no processor customer
// reference exists yet.
type Customer struct {
	Id       string `dynamodbav:"id"`
	TenantID string `dynamodbav:"tenant_id"`
	Name     string `dynamodbav:"name"`
	Email    string `dynamodbav:"email,omitempty"`
	Phone    string `dynamodbav:"phone,omitempty"`
}

// Tenant holds a tenant's connected-account configuration on the processor.
// The lifecycle engine reads it for routing; only the status fields change
// after onboarding, and only via account webhooks.
type Tenant struct {
	Id             string    `dynamodbav:"id"`
	AccountID      string    `dynamodbav:"account_id"`
	ChargesEnabled bool      `dynamodbav:"charges_enabled"`
	PayoutsEnabled bool      `dynamodbav:"payouts_enabled"`
	PayoutSchedule string    `dynamodbav:"payout_schedule,omitempty"`
	CreatedAt      time.Time `dynamodbav:"created_at"`
	UpdatedAt      time.Time `dynamodbav:"updated_at"`
}

// ProcessedEvent records a processor webhook event that has already been
// applied to the ledger, keyed by the processor's event id. Its existence is
// the idempotency check for at-least-once webhook delivery.
type ProcessedEvent struct {
	EventID     string    `dynamodbav:"event_id"`
	EventType   string    `dynamodbav:"event_type"`
	ObjectID    string    `dynamodbav:"object_id"`
	ProcessedAt time.Time `dynamodbav:"processed_at"`
	TTL         int64     `dynamodbav:"ttl,omitempty"`
}
