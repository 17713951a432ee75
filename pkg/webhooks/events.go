package webhooks

import (
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v74"
)

// Event types this core reconciles. Anything else is acknowledged and dropped
// at the HTTP edge.
const (
	EventHoldConfirmed  = "payment_intent.amount_capturable_updated"
	EventHoldCaptured   = "payment_intent.succeeded"
	EventHoldCanceled   = "payment_intent.canceled"
	EventHoldFailed     = "payment_intent.payment_failed"
	EventChargeRefunded = "charge.refunded"
	EventAccountUpdated = "account.updated"
)

// Event is the normalized processor notification carried from the HTTP edge
// through the queue to the reconciler. ID is the processor's event id and is
// the idempotency key; ObjectID is the payment-intent reference used to look
// up the ledger row.
type Event struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	AccountID      string `json:"account_id,omitempty"`
	ObjectID       string `json:"object_id,omitempty"`
	ChargeID       string `json:"charge_id,omitempty"`
	RefundID       string `json:"refund_id,omitempty"`
	Amount         int64  `json:"amount,omitempty"`
	FailureMessage string `json:"failure_message,omitempty"`
	ChargesEnabled bool   `json:"charges_enabled,omitempty"`
	PayoutsEnabled bool   `json:"payouts_enabled,omitempty"`
}

// Relevant reports whether an event type is one this core applies.
func Relevant(eventType string) bool {
	switch eventType {
	case EventHoldConfirmed, EventHoldCaptured, EventHoldCanceled, EventHoldFailed, EventChargeRefunded, EventAccountUpdated:
		return true
	}
	return false
}

// FromStripeEvent normalizes a verified Stripe event payload. Events are
// delivered at least once and possibly out of order; nothing here assumes
// ordering, it only extracts references.
func FromStripeEvent(stripeEvent *stripe.Event) (*Event, error) {
	ev := &Event{
		ID:        stripeEvent.ID,
		Type:      stripeEvent.Type,
		AccountID: stripeEvent.Account,
	}

	switch stripeEvent.Type {
	case EventHoldConfirmed, EventHoldCaptured, EventHoldCanceled, EventHoldFailed:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(stripeEvent.Data.Raw, &intent); err != nil {
			return nil, fmt.Errorf("failed to parse payment intent from event %s: %w", stripeEvent.ID, err)
		}
		ev.ObjectID = intent.ID
		ev.Amount = intent.AmountReceived
		if ev.Amount == 0 {
			ev.Amount = intent.Amount
		}
		if intent.LatestCharge != nil {
			ev.ChargeID = intent.LatestCharge.ID
		}
		if intent.LastPaymentError != nil {
			ev.FailureMessage = intent.LastPaymentError.Msg
		}

	case EventChargeRefunded:
		var charge stripe.Charge
		if err := json.Unmarshal(stripeEvent.Data.Raw, &charge); err != nil {
			return nil, fmt.Errorf("failed to parse charge from event %s: %w", stripeEvent.ID, err)
		}
		ev.ChargeID = charge.ID
		ev.Amount = charge.AmountRefunded
		if charge.PaymentIntent != nil {
			ev.ObjectID = charge.PaymentIntent.ID
		}
		if charge.Refunds != nil && len(charge.Refunds.Data) > 0 {
			ev.RefundID = charge.Refunds.Data[0].ID
		}

	case EventAccountUpdated:
		var account stripe.Account
		if err := json.Unmarshal(stripeEvent.Data.Raw, &account); err != nil {
			return nil, fmt.Errorf("failed to parse account from event %s: %w", stripeEvent.ID, err)
		}
		if ev.AccountID == "" {
			ev.AccountID = account.ID
		}
		ev.ChargesEnabled = account.ChargesEnabled
		ev.PayoutsEnabled = account.PayoutsEnabled

	default:
		return nil, fmt.Errorf("event type %s is not reconciled", stripeEvent.Type)
	}

	return ev, nil
}
