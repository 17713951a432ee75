package gateway

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
)

// StripeGateway implements the Gateway interface against Stripe.
// Every call is routed to the tenant's connected account via the
// Stripe-Account header.
type StripeGateway struct {
	API *client.API
}

// NewStripeGateway creates a StripeGateway from a platform secret key.
func NewStripeGateway(secretKey string) *StripeGateway {
	return &StripeGateway{API: client.New(secretKey, nil)}
}

// Make sure we conform to the interface
var _ Gateway = (*StripeGateway)(nil)

// wrapErr converts any Stripe failure into a typed GatewayError, preserving
// the processor's own code and message.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return &GatewayError{Code: string(stripeErr.Code), Message: stripeErr.Msg, Err: err}
	}
	return &GatewayError{Message: err.Error(), Err: err}
}

// mapIntentStatus maps a Stripe payment-intent status onto the hold vocabulary.
func mapIntentStatus(s stripe.PaymentIntentStatus) HoldStatus {
	switch s {
	case stripe.PaymentIntentStatusRequiresCapture:
		return HoldRequiresCapture
	case stripe.PaymentIntentStatusSucceeded:
		return HoldSucceeded
	case stripe.PaymentIntentStatusRequiresAction, stripe.PaymentIntentStatusRequiresConfirmation:
		return HoldRequiresAction
	case stripe.PaymentIntentStatusCanceled:
		return HoldCanceled
	default:
		return HoldFailed
	}
}

// holdResult extracts the references the ledger persists from an intent.
func holdResult(pi *stripe.PaymentIntent) *HoldResult {
	res := &HoldResult{HoldRef: pi.ID, Status: mapIntentStatus(pi.Status)}
	if pi.LatestCharge != nil {
		res.ChargeID = pi.LatestCharge.ID
	}
	return res
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, accountID string, profile CustomerProfile) (string, error) {
	if profile.Email == "" && profile.Name == "" {
		return "", &GatewayError{Message: "customer profile is incomplete"}
	}

	params := &stripe.CustomerParams{
		Name:  stripe.String(profile.Name),
		Email: stripe.String(profile.Email),
	}
	if profile.Phone != "" {
		params.Phone = stripe.String(profile.Phone)
	}
	params.Context = ctx
	params.SetStripeAccount(accountID)

	cust, err := g.API.Customers.New(params)
	if err != nil {
		return "", wrapErr(err)
	}
	return cust.ID, nil
}

func (g *StripeGateway) CreateHold(ctx context.Context, accountID string, req HoldRequest) (*HoldResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.Amount),
		Currency:           stripe.String(req.Currency),
		Customer:           stripe.String(req.CustomerRef),
		PaymentMethod:      stripe.String(req.PaymentMethodRef),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	if !req.CaptureImmediately {
		params.CaptureMethod = stripe.String(string(stripe.PaymentIntentCaptureMethodManual))
	}
	if req.ExtendedAuth {
		// No first-class field at this API pin; serialized identically.
		params.AddExtra("payment_method_options[card][request_extended_authorization]", "if_available")
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx
	params.SetStripeAccount(accountID)
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	pi, err := g.API.PaymentIntents.New(params)
	if err != nil {
		return nil, wrapErr(err)
	}
	return holdResult(pi), nil
}

func (g *StripeGateway) ConfirmHold(ctx context.Context, accountID, holdRef string) (*HoldResult, error) {
	params := &stripe.PaymentIntentConfirmParams{}
	params.Context = ctx
	params.SetStripeAccount(accountID)

	pi, err := g.API.PaymentIntents.Confirm(holdRef, params)
	if err != nil {
		return nil, wrapErr(err)
	}
	return holdResult(pi), nil
}

func (g *StripeGateway) CaptureHold(ctx context.Context, accountID, holdRef string, amount int64) (*HoldResult, error) {
	params := &stripe.PaymentIntentCaptureParams{
		AmountToCapture: stripe.Int64(amount),
	}
	params.Context = ctx
	params.SetStripeAccount(accountID)

	pi, err := g.API.PaymentIntents.Capture(holdRef, params)
	if err != nil {
		return nil, wrapErr(err)
	}
	return holdResult(pi), nil
}

func (g *StripeGateway) ReleaseHold(ctx context.Context, accountID, holdRef string) (*HoldResult, error) {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx
	params.SetStripeAccount(accountID)

	pi, err := g.API.PaymentIntents.Cancel(holdRef, params)
	if err != nil {
		return nil, wrapErr(err)
	}
	return holdResult(pi), nil
}

func (g *StripeGateway) Refund(ctx context.Context, accountID, chargeRef string, amount int64) (string, error) {
	params := &stripe.RefundParams{
		Charge: stripe.String(chargeRef),
		Amount: stripe.Int64(amount),
	}
	params.Context = ctx
	params.SetStripeAccount(accountID)

	refund, err := g.API.Refunds.New(params)
	if err != nil {
		return "", wrapErr(err)
	}
	return refund.ID, nil
}

func (g *StripeGateway) CreateTransfer(ctx context.Context, accountID string, amount int64, currency, groupID string) (string, error) {
	params := &stripe.TransferParams{
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(currency),
		Destination: stripe.String(accountID),
	}
	if groupID != "" {
		params.TransferGroup = stripe.String(groupID)
	}
	params.Context = ctx

	transfer, err := g.API.Transfers.New(params)
	if err != nil {
		return "", wrapErr(err)
	}
	return transfer.ID, nil
}
