package storage

import "errors"

// ErrPaymentNotFound is returned when no payment record matches the lookup.
var ErrPaymentNotFound = errors.New("payment not found")

// ErrBookingNotFound is returned when the referenced booking does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// ErrTenantNotFound is returned when no tenant matches the connected-account id.
var ErrTenantNotFound = errors.New("tenant not found")

// ErrCustomerNotFound is returned when the referenced customer does not exist.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrStaleDeposit is returned when a conditional deposit write loses the race
// against a concurrent writer (scheduler vs. webhook reconciler) or the row
// is no longer in the expected status. The caller must re-read and re-decide.
var ErrStaleDeposit = errors.New("deposit was modified concurrently")

// ErrIllegalTransition is returned when a requested deposit status move is
// not in the transition table.
var ErrIllegalTransition = errors.New("illegal deposit status transition")

// ErrEventAlreadyProcessed is returned when a webhook event id has already
// been applied to the ledger.
var ErrEventAlreadyProcessed = errors.New("event already processed")
