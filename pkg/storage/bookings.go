package storage

import (
	"context"

	"github.com/fleetrent/deposit-engine/pkg/models"
)

// BookingReader defines read-only access to the booking subsystem's records.
// The payment engine never writes bookings.
type BookingReader interface {
	// GetBooking retrieves a booking by its ID.
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
}
