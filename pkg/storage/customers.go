package storage

import (
	"context"

	"github.com/fleetrent/deposit-engine/pkg/models"
)

// CustomerReader defines read-only access to customer records.
type CustomerReader interface {
	// GetCustomer retrieves a customer by its ID.
	GetCustomer(ctx context.Context, customerID string) (*models.Customer, error)
}
