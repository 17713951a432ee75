package storage

import (
	"context"

	"github.com/fleetrent/deposit-engine/pkg/models"
)

// TenantReader defines read access to tenant connected-account configuration.
type TenantReader interface {
	// GetTenant retrieves a tenant by its ID.
	GetTenant(ctx context.Context, tenantID string) (*models.Tenant, error)

	// GetTenantByAccount retrieves the tenant owning a connected-account id.
	GetTenantByAccount(ctx context.Context, accountID string) (*models.Tenant, error)
}

// TenantManager defines the status-only write surface for tenants. Only the
// webhook reconciler uses it, on account.updated events.
type TenantManager interface {
	// UpdateTenantCapabilities persists the connected account's capability flags.
	UpdateTenantCapabilities(ctx context.Context, accountID string, chargesEnabled, payoutsEnabled bool) error
}

// TenantStore combines the reader and manager interfaces.
type TenantStore interface {
	TenantReader
	TenantManager
}
