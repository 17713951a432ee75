package queue

import (
	"context"

	"github.com/fleetrent/deposit-engine/pkg/webhooks"
)

// Publisher defines the interface for handing a verified processor event to
// the reconciliation pipeline.
type Publisher interface {
	// PublishEvent enqueues a normalized webhook event for asynchronous
	// reconciliation.
	PublishEvent(ctx context.Context, event *webhooks.Event) error
}
