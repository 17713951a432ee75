package storage

import (
	"context"

	"github.com/fleetrent/deposit-engine/pkg/models"
)

// EventStore defines the processed-events set used to deduplicate processor
// webhooks. MarkEventProcessed is an insert-if-absent: the first caller wins,
// every replay gets ErrEventAlreadyProcessed. IsEventProcessed is the cheap
// read-side check for replays of already-recorded events.
type EventStore interface {
	IsEventProcessed(ctx context.Context, eventID string) (bool, error)
	MarkEventProcessed(ctx context.Context, event models.ProcessedEvent) error
}
