package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/fleetrent/deposit-engine/pkg/models"
	"github.com/fleetrent/deposit-engine/pkg/storage"
)

// IsEventProcessed reports whether an event id is already in the
// processed-events set.
func (s *Store) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.EventsTableName),
		Key: map[string]types.AttributeValue{
			"event_id": &types.AttributeValueMemberS{Value: eventID},
		},
	})
	if err != nil {
		return false, fmt.Errorf("failed to check processed event: %w", err)
	}
	return out.Item != nil, nil
}

// MarkEventProcessed inserts the event id into the processed-events set.
// The conditional put makes the first delivery win; every replay of the same
// event id gets ErrEventAlreadyProcessed, which is the reconciler's
// idempotency guarantee under at-least-once webhook delivery.
func (s *Store) MarkEventProcessed(ctx context.Context, event models.ProcessedEvent) error {
	if event.ProcessedAt.IsZero() {
		event.ProcessedAt = time.Now()
	}
	if event.TTL == 0 {
		// Processor retries stop well within 30 days; after that the row
		// only costs storage.
		event.TTL = event.ProcessedAt.Add(30 * 24 * time.Hour).Unix()
	}

	item, err := attributevalue.MarshalMap(event)
	if err != nil {
		return fmt.Errorf("failed to marshal processed event: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.EventsTableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(event_id)"),
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrEventAlreadyProcessed
		}
		return fmt.Errorf("failed to mark event processed: %w", err)
	}
	return nil
}
