package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/fleetrent/deposit-engine/pkg/models"
	"github.com/fleetrent/deposit-engine/pkg/storage"
)

// GetBooking retrieves a booking by its ID. The booking table is owned by
// the booking subsystem; this store only ever reads from it.
func (s *Store) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.BookingsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if out.Item == nil {
		return nil, storage.ErrBookingNotFound
	}

	var booking models.Booking
	if err := attributevalue.UnmarshalMap(out.Item, &booking); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking: %w", err)
	}
	return &booking, nil
}
