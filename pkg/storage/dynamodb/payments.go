package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/fleetrent/deposit-engine/pkg/models"
	"github.com/fleetrent/deposit-engine/pkg/storage"
	"github.com/google/uuid"
)

const (
	dueDepositIndex    = "deposit_status-pickup_at-index"
	paymentIntentIndex = "payment_intent_id-index"
	bookingIndex       = "booking_id-index"
)

// GetPayment retrieves a payment record by its ID.
func (s *Store) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.PaymentsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: paymentID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	if out.Item == nil {
		return nil, storage.ErrPaymentNotFound
	}

	var payment models.Payment
	if err := attributevalue.UnmarshalMap(out.Item, &payment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payment: %w", err)
	}
	return &payment, nil
}

// GetPaymentByIntent retrieves the payment owning a processor payment-intent
// reference. Both the payment-side and deposit-side intent ids are indexed
// under the same GSI attribute.
func (s *Store) GetPaymentByIntent(ctx context.Context, intentID string) (*models.Payment, error) {
	out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.PaymentsTableName),
		IndexName:              aws.String(paymentIntentIndex),
		KeyConditionExpression: aws.String("intent_lookup = :intent"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":intent": &types.AttributeValueMemberS{Value: intentID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query payment by intent: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, storage.ErrPaymentNotFound
	}

	var payment models.Payment
	if err := attributevalue.UnmarshalMap(out.Items[0], &payment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payment: %w", err)
	}
	return &payment, nil
}

// ListPaymentsByBooking retrieves all payment records for a booking.
func (s *Store) ListPaymentsByBooking(ctx context.Context, bookingID string) ([]models.Payment, error) {
	out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.PaymentsTableName),
		IndexName:              aws.String(bookingIndex),
		KeyConditionExpression: aws.String("booking_id = :booking_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":booking_id": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query payments by booking: %w", err)
	}

	var payments []models.Payment
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &payments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payments: %w", err)
	}
	return payments, nil
}

// CreatePayment creates a new payment record with server-side fields filled in.
func (s *Store) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	now := time.Now()
	payment.Id = uuid.New().String()
	payment.Version = 1
	payment.CreatedAt = now
	payment.UpdatedAt = now
	if payment.Deposit.Status == "" {
		payment.Deposit.Status = models.DepositScheduled
	}
	if payment.Deposit.ScheduledFor.IsZero() {
		payment.Deposit.ScheduledFor = now
	}
	payment.DepositStatusKey = payment.Deposit.Status

	item, err := attributevalue.MarshalMap(payment)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payment: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.PaymentsTableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return payment, nil
}
