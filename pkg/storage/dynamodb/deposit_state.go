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

// UpdateDeposit applies a guarded write of the deposit sub-state.
//
// The write is conditional on both the observed record version and the
// observed deposit status, which is the serialization point between the
// scheduler and the webhook reconciler: whichever writer loses the race gets
// ErrStaleDeposit and must re-read before deciding anything.
func (s *Store) UpdateDeposit(ctx context.Context, paymentID string, write storage.DepositWrite) (*models.Payment, error) {
	if write.From != write.Deposit.Status && !models.CanTransition(write.From, write.Deposit.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", storage.ErrIllegalTransition, write.From, write.Deposit.Status)
	}
	if write.Deposit.ChargedAmount > write.Deposit.Amount {
		return nil, fmt.Errorf("charged amount %d exceeds deposit amount %d", write.Deposit.ChargedAmount, write.Deposit.Amount)
	}

	depositAV, err := attributevalue.Marshal(write.Deposit)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal deposit: %w", err)
	}
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	updateExpr := "SET deposit = :deposit, deposit_status = :status_key, version = version + :one, updated_at = :now"
	exprValues := map[string]types.AttributeValue{
		":deposit":    depositAV,
		":status_key": &types.AttributeValueMemberS{Value: string(write.Deposit.Status)},
		":one":        &types.AttributeValueMemberN{Value: "1"},
		":now":        nowAV,
		":from":       &types.AttributeValueMemberS{Value: string(write.From)},
		":version":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", write.Version)},
	}
	if write.Deposit.PaymentIntentID != "" {
		updateExpr += ", intent_lookup = :intent"
		exprValues[":intent"] = &types.AttributeValueMemberS{Value: write.Deposit.PaymentIntentID}
	}

	out, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.PaymentsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: paymentID},
		},
		UpdateExpression:          aws.String(updateExpr),
		ConditionExpression:       aws.String("deposit.#st = :from AND version = :version"),
		ExpressionAttributeNames:  map[string]string{"#st": "status"},
		ExpressionAttributeValues: exprValues,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrStaleDeposit
		}
		return nil, fmt.Errorf("failed to update deposit state: %w", err)
	}

	var payment models.Payment
	if err := attributevalue.UnmarshalMap(out.Attributes, &payment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated payment: %w", err)
	}
	return &payment, nil
}

// SetCustomerRef persists a processor customer reference created on the fly
// during an authorization attempt.
func (s *Store) SetCustomerRef(ctx context.Context, paymentID, customerRef string) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.PaymentsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: paymentID},
		},
		UpdateExpression:    aws.String("SET customer_ref = :ref, version = version + :one, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: customerRef},
			":one": &types.AttributeValueMemberN{Value: "1"},
			":now": nowAV,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to set customer ref: %w", err)
	}
	return nil
}

// RecordRefund persists a refund reference and the refunded amount.
func (s *Store) RecordRefund(ctx context.Context, paymentID, refundID string, amount int64) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.PaymentsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: paymentID},
		},
		UpdateExpression:    aws.String("SET refund_id = :refund, refunded_amount = :amount, version = version + :one, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":refund": &types.AttributeValueMemberS{Value: refundID},
			":amount": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", amount)},
			":one":    &types.AttributeValueMemberN{Value: "1"},
			":now":    nowAV,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to record refund: %w", err)
	}
	return nil
}
