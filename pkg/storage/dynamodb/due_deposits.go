package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/fleetrent/deposit-engine/pkg/models"
)

// ListDueDeposits retrieves deposits eligible for an authorization attempt:
// SCHEDULED rows whose pickup falls inside the due window and whose backoff
// due-time has passed, plus PROCESSING rows that have been stuck longer than
// stuckAfter (a crash mid-attempt leaves the row in PROCESSING; it must be
// picked up again rather than lost). Results are ordered by ascending pickup.
//
// The window has no lower bound: a deposit whose pickup has already passed
// (retries outlasted the lead time) stays eligible until it settles or
// exhausts its retries, rather than silently falling out of selection.
func (s *Store) ListDueDeposits(ctx context.Context, windowEnd time.Time, stuckAfter time.Duration, limit int32) ([]models.Payment, error) {
	now := time.Now()

	scheduled, err := s.queryDepositsByStatus(ctx, models.DepositScheduled, windowEnd, limit,
		"deposit.amount > :zero AND deposit.scheduled_for <= :now",
		map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
			":now":  timeAV(now),
		})
	if err != nil {
		return nil, err
	}

	stuck, err := s.queryDepositsByStatus(ctx, models.DepositProcessing, windowEnd, limit,
		"deposit.amount > :zero AND updated_at <= :stuck_before",
		map[string]types.AttributeValue{
			":zero":         &types.AttributeValueMemberN{Value: "0"},
			":stuck_before": timeAV(now.Add(-stuckAfter)),
		})
	if err != nil {
		return nil, err
	}

	due := append(scheduled, stuck...)
	sort.Slice(due, func(i, j int) bool { return due[i].PickupAt.Before(due[j].PickupAt) })
	if int32(len(due)) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (s *Store) queryDepositsByStatus(ctx context.Context, status models.DepositStatus, windowEnd time.Time, limit int32, filter string, filterValues map[string]types.AttributeValue) ([]models.Payment, error) {
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":window_end": timeAV(windowEnd),
	}
	for k, v := range filterValues {
		values[k] = v
	}

	out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(s.PaymentsTableName),
		IndexName:                 aws.String(dueDepositIndex),
		KeyConditionExpression:    aws.String("deposit_status = :status AND pickup_at <= :window_end"),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeValues: values,
		Limit:                     aws.Int32(limit),
		ScanIndexForward:          aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s deposits: %w", status, err)
	}

	var payments []models.Payment
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &payments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal due deposits: %w", err)
	}
	return payments, nil
}

// timeAV marshals a time to its attribute value; the zero value is never
// passed here, so the error path cannot trigger.
func timeAV(t time.Time) types.AttributeValue {
	av, _ := attributevalue.Marshal(t)
	return av
}
