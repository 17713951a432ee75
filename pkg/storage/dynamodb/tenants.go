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
)

const tenantAccountIndex = "account_id-index"

// GetTenant retrieves a tenant by its ID.
func (s *Store) GetTenant(ctx context.Context, tenantID string) (*models.Tenant, error) {
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.TenantsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if out.Item == nil {
		return nil, storage.ErrTenantNotFound
	}

	var tenant models.Tenant
	if err := attributevalue.UnmarshalMap(out.Item, &tenant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tenant: %w", err)
	}
	return &tenant, nil
}

// GetTenantByAccount retrieves the tenant owning a connected-account id.
func (s *Store) GetTenantByAccount(ctx context.Context, accountID string) (*models.Tenant, error) {
	out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.TenantsTableName),
		IndexName:              aws.String(tenantAccountIndex),
		KeyConditionExpression: aws.String("account_id = :account_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":account_id": &types.AttributeValueMemberS{Value: accountID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query tenant by account: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, storage.ErrTenantNotFound
	}

	var tenant models.Tenant
	if err := attributevalue.UnmarshalMap(out.Items[0], &tenant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tenant: %w", err)
	}
	return &tenant, nil
}

// UpdateTenantCapabilities persists the connected account's capability flags,
// driven by account.updated webhooks.
func (s *Store) UpdateTenantCapabilities(ctx context.Context, accountID string, chargesEnabled, payoutsEnabled bool) error {
	tenant, err := s.GetTenantByAccount(ctx, accountID)
	if err != nil {
		return err
	}

	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TenantsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: tenant.Id},
		},
		UpdateExpression:    aws.String("SET charges_enabled = :charges, payouts_enabled = :payouts, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":charges": &types.AttributeValueMemberBOOL{Value: chargesEnabled},
			":payouts": &types.AttributeValueMemberBOOL{Value: payoutsEnabled},
			":now":     nowAV,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to update tenant capabilities: %w", err)
	}
	return nil
}
