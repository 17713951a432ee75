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

// GetCustomer retrieves a customer by its ID. Customer records are owned by
// the customer CRUD subsystem; this store only reads them.
func (s *Store) GetCustomer(ctx context.Context, customerID string) (*models.Customer, error) {
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.CustomersTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if out.Item == nil {
		return nil, storage.ErrCustomerNotFound
	}

	var customer models.Customer
	if err := attributevalue.UnmarshalMap(out.Item, &customer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customer: %w", err)
	}
	return &customer, nil
}
