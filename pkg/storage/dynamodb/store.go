package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/fleetrent/deposit-engine/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the store.
// Kept as an interface so tests can mock the client.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client             DynamoDBAPI
	PaymentsTableName  string
	BookingsTableName  string
	CustomersTableName string
	TenantsTableName   string
	EventsTableName    string
}

// New creates a new Store.
func New(client DynamoDBAPI, paymentsTable, bookingsTable, customersTable, tenantsTable, eventsTable string) *Store {
	return &Store{
		Client:             client,
		PaymentsTableName:  paymentsTable,
		BookingsTableName:  bookingsTable,
		CustomersTableName: customersTable,
		TenantsTableName:   tenantsTable,
		EventsTableName:    eventsTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)
