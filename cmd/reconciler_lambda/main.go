package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dydbstore "github.com/fleetrent/deposit-engine/pkg/storage/dynamodb"
	"github.com/fleetrent/deposit-engine/pkg/webhooks"
	"github.com/joho/godotenv"
)

var reconciler *webhooks.Reconciler

func init() {
	// Load environment variables from .env file (useful for local testing).
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	paymentsTable := os.Getenv("DYNAMODB_PAYMENTS_TABLE_NAME")
	bookingsTable := os.Getenv("DYNAMODB_BOOKINGS_TABLE_NAME")
	customersTable := os.Getenv("DYNAMODB_CUSTOMERS_TABLE_NAME")
	tenantsTable := os.Getenv("DYNAMODB_TENANTS_TABLE_NAME")
	eventsTable := os.Getenv("DYNAMODB_EVENTS_TABLE_NAME")
	if paymentsTable == "" || tenantsTable == "" || eventsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	store := dydbstore.New(dbClient, paymentsTable, bookingsTable, customersTable, tenantsTable, eventsTable)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	reconciler = webhooks.NewReconciler(store, store, store, logger)
}

// HandleRequest applies queued processor events to the ledger. A failed
// message is returned to the queue for redelivery; already-applied event ids
// are no-ops, so redelivery is safe.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		var ev webhooks.Event
		if err := json.Unmarshal([]byte(message.Body), &ev); err != nil {
			log.Printf("ERROR: failed to unmarshal event from SQS message %s: %v", message.MessageId, err)
			return err
		}

		if err := reconciler.Apply(ctx, &ev); err != nil {
			log.Printf("ERROR: failed to apply event %s: %v", ev.ID, err)
			return err
		}
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
