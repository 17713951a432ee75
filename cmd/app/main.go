package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/fleetrent/deposit-engine/pkg/deposits"
	"github.com/fleetrent/deposit-engine/pkg/gateway"
	"github.com/fleetrent/deposit-engine/pkg/handlers"
	appmiddleware "github.com/fleetrent/deposit-engine/pkg/middleware"
	"github.com/fleetrent/deposit-engine/pkg/queue"
	"github.com/fleetrent/deposit-engine/pkg/scheduler"
	dydbstore "github.com/fleetrent/deposit-engine/pkg/storage/dynamodb"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// AWS Session
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
	if paymentsTable == "" || bookingsTable == "" || customersTable == "" || tenantsTable == "" || eventsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}
	store := dydbstore.New(dbClient, paymentsTable, bookingsTable, customersTable, tenantsTable, eventsTable)

	// SQS client and webhook event publisher
	queueURL := os.Getenv("SQS_EVENTS_QUEUE_URL")
	if queueURL == "" {
		log.Fatal("SQS_EVENTS_QUEUE_URL environment variable not set")
	}
	publisher := queue.NewSQSPublisher(sqs.NewFromConfig(cfg), queueURL)

	// Stripe gateway
	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	if stripeKey == "" {
		log.Fatal("STRIPE_SECRET_KEY environment variable not set")
	}
	webhookSecret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if webhookSecret == "" {
		log.Fatal("STRIPE_WEBHOOK_SECRET environment variable not set")
	}
	gw := gateway.NewStripeGateway(stripeKey)

	// Lifecycle engine and scheduler
	engine := deposits.NewEngine(store, store, store, store, gw, logger)
	engine.Retry = deposits.RetryPolicy{
		Base:       envDuration("RETRY_BACKOFF_BASE", deposits.DefaultRetryPolicy.Base),
		MaxRetries: envInt("MAX_RETRIES", deposits.DefaultRetryPolicy.MaxRetries),
	}

	schedCfg := scheduler.DefaultConfig
	schedCfg.PollInterval = envDuration("SCHEDULER_POLL_INTERVAL", schedCfg.PollInterval)
	schedCfg.Window = time.Duration(envInt("DUE_WINDOW_DAYS", 14)) * 24 * time.Hour
	schedCfg.BatchSize = int32(envInt("SCHEDULER_BATCH_SIZE", int(schedCfg.BatchSize)))
	schedCfg.InterCallDelay = envDuration("SCHEDULER_INTER_CALL_DELAY", schedCfg.InterCallDelay)
	sched := scheduler.New(store, engine, schedCfg, logger)

	// HTTP surface
	handler := handlers.NewApiHandler(store, engine, publisher, webhookSecret)
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(appmiddleware.NewStructuredLogger(logger))
	router.Use(chimiddleware.Recoverer)
	router.Mount("/", handler.Routes())

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{Addr: ":" + port, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sched.Run(ctx)

	go func() {
		logger.Info("starting server", slog.String("port", port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	// The scheduler stops via ctx; give in-flight requests a grace period.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.String("error", err.Error()))
	}
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("Invalid duration in %s, using default %s", key, fallback)
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("Invalid integer in %s, using default %d", key, fallback)
	}
	return fallback
}
