package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fleetrent/deposit-engine/pkg/webhooks"
	"github.com/stripe/stripe-go/v74/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test"

type fakePublisher struct {
	published []*webhooks.Event
	err       error
}

func (f *fakePublisher) PublishEvent(ctx context.Context, event *webhooks.Event) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, event)
	return nil
}

func signedWebhookRequest(t *testing.T, payload string) *http.Request {
	t.Helper()
	now := time.Now()
	sig := webhook.ComputeSignature(now, []byte(payload), testWebhookSecret)
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(payload))
	req.Header.Set("Stripe-Signature", fmt.Sprintf("t=%d,v1=%x", now.Unix(), sig))
	return req
}

func TestStripeWebhook(t *testing.T) {
	intentPayload := `{
		"id": "evt_1",
		"api_version": "2022-11-15",
		"type": "payment_intent.amount_capturable_updated",
		"account": "acct_1",
		"data": {"object": {"id": "pi_1", "amount": 500}}
	}`

	t.Run("Verified Event Is Enqueued", func(t *testing.T) {
		publisher := &fakePublisher{}
		h := NewApiHandler(newApiStore(t), &fakeActions{}, publisher, testWebhookSecret)

		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, signedWebhookRequest(t, intentPayload))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, publisher.published, 1)
		assert.Equal(t, "evt_1", publisher.published[0].ID)
		assert.Equal(t, "pi_1", publisher.published[0].ObjectID)
	})

	t.Run("Bad Signature Is Rejected", func(t *testing.T) {
		publisher := &fakePublisher{}
		h := NewApiHandler(newApiStore(t), &fakeActions{}, publisher, testWebhookSecret)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(intentPayload))
		req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, publisher.published)
	})

	t.Run("Irrelevant Event Is Acknowledged And Dropped", func(t *testing.T) {
		publisher := &fakePublisher{}
		h := NewApiHandler(newApiStore(t), &fakeActions{}, publisher, testWebhookSecret)

		payload := `{"id": "evt_2", "api_version": "2022-11-15", "type": "invoice.created", "data": {"object": {}}}`
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, signedWebhookRequest(t, payload))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, publisher.published)
	})

	t.Run("Queue Outage Asks The Processor To Retry", func(t *testing.T) {
		publisher := &fakePublisher{err: errors.New("queue unavailable")}
		h := NewApiHandler(newApiStore(t), &fakeActions{}, publisher, testWebhookSecret)

		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, signedWebhookRequest(t, intentPayload))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
