package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/fleetrent/deposit-engine/pkg/webhooks"
	"github.com/stripe/stripe-go/v74/webhook"
)

// maxWebhookBody bounds the payload we are willing to read from the processor.
const maxWebhookBody = 64 * 1024

// StripeWebhook receives processor notifications. The signature is verified
// before anything is trusted; relevant events are normalized and enqueued for
// the reconciler, everything else is acknowledged and dropped. The endpoint
// always answers quickly so the processor does not start re-delivering.
func (h *ApiHandler) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		http.Error(w, "Unable to read payload", http.StatusBadRequest)
		return
	}

	stripeEvent, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), h.WebhookSecret)
	if err != nil {
		http.Error(w, "Invalid webhook signature", http.StatusBadRequest)
		return
	}

	if !webhooks.Relevant(stripeEvent.Type) {
		w.WriteHeader(http.StatusOK)
		return
	}

	ev, err := webhooks.FromStripeEvent(&stripeEvent)
	if err != nil {
		http.Error(w, fmt.Sprintf("Unable to parse event: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.Publisher.PublishEvent(r.Context(), ev); err != nil {
		// A non-2xx makes the processor retry later, which is what we want
		// when the queue is unavailable.
		http.Error(w, "Failed to enqueue event", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
