package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fleetrent/deposit-engine/pkg/api"
	"github.com/fleetrent/deposit-engine/pkg/deposits"
	"github.com/fleetrent/deposit-engine/pkg/mapping"
	"github.com/fleetrent/deposit-engine/pkg/models"
	"github.com/fleetrent/deposit-engine/pkg/queue"
	"github.com/fleetrent/deposit-engine/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// DepositActions is the slice of the lifecycle engine the API exposes for
// operator-triggered work. All ledger writes still go through the engine's
// transition logic.
type DepositActions interface {
	Capture(ctx context.Context, paymentID string, amount int64, reason string) (*models.Payment, error)
	Release(ctx context.Context, paymentID string) (*models.Payment, error)
	RefundDeposit(ctx context.Context, paymentID string, amount int64) (*models.Payment, error)
}

// ApiHandler serves the payment ledger's HTTP surface: reporting reads,
// operator capture/release/refund, and processor webhook intake.
type ApiHandler struct {
	Store         storage.ApiStore
	Engine        DepositActions
	Publisher     queue.Publisher
	WebhookSecret string
}

// NewApiHandler creates a new ApiHandler.
func NewApiHandler(store storage.ApiStore, engine DepositActions, publisher queue.Publisher, webhookSecret string) *ApiHandler {
	return &ApiHandler{
		Store:         store,
		Engine:        engine,
		Publisher:     publisher,
		WebhookSecret: webhookSecret,
	}
}

// Routes mounts all handler endpoints on a fresh router.
func (h *ApiHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/payments", h.CreatePayment)
	r.Get("/payments/{paymentId}", h.GetPaymentById)
	r.Get("/bookings/{bookingId}/payments", h.ListBookingPayments)
	r.Post("/payments/{paymentId}/deposit/capture", h.CaptureDeposit)
	r.Post("/payments/{paymentId}/deposit/release", h.ReleaseDeposit)
	r.Post("/payments/{paymentId}/refund", h.RefundDeposit)
	r.Get("/tenants/{tenantId}", h.GetTenantById)
	r.Post("/webhooks/stripe", h.StripeWebhook)
	return r
}

// CreatePayment registers a payment record with a scheduled security deposit
// for a booking.
func (h *ApiHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var newPayment api.NewPayment
	if err := json.NewDecoder(r.Body).Decode(&newPayment); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newPayment.DepositAmount <= 0 {
		http.Error(w, "Deposit amount must be positive", http.StatusBadRequest)
		return
	}

	booking, err := h.Store.GetBooking(r.Context(), newPayment.BookingId)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			http.Error(w, "Booking not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to load booking: %v", err), http.StatusInternalServerError)
		}
		return
	}

	domainPayment := mapping.ToDomainNewPayment(&newPayment, booking)
	created, err := h.Store.CreatePayment(r.Context(), domainPayment)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create payment: %v", err), http.StatusInternalServerError)
		return
	}

	h.respond(w, http.StatusCreated, mapping.ToApiPayment(created))
}

// GetPaymentById retrieves a payment record by its ID.
func (h *ApiHandler) GetPaymentById(w http.ResponseWriter, r *http.Request) {
	payment, err := h.Store.GetPayment(r.Context(), chi.URLParam(r, "paymentId"))
	if err != nil {
		if errors.Is(err, storage.ErrPaymentNotFound) {
			http.Error(w, "Payment not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve payment: %v", err), http.StatusInternalServerError)
		}
		return
	}

	h.respond(w, http.StatusOK, mapping.ToApiPayment(payment))
}

// ListBookingPayments retrieves all payment records for a booking.
func (h *ApiHandler) ListBookingPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Store.ListPaymentsByBooking(r.Context(), chi.URLParam(r, "bookingId"))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list payments: %v", err), http.StatusInternalServerError)
		return
	}

	apiPayments := make([]*api.Payment, 0, len(payments))
	for i := range payments {
		apiPayments = append(apiPayments, mapping.ToApiPayment(&payments[i]))
	}
	h.respond(w, http.StatusOK, apiPayments)
}

// CaptureDeposit converts part or all of an authorized hold into a charge.
func (h *ApiHandler) CaptureDeposit(w http.ResponseWriter, r *http.Request) {
	var req api.CaptureDeposit
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	payment, err := h.Engine.Capture(r.Context(), chi.URLParam(r, "paymentId"), req.Amount, req.Reason)
	if err != nil {
		h.respondActionError(w, err, "Failed to capture deposit")
		return
	}

	h.respond(w, http.StatusOK, mapping.ToApiPayment(payment))
}

// ReleaseDeposit voids the remaining authorized amount of the hold.
func (h *ApiHandler) ReleaseDeposit(w http.ResponseWriter, r *http.Request) {
	payment, err := h.Engine.Release(r.Context(), chi.URLParam(r, "paymentId"))
	if err != nil {
		h.respondActionError(w, err, "Failed to release deposit")
		return
	}

	h.respond(w, http.StatusOK, mapping.ToApiPayment(payment))
}

// RefundDeposit returns part or all of a captured deposit charge.
func (h *ApiHandler) RefundDeposit(w http.ResponseWriter, r *http.Request) {
	var req api.RefundDeposit
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	payment, err := h.Engine.RefundDeposit(r.Context(), chi.URLParam(r, "paymentId"), req.Amount)
	if err != nil {
		h.respondActionError(w, err, "Failed to refund deposit")
		return
	}

	h.respond(w, http.StatusOK, mapping.ToApiPayment(payment))
}

// GetTenantById retrieves a tenant's connected-account configuration.
func (h *ApiHandler) GetTenantById(w http.ResponseWriter, r *http.Request) {
	tenant, err := h.Store.GetTenant(r.Context(), chi.URLParam(r, "tenantId"))
	if err != nil {
		if errors.Is(err, storage.ErrTenantNotFound) {
			http.Error(w, "Tenant not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve tenant: %v", err), http.StatusInternalServerError)
		}
		return
	}

	h.respond(w, http.StatusOK, mapping.ToApiTenant(tenant))
}

func (h *ApiHandler) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

func (h *ApiHandler) respondActionError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, storage.ErrPaymentNotFound):
		http.Error(w, "Payment not found", http.StatusNotFound)
	case errors.Is(err, deposits.ErrDepositNotAuthorized),
		errors.Is(err, deposits.ErrCaptureExceedsHold),
		errors.Is(err, deposits.ErrNothingToRefund):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, storage.ErrStaleDeposit):
		http.Error(w, "Deposit was modified concurrently, retry", http.StatusConflict)
	default:
		http.Error(w, fmt.Sprintf("%s: %v", fallback, err), http.StatusInternalServerError)
	}
}
