package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fleetrent/deposit-engine/pkg/api"
	"github.com/fleetrent/deposit-engine/pkg/deposits"
	"github.com/fleetrent/deposit-engine/pkg/models"
	"github.com/fleetrent/deposit-engine/pkg/storage"
	storagemocks "github.com/fleetrent/deposit-engine/pkg/storage/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// apiStore satisfies storage.ApiStore by composing the per-concern mocks.
type apiStore struct {
	*storagemocks.PaymentStore
	*storagemocks.BookingReader
	*storagemocks.CustomerReader
	*storagemocks.TenantReader
}

type fakeActions struct {
	capture func(paymentID string, amount int64, reason string) (*models.Payment, error)
	release func(paymentID string) (*models.Payment, error)
	refund  func(paymentID string, amount int64) (*models.Payment, error)
}

func (f *fakeActions) Capture(ctx context.Context, paymentID string, amount int64, reason string) (*models.Payment, error) {
	return f.capture(paymentID, amount, reason)
}

func (f *fakeActions) Release(ctx context.Context, paymentID string) (*models.Payment, error) {
	return f.release(paymentID)
}

func (f *fakeActions) RefundDeposit(ctx context.Context, paymentID string, amount int64) (*models.Payment, error) {
	return f.refund(paymentID, amount)
}

func newApiStore(t *testing.T) *apiStore {
	return &apiStore{
		PaymentStore:   storagemocks.NewPaymentStore(t),
		BookingReader:  storagemocks.NewBookingReader(t),
		CustomerReader: storagemocks.NewCustomerReader(t),
		TenantReader:   storagemocks.NewTenantReader(t),
	}
}

func ledgerPayment(id string) *models.Payment {
	return &models.Payment{
		Id:        id,
		TenantID:  "tenant_1",
		BookingID: "booking_1",
		Currency:  "usd",
		Version:   2,
		PickupAt:  time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC),
		Deposit: models.Deposit{
			Amount: 500,
			Status: models.DepositAuthorized,
		},
	}
}

func TestCreatePayment(t *testing.T) {
	t.Run("Creates From A Known Booking", func(t *testing.T) {
		store := newApiStore(t)
		h := NewApiHandler(store, &fakeActions{}, nil, "")

		store.BookingReader.On("GetBooking", mock.Anything, "booking_1").
			Return(&models.Booking{Id: "booking_1", TenantID: "tenant_1", CustomerID: "cust_1", Currency: "usd"}, nil)
		store.PaymentStore.On("CreatePayment", mock.Anything, mock.Anything).Return(
			func(ctx context.Context, p *models.Payment) (*models.Payment, error) {
				p.Id = uuid.New().String()
				p.Version = 1
				return p, nil
			})

		body, _ := json.Marshal(api.NewPayment{BookingId: "booking_1", DepositAmount: 500})
		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var created api.Payment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, "booking_1", created.BookingId)
		assert.Equal(t, int64(500), created.Deposit.Amount)
	})

	t.Run("Unknown Booking Is Not Found", func(t *testing.T) {
		store := newApiStore(t)
		h := NewApiHandler(store, &fakeActions{}, nil, "")

		store.BookingReader.On("GetBooking", mock.Anything, "booking_missing").
			Return(nil, storage.ErrBookingNotFound)

		body, _ := json.Marshal(api.NewPayment{BookingId: "booking_missing", DepositAmount: 500})
		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Rejects A Non Positive Deposit", func(t *testing.T) {
		store := newApiStore(t)
		h := NewApiHandler(store, &fakeActions{}, nil, "")

		body, _ := json.Marshal(api.NewPayment{BookingId: "booking_1", DepositAmount: 0})
		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetPaymentById(t *testing.T) {
	t.Run("Serves The Ledger Record", func(t *testing.T) {
		store := newApiStore(t)
		h := NewApiHandler(store, &fakeActions{}, nil, "")
		id := uuid.New().String()

		store.PaymentStore.On("GetPayment", mock.Anything, id).Return(ledgerPayment(id), nil)

		req := httptest.NewRequest(http.MethodGet, "/payments/"+id, nil)
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var payment api.Payment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payment))
		assert.Equal(t, id, payment.Id.String())
		assert.Equal(t, api.DepositStatus(models.DepositAuthorized), payment.Deposit.Status)
	})

	t.Run("Missing Payment Is Not Found", func(t *testing.T) {
		store := newApiStore(t)
		h := NewApiHandler(store, &fakeActions{}, nil, "")

		store.PaymentStore.On("GetPayment", mock.Anything, "pay_missing").
			Return(nil, storage.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/payments/pay_missing", nil)
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCaptureDeposit(t *testing.T) {
	t.Run("Passes Amount And Reason Through", func(t *testing.T) {
		store := newApiStore(t)
		id := uuid.New().String()
		actions := &fakeActions{capture: func(paymentID string, amount int64, reason string) (*models.Payment, error) {
			assert.Equal(t, id, paymentID)
			assert.Equal(t, int64(150), amount)
			assert.Equal(t, "Fuel not topped up", reason)
			p := ledgerPayment(id)
			p.Deposit.Status = models.DepositPartiallyCaptured
			p.Deposit.ChargedAmount = amount
			return p, nil
		}}
		h := NewApiHandler(store, actions, nil, "")

		body, _ := json.Marshal(api.CaptureDeposit{Amount: 150, Reason: "Fuel not topped up"})
		req := httptest.NewRequest(http.MethodPost, "/payments/"+id+"/deposit/capture", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var payment api.Payment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payment))
		assert.Equal(t, int64(150), payment.Deposit.ChargedAmount)
	})

	t.Run("Capture Above The Hold Is Unprocessable", func(t *testing.T) {
		store := newApiStore(t)
		actions := &fakeActions{capture: func(string, int64, string) (*models.Payment, error) {
			return nil, deposits.ErrCaptureExceedsHold
		}}
		h := NewApiHandler(store, actions, nil, "")

		body, _ := json.Marshal(api.CaptureDeposit{Amount: 600})
		req := httptest.NewRequest(http.MethodPost, "/payments/pay_1/deposit/capture", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("Concurrent Modification Is A Conflict", func(t *testing.T) {
		store := newApiStore(t)
		actions := &fakeActions{capture: func(string, int64, string) (*models.Payment, error) {
			return nil, storage.ErrStaleDeposit
		}}
		h := NewApiHandler(store, actions, nil, "")

		body, _ := json.Marshal(api.CaptureDeposit{Amount: 100})
		req := httptest.NewRequest(http.MethodPost, "/payments/pay_1/deposit/capture", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestReleaseDeposit(t *testing.T) {
	t.Run("Unauthorized Deposit Is Unprocessable", func(t *testing.T) {
		store := newApiStore(t)
		actions := &fakeActions{release: func(string) (*models.Payment, error) {
			return nil, deposits.ErrDepositNotAuthorized
		}}
		h := NewApiHandler(store, actions, nil, "")

		req := httptest.NewRequest(http.MethodPost, "/payments/pay_1/deposit/release", nil)
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestGetTenantById(t *testing.T) {
	t.Run("Serves The Connected Account View", func(t *testing.T) {
		store := newApiStore(t)
		h := NewApiHandler(store, &fakeActions{}, nil, "")

		store.TenantReader.On("GetTenant", mock.Anything, "tenant_1").Return(&models.Tenant{
			Id:             "tenant_1",
			AccountID:      "acct_1",
			ChargesEnabled: true,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/tenants/tenant_1", nil)
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var tenant api.Tenant
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tenant))
		assert.Equal(t, "acct_1", tenant.AccountId)
		assert.True(t, tenant.ChargesEnabled)
	})
}
