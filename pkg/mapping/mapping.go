package mapping

import (
	"time"

	"github.com/fleetrent/deposit-engine/pkg/api"
	"github.com/fleetrent/deposit-engine/pkg/models"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ToApiPayment converts a domain Payment model to an API Payment model.
func ToApiPayment(payment *models.Payment) *api.Payment {
	id, _ := uuid.Parse(payment.Id)
	return &api.Payment{
		Id:               openapi_types.UUID(id),
		TenantId:         payment.TenantID,
		BookingId:        payment.BookingID,
		CustomerId:       payment.CustomerID,
		Currency:         payment.Currency,
		AuthorizedAmount: payment.AuthorizedAmount,
		ChargedAmount:    payment.ChargedAmount,
		RefundId:         payment.RefundID,
		FailureReason:    payment.FailureReason,
		Deposit:          toApiDeposit(payment.Deposit),
		PickupDate:       openapi_types.Date{Time: payment.PickupAt},
		CreatedAt:        payment.CreatedAt,
		UpdatedAt:        payment.UpdatedAt,
	}
}

func toApiDeposit(deposit models.Deposit) api.Deposit {
	return api.Deposit{
		Amount:          deposit.Amount,
		Status:          api.DepositStatus(deposit.Status),
		PaymentIntentId: deposit.PaymentIntentID,
		ChargeId:        deposit.ChargeID,
		ChargedAmount:   deposit.ChargedAmount,
		CaptureReason:   deposit.CaptureReason,
		FailureReason:   deposit.FailureReason,
		RetryCount:      deposit.RetryCount,
		ScheduledFor:    deposit.ScheduledFor,
		AuthorizedAt:    deposit.AuthorizedAt,
		CapturedAt:      deposit.CapturedAt,
		ReleasedAt:      deposit.ReleasedAt,
	}
}

// ToDomainNewPayment builds the domain payment record for a booking from the
// API request. Server-side fields are filled in by the storage layer.
func ToDomainNewPayment(newPayment *api.NewPayment, booking *models.Booking) *models.Payment {
	return &models.Payment{
		TenantID:         booking.TenantID,
		BookingID:        booking.Id,
		CustomerID:       booking.CustomerID,
		Currency:         booking.Currency,
		PaymentMethodRef: booking.PaymentMethodRef,
		PickupAt:         booking.PickupAt,
		Deposit: models.Deposit{
			Amount:       newPayment.DepositAmount,
			Status:       models.DepositScheduled,
			ScheduledFor: time.Now(),
		},
	}
}

// ToApiTenant converts a domain Tenant model to an API Tenant model.
func ToApiTenant(tenant *models.Tenant) *api.Tenant {
	return &api.Tenant{
		Id:             tenant.Id,
		AccountId:      tenant.AccountID,
		ChargesEnabled: tenant.ChargesEnabled,
		PayoutsEnabled: tenant.PayoutsEnabled,
		PayoutSchedule: tenant.PayoutSchedule,
	}
}
