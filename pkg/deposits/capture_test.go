package deposits

import (
	"context"
	"testing"

	"github.com/fleetrent/deposit-engine/pkg/gateway"
	"github.com/fleetrent/deposit-engine/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func authorizedPayment() *models.Payment {
	p := testPayment()
	p.Version = 3
	p.Deposit.Status = models.DepositAuthorized
	p.Deposit.PaymentIntentID = "pi_1"
	return p
}

func TestCapture(t *testing.T) {
	t.Run("Partial Capture Ends Partially Captured", func(t *testing.T) {
		f := newEngineFixture(t)
		payment := authorizedPayment()

		f.store.On("GetPayment", mock.Anything, "pay_1").Return(payment, nil)
		f.tenants.On("GetTenant", mock.Anything, "tenant_1").Return(&models.Tenant{Id: "tenant_1", AccountID: "acct_1"}, nil)
		f.gateway.On("CaptureHold", mock.Anything, "acct_1", "pi_1", int64(150)).
			Return(&gateway.HoldResult{HoldRef: "pi_1", ChargeID: "ch_1", Status: gateway.HoldSucceeded}, nil)
		f.passthroughUpdates(payment)

		result, err := f.engine.Capture(context.Background(), "pay_1", 150, "Fuel not topped up")

		require.NoError(t, err)
		assert.Equal(t, models.DepositPartiallyCaptured, result.Deposit.Status)
		assert.Equal(t, int64(150), result.Deposit.ChargedAmount)
		assert.Equal(t, "Fuel not topped up", result.Deposit.CaptureReason)
		assert.Equal(t, "ch_1", result.Deposit.ChargeID)
		require.NotNil(t, result.Deposit.CapturedAt)
		assert.Equal(t, f.now, *result.Deposit.CapturedAt)
	})

	t.Run("Full Capture Ends Captured", func(t *testing.T) {
		f := newEngineFixture(t)
		payment := authorizedPayment()

		f.store.On("GetPayment", mock.Anything, "pay_1").Return(payment, nil)
		f.tenants.On("GetTenant", mock.Anything, "tenant_1").Return(&models.Tenant{Id: "tenant_1", AccountID: "acct_1"}, nil)
		f.gateway.On("CaptureHold", mock.Anything, "acct_1", "pi_1", int64(500)).
			Return(&gateway.HoldResult{HoldRef: "pi_1", ChargeID: "ch_1", Status: gateway.HoldSucceeded}, nil)
		f.passthroughUpdates(payment)

		result, err := f.engine.Capture(context.Background(), "pay_1", 500, "Damage on return")

		require.NoError(t, err)
		assert.Equal(t, models.DepositCaptured, result.Deposit.Status)
		assert.Equal(t, int64(500), result.Deposit.ChargedAmount)
	})

	t.Run("Rejects Capture Above The Hold", func(t *testing.T) {
		f := newEngineFixture(t)
		f.store.On("GetPayment", mock.Anything, "pay_1").Return(authorizedPayment(), nil)

		_, err := f.engine.Capture(context.Background(), "pay_1", 501, "too much")

		assert.ErrorIs(t, err, ErrCaptureExceedsHold)
		f.gateway.AssertNotCalled(t, "CaptureHold", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Rejects Capture Of An Unauthorized Deposit", func(t *testing.T) {
		f := newEngineFixture(t)
		payment := testPayment()
		f.store.On("GetPayment", mock.Anything, "pay_1").Return(payment, nil)

		_, err := f.engine.Capture(context.Background(), "pay_1", 100, "early")

		assert.ErrorIs(t, err, ErrDepositNotAuthorized)
	})
}

func TestRelease(t *testing.T) {
	t.Run("Releases An Authorized Hold", func(t *testing.T) {
		f := newEngineFixture(t)
		payment := authorizedPayment()

		f.store.On("GetPayment", mock.Anything, "pay_1").Return(payment, nil)
		f.tenants.On("GetTenant", mock.Anything, "tenant_1").Return(&models.Tenant{Id: "tenant_1", AccountID: "acct_1"}, nil)
		f.gateway.On("ReleaseHold", mock.Anything, "acct_1", "pi_1").
			Return(&gateway.HoldResult{HoldRef: "pi_1", Status: gateway.HoldCanceled}, nil)
		f.passthroughUpdates(payment)

		result, err := f.engine.Release(context.Background(), "pay_1")

		require.NoError(t, err)
		assert.Equal(t, models.DepositReleased, result.Deposit.Status)
		require.NotNil(t, result.Deposit.ReleasedAt)
		assert.Equal(t, int64(0), result.Deposit.ChargedAmount)
	})

	t.Run("Rejects Release Of A Captured Deposit", func(t *testing.T) {
		f := newEngineFixture(t)
		payment := authorizedPayment()
		payment.Deposit.Status = models.DepositCaptured

		f.store.On("GetPayment", mock.Anything, "pay_1").Return(payment, nil)

		_, err := f.engine.Release(context.Background(), "pay_1")

		assert.ErrorIs(t, err, ErrDepositNotAuthorized)
	})
}

func TestRefundDeposit(t *testing.T) {
	t.Run("Refunds Up To The Charged Amount", func(t *testing.T) {
		f := newEngineFixture(t)
		payment := authorizedPayment()
		payment.Deposit.Status = models.DepositPartiallyCaptured
		payment.Deposit.ChargeID = "ch_1"
		payment.Deposit.ChargedAmount = 150

		f.store.On("GetPayment", mock.Anything, "pay_1").Return(payment, nil)
		f.tenants.On("GetTenant", mock.Anything, "tenant_1").Return(&models.Tenant{Id: "tenant_1", AccountID: "acct_1"}, nil)
		f.gateway.On("Refund", mock.Anything, "acct_1", "ch_1", int64(100)).Return("re_1", nil)
		f.store.On("RecordRefund", mock.Anything, "pay_1", "re_1", int64(100)).Return(nil)

		result, err := f.engine.RefundDeposit(context.Background(), "pay_1", 100)

		require.NoError(t, err)
		assert.Equal(t, "re_1", result.RefundID)
	})

	t.Run("Rejects Refund Beyond The Charge", func(t *testing.T) {
		f := newEngineFixture(t)
		payment := authorizedPayment()
		payment.Deposit.Status = models.DepositPartiallyCaptured
		payment.Deposit.ChargeID = "ch_1"
		payment.Deposit.ChargedAmount = 150

		f.store.On("GetPayment", mock.Anything, "pay_1").Return(payment, nil)

		_, err := f.engine.RefundDeposit(context.Background(), "pay_1", 151)

		assert.ErrorIs(t, err, ErrNothingToRefund)
	})

	t.Run("Rejects Refund With No Charge", func(t *testing.T) {
		f := newEngineFixture(t)
		f.store.On("GetPayment", mock.Anything, "pay_1").Return(authorizedPayment(), nil)

		_, err := f.engine.RefundDeposit(context.Background(), "pay_1", 50)

		assert.ErrorIs(t, err, ErrNothingToRefund)
	})
}
