package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/fleetrent/deposit-engine/pkg/models"
	"github.com/fleetrent/deposit-engine/pkg/storage"
	"github.com/fleetrent/deposit-engine/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *mocks.DynamoDBAPI) {
	client := mocks.NewDynamoDBAPI(t)
	store := New(client, "payments", "bookings", "customers", "tenants", "events")
	return store, client
}

func TestUpdateDeposit(t *testing.T) {
	t.Run("Guards On Status And Version", func(t *testing.T) {
		store, client := newTestStore(t)

		updated := models.Payment{
			Id:      "pay_1",
			Version: 3,
			Deposit: models.Deposit{Amount: 500, Status: models.DepositProcessing},
		}
		item, err := attributevalue.MarshalMap(updated)
		require.NoError(t, err)

		client.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *awsdynamodb.UpdateItemInput) bool {
			cond := *input.ConditionExpression
			from := input.ExpressionAttributeValues[":from"].(*types.AttributeValueMemberS).Value
			version := input.ExpressionAttributeValues[":version"].(*types.AttributeValueMemberN).Value
			return *input.TableName == "payments" &&
				cond == "deposit.#st = :from AND version = :version" &&
				from == string(models.DepositScheduled) &&
				version == "2"
		})).Return(&awsdynamodb.UpdateItemOutput{Attributes: item}, nil)

		result, err := store.UpdateDeposit(context.Background(), "pay_1", storage.DepositWrite{
			From:    models.DepositScheduled,
			Deposit: models.Deposit{Amount: 500, Status: models.DepositProcessing},
			Version: 2,
		})

		require.NoError(t, err)
		assert.Equal(t, models.DepositProcessing, result.Deposit.Status)
		assert.Equal(t, int64(3), result.Version)
	})

	t.Run("Mirrors The Intent Reference For The Lookup Index", func(t *testing.T) {
		store, client := newTestStore(t)

		updated := models.Payment{Id: "pay_1", Version: 4}
		item, err := attributevalue.MarshalMap(updated)
		require.NoError(t, err)

		client.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *awsdynamodb.UpdateItemInput) bool {
			intent, ok := input.ExpressionAttributeValues[":intent"]
			return ok && intent.(*types.AttributeValueMemberS).Value == "pi_1"
		})).Return(&awsdynamodb.UpdateItemOutput{Attributes: item}, nil)

		_, err = store.UpdateDeposit(context.Background(), "pay_1", storage.DepositWrite{
			From: models.DepositProcessing,
			Deposit: models.Deposit{
				Amount:          500,
				Status:          models.DepositAuthorized,
				PaymentIntentID: "pi_1",
			},
			Version: 3,
		})
		require.NoError(t, err)
	})

	t.Run("Lost Race Maps To Stale Deposit", func(t *testing.T) {
		store, client := newTestStore(t)

		client.On("UpdateItem", mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{})

		_, err := store.UpdateDeposit(context.Background(), "pay_1", storage.DepositWrite{
			From:    models.DepositProcessing,
			Deposit: models.Deposit{Amount: 500, Status: models.DepositAuthorized},
			Version: 2,
		})

		assert.ErrorIs(t, err, storage.ErrStaleDeposit)
	})

	t.Run("Rejects An Illegal Transition Before Any IO", func(t *testing.T) {
		store, _ := newTestStore(t)

		_, err := store.UpdateDeposit(context.Background(), "pay_1", storage.DepositWrite{
			From:    models.DepositCaptured,
			Deposit: models.Deposit{Amount: 500, Status: models.DepositScheduled},
			Version: 2,
		})

		assert.ErrorIs(t, err, storage.ErrIllegalTransition)
	})

	t.Run("Rejects A Charge Above The Deposit Amount", func(t *testing.T) {
		store, _ := newTestStore(t)

		_, err := store.UpdateDeposit(context.Background(), "pay_1", storage.DepositWrite{
			From: models.DepositAuthorized,
			Deposit: models.Deposit{
				Amount:        500,
				ChargedAmount: 600,
				Status:        models.DepositCaptured,
			},
			Version: 2,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds deposit amount")
	})
}
