package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to DepositStatus }{
		{DepositScheduled, DepositProcessing},
		{DepositScheduled, DepositFailed},
		{DepositProcessing, DepositAuthorized},
		{DepositProcessing, DepositCaptured},
		{DepositProcessing, DepositFailed},
		{DepositAuthorized, DepositCaptured},
		{DepositAuthorized, DepositPartiallyCaptured},
		{DepositAuthorized, DepositReleased},
		{DepositAuthorized, DepositFailed},
		{DepositFailed, DepositScheduled},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	denied := []struct{ from, to DepositStatus }{
		{DepositScheduled, DepositAuthorized},
		{DepositScheduled, DepositCaptured},
		{DepositCaptured, DepositReleased},
		{DepositCaptured, DepositScheduled},
		{DepositPartiallyCaptured, DepositCaptured},
		{DepositReleased, DepositAuthorized},
		{DepositProcessing, DepositScheduled},
		{DepositAuthorized, DepositScheduled},
	}
	for _, tc := range denied {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(DepositCaptured))
	assert.True(t, IsTerminal(DepositPartiallyCaptured))
	assert.True(t, IsTerminal(DepositReleased))

	assert.False(t, IsTerminal(DepositScheduled))
	assert.False(t, IsTerminal(DepositProcessing))
	assert.False(t, IsTerminal(DepositAuthorized))
	// FAILED can re-enter SCHEDULED on retry, so it is not terminal.
	assert.False(t, IsTerminal(DepositFailed))
}
