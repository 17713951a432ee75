package deposits

import "time"

// RetryPolicy decides whether a failed authorization attempt is retried and
// after what delay. It is a pure function of the retry count so both the
// engine and tests can reason about it without a live clock.
type RetryPolicy struct {
	// Base is the backoff unit; the delay for retry n is Base * 2^n.
	Base time.Duration

	// MaxRetries is the number of consecutive failures after which the
	// deposit stays FAILED and is never picked up automatically again.
	MaxRetries int
}

// DefaultRetryPolicy matches the operational defaults: 5-minute base, three
// attempts before the failure is terminal.
var DefaultRetryPolicy = RetryPolicy{Base: 5 * time.Minute, MaxRetries: 3}

// Next computes the disposition after a failure. retryCount is the counter
// value after incrementing for the failure that just happened. It returns
// the backoff delay before the next attempt and whether a retry is allowed
// at all; the delay grows geometrically so repeated failures never hot-loop.
func (p RetryPolicy) Next(retryCount int) (time.Duration, bool) {
	if retryCount >= p.MaxRetries {
		return 0, false
	}
	return p.Base * (1 << retryCount), true
}
