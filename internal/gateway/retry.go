package gateway

import (
	"context"
	"time"

	"github.com/go-petr/gold-vault/internal/domain"
	"github.com/go-petr/gold-vault/internal/metrics"
	"github.com/rs/zerolog"
)

// RetryAdapter wraps an Adapter with a bounded retry policy. The policy
// applies only to the gateway boundary; the ledger-mutating unit of work is
// never retried, so a repeated gateway call can never double-apply a
// settlement.
type RetryAdapter struct {
	next        Adapter
	maxAttempts int
	backoff     time.Duration
}

// WithRetry returns a RetryAdapter around the given Adapter.
func WithRetry(next Adapter, maxAttempts int, backoff time.Duration) *RetryAdapter {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &RetryAdapter{
		next:        next,
		maxAttempts: maxAttempts,
		backoff:     backoff,
	}
}

func (r *RetryAdapter) retry(ctx context.Context, op string, fn func() error) error {
	l := zerolog.Ctx(ctx)

	var err error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		l.Warn().Err(err).Str("op", op).Int("attempt", attempt).Send()

		if attempt == r.maxAttempts {
			break
		}

		metrics.GatewayRetriesTotal.Inc()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoff * time.Duration(attempt)):
		}
	}

	return err
}

// CreateOrder mints a remote order, retrying transient gateway failures.
func (r *RetryAdapter) CreateOrder(ctx context.Context, arg domain.CreateOrderParams) (domain.RemoteOrder, error) {
	var order domain.RemoteOrder

	err := r.retry(ctx, "CreateOrder", func() error {
		var err error
		order, err = r.next.CreateOrder(ctx, arg)
		return err
	})

	return order, err
}

// FetchOrderStatus fetches the order status, retrying transient gateway failures.
func (r *RetryAdapter) FetchOrderStatus(ctx context.Context, externalOrderID string) (domain.RemoteOrderStatus, error) {
	var status domain.RemoteOrderStatus

	err := r.retry(ctx, "FetchOrderStatus", func() error {
		var err error
		status, err = r.next.FetchOrderStatus(ctx, externalOrderID)
		return err
	})

	return status, err
}

// VerifySignature is never retried; a signature either verifies or it does not.
func (r *RetryAdapter) VerifySignature(ctx context.Context, signature string, payload []byte, timestamp string) error {
	return r.next.VerifySignature(ctx, signature, payload, timestamp)
}
