// Package gateway defines the payment gateway capability consumed by the
// settlement engine. The concrete client lives outside this repo; the
// engine receives an Adapter at construction time so tests can substitute
// a fake.
package gateway

import (
	"context"

	"github.com/go-petr/gold-vault/internal/domain"
)

// Adapter provides the payment gateway operations.
//
//go:generate mockgen -source gateway.go -destination gateway_mock.go -package gateway
type Adapter interface {
	// CreateOrder mints a remote order for a purchase and returns the
	// checkout session token.
	CreateOrder(ctx context.Context, arg domain.CreateOrderParams) (domain.RemoteOrder, error)
	// FetchOrderStatus returns the gateway's view of the given order.
	FetchOrderStatus(ctx context.Context, externalOrderID string) (domain.RemoteOrderStatus, error)
	// VerifySignature checks callback authenticity. It must be called
	// before any settlement row is touched.
	VerifySignature(ctx context.Context, signature string, payload []byte, timestamp string) error
}
