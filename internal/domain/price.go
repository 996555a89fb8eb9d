package domain

import "errors"

// ErrPriceUnavailable indicates that the oracle has no positive current price.
var ErrPriceUnavailable = errors.New("unit price unavailable")

// RemoteOrder is the gateway-side order minted for a purchase.
type RemoteOrder struct {
	ExternalOrderID string `json:"external_order_id"`
	SessionToken    string `json:"session_token"`
}

// RemoteOrderStatus is the gateway's view of an order, fetched on the
// client poll path.
type RemoteOrderStatus struct {
	Status     string `json:"status"`
	PaymentRef string `json:"payment_ref"`
	Amount     string `json:"amount"`
}

// CreateOrderParams holds data needed to mint a remote order.
type CreateOrderParams struct {
	OrderID   string `json:"order_id"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	AccountID string `json:"account_id"`
}
