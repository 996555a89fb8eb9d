package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidAmount indicates a non-positive or unparsable amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrRequestNotFound indicates that no settlement request matches the given id.
	ErrRequestNotFound = errors.New("settlement request not found")
	// ErrAlreadyDecided indicates that the withdrawal request is no longer pending.
	ErrAlreadyDecided = errors.New("withdrawal already decided")
	// ErrNotWithdrawal indicates that the request is not a withdrawal.
	ErrNotWithdrawal = errors.New("request is not a withdrawal")
	// ErrGatewayUnavailable indicates that the payment gateway call failed.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	// ErrSignatureInvalid indicates that the callback signature verification failed.
	ErrSignatureInvalid = errors.New("invalid callback signature")
)

// Settlement request kinds.
const (
	KindBuy      = "buy"
	KindWithdraw = "withdraw"
)

// Settlement request states. The three non-pending states are absorbing:
// once entered a request can never transition again.
const (
	StatePending   = "pending"
	StateCompleted = "completed"
	StateFailed    = "failed"
	StateRejected  = "rejected"
)

// StaleBalanceReason is stamped on a withdrawal that the engine auto-rejects
// because the holding no longer covers the requested units at approval time.
const StaleBalanceReason = "balance insufficient at approval time"

// SettlementRequest is a persisted intent to buy or withdraw units,
// tracked through exactly one terminal transition.
//
// Units equals AmountCurrency / UnitPrice, computed once at creation and
// never recomputed. ExternalOrderID is assigned exactly once, right after
// creation, before any settlement attempt can reference it.
type SettlementRequest struct {
	ID                 int64     `json:"id"`
	AccountID          string    `json:"account_id"`
	Kind               string    `json:"kind"`
	State              string    `json:"state"`
	AmountCurrency     string    `json:"amount_currency"`
	Units              string    `json:"units"`
	UnitPrice          string    `json:"unit_price"`
	ExternalOrderID    string    `json:"external_order_id,omitempty"`
	ExternalPaymentRef string    `json:"external_payment_ref,omitempty"`
	RejectionReason    string    `json:"rejection_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// CreateSettlementRequestParams holds data needed to persist a pending request.
type CreateSettlementRequestParams struct {
	AccountID      string `json:"account_id"`
	Kind           string `json:"kind"`
	AmountCurrency string `json:"amount_currency"`
	Units          string `json:"units"`
	UnitPrice      string `json:"unit_price"`
}

// Resolutions a settlement attempt can apply to a pending request.
const (
	ResolveComplete = "complete"
	ResolveFail     = "fail"
)

// SettleParams is the input for the settle unit of work keyed by the
// gateway's order id.
type SettleParams struct {
	ExternalOrderID    string `json:"external_order_id"`
	Resolution         string `json:"resolution"`
	ExternalPaymentRef string `json:"external_payment_ref"`
}

// Withdrawal decisions.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// DecideWithdrawalParams is the input for the admin decision unit of work.
type DecideWithdrawalParams struct {
	RequestID int64  `json:"request_id"`
	Decision  string `json:"decision"`
	PayoutRef string `json:"payout_ref"`
	Reason    string `json:"reason"`
}

// SettlementOutcome is the discriminated result of a settlement attempt.
//
// Exactly one of the flags below may be set:
//   - Replayed: the request was already terminal; Request carries the
//     previously recorded outcome and nothing was mutated.
//   - StillPending: the reported status maps to neither completion nor
//     failure; no row was touched.
//   - AutoRejected: an approval found the balance insufficient and the
//     engine rejected the withdrawal instead of corrupting the ledger.
//
// Holding is populated only when the attempt mutated the ledger.
type SettlementOutcome struct {
	Request      SettlementRequest `json:"request"`
	Holding      Holding           `json:"holding,omitempty"`
	Replayed     bool              `json:"replayed,omitempty"`
	StillPending bool              `json:"still_pending,omitempty"`
	AutoRejected bool              `json:"auto_rejected,omitempty"`
}

// ListSettlementRequestsParams is the input data to page through an
// account's settlement history.
type ListSettlementRequestsParams struct {
	AccountID string `json:"account_id"`
	Limit     int32  `json:"limit"`
	Offset    int32  `json:"offset"`
}

// PurchaseResult is returned from buy creation; SessionToken lets the
// client open the gateway checkout for the freshly minted remote order.
type PurchaseResult struct {
	Request      SettlementRequest `json:"request"`
	SessionToken string            `json:"session_token"`
}
