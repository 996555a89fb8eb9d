// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrHoldingNotFound indicates that the account has no holding row yet.
	ErrHoldingNotFound = errors.New("holding not found")
	// ErrInsufficientBalance indicates that the account does not hold enough units.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Holding is the running balance of metal units owned by an account.
//
// TotalUnits is a cache of the derivation
// sum(units of completed buys) - sum(units of completed withdrawals)
// and is mutated only inside a committed settlement transaction.
type Holding struct {
	AccountID  string    `json:"account_id"`
	TotalUnits string    `json:"total_units"`
	CreatedAt  time.Time `json:"created_at"`
}

// Valuation is a holding priced at the current unit price.
//
// Reads take no lock, so the balance may be slightly stale relative to
// in-flight settlements.
type Valuation struct {
	Holding       Holding `json:"holding"`
	UnitPrice     string  `json:"unit_price"`
	CurrencyValue string  `json:"currency_value"`
}
