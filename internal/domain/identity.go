package domain

import (
	"errors"
	"time"
)

// ErrIdentityIncomplete indicates that the account is missing mandatory
// payout identity fields.
var ErrIdentityIncomplete = errors.New("payout identity incomplete")

// PayoutProfile holds the identity fields a withdrawal payout requires.
// All three fields must be non-empty before a withdrawal may be created.
type PayoutProfile struct {
	AccountID     string    `json:"account_id"`
	FullName      string    `json:"full_name"`
	BankAccountNo string    `json:"bank_account_no"`
	BankIFSC      string    `json:"bank_ifsc"`
	CreatedAt     time.Time `json:"created_at"`
}
