// Package identityrepo manages repository layer of payout identity profiles.
package identityrepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/gold-vault/internal/domain"
	"github.com/go-petr/gold-vault/pkg/dbpkg"
	"github.com/go-petr/gold-vault/pkg/errorspkg"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates payout profile repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns payout profile RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const upsertQuery = `
INSERT INTO
    payout_profiles (account_id, full_name, bank_account_no, bank_ifsc)
VALUES
    ($1, $2, $3, $4)
ON CONFLICT (account_id) DO UPDATE
SET full_name = EXCLUDED.full_name,
    bank_account_no = EXCLUDED.bank_account_no,
    bank_ifsc = EXCLUDED.bank_ifsc
RETURNING account_id, full_name, bank_account_no, bank_ifsc, created_at
`

// Upsert creates or replaces the payout profile of the given account.
func (r *RepoPGS) Upsert(ctx context.Context, p domain.PayoutProfile) (domain.PayoutProfile, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, upsertQuery, p.AccountID, p.FullName, p.BankAccountNo, p.BankIFSC)

	var saved domain.PayoutProfile

	err := row.Scan(
		&saved.AccountID,
		&saved.FullName,
		&saved.BankAccountNo,
		&saved.BankIFSC,
		&saved.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()
		return saved, errorspkg.ErrInternal
	}

	return saved, nil
}

const payoutFieldsCompleteQuery = `
SELECT
	full_name <> '' AND bank_account_no <> '' AND bank_ifsc <> ''
FROM payout_profiles
WHERE account_id = $1
`

// PayoutFieldsComplete reports whether the account has every mandatory
// payout identity field populated. A missing profile counts as incomplete.
func (r *RepoPGS) PayoutFieldsComplete(ctx context.Context, accountID string) (bool, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, payoutFieldsCompleteQuery, accountID)

	var complete bool

	err := row.Scan(&complete)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}

		l.Error().Err(err).Send()

		return false, errorspkg.ErrInternal
	}

	return complete, nil
}
