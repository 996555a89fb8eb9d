// Package holdingrepo manages repository layer of account holdings.
package holdingrepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/gold-vault/internal/domain"
	"github.com/go-petr/gold-vault/pkg/dbpkg"
	"github.com/go-petr/gold-vault/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates holding repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns holding RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const getQuery = `
SELECT
	account_id, total_units, created_at
FROM holdings
WHERE account_id = $1
`

// Get returns the holding of the given account.
func (r *RepoPGS) Get(ctx context.Context, accountID string) (domain.Holding, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, accountID)

	var h domain.Holding

	err := row.Scan(
		&h.AccountID,
		&h.TotalUnits,
		&h.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return h, domain.ErrHoldingNotFound
		}

		l.Error().Err(err).Send()

		return h, errorspkg.ErrInternal
	}

	return h, nil
}

const getForUpdateQuery = `
SELECT
	account_id, total_units, created_at
FROM holdings
WHERE account_id = $1
FOR UPDATE
`

// GetForUpdate returns the holding of the given account under an exclusive
// row lock. Must be called inside a transaction.
func (r *RepoPGS) GetForUpdate(ctx context.Context, accountID string) (domain.Holding, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getForUpdateQuery, accountID)

	var h domain.Holding

	err := row.Scan(
		&h.AccountID,
		&h.TotalUnits,
		&h.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return h, domain.ErrHoldingNotFound
		}

		l.Error().Err(err).Send()

		return h, errorspkg.ErrInternal
	}

	return h, nil
}

const addUnitsQuery = `
INSERT INTO
    holdings (account_id, total_units)
VALUES
    ($1, $2)
ON CONFLICT (account_id) DO UPDATE
SET total_units = holdings.total_units + EXCLUDED.total_units
RETURNING account_id, total_units, created_at
`

// AddUnits credits the account's holding, creating it lazily on first use,
// and returns the changed holding.
func (r *RepoPGS) AddUnits(ctx context.Context, units string, accountID string) (domain.Holding, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, addUnitsQuery, accountID, units)

	var h domain.Holding

	err := row.Scan(
		&h.AccountID,
		&h.TotalUnits,
		&h.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "holdings_total_units_check" {
				return h, domain.ErrInsufficientBalance
			}
		}

		return h, errorspkg.ErrInternal
	}

	return h, nil
}

const subtractUnitsQuery = `
UPDATE holdings
SET total_units = GREATEST(total_units - $1, 0)
WHERE account_id = $2
RETURNING account_id, total_units, created_at
`

// SubtractUnits debits the account's holding, clamped at zero, and returns
// the changed holding. Sufficiency must be checked by the caller under lock
// before debiting; the clamp only guards the non-negativity invariant.
func (r *RepoPGS) SubtractUnits(ctx context.Context, units string, accountID string) (domain.Holding, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, subtractUnitsQuery, units, accountID)

	var h domain.Holding

	err := row.Scan(
		&h.AccountID,
		&h.TotalUnits,
		&h.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return h, domain.ErrHoldingNotFound
		}

		l.Error().Err(err).Send()

		return h, errorspkg.ErrInternal
	}

	return h, nil
}
