// Package settlementrepo manages repository layer of settlement requests.
package settlementrepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/gold-vault/internal/domain"
	"github.com/go-petr/gold-vault/pkg/dbpkg"
	"github.com/go-petr/gold-vault/pkg/errorspkg"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates settlement request repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns settlement RepoPGS bound to an open transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns settlement RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const requestFields = `
	id, account_id, kind, state, amount_currency, units, unit_price,
	COALESCE(external_order_id, ''), COALESCE(external_payment_ref, ''),
	COALESCE(rejection_reason, ''), created_at
`

func scanRequest(row *sql.Row) (domain.SettlementRequest, error) {
	var sr domain.SettlementRequest

	err := row.Scan(
		&sr.ID,
		&sr.AccountID,
		&sr.Kind,
		&sr.State,
		&sr.AmountCurrency,
		&sr.Units,
		&sr.UnitPrice,
		&sr.ExternalOrderID,
		&sr.ExternalPaymentRef,
		&sr.RejectionReason,
		&sr.CreatedAt,
	)

	return sr, err
}

const createQuery = `
INSERT INTO
    settlement_requests (account_id, kind, amount_currency, units, unit_price)
VALUES
    ($1, $2, $3, $4, $5)
RETURNING` + requestFields

// Create persists a pending settlement request and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateSettlementRequestParams) (domain.SettlementRequest, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.AccountID,
		arg.Kind,
		arg.AmountCurrency,
		arg.Units,
		arg.UnitPrice,
	)

	sr, err := scanRequest(row)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx context.Context, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "settlement_requests_amount_currency_check", "settlement_requests_units_check":
				return sr, domain.ErrInvalidAmount
			}
		}

		return sr, errorspkg.ErrInternal
	}

	return sr, nil
}

const setExternalOrderIDQuery = `
UPDATE settlement_requests
SET external_order_id = $2
WHERE id = $1 AND external_order_id IS NULL
RETURNING` + requestFields

// SetExternalOrderID stamps the gateway order id on a freshly created
// request. The id is assigned exactly once; a second stamp attempt finds no
// matching row.
func (r *RepoPGS) SetExternalOrderID(ctx context.Context, id int64, externalOrderID string) (domain.SettlementRequest, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, setExternalOrderIDQuery, id, externalOrderID)

	sr, err := scanRequest(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return sr, domain.ErrRequestNotFound
		}

		return sr, errorspkg.ErrInternal
	}

	return sr, nil
}

const getQuery = `
SELECT` + requestFields + `
FROM settlement_requests
WHERE id = $1
`

// Get returns the settlement request with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.SettlementRequest, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	sr, err := scanRequest(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return sr, domain.ErrRequestNotFound
		}

		l.Error().Err(err).Send()

		return sr, errorspkg.ErrInternal
	}

	return sr, nil
}

const getByExternalOrderIDQuery = `
SELECT` + requestFields + `
FROM settlement_requests
WHERE external_order_id = $1
`

// GetByExternalOrderID returns the settlement request with the given
// gateway order id.
func (r *RepoPGS) GetByExternalOrderID(ctx context.Context, externalOrderID string) (domain.SettlementRequest, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getByExternalOrderIDQuery, externalOrderID)

	sr, err := scanRequest(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return sr, domain.ErrRequestNotFound
		}

		l.Error().Err(err).Send()

		return sr, errorspkg.ErrInternal
	}

	return sr, nil
}

const listQuery = `
SELECT` + requestFields + `
FROM settlement_requests
WHERE account_id = $1
ORDER BY id DESC
LIMIT $2 OFFSET $3
`

// List returns the specified number of settlement requests for the given account.
func (r *RepoPGS) List(ctx context.Context, arg domain.ListSettlementRequestsParams) ([]domain.SettlementRequest, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, arg.AccountID, arg.Limit, arg.Offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.SettlementRequest{}

	for rows.Next() {
		var sr domain.SettlementRequest
		if err := rows.Scan(
			&sr.ID,
			&sr.AccountID,
			&sr.Kind,
			&sr.State,
			&sr.AmountCurrency,
			&sr.Units,
			&sr.UnitPrice,
			&sr.ExternalOrderID,
			&sr.ExternalPaymentRef,
			&sr.RejectionReason,
			&sr.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, sr)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
