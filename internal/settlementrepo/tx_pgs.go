package settlementrepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/gold-vault/internal/domain"
	"github.com/go-petr/gold-vault/internal/holdingrepo"
	"github.com/go-petr/gold-vault/pkg/errorspkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const getByExternalOrderIDForUpdateQuery = `
SELECT` + requestFields + `
FROM settlement_requests
WHERE external_order_id = $1
FOR UPDATE
`

func (r *RepoPGS) getByExternalOrderIDForUpdate(ctx context.Context, externalOrderID string) (domain.SettlementRequest, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getByExternalOrderIDForUpdateQuery, externalOrderID)

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

const getForUpdateQuery = `
SELECT` + requestFields + `
FROM settlement_requests
WHERE id = $1
FOR UPDATE
`

func (r *RepoPGS) getForUpdate(ctx context.Context, id int64) (domain.SettlementRequest, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getForUpdateQuery, id)

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

const completeQuery = `
UPDATE settlement_requests
SET state = 'completed', external_payment_ref = $2
WHERE id = $1
RETURNING` + requestFields

const failQuery = `
UPDATE settlement_requests
SET state = 'failed', external_payment_ref = NULLIF($2, '')
WHERE id = $1
RETURNING` + requestFields

const rejectQuery = `
UPDATE settlement_requests
SET state = 'rejected', rejection_reason = $2
WHERE id = $1
RETURNING` + requestFields

func (r *RepoPGS) transition(ctx context.Context, query string, id int64, arg string) (domain.SettlementRequest, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, query, id, arg)

	sr, err := scanRequest(row)
	if err != nil {
		l.Error().Err(err).Send()
		return sr, errorspkg.ErrInternal
	}

	return sr, nil
}

// Settle applies a terminal resolution to the request matching the given
// gateway order id inside a single database transaction.
//
// It locks the request row, re-checks its state under the lock, and only
// then applies the transition. A buy completion credits the account's
// holding in the same transaction. A request that is already terminal is
// returned unchanged with Replayed set; whichever caller takes the lock
// first wins, the loser observes the recorded outcome.
func (r *RepoPGS) Settle(ctx context.Context, arg domain.SettleParams) (domain.SettlementOutcome, error) {
	l := zerolog.Ctx(ctx)

	var out domain.SettlementOutcome

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return out, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	txRepo := NewTxRepoPGS(tx)
	holdingRepo := holdingrepo.NewRepoPGS(tx)

	sr, err := txRepo.getByExternalOrderIDForUpdate(ctx, arg.ExternalOrderID)
	if err != nil {
		return out, err
	}

	if sr.State != domain.StatePending {
		out.Request = sr
		out.Replayed = true

		if err := tx.Commit(); err != nil {
			l.Error().Err(err).Send()
			return domain.SettlementOutcome{}, errorspkg.ErrInternal
		}

		return out, nil
	}

	switch arg.Resolution {
	case domain.ResolveComplete:
		sr, err = txRepo.transition(ctx, completeQuery, sr.ID, arg.ExternalPaymentRef)
		if err != nil {
			return out, err
		}

		if sr.Kind == domain.KindBuy {
			out.Holding, err = holdingRepo.AddUnits(ctx, sr.Units, sr.AccountID)
			if err != nil {
				return domain.SettlementOutcome{}, err
			}
		}
	case domain.ResolveFail:
		sr, err = txRepo.transition(ctx, failQuery, sr.ID, arg.ExternalPaymentRef)
		if err != nil {
			return out, err
		}
	default:
		return out, errorspkg.ErrInternal
	}

	out.Request = sr

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return domain.SettlementOutcome{}, errorspkg.ErrInternal
	}

	return out, nil
}

// Decide resolves a pending withdrawal inside a single database transaction.
//
// Lock order is request row first, then holding row; the settle path never
// locks a holding for a withdrawal, so the two paths cannot deadlock. An
// approval re-checks sufficiency under the holding lock: a balance that
// drifted below the requested units turns the approval into a rejection
// with a system-supplied reason rather than a negative balance.
func (r *RepoPGS) Decide(ctx context.Context, arg domain.DecideWithdrawalParams) (domain.SettlementOutcome, error) {
	l := zerolog.Ctx(ctx)

	var out domain.SettlementOutcome

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return out, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	txRepo := NewTxRepoPGS(tx)
	holdingRepo := holdingrepo.NewRepoPGS(tx)

	sr, err := txRepo.getForUpdate(ctx, arg.RequestID)
	if err != nil {
		return out, err
	}

	if sr.Kind != domain.KindWithdraw {
		return out, domain.ErrNotWithdrawal
	}

	if sr.State != domain.StatePending {
		return out, domain.ErrAlreadyDecided
	}

	switch arg.Decision {
	case domain.DecisionReject:
		sr, err = txRepo.transition(ctx, rejectQuery, sr.ID, arg.Reason)
		if err != nil {
			return out, err
		}
	case domain.DecisionApprove:
		requested, err := decimal.NewFromString(sr.Units)
		if err != nil {
			l.Error().Err(err).Send()
			return out, errorspkg.ErrInternal
		}

		held := decimal.Zero

		holding, err := holdingRepo.GetForUpdate(ctx, sr.AccountID)
		if err != nil && err != domain.ErrHoldingNotFound {
			return out, err
		}

		if err == nil {
			held, err = decimal.NewFromString(holding.TotalUnits)
			if err != nil {
				l.Error().Err(err).Send()
				return out, errorspkg.ErrInternal
			}
		}

		if held.LessThan(requested) {
			sr, err = txRepo.transition(ctx, rejectQuery, sr.ID, domain.StaleBalanceReason)
			if err != nil {
				return out, err
			}

			out.AutoRejected = true

			break
		}

		out.Holding, err = holdingRepo.SubtractUnits(ctx, sr.Units, sr.AccountID)
		if err != nil {
			return domain.SettlementOutcome{}, err
		}

		sr, err = txRepo.transition(ctx, completeQuery, sr.ID, arg.PayoutRef)
		if err != nil {
			return domain.SettlementOutcome{}, err
		}
	default:
		return out, errorspkg.ErrInternal
	}

	out.Request = sr

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return domain.SettlementOutcome{}, errorspkg.ErrInternal
	}

	return out, nil
}
