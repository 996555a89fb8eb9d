// Package settlementservice manages business logic layer of settlements.
//
// It owns the settlement state machine: a request enters pending, receives
// its gateway order id exactly once, and later transitions exactly once
// into completed, failed, or rejected. Both confirmation paths (gateway
// callback and client poll) funnel through SettleFromExternalStatus;
// withdrawals terminate through DecideWithdrawal.
package settlementservice

import (
	"context"
	"strconv"

	"github.com/go-petr/gold-vault/internal/domain"
	"github.com/go-petr/gold-vault/internal/gateway"
	"github.com/go-petr/gold-vault/internal/metrics"
	"github.com/go-petr/gold-vault/internal/priceoracle"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// settlementCurrency is the only fiat currency the engine deals in.
const settlementCurrency = "INR"

// unitsPrecision is the decimal precision units are computed at.
const unitsPrecision = 4

// Gateway order statuses the engine reacts to. Anything else is reported
// as still pending without touching a row.
const (
	statusPaid      = "paid"
	statusFailed    = "failed"
	statusExpired   = "expired"
	statusCancelled = "cancelled"
)

// Repo provides data access layer interface needed by settlement service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package settlementservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateSettlementRequestParams) (domain.SettlementRequest, error)
	SetExternalOrderID(ctx context.Context, id int64, externalOrderID string) (domain.SettlementRequest, error)
	Get(ctx context.Context, id int64) (domain.SettlementRequest, error)
	GetByExternalOrderID(ctx context.Context, externalOrderID string) (domain.SettlementRequest, error)
	List(ctx context.Context, arg domain.ListSettlementRequestsParams) ([]domain.SettlementRequest, error)
	Settle(ctx context.Context, arg domain.SettleParams) (domain.SettlementOutcome, error)
	Decide(ctx context.Context, arg domain.DecideWithdrawalParams) (domain.SettlementOutcome, error)
}

// HoldingRepo provides the ledger read needed for withdrawal creation.
type HoldingRepo interface {
	Get(ctx context.Context, accountID string) (domain.Holding, error)
}

// Identity reports whether an account may receive payouts.
type Identity interface {
	PayoutFieldsComplete(ctx context.Context, accountID string) (bool, error)
}

// Publisher emits post-commit settlement events. Publishing is best effort:
// failures are logged and never roll back a settlement.
type Publisher interface {
	SettlementCompleted(ctx context.Context, request domain.SettlementRequest) error
}

// Service facilitates settlement service layer logic.
type Service struct {
	repo      Repo
	holdings  HoldingRepo
	gateway   gateway.Adapter
	oracle    priceoracle.Oracle
	identity  Identity
	publisher Publisher
}

// New returns settlement service struct to manage settlement business logic.
func New(sr Repo, hr HoldingRepo, ga gateway.Adapter, po priceoracle.Oracle, id Identity, pub Publisher) *Service {
	return &Service{
		repo:      sr,
		holdings:  hr,
		gateway:   ga,
		oracle:    po,
		identity:  id,
		publisher: pub,
	}
}

// CreateBuy values the given fiat amount at the current unit price, persists
// a pending buy request, and mints the remote order it will settle against.
//
// Units are computed once here and never recomputed, even if the price
// moves before the gateway confirms payment.
func (s *Service) CreateBuy(ctx context.Context, accountID, amount string) (domain.PurchaseResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.PurchaseResult

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return result, domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		return result, domain.ErrInvalidAmount
	}

	price, err := s.oracle.CurrentUnitPrice(ctx)
	if err != nil {
		l.Error().Err(err).Send()
		return result, err
	}

	units := amountDecimal.DivRound(price, unitsPrecision)

	sr, err := s.repo.Create(ctx, domain.CreateSettlementRequestParams{
		AccountID:      accountID,
		Kind:           domain.KindBuy,
		AmountCurrency: amountDecimal.String(),
		Units:          units.String(),
		UnitPrice:      price.String(),
	})
	if err != nil {
		return result, err
	}

	order, err := s.gateway.CreateOrder(ctx, domain.CreateOrderParams{
		OrderID:   strconv.FormatInt(sr.ID, 10),
		Amount:    sr.AmountCurrency,
		Currency:  settlementCurrency,
		AccountID: accountID,
	})
	if err != nil {
		// The pending row survives without an order id; it can never be
		// settled and is cleaned up operationally.
		l.Error().Err(err).Int64("request_id", sr.ID).Send()
		return result, domain.ErrGatewayUnavailable
	}

	sr, err = s.repo.SetExternalOrderID(ctx, sr.ID, order.ExternalOrderID)
	if err != nil {
		return result, err
	}

	result.Request = sr
	result.SessionToken = order.SessionToken

	return result, nil
}

// CreateWithdraw persists a pending withdrawal for the given units.
//
// Sufficiency is checked against the ledger, not against in-flight pending
// withdrawals; concurrent withdrawal races are resolved at approval time.
func (s *Service) CreateWithdraw(ctx context.Context, accountID, units string) (domain.SettlementRequest, error) {
	l := zerolog.Ctx(ctx)

	var sr domain.SettlementRequest

	unitsDecimal, err := decimal.NewFromString(units)
	if err != nil {
		l.Info().Err(err).Send()
		return sr, domain.ErrInvalidAmount
	}

	if unitsDecimal.LessThanOrEqual(decimal.Zero) {
		return sr, domain.ErrInvalidAmount
	}

	complete, err := s.identity.PayoutFieldsComplete(ctx, accountID)
	if err != nil {
		return sr, err
	}

	if !complete {
		return sr, domain.ErrIdentityIncomplete
	}

	holding, err := s.holdings.Get(ctx, accountID)
	if err != nil {
		if err == domain.ErrHoldingNotFound {
			return sr, domain.ErrInsufficientBalance
		}

		return sr, err
	}

	held, err := decimal.NewFromString(holding.TotalUnits)
	if err != nil {
		l.Error().Err(err).Send()
		return sr, err
	}

	if held.LessThan(unitsDecimal) {
		return sr, domain.ErrInsufficientBalance
	}

	price, err := s.oracle.CurrentUnitPrice(ctx)
	if err != nil {
		l.Error().Err(err).Send()
		return sr, err
	}

	return s.repo.Create(ctx, domain.CreateSettlementRequestParams{
		AccountID:      accountID,
		Kind:           domain.KindWithdraw,
		AmountCurrency: unitsDecimal.Mul(price).Round(2).String(),
		Units:          unitsDecimal.String(),
		UnitPrice:      price.String(),
	})
}

// SettleFromExternalStatus applies a gateway-reported status to the request
// with the given order id. It is the single settlement code path shared by
// the callback handler and the client poll, and is safe to invoke any
// number of times: the winner of the row lock applies the terminal
// transition, every later caller gets the recorded outcome back.
func (s *Service) SettleFromExternalStatus(ctx context.Context, externalOrderID, reportedStatus, paymentRef string) (domain.SettlementOutcome, error) {
	l := zerolog.Ctx(ctx)

	var resolution string

	switch reportedStatus {
	case statusPaid:
		resolution = domain.ResolveComplete
	case statusFailed, statusExpired, statusCancelled:
		resolution = domain.ResolveFail
	default:
		sr, err := s.repo.GetByExternalOrderID(ctx, externalOrderID)
		if err != nil {
			return domain.SettlementOutcome{}, err
		}

		out := domain.SettlementOutcome{Request: sr}
		if sr.State == domain.StatePending {
			out.StillPending = true
		} else {
			out.Replayed = true
		}

		return out, nil
	}

	out, err := s.repo.Settle(ctx, domain.SettleParams{
		ExternalOrderID:    externalOrderID,
		Resolution:         resolution,
		ExternalPaymentRef: paymentRef,
	})
	if err != nil {
		return out, err
	}

	if out.Replayed {
		metrics.ReplaysTotal.Inc()
		return out, nil
	}

	metrics.SettlementsTotal.WithLabelValues(out.Request.Kind, out.Request.State).Inc()

	if out.Request.State == domain.StateCompleted {
		s.publish(ctx, out.Request)
	}

	l.Info().
		Int64("request_id", out.Request.ID).
		Str("state", out.Request.State).
		Msg("settlement applied")

	return out, nil
}

// VerifyOrder is the client poll path: it fetches the order status from the
// gateway and funnels it through SettleFromExternalStatus.
func (s *Service) VerifyOrder(ctx context.Context, externalOrderID string) (domain.SettlementOutcome, error) {
	l := zerolog.Ctx(ctx)

	status, err := s.gateway.FetchOrderStatus(ctx, externalOrderID)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.SettlementOutcome{}, domain.ErrGatewayUnavailable
	}

	return s.SettleFromExternalStatus(ctx, externalOrderID, status.Status, status.PaymentRef)
}

// DecideWithdrawal resolves a pending withdrawal by administrator decision.
//
// An approval acting on a stale balance snapshot does not error: the engine
// auto-rejects the withdrawal with a system reason and reports it as an
// AutoRejected outcome.
func (s *Service) DecideWithdrawal(ctx context.Context, arg domain.DecideWithdrawalParams) (domain.SettlementOutcome, error) {
	out, err := s.repo.Decide(ctx, arg)
	if err != nil {
		return out, err
	}

	if out.AutoRejected {
		metrics.AutoRejectsTotal.Inc()
		return out, nil
	}

	metrics.SettlementsTotal.WithLabelValues(out.Request.Kind, out.Request.State).Inc()

	if out.Request.State == domain.StateCompleted {
		s.publish(ctx, out.Request)
	}

	return out, nil
}

// Get returns the settlement request with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.SettlementRequest, error) {
	return s.repo.Get(ctx, id)
}

// List returns the account's settlement history page.
func (s *Service) List(ctx context.Context, arg domain.ListSettlementRequestsParams) ([]domain.SettlementRequest, error) {
	return s.repo.List(ctx, arg)
}

func (s *Service) publish(ctx context.Context, sr domain.SettlementRequest) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.SettlementCompleted(ctx, sr); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("request_id", sr.ID).Msg("settlement event publish failed")
	}
}
