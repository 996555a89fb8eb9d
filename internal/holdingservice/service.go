// Package holdingservice manages business logic layer of holdings.
package holdingservice

import (
	"context"

	"github.com/go-petr/gold-vault/internal/domain"
	"github.com/go-petr/gold-vault/internal/priceoracle"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by holding service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package holdingservice
type Repo interface {
	Get(ctx context.Context, accountID string) (domain.Holding, error)
}

// Service facilitates holding service layer logic.
type Service struct {
	repo   Repo
	oracle priceoracle.Oracle
}

// New returns holding service struct to manage holding business logic.
func New(hr Repo, po priceoracle.Oracle) *Service {
	return &Service{
		repo:   hr,
		oracle: po,
	}
}

// Get returns the holding of the given account. An account that never
// completed a buy has no holding row and reads as a zero balance.
func (s *Service) Get(ctx context.Context, accountID string) (domain.Holding, error) {
	holding, err := s.repo.Get(ctx, accountID)
	if err != nil {
		if err == domain.ErrHoldingNotFound {
			return domain.Holding{AccountID: accountID, TotalUnits: "0"}, nil
		}

		return holding, err
	}

	return holding, nil
}

// Value prices the account's holding at the current unit price. The read
// takes no lock and may observe a slightly stale balance.
func (s *Service) Value(ctx context.Context, accountID string) (domain.Valuation, error) {
	l := zerolog.Ctx(ctx)

	var v domain.Valuation

	holding, err := s.Get(ctx, accountID)
	if err != nil {
		return v, err
	}

	price, err := s.oracle.CurrentUnitPrice(ctx)
	if err != nil {
		l.Error().Err(err).Send()
		return v, err
	}

	units, err := decimal.NewFromString(holding.TotalUnits)
	if err != nil {
		l.Error().Err(err).Send()
		return v, err
	}

	v.Holding = holding
	v.UnitPrice = price.String()
	v.CurrencyValue = units.Mul(price).Round(2).String()

	return v, nil
}
