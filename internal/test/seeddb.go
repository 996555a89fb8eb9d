// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"

	"github.com/go-petr/gold-vault/internal/domain"
	"github.com/go-petr/gold-vault/internal/holdingrepo"
	"github.com/go-petr/gold-vault/internal/identityrepo"
	"github.com/go-petr/gold-vault/internal/settlementrepo"
	"github.com/go-petr/gold-vault/pkg/dbpkg"
	"github.com/go-petr/gold-vault/pkg/randompkg"
)

// SeedHolding credits the account's holding with the given units.
func SeedHolding(t *testing.T, db dbpkg.SQLInterface, units, accountID string) domain.Holding {
	t.Helper()

	holdingRepo := holdingrepo.NewRepoPGS(db)

	holding, err := holdingRepo.AddUnits(context.Background(), units, accountID)
	if err != nil {
		t.Fatalf("holdingRepo.AddUnits(context.Background(), %v, %v) returned error: %v",
			units, accountID, err)
	}

	return holding
}

// SeedPayoutProfile creates a complete payout profile for the account.
func SeedPayoutProfile(t *testing.T, db dbpkg.SQLInterface, accountID string) domain.PayoutProfile {
	t.Helper()

	identityRepo := identityrepo.NewRepoPGS(db)

	arg := domain.PayoutProfile{
		AccountID:     accountID,
		FullName:      randompkg.String(12),
		BankAccountNo: randompkg.BankAccountNo(),
		BankIFSC:      randompkg.String(11),
	}

	profile, err := identityRepo.Upsert(context.Background(), arg)
	if err != nil {
		t.Fatalf("identityRepo.Upsert(context.Background(), %+v) returned error: %v", arg, err)
	}

	return profile
}

// SeedPendingBuy creates a pending buy request stamped with a gateway order id.
func SeedPendingBuy(t *testing.T, db dbpkg.SQLInterface, accountID string) domain.SettlementRequest {
	t.Helper()

	repo := settlementrepo.NewTxRepoPGS(db)

	units := randompkg.UnitsBetween(0.1, 5)
	price := randompkg.MoneyAmountBetween(5_000, 8_000)

	arg := domain.CreateSettlementRequestParams{
		AccountID:      accountID,
		Kind:           domain.KindBuy,
		AmountCurrency: randompkg.MoneyAmountBetween(1_000, 10_000),
		Units:          units,
		UnitPrice:      price,
	}

	sr, err := repo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("repo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	sr, err = repo.SetExternalOrderID(context.Background(), sr.ID, randompkg.ExternalOrderID())
	if err != nil {
		t.Fatalf("repo.SetExternalOrderID(context.Background(), %v) returned error: %v", sr.ID, err)
	}

	return sr
}

// SeedPendingWithdrawal creates a pending withdrawal request for the given units.
func SeedPendingWithdrawal(t *testing.T, db dbpkg.SQLInterface, accountID, units string) domain.SettlementRequest {
	t.Helper()

	repo := settlementrepo.NewTxRepoPGS(db)

	arg := domain.CreateSettlementRequestParams{
		AccountID:      accountID,
		Kind:           domain.KindWithdraw,
		AmountCurrency: randompkg.MoneyAmountBetween(1_000, 10_000),
		Units:          units,
		UnitPrice:      randompkg.MoneyAmountBetween(5_000, 8_000),
	}

	sr, err := repo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("repo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return sr
}
