package settlementrepo

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/go-petr/gold-vault/internal/domain"
	"github.com/go-petr/gold-vault/internal/holdingrepo"
	"github.com/go-petr/gold-vault/pkg/configpkg"
	"github.com/go-petr/gold-vault/pkg/randompkg"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	testRepo        *RepoPGS
	testHoldingRepo *holdingrepo.RepoPGS
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	testDB, err := sql.Open(config.DBDriver, config.DBSource)
	if err != nil {
		log.Fatal("cannot connect to db:", err)
	}

	testRepo = NewRepoPGS(testDB)
	testHoldingRepo = holdingrepo.NewRepoPGS(testDB)

	os.Exit(m.Run())
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	require.NoError(t, err)

	return d
}

func createRandomRequest(t *testing.T, accountID, kind string) domain.SettlementRequest {
	t.Helper()

	price := randompkg.MoneyAmountBetween(5_000, 8_000)
	units := randompkg.UnitsBetween(0.1, 5)
	amount := mustDecimal(t, units).Mul(mustDecimal(t, price)).Round(2).String()

	arg := domain.CreateSettlementRequestParams{
		AccountID:      accountID,
		Kind:           kind,
		AmountCurrency: amount,
		Units:          units,
		UnitPrice:      price,
	}

	sr, err := testRepo.Create(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, sr)

	require.Equal(t, arg.AccountID, sr.AccountID)
	require.Equal(t, arg.Kind, sr.Kind)
	require.Equal(t, domain.StatePending, sr.State)
	require.True(t, mustDecimal(t, sr.Units).Equal(mustDecimal(t, units)))
	require.Empty(t, sr.ExternalOrderID)
	require.Empty(t, sr.RejectionReason)

	require.NotZero(t, sr.ID)
	require.NotZero(t, sr.CreatedAt)

	return sr
}

func createRandomBuy(t *testing.T, accountID string) domain.SettlementRequest {
	t.Helper()

	sr := createRandomRequest(t, accountID, domain.KindBuy)

	sr, err := testRepo.SetExternalOrderID(context.Background(), sr.ID, randompkg.ExternalOrderID())
	require.NoError(t, err)
	require.NotEmpty(t, sr.ExternalOrderID)

	return sr
}

func TestCreate(t *testing.T) {
	createRandomRequest(t, randompkg.AccountID(), domain.KindBuy)
	createRandomRequest(t, randompkg.AccountID(), domain.KindWithdraw)
}

func TestCreateConstraintViolations(t *testing.T) {
	testCases := []struct {
		name string
		arg  domain.CreateSettlementRequestParams
	}{
		{
			name: "NegativeAmount",
			arg: domain.CreateSettlementRequestParams{
				AccountID:      randompkg.AccountID(),
				Kind:           domain.KindBuy,
				AmountCurrency: "-100",
				Units:          "1",
				UnitPrice:      "7000",
			},
		},
		{
			name: "ZeroUnits",
			arg: domain.CreateSettlementRequestParams{
				AccountID:      randompkg.AccountID(),
				Kind:           domain.KindWithdraw,
				AmountCurrency: "7000",
				Units:          "0",
				UnitPrice:      "7000",
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			sr, err := testRepo.Create(context.Background(), tc.arg)
			require.EqualError(t, err, domain.ErrInvalidAmount.Error())
			require.Empty(t, sr)
		})
	}
}

func TestSetExternalOrderID(t *testing.T) {
	sr := createRandomRequest(t, randompkg.AccountID(), domain.KindBuy)
	orderID := randompkg.ExternalOrderID()

	stamped, err := testRepo.SetExternalOrderID(context.Background(), sr.ID, orderID)
	require.NoError(t, err)
	require.Equal(t, orderID, stamped.ExternalOrderID)

	// The order id is assigned exactly once.
	again, err := testRepo.SetExternalOrderID(context.Background(), sr.ID, randompkg.ExternalOrderID())
	require.EqualError(t, err, domain.ErrRequestNotFound.Error())
	require.Empty(t, again)

	got, err := testRepo.Get(context.Background(), sr.ID)
	require.NoError(t, err)
	require.Equal(t, orderID, got.ExternalOrderID)
}

func TestSetExternalOrderIDNotFound(t *testing.T) {
	sr, err := testRepo.SetExternalOrderID(context.Background(), -1, randompkg.ExternalOrderID())
	require.EqualError(t, err, domain.ErrRequestNotFound.Error())
	require.Empty(t, sr)
}

func TestGet(t *testing.T) {
	created := createRandomBuy(t, randompkg.AccountID())

	sr, err := testRepo.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created, sr)
}

func TestGetNotFound(t *testing.T) {
	sr, err := testRepo.Get(context.Background(), -1)
	require.EqualError(t, err, domain.ErrRequestNotFound.Error())
	require.Empty(t, sr)
}

func TestGetByExternalOrderID(t *testing.T) {
	created := createRandomBuy(t, randompkg.AccountID())

	sr, err := testRepo.GetByExternalOrderID(context.Background(), created.ExternalOrderID)
	require.NoError(t, err)
	require.Equal(t, created, sr)
}

func TestGetByExternalOrderIDNotFound(t *testing.T) {
	sr, err := testRepo.GetByExternalOrderID(context.Background(), randompkg.ExternalOrderID())
	require.EqualError(t, err, domain.ErrRequestNotFound.Error())
	require.Empty(t, sr)
}

func TestList(t *testing.T) {
	testAccountID := randompkg.AccountID()

	for i := 0; i < 5; i++ {
		createRandomBuy(t, testAccountID)
	}

	requests, err := testRepo.List(context.Background(), domain.ListSettlementRequestsParams{
		AccountID: testAccountID,
		Limit:     3,
		Offset:    2,
	})
	require.NoError(t, err)
	require.Len(t, requests, 3)

	for _, sr := range requests {
		require.Equal(t, testAccountID, sr.AccountID)
	}

	// Newest first.
	require.Greater(t, requests[0].ID, requests[1].ID)
	require.Greater(t, requests[1].ID, requests[2].ID)
}

func TestSettleCompletesBuy(t *testing.T) {
	testAccountID := randompkg.AccountID()
	sr := createRandomBuy(t, testAccountID)
	paymentRef := randompkg.PaymentRef()

	out, err := testRepo.Settle(context.Background(), domain.SettleParams{
		ExternalOrderID:    sr.ExternalOrderID,
		Resolution:         domain.ResolveComplete,
		ExternalPaymentRef: paymentRef,
	})
	require.NoError(t, err)

	require.False(t, out.Replayed)
	require.Equal(t, domain.StateCompleted, out.Request.State)
	require.Equal(t, paymentRef, out.Request.ExternalPaymentRef)

	require.True(t, mustDecimal(t, out.Holding.TotalUnits).Equal(mustDecimal(t, sr.Units)))

	holding, err := testHoldingRepo.Get(context.Background(), testAccountID)
	require.NoError(t, err)
	require.True(t, mustDecimal(t, holding.TotalUnits).Equal(mustDecimal(t, sr.Units)))
}

func TestSettleFailsBuy(t *testing.T) {
	testAccountID := randompkg.AccountID()
	sr := createRandomBuy(t, testAccountID)

	out, err := testRepo.Settle(context.Background(), domain.SettleParams{
		ExternalOrderID: sr.ExternalOrderID,
		Resolution:      domain.ResolveFail,
	})
	require.NoError(t, err)

	require.False(t, out.Replayed)
	require.Equal(t, domain.StateFailed, out.Request.State)
	require.Empty(t, out.Request.ExternalPaymentRef)

	// A failed buy never credits the ledger.
	holding, err := testHoldingRepo.Get(context.Background(), testAccountID)
	require.EqualError(t, err, domain.ErrHoldingNotFound.Error())
	require.Empty(t, holding)
}

func TestSettleReplayReturnsRecordedOutcome(t *testing.T) {
	testAccountID := randompkg.AccountID()
	sr := createRandomBuy(t, testAccountID)
	paymentRef := randompkg.PaymentRef()

	arg := domain.SettleParams{
		ExternalOrderID:    sr.ExternalOrderID,
		Resolution:         domain.ResolveComplete,
		ExternalPaymentRef: paymentRef,
	}

	first, err := testRepo.Settle(context.Background(), arg)
	require.NoError(t, err)
	require.False(t, first.Replayed)

	second, err := testRepo.Settle(context.Background(), arg)
	require.NoError(t, err)
	require.True(t, second.Replayed)
	require.Equal(t, first.Request, second.Request)

	// The ledger was credited exactly once.
	holding, err := testHoldingRepo.Get(context.Background(), testAccountID)
	require.NoError(t, err)
	require.True(t, mustDecimal(t, holding.TotalUnits).Equal(mustDecimal(t, sr.Units)))
}

func TestSettleTerminalStateAbsorbs(t *testing.T) {
	testAccountID := randompkg.AccountID()
	sr := createRandomBuy(t, testAccountID)

	failed, err := testRepo.Settle(context.Background(), domain.SettleParams{
		ExternalOrderID: sr.ExternalOrderID,
		Resolution:      domain.ResolveFail,
	})
	require.NoError(t, err)
	require.Equal(t, domain.StateFailed, failed.Request.State)

	// A late success report cannot reopen a settled request.
	late, err := testRepo.Settle(context.Background(), domain.SettleParams{
		ExternalOrderID:    sr.ExternalOrderID,
		Resolution:         domain.ResolveComplete,
		ExternalPaymentRef: randompkg.PaymentRef(),
	})
	require.NoError(t, err)
	require.True(t, late.Replayed)
	require.Equal(t, domain.StateFailed, late.Request.State)

	holding, err := testHoldingRepo.Get(context.Background(), testAccountID)
	require.EqualError(t, err, domain.ErrHoldingNotFound.Error())
	require.Empty(t, holding)
}

func TestSettleConcurrent(t *testing.T) {
	testAccountID := randompkg.AccountID()
	sr := createRandomBuy(t, testAccountID)

	arg := domain.SettleParams{
		ExternalOrderID:    sr.ExternalOrderID,
		Resolution:         domain.ResolveComplete,
		ExternalPaymentRef: randompkg.PaymentRef(),
	}

	n := 5
	errs := make(chan error)
	results := make(chan domain.SettlementOutcome)

	for i := 0; i < n; i++ {
		go func() {
			out, err := testRepo.Settle(context.Background(), arg)
			errs <- err
			results <- out
		}()
	}

	settled := 0

	for i := 0; i < n; i++ {
		err := <-errs
		require.NoError(t, err)

		out := <-results
		require.Equal(t, domain.StateCompleted, out.Request.State)

		if !out.Replayed {
			settled++
		}
	}

	// Whichever caller takes the row lock first wins.
	require.Equal(t, 1, settled)

	holding, err := testHoldingRepo.Get(context.Background(), testAccountID)
	require.NoError(t, err)
	require.True(t, mustDecimal(t, holding.TotalUnits).Equal(mustDecimal(t, sr.Units)))
}

func TestSettleNotFound(t *testing.T) {
	out, err := testRepo.Settle(context.Background(), domain.SettleParams{
		ExternalOrderID: randompkg.ExternalOrderID(),
		Resolution:      domain.ResolveComplete,
	})
	require.EqualError(t, err, domain.ErrRequestNotFound.Error())
	require.Empty(t, out)
}

func TestDecideApprove(t *testing.T) {
	testAccountID := randompkg.AccountID()

	_, err := testHoldingRepo.AddUnits(context.Background(), "10", testAccountID)
	require.NoError(t, err)

	sr := createRandomRequest(t, testAccountID, domain.KindWithdraw)
	payoutRef := randompkg.PaymentRef()

	out, err := testRepo.Decide(context.Background(), domain.DecideWithdrawalParams{
		RequestID: sr.ID,
		Decision:  domain.DecisionApprove,
		PayoutRef: payoutRef,
	})
	require.NoError(t, err)

	require.False(t, out.AutoRejected)
	require.Equal(t, domain.StateCompleted, out.Request.State)
	require.Equal(t, payoutRef, out.Request.ExternalPaymentRef)

	want := decimal.NewFromInt(10).Sub(mustDecimal(t, sr.Units))
	require.True(t, mustDecimal(t, out.Holding.TotalUnits).Equal(want))
}

func TestDecideApproveStaleBalance(t *testing.T) {
	testAccountID := randompkg.AccountID()

	// The balance covered the withdrawal when it was requested but has
	// drifted below it by approval time.
	_, err := testHoldingRepo.AddUnits(context.Background(), "0.05", testAccountID)
	require.NoError(t, err)

	sr := createRandomRequest(t, testAccountID, domain.KindWithdraw)

	out, err := testRepo.Decide(context.Background(), domain.DecideWithdrawalParams{
		RequestID: sr.ID,
		Decision:  domain.DecisionApprove,
		PayoutRef: randompkg.PaymentRef(),
	})
	require.NoError(t, err)

	require.True(t, out.AutoRejected)
	require.Equal(t, domain.StateRejected, out.Request.State)
	require.Equal(t, domain.StaleBalanceReason, out.Request.RejectionReason)

	// The holding was not touched.
	holding, err := testHoldingRepo.Get(context.Background(), testAccountID)
	require.NoError(t, err)
	require.True(t, mustDecimal(t, holding.TotalUnits).Equal(mustDecimal(t, "0.05")))
}

func TestDecideApproveNoHolding(t *testing.T) {
	sr := createRandomRequest(t, randompkg.AccountID(), domain.KindWithdraw)

	out, err := testRepo.Decide(context.Background(), domain.DecideWithdrawalParams{
		RequestID: sr.ID,
		Decision:  domain.DecisionApprove,
		PayoutRef: randompkg.PaymentRef(),
	})
	require.NoError(t, err)

	require.True(t, out.AutoRejected)
	require.Equal(t, domain.StateRejected, out.Request.State)
	require.Equal(t, domain.StaleBalanceReason, out.Request.RejectionReason)
}

func TestDecideReject(t *testing.T) {
	sr := createRandomRequest(t, randompkg.AccountID(), domain.KindWithdraw)

	out, err := testRepo.Decide(context.Background(), domain.DecideWithdrawalParams{
		RequestID: sr.ID,
		Decision:  domain.DecisionReject,
		Reason:    "kyc mismatch",
	})
	require.NoError(t, err)

	require.False(t, out.AutoRejected)
	require.Equal(t, domain.StateRejected, out.Request.State)
	require.Equal(t, "kyc mismatch", out.Request.RejectionReason)
}

func TestDecideAlreadyDecided(t *testing.T) {
	sr := createRandomRequest(t, randompkg.AccountID(), domain.KindWithdraw)

	_, err := testRepo.Decide(context.Background(), domain.DecideWithdrawalParams{
		RequestID: sr.ID,
		Decision:  domain.DecisionReject,
		Reason:    "kyc mismatch",
	})
	require.NoError(t, err)

	out, err := testRepo.Decide(context.Background(), domain.DecideWithdrawalParams{
		RequestID: sr.ID,
		Decision:  domain.DecisionApprove,
		PayoutRef: randompkg.PaymentRef(),
	})
	require.EqualError(t, err, domain.ErrAlreadyDecided.Error())
	require.Empty(t, out)
}

func TestDecideNotWithdrawal(t *testing.T) {
	sr := createRandomBuy(t, randompkg.AccountID())

	out, err := testRepo.Decide(context.Background(), domain.DecideWithdrawalParams{
		RequestID: sr.ID,
		Decision:  domain.DecisionApprove,
		PayoutRef: randompkg.PaymentRef(),
	})
	require.EqualError(t, err, domain.ErrNotWithdrawal.Error())
	require.Empty(t, out)
}

func TestDecideNotFound(t *testing.T) {
	out, err := testRepo.Decide(context.Background(), domain.DecideWithdrawalParams{
		RequestID: -1,
		Decision:  domain.DecisionApprove,
	})
	require.EqualError(t, err, domain.ErrRequestNotFound.Error())
	require.Empty(t, out)
}

func TestHoldingMatchesCompletedSettlements(t *testing.T) {
	testAccountID := randompkg.AccountID()

	credited := decimal.Zero

	for i := 0; i < 3; i++ {
		sr := createRandomBuy(t, testAccountID)

		out, err := testRepo.Settle(context.Background(), domain.SettleParams{
			ExternalOrderID:    sr.ExternalOrderID,
			Resolution:         domain.ResolveComplete,
			ExternalPaymentRef: randompkg.PaymentRef(),
		})
		require.NoError(t, err)
		require.False(t, out.Replayed)

		credited = credited.Add(mustDecimal(t, sr.Units))
	}

	// A failed buy contributes nothing.
	failedBuy := createRandomBuy(t, testAccountID)
	_, err := testRepo.Settle(context.Background(), domain.SettleParams{
		ExternalOrderID: failedBuy.ExternalOrderID,
		Resolution:      domain.ResolveFail,
	})
	require.NoError(t, err)

	withdrawal, err := testRepo.Create(context.Background(), domain.CreateSettlementRequestParams{
		AccountID:      testAccountID,
		Kind:           domain.KindWithdraw,
		AmountCurrency: "700",
		Units:          "0.1",
		UnitPrice:      "7000",
	})
	require.NoError(t, err)

	out, err := testRepo.Decide(context.Background(), domain.DecideWithdrawalParams{
		RequestID: withdrawal.ID,
		Decision:  domain.DecisionApprove,
		PayoutRef: randompkg.PaymentRef(),
	})
	require.NoError(t, err)
	require.False(t, out.AutoRejected)

	// The running balance equals completed buys minus completed withdrawals.
	want := credited.Sub(mustDecimal(t, withdrawal.Units))

	holding, err := testHoldingRepo.Get(context.Background(), testAccountID)
	require.NoError(t, err)
	require.True(t, mustDecimal(t, holding.TotalUnits).Equal(want))
}
