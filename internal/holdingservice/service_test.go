package holdingservice

import (
	"context"
	"testing"
	"time"

	"github.com/go-petr/gold-vault/internal/domain"
	"github.com/go-petr/gold-vault/internal/priceoracle"
	"github.com/go-petr/gold-vault/pkg/errorspkg"
	"github.com/go-petr/gold-vault/pkg/randompkg"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	testAccountID := randompkg.AccountID()

	testHolding := domain.Holding{
		AccountID:  testAccountID,
		TotalUnits: "2.5",
		CreatedAt:  time.Now().Truncate(time.Second).UTC(),
	}

	testCases := []struct {
		name          string
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.Holding, err error)
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(testAccountID)).
					Times(1).
					Return(testHolding, nil)
			},
			checkResponse: func(res domain.Holding, err error) {
				require.NoError(t, err)
				require.Equal(t, testHolding, res)
			},
		},
		{
			name: "NoHoldingReadsAsZero",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(testAccountID)).
					Times(1).
					Return(domain.Holding{}, domain.ErrHoldingNotFound)
			},
			checkResponse: func(res domain.Holding, err error) {
				require.NoError(t, err)
				require.Equal(t, "0", res.TotalUnits)
				require.Equal(t, testAccountID, res.AccountID)
			},
		},
		{
			name: "InternalError",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Holding{}, errorspkg.ErrInternal)
			},
			checkResponse: func(res domain.Holding, err error) {
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			oracle := priceoracle.NewMockOracle(ctrl)
			service := New(repo, oracle)

			tc.buildStubs(repo)

			tc.checkResponse(service.Get(context.Background(), testAccountID))
		})
	}
}

func TestValue(t *testing.T) {
	testAccountID := randompkg.AccountID()

	testHolding := domain.Holding{
		AccountID:  testAccountID,
		TotalUnits: "2",
		CreatedAt:  time.Now().Truncate(time.Second).UTC(),
	}

	testCases := []struct {
		name          string
		buildStubs    func(repo *MockRepo, oracle *priceoracle.MockOracle)
		checkResponse func(res domain.Valuation, err error)
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo, oracle *priceoracle.MockOracle) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(testAccountID)).
					Times(1).
					Return(testHolding, nil)
				oracle.EXPECT().CurrentUnitPrice(gomock.Any()).
					Times(1).
					Return(decimal.NewFromInt(7000), nil)
			},
			checkResponse: func(res domain.Valuation, err error) {
				require.NoError(t, err)
				require.Equal(t, "14000", res.CurrencyValue)
				require.Equal(t, "7000", res.UnitPrice)
				require.Equal(t, testHolding, res.Holding)
			},
		},
		{
			name: "PriceUnavailable",
			buildStubs: func(repo *MockRepo, oracle *priceoracle.MockOracle) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Times(1).
					Return(testHolding, nil)
				oracle.EXPECT().CurrentUnitPrice(gomock.Any()).
					Times(1).
					Return(decimal.Zero, domain.ErrPriceUnavailable)
			},
			checkResponse: func(res domain.Valuation, err error) {
				require.EqualError(t, err, domain.ErrPriceUnavailable.Error())
			},
		},
		{
			name: "ZeroHoldingValuesToZero",
			buildStubs: func(repo *MockRepo, oracle *priceoracle.MockOracle) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Holding{}, domain.ErrHoldingNotFound)
				oracle.EXPECT().CurrentUnitPrice(gomock.Any()).
					Times(1).
					Return(decimal.NewFromInt(7000), nil)
			},
			checkResponse: func(res domain.Valuation, err error) {
				require.NoError(t, err)
				require.Equal(t, "0", res.CurrencyValue)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			oracle := priceoracle.NewMockOracle(ctrl)
			service := New(repo, oracle)

			tc.buildStubs(repo, oracle)

			tc.checkResponse(service.Value(context.Background(), testAccountID))
		})
	}
}
