// Package priceoracle supplies the current currency-per-unit exchange rate.
package priceoracle

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-petr/gold-vault/internal/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Oracle provides the current unit price used to value settlement requests.
//
//go:generate mockgen -source oracle.go -destination oracle_mock.go -package priceoracle
type Oracle interface {
	CurrentUnitPrice(ctx context.Context) (decimal.Decimal, error)
}

// HTTPClient reads the current price from an external feed endpoint.
type HTTPClient struct {
	feedURL string
	client  *http.Client
}

// NewHTTPClient returns a price feed HTTPClient.
func NewHTTPClient(feedURL string) *HTTPClient {
	return &HTTPClient{
		feedURL: feedURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type feedResponse struct {
	Price string `json:"price"`
}

// CurrentUnitPrice fetches the latest price from the feed. Any transport,
// decode, or non-positive price condition maps to ErrPriceUnavailable.
func (c *HTTPClient) CurrentUnitPrice(ctx context.Context) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return decimal.Zero, domain.ErrPriceUnavailable
	}

	resp, err := c.client.Do(req)
	if err != nil {
		l.Error().Err(err).Send()
		return decimal.Zero, domain.ErrPriceUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		l.Error().Int("status_code", resp.StatusCode).Msg("price feed bad status")
		return decimal.Zero, domain.ErrPriceUnavailable
	}

	var fr feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		l.Error().Err(err).Send()
		return decimal.Zero, domain.ErrPriceUnavailable
	}

	price, err := decimal.NewFromString(fr.Price)
	if err != nil {
		l.Error().Err(err).Send()
		return decimal.Zero, domain.ErrPriceUnavailable
	}

	if price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrPriceUnavailable
	}

	return price, nil
}
