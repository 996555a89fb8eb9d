package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/gold-vault/internal/domain"
)

const httpTimeout = 10 * time.Second

// HTTPClient is the payment gateway Adapter backed by its REST API.
// Callback signatures are verified locally with the shared webhook secret,
// without a round trip to the gateway.
type HTTPClient struct {
	baseURL       string
	keyID         string
	keySecret     string
	webhookSecret string
	client        *http.Client
}

// NewHTTPClient returns an Adapter talking to the gateway at baseURL.
func NewHTTPClient(baseURL, keyID, keySecret, webhookSecret string) *HTTPClient {
	return &HTTPClient{
		baseURL:       baseURL,
		keyID:         keyID,
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
		client:        &http.Client{Timeout: httpTimeout},
	}
}

// CreateOrder mints a remote order for a purchase and returns the checkout
// session token.
func (c *HTTPClient) CreateOrder(ctx context.Context, arg domain.CreateOrderParams) (domain.RemoteOrder, error) {
	l := zerolog.Ctx(ctx)

	var order domain.RemoteOrder

	body, err := json.Marshal(arg)
	if err != nil {
		l.Error().Err(err).Send()
		return order, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		l.Error().Err(err).Send()
		return order, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.client.Do(req)
	if err != nil {
		l.Error().Err(err).Send()
		return order, domain.ErrGatewayUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		l.Error().Int("status_code", resp.StatusCode).Msg("gateway order creation failed")
		return order, domain.ErrGatewayUnavailable
	}

	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		l.Error().Err(err).Send()
		return order, domain.ErrGatewayUnavailable
	}

	return order, nil
}

// FetchOrderStatus returns the gateway's view of the given order.
func (c *HTTPClient) FetchOrderStatus(ctx context.Context, externalOrderID string) (domain.RemoteOrderStatus, error) {
	l := zerolog.Ctx(ctx)

	var status domain.RemoteOrderStatus

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/orders/"+externalOrderID, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return status, err
	}

	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.client.Do(req)
	if err != nil {
		l.Error().Err(err).Send()
		return status, domain.ErrGatewayUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		l.Error().Int("status_code", resp.StatusCode).Msg("gateway order fetch failed")
		return status, domain.ErrGatewayUnavailable
	}

	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		l.Error().Err(err).Send()
		return status, domain.ErrGatewayUnavailable
	}

	return status, nil
}

// VerifySignature checks that the callback payload was signed with the
// shared webhook secret over timestamp and body.
func (c *HTTPClient) VerifySignature(ctx context.Context, signature string, payload []byte, timestamp string) error {
	mac := hmac.New(sha256.New, []byte(c.webhookSecret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)

	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return domain.ErrSignatureInvalid
	}

	return nil
}
