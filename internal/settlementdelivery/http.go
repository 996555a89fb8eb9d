// Package settlementdelivery manages delivery layer of settlements.
package settlementdelivery

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/gold-vault/internal/domain"
	"github.com/go-petr/gold-vault/internal/gateway"
	"github.com/go-petr/gold-vault/pkg/errorspkg"
	"github.com/go-petr/gold-vault/pkg/jsonresponse"
)

// Service provides service layer interface needed by settlement delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package settlementdelivery
type Service interface {
	CreateBuy(ctx context.Context, accountID, amount string) (domain.PurchaseResult, error)
	CreateWithdraw(ctx context.Context, accountID, units string) (domain.SettlementRequest, error)
	SettleFromExternalStatus(ctx context.Context, externalOrderID, reportedStatus, paymentRef string) (domain.SettlementOutcome, error)
	VerifyOrder(ctx context.Context, externalOrderID string) (domain.SettlementOutcome, error)
	DecideWithdrawal(ctx context.Context, arg domain.DecideWithdrawalParams) (domain.SettlementOutcome, error)
	Get(ctx context.Context, id int64) (domain.SettlementRequest, error)
	List(ctx context.Context, arg domain.ListSettlementRequestsParams) ([]domain.SettlementRequest, error)
}

// Handler facilitates settlement delivery layer logic.
type Handler struct {
	service Service
	gateway gateway.Adapter
}

// NewHandler returns settlement handler.
func NewHandler(ss Service, ga gateway.Adapter) *Handler {
	return &Handler{
		service: ss,
		gateway: ga,
	}
}

type requestData struct {
	Request domain.SettlementRequest `json:"request"`
}

type outcomeData struct {
	Outcome domain.SettlementOutcome `json:"outcome"`
}

type createBuyRequest struct {
	AccountID string `json:"account_id" binding:"required"`
	Amount    string `json:"amount" binding:"required,amount"`
}

// CreateBuy handles http request to create a purchase settlement request.
func (h *Handler) CreateBuy(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createBuyRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	result, err := h.service.CreateBuy(ctx, req.AccountID, req.Amount)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrInvalidAmount:
			gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))
			return
		case domain.ErrPriceUnavailable:
			gctx.JSON(http.StatusServiceUnavailable, jsonresponse.Error(err))
			return
		case domain.ErrGatewayUnavailable:
			gctx.JSON(http.StatusBadGateway, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	res := struct {
		Data domain.PurchaseResult `json:"data"`
	}{result}

	gctx.JSON(http.StatusOK, res)
}

type createWithdrawRequest struct {
	AccountID string `json:"account_id" binding:"required"`
	Units     string `json:"units" binding:"required,amount"`
}

// CreateWithdraw handles http request to create a withdrawal settlement request.
func (h *Handler) CreateWithdraw(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createWithdrawRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	created, err := h.service.CreateWithdraw(ctx, req.AccountID, req.Units)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrInvalidAmount, domain.ErrInsufficientBalance:
			gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))
			return
		case domain.ErrIdentityIncomplete:
			gctx.JSON(http.StatusUnprocessableEntity, jsonresponse.Error(err))
			return
		case domain.ErrPriceUnavailable:
			gctx.JSON(http.StatusServiceUnavailable, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	res := struct {
		Data requestData `json:"data"`
	}{requestData{created}}

	gctx.JSON(http.StatusOK, res)
}

type callbackPayload struct {
	ExternalOrderID string `json:"external_order_id"`
	Status          string `json:"status"`
	PaymentRef      string `json:"payment_ref"`
}

// Callback handles the payment gateway webhook. The signature is verified
// against the raw payload before any settlement row is touched. An unknown
// order id from a verified sender is acknowledged so the gateway stops
// retrying; it is logged as a data-loss signal, not treated as an attack.
func (h *Handler) Callback(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	body, err := io.ReadAll(gctx.Request.Body)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	signature := gctx.GetHeader("X-Gateway-Signature")
	timestamp := gctx.GetHeader("X-Gateway-Timestamp")

	if err := h.gateway.VerifySignature(ctx, signature, body, timestamp); err != nil {
		l.Warn().Err(err).Msg("callback signature verification failed")
		gctx.JSON(http.StatusUnauthorized, jsonresponse.Error(domain.ErrSignatureInvalid))

		return
	}

	var payload callbackPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	outcome, err := h.service.SettleFromExternalStatus(ctx, payload.ExternalOrderID, payload.Status, payload.PaymentRef)
	if err != nil {
		if err == domain.ErrRequestNotFound {
			l.Error().
				Str("external_order_id", payload.ExternalOrderID).
				Msg("verified callback for unknown order id")
			gctx.JSON(http.StatusOK, gin.H{"acknowledged": true})

			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	res := struct {
		Data outcomeData `json:"data"`
	}{outcomeData{outcome}}

	gctx.JSON(http.StatusOK, res)
}

type verifyRequest struct {
	ExternalOrderID string `json:"external_order_id" binding:"required"`
}

// Verify handles the client poll to confirm a purchase against the gateway.
func (h *Handler) Verify(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req verifyRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	outcome, err := h.service.VerifyOrder(ctx, req.ExternalOrderID)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrRequestNotFound:
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
			return
		case domain.ErrGatewayUnavailable:
			gctx.JSON(http.StatusBadGateway, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	res := struct {
		Data outcomeData `json:"data"`
	}{outcomeData{outcome}}

	gctx.JSON(http.StatusOK, res)
}

type decideURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type decideRequest struct {
	Decision  string `json:"decision" binding:"required,oneof=approve reject"`
	PayoutRef string `json:"payout_ref"`
	Reason    string `json:"reason"`
}

// Decide handles the administrator decision on a pending withdrawal.
func (h *Handler) Decide(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri decideURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	var req decideRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	outcome, err := h.service.DecideWithdrawal(ctx, domain.DecideWithdrawalParams{
		RequestID: uri.ID,
		Decision:  req.Decision,
		PayoutRef: req.PayoutRef,
		Reason:    req.Reason,
	})
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrRequestNotFound:
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
			return
		case domain.ErrAlreadyDecided:
			gctx.JSON(http.StatusConflict, jsonresponse.Error(err))
			return
		case domain.ErrNotWithdrawal:
			gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	res := struct {
		Data outcomeData `json:"data"`
	}{outcomeData{outcome}}

	gctx.JSON(http.StatusOK, res)
}

type getURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get a settlement request.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri getURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	sr, err := h.service.Get(ctx, uri.ID)
	if err != nil {
		if err == domain.ErrRequestNotFound {
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	res := struct {
		Data requestData `json:"data"`
	}{requestData{sr}}

	gctx.JSON(http.StatusOK, res)
}

type listURI struct {
	AccountID string `uri:"account_id" binding:"required"`
}

type listQuery struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=1,max=100"`
}

// List handles http request to page through an account's settlement history.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri listURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	var query listQuery
	if err := gctx.ShouldBindQuery(&query); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	requests, err := h.service.List(ctx, domain.ListSettlementRequestsParams{
		AccountID: uri.AccountID,
		Limit:     query.PageSize,
		Offset:    (query.PageID - 1) * query.PageSize,
	})
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
		return
	}

	res := struct {
		Data []domain.SettlementRequest `json:"data"`
	}{requests}

	gctx.JSON(http.StatusOK, res)
}
