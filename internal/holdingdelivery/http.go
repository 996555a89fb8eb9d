// Package holdingdelivery manages delivery layer of holdings.
package holdingdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/gold-vault/internal/domain"
	"github.com/go-petr/gold-vault/pkg/errorspkg"
	"github.com/go-petr/gold-vault/pkg/jsonresponse"
)

// Service provides service layer interface needed by holding delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package holdingdelivery
type Service interface {
	Get(ctx context.Context, accountID string) (domain.Holding, error)
	Value(ctx context.Context, accountID string) (domain.Valuation, error)
}

// Handler facilitates holding delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns holding handler.
func NewHandler(hs Service) *Handler {
	return &Handler{service: hs}
}

type holdingURI struct {
	AccountID string `uri:"account_id" binding:"required"`
}

// Get handles http request to read an account's holding balance.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri holdingURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	holding, err := h.service.Get(ctx, uri.AccountID)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	res := struct {
		Data domain.Holding `json:"data"`
	}{holding}

	gctx.JSON(http.StatusOK, res)
}

// Value handles http request to price an account's holding at the current
// unit price.
func (h *Handler) Value(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri holdingURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	valuation, err := h.service.Value(ctx, uri.AccountID)
	if err != nil {
		l.Info().Err(err).Send()

		if err == domain.ErrPriceUnavailable {
			gctx.JSON(http.StatusServiceUnavailable, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	res := struct {
		Data domain.Valuation `json:"data"`
	}{valuation}

	gctx.JSON(http.StatusOK, res)
}
