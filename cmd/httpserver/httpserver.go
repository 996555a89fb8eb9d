// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/go-petr/gold-vault/internal/gateway"
	"github.com/go-petr/gold-vault/internal/holdingdelivery"
	"github.com/go-petr/gold-vault/internal/holdingrepo"
	"github.com/go-petr/gold-vault/internal/holdingservice"
	"github.com/go-petr/gold-vault/internal/identityrepo"
	"github.com/go-petr/gold-vault/internal/middleware"
	"github.com/go-petr/gold-vault/internal/priceoracle"
	"github.com/go-petr/gold-vault/internal/settlementdelivery"
	"github.com/go-petr/gold-vault/internal/settlementrepo"
	"github.com/go-petr/gold-vault/internal/settlementservice"
	"github.com/go-petr/gold-vault/pkg/configpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
//
// The gateway adapter, price oracle and completion publisher are injected
// so tests can substitute fakes; publisher may be nil when no broker is
// configured.
func New(
	conn *sql.DB,
	logger zerolog.Logger,
	config configpkg.Config,
	adapter gateway.Adapter,
	oracle priceoracle.Oracle,
	publisher settlementservice.Publisher,
) (*Server, error) {
	settlementRepo := settlementrepo.NewRepoPGS(conn)
	holdingRepo := holdingrepo.NewRepoPGS(conn)
	identityRepo := identityrepo.NewRepoPGS(conn)

	settlementService := settlementservice.New(settlementRepo, holdingRepo, adapter, oracle, identityRepo, publisher)
	holdingService := holdingservice.New(holdingRepo, oracle)

	settlementHandler := settlementdelivery.NewHandler(settlementService, adapter)
	holdingHandler := holdingdelivery.NewHandler(holdingService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/purchases", settlementHandler.CreateBuy)
	engine.POST("/purchases/verify", settlementHandler.Verify)
	engine.POST("/withdrawals", settlementHandler.CreateWithdraw)
	engine.POST("/withdrawals/:id/decision", settlementHandler.Decide)
	engine.POST("/gateway/callback", settlementHandler.Callback)

	engine.GET("/requests/:id", settlementHandler.Get)
	engine.GET("/accounts/:account_id/requests", settlementHandler.List)
	engine.GET("/accounts/:account_id/holding", holdingHandler.Get)
	engine.GET("/accounts/:account_id/holding/value", holdingHandler.Value)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("amount", settlementdelivery.ValidDecimal)
		if err != nil {
			return nil, errors.New("cannot register amount validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
