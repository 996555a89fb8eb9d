package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/lib/pq"

	"github.com/go-petr/gold-vault/cmd/httpserver"
	"github.com/go-petr/gold-vault/internal/events/kafkapub"
	"github.com/go-petr/gold-vault/internal/gateway"
	"github.com/go-petr/gold-vault/internal/middleware"
	"github.com/go-petr/gold-vault/internal/priceoracle"
	"github.com/go-petr/gold-vault/pkg/configpkg"
	"github.com/go-petr/gold-vault/pkg/dbpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	conn, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}

	adapter := gateway.WithRetry(
		gateway.NewHTTPClient(
			config.GatewayBaseURL,
			config.GatewayKeyID,
			config.GatewayKeySecret,
			config.GatewayWebhookSecret,
		),
		config.GatewayMaxAttempts,
		config.GatewayRetryBackoff,
	)

	oracle := priceoracle.NewHTTPClient(config.PriceFeedURL)

	publisher := kafkapub.NewPublisher(config.KafkaBrokerAddress, config.KafkaSettlementTopic)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error().Err(err).Msg("cannot close publisher")
		}
	}()

	server, err := httpserver.New(conn, logger, config, adapter, oracle, publisher)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	if err := server.Engine.Run(config.ServerAddress); err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
