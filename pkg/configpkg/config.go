// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	DBDriver             string        `mapstructure:"DB_DRIVER"`
	DBSource             string        `mapstructure:"DB_SOURCE"`
	ServerAddress        string        `mapstructure:"SERVER_ADDRESS"`
	PriceFeedURL         string        `mapstructure:"PRICE_FEED_URL"`
	GatewayBaseURL       string        `mapstructure:"GATEWAY_BASE_URL"`
	GatewayKeyID         string        `mapstructure:"GATEWAY_KEY_ID"`
	GatewayKeySecret     string        `mapstructure:"GATEWAY_KEY_SECRET"`
	GatewayWebhookSecret string        `mapstructure:"GATEWAY_WEBHOOK_SECRET"`
	GatewayMaxAttempts   int           `mapstructure:"GATEWAY_MAX_ATTEMPTS"`
	GatewayRetryBackoff  time.Duration `mapstructure:"GATEWAY_RETRY_BACKOFF"`
	KafkaBrokerAddress   string        `mapstructure:"KAFKA_BROKER_ADDRESS"`
	KafkaSettlementTopic string        `mapstructure:"KAFKA_SETTLEMENT_TOPIC"`
	Environement         string        `mapstructure:"GO_ENV"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
