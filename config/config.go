// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr            string   `env:"BIND_ADDR"              flag:"bind-addr"               flagDesc:"Bind address"`
	Collection          string   `env:"MONGODB_COLLECTION"     flag:"mongodb-collection"      flagDesc:"MongoDB collection for checkout data"`
	OrdersCollection    string   `env:"MONGODB_ORDERS_COLLECTION" flag:"mongodb-orders-collection" flagDesc:"MongoDB collection for order data"`
	Database            string   `env:"MONGODB_DATABASE"       flag:"mongodb-database"        flagDesc:"MongoDB database for data"`
	MongoDBURL          string   `env:"MONGODB_URL"            flag:"mongodb-url"             flagDesc:"MongoDB server URL"`
	DomainAllowList     string   `env:"DOMAIN_ALLOW_LIST"      flag:"domain-allow-list"       flagDesc:"List of valid domains for catalogue item resources"`
	WebURL              string   `env:"CHECKOUT_WEB_URL"       flag:"checkout-web-url"        flagDesc:"Base URL for the storefront web"`
	CheckoutAPIURL      string   `env:"CHECKOUT_API_URL"       flag:"checkout-api-url"        flagDesc:"Base URL for the Checkout API"`
	CardProviderURL     string   `env:"CARD_PROVIDER_URL"      flag:"card-provider-url"       flagDesc:"URL used to make calls to the card payment provider"`
	CardProviderToken   string   `env:"CARD_PROVIDER_TOKEN"    flag:"card-provider-token"     flagDesc:"Bearer token used to authenticate API calls with the card payment provider"`
	CurrencyCode        string   `env:"CURRENCY_CODE"          flag:"currency-code"           flagDesc:"ISO currency code applied to all payments"`
	ExpiryTimeInMinutes string   `env:"EXPIRY_TIME_IN_MINUTES" flag:"expiry-time-in-minutes"  flagDesc:"Duration in minutes that a checkout session is valid for"`
	PaypalEnv           string   `env:"PAYPAL_ENV"             flag:"paypal-env"              flagDesc:"PayPal environment (test/live)"`
	PaypalClientID      string   `env:"PAYPAL_CLIENT_ID"       flag:"paypal-client-id"        flagDesc:"Client ID used to authenticate API calls with PayPal"`
	PaypalSecret        string   `env:"PAYPAL_SECRET"          flag:"paypal-secret"           flagDesc:"Secret used to authenticate API calls with PayPal"`
	BrokerAddr          []string `env:"KAFKA_BROKER_ADDR"      flag:"broker-addr"             flagDesc:"Kafka broker address"`
	SchemaRegistryURL   string   `env:"SCHEMA_REGISTRY_URL"    flag:"schema-registry-url"     flagDesc:"Schema registry url"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:            "checkout",
		Collection:          "checkouts",
		OrdersCollection:    "orders",
		CurrencyCode:        "GBP",
		ExpiryTimeInMinutes: "90",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
