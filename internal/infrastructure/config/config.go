package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config is loaded once in main and handed to each constructor.
type Config struct {
	Port        string
	Stripe      StripeConfig
	MercadoPago MercadoPagoConfig
	Persistence PersistenceConfig
	DynamoDB    DynamoDBConfig
	MockMode    bool
}

type StripeConfig struct {
	SecretKey string
	APIBase   string
}

type MercadoPagoConfig struct {
	AccessToken             string
	CashPaymentMethodID     string
	TransferPaymentMethodID string
}

type PersistenceConfig struct {
	Enabled            bool
	PaymentIntentTable string
}

// DynamoDBConfig works against DynamoDB Local as well; Endpoint is optional.
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

var defaults = map[string]any{
	"PORT":                           "8080",
	"STRIPE_SECRET_KEY":              "",
	"STRIPE_API_BASE":                "",
	"MERCADOPAGO_ACCESS_TOKEN":       "",
	"MERCADOPAGO_CASH_METHOD_ID":     "efecty",
	"MERCADOPAGO_TRANSFER_METHOD_ID": "pse",
	"PAYMENT_GATEWAY_MOCK":           false,
	"PAYMENT_INTENTS_TABLE":          "payment_intents",
	"PAYMENT_PERSISTENCE_ENABLED":    true,
	"AWS_REGION":                     "us-east-1",
	"AWS_ACCESS_KEY_ID":              "local",
	"AWS_SECRET_ACCESS_KEY":          "local",
	"DYNAMODB_ENDPOINT":              "",
	"CONFIG_FILE":                    "",
}

// Load reads the environment, optionally layered over the file named by CONFIG_FILE.
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	for k, def := range defaults {
		v.SetDefault(k, def)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file := strings.TrimSpace(v.GetString("CONFIG_FILE")); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", file, err)
		}
		log.Printf("[config] loaded config file path=%s", file)
	}

	port := strings.TrimSpace(v.GetString("PORT"))
	if port == "" {
		port = "8080"
	}

	return Config{
		Port: port,
		Stripe: StripeConfig{
			SecretKey: strings.TrimSpace(v.GetString("STRIPE_SECRET_KEY")),
			APIBase:   strings.TrimSpace(v.GetString("STRIPE_API_BASE")),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken:             strings.TrimSpace(v.GetString("MERCADOPAGO_ACCESS_TOKEN")),
			CashPaymentMethodID:     strings.TrimSpace(v.GetString("MERCADOPAGO_CASH_METHOD_ID")),
			TransferPaymentMethodID: strings.TrimSpace(v.GetString("MERCADOPAGO_TRANSFER_METHOD_ID")),
		},
		Persistence: PersistenceConfig{
			Enabled:            v.GetBool("PAYMENT_PERSISTENCE_ENABLED"),
			PaymentIntentTable: strings.TrimSpace(v.GetString("PAYMENT_INTENTS_TABLE")),
		},
		DynamoDB: DynamoDBConfig{
			Region:          strings.TrimSpace(v.GetString("AWS_REGION")),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Endpoint:        strings.TrimSpace(v.GetString("DYNAMODB_ENDPOINT")),
		},
		MockMode: v.GetBool("PAYMENT_GATEWAY_MOCK"),
	}, nil
}
