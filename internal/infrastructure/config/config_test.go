package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for k := range defaults {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "efecty", cfg.MercadoPago.CashPaymentMethodID)
	assert.Equal(t, "pse", cfg.MercadoPago.TransferPaymentMethodID)
	assert.Equal(t, "payment_intents", cfg.Persistence.PaymentIntentTable)
	assert.True(t, cfg.Persistence.Enabled)
	assert.False(t, cfg.MockMode)
	assert.Equal(t, "us-east-1", cfg.DynamoDB.Region)
	assert.Equal(t, "local", cfg.DynamoDB.AccessKeyID)
	assert.Empty(t, cfg.Stripe.SecretKey)
	assert.Empty(t, cfg.DynamoDB.Endpoint)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STRIPE_SECRET_KEY", " sk_test_123 ")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("PAYMENT_PERSISTENCE_ENABLED", "false")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sk_test_123", cfg.Stripe.SecretKey)
	assert.True(t, cfg.MockMode)
	assert.False(t, cfg.Persistence.Enabled)
	assert.Equal(t, "http://dynamodb:8000", cfg.DynamoDB.Endpoint)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payments.yaml")
	require.NoError(t, os.WriteFile(path, []byte("MERCADOPAGO_CASH_METHOD_ID: baloto\nPAYMENT_INTENTS_TABLE: intents_test\n"), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("MERCADOPAGO_CASH_METHOD_ID", "")
	require.NoError(t, os.Unsetenv("MERCADOPAGO_CASH_METHOD_ID"))
	t.Setenv("PAYMENT_INTENTS_TABLE", "")
	require.NoError(t, os.Unsetenv("PAYMENT_INTENTS_TABLE"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "baloto", cfg.MercadoPago.CashPaymentMethodID)
	assert.Equal(t, "intents_test", cfg.Persistence.PaymentIntentTable)
}

func TestLoad_BadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("PORT: [8080\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
