package payments

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"todotech_backend/internal/domain/entities"
	"todotech_backend/internal/infrastructure/payments/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/mock/gomock"
)

func newTestStripeGateway(t *testing.T) (*StripeGateway, *mocks.MockStripePaymentIntentClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockStripePaymentIntentClient(ctrl)
	return NewStripeGatewayWithClient(client), client
}

func TestNewStripeGateway(t *testing.T) {
	t.Run("missing secret key", func(t *testing.T) {
		_, err := NewStripeGateway(StripeConfig{SecretKey: "  "})
		assert.ErrorIs(t, err, ErrMissingStripeSecretKey)
	})

	t.Run("credential stays in the gateway", func(t *testing.T) {
		before := stripe.Key
		g1, err := NewStripeGateway(StripeConfig{SecretKey: "sk_test_123"})
		require.NoError(t, err)
		g2, err := NewStripeGateway(StripeConfig{SecretKey: "sk_test_123", APIBase: "http://localhost:12111"})
		require.NoError(t, err)

		assert.NotNil(t, g1.client)
		assert.NotNil(t, g2.client)
		assert.Equal(t, before, stripe.Key, "global stripe key must not be mutated")
	})

	t.Run("mock mode needs no key", func(t *testing.T) {
		g, err := NewStripeGateway(StripeConfig{MockMode: true})
		require.NoError(t, err)
		assert.IsType(t, &mockStripeClient{}, g.client)
	})
}

func TestStripeGateway_Supports(t *testing.T) {
	g := NewStripeGatewayWithClient(nil)
	want := map[entities.PaymentMethod]bool{
		entities.PaymentMethodStripe:       true,
		entities.PaymentMethodCreditCard:   true,
		entities.PaymentMethodDebitCard:    true,
		entities.PaymentMethodCash:         false,
		entities.PaymentMethodBankTransfer: false,
		entities.PaymentMethodRedcompra:    false,
	}
	for _, m := range entities.AllPaymentMethods() {
		assert.Equal(t, want[m], g.Supports(m), "method %s", m)
	}
	assert.Equal(t, entities.PaymentProviderStripe, g.Provider())
}

func TestStripeGateway_CreatePaymentIntent(t *testing.T) {
	t.Run("requires payment method", func(t *testing.T) {
		g, client := newTestStripeGateway(t)
		ctx := context.Background()

		client.EXPECT().New(gomock.Any()).DoAndReturn(func(p *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			require.Equal(t, int64(10000), *p.Amount)
			require.Equal(t, "usd", *p.Currency)
			require.Len(t, p.PaymentMethodTypes, 1)
			require.Equal(t, "card", *p.PaymentMethodTypes[0])
			require.Equal(t, "1", p.Metadata["order_id"])
			require.Equal(t, "STRIPE", p.Metadata["payment_method"])
			require.Equal(t, "test@email.com", p.Metadata["customer_email"])
			require.Equal(t, "data", p.Metadata["test"])
			require.Equal(t, "test@email.com", *p.ReceiptEmail)
			require.Equal(t, ctx, p.Context)
			return &stripe.PaymentIntent{
				ID:                 "pi_test_123",
				ClientSecret:       "pi_test_secret_123",
				Status:             stripe.PaymentIntentStatusRequiresPaymentMethod,
				AmountReceived:     0,
				PaymentMethodTypes: []string{"card"},
				Created:            123456789,
			}, nil
		})

		res := g.CreatePaymentIntent(ctx, entities.PaymentIntentRequest{
			Amount:        100.0,
			Currency:      "usd",
			PaymentMethod: entities.PaymentMethodStripe,
			OrderID:       1,
			CustomerEmail: "test@email.com",
			Metadata:      map[string]string{"test": "data"},
		})

		assert.Equal(t, "pi_test_123", res.PaymentIntentID)
		assert.Equal(t, "pi_test_secret_123", res.ClientSecret)
		assert.Equal(t, entities.PaymentIntentStatusRequiresPaymentMethod, res.Status)
		assert.False(t, res.RequiresAction)
		assert.Empty(t, res.NextActionType)
		assert.Empty(t, res.ErrorMessage)
		assert.Equal(t, []string{"card"}, res.AdditionalData["payment_method_types"])
		assert.Equal(t, int64(123456789), res.AdditionalData["created"])
		assert.Equal(t, int64(0), res.AdditionalData["amount_received"])
	})

	t.Run("caller metadata cannot shadow order reference", func(t *testing.T) {
		g, client := newTestStripeGateway(t)
		client.EXPECT().New(gomock.Any()).DoAndReturn(func(p *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			require.Equal(t, "7", p.Metadata["order_id"])
			require.Nil(t, p.ReceiptEmail)
			return &stripe.PaymentIntent{ID: "pi_1", ClientSecret: "s", Status: stripe.PaymentIntentStatusRequiresPaymentMethod}, nil
		})

		res := g.CreatePaymentIntent(context.Background(), entities.PaymentIntentRequest{
			Amount: 5, Currency: "usd", PaymentMethod: entities.PaymentMethodDebitCard, OrderID: 7,
			Metadata: map[string]string{"order_id": "999"},
		})
		assert.False(t, res.Failed())
	})

	t.Run("cop uses two-decimal minor units", func(t *testing.T) {
		g, client := newTestStripeGateway(t)
		client.EXPECT().New(gomock.Any()).DoAndReturn(func(p *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			require.Equal(t, int64(5000000), *p.Amount)
			require.Equal(t, "cop", *p.Currency)
			require.Equal(t, "2", p.Metadata["order_id"])
			return &stripe.PaymentIntent{
				ID:           "pi_test_cop",
				ClientSecret: "pi_test_secret_cop",
				Status:       stripe.PaymentIntentStatusRequiresPaymentMethod,
			}, nil
		})

		res := g.CreatePaymentIntent(context.Background(), entities.PaymentIntentRequest{
			Amount: 50000.0, Currency: "COP", PaymentMethod: entities.PaymentMethodCreditCard, OrderID: 2,
		})
		assert.Equal(t, "pi_test_cop", res.PaymentIntentID)
		assert.Equal(t, "pi_test_secret_cop", res.ClientSecret)
	})

	t.Run("zero-decimal currency", func(t *testing.T) {
		g, client := newTestStripeGateway(t)
		client.EXPECT().New(gomock.Any()).DoAndReturn(func(p *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			require.Equal(t, int64(1500), *p.Amount)
			return &stripe.PaymentIntent{ID: "pi_jpy", ClientSecret: "s", Status: stripe.PaymentIntentStatusRequiresPaymentMethod}, nil
		})

		res := g.CreatePaymentIntent(context.Background(), entities.PaymentIntentRequest{
			Amount: 1500, Currency: "jpy", PaymentMethod: entities.PaymentMethodStripe, OrderID: 3,
		})
		assert.Equal(t, "pi_jpy", res.PaymentIntentID)
	})

	t.Run("next action redirect", func(t *testing.T) {
		g, client := newTestStripeGateway(t)
		client.EXPECT().New(gomock.Any()).Return(&stripe.PaymentIntent{
			ID:                 "pi_test_123",
			ClientSecret:       "pi_test_secret_123",
			Status:             stripe.PaymentIntentStatusRequiresAction,
			PaymentMethodTypes: []string{"card"},
			Created:            123456789,
			NextAction: &stripe.PaymentIntentNextAction{
				Type:          stripe.PaymentIntentNextActionType("redirect_to_url"),
				RedirectToURL: &stripe.PaymentIntentNextActionRedirectToURL{URL: "https://hooks.stripe.com/3ds"},
			},
		}, nil)

		res := g.CreatePaymentIntent(context.Background(), entities.PaymentIntentRequest{
			Amount: 100.0, Currency: "usd", PaymentMethod: entities.PaymentMethodStripe, OrderID: 1, CustomerEmail: "test@email.com",
		})
		assert.Equal(t, entities.PaymentIntentStatusRequiresAction, res.Status)
		assert.True(t, res.RequiresAction)
		assert.Equal(t, "redirect_to_url", res.NextActionType)
		require.NotNil(t, res.NextAction)
		assert.Equal(t, "https://hooks.stripe.com/3ds", res.NextAction.RedirectURL)
	})

	t.Run("next action type only when action is required", func(t *testing.T) {
		g, client := newTestStripeGateway(t)
		client.EXPECT().New(gomock.Any()).Return(&stripe.PaymentIntent{
			ID:           "pi_1",
			ClientSecret: "s",
			Status:       stripe.PaymentIntentStatusProcessing,
			NextAction:   &stripe.PaymentIntentNextAction{Type: stripe.PaymentIntentNextActionType("verify_with_microdeposits")},
		}, nil)

		res := g.CreatePaymentIntent(context.Background(), entities.PaymentIntentRequest{Amount: 1, Currency: "usd", PaymentMethod: entities.PaymentMethodStripe})
		assert.False(t, res.RequiresAction)
		assert.Empty(t, res.NextActionType)
		require.NotNil(t, res.NextAction)
		assert.Equal(t, "verify_with_microdeposits", res.NextAction.Type)
	})

	t.Run("provider status passed through", func(t *testing.T) {
		g, client := newTestStripeGateway(t)
		client.EXPECT().New(gomock.Any()).Return(&stripe.PaymentIntent{ID: "pi_1", ClientSecret: "s", Status: stripe.PaymentIntentStatus("requires_source")}, nil)

		res := g.CreatePaymentIntent(context.Background(), entities.PaymentIntentRequest{Amount: 1, Currency: "usd", PaymentMethod: entities.PaymentMethodStripe})
		assert.Equal(t, entities.PaymentIntentStatus("requires_source"), res.Status)
		assert.False(t, res.RequiresAction)
	})
}

func TestStripeGateway_CreatePaymentIntent_Failures(t *testing.T) {
	req := entities.PaymentIntentRequest{
		Amount: 100.0, Currency: "usd", PaymentMethod: entities.PaymentMethodStripe, OrderID: 1, CustomerEmail: "test@email.com",
	}

	cases := []struct {
		name     string
		err      error
		contains string
		kind     string
	}{
		{
			name:     "stripe api error",
			err:      &stripe.Error{Type: stripe.ErrorTypeInvalidRequest, HTTPStatusCode: http.StatusUnauthorized, Msg: "Invalid API Key provided: sk_test_***"},
			contains: "Invalid API Key",
			kind:     ErrorKindUnauthorized,
		},
		{
			name:     "card error",
			err:      &stripe.Error{Type: stripe.ErrorTypeCard, HTTPStatusCode: http.StatusPaymentRequired, Msg: "Your card was declined."},
			contains: "Your card was declined.",
			kind:     ErrorKindCardDeclined,
		},
		{
			name:     "plain error",
			err:      errors.New("Invalid API Key"),
			contains: "Invalid API Key",
			kind:     ErrorKindUnauthorized,
		},
		{
			name:     "network error",
			err:      errors.New("dial tcp: i/o timeout"),
			contains: "i/o timeout",
			kind:     ErrorKindProvider,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, client := newTestStripeGateway(t)
			client.EXPECT().New(gomock.Any()).Return(nil, tc.err)

			res := g.CreatePaymentIntent(context.Background(), req)
			assert.True(t, res.Failed())
			assert.Equal(t, entities.PaymentIntentStatusFailed, res.Status)
			assert.Empty(t, res.PaymentIntentID)
			assert.Empty(t, res.ClientSecret)
			assert.Contains(t, res.ErrorMessage, tc.contains)
			assert.Equal(t, tc.kind, res.AdditionalData["error_kind"])
		})
	}

	t.Run("nil intent without error", func(t *testing.T) {
		g, client := newTestStripeGateway(t)
		client.EXPECT().New(gomock.Any()).Return(nil, nil)

		res := g.CreatePaymentIntent(context.Background(), req)
		assert.True(t, res.Failed())
		assert.NotEmpty(t, res.ErrorMessage)
	})

	t.Run("invalid input never reaches the provider", func(t *testing.T) {
		g, _ := newTestStripeGateway(t)
		for _, bad := range []entities.PaymentIntentRequest{
			{Amount: 0, Currency: "usd"},
			{Amount: -10, Currency: "usd"},
			{Amount: 10, Currency: ""},
			{Amount: 10.005, Currency: "usd"},
		} {
			res := g.CreatePaymentIntent(context.Background(), bad)
			assert.True(t, res.Failed(), "request %+v", bad)
			assert.Equal(t, ErrorKindInvalidRequest, res.AdditionalData["error_kind"])
		}
	})

	t.Run("gateway without client", func(t *testing.T) {
		res := NewStripeGatewayWithClient(nil).CreatePaymentIntent(context.Background(), req)
		assert.True(t, res.Failed())
		assert.Contains(t, res.ErrorMessage, ErrPaymentGatewayNotConfigured.Error())
	})
}

func TestStripeGateway_ConfirmPayment(t *testing.T) {
	t.Run("succeeded", func(t *testing.T) {
		g, client := newTestStripeGateway(t)
		ctx := context.Background()

		gomock.InOrder(
			client.EXPECT().Get("pi_123", gomock.Any()).Return(&stripe.PaymentIntent{
				ID:     "pi_123",
				Status: stripe.PaymentIntentStatusRequiresPaymentMethod,
			}, nil),
			client.EXPECT().Confirm("pi_123", gomock.Any()).DoAndReturn(func(_ string, p *stripe.PaymentIntentConfirmParams) (*stripe.PaymentIntent, error) {
				require.Equal(t, "pm_123", *p.PaymentMethod)
				require.Equal(t, ctx, p.Context)
				return &stripe.PaymentIntent{
					ID:             "pi_123",
					ClientSecret:   "pi_test_secret_123",
					Status:         stripe.PaymentIntentStatusSucceeded,
					AmountReceived: 10000,
				}, nil
			}),
		)

		res := g.ConfirmPayment(ctx, entities.PaymentConfirmation{PaymentIntentID: "pi_123", PaymentMethodID: "pm_123", Options: map[string]any{}})
		assert.Equal(t, entities.PaymentIntentStatusSucceeded, res.Status)
		assert.Equal(t, "pi_123", res.PaymentIntentID)
		assert.False(t, res.RequiresAction)
		assert.Equal(t, int64(10000), res.AdditionalData["amount_received"])
	})

	t.Run("options", func(t *testing.T) {
		g, client := newTestStripeGateway(t)
		client.EXPECT().Get("pi_123", gomock.Any()).Return(&stripe.PaymentIntent{ID: "pi_123"}, nil)
		client.EXPECT().Confirm("pi_123", gomock.Any()).DoAndReturn(func(_ string, p *stripe.PaymentIntentConfirmParams) (*stripe.PaymentIntent, error) {
			require.Nil(t, p.PaymentMethod)
			require.Equal(t, "https://shop.example/return", *p.ReturnURL)
			require.Equal(t, "buyer@example.com", *p.ReceiptEmail)
			require.Equal(t, "off_session", *p.SetupFutureUsage)
			require.True(t, *p.OffSession)
			require.NotNil(t, p.Extra)
			require.Equal(t, "mandate_1", p.Extra.Get("mandate"))
			return &stripe.PaymentIntent{ID: "pi_123", ClientSecret: "s", Status: stripe.PaymentIntentStatusProcessing}, nil
		})

		res := g.ConfirmPayment(context.Background(), entities.PaymentConfirmation{
			PaymentIntentID: "pi_123",
			Options: map[string]any{
				"return_url":         "https://shop.example/return",
				"receipt_email":      "buyer@example.com",
				"setup_future_usage": "off_session",
				"off_session":        "true",
				"mandate":            "mandate_1",
				"ignored":            nil,
			},
		})
		assert.Equal(t, entities.PaymentIntentStatusProcessing, res.Status)
	})

	t.Run("retrieve fails", func(t *testing.T) {
		g, client := newTestStripeGateway(t)
		client.EXPECT().Get("pi_missing", gomock.Any()).Return(nil, &stripe.Error{HTTPStatusCode: http.StatusNotFound, Msg: "No such payment_intent: 'pi_missing'"})

		res := g.ConfirmPayment(context.Background(), entities.PaymentConfirmation{PaymentIntentID: "pi_missing", PaymentMethodID: "pm_123"})
		assert.True(t, res.Failed())
		assert.Empty(t, res.PaymentIntentID)
		assert.Contains(t, res.ErrorMessage, "No such payment_intent")
		assert.Equal(t, ErrorKindNotFound, res.AdditionalData["error_kind"])
	})

	t.Run("confirm fails", func(t *testing.T) {
		g, client := newTestStripeGateway(t)
		client.EXPECT().Get("pi_123", gomock.Any()).Return(&stripe.PaymentIntent{ID: "pi_123"}, nil)
		client.EXPECT().Confirm("pi_123", gomock.Any()).Return(nil, &stripe.Error{Type: stripe.ErrorTypeCard, Msg: "Your card was declined."})

		res := g.ConfirmPayment(context.Background(), entities.PaymentConfirmation{PaymentIntentID: "pi_123", PaymentMethodID: "pm_card_chargeDeclined"})
		assert.True(t, res.Failed())
		assert.Empty(t, res.ClientSecret)
		assert.Contains(t, res.ErrorMessage, "Your card was declined.")
	})

	t.Run("empty id", func(t *testing.T) {
		g, _ := newTestStripeGateway(t)
		res := g.ConfirmPayment(context.Background(), entities.PaymentConfirmation{PaymentIntentID: " "})
		assert.True(t, res.Failed())
		assert.Contains(t, res.ErrorMessage, entities.ErrInvalidPaymentIntentID.Error())
	})
}

func TestStripeGateway_GetPaymentStatus(t *testing.T) {
	t.Run("succeeded", func(t *testing.T) {
		g, client := newTestStripeGateway(t)
		client.EXPECT().Get("pi_test_123", gomock.Any()).Return(&stripe.PaymentIntent{
			ID:             "pi_test_123",
			ClientSecret:   "pi_test_secret_123",
			Status:         stripe.PaymentIntentStatusSucceeded,
			AmountReceived: 10000,
			PaymentMethod:  &stripe.PaymentMethod{ID: "pm_test_123"},
			Created:        123456789,
			Customer:       &stripe.Customer{ID: "cus_test_123"},
			Description:    "Test payment",
		}, nil)

		res := g.GetPaymentStatus(context.Background(), "pi_test_123")
		assert.Equal(t, entities.PaymentIntentStatusSucceeded, res.Status)
		assert.Equal(t, "pi_test_123", res.PaymentIntentID)
		assert.Equal(t, "pm_test_123", res.AdditionalData["payment_method"])
		assert.Equal(t, int64(123456789), res.AdditionalData["created"])
		assert.Equal(t, "cus_test_123", res.AdditionalData["customer"])
		assert.Equal(t, "Test payment", res.AdditionalData["description"])
		assert.Equal(t, int64(10000), res.AdditionalData["amount_received"])
		assert.NotContains(t, res.AdditionalData, "last_payment_error")
	})

	t.Run("nullable fields", func(t *testing.T) {
		g, client := newTestStripeGateway(t)
		client.EXPECT().Get("pi_test_123", gomock.Any()).Return(&stripe.PaymentIntent{
			ID:             "pi_test_123",
			ClientSecret:   "pi_test_secret_123",
			Status:         stripe.PaymentIntentStatusSucceeded,
			AmountReceived: 10000,
			PaymentMethod:  &stripe.PaymentMethod{ID: "pm_test_123"},
			Created:        123456789,
		}, nil)

		res := g.GetPaymentStatus(context.Background(), "pi_test_123")
		require.Contains(t, res.AdditionalData, "customer")
		require.Contains(t, res.AdditionalData, "description")
		assert.Nil(t, res.AdditionalData["customer"])
		assert.Nil(t, res.AdditionalData["description"])
	})

	t.Run("last payment error and pending action", func(t *testing.T) {
		g, client := newTestStripeGateway(t)
		client.EXPECT().Get("pi_1", gomock.Any()).Return(&stripe.PaymentIntent{
			ID:           "pi_1",
			ClientSecret: "s",
			Status:       stripe.PaymentIntentStatusRequiresAction,
			NextAction:   &stripe.PaymentIntentNextAction{Type: stripe.PaymentIntentNextActionType("use_stripe_sdk")},
			LastPaymentError: &stripe.Error{
				Type:        stripe.ErrorTypeCard,
				Code:        stripe.ErrorCodeCardDeclined,
				DeclineCode: stripe.DeclineCodeInsufficientFunds,
				Msg:         "Your card has insufficient funds.",
			},
		}, nil)

		res := g.GetPaymentStatus(context.Background(), "pi_1")
		assert.True(t, res.RequiresAction)
		assert.Equal(t, "use_stripe_sdk", res.NextActionType)
		assert.Equal(t, "use_stripe_sdk", res.AdditionalData["next_action"])
		assert.Equal(t, "Your card has insufficient funds.", res.AdditionalData["last_payment_error"])
		require.NotNil(t, res.LastPaymentError)
		assert.Equal(t, "card_declined", res.LastPaymentError.Code)
		assert.Equal(t, "insufficient_funds", res.LastPaymentError.DeclineCode)
		assert.Equal(t, "card_error", res.LastPaymentError.Type)
	})

	t.Run("repeated reads are identical", func(t *testing.T) {
		g, client := newTestStripeGateway(t)
		intent := &stripe.PaymentIntent{
			ID:                 "pi_1",
			ClientSecret:       "s",
			Status:             stripe.PaymentIntentStatusSucceeded,
			AmountReceived:     2500,
			PaymentMethodTypes: []string{"card"},
			Created:            1700000000,
		}
		client.EXPECT().Get("pi_1", gomock.Any()).Return(intent, nil).Times(2)

		first := g.GetPaymentStatus(context.Background(), "pi_1")
		second := g.GetPaymentStatus(context.Background(), "pi_1")
		assert.Equal(t, first, second)
	})

	t.Run("provider error", func(t *testing.T) {
		g, client := newTestStripeGateway(t)
		client.EXPECT().Get("pi_test_invalid", gomock.Any()).Return(nil, errors.New("Payment intent not found"))

		res := g.GetPaymentStatus(context.Background(), "pi_test_invalid")
		assert.True(t, res.Failed())
		assert.Empty(t, res.PaymentIntentID)
		assert.Contains(t, res.ErrorMessage, "Payment intent not found")
	})
}

func TestStripeGateway_MockMode(t *testing.T) {
	g, err := NewStripeGateway(StripeConfig{MockMode: true})
	require.NoError(t, err)
	ctx := context.Background()
	req := entities.PaymentIntentRequest{Amount: 100, Currency: "usd", PaymentMethod: entities.PaymentMethodStripe, OrderID: 9}

	t.Run("create then confirm", func(t *testing.T) {
		created := g.CreatePaymentIntent(ctx, req)
		require.False(t, created.Failed())
		assert.Equal(t, entities.PaymentIntentStatusRequiresPaymentMethod, created.Status)
		assert.NotEmpty(t, created.ClientSecret)

		confirmed := g.ConfirmPayment(ctx, entities.PaymentConfirmation{PaymentIntentID: created.PaymentIntentID, PaymentMethodID: "pm_card_visa"})
		assert.Equal(t, entities.PaymentIntentStatusSucceeded, confirmed.Status)
		assert.Equal(t, int64(10000), confirmed.AdditionalData["amount_received"])

		status := g.GetPaymentStatus(ctx, created.PaymentIntentID)
		assert.Equal(t, entities.PaymentIntentStatusSucceeded, status.Status)
		assert.Equal(t, "pm_card_visa", status.AdditionalData["payment_method"])
	})

	t.Run("declined card", func(t *testing.T) {
		created := g.CreatePaymentIntent(ctx, req)
		confirmed := g.ConfirmPayment(ctx, entities.PaymentConfirmation{PaymentIntentID: created.PaymentIntentID, PaymentMethodID: mockPaymentMethodDeclined})
		assert.True(t, confirmed.Failed())
		assert.Contains(t, confirmed.ErrorMessage, "Your card was declined.")

		status := g.GetPaymentStatus(ctx, created.PaymentIntentID)
		assert.Equal(t, entities.PaymentIntentStatusRequiresPaymentMethod, status.Status)
		assert.Equal(t, "Your card was declined.", status.AdditionalData["last_payment_error"])
	})

	t.Run("authentication required", func(t *testing.T) {
		created := g.CreatePaymentIntent(ctx, req)
		confirmed := g.ConfirmPayment(ctx, entities.PaymentConfirmation{
			PaymentIntentID: created.PaymentIntentID,
			PaymentMethodID: mockPaymentMethodAuthRequired,
			Options:         map[string]any{"return_url": "https://shop.example/return"},
		})
		assert.True(t, confirmed.RequiresAction)
		assert.Equal(t, "redirect_to_url", confirmed.NextActionType)
	})

	t.Run("unknown intent", func(t *testing.T) {
		res := g.GetPaymentStatus(ctx, "pi_unknown")
		assert.True(t, res.Failed())
		assert.Contains(t, res.ErrorMessage, "No such payment_intent")
	})
}
