package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"todotech_backend/internal/domain/entities"
	"todotech_backend/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const (
	defaultMercadoPagoCashMethodID     = "efecty"
	defaultMercadoPagoTransferMethodID = "pse"

	mercadoPagoStatusApproved = "approved"
)

// MercadoPagoConfig configures the regional gateway used for cash and bank
// transfer payments.
type MercadoPagoConfig struct {
	AccessToken string
	// Mercado Pago payment_method_id used for CASH and BANK_TRANSFER.
	CashPaymentMethodID     string
	TransferPaymentMethodID string
	MockMode                bool
}

// MercadoPagoPaymentClient is the part of payment.Client the gateway uses.
type MercadoPagoPaymentClient interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
	Get(ctx context.Context, id int) (*payment.Response, error)
	Capture(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoGateway maps payment intents onto Mercado Pago payments. The
// payment id plays the role of the payment intent id; there is no client
// secret and statuses are Mercado Pago's own (pending, approved, ...).
type MercadoPagoGateway struct {
	client    MercadoPagoPaymentClient
	methodIDs map[entities.PaymentMethod]string
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg MercadoPagoConfig) (*MercadoPagoGateway, error) {
	if cfg.MockMode {
		log.Printf("[payment][gateway] mercadopago mock mode enabled")
		return NewMercadoPagoGatewayWithClient(newMockMercadoPagoClient(), cfg), nil
	}

	accessToken := strings.TrimSpace(cfg.AccessToken)
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return NewMercadoPagoGatewayWithClient(payment.NewClient(sdkCfg), cfg), nil
}

func NewMercadoPagoGatewayWithClient(client MercadoPagoPaymentClient, cfg MercadoPagoConfig) *MercadoPagoGateway {
	cash := strings.TrimSpace(cfg.CashPaymentMethodID)
	if cash == "" {
		cash = defaultMercadoPagoCashMethodID
	}
	transfer := strings.TrimSpace(cfg.TransferPaymentMethodID)
	if transfer == "" {
		transfer = defaultMercadoPagoTransferMethodID
	}
	return &MercadoPagoGateway{
		client: client,
		methodIDs: map[entities.PaymentMethod]string{
			entities.PaymentMethodCash:         cash,
			entities.PaymentMethodBankTransfer: transfer,
		},
	}
}

func (g *MercadoPagoGateway) Provider() entities.PaymentProvider {
	return entities.PaymentProviderMercadoPago
}

func (g *MercadoPagoGateway) Supports(method entities.PaymentMethod) bool {
	return method.SupportedBy(entities.PaymentProviderMercadoPago)
}

func (g *MercadoPagoGateway) CreatePaymentIntent(ctx context.Context, req entities.PaymentIntentRequest) entities.PaymentIntentResponse {
	log.Printf("[payment][gateway] mercadopago create start order_id=%d method=%s currency=%s", req.OrderID, req.PaymentMethod, req.Currency)
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] mercadopago gateway not configured")
		return failedResponse(entities.PaymentProviderMercadoPago, opCreatePaymentIntent, ErrPaymentGatewayNotConfigured)
	}
	if err := req.Validate(); err != nil {
		return failedResponse(g.Provider(), opCreatePaymentIntent, err)
	}

	currency := req.NormalizedCurrency()
	minor, err := entities.ToMinorUnits(req.Amount, currency)
	if err != nil {
		log.Printf("[payment][gateway] mercadopago create rejected order_id=%d amount=%v currency=%s err=%v", req.OrderID, req.Amount, currency, err)
		return failedResponse(g.Provider(), opCreatePaymentIntent, err)
	}

	methodID, ok := g.methodIDs[req.PaymentMethod]
	if !ok {
		return failedResponse(g.Provider(), opCreatePaymentIntent, fmt.Errorf("payment method %s not available in mercado pago", req.PaymentMethod))
	}

	metadata := map[string]any{}
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	metadata["order_id"] = strconv.FormatInt(req.OrderID, 10)
	metadata["payment_method"] = string(req.PaymentMethod)
	metadata["currency"] = currency

	// Mercado Pago takes major units; the amount went through the minor-unit
	// check so it is exactly representable in the currency.
	body := map[string]any{
		"transaction_amount": entities.FromMinorUnits(minor, currency),
		"payment_method_id":  methodID,
		"external_reference": strconv.FormatInt(req.OrderID, 10),
		"description":        fmt.Sprintf("Order %d", req.OrderID),
		"metadata":           metadata,
	}
	if email := strings.TrimSpace(req.CustomerEmail); email != "" {
		body["payer"] = map[string]any{"email": email}
	}

	requestPayload, err := json.Marshal(body)
	if err != nil {
		return failedResponse(g.Provider(), opCreatePaymentIntent, err)
	}
	var mpReq payment.Request
	if err := json.Unmarshal(requestPayload, &mpReq); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return failedResponse(g.Provider(), opCreatePaymentIntent, err)
	}

	resp, err := g.client.Create(ctx, mpReq)
	if err == nil && resp == nil {
		err = errors.New("empty payment response")
	}
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed order_id=%d err=%v", req.OrderID, err)
		return failedResponse(g.Provider(), opCreatePaymentIntent, err)
	}
	log.Printf("[payment][gateway] mercadopago create success order_id=%d provider_payment_id=%d provider_status=%s", req.OrderID, resp.ID, resp.Status)

	return g.paymentResponse(resp, currency)
}

// ConfirmPayment captures an authorized Mercado Pago payment. The payment
// method is fixed at creation time, so PaymentMethodID is ignored.
func (g *MercadoPagoGateway) ConfirmPayment(ctx context.Context, confirmation entities.PaymentConfirmation) entities.PaymentIntentResponse {
	log.Printf("[payment][gateway] mercadopago confirm start provider_payment_id=%s", confirmation.PaymentIntentID)
	if g == nil || g.client == nil {
		return failedResponse(entities.PaymentProviderMercadoPago, opConfirmPayment, ErrPaymentGatewayNotConfigured)
	}
	id, err := parseMercadoPagoID(confirmation.PaymentIntentID)
	if err != nil {
		return failedResponse(g.Provider(), opConfirmPayment, err)
	}

	current, err := g.client.Get(ctx, id)
	if err == nil && current == nil {
		err = fmt.Errorf("payment %d not returned", id)
	}
	if err != nil {
		log.Printf("[payment][gateway] sdk get before capture failed provider_payment_id=%d err=%v", id, err)
		return failedResponse(g.Provider(), opConfirmPayment, err)
	}
	currency := currencyFromMetadata(current)
	if current.Status == mercadoPagoStatusApproved {
		log.Printf("[payment][gateway] mercadopago payment already approved provider_payment_id=%d", id)
		return g.paymentResponse(current, currency)
	}

	resp, err := g.client.Capture(ctx, id)
	if err == nil && resp == nil {
		err = fmt.Errorf("payment %d not returned", id)
	}
	if err != nil {
		log.Printf("[payment][gateway] sdk capture failed provider_payment_id=%d err=%v", id, err)
		return failedResponse(g.Provider(), opConfirmPayment, err)
	}
	log.Printf("[payment][gateway] mercadopago confirm success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return g.paymentResponse(resp, currency)
}

func (g *MercadoPagoGateway) GetPaymentStatus(ctx context.Context, paymentIntentID string) entities.PaymentIntentResponse {
	log.Printf("[payment][gateway] mercadopago status start provider_payment_id=%s", paymentIntentID)
	if g == nil || g.client == nil {
		return failedResponse(entities.PaymentProviderMercadoPago, opGetPaymentStatus, ErrPaymentGatewayNotConfigured)
	}
	id, err := parseMercadoPagoID(paymentIntentID)
	if err != nil {
		return failedResponse(g.Provider(), opGetPaymentStatus, err)
	}

	resp, err := g.client.Get(ctx, id)
	if err == nil && resp == nil {
		err = fmt.Errorf("payment %d not returned", id)
	}
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed provider_payment_id=%d err=%v", id, err)
		return failedResponse(g.Provider(), opGetPaymentStatus, err)
	}
	log.Printf("[payment][gateway] mercadopago status success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return g.paymentResponse(resp, currencyFromMetadata(resp))
}

// paymentResponse reads the SDK response through its JSON form, the same
// representation the API returns, so optional blocks can be absent.
func (g *MercadoPagoGateway) paymentResponse(resp *payment.Response, currency string) entities.PaymentIntentResponse {
	status := entities.PaymentIntentStatus(resp.Status)
	res := entities.PaymentIntentResponse{
		PaymentIntentID: fmt.Sprintf("%d", resp.ID),
		Status:          status,
		RequiresAction:  entities.RequiresActionStatus(status),
		AdditionalData: map[string]any{
			"provider":        string(entities.PaymentProviderMercadoPago),
			"amount_received": int64(0),
		},
	}

	var body map[string]any
	if b, err := json.Marshal(resp); err == nil {
		if err := json.Unmarshal(b, &body); err != nil {
			log.Printf("[payment][gateway] provider response unmarshal failed err=%v", err)
		}
	}

	for key, path := range map[string][]string{
		"status_detail":      {"status_detail"},
		"payment_method":     {"payment_method_id"},
		"created":            {"date_created"},
		"description":        {"description"},
		"external_reference": {"external_reference"},
		"ticket_url":         {"point_of_interaction", "transaction_data", "ticket_url"},
		"resource_url":       {"transaction_details", "external_resource_url"},
	} {
		if v := lookupString(body, path...); v != "" {
			res.AdditionalData[key] = v
		}
	}
	if amount, ok := lookup(body, "transaction_amount").(float64); ok && currency != "" {
		if minor, err := entities.ToMinorUnits(amount, currency); err == nil {
			res.AdditionalData["amount"] = minor
			if resp.Status == mercadoPagoStatusApproved {
				res.AdditionalData["amount_received"] = minor
			}
		}
	}
	return res
}

func parseMercadoPagoID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, entities.ErrInvalidPaymentIntentID
	}
	return id, nil
}

func currencyFromMetadata(resp *payment.Response) string {
	var body map[string]any
	b, err := json.Marshal(resp)
	if err != nil || json.Unmarshal(b, &body) != nil {
		return ""
	}
	if c := lookupString(body, "metadata", "currency"); c != "" {
		return c
	}
	return strings.ToLower(lookupString(body, "currency_id"))
}

func lookup(m map[string]any, path ...string) any {
	var cur any = m
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = obj[key]
	}
	return cur
}

func lookupString(m map[string]any, path ...string) string {
	s, _ := lookup(m, path...).(string)
	return strings.TrimSpace(s)
}
