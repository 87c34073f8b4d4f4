package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mercadopago/sdk-go/pkg/payment"
)

// mockMercadoPagoClient keeps payments in memory. Created payments start as
// pending (the shopper still has to pay the ticket or transfer); Capture
// approves them.
type mockMercadoPagoClient struct {
	mu       sync.Mutex
	nextID   int
	payments map[int]map[string]any
	now      func() time.Time
}

var _ MercadoPagoPaymentClient = (*mockMercadoPagoClient)(nil)

func newMockMercadoPagoClient() *mockMercadoPagoClient {
	return &mockMercadoPagoClient{
		nextID:   1000,
		payments: map[int]map[string]any{},
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (c *mockMercadoPagoClient) Create(_ context.Context, request payment.Request) (*payment.Response, error) {
	b, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}
	body := map[string]any{}
	if err := json.Unmarshal(b, &body); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	body["id"] = id
	body["status"] = "pending"
	body["status_detail"] = "pending_waiting_payment"
	body["date_created"] = c.now().Format(time.RFC3339Nano)
	body["point_of_interaction"] = map[string]any{
		"transaction_data": map[string]any{
			"ticket_url": fmt.Sprintf("https://www.mercadopago.com.co/payments/%d/ticket", id),
		},
	}
	c.payments[id] = body
	return toMercadoPagoResponse(body)
}

func (c *mockMercadoPagoClient) Get(_ context.Context, id int) (*payment.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	body, ok := c.payments[id]
	if !ok {
		return nil, mockMercadoPagoNotFound(id)
	}
	return toMercadoPagoResponse(body)
}

func (c *mockMercadoPagoClient) Capture(_ context.Context, id int) (*payment.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	body, ok := c.payments[id]
	if !ok {
		return nil, mockMercadoPagoNotFound(id)
	}
	now := c.now().Format(time.RFC3339Nano)
	body["status"] = mercadoPagoStatusApproved
	body["status_detail"] = "accredited"
	body["date_approved"] = now
	return toMercadoPagoResponse(body)
}

func mockMercadoPagoNotFound(id int) error {
	return fmt.Errorf(`{"message":"Payment not found","error":"not_found","status":404,"cause":[{"code":2000,"description":"Payment %d not found"}]}`, id)
}

func toMercadoPagoResponse(body map[string]any) (*payment.Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	var resp payment.Response
	if err := json.Unmarshal(b, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
