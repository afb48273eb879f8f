package barte

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// NewIdempotencyKey returns a fresh key for CreateOrder. The server
// deduplicates retried submissions that carry the same key.
func NewIdempotencyKey() string {
	return uuid.New().String()
}

// CreateOrder creates a new order. The server answers with the order
// and the charges it fanned out to.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	ctx, span := tracer.Start(ctx, "Barte.CreateOrder")
	defer span.End()
	span.SetAttributes(attribute.String("order.idempotency_key", req.IdempotencyKey))

	if req.IdempotencyKey == "" {
		return nil, NewValidationError("idempotencyKey", "must be supplied by the caller")
	}
	if req.Value <= 0 {
		return nil, NewValidationError("value", "must be positive")
	}

	respBody, err := c.doRequest(ctx, http.MethodPost, "/v2/orders", nil, req)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	var order Order
	if err := decodeEntity("Order", respBody, &order); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	order.bind(c)

	return &order, nil
}

// bind attaches the client capability to the order and its charges.
func (o *Order) bind(api chargeAPI) {
	o.api = api
	for i := range o.Charges {
		o.Charges[i].api = api
	}
}

// Bind attaches a client to the order so convenience methods work on
// orders that were not produced by one, such as orders unmarshaled from
// stored JSON.
func (o *Order) Bind(c *Client) {
	o.bind(c)
}

// Cancel cancels every charge attached to the order. It stops at the
// first failure.
func (o *Order) Cancel(ctx context.Context) error {
	if o.api == nil {
		return ErrNoClient
	}
	for i := range o.Charges {
		if err := o.api.CancelCharge(ctx, o.Charges[i].UUID); err != nil {
			return fmt.Errorf("cancel charge %s: %w", o.Charges[i].UUID, err)
		}
	}
	return nil
}

// Refund refunds every charge attached to the order and returns the
// refunds in charge order. It stops at the first failure.
func (o *Order) Refund(ctx context.Context, opts *RefundOptions) ([]Refund, error) {
	if o.api == nil {
		return nil, ErrNoClient
	}
	refunds := make([]Refund, 0, len(o.Charges))
	for i := range o.Charges {
		refund, err := o.api.RefundCharge(ctx, o.Charges[i].UUID, opts)
		if err != nil {
			return nil, fmt.Errorf("refund charge %s: %w", o.Charges[i].UUID, err)
		}
		refunds = append(refunds, *refund)
	}
	return refunds, nil
}
