package barte

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
)

// GetCharge fetches a single charge by uuid.
func (c *Client) GetCharge(ctx context.Context, chargeID string) (*Charge, error) {
	ctx, span := tracer.Start(ctx, "Barte.GetCharge")
	defer span.End()
	span.SetAttributes(attribute.String("charge.uuid", chargeID))

	if chargeID == "" {
		return nil, NewValidationError("chargeID", "must not be empty")
	}

	respBody, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/v2/charges/%s", chargeID), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("get charge: %w", err)
	}

	var charge Charge
	if err := decodeEntity("Charge", respBody, &charge); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	charge.bind(c)

	return &charge, nil
}

// values renders the filters as query parameters. A nil receiver means
// no filters at all, which the API answers with the unfiltered first
// page.
func (p *ListChargesParams) values() url.Values {
	if p == nil {
		return nil
	}
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.CustomerDocument != "" {
		q.Set("customerDocument", p.CustomerDocument)
	}
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}
	if p.PaymentMethod != "" {
		q.Set("paymentMethod", string(p.PaymentMethod))
	}
	return q
}

// ListCharges fetches one page of charges. Passing nil params returns
// the unfiltered first page.
func (c *Client) ListCharges(ctx context.Context, params *ListChargesParams) (*ChargeList, error) {
	ctx, span := tracer.Start(ctx, "Barte.ListCharges")
	defer span.End()

	respBody, err := c.doRequest(ctx, http.MethodGet, "/v2/charges", params.values(), nil)
	if err != nil {
		return nil, fmt.Errorf("list charges: %w", err)
	}

	var list ChargeList
	if err := decodeEntity("ChargeList", respBody, &list); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	for i := range list.Content {
		list.Content[i].bind(c)
	}

	return &list, nil
}

// CancelCharge cancels a charge. The server answers with no content on
// success. Cancelling an already-cancelled charge is the server's call;
// whatever it answers is surfaced as-is.
func (c *Client) CancelCharge(ctx context.Context, chargeID string) error {
	ctx, span := tracer.Start(ctx, "Barte.CancelCharge")
	defer span.End()
	span.SetAttributes(attribute.String("charge.uuid", chargeID))

	if chargeID == "" {
		return NewValidationError("chargeID", "must not be empty")
	}

	_, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/v2/charges/%s", chargeID), nil, nil)
	if err != nil {
		return fmt.Errorf("cancel charge: %w", err)
	}

	return nil
}

// RefundCharge refunds a charge. Passing nil opts requests a regular
// refund with asFraud false.
func (c *Client) RefundCharge(ctx context.Context, chargeID string, opts *RefundOptions) (*Refund, error) {
	ctx, span := tracer.Start(ctx, "Barte.RefundCharge")
	defer span.End()
	span.SetAttributes(attribute.String("charge.uuid", chargeID))

	if chargeID == "" {
		return nil, NewValidationError("chargeID", "must not be empty")
	}
	if opts == nil {
		opts = &RefundOptions{}
	}

	payload := map[string]any{
		"asFraud": opts.AsFraud,
	}

	respBody, err := c.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/v2/charges/%s/refund", chargeID), nil, payload)
	if err != nil {
		return nil, fmt.Errorf("refund charge: %w", err)
	}

	var refund Refund
	if err := decodeEntity("Refund", respBody, &refund); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	refund.bind(c)

	return &refund, nil
}

// ListChargeRefunds fetches all refunds issued for a charge.
func (c *Client) ListChargeRefunds(ctx context.Context, chargeID string) ([]Refund, error) {
	ctx, span := tracer.Start(ctx, "Barte.ListChargeRefunds")
	defer span.End()
	span.SetAttributes(attribute.String("charge.uuid", chargeID))

	if chargeID == "" {
		return nil, NewValidationError("chargeID", "must not be empty")
	}

	respBody, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/v2/charges/%s/refunds", chargeID), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list charge refunds: %w", err)
	}

	// The refunds listing is the one endpoint that still wraps its
	// result in a data envelope.
	d, err := newObjectDecoder("RefundList", respBody)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	raw, err := d.rawField("data")
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	var refunds []Refund
	if err := json.Unmarshal(raw, &refunds); err != nil {
		return nil, fmt.Errorf("decode response: %w", d.nested("data", "an array", err))
	}
	for i := range refunds {
		refunds[i].bind(c)
	}

	return refunds, nil
}

// CreateCharge creates a standalone charge outside of an order.
func (c *Client) CreateCharge(ctx context.Context, req CreateChargeRequest) (*Charge, error) {
	ctx, span := tracer.Start(ctx, "Barte.CreateCharge")
	defer span.End()

	if req.Value <= 0 {
		return nil, NewValidationError("value", "must be positive")
	}

	respBody, err := c.doRequest(ctx, http.MethodPost, "/v2/charges", nil, req)
	if err != nil {
		return nil, fmt.Errorf("create charge: %w", err)
	}

	var charge Charge
	if err := decodeEntity("Charge", respBody, &charge); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	charge.bind(c)

	return &charge, nil
}

// CreatePixCharge creates a charge paid through PIX. The payment method
// on the request is forced to PIX; the returned charge carries the QR
// code fields.
func (c *Client) CreatePixCharge(ctx context.Context, req CreateChargeRequest) (*Charge, error) {
	ctx, span := tracer.Start(ctx, "Barte.CreatePixCharge")
	defer span.End()

	req.PaymentMethod = PaymentMethodPix
	charge, err := c.CreateCharge(ctx, req)
	if err != nil {
		return nil, err
	}

	return charge, nil
}

// ChargeWithCardToken creates a charge billed against a stored card
// token. The payment method on the request is forced to credit card.
func (c *Client) ChargeWithCardToken(ctx context.Context, cardToken string, req CreateChargeRequest) (*Charge, error) {
	ctx, span := tracer.Start(ctx, "Barte.ChargeWithCardToken")
	defer span.End()

	if cardToken == "" {
		return nil, NewValidationError("cardToken", "must not be empty")
	}

	req.PaymentMethod = PaymentMethodCreditCard
	req.CardToken = cardToken
	charge, err := c.CreateCharge(ctx, req)
	if err != nil {
		return nil, err
	}

	return charge, nil
}

// bind attaches the client capability to the charge.
func (ch *Charge) bind(api chargeAPI) {
	ch.api = api
}

// Bind attaches a client to the charge so convenience methods work on
// charges that were not produced by one, such as charges unmarshaled
// from stored JSON. It is also the way to pin a charge to one client
// when several are in use.
func (ch *Charge) Bind(c *Client) {
	ch.bind(c)
}

// Refund refunds this charge through the client that produced it.
func (ch *Charge) Refund(ctx context.Context, opts *RefundOptions) (*Refund, error) {
	if ch.api == nil {
		return nil, ErrNoClient
	}
	return ch.api.RefundCharge(ctx, ch.UUID, opts)
}

// Cancel cancels this charge through the client that produced it.
func (ch *Charge) Cancel(ctx context.Context) error {
	if ch.api == nil {
		return ErrNoClient
	}
	return ch.api.CancelCharge(ctx, ch.UUID)
}
