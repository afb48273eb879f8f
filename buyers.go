package barte

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// CreateBuyer registers a buyer. The returned record carries the uuid
// that card tokens and orders refer to.
func (c *Client) CreateBuyer(ctx context.Context, req CreateBuyerRequest) (*Buyer, error) {
	ctx, span := tracer.Start(ctx, "Barte.CreateBuyer")
	defer span.End()

	if req.Document == "" {
		return nil, NewValidationError("document", "must not be empty")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "must not be empty")
	}
	if req.Email == "" {
		return nil, NewValidationError("email", "must not be empty")
	}

	respBody, err := c.doRequest(ctx, http.MethodPost, "/v2/buyers", nil, req)
	if err != nil {
		return nil, fmt.Errorf("create buyer: %w", err)
	}

	var buyer Buyer
	if err := decodeEntity("Buyer", respBody, &buyer); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &buyer, nil
}

// values renders the filters as query parameters. A nil receiver means
// no filters at all.
func (p *ListBuyersParams) values() url.Values {
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
	if p.Document != "" {
		q.Set("document", p.Document)
	}
	if p.Name != "" {
		q.Set("name", p.Name)
	}
	return q
}

// ListBuyers fetches one page of buyers. Passing nil params returns the
// unfiltered first page.
func (c *Client) ListBuyers(ctx context.Context, params *ListBuyersParams) (*BuyerList, error) {
	ctx, span := tracer.Start(ctx, "Barte.ListBuyers")
	defer span.End()

	respBody, err := c.doRequest(ctx, http.MethodGet, "/v2/buyers", params.values(), nil)
	if err != nil {
		return nil, fmt.Errorf("list buyers: %w", err)
	}

	var list BuyerList
	if err := decodeEntity("BuyerList", respBody, &list); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &list, nil
}
