package barte

import (
	"context"
	"fmt"
	"net/http"
)

// CreateCardToken tokenizes a credit card. Only the returned token ever
// needs to be stored; the card number itself should be discarded right
// after this call.
func (c *Client) CreateCardToken(ctx context.Context, req CreateCardTokenRequest) (*CardToken, error) {
	ctx, span := tracer.Start(ctx, "Barte.CreateCardToken")
	defer span.End()

	if req.Number == "" {
		return nil, NewValidationError("number", "must not be empty")
	}
	if req.HolderName == "" {
		return nil, NewValidationError("holder_name", "must not be empty")
	}
	if req.ExpirationMonth < 1 || req.ExpirationMonth > 12 {
		return nil, NewValidationError("expiration_month", "must be between 1 and 12")
	}
	if req.ExpirationYear <= 0 {
		return nil, NewValidationError("expiration_year", "must be a four-digit year")
	}
	if req.CVV == "" {
		return nil, NewValidationError("cvv", "must not be empty")
	}

	respBody, err := c.doRequest(ctx, http.MethodPost, "/v2/cards", nil, req)
	if err != nil {
		return nil, fmt.Errorf("create card token: %w", err)
	}

	var token CardToken
	if err := decodeEntity("CardToken", respBody, &token); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &token, nil
}
