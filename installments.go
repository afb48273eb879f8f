package barte

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

func (p SimulateInstallmentsParams) values() url.Values {
	q := url.Values{}
	q.Set("amount", strconv.FormatFloat(p.Amount, 'f', -1, 64))
	if p.Brand != "" {
		q.Set("brand", p.Brand)
	}
	if p.MaxInstallments > 0 {
		q.Set("maxInstallments", strconv.Itoa(p.MaxInstallments))
	}
	return q
}

// SimulateInstallments returns the installment plans available for the
// given amount, including the interest applied to each plan. Either the
// card brand or a maximum number of installments must be provided.
func (c *Client) SimulateInstallments(ctx context.Context, params SimulateInstallmentsParams) (*InstallmentOptions, error) {
	ctx, span := tracer.Start(ctx, "Barte.SimulateInstallments")
	defer span.End()

	if params.Amount <= 0 {
		return nil, NewValidationError("amount", "must be greater than zero")
	}
	if params.Brand == "" && params.MaxInstallments <= 0 {
		return nil, NewValidationError("brand", "either brand or maxInstallments is required")
	}

	respBody, err := c.doRequest(ctx, http.MethodGet, "/v2/orders/installments-payment", params.values(), nil)
	if err != nil {
		return nil, fmt.Errorf("simulate installments: %w", err)
	}

	var options InstallmentOptions
	if err := decodeEntity("InstallmentOptions", respBody, &options); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &options, nil
}
