package barte

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("barte")

// API is the full operation surface of the client. *Client implements
// it; callers that want a test double can depend on this interface.
type API interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error)
	GetCharge(ctx context.Context, chargeID string) (*Charge, error)
	ListCharges(ctx context.Context, params *ListChargesParams) (*ChargeList, error)
	CancelCharge(ctx context.Context, chargeID string) error
	RefundCharge(ctx context.Context, chargeID string, opts *RefundOptions) (*Refund, error)
	ListChargeRefunds(ctx context.Context, chargeID string) ([]Refund, error)
	CreateCharge(ctx context.Context, req CreateChargeRequest) (*Charge, error)
	CreatePixCharge(ctx context.Context, req CreateChargeRequest) (*Charge, error)
	ChargeWithCardToken(ctx context.Context, cardToken string, req CreateChargeRequest) (*Charge, error)
	CreateBuyer(ctx context.Context, req CreateBuyerRequest) (*Buyer, error)
	ListBuyers(ctx context.Context, params *ListBuyersParams) (*BuyerList, error)
	CreateCardToken(ctx context.Context, req CreateCardTokenRequest) (*CardToken, error)
	GetPixQRCode(ctx context.Context, chargeID string) (*PixQRCode, error)
	SimulateInstallments(ctx context.Context, params SimulateInstallmentsParams) (*InstallmentOptions, error)
}

// chargeAPI is the slice of the client that decoded entities keep for
// their convenience methods.
type chargeAPI interface {
	GetCharge(ctx context.Context, chargeID string) (*Charge, error)
	CancelCharge(ctx context.Context, chargeID string) error
	RefundCharge(ctx context.Context, chargeID string, opts *RefundOptions) (*Refund, error)
	GetPixQRCode(ctx context.Context, chargeID string) (*PixQRCode, error)
}

// Client talks to the Barte payment API. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// ClientOption adjusts a client during construction.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client. Timeouts and
// transport tuning belong to the caller through this option; the
// package itself never retries.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger attaches a zap logger. Requests are logged at debug level,
// non-2xx responses at warn. The default is a no-op logger.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithBaseURL overrides the environment-derived base URL. Meant for
// pointing the client at a local test server.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// NewClient creates a client for the given API key and environment.
func NewClient(apiKey string, environment Environment, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, &ConfigError{Field: "apiKey", Reason: "must not be empty"}
	}

	var baseURL string
	switch environment {
	case EnvironmentProduction:
		baseURL = BaseURLProduction
	case EnvironmentSandbox:
		baseURL = BaseURLSandbox
	default:
		return nil, &ConfigError{
			Field:  "environment",
			Reason: fmt.Sprintf("must be %q or %q", EnvironmentProduction, EnvironmentSandbox),
		}
	}

	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// doRequest executes one authenticated request and returns the raw
// response body. A 2xx response with no body returns (nil, nil); any
// non-2xx status returns an APIError with the body kept verbatim.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		c.logger.Error("barte: failed to create request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}

	req.Header.Set("X-Token-Api", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("barte: request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("barte: failed to read response body",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("barte: non-2xx response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(respBody)),
		)
		return nil, &APIError{Status: resp.StatusCode, Body: string(respBody)}
	}

	c.logger.Debug("barte: request OK",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode == http.StatusNoContent || len(respBody) == 0 {
		return nil, nil
	}

	return respBody, nil
}

// Make sure Client implements the full surface
var _ API = (*Client)(nil)
