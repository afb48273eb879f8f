package barte

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// newTestClient points a client at a local test server that is torn
// down with the test.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test_key", EnvironmentSandbox, WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name        string
		apiKey      string
		environment Environment
		wantBaseURL string
		wantErr     bool
	}{
		{
			name:        "production",
			apiKey:      "test_key",
			environment: EnvironmentProduction,
			wantBaseURL: BaseURLProduction,
		},
		{
			name:        "sandbox",
			apiKey:      "test_key",
			environment: EnvironmentSandbox,
			wantBaseURL: BaseURLSandbox,
		},
		{
			name:        "invalid environment",
			apiKey:      "test_key",
			environment: Environment("staging"),
			wantErr:     true,
		},
		{
			name:        "empty api key",
			apiKey:      "",
			environment: EnvironmentSandbox,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.apiKey, tt.environment)
			if tt.wantErr {
				var cfgErr *ConfigError
				assert.ErrorAs(t, err, &cfgErr)
				return
			}
			if err != nil {
				t.Fatalf("NewClient() error = %v", err)
			}
			assert.Equal(t, tt.wantBaseURL, client.baseURL)
			assert.Equal(t, tt.apiKey, client.apiKey)
			assert.NotNil(t, client.httpClient)
			assert.NotNil(t, client.logger)
		})
	}
}

func TestClientOptions(t *testing.T) {
	httpClient := &http.Client{Timeout: 5 * time.Second}
	logger := zap.NewExample()

	client, err := NewClient("test_key", EnvironmentSandbox,
		WithHTTPClient(httpClient),
		WithLogger(logger),
		WithBaseURL("http://localhost:9999"),
	)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	assert.Same(t, httpClient, client.httpClient)
	assert.Same(t, logger, client.logger)
	assert.Equal(t, "http://localhost:9999", client.baseURL)
}

func TestRequestHeaders(t *testing.T) {
	var gotToken, gotContentType string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Token-Api")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(chargeJSON))
	})

	_, err := client.GetCharge(context.Background(), "8b6b2ddc-7ccb-4d1f-8832-ef0adc62ed31")
	if err != nil {
		t.Fatalf("GetCharge() error = %v", err)
	}

	assert.Equal(t, "test_key", gotToken)
	assert.Equal(t, "application/json", gotContentType)
}

func TestAPIErrorKeepsBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":[{"title":"invalid value"}]}`))
	})

	_, err := client.GetCharge(context.Background(), "c1")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, `{"errors":[{"title":"invalid value"}]}`, apiErr.Body)
}

func TestNotFoundSurfacesAsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"title":"charge not found"}`))
	})

	charge, err := client.GetCharge(context.Background(), "missing")

	assert.Nil(t, charge)
	assert.True(t, IsNotFound(err))
}

func TestServerErrorSurfaced(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetCharge(context.Background(), "c1")

	assert.True(t, IsServerError(err))
}

func TestNewClientFromEnv(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		t.Setenv(envAPIKey, "")
		t.Setenv(envEnvironment, "")

		_, err := NewClientFromEnv()

		var cfgErr *ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("defaults to sandbox", func(t *testing.T) {
		t.Setenv(envAPIKey, "env_key")
		t.Setenv(envEnvironment, "")

		client, err := NewClientFromEnv()
		if err != nil {
			t.Fatalf("NewClientFromEnv() error = %v", err)
		}

		assert.Equal(t, "env_key", client.apiKey)
		assert.Equal(t, BaseURLSandbox, client.baseURL)
	})

	t.Run("production", func(t *testing.T) {
		t.Setenv(envAPIKey, "env_key")
		t.Setenv(envEnvironment, "production")

		client, err := NewClientFromEnv()
		if err != nil {
			t.Fatalf("NewClientFromEnv() error = %v", err)
		}

		assert.Equal(t, BaseURLProduction, client.baseURL)
	})

	t.Run("invalid environment", func(t *testing.T) {
		t.Setenv(envAPIKey, "env_key")
		t.Setenv(envEnvironment, "staging")

		_, err := NewClientFromEnv()

		var cfgErr *ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})
}
