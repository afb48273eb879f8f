package barte

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "API error with 404",
			err:  &APIError{Status: 404, Body: "not found"},
			want: true,
		},
		{
			name: "wrapped API error with 404",
			err:  fmt.Errorf("get charge: %w", &APIError{Status: 404}),
			want: true,
		},
		{
			name: "API error with 400",
			err:  &APIError{Status: 400, Body: "bad request"},
			want: false,
		},
		{
			name: "other error",
			err:  ErrNoClient,
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "API error with 401",
			err:  &APIError{Status: 401},
			want: true,
		},
		{
			name: "API error with 403",
			err:  &APIError{Status: 403},
			want: true,
		},
		{
			name: "API error with 404",
			err:  &APIError{Status: 404},
			want: false,
		},
		{
			name: "other error",
			err:  ErrNotPixCharge,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUnauthorized(tt.err); got != tt.want {
				t.Errorf("IsUnauthorized() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsServerError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "API error with 500",
			err:  &APIError{Status: 500},
			want: true,
		},
		{
			name: "API error with 503",
			err:  &APIError{Status: 503},
			want: true,
		},
		{
			name: "API error with 422",
			err:  &APIError{Status: 422},
			want: false,
		},
		{
			name: "decode error",
			err:  &DecodeError{Entity: "Charge", Field: "value", Reason: "is not a number"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsServerError(tt.err); got != tt.want {
				t.Errorf("IsServerError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDecodeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "decode error",
			err:  &DecodeError{Entity: "Charge", Field: "value", Reason: "is not a number"},
			want: true,
		},
		{
			name: "wrapped decode error",
			err:  fmt.Errorf("decode response: %w", &DecodeError{Entity: "Order", Field: "uuid", Reason: "is missing"}),
			want: true,
		},
		{
			name: "API error",
			err:  &APIError{Status: 422, Body: "unprocessable"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDecodeError(tt.err); got != tt.want {
				t.Errorf("IsDecodeError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "config error",
			err:  &ConfigError{Field: "environment", Reason: `must be "production" or "sandbox"`},
			want: `barte: invalid configuration: environment must be "production" or "sandbox"`,
		},
		{
			name: "api error",
			err:  &APIError{Status: 422, Body: `{"title":"oops"}`},
			want: `barte: api returned status 422: {"title":"oops"}`,
		},
		{
			name: "decode error with field",
			err:  &DecodeError{Entity: "Charge", Field: "value", Reason: "is not a number"},
			want: `barte: decoding Charge: field "value" is not a number`,
		},
		{
			name: "decode error without field",
			err:  &DecodeError{Entity: "Charge", Reason: "is not a JSON object"},
			want: "barte: decoding Charge: is not a JSON object",
		},
		{
			name: "validation error",
			err:  NewValidationError("value", "must be positive"),
			want: `barte: invalid field "value": must be positive`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
