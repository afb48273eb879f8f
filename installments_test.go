package barte

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

const installmentOptionsJSON = `{
	"installments": [
		{"installments": 1, "amount": 1000, "total": 1000, "interest_rate": 0.0},
		{"installments": 2, "amount": 510, "total": 1020, "interest_rate": 2.0},
		{"installments": 3, "amount": 345, "total": 1035, "interest_rate": 3.5}
	]
}`

func TestSimulateInstallments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/orders/installments-payment", r.URL.Path)
		assert.Equal(t, "1000", r.URL.Query().Get("amount"))
		assert.Equal(t, "visa", r.URL.Query().Get("brand"))
		w.Write([]byte(installmentOptionsJSON))
	})

	options, err := client.SimulateInstallments(context.Background(), SimulateInstallmentsParams{
		Amount: 1000,
		Brand:  "visa",
	})
	if err != nil {
		t.Fatalf("SimulateInstallments() error = %v", err)
	}

	if len(options.Installments) != 3 {
		t.Fatalf("Installments count = %v, want 3", len(options.Installments))
	}
	assert.Equal(t, 1, options.Installments[0].Installments)
	assert.Equal(t, float64(1000), options.Installments[0].Amount)
	assert.Equal(t, 0.0, options.Installments[0].InterestRate)
	assert.Equal(t, 2.0, options.Installments[1].InterestRate)
	assert.Equal(t, 3.5, options.Installments[2].InterestRate)
	assert.Equal(t, float64(1035), options.Installments[2].Total)
}

func TestSimulateInstallmentsQuery(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(installmentOptionsJSON))
	})

	_, err := client.SimulateInstallments(context.Background(), SimulateInstallmentsParams{
		Amount:          10.5,
		MaxInstallments: 12,
	})
	if err != nil {
		t.Fatalf("SimulateInstallments() error = %v", err)
	}

	assert.Equal(t, "amount=10.5&maxInstallments=12", gotQuery)
}

func TestSimulateInstallmentsValidation(t *testing.T) {
	tests := []struct {
		name   string
		params SimulateInstallmentsParams
	}{
		{
			name:   "zero amount",
			params: SimulateInstallmentsParams{Brand: "visa"},
		},
		{
			name:   "no brand and no max installments",
			params: SimulateInstallmentsParams{Amount: 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				t.Error("no request expected")
			})

			_, err := client.SimulateInstallments(context.Background(), tt.params)

			var valErr *ValidationError
			assert.ErrorAs(t, err, &valErr)
		})
	}
}

func TestInstallmentOptionsDecodeIsStrict(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "interest rate as string",
			body: `{"installments": [{"installments": 1, "amount": 1000, "total": 1000, "interest_rate": "0.0"}]}`,
		},
		{
			name: "missing amount",
			body: `{"installments": [{"installments": 1, "total": 1000, "interest_rate": 0.0}]}`,
		},
		{
			name: "missing envelope",
			body: `{"options": []}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var options InstallmentOptions
			err := json.Unmarshal([]byte(tt.body), &options)

			assert.True(t, IsDecodeError(err))
		})
	}
}
