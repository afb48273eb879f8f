package barte

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPixQRCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/charges/7a384917-e73e-466e-b90d-8c9f04e7fa9f", r.URL.Path)
		w.Write([]byte(pixChargeJSON))
	})

	qr, err := client.GetPixQRCode(context.Background(), "7a384917-e73e-466e-b90d-8c9f04e7fa9f")
	if err != nil {
		t.Fatalf("GetPixQRCode() error = %v", err)
	}

	assert.Equal(t, pixChargePixCode, qr.QRCode)
	assert.Equal(t, pixChargeQRCodeImage, qr.QRCodeImage)
	assert.Equal(t, qr.QRCode, qr.CopyAndPaste)
}

func TestGetPixQRCodeRejectsOtherMethods(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chargeJSON))
	})

	_, err := client.GetPixQRCode(context.Background(), "8b6b2ddc-7ccb-4d1f-8832-ef0adc62ed31")

	assert.ErrorIs(t, err, ErrNotPixCharge)
}

func TestChargeQRCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(pixChargeJSON))
	})

	charge, err := client.GetCharge(context.Background(), "7a384917-e73e-466e-b90d-8c9f04e7fa9f")
	if err != nil {
		t.Fatalf("GetCharge() error = %v", err)
	}

	qr, err := charge.QRCode(context.Background())
	if err != nil {
		t.Fatalf("QRCode() error = %v", err)
	}

	assert.Equal(t, charge.Pix.Code, qr.QRCode)
	assert.Equal(t, charge.Pix.QRCodeImage, qr.QRCodeImage)
}
