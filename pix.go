package barte

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
)

// GetPixQRCode fetches the PIX payment data for a charge. The charge must
// have been created with the PIX payment method; any other method yields
// ErrNotPixCharge.
func (c *Client) GetPixQRCode(ctx context.Context, chargeID string) (*PixQRCode, error) {
	ctx, span := tracer.Start(ctx, "Barte.GetPixQRCode")
	defer span.End()

	span.SetAttributes(attribute.String("charge.id", chargeID))

	charge, err := c.GetCharge(ctx, chargeID)
	if err != nil {
		return nil, err
	}

	if charge.Pix == nil {
		return nil, fmt.Errorf("charge %s: %w", chargeID, ErrNotPixCharge)
	}

	return &PixQRCode{
		QRCode:       charge.Pix.Code,
		QRCodeImage:  charge.Pix.QRCodeImage,
		CopyAndPaste: charge.Pix.Code,
	}, nil
}

// QRCode fetches the PIX payment data for this charge. The charge must be
// bound to a client.
func (ch *Charge) QRCode(ctx context.Context) (*PixQRCode, error) {
	if ch.api == nil {
		return nil, ErrNoClient
	}
	return ch.api.GetPixQRCode(ctx, ch.UUID)
}
