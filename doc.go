// Package barte implements a client for the Barte payment API.
//
// The package covers:
//   - Orders (one-shot and installment payments)
//   - Charges (PIX, credit card and bank slip)
//   - Refunds and cancellations
//   - Buyers and card tokenization
//   - Installment simulation
//
// # Authentication
//
// Barte authenticates requests with an API token sent on every call. You
// need:
//   - An API token (from the Barte dashboard)
//   - The environment it belongs to (production or sandbox)
//
// # Quick Start
//
// Create the client:
//
//	client, err := barte.NewClient("your-api-token", barte.EnvironmentProduction)
//
// Create an order paid by credit card:
//
//	order, err := client.CreateOrder(ctx, barte.CreateOrderRequest{
//	    Title:          "Gym membership",
//	    Value:          99.90,
//	    Installments:   1,
//	    StartDate:      "2024-02-01",
//	    IdempotencyKey: barte.NewIdempotencyKey(),
//	    Payment: barte.OrderPayment{
//	        Method: barte.PaymentMethodCreditCard,
//	        Card:   &barte.OrderCard{CardToken: token.UUID},
//	        Brand:  "visa",
//	    },
//	    Customer: &barte.CustomerRequest{
//	        Document: "12345678901",
//	        Type:     barte.DocumentTypeCPF,
//	        Name:     "João Silva",
//	        Email:    "joao@example.com",
//	        Phone:    "11999999999",
//	    },
//	})
//
// # PIX Charges
//
// Create a PIX charge and hand the payer its QR code:
//
//	charge, err := client.CreatePixCharge(ctx, barte.CreateChargeRequest{
//	    Title:          "Gym membership",
//	    Value:          99.90,
//	    ExpirationDate: "2024-02-01",
//	    Customer: &barte.CustomerRequest{
//	        Document: "12345678901",
//	        Type:     barte.DocumentTypeCPF,
//	        Name:     "João Silva",
//	        Email:    "joao@example.com",
//	        Phone:    "11999999999",
//	    },
//	})
//
//	qr, err := client.GetPixQRCode(ctx, charge.UUID)
//
// The payer scans qr.QRCodeImage or pastes qr.CopyAndPaste into their
// banking app.
//
// # Entity Methods
//
// Entities returned by the client stay attached to it, so follow-up calls
// can be made on the entity itself:
//
//	charge, err := client.GetCharge(ctx, chargeID)
//	refund, err := charge.Refund(ctx, nil)
//
// Entities decoded outside the client (a webhook payload, a stored JSON
// blob) are detached and their methods return ErrNoClient until Bind is
// called:
//
//	var charge barte.Charge
//	if err := json.Unmarshal(payload, &charge); err != nil {
//	    return err
//	}
//	charge.Bind(client)
//
// # Error Handling
//
// The package provides typed errors for common conditions:
//
//	if barte.IsNotFound(err) {
//	    // resource does not exist
//	}
//	if barte.IsUnauthorized(err) {
//	    // token is invalid or lacks permission
//	}
//	if barte.IsDecodeError(err) {
//	    // the API answered with an unexpected shape
//	}
//
// # API Documentation
//
// For more details, see the official documentation:
// https://dev.barte.com
package barte
