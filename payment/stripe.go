package payment

import (
	"context"
	"fmt"

	"travel-booking-webapp/config"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"github.com/stripe/stripe-go/v81/refund"
	"go.uber.org/zap"
)

// StripeProcessor charges through Stripe payment intents.
type StripeProcessor struct {
	returnURL string
	currency  string
}

func NewStripeProcessor(cfg config.StripeConfig) *StripeProcessor {
	stripe.Key = cfg.SecretKey

	return &StripeProcessor{
		returnURL: cfg.ReturnURL,
		currency:  cfg.Currency,
	}
}

func (p *StripeProcessor) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	currency := req.Currency
	if currency == "" {
		currency = p.currency
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(toMinorUnits(req.Amount)),
		Currency: stripe.String(currency),
		Confirm:  stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if p.returnURL != "" {
		params.ReturnURL = stripe.String(p.returnURL)
	}
	if req.Email != "" {
		params.ReceiptEmail = stripe.String(req.Email)
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe charge failed: %v", err)
	}

	zap.L().Info("stripe payment intent created",
		zap.String("intent_id", intent.ID),
		zap.String("intent_status", string(intent.Status)))

	return &ChargeResult{
		ProviderRef: intent.ID,
		Status:      mapIntentStatus(intent.Status),
	}, nil
}

func (p *StripeProcessor) Refund(ctx context.Context, providerRef string) error {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(providerRef),
	}
	params.Context = ctx

	if _, err := refund.New(params); err != nil {
		return fmt.Errorf("stripe refund failed: %v", err)
	}
	return nil
}

func toMinorUnits(amount float64) int64 {
	return int64(amount*100 + 0.5)
}

func mapIntentStatus(status stripe.PaymentIntentStatus) string {
	switch status {
	case stripe.PaymentIntentStatusSucceeded:
		return "completed"
	case stripe.PaymentIntentStatusCanceled:
		return "failed"
	default:
		return "pending"
	}
}
