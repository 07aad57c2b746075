// Package payment wraps the payment provider behind a small interface so the
// rest of the app never talks to Stripe directly. Outside production a mock
// processor is used instead.
package payment

import "context"

type ChargeRequest struct {
	Amount      float64
	Currency    string
	Method      string
	Email       string
	Description string
}

type ChargeResult struct {
	ProviderRef string
	Status      string // completed, pending, failed
}

type Processor interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
	Refund(ctx context.Context, providerRef string) error
}
