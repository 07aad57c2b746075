package payment

import (
	"context"
	"fmt"
	"sync/atomic"

	"travel-booking-webapp/config"
)

// MockProcessor approves every charge with a deterministic reference.
// Selected outside of production so the app works without Stripe keys.
type MockProcessor struct {
	counter atomic.Uint64
}

func NewMockProcessor() *MockProcessor {
	return &MockProcessor{}
}

func (p *MockProcessor) Charge(_ context.Context, req ChargeRequest) (*ChargeResult, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("cannot charge non-positive amount %v", req.Amount)
	}

	n := p.counter.Add(1)
	return &ChargeResult{
		ProviderRef: fmt.Sprintf("pay_mock_%06d", n),
		Status:      "completed",
	}, nil
}

func (p *MockProcessor) Refund(_ context.Context, providerRef string) error {
	if providerRef == "" {
		return fmt.Errorf("nothing to refund")
	}
	return nil
}

// FromConfig selects the real processor in production, the mock elsewhere.
func FromConfig(cfg *config.Config) Processor {
	if cfg.IsProduction() {
		return NewStripeProcessor(cfg.Stripe)
	}
	return NewMockProcessor()
}
